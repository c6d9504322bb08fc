package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotADirectory(t *testing.T) {
	tests := []struct {
		name     string
		original string
		resolved string
		expected []string
	}{
		{
			name:     "same path",
			original: "/tmp/missing",
			resolved: "/tmp/missing",
			expected: []string{
				"not a directory: /tmp/missing",
				"mkdir -p",
			},
		},
		{
			name:     "symlinked path",
			original: "/tmp/link",
			resolved: "/var/data",
			expected: []string{
				"not a directory: /tmp/link -> /var/data",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NotADirectory(tt.original, tt.resolved)

			assert.Error(t, err)
			assert.ErrorIs(t, err, ErrNotADirectory)
			for _, want := range tt.expected {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestCommandRequired(t *testing.T) {
	err := CommandRequired()

	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrCommandRequired)
	assert.Contains(t, err.Error(), "command is required")
	assert.Contains(t, err.Error(), "double dash")
}

func TestInvalidPreservePolicy(t *testing.T) {
	err := InvalidPreservePolicy("sometimes")

	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPolicy)
	assert.Contains(t, err.Error(), "'sometimes'")
	assert.Contains(t, err.Error(), "always")
	assert.Contains(t, err.Error(), "failure")
}

func TestDestinationExists(t *testing.T) {
	err := DestinationExists("out.txt", "/data/results")

	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrDestinationExists)
	assert.Contains(t, err.Error(), "'out.txt'")
	assert.Contains(t, err.Error(), "/data/results")
	assert.Contains(t, err.Error(), "--overwrite")
}

func TestTransferFailed(t *testing.T) {
	cause := errors.New("permission denied")
	err := TransferFailed("out.txt", "/data/results", cause)

	assert.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to copy 'out.txt' to /data/results")
}
