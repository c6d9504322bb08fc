// Package config assembles the immutable configuration of one run from CLI
// flags, the optional .intemp.yml project file, and environment defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/satococoa/intemp/internal/errors"
	"github.com/satococoa/intemp/internal/workspace"
)

const (
	// ConfigFileName is looked up in the invocation directory.
	ConfigFileName = ".intemp.yml"

	// EnvTempDir overrides the platform temp dir as the workspace parent.
	EnvTempDir = "INTEMP_TEMP_DIR"

	defaultPreserve = "failure"
)

// Config is the immutable input to one run. Built once by Resolve, never
// mutated afterward.
type Config struct {
	Command    []string
	TempRoot   string
	TargetDir  string
	Overwrite  bool
	Preserve   workspace.Policy
	Quiet      bool
	StdinFile  string
	StdoutFile string
	StderrFile string
}

// FileConfig represents the .intemp.yml project file. Every field is a
// default that flags override.
type FileConfig struct {
	TempDir         string `yaml:"temp_dir,omitempty"`
	TargetDir       string `yaml:"target_dir,omitempty"`
	PreserveTempDir string `yaml:"preserve_temp_dir,omitempty"`
	Overwrite       *bool  `yaml:"overwrite,omitempty"`
	Quiet           *bool  `yaml:"quiet,omitempty"`
}

// Validate checks the file-level settings that have a closed value set.
func (fc *FileConfig) Validate() error {
	if fc.PreserveTempDir != "" {
		if _, err := workspace.ParsePolicy(fc.PreserveTempDir); err != nil {
			return err
		}
	}
	return nil
}

// LoadFile reads .intemp.yml from dir. A missing file yields an empty
// FileConfig; a malformed one is an error.
func LoadFile(dir string) (*FileConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return &FileConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := fc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &fc, nil
}

// ResolveDir canonicalizes path (absolute, symlinks resolved) and requires
// the result to be an existing directory.
func ResolveDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.NotADirectory(path, path)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", errors.NotADirectory(path, abs)
	}

	info, err := os.Stat(resolved)
	if err != nil || !info.IsDir() {
		return "", errors.NotADirectory(path, resolved)
	}

	return resolved, nil
}

// Inputs carries the raw CLI values into Resolve. Empty strings mean the
// flag was not given; the Set booleans disambiguate boolean flags from
// their zero value.
type Inputs struct {
	Command         []string
	TempDir         string
	TargetDir       string
	PreserveTempDir string
	Overwrite       bool
	OverwriteSet    bool
	Quiet           bool
	QuietSet        bool
	StdinFile       string
	StdoutFile      string
	StderrFile      string
}

// Resolve merges flags, the project file found in cwd, and environment
// defaults into a validated Config. Precedence: flag, then file, then
// environment/platform default.
func Resolve(in Inputs, cwd string) (*Config, error) {
	if len(in.Command) == 0 {
		return nil, errors.CommandRequired()
	}

	fc, err := LoadFile(cwd)
	if err != nil {
		return nil, err
	}

	tempDir := firstNonEmpty(in.TempDir, fc.TempDir, os.Getenv(EnvTempDir), os.TempDir())
	tempRoot, err := ResolveDir(tempDir)
	if err != nil {
		return nil, err
	}

	targetDir, err := ResolveDir(firstNonEmpty(in.TargetDir, fc.TargetDir, cwd))
	if err != nil {
		return nil, err
	}

	preserve, err := workspace.ParsePolicy(firstNonEmpty(in.PreserveTempDir, fc.PreserveTempDir, defaultPreserve))
	if err != nil {
		return nil, err
	}

	overwrite := in.Overwrite
	if !in.OverwriteSet && fc.Overwrite != nil {
		overwrite = *fc.Overwrite
	}

	quiet := in.Quiet
	if !in.QuietSet && fc.Quiet != nil {
		quiet = *fc.Quiet
	}

	return &Config{
		Command:    in.Command,
		TempRoot:   tempRoot,
		TargetDir:  targetDir,
		Overwrite:  overwrite,
		Preserve:   preserve,
		Quiet:      quiet,
		StdinFile:  in.StdinFile,
		StdoutFile: in.StdoutFile,
		StderrFile: in.StderrFile,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
