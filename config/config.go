// Package config loads the run parameters for the zoowalk command.
//
// Config file locations (priority order):
//  1. $ZOOWALK_CONFIG
//  2. ./zoowalk.yaml
//
// When neither exists the defaults apply. Keys missing from a file keep their
// default values; unknown keys are rejected. The zoo topology itself is not
// configurable here.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lvlath/zoowalk/trial"
	"github.com/lvlath/zoowalk/walk"
)

const (
	// EnvConfigPath is the environment variable for an explicit config path.
	EnvConfigPath = "ZOOWALK_CONFIG"
	// ConfigFileName is the config file looked up in the working directory.
	ConfigFileName = "zoowalk.yaml"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the run parameters.
type Config struct {
	Entry     string `yaml:"entry"`
	Exit      string `yaml:"exit"`
	Attempts  int    `yaml:"attempts"`
	MaxVisits int    `yaml:"max_visits"`
	// Seed 0 asks the caller for a time-based seed.
	Seed    int64 `yaml:"seed"`
	Workers int   `yaml:"workers"`
	Verify  bool  `yaml:"verify"`
}

// Default returns the parameters of the classic run: D to F, one million
// attempts, at most two visits per enclosure, one worker.
func Default() *Config {
	return &Config{
		Entry:     walk.DefaultEntry,
		Exit:      walk.DefaultExit,
		Attempts:  trial.DefaultAttempts,
		MaxVisits: walk.DefaultMaxVisits,
		Workers:   1,
	}
}

// Load finds and loads the config file, or returns defaults if none is found.
// The second result is the path that was read, empty for defaults.
func Load() (*Config, string, error) {
	path := FindConfigPath()
	if path == "" {
		return Default(), "", nil
	}

	return LoadFromPath(path)
}

// FindConfigPath returns the first existing config file, or "".
func FindConfigPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		if fileExists(path) {
			return path
		}
	}

	if fileExists(ConfigFileName) {
		if abs, err := filepath.Abs(ConfigFileName); err == nil {
			return abs
		}
		return ConfigFileName
	}

	return ""
}

// LoadFromPath loads config from a specific path.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, errors.Wrap(err, "read config")
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, path, errors.Wrapf(err, "config %s", path)
	}

	return cfg, path, nil
}

// Parse decodes YAML over the defaults. An empty document yields Default().
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "parse config")
	}
	cfg.applyDefaults()

	return cfg, nil
}

// applyDefaults fills in values a file may have blanked.
func (c *Config) applyDefaults() {
	if c.Entry == "" {
		c.Entry = walk.DefaultEntry
	}
	if c.Exit == "" {
		c.Exit = walk.DefaultExit
	}
}

// Validate checks value ranges. Whether Entry and Exit name real enclosures
// is checked against the graph when the run starts.
func (c *Config) Validate() error {
	switch {
	case c.Attempts < 0:
		return errors.Wrapf(ErrInvalid, "attempts must be non-negative, got %d", c.Attempts)
	case c.MaxVisits < 1:
		return errors.Wrapf(ErrInvalid, "max_visits must be at least 1, got %d", c.MaxVisits)
	case c.Workers < 1:
		return errors.Wrapf(ErrInvalid, "workers must be at least 1, got %d", c.Workers)
	}
	return nil
}

// TrialOptions maps the config onto trial.Options. Seed is copied as is; the
// caller resolves a zero seed before running.
func (c *Config) TrialOptions() trial.Options {
	opts := trial.DefaultOptions()
	opts.Attempts = c.Attempts
	opts.Workers = c.Workers
	opts.Seed = c.Seed
	opts.Verify = c.Verify
	opts.Walk = walk.Options{
		Entry:     c.Entry,
		Exit:      c.Exit,
		MaxVisits: c.MaxVisits,
	}
	return opts
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
