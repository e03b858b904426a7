// Package config holds the command-line configuration of gomatch.
package config

import (
	"errors"

	"github.com/idelchi/gogen/pkg/validator"

	"github.com/idelchi/gomatch/pkg/fnmatch"
)

// Config gathers flags, environment variables and positional arguments.
type Config struct {
	// Common flags
	Show          bool
	Quiet         bool
	CaseSensitive bool `mapstructure:"case-sensitive"`
	Globstar      bool

	// Filtering flags
	Include     []string
	Exclude     []string
	IncludeFrom string `mapstructure:"include-from" validate:"omitempty,file,patternfile"`
	ExcludeFrom string `mapstructure:"exclude-from" validate:"omitempty,file,patternfile"`
	Parallel    int    `validate:"min=1"`
	Stats       bool

	// Command-specific flags
	Invert bool
	Join   bool
	Test   []string

	// Positional arguments
	Pattern  string
	Patterns []string
	Names    []string
	Paths    []string
}

// Options returns the matcher options selected by the configuration.
func (c Config) Options() fnmatch.Options {
	return fnmatch.Options{
		CaseSensitive: c.CaseSensitive,
		Globstar:      c.Globstar,
	}
}

// HasFilters reports whether any include or exclude pattern was given.
func (c Config) HasFilters() bool {
	return c.HasIncludes() || len(c.Exclude) > 0 || c.ExcludeFrom != ""
}

// HasIncludes reports whether include filtering was requested.
func (c Config) HasIncludes() bool {
	return len(c.Include) > 0 || c.IncludeFrom != ""
}

// Display reports whether the configuration should be printed instead of run.
func (c Config) Display() bool {
	return c.Show
}

// Validate validates config against its struct tags and joins the
// translated messages of every failing field.
func (c Config) Validate(config any) error {
	validator := validator.NewValidator()

	if err := registerPatternFile(validator); err != nil {
		return err
	}

	return errors.Join(validator.Validate(config)...)
}
