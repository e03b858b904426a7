package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"github.com/idelchi/gogen/pkg/validator"
)

// patternFileExtensions lists the extensions accepted for pattern files.
//
//nolint:gochecknoglobals // read-only list
var patternFileExtensions = []string{".json", ".jsonc", ".yml", ".yaml"}

// registerPatternFile adds a custom validator ensuring a pattern file has a
// supported extension. It registers both the validation logic and a
// human-readable error message, and reports fields by their flag names.
func registerPatternFile(validator *validator.Validator) error {
	if err := validator.RegisterValidationAndTranslation(
		"patternfile",
		validatePatternFile,
		"{0} must be a "+strings.Join(patternFileExtensions, ", ")+" file",
	); err != nil {
		return fmt.Errorf("registering patternfile validation: %w", err)
	}

	validator.Validator().RegisterTagNameFunc(func(fld reflect.StructField) string {
		const splitSize = 2

		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", splitSize)[0]
		if name == "" || name == "-" {
			return strings.ToLower(fld.Name)
		}

		return name
	})

	return nil
}

// validatePatternFile checks the extension of the field's path.
// Empty values are left to omitempty.
func validatePatternFile(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if path == "" {
		return true
	}

	return slices.Contains(patternFileExtensions, strings.ToLower(filepath.Ext(path)))
}
