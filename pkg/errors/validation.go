package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateLeafKey validates a pane key supplied on the command line or over
// HTTP.
//
// The validation rules are intentionally conservative:
//   - No empty keys
//   - No control characters
//   - Maximum length of 256 characters
func ValidateLeafKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return New(ErrCodeInvalidInput, "leaf key cannot be empty")
	}

	if len(key) > 256 {
		return New(ErrCodeInvalidInput, "leaf key too long (max 256 characters)")
	}

	for _, r := range key {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "leaf key contains invalid control characters")
		}
	}

	return nil
}

// ValidatePercentage validates a split percentage.
func ValidatePercentage(pct float64) error {
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return New(ErrCodeInvalidPercentage, "percentage must be a finite number")
	}
	if pct < 0 || pct > 100 {
		return New(ErrCodeInvalidPercentage, "percentage %v outside [0, 100]", pct)
	}
	return nil
}

// ValidateFilePath validates a layout or update file path given to the CLI.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidateFilePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "file path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "file path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "file path contains invalid characters")
		}
	}

	return nil
}
