package errors

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
)

// maxEntryNameLength bounds entry names read from scene documents.
const maxEntryNameLength = 128

// ValidateEntryName validates a chain entry name read from user input.
// The core chain accepts any string; documents are held to a stricter rule:
//   - No empty names
//   - No control characters or null bytes
//   - Maximum length of 128 characters
func ValidateEntryName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "entry name cannot be empty")
	}

	if len(name) > maxEntryNameLength {
		return New(ErrCodeInvalidInput, "entry name too long (max %d characters)", maxEntryNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "entry name contains invalid control characters")
		}
	}

	return nil
}

// ValidatePath validates an output or input file path supplied on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateFormat checks that format is one of the allowed output formats.
// Comparison is case-insensitive.
func ValidateFormat(format string, allowed []string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !slices.Contains(allowed, strings.ToLower(format)) {
		return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(allowed, ", "))
	}
	return nil
}

// axisRegex matches a single rotation axis.
var axisRegex = regexp.MustCompile(`^[xyzXYZ]$`)

// ValidateAxis validates a rotation axis name ("x", "y" or "z").
func ValidateAxis(axis string) error {
	if !axisRegex.MatchString(axis) {
		return New(ErrCodeInvalidTransform, "invalid rotation axis %q (want x, y or z)", axis)
	}
	return nil
}
