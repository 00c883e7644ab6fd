package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxTitleLength bounds action and tab titles. Longer titles cannot fit under
// a 56pt action circle on any size class.
const maxTitleLength = 64

// ValidateTitle checks an action or tab title.
//
// Titles must be non-empty, free of control characters (including newlines,
// which would break the single-line label) and at most 64 characters.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return New(ErrCodeInvalidConfig, "title cannot be empty")
	}

	if len([]rune(title)) > maxTitleLength {
		return New(ErrCodeInvalidConfig, "title %q too long (max %d characters)", title, maxTitleLength)
	}

	for _, r := range title {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "title %q contains control characters", title)
		}
	}

	return nil
}

// flagNameRegex matches feature flag identifiers used by visibility conditions.
var flagNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)

// ValidateCondition checks a visibility condition expression.
//
// A condition is empty (always visible), a flag name, or a flag name prefixed
// with "!" to negate it.
func ValidateCondition(when string) error {
	if when == "" {
		return nil
	}
	name := strings.TrimPrefix(when, "!")
	if !flagNameRegex.MatchString(name) {
		return New(ErrCodeInvalidConfig, "invalid condition %q (want flag or !flag)", when)
	}
	return nil
}

// ValidateDimension checks that a geometric configuration value is positive.
func ValidateDimension(name string, v float64) error {
	if v <= 0 {
		return New(ErrCodeInvalidConfig, "%s must be positive, got %g", name, v)
	}
	return nil
}
