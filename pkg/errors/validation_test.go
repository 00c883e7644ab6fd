package errors

import (
	"strings"
	"testing"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "Scan", false},
		{"with spaces", "New Expense", false},
		{"unicode", "Für Später", false},
		{"max length", strings.Repeat("a", 64), false},

		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"too long", strings.Repeat("a", 65), true},
		{"newline", "two\nlines", true},
		{"null byte", "foo\x00bar", true},
		{"tab", "foo\tbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTitle(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidConfig) {
				t.Errorf("ValidateTitle(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidConfig)
			}
		})
	}
}

func TestValidateCondition(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty means always", "", false},
		{"flag", "beta", false},
		{"negated flag", "!beta", false},
		{"dotted flag", "features.scan", false},
		{"underscore flag", "_internal", false},

		{"bare bang", "!", true},
		{"double bang", "!!beta", true},
		{"leading digit", "1beta", true},
		{"space", "beta flag", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCondition(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCondition(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDimension(t *testing.T) {
	if err := ValidateDimension("width", 390); err != nil {
		t.Errorf("ValidateDimension(390) = %v, want nil", err)
	}
	for _, v := range []float64{0, -1} {
		err := ValidateDimension("width", v)
		if err == nil {
			t.Errorf("ValidateDimension(%v) = nil, want error", v)
			continue
		}
		if !strings.Contains(UserMessage(err), "width") {
			t.Errorf("UserMessage() = %q, want mention of width", UserMessage(err))
		}
	}
}
