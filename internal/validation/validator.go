package validation

import (
	"regexp"
	"strings"

	"attendance-tracker/internal/config"
	"attendance-tracker/internal/domain"
)

// Validator provides common validation utilities
type Validator struct {
	uuidRegex *regexp.Regexp
	config    *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		uuidRegex: regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`),
		config:    nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	v := NewValidator()
	v.config = cfg
	return v
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidNameLength checks if an employee name length is within configured limits
func (v *Validator) IsValidNameLength(name string) bool {
	length := len(strings.TrimSpace(name))
	return length >= v.getNameMinLength() && length <= v.getNameMaxLength()
}

// IsValidEmployeeID checks if an employee identifier is a well-formed UUID
func (v *Validator) IsValidEmployeeID(id string) bool {
	return v.uuidRegex.MatchString(id)
}

// IsValidDate checks if a date string is a well-formed record date key
func (v *Validator) IsValidDate(date string) bool {
	return domain.IsValidDate(date)
}

// IsValidClockTime checks if a string is a parseable wall-clock time
func (v *Validator) IsValidClockTime(s string) bool {
	_, ok := domain.ParseTimeToMinutes(s)
	return ok
}

// IsValidClockOrder checks that the first time does not come after the
// second. Both must already be valid clock times.
func (v *Validator) IsValidClockOrder(first, second string) bool {
	a, okA := domain.ParseTimeToMinutes(first)
	b, okB := domain.ParseTimeToMinutes(second)
	if !okA || !okB {
		return false
	}
	return a <= b
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// getNameMinLength returns configured minimum name length or default
func (v *Validator) getNameMinLength() int {
	if v.config != nil {
		return v.config.Validation.NameMinLength
	}
	return 1 // Default minimum
}

// getNameMaxLength returns configured maximum name length or default
func (v *Validator) getNameMaxLength() int {
	if v.config != nil {
		return v.config.Validation.NameMaxLength
	}
	return 255 // Default maximum
}
