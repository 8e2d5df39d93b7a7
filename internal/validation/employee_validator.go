package validation

import (
	"attendance-tracker/internal/config"
	"attendance-tracker/internal/domain"
)

// EmployeeValidator provides validation for Employee-related operations
type EmployeeValidator struct {
	validator *Validator
}

// NewEmployeeValidator creates a new employee validator
func NewEmployeeValidator() *EmployeeValidator {
	return &EmployeeValidator{
		validator: NewValidator(),
	}
}

// NewEmployeeValidatorWithConfig creates a new employee validator with configuration
func NewEmployeeValidatorWithConfig(cfg *config.Config) *EmployeeValidator {
	return &EmployeeValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateName validates an employee name for create and rename operations
func (ev *EmployeeValidator) ValidateName(name string) error {
	validationError := NewValidationError()

	trimmed := ev.validator.TrimAndValidateString(name)
	if !ev.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("name")
		return validationError
	}

	if !ev.validator.IsValidNameLength(trimmed) {
		validationError.AddInvalidLengthError("name", trimmed,
			ev.validator.getNameMinLength(), ev.validator.getNameMaxLength())
		return validationError
	}

	return nil
}

// ValidateRole validates an employee role value
func (ev *EmployeeValidator) ValidateRole(role string) error {
	validationError := NewValidationError()

	if role == "" {
		validationError.AddRequiredError("role")
		return validationError
	}

	if !domain.IsValidRole(role) {
		validationError.AddInvalidValueError("role", role, "must be one of: admin, member")
		return validationError
	}

	return nil
}

// ValidateEmployeeID validates an employee identifier
func (ev *EmployeeValidator) ValidateEmployeeID(id string) error {
	validationError := NewValidationError()

	if id == "" {
		validationError.AddRequiredError("employee_id")
		return validationError
	}

	if !ev.validator.IsValidEmployeeID(id) {
		validationError.AddInvalidFormatError("employee_id", id, "UUID")
		return validationError
	}

	return nil
}
