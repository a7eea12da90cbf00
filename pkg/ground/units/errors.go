package units

import "errors"

// Common error codes
const (
	ErrCodeUnsupportedUnit  = "UNSUPPORTED_UNIT"
	ErrCodeIncompatibleUnit = "INCOMPATIBLE_UNIT"
)

// UnitError represents unit-system related errors
type UnitError struct {
	Code    string `json:"code"`
	Unit    string `json:"unit"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (e *UnitError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *UnitError) Unwrap() error {
	return e.Cause
}

// NewUnsupportedUnitError reports a unit string no kind recognizes
func NewUnsupportedUnitError(unit string) *UnitError {
	return &UnitError{
		Code:    ErrCodeUnsupportedUnit,
		Unit:    unit,
		Message: "unsupported unit: " + unit,
	}
}

// NewIncompatibleUnitError reports a same-kind operation given units of different kinds
func NewIncompatibleUnitError(unit, message string) *UnitError {
	return &UnitError{
		Code:    ErrCodeIncompatibleUnit,
		Unit:    unit,
		Message: message,
	}
}

// IsUnsupportedUnit reports whether err is an unsupported-unit failure
func IsUnsupportedUnit(err error) bool {
	return hasCode(err, ErrCodeUnsupportedUnit)
}

// IsIncompatibleUnit reports whether err is a cross-kind unit failure
func IsIncompatibleUnit(err error) bool {
	return hasCode(err, ErrCodeIncompatibleUnit)
}

func hasCode(err error, code string) bool {
	var ue *UnitError
	if errors.As(err, &ue) {
		return ue.Code == code
	}
	return false
}
