package recordings

import "errors"

// Common error codes
const (
	ErrCodeInvalidComponentSet    = "INVALID_COMPONENT_SET"
	ErrCodeInconsistentComponents = "INCONSISTENT_COMPONENTS"
	ErrCodeInvalidAzimuth         = "INVALID_AZIMUTH"
)

// RecordingError represents recording construction and rotation errors
type RecordingError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (e *RecordingError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *RecordingError) Unwrap() error {
	return e.Cause
}

// NewInvalidComponentSetError reports a component-code set that is neither
// {Z,R,T} nor {Z,N,E}.
func NewInvalidComponentSetError(message string) *RecordingError {
	return &RecordingError{Code: ErrCodeInvalidComponentSet, Message: message}
}

// NewInconsistentComponentsError reports components disagreeing on sample
// interval or sample count.
func NewInconsistentComponentsError(message string) *RecordingError {
	return &RecordingError{Code: ErrCodeInconsistentComponents, Message: message}
}

// NewInvalidAzimuthError reports a rotation azimuth outside [0, 360)
func NewInvalidAzimuthError(message string) *RecordingError {
	return &RecordingError{Code: ErrCodeInvalidAzimuth, Message: message}
}

// IsInvalidComponentSet reports whether err is a component-set failure
func IsInvalidComponentSet(err error) bool {
	return hasCode(err, ErrCodeInvalidComponentSet)
}

// IsInconsistentComponents reports whether err is a consistency failure
func IsInconsistentComponents(err error) bool {
	return hasCode(err, ErrCodeInconsistentComponents)
}

// IsInvalidAzimuth reports whether err is an azimuth range failure
func IsInvalidAzimuth(err error) bool {
	return hasCode(err, ErrCodeInvalidAzimuth)
}

func hasCode(err error, code string) bool {
	var re *RecordingError
	if errors.As(err, &re) {
		return re.Code == code
	}
	return false
}
