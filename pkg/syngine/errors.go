package syngine

import "errors"

// Common error codes
const (
	ErrCodeInvalidGeophysicalInput = "INVALID_GEOPHYSICAL_INPUT"
	ErrCodeRequestFailed           = "REQUEST_FAILED"
	ErrCodeBadStatus               = "BAD_STATUS"
	ErrCodeDecodeFailed            = "DECODE_FAILED"
	ErrCodeUnsupportedEncoding     = "UNSUPPORTED_ENCODING"
)

// ServiceError represents synthetic-seismogram service errors
type ServiceError struct {
	Code    string `json:"code"`
	URL     string `json:"url,omitempty"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// NewServiceError creates a new service error
func NewServiceError(code, url, message string, cause error) *ServiceError {
	return &ServiceError{Code: code, URL: url, Message: message, Cause: cause}
}

// NewInvalidGeophysicalInputError reports an out-of-range request parameter
func NewInvalidGeophysicalInputError(message string) *ServiceError {
	return &ServiceError{Code: ErrCodeInvalidGeophysicalInput, Message: message}
}

// IsInvalidGeophysicalInput reports whether err is a request validation failure
func IsInvalidGeophysicalInput(err error) bool {
	return hasCode(err, ErrCodeInvalidGeophysicalInput)
}

// IsUnsupportedEncoding reports whether err is a payload-encoding failure
func IsUnsupportedEncoding(err error) bool {
	return hasCode(err, ErrCodeUnsupportedEncoding)
}

func hasCode(err error, code string) bool {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}
