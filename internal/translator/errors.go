package translator

import "fmt"

// ServiceError is the only error kind that crosses the translation boundary.
// It covers transport failures, quota exhaustion and malformed responses from
// an external translation service.
type ServiceError struct {
	Service string
	Message string
	Cause   error
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Service, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Service, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// NewServiceError wraps err as a ServiceError attributed to service. If err
// already is a ServiceError it is returned unchanged.
func NewServiceError(service, message string, err error) *ServiceError {
	if se, ok := err.(*ServiceError); ok {
		return se
	}
	return &ServiceError{Service: service, Message: message, Cause: err}
}
