package service

import "net/http"

// ServiceError carries the HTTP status a failure maps to and a message safe to show callers
type ServiceError struct {
	Code    int
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func NewServiceError(code int, message string) *ServiceError {
	return &ServiceError{Code: code, Message: message}
}

func badRequest(message string) *ServiceError {
	return NewServiceError(http.StatusBadRequest, message)
}

func notFound(message string) *ServiceError {
	return NewServiceError(http.StatusNotFound, message)
}
