package errors

import (
	stderrors "errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind is the error taxonomy shared by every handler.
type Kind string

const (
	KindValidation   Kind = "VALIDATION_FAILED"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindForbidden    Kind = "FORBIDDEN"
	KindNotFound     Kind = "NOT_FOUND"
	KindServer       Kind = "SERVER_ERROR"
)

// APIError carries a taxonomy kind and the human-readable message sent to clients.
type APIError struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// StatusCode maps the kind onto an HTTP status.
func (e *APIError) StatusCode() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func New(kind Kind, message string) *APIError {
	return &APIError{Kind: kind, Message: message}
}

func Validation(message string) *APIError {
	return New(KindValidation, message)
}

func Unauthorized(message string) *APIError {
	if message == "" {
		message = "You are not logged in. Please log in to get access"
	}
	return New(KindUnauthorized, message)
}

func Forbidden(message string) *APIError {
	if message == "" {
		message = "You do not have permission to perform this action"
	}
	return New(KindForbidden, message)
}

func NotFound(message string) *APIError {
	if message == "" {
		message = "Resource not found"
	}
	return New(KindNotFound, message)
}

// Server wraps an unexpected fault. The wrapped error is logged, never sent.
func Server(message string, err error) *APIError {
	if message == "" {
		message = "Something went wrong"
	}
	return &APIError{Kind: KindServer, Message: message, Err: err}
}

// KindOf returns the taxonomy kind of err, KindServer for anything unclassified.
func KindOf(err error) Kind {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindServer
}

// Respond writes the error envelope and aborts the handler chain.
func Respond(c *gin.Context, err error) {
	var apiErr *APIError
	if !stderrors.As(err, &apiErr) {
		apiErr = Server("", err)
	}

	status := apiErr.StatusCode()
	if status >= http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}

	envelopeStatus := "fail"
	if status >= http.StatusInternalServerError {
		envelopeStatus = "error"
	}

	c.AbortWithStatusJSON(status, gin.H{
		"status":  envelopeStatus,
		"message": apiErr.Message,
	})
}
