// Package apperror defines the domain error taxonomy shared by the service
// layer. Handlers translate these into HTTP statuses; everything that is not an
// *Error is treated as an internal failure and never shown to clients.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies the error class independent of transport.
type Code string

const (
	CodeValidation        Code = "validation"
	CodeNotFound          Code = "not_found"
	CodeInsufficientStock Code = "insufficient_stock"
	CodeNegativeStock     Code = "negative_stock"
)

type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string { return e.Message }

func NewValidation(format string, args ...any) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func NewNotFound(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewInsufficientStock names the offending product, as required by the
// sale-posting contract.
func NewInsufficientStock(productName string) *Error {
	return &Error{
		Code:    CodeInsufficientStock,
		Message: fmt.Sprintf("not enough stock for product %q", productName),
	}
}

func NewNegativeStock(productName string) *Error {
	return &Error{
		Code:    CodeNegativeStock,
		Message: fmt.Sprintf("unposting would drive stock of product %q negative", productName),
	}
}

// IsCode reports whether err is an *Error with the given code.
func IsCode(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// HTTPStatus maps a service error to its transport status. Unknown errors map
// to 500 — the handler layer substitutes an opaque body for those.
func HTTPStatus(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Code {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeValidation, CodeInsufficientStock, CodeNegativeStock:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
