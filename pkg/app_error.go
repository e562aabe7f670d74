package pkg

import (
	"fmt"
	"net/http"
)

// AppError is the error type returned to HTTP clients.
//
// Operational errors are expected failures (bad input, missing records, rate limits).
// Non-operational errors carry an underlying cause that must be logged, never echoed.
type AppError struct {
	Code        string
	Message     string
	HTTPStatus  int
	Operational bool
	Err         error
}

// HTTPError is the JSON envelope written for failed requests.
type HTTPError struct {
	Success bool            `json:"success"`
	Error   HTTPErrorDetail `json:"error"`
}

type HTTPErrorDetail struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Operational: true}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Operational: false, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	status := e.HTTPStatus
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return HTTPError{
		Success: false,
		Error: HTTPErrorDetail{
			Code:    status,
			Message: e.Message,
			Reason:  e.Code,
		},
	}
}
