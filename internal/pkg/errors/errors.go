package errors

import (
	"fmt"
)

type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
	cause      error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap отдаёт первопричину для errors.Is/As
func (e *AppError) Unwrap() error {
	return e.cause
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// WithDetails возвращает копию ошибки с деталями
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// WithCause возвращает копию ошибки, оборачивающую первопричину.
// Сообщение дополняется текстом причины, сама причина доступна через Unwrap.
func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.cause = cause
	if cause != nil {
		clone.Message = fmt.Sprintf("%s: %v", e.Message, cause)
	}
	return &clone
}
