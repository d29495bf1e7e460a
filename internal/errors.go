package internal

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeConflict     ErrorType = "CONFLICT"
	ErrorTypeInternal     ErrorType = "INTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeEmptyUpdate      ErrorCode = "EMPTY_UPDATE"
	ErrCodeInvalidFileType  ErrorCode = "INVALID_FILE_TYPE"
	ErrCodeFileTooLarge     ErrorCode = "FILE_TOO_LARGE"

	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	ErrCodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"

	ErrCodeEmailTaken          ErrorCode = "EMAIL_TAKEN"
	ErrCodeDepartmentNameTaken ErrorCode = "DEPARTMENT_NAME_TAKEN"
	ErrCodeIdentityNumberTaken ErrorCode = "IDENTITY_NUMBER_TAKEN"
	ErrCodeDepartmentNotEmpty  ErrorCode = "DEPARTMENT_NOT_EMPTY"

	ErrCodeUserNotFound       ErrorCode = "USER_NOT_FOUND"
	ErrCodeDepartmentNotFound ErrorCode = "DEPARTMENT_NOT_FOUND"
	ErrCodeEmployeeNotFound   ErrorCode = "EMPLOYEE_NOT_FOUND"

	ErrCodeConstraintViolation ErrorCode = "CONSTRAINT_VIOLATION"
	ErrCodeStorageFailure      ErrorCode = "STORAGE_FAILURE"
)

// AppError is the single error shape crossing layer boundaries. Handlers map
// it to an HTTP status; everything below handlers only builds or wraps it.
type AppError struct {
	Type       ErrorType   `json:"type"`
	Code       ErrorCode   `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	StatusCode int         `json:"-"`
	Cause      error       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	copied := *e
	copied.Cause = cause
	return &copied
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	copied := *e
	copied.Details = details
	return &copied
}

// GetDetailedMessage flattens field-level validation messages into one string
// for the response body.
func (e *AppError) GetDetailedMessage() string {
	if e.Details != nil {
		if validationErrors, ok := e.Details.(ValidationErrors); ok && len(validationErrors.Errors) > 0 {
			messages := make([]string, len(validationErrors.Errors))
			for i, err := range validationErrors.Errors {
				messages[i] = err.Message
			}
			return strings.Join(messages, "; ")
		}
	}
	return e.Message
}

// ValidationError is one violated rule on one field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewValidationFieldError(field, message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       ErrCodeValidationFailed,
		Message:    "Validation failed",
		StatusCode: http.StatusBadRequest,
		Details: ValidationErrors{
			Errors: []ValidationError{
				{Field: field, Message: message, Code: string(code)},
			},
		},
	}
}

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

func NewUnauthorizedError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func NewConflictError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeConflict,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusConflict,
	}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       "INTERNAL_ERROR",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

var (
	ErrInvalidCredentials = NewUnauthorizedError("invalid email or password", ErrCodeInvalidCredentials)
	ErrInvalidToken       = NewUnauthorizedError("invalid token", ErrCodeInvalidToken)
	ErrTokenExpired       = NewUnauthorizedError("token has expired", ErrCodeTokenExpired)

	ErrEmailTaken          = NewConflictError("email already exists", ErrCodeEmailTaken)
	ErrDepartmentNameTaken = NewConflictError("department name already exists", ErrCodeDepartmentNameTaken)
	ErrIdentityNumberTaken = NewConflictError("identity number already exists", ErrCodeIdentityNumberTaken)
	ErrDepartmentNotEmpty  = NewConflictError("department still contains employees", ErrCodeDepartmentNotEmpty)

	ErrUserNotFound       = NewNotFoundError("user not found", ErrCodeUserNotFound)
	ErrDepartmentNotFound = NewNotFoundError("department not found", ErrCodeDepartmentNotFound)
	ErrEmployeeNotFound   = NewNotFoundError("employee not found", ErrCodeEmployeeNotFound)

	ErrEmptyUpdate = NewValidationError("no fields to update", ErrCodeEmptyUpdate)

	ErrInvalidFileType = NewValidationError("file must be a jpeg or png image", ErrCodeInvalidFileType)
	ErrFileTooLarge    = NewValidationError("file exceeds the maximum size of 100KiB", ErrCodeFileTooLarge)
)

func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Postgres SQLSTATE classes we care about. Classification goes by the
// structured code, never by message text.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// FromPgError translates a storage error into the taxonomy. Constraint
// violations become Conflict so a lost uniqueness race surfaces the same way
// as the friendly pre-check; everything else is an internal storage failure.
func FromPgError(err error, message string) *AppError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation, pgForeignKeyViolation:
			return NewConflictError(message, ErrCodeConstraintViolation).WithCause(err)
		}
	}
	return NewInternalError(message, err)
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ErrorType   `json:"type"`
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}
