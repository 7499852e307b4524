package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL error codes the API distinguishes.
const (
	PgErrUniqueViolation     = "23505" // unique_violation
	PgErrForeignKeyViolation = "23503" // foreign_key_violation
	PgErrNotNullViolation    = "23502" // not_null_violation
	PgErrCheckViolation      = "23514" // check_violation
)

// AppError is an error that already knows which HTTP status it maps to.
type AppError struct {
	StatusCode    int    `json:"statusCode"`
	StatusMessage string `json:"statusMessage"`
	Err           error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.StatusCode, e.StatusMessage, e.Err)
	}
	return fmt.Sprintf("%d %s", e.StatusCode, e.StatusMessage)
}

func (e *AppError) Unwrap() error { return e.Err }

// New creates an AppError with an explicit status.
func New(status int, message string) *AppError {
	return &AppError{StatusCode: status, StatusMessage: message}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message)
}

func Unauthorized() *AppError {
	return New(http.StatusUnauthorized, "Unauthorized")
}

func NotFound(entity string) *AppError {
	return New(http.StatusNotFound, entity+" not found")
}

func Conflict(message string) *AppError {
	return New(http.StatusConflict, message)
}

func TooManyRequests(message string) *AppError {
	return New(http.StatusTooManyRequests, message)
}

// Internal hides the cause from the client but keeps it for logging.
func Internal(err error) *AppError {
	return &AppError{
		StatusCode:    http.StatusInternalServerError,
		StatusMessage: "Internal server error",
		Err:           err,
	}
}

// From returns err as an AppError, wrapping unknown failures as 500.
func From(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// FromDB translates a repository error for the named entity.
//
//   - record not found          -> 404 "<Entity> not found"
//   - unique constraint         -> 400 "<Entity> already exists"
//   - foreign key constraint    -> 400 "<Entity> references a missing record"
//   - anything else             -> 500
func FromDB(err error, entity string) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(entity)
	}
	if IsUniqueViolation(err) {
		return &AppError{StatusCode: http.StatusBadRequest, StatusMessage: entity + " already exists", Err: err}
	}
	if IsForeignKeyViolation(err) {
		return &AppError{StatusCode: http.StatusBadRequest, StatusMessage: entity + " references a missing record", Err: err}
	}
	return Internal(err)
}

// IsUniqueViolation reports duplicate-key failures from either the translated
// gorm error or the raw postgres error.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrUniqueViolation
}

// IsForeignKeyViolation reports FK failures.
func IsForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrForeignKeyViolation
}
