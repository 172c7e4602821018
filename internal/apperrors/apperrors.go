package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Failure kinds surfaced by the repositories. Callers branch on these with
// errors.Is; the concrete driver error stays wrapped underneath.
var (
	// ErrConnection means the store is unreachable or misconfigured.
	// Fatal at startup, never retried.
	ErrConnection = errors.New("database connection failed")
	// ErrNotFound means a lookup matched no row.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument means the caller supplied a contract-violating
	// combination; it is rejected before any write is attempted.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrConstraintViolation means a write would break composite
	// uniqueness; the write is rejected with no partial state.
	ErrConstraintViolation = errors.New("constraint violation")
)

// Translate maps a GORM/driver error onto a failure kind, keeping the
// original error wrapped. Errors that already carry a kind pass through.
func Translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrInvalidArgument),
		errors.Is(err, ErrConstraintViolation),
		errors.Is(err, ErrConnection):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	// GORM does not translate every driver error inside complex
	// operations; duplicate keys from MySQL and Postgres have to be
	// matched by hand.
	case errors.Is(err, gorm.ErrDuplicatedKey),
		strings.Contains(err.Error(), "Duplicate entry"),
		strings.Contains(err.Error(), "SQLSTATE 23505"):
		return fmt.Errorf("%w: %v", ErrConstraintViolation, err)
	default:
		return err
	}
}

// APIError is the standardized error body returned by the API layer.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

const (
	CodeNotFound      = "NOT_FOUND"
	CodeInvalidInput  = "INVALID_INPUT"
	CodeConflict      = "CONFLICT"
	CodeInternalError = "INTERNAL_ERROR"
)

// Respond writes the HTTP response matching the error's failure kind.
func Respond(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, &APIError{Code: CodeNotFound, Message: err.Error()})
	case errors.Is(err, ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, &APIError{Code: CodeInvalidInput, Message: err.Error()})
	case errors.Is(err, ErrConstraintViolation):
		c.JSON(http.StatusConflict, &APIError{Code: CodeConflict, Message: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, &APIError{Code: CodeInternalError, Message: "internal server error"})
	}
}

// BadRequest rejects a request that failed JSON binding.
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "invalid request body"
	}
	c.JSON(http.StatusBadRequest, &APIError{Code: CodeInvalidInput, Message: message})
}
