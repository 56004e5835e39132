package errors

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Postgres error classes we care about
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
)

// ErrorInfo pairs an error code with a user facing message
type ErrorInfo struct {
	Code    string // error code (see codes.go)
	Message string
}

// ParseError converts a low level error into a code and a safe message.
// Database internals never leak to the client; the context string hints
// which entity the caller was working on.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "An unexpected error occurred",
		}
	}

	// 1. GORM errors
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: getNotFoundMessage(context),
		}
	}

	// 2. Typed PostgreSQL errors from the driver
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pgUniqueViolation:
			return parseDuplicateKeyError(pqErr.Error(), context)
		case pgForeignKeyViolation:
			return parseForeignKeyError(pqErr.Error(), context)
		case pgNotNullViolation:
			return parseNotNullError(pqErr.Error(), context)
		}
	}

	errStr := err.Error()
	errStrLower := strings.ToLower(errStr)

	// 3. Constraint errors surfaced as plain strings (SQLite in tests,
	// errors rewrapped by GORM)
	if strings.Contains(errStrLower, "duplicate key") ||
		strings.Contains(errStrLower, "unique constraint") {
		return parseDuplicateKeyError(errStr, context)
	}
	if strings.Contains(errStrLower, "foreign key constraint") {
		return parseForeignKeyError(errStr, context)
	}
	if strings.Contains(errStrLower, "not null constraint") ||
		(strings.Contains(errStrLower, "null value") && strings.Contains(errStrLower, "not-null")) {
		return parseNotNullError(errStr, context)
	}

	// 4. Network errors
	if strings.Contains(errStrLower, "connection refused") ||
		strings.Contains(errStrLower, "no such host") ||
		strings.Contains(errStrLower, "timeout") {
		return ErrorInfo{
			Code:    InternalDatabaseError,
			Message: "A backing service is unreachable. Please try again later",
		}
	}

	// 5. Default internal error
	return ErrorInfo{
		Code:    InternalServerError,
		Message: getDefaultErrorMessage(context),
	}
}

func parseDuplicateKeyError(errStr string, context string) ErrorInfo {
	errLower := strings.ToLower(errStr)

	if strings.Contains(errLower, "email") || strings.Contains(errLower, "idx_users_email") {
		return ErrorInfo{
			Code:    AuthEmailAlreadyExists,
			Message: "Email is already registered",
		}
	}

	if strings.Contains(errLower, "pizzas") || strings.Contains(errLower, "idx_pizzas_name") {
		return ErrorInfo{
			Code:    ResourceAlreadyExists,
			Message: "A pizza with this name already exists",
		}
	}

	if strings.Contains(errLower, "pkey") || strings.Contains(errLower, "primary key") {
		return ErrorInfo{
			Code:    ResourceAlreadyExists,
			Message: "The record already exists. Please try again",
		}
	}

	return ErrorInfo{
		Code:    ResourceAlreadyExists,
		Message: "The record already exists",
	}
}

func parseForeignKeyError(errStr string, context string) ErrorInfo {
	errLower := strings.ToLower(errStr)

	if strings.Contains(errLower, "still referenced") {
		return ErrorInfo{
			Code:    ResourceConflict,
			Message: "The record is referenced by other data and cannot be removed",
		}
	}

	if strings.Contains(errLower, "user_id") || strings.Contains(errLower, "fk_users") {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: "User does not exist",
		}
	}
	if strings.Contains(errLower, "pizza_id") || strings.Contains(errLower, "fk_pizzas") {
		return ErrorInfo{
			Code:    PizzaNotFound,
			Message: "Pizza does not exist",
		}
	}

	return ErrorInfo{
		Code:    ResourceNotFound,
		Message: "A referenced record could not be found",
	}
}

func parseNotNullError(errStr string, context string) ErrorInfo {
	errLower := strings.ToLower(errStr)

	if strings.Contains(errLower, "email") {
		return ErrorInfo{Code: ValidationRequired, Message: "Email is required"}
	}
	if strings.Contains(errLower, "password") {
		return ErrorInfo{Code: ValidationRequired, Message: "Password is required"}
	}
	if strings.Contains(errLower, "name") {
		return ErrorInfo{Code: ValidationRequired, Message: "Name is required"}
	}

	return ErrorInfo{
		Code:    ValidationRequired,
		Message: "A required field is missing",
	}
}

func getNotFoundMessage(context string) string {
	contextLower := strings.ToLower(context)

	if strings.Contains(contextLower, "pizza") {
		return "Pizza not found"
	}
	if strings.Contains(contextLower, "user") {
		return "User not found"
	}
	if strings.Contains(contextLower, "cart") {
		return "Cart item not found"
	}

	return "The requested record could not be found"
}

// ParseAndRespond parses an error and writes the response in one call
func ParseAndRespond(c interface{ JSON(int, interface{}) }, statusCode int, err error, context string) {
	errorInfo := ParseError(err, context)
	c.JSON(statusCode, ErrorResponse{
		Error:   errorInfo.Code,
		Message: errorInfo.Message,
	})
}

func getDefaultErrorMessage(context string) string {
	contextLower := strings.ToLower(context)

	if strings.Contains(contextLower, "create") || strings.Contains(contextLower, "register") {
		return "Could not save the record. Please try again later"
	}
	if strings.Contains(contextLower, "update") {
		return "Could not update the record. Please try again later"
	}
	if strings.Contains(contextLower, "delete") {
		return "Could not delete the record. Please try again later"
	}
	if strings.Contains(contextLower, "checkout") {
		return "Could not place the order. Please try again later"
	}

	return "An unexpected error occurred. Please try again later"
}
