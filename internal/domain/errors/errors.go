// Package errors defines the application-level error types shared by the
// usecase and delivery layers.
package errors

import (
	"net/http"

	"feira/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. User-facing messages are in Brazilian Portuguese,
// the locale of the product.
var (
	// Account and authentication errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"Perfil não encontrado",
		"",
	)

	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_REGISTERED",
		"Este e-mail já está cadastrado",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"E-mail ou senha incorretos",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Sessão expirada, faça login novamente",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Erro ao processar a senha",
		"",
	)

	// Catalog errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Produto não encontrado",
		"",
	)

	ErrProductOwnership = NewBaseError(
		http.StatusForbidden,
		"PRODUCT_OWNERSHIP_VIOLATION",
		"Você não tem permissão para alterar este produto",
		"",
	)

	ErrImageUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"IMAGE_UPLOAD_FAILED",
		"Falha ao enviar a imagem do produto",
		"",
	)

	// Order lifecycle errors
	ErrPurchaseNotFound = NewBaseError(
		http.StatusNotFound,
		"PURCHASE_NOT_FOUND",
		"Compra não encontrada",
		"",
	)

	ErrPurchaseNotOpen = NewBaseError(
		http.StatusConflict,
		"PURCHASE_NOT_OPEN",
		"Esta compra já foi finalizada",
		"",
	)

	ErrPurchaseNotPaid = NewBaseError(
		http.StatusConflict,
		"PURCHASE_NOT_PAID",
		"Esta compra ainda não foi paga",
		"",
	)

	ErrPurchaseEmpty = NewBaseError(
		http.StatusUnprocessableEntity,
		"PURCHASE_EMPTY",
		"O carrinho está vazio",
		"",
	)

	ErrPurchaseOwnership = NewBaseError(
		http.StatusForbidden,
		"PURCHASE_OWNERSHIP_VIOLATION",
		"Você não tem permissão para alterar esta compra",
		"",
	)

	// Tracking errors
	ErrTrackingNotFound = NewBaseError(
		http.StatusNotFound,
		"TRACKING_NOT_FOUND",
		"Rastreio não encontrado",
		"",
	)

	ErrTrackingAlreadyExists = NewBaseError(
		http.StatusConflict,
		"TRACKING_ALREADY_EXISTS",
		"Esta compra já possui um rastreio",
		"",
	)

	ErrTrackingOwnership = NewBaseError(
		http.StatusForbidden,
		"TRACKING_OWNERSHIP_VIOLATION",
		"Esta entrega está atribuída a outro entregador",
		"",
	)

	ErrTrackingTransition = NewBaseError(
		http.StatusConflict,
		"TRACKING_INVALID_TRANSITION",
		"Mudança de status de entrega inválida",
		"",
	)

	// Review and vehicle errors
	ErrReviewNotFound = NewBaseError(
		http.StatusNotFound,
		"REVIEW_NOT_FOUND",
		"Avaliação não encontrada",
		"",
	)

	ErrVehicleNotFound = NewBaseError(
		http.StatusNotFound,
		"VEHICLE_NOT_FOUND",
		"Veículo não encontrado",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Dados de entrada inválidos",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Falha na transação do banco de dados",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erro interno do sistema",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Acesso negado",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Recurso não encontrado",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Conflito de recursos",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Falha na execução do banco de dados"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
