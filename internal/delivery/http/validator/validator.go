// Package validator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound request DTOs.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates the request validator used by the HTTP server.
func New() echo.Validator {
	return &echoValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Violations surface as 400s with the
// validator's field report as the message.
func (v *echoValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
