package handler

import (
	"log/slog"
	"net/http"

	"feira/internal/delivery/http/response"
	"feira/internal/domain/entity"
	"feira/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for authentication handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{uc: uc, logger: logger}
}

type signUpRequest struct {
	FullName string `json:"full_name" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required"`
	Endereco string `json:"endereco"`
	Telefone string `json:"telefone"`
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type authResponse struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	Profile      *profileResponse `json:"profile"`
}

func newAuthResponse(output *usecase.AuthOutput) *authResponse {
	return &authResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		Profile:      newProfileResponse(output.Profile),
	}
}

// SignUp handles the account registration request.
func (h *AccountHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-up input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.SignUp(c.Request().Context(), &usecase.SignUpInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.Role(req.Role),
		Endereco: req.Endereco,
		Telefone: req.Telefone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newAuthResponse(output), "Account created successfully")
}

// SignIn handles the login request.
func (h *AccountHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.SignIn(c.Request().Context(), &usecase.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAuthResponse(output), "Signed in successfully")
}

// RefreshToken handles the token refresh request.
func (h *AccountHandler) RefreshToken(c echo.Context) error {
	var req refreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"access_token": output.AccessToken,
	}, "Token refreshed successfully")
}
