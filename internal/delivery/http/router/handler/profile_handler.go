package handler

import (
	"log/slog"
	"net/http"
	"time"

	"feira/internal/delivery/http/response"
	"feira/internal/domain/entity"
	"feira/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{uc: uc, logger: logger}
}

type profileResponse struct {
	ID        uuid.UUID `json:"id"`
	Role      string    `json:"role,omitempty"`
	FullName  string    `json:"full_name"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Endereco  string    `json:"endereco,omitempty"`
	Telefone  string    `json:"telefone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newProfileResponse(profile *entity.Profile) *profileResponse {
	if profile == nil {
		return nil
	}

	return &profileResponse{
		ID:        profile.ID,
		Role:      string(profile.Role),
		FullName:  profile.FullName,
		AvatarURL: profile.AvatarURL,
		Endereco:  profile.Endereco,
		Telefone:  profile.Telefone,
		CreatedAt: profile.CreatedAt,
		UpdatedAt: profile.UpdatedAt,
	}
}

func newProfileResponses(profiles []*entity.Profile) []*profileResponse {
	out := make([]*profileResponse, 0, len(profiles))
	for _, profile := range profiles {
		out = append(out, newProfileResponse(profile))
	}

	return out
}

type updateProfileRequest struct {
	FullName  *string `json:"full_name" validate:"omitempty,max=120"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,url"`
	Endereco  *string `json:"endereco"`
	Telefone  *string `json:"telefone"`
	Role      *string `json:"role"`
}

// GetMe handles the request for the caller's own profile.
func (h *ProfileHandler) GetMe(c echo.Context) error {
	profileID, ok := profileIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid profile ID in token")
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), profileID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProfileResponse(profile), "Profile retrieved successfully")
}

// UpdateMe handles a partial update of the caller's own profile.
func (h *ProfileHandler) UpdateMe(c echo.Context) error {
	profileID, ok := profileIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid profile ID in token")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile update input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdateProfileInput{
		FullName:  req.FullName,
		AvatarURL: req.AvatarURL,
		Endereco:  req.Endereco,
		Telefone:  req.Telefone,
	}
	if req.Role != nil {
		role := entity.Role(*req.Role)
		input.Role = &role
	}

	profile, err := h.uc.UpdateProfile(c.Request().Context(), profileID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProfileResponse(profile), "Profile updated successfully")
}

// GetStore handles the public request for one seller profile.
func (h *ProfileHandler) GetStore(c echo.Context) error {
	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid store ID")
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProfileResponse(profile), "Store retrieved successfully")
}

// ListStores handles the public request for every seller profile.
func (h *ProfileHandler) ListStores(c echo.Context) error {
	stores, err := h.uc.ListStores(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProfileResponses(stores), "Stores retrieved successfully")
}
