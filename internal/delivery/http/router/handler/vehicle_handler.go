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

// VehicleHandler holds dependencies for courier vehicle handlers.
type VehicleHandler struct {
	uc     usecase.VehicleUsecase
	logger *slog.Logger
}

// NewVehicleHandler is the constructor for VehicleHandler, injected by Fx.
func NewVehicleHandler(uc usecase.VehicleUsecase, logger *slog.Logger) *VehicleHandler {
	return &VehicleHandler{uc: uc, logger: logger}
}

type vehicleResponse struct {
	ID            uuid.UUID `json:"id"`
	DeliverymanID uuid.UUID `json:"deliveryman_id"`
	Model         string    `json:"model"`
	Brand         string    `json:"brand"`
	Plate         string    `json:"plate"`
	Year          string    `json:"year"`
	Type          string    `json:"type"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func newVehicleResponse(vehicle *entity.Vehicle) *vehicleResponse {
	if vehicle == nil {
		return nil
	}

	return &vehicleResponse{
		ID:            vehicle.ID,
		DeliverymanID: vehicle.DeliverymanID,
		Model:         vehicle.Model,
		Brand:         vehicle.Brand,
		Plate:         vehicle.Plate,
		Year:          vehicle.Year,
		Type:          string(vehicle.Type),
		CreatedAt:     vehicle.CreatedAt,
		UpdatedAt:     vehicle.UpdatedAt,
	}
}

func newVehicleResponses(vehicles []*entity.Vehicle) []*vehicleResponse {
	out := make([]*vehicleResponse, 0, len(vehicles))
	for _, vehicle := range vehicles {
		out = append(out, newVehicleResponse(vehicle))
	}

	return out
}

type createVehicleRequest struct {
	Model string `json:"model" validate:"required,max=80"`
	Brand string `json:"brand" validate:"required,max=80"`
	Plate string `json:"plate" validate:"required,max=10"`
	Year  string `json:"year" validate:"required,len=4,numeric"`
	Type  string `json:"type" validate:"required"`
}

type updateVehicleRequest struct {
	Model *string `json:"model" validate:"omitempty,max=80"`
	Brand *string `json:"brand" validate:"omitempty,max=80"`
	Plate *string `json:"plate" validate:"omitempty,max=10"`
	Year  *string `json:"year" validate:"omitempty,len=4,numeric"`
	Type  *string `json:"type"`
}

// CreateVehicle registers a new vehicle for the caller.
func (h *VehicleHandler) CreateVehicle(c echo.Context) error {
	deliverymanID, ok := profileIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid profile ID in token")
	}

	var req createVehicleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vehicle input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	vehicle, err := h.uc.CreateVehicle(c.Request().Context(), &usecase.CreateVehicleInput{
		DeliverymanID: deliverymanID,
		Model:         req.Model,
		Brand:         req.Brand,
		Plate:         req.Plate,
		Year:          req.Year,
		Type:          entity.VehicleType(req.Type),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newVehicleResponse(vehicle), "Vehicle created successfully")
}

// ListMyVehicles retrieves the caller's vehicles.
func (h *VehicleHandler) ListMyVehicles(c echo.Context) error {
	deliverymanID, ok := profileIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid profile ID in token")
	}

	vehicles, err := h.uc.ListByDeliveryman(c.Request().Context(), deliverymanID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newVehicleResponses(vehicles), "Vehicles retrieved successfully")
}

// UpdateVehicle applies a partial update to one of the caller's vehicles.
func (h *VehicleHandler) UpdateVehicle(c echo.Context) error {
	deliverymanID, ok := profileIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid profile ID in token")
	}

	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid vehicle ID")
	}

	var req updateVehicleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vehicle update input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdateVehicleInput{
		Model: req.Model,
		Brand: req.Brand,
		Plate: req.Plate,
		Year:  req.Year,
	}
	if req.Type != nil {
		vehicleType := entity.VehicleType(*req.Type)
		input.Type = &vehicleType
	}

	vehicle, err := h.uc.UpdateVehicle(c.Request().Context(), deliverymanID, vehicleID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newVehicleResponse(vehicle), "Vehicle updated successfully")
}

// DeleteVehicle removes one of the caller's vehicles.
func (h *VehicleHandler) DeleteVehicle(c echo.Context) error {
	deliverymanID, ok := profileIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid profile ID in token")
	}

	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid vehicle ID")
	}

	if err := h.uc.DeleteVehicle(c.Request().Context(), deliverymanID, vehicleID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Vehicle deleted successfully")
}
