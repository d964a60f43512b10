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

// TrackingHandler holds dependencies for delivery-tracking handlers.
type TrackingHandler struct {
	uc     usecase.TrackingUsecase
	logger *slog.Logger
}

// NewTrackingHandler is the constructor for TrackingHandler, injected by Fx.
func NewTrackingHandler(uc usecase.TrackingUsecase, logger *slog.Logger) *TrackingHandler {
	return &TrackingHandler{uc: uc, logger: logger}
}

type trackingLocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type trackingResponse struct {
	ID               uuid.UUID                 `json:"id"`
	PurchaseID       uuid.UUID                 `json:"purchase_id"`
	DeliveryPersonID *uuid.UUID                `json:"delivery_person_id,omitempty"`
	Status           entity.TrackingStatus     `json:"status"`
	LastLocation     *trackingLocationResponse `json:"last_location,omitempty"`
	EstimatedTime    *string                   `json:"estimated_time,omitempty"`
	Purchase         *purchaseResponse         `json:"purchase,omitempty"`
	DeliveryPerson   *profileResponse          `json:"delivery_person,omitempty"`
	CreatedAt        time.Time                 `json:"created_at"`
	UpdatedAt        time.Time                 `json:"updated_at"`
}

func newTrackingResponse(tracking *entity.Tracking) *trackingResponse {
	if tracking == nil {
		return nil
	}

	resp := &trackingResponse{
		ID:               tracking.ID,
		PurchaseID:       tracking.PurchaseID,
		DeliveryPersonID: tracking.DeliveryPersonID,
		Status:           tracking.Status,
		EstimatedTime:    tracking.EstimatedTime,
		Purchase:         newPurchaseResponse(tracking.Purchase),
		DeliveryPerson:   newProfileResponse(tracking.DeliveryPerson),
		CreatedAt:        tracking.CreatedAt,
		UpdatedAt:        tracking.UpdatedAt,
	}
	if tracking.LastLocation != nil {
		resp.LastLocation = &trackingLocationResponse{
			Latitude:  tracking.LastLocation.Lat(),
			Longitude: tracking.LastLocation.Lon(),
		}
	}

	return resp
}

func newTrackingResponses(trackings []*entity.Tracking) []*trackingResponse {
	out := make([]*trackingResponse, 0, len(trackings))
	for _, tracking := range trackings {
		out = append(out, newTrackingResponse(tracking))
	}

	return out
}

type updateTrackingRequest struct {
	Status        *string                   `json:"status"`
	Location      *trackingLocationResponse `json:"location" validate:"omitempty"`
	EstimatedTime *string                   `json:"estimated_time"`
	AssignToMe    bool                      `json:"assign_to_me"`
}

// GetInfo retrieves a tracking record with its purchase and courier.
func (h *TrackingHandler) GetInfo(c echo.Context) error {
	trackingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid tracking ID")
	}

	tracking, err := h.uc.GetInfo(c.Request().Context(), trackingID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTrackingResponse(tracking), "Tracking retrieved successfully")
}

// GetLastByBuyer retrieves the most recent tracking of the caller's
// purchases, or no data when there is none.
func (h *TrackingHandler) GetLastByBuyer(c echo.Context) error {
	buyerID, ok := profileIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid profile ID in token")
	}

	tracking, err := h.uc.GetLastByBuyer(c.Request().Context(), buyerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTrackingResponse(tracking), "Tracking retrieved successfully")
}

// UpdateTracking applies a partial update to a tracking record: the courier
// assignment, the delivery status, the last reported position.
func (h *TrackingHandler) UpdateTracking(c echo.Context) error {
	courierID, ok := profileIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid profile ID in token")
	}

	trackingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid tracking ID")
	}

	var req updateTrackingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tracking update input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdateTrackingInput{
		EstimatedTime: req.EstimatedTime,
	}
	if req.AssignToMe {
		input.CourierID = &courierID
	}
	if req.Status != nil {
		status := entity.TrackingStatus(*req.Status)
		input.Status = &status
	}
	if req.Location != nil {
		input.Location = &usecase.TrackingLocation{
			Latitude:  req.Location.Latitude,
			Longitude: req.Location.Longitude,
		}
	}

	tracking, err := h.uc.UpdateTracking(c.Request().Context(), courierID, trackingID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTrackingResponse(tracking), "Tracking updated successfully")
}

// ListMyDeliveries retrieves the deliveries assigned to the caller.
func (h *TrackingHandler) ListMyDeliveries(c echo.Context) error {
	courierID, ok := profileIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid profile ID in token")
	}

	trackings, err := h.uc.ListByCourier(c.Request().Context(), courierID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTrackingResponses(trackings), "Deliveries retrieved successfully")
}
