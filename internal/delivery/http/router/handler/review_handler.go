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

// ReviewHandler holds dependencies for review handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{uc: uc, logger: logger}
}

type reviewResponse struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	ProductID *uuid.UUID `json:"product_id,omitempty"`
	StoreID   *uuid.UUID `json:"store_id,omitempty"`
	Rating    int        `json:"rating"`
	Comment   string     `json:"comment,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func newReviewResponse(review *entity.Review) *reviewResponse {
	if review == nil {
		return nil
	}

	return &reviewResponse{
		ID:        review.ID,
		UserID:    review.UserID,
		ProductID: review.ProductID,
		StoreID:   review.StoreID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}

func newReviewResponses(reviews []*entity.Review) []*reviewResponse {
	out := make([]*reviewResponse, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, newReviewResponse(review))
	}

	return out
}

type createReviewRequest struct {
	ProductID *uuid.UUID `json:"product_id"`
	StoreID   *uuid.UUID `json:"store_id"`
	Rating    int        `json:"rating" validate:"required,min=1,max=5"`
	Comment   string     `json:"comment" validate:"max=1000"`
}

type updateReviewRequest struct {
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" validate:"omitempty,max=1000"`
}

// CreateReview handles posting a review against a product or a store.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	userID, ok := profileIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid profile ID in token")
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	review, err := h.uc.CreateReview(c.Request().Context(), &usecase.CreateReviewInput{
		UserID:    userID,
		ProductID: req.ProductID,
		StoreID:   req.StoreID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newReviewResponse(review), "Review created successfully")
}

// ListProductReviews handles the public listing of a product's reviews.
func (h *ReviewHandler) ListProductReviews(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	reviews, err := h.uc.ListByProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newReviewResponses(reviews), "Reviews retrieved successfully")
}

// ListStoreReviews handles the public listing of a store's reviews.
func (h *ReviewHandler) ListStoreReviews(c echo.Context) error {
	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid store ID")
	}

	reviews, err := h.uc.ListByStore(c.Request().Context(), storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newReviewResponses(reviews), "Reviews retrieved successfully")
}

// UpdateReview handles a partial edit of the caller's own review.
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	userID, ok := profileIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid profile ID in token")
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid review ID")
	}

	var req updateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review update input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	review, err := h.uc.UpdateReview(c.Request().Context(), userID, reviewID, &usecase.UpdateReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newReviewResponse(review), "Review updated successfully")
}

// DeleteReview handles removal of the caller's own review.
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	userID, ok := profileIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid profile ID in token")
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid review ID")
	}

	if err := h.uc.DeleteReview(c.Request().Context(), userID, reviewID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Review deleted successfully")
}
