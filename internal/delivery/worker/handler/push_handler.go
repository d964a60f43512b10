package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"feira/config"
	deliverycontext "feira/internal/delivery/context"
	"feira/internal/domain/constants"
	"feira/internal/domain/repository"
	"feira/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler handles Pub/Sub push messages carrying order lifecycle events
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	purchaseRepo   repository.PurchaseRepository
	trackingRepo   repository.TrackingRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config       *config.Config
	Logger       *slog.Logger
	PurchaseRepo repository.PurchaseRepository
	TrackingRepo repository.TrackingRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		purchaseRepo:   params.PurchaseRepo,
		trackingRepo:   params.TrackingRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse order event
	var event service.OrderEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse order event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing order event",
		slog.String("type", event.Type),
		slog.String("purchase_id", event.PurchaseID),
	)

	// Process the event
	if err := h.processOrderEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process order event",
			slog.String("type", event.Type),
			slog.String("purchase_id", event.PurchaseID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Order event processed successfully",
		slog.String("type", event.Type),
		slog.String("purchase_id", event.PurchaseID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.OrderEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// processOrderEvent routes an order event to its processor. Malformed events
// are dropped; repository failures are retryable.
func (h *PushHandler) processOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	purchaseID, err := uuid.Parse(event.PurchaseID)
	if err != nil {
		return errors.Wrapf(err, "invalid purchase ID %q", event.PurchaseID)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	switch event.Type {
	case service.OrderEventPaid:
		return h.processOrderPaid(ctx, logger, purchaseID, event)
	case service.OrderEventDelivered:
		return h.processOrderDelivered(ctx, logger, purchaseID)
	case service.OrderEventTrackingUpdated:
		return h.processTrackingUpdated(ctx, logger, purchaseID, event)
	default:
		logger.Warn("[Worker] Unknown order event type, dropping",
			slog.String("type", event.Type),
		)

		return nil
	}
}

// processOrderPaid verifies the paid purchase has a tracking record. Checkout
// creates it transactionally, so a missing record means the message raced an
// aborted checkout and the purchase needs another look later.
func (h *PushHandler) processOrderPaid(ctx context.Context, logger *slog.Logger, purchaseID uuid.UUID, event *service.OrderEvent) error {
	purchase, err := h.purchaseRepo.FindByID(ctx, purchaseID)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}
	if !purchase.IsPaid {
		return newRetryableError(errors.Errorf("purchase %s not yet marked paid", purchaseID))
	}

	tracking, err := h.trackingRepo.FindByPurchase(ctx, purchaseID)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	logger.Info("[Worker] Order paid",
		slog.String("purchase_id", purchaseID.String()),
		slog.String("store_id", event.StoreID),
		slog.String("tracking_id", tracking.ID.String()),
		slog.Float64("total", event.Total),
		slog.Int("item_count", purchase.ItemCount()),
	)

	return nil
}

// processOrderDelivered logs the completed delivery for the audit trail.
func (h *PushHandler) processOrderDelivered(ctx context.Context, logger *slog.Logger, purchaseID uuid.UUID) error {
	tracking, err := h.trackingRepo.FindByPurchase(ctx, purchaseID)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	logger.Info("[Worker] Order delivered",
		slog.String("purchase_id", purchaseID.String()),
		slog.String("tracking_id", tracking.ID.String()),
		slog.String("status", string(tracking.Status)),
	)

	return nil
}

// processTrackingUpdated logs courier progress so delivery timelines can be
// reconstructed from the worker's output.
func (h *PushHandler) processTrackingUpdated(ctx context.Context, logger *slog.Logger, purchaseID uuid.UUID, event *service.OrderEvent) error {
	tracking, err := h.trackingRepo.FindByPurchase(ctx, purchaseID)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	attrs := []any{
		slog.String("purchase_id", purchaseID.String()),
		slog.String("tracking_id", tracking.ID.String()),
		slog.String("status", event.Status),
	}
	if tracking.LastLocation != nil {
		attrs = append(attrs,
			slog.Float64("latitude", tracking.LastLocation.Lat()),
			slog.Float64("longitude", tracking.LastLocation.Lon()),
		)
	}

	logger.Info("[Worker] Tracking updated", attrs...)

	return nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	// The audience should be the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
