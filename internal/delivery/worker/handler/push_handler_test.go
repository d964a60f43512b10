package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"feira/config"
	"feira/internal/domain/entity"
	"feira/internal/domain/service"
	mockRepo "feira/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pushHandlerFixtures struct {
	handler      *PushHandler
	purchaseRepo *mockRepo.MockPurchaseRepository
	trackingRepo *mockRepo.MockTrackingRepository
}

func createTestPushHandler(t *testing.T) pushHandlerFixtures {
	t.Helper()

	purchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	trackingRepo := mockRepo.NewMockTrackingRepository(t)
	cfg := &config.Config{}

	handler := NewPushHandler(PushHandlerParams{
		Config:       cfg,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		PurchaseRepo: purchaseRepo,
		TrackingRepo: trackingRepo,
	})

	return pushHandlerFixtures{
		handler:      handler,
		purchaseRepo: purchaseRepo,
		trackingRepo: trackingRepo,
	}
}

func newPushRequest(t *testing.T, event *service.OrderEvent) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	pushMsg.Message.MessageID = "1"
	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPushHandler_HandlePush_OrderPaid(t *testing.T) {
	fx := createTestPushHandler(t)
	purchaseID := uuid.New()

	fx.purchaseRepo.EXPECT().FindByID(mock.Anything, purchaseID).
		Return(&entity.Purchase{ID: purchaseID, IsPaid: true}, nil)
	fx.trackingRepo.EXPECT().FindByPurchase(mock.Anything, purchaseID).
		Return(&entity.Tracking{ID: uuid.New(), PurchaseID: purchaseID, Status: entity.TrackingEmTransito}, nil)

	c, rec := newPushRequest(t, &service.OrderEvent{
		Type:       service.OrderEventPaid,
		PurchaseID: purchaseID.String(),
		Total:      42.50,
	})

	require.NoError(t, fx.handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_RetryableOnRepositoryError(t *testing.T) {
	fx := createTestPushHandler(t)
	purchaseID := uuid.New()

	fx.purchaseRepo.EXPECT().FindByID(mock.Anything, purchaseID).
		Return(nil, errors.New("connection refused"))

	c, rec := newPushRequest(t, &service.OrderEvent{
		Type:       service.OrderEventPaid,
		PurchaseID: purchaseID.String(),
	})

	require.NoError(t, fx.handler.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_DropsMalformedPurchaseID(t *testing.T) {
	fx := createTestPushHandler(t)

	c, rec := newPushRequest(t, &service.OrderEvent{
		Type:       service.OrderEventPaid,
		PurchaseID: "not-a-uuid",
	})

	require.NoError(t, fx.handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_DropsUnknownEventType(t *testing.T) {
	fx := createTestPushHandler(t)

	c, rec := newPushRequest(t, &service.OrderEvent{
		Type:       "order_archived",
		PurchaseID: uuid.New().String(),
	})

	require.NoError(t, fx.handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_RejectsBadBase64(t *testing.T) {
	fx := createTestPushHandler(t)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = "%%% not base64 %%%"
	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, fx.handler.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
