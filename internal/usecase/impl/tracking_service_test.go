package impl

import (
	"context"
	"testing"

	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/domain/repository"
	"feira/internal/domain/service"
	mockRepo "feira/internal/mocks/repository"
	mockSvc "feira/internal/mocks/service"
	"feira/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// trackingServiceFixtures holds all test dependencies for tracking service tests.
type trackingServiceFixtures struct {
	service      usecase.TrackingUsecase
	trackingRepo *mockRepo.MockTrackingRepository
	publisher    *mockSvc.MockEventPublisher
}

func createTestTrackingService(t *testing.T) trackingServiceFixtures {
	trackingRepo := mockRepo.NewMockTrackingRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewTrackingService(TrackingServiceParams{
		TrackingRepo: trackingRepo,
		Publisher:    publisher,
		Logger:       newDiscardLogger(),
	})

	return trackingServiceFixtures{
		service:      service,
		trackingRepo: trackingRepo,
		publisher:    publisher,
	}
}

func TestTrackingService_CreateTracking_StartsInTransit(t *testing.T) {
	fx := createTestTrackingService(t)

	ctx := context.Background()
	purchaseID := uuid.New()

	fx.trackingRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(tracking *entity.Tracking) bool {
			return tracking.PurchaseID == purchaseID &&
				tracking.Status == entity.TrackingEmTransito &&
				tracking.DeliveryPersonID == nil
		})).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Tracking).ID = uuid.New()
		}).
		Return(nil)

	tracking, err := fx.service.CreateTracking(ctx, purchaseID, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, entity.TrackingEmTransito, tracking.Status)
	assert.Nil(t, tracking.DeliveryPersonID)
}

func TestTrackingService_CreateTracking_RejectsDuplicate(t *testing.T) {
	fx := createTestTrackingService(t)

	ctx := context.Background()
	purchaseID := uuid.New()

	fx.trackingRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Tracking")).
		Return(repository.ErrTrackingExists)

	_, err := fx.service.CreateTracking(ctx, purchaseID, nil, nil)

	assert.ErrorIs(t, err, domainerrors.ErrTrackingAlreadyExists)
}

func TestTrackingService_GetLastByBuyer_NilWhenAbsent(t *testing.T) {
	fx := createTestTrackingService(t)

	ctx := context.Background()
	buyerID := uuid.New()

	fx.trackingRepo.EXPECT().
		FindLastByBuyer(ctx, buyerID).
		Return(nil, repository.ErrTrackingNotFound)

	tracking, err := fx.service.GetLastByBuyer(ctx, buyerID)

	require.NoError(t, err)
	assert.Nil(t, tracking)
}

func TestTrackingService_UpdateTracking_AssignsCourierAndLocation(t *testing.T) {
	fx := createTestTrackingService(t)

	ctx := context.Background()
	courierID := uuid.New()
	stored := &entity.Tracking{
		ID:         uuid.New(),
		PurchaseID: uuid.New(),
		Status:     entity.TrackingEmTransito,
		Purchase: &entity.Purchase{
			ID:      uuid.New(),
			BuyerID: uuid.New(),
			StoreID: uuid.New(),
		},
	}

	input := &usecase.UpdateTrackingInput{
		CourierID: &courierID,
		Location:  &usecase.TrackingLocation{Latitude: -23.5505, Longitude: -46.6333},
	}

	fx.trackingRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.trackingRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(tracking *entity.Tracking) bool {
			return tracking.DeliveryPersonID != nil && *tracking.DeliveryPersonID == courierID &&
				tracking.LastLocation != nil &&
				tracking.LastLocation.Lat() == -23.5505 &&
				tracking.LastLocation.Lon() == -46.6333
		})).
		Return(nil)

	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(event *service.OrderEvent) bool {
			return event.Type == service.OrderEventTrackingUpdated &&
				event.TrackingID == stored.ID.String() &&
				event.BuyerID == stored.Purchase.BuyerID.String()
		})).
		Return(nil)

	tracking, err := fx.service.UpdateTracking(ctx, courierID, stored.ID, input)

	require.NoError(t, err)
	assert.Equal(t, courierID, *tracking.DeliveryPersonID)
}

func TestTrackingService_UpdateTracking_DeliversInTransitOrder(t *testing.T) {
	fx := createTestTrackingService(t)

	ctx := context.Background()
	courierID := uuid.New()
	stored := &entity.Tracking{
		ID:               uuid.New(),
		PurchaseID:       uuid.New(),
		DeliveryPersonID: &courierID,
		Status:           entity.TrackingEmTransito,
	}

	next := entity.TrackingEntregue
	input := &usecase.UpdateTrackingInput{Status: &next}

	fx.trackingRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.trackingRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(tracking *entity.Tracking) bool {
			return tracking.Status == entity.TrackingEntregue
		})).
		Return(nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	tracking, err := fx.service.UpdateTracking(ctx, courierID, stored.ID, input)

	require.NoError(t, err)
	assert.Equal(t, entity.TrackingEntregue, tracking.Status)
}

func TestTrackingService_UpdateTracking_RejectsIllegalTransition(t *testing.T) {
	fx := createTestTrackingService(t)

	ctx := context.Background()
	courierID := uuid.New()
	stored := &entity.Tracking{
		ID:               uuid.New(),
		PurchaseID:       uuid.New(),
		DeliveryPersonID: &courierID,
		Status:           entity.TrackingEntregue,
	}

	next := entity.TrackingEmTransito
	input := &usecase.UpdateTrackingInput{Status: &next}

	fx.trackingRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

	_, err := fx.service.UpdateTracking(ctx, courierID, stored.ID, input)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrTrackingTransition.ErrorCode(), appErr.ErrorCode())
}

// An assigned delivery may only be updated by its own courier; anyone else is
// turned away before any field is touched.
func TestTrackingService_UpdateTracking_RejectsForeignCourier(t *testing.T) {
	fx := createTestTrackingService(t)

	ctx := context.Background()
	assigned := uuid.New()
	stored := &entity.Tracking{
		ID:               uuid.New(),
		PurchaseID:       uuid.New(),
		DeliveryPersonID: &assigned,
		Status:           entity.TrackingEmTransito,
	}

	next := entity.TrackingEntregue
	input := &usecase.UpdateTrackingInput{Status: &next}

	fx.trackingRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

	_, err := fx.service.UpdateTracking(ctx, uuid.New(), stored.ID, input)

	assert.ErrorIs(t, err, domainerrors.ErrTrackingOwnership)
	assert.Equal(t, entity.TrackingEmTransito, stored.Status)
}

func TestTrackingService_UpdateTracking_CancelsPendingDelivery(t *testing.T) {
	fx := createTestTrackingService(t)

	ctx := context.Background()
	stored := &entity.Tracking{
		ID:         uuid.New(),
		PurchaseID: uuid.New(),
		Status:     entity.TrackingPendente,
	}

	next := entity.TrackingCancelada
	input := &usecase.UpdateTrackingInput{Status: &next}

	fx.trackingRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.trackingRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Tracking")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	tracking, err := fx.service.UpdateTracking(ctx, uuid.New(), stored.ID, input)

	require.NoError(t, err)
	assert.Equal(t, entity.TrackingCancelada, tracking.Status)
}

func TestTrackingService_UpdateTracking_NotFound(t *testing.T) {
	fx := createTestTrackingService(t)

	ctx := context.Background()
	trackingID := uuid.New()

	fx.trackingRepo.EXPECT().
		FindByID(ctx, trackingID).
		Return(nil, repository.ErrTrackingNotFound)

	_, err := fx.service.UpdateTracking(ctx, uuid.New(), trackingID, &usecase.UpdateTrackingInput{})

	assert.ErrorIs(t, err, domainerrors.ErrTrackingNotFound)
}
