package impl

import (
	"context"
	"log/slog"

	deliverycontext "feira/internal/delivery/context"
	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/domain/repository"
	"feira/internal/domain/service"
	"feira/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// trackingService implements the TrackingUsecase interface.
type trackingService struct {
	trackingRepo repository.TrackingRepository
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// TrackingServiceParams holds dependencies for TrackingService, injected by Fx.
type TrackingServiceParams struct {
	fx.In

	TrackingRepo repository.TrackingRepository
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewTrackingService is the constructor for trackingService.
func NewTrackingService(params TrackingServiceParams) usecase.TrackingUsecase {
	return &trackingService{
		trackingRepo: params.TrackingRepo,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

func (srv *trackingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateTracking creates the tracking record of a paid purchase. The status
// starts at em_transito: the order is on its way out the moment it is paid.
func (srv *trackingService) CreateTracking(ctx context.Context, purchaseID uuid.UUID, courierID *uuid.UUID, estimatedTime *string) (*entity.Tracking, error) {
	tracking := &entity.Tracking{
		PurchaseID:       purchaseID,
		DeliveryPersonID: courierID,
		Status:           entity.TrackingEmTransito,
		EstimatedTime:    estimatedTime,
	}

	if err := srv.trackingRepo.Create(ctx, tracking); err != nil {
		if errors.Is(err, repository.ErrTrackingExists) {
			return nil, domainerrors.ErrTrackingAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create tracking")
	}

	srv.log(ctx).Debug("Tracking created", slog.Any("trackingID", tracking.ID), slog.Any("purchaseID", purchaseID))

	return tracking, nil
}

// GetInfo retrieves a tracking record with its purchase and courier joined.
func (srv *trackingService) GetInfo(ctx context.Context, trackingID uuid.UUID) (*entity.Tracking, error) {
	tracking, err := srv.trackingRepo.FindByID(ctx, trackingID)
	if err != nil {
		if errors.Is(err, repository.ErrTrackingNotFound) {
			return nil, domainerrors.ErrTrackingNotFound
		}

		return nil, errors.Wrap(err, "failed to get tracking info")
	}

	return tracking, nil
}

// GetLastByBuyer retrieves the most recently updated tracking record of the
// buyer's purchases, or nil when the buyer has none.
func (srv *trackingService) GetLastByBuyer(ctx context.Context, buyerID uuid.UUID) (*entity.Tracking, error) {
	tracking, err := srv.trackingRepo.FindLastByBuyer(ctx, buyerID)
	if err != nil {
		if errors.Is(err, repository.ErrTrackingNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to get last tracking by buyer")
	}

	return tracking, nil
}

// UpdateTracking applies a partial update. An assigned delivery belongs to
// its courier, and status changes are validated against the delivery state
// machine before anything is persisted.
func (srv *trackingService) UpdateTracking(ctx context.Context, courierID, trackingID uuid.UUID, input *usecase.UpdateTrackingInput) (*entity.Tracking, error) {
	tracking, err := srv.trackingRepo.FindByID(ctx, trackingID)
	if err != nil {
		if errors.Is(err, repository.ErrTrackingNotFound) {
			return nil, domainerrors.ErrTrackingNotFound
		}

		return nil, errors.Wrap(err, "failed to load tracking for update")
	}

	if tracking.DeliveryPersonID != nil && *tracking.DeliveryPersonID != courierID {
		srv.log(ctx).Warn("Rejected tracking update from unassigned courier",
			slog.Any("trackingID", trackingID), slog.Any("courierID", courierID))

		return nil, domainerrors.ErrTrackingOwnership
	}

	if input.CourierID != nil {
		tracking.DeliveryPersonID = input.CourierID
	}
	if input.Status != nil {
		if err := tracking.ChangeStatus(*input.Status); err != nil {
			srv.log(ctx).Warn("Rejected tracking transition",
				slog.Any("trackingID", trackingID),
				slog.String("from", string(tracking.Status)),
				slog.String("to", string(*input.Status)))

			return nil, domainerrors.ErrTrackingTransition.WithDetails(err.Error())
		}
	}
	if input.Location != nil {
		tracking.ReportLocation(input.Location.Longitude, input.Location.Latitude)
	}
	if input.EstimatedTime != nil {
		tracking.EstimatedTime = input.EstimatedTime
	}

	if err := srv.trackingRepo.Update(ctx, tracking); err != nil {
		return nil, errors.Wrap(err, "failed to update tracking")
	}

	srv.publishTrackingEvent(ctx, tracking)

	return tracking, nil
}

// ListByCourier retrieves the deliveries assigned to a courier.
func (srv *trackingService) ListByCourier(ctx context.Context, courierID uuid.UUID) ([]*entity.Tracking, error) {
	trackings, err := srv.trackingRepo.FindByCourier(ctx, courierID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tracking by courier")
	}

	return trackings, nil
}

// publishTrackingEvent publishes a tracking-updated event, best-effort.
func (srv *trackingService) publishTrackingEvent(ctx context.Context, tracking *entity.Tracking) {
	event := &service.OrderEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       service.OrderEventTrackingUpdated,
		PurchaseID: tracking.PurchaseID.String(),
		TrackingID: tracking.ID.String(),
		Status:     string(tracking.Status),
	}
	if tracking.Purchase != nil {
		event.BuyerID = tracking.Purchase.BuyerID.String()
		event.StoreID = tracking.Purchase.StoreID.String()
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish tracking event",
			slog.Any("trackingID", tracking.ID), slog.Any("error", err))
	}
}
