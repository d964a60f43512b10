package impl

import (
	"context"
	"log/slog"

	deliverycontext "feira/internal/delivery/context"
	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/domain/repository"
	"feira/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// vehicleService implements the VehicleUsecase interface.
type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	logger      *slog.Logger
}

// VehicleServiceParams holds dependencies for VehicleService, injected by Fx.
type VehicleServiceParams struct {
	fx.In

	VehicleRepo repository.VehicleRepository
	Logger      *slog.Logger
}

// NewVehicleService is the constructor for vehicleService.
func NewVehicleService(params VehicleServiceParams) usecase.VehicleUsecase {
	return &vehicleService{
		vehicleRepo: params.VehicleRepo,
		logger:      params.Logger,
	}
}

func (srv *vehicleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateVehicle registers a new vehicle for a courier.
func (srv *vehicleService) CreateVehicle(ctx context.Context, input *usecase.CreateVehicleInput) (*entity.Vehicle, error) {
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown vehicle type " + string(input.Type))
	}

	vehicle := &entity.Vehicle{
		DeliverymanID: input.DeliverymanID,
		Model:         input.Model,
		Brand:         input.Brand,
		Plate:         input.Plate,
		Year:          input.Year,
		Type:          input.Type,
	}

	if err := srv.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, errors.Wrap(err, "failed to create vehicle")
	}

	srv.log(ctx).Debug("Vehicle created", slog.Any("vehicleID", vehicle.ID))

	return vehicle, nil
}

// ListByDeliveryman retrieves a courier's vehicles.
func (srv *vehicleService) ListByDeliveryman(ctx context.Context, deliverymanID uuid.UUID) ([]*entity.Vehicle, error) {
	vehicles, err := srv.vehicleRepo.FindByDeliveryman(ctx, deliverymanID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vehicles")
	}

	return vehicles, nil
}

// UpdateVehicle applies a partial update. Only the owner may edit.
func (srv *vehicleService) UpdateVehicle(ctx context.Context, deliverymanID, vehicleID uuid.UUID, input *usecase.UpdateVehicleInput) (*entity.Vehicle, error) {
	vehicle, err := srv.loadOwnedVehicle(ctx, deliverymanID, vehicleID)
	if err != nil {
		return nil, err
	}

	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown vehicle type " + string(*input.Type))
		}
		vehicle.Type = *input.Type
	}
	if input.Model != nil {
		vehicle.Model = *input.Model
	}
	if input.Brand != nil {
		vehicle.Brand = *input.Brand
	}
	if input.Plate != nil {
		vehicle.Plate = *input.Plate
	}
	if input.Year != nil {
		vehicle.Year = *input.Year
	}

	if err := srv.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, errors.Wrap(err, "failed to update vehicle")
	}

	return vehicle, nil
}

// DeleteVehicle removes a vehicle. Only the owner may delete.
func (srv *vehicleService) DeleteVehicle(ctx context.Context, deliverymanID, vehicleID uuid.UUID) error {
	if _, err := srv.loadOwnedVehicle(ctx, deliverymanID, vehicleID); err != nil {
		return err
	}

	if err := srv.vehicleRepo.Delete(ctx, vehicleID); err != nil {
		return errors.Wrap(err, "failed to delete vehicle")
	}

	return nil
}

func (srv *vehicleService) loadOwnedVehicle(ctx context.Context, deliverymanID, vehicleID uuid.UUID) (*entity.Vehicle, error) {
	vehicle, err := srv.vehicleRepo.FindByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return nil, domainerrors.ErrVehicleNotFound
		}

		return nil, errors.Wrap(err, "failed to load vehicle")
	}

	if vehicle.DeliverymanID != deliverymanID {
		return nil, domainerrors.ErrForbidden
	}

	return vehicle, nil
}
