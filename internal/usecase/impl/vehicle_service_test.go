package impl

import (
	"context"
	"testing"

	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/domain/repository"
	mockRepo "feira/internal/mocks/repository"
	"feira/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// vehicleServiceFixtures holds all test dependencies for vehicle service tests.
type vehicleServiceFixtures struct {
	service     usecase.VehicleUsecase
	vehicleRepo *mockRepo.MockVehicleRepository
}

func createTestVehicleService(t *testing.T) vehicleServiceFixtures {
	vehicleRepo := mockRepo.NewMockVehicleRepository(t)

	service := NewVehicleService(VehicleServiceParams{
		VehicleRepo: vehicleRepo,
		Logger:      newDiscardLogger(),
	})

	return vehicleServiceFixtures{
		service:     service,
		vehicleRepo: vehicleRepo,
	}
}

func TestVehicleService_CreateVehicle_Success(t *testing.T) {
	fx := createTestVehicleService(t)

	ctx := context.Background()
	input := &usecase.CreateVehicleInput{
		DeliverymanID: uuid.New(),
		Model:         "CG 160",
		Brand:         "Honda",
		Plate:         "BRA2E19",
		Year:          "2022",
		Type:          entity.VehicleMoto,
	}

	fx.vehicleRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(vehicle *entity.Vehicle) bool {
			return vehicle.DeliverymanID == input.DeliverymanID &&
				vehicle.Type == entity.VehicleMoto &&
				vehicle.Plate == "BRA2E19"
		})).
		Return(nil)

	vehicle, err := fx.service.CreateVehicle(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.VehicleMoto, vehicle.Type)
}

func TestVehicleService_CreateVehicle_RejectsUnknownType(t *testing.T) {
	fx := createTestVehicleService(t)

	ctx := context.Background()
	input := &usecase.CreateVehicleInput{
		DeliverymanID: uuid.New(),
		Type:          entity.VehicleType("patinete"),
	}

	_, err := fx.service.CreateVehicle(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestVehicleService_UpdateVehicle_OnlyOwnerMayEdit(t *testing.T) {
	fx := createTestVehicleService(t)

	ctx := context.Background()
	stored := &entity.Vehicle{
		ID:            uuid.New(),
		DeliverymanID: uuid.New(),
		Type:          entity.VehicleBicicleta,
	}

	newModel := "Caloi 10"
	input := &usecase.UpdateVehicleInput{Model: &newModel}

	fx.vehicleRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

	_, err := fx.service.UpdateVehicle(ctx, uuid.New(), stored.ID, input)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestVehicleService_UpdateVehicle_PartialFields(t *testing.T) {
	fx := createTestVehicleService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	stored := &entity.Vehicle{
		ID:            uuid.New(),
		DeliverymanID: ownerID,
		Model:         "CG 160",
		Brand:         "Honda",
		Type:          entity.VehicleMoto,
	}

	newPlate := "XYZ1A23"
	input := &usecase.UpdateVehicleInput{Plate: &newPlate}

	fx.vehicleRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.vehicleRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(vehicle *entity.Vehicle) bool {
			return vehicle.Plate == newPlate && vehicle.Model == "CG 160"
		})).
		Return(nil)

	vehicle, err := fx.service.UpdateVehicle(ctx, ownerID, stored.ID, input)

	require.NoError(t, err)
	assert.Equal(t, newPlate, vehicle.Plate)
}

func TestVehicleService_DeleteVehicle_NotFound(t *testing.T) {
	fx := createTestVehicleService(t)

	ctx := context.Background()
	vehicleID := uuid.New()

	fx.vehicleRepo.EXPECT().
		FindByID(ctx, vehicleID).
		Return(nil, repository.ErrVehicleNotFound)

	err := fx.service.DeleteVehicle(ctx, uuid.New(), vehicleID)

	assert.ErrorIs(t, err, domainerrors.ErrVehicleNotFound)
}

func TestVehicleService_ListByDeliveryman_Success(t *testing.T) {
	fx := createTestVehicleService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	vehicles := []*entity.Vehicle{
		{ID: uuid.New(), DeliverymanID: ownerID, Type: entity.VehicleMoto},
	}

	fx.vehicleRepo.EXPECT().FindByDeliveryman(ctx, ownerID).Return(vehicles, nil)

	result, err := fx.service.ListByDeliveryman(ctx, ownerID)

	require.NoError(t, err)
	assert.Len(t, result, 1)
}
