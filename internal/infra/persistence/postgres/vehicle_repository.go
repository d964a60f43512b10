package postgres

import (
	"context"

	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/domain/repository"
	"feira/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// vehicleRepository implements the repository.VehicleRepository interface.
type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository is the constructor for vehicleRepository.
func NewVehicleRepository(db *gorm.DB) repository.VehicleRepository {
	return &vehicleRepository{
		db: db,
	}
}

// Create persists a new vehicle.
func (repo *vehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	vehicleM := fromVehicleDomain(vehicle)

	if err := repo.db.WithContext(ctx).Create(vehicleM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid courier reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required vehicle information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vehicle")
	}

	vehicle.ID = vehicleM.ID
	vehicle.CreatedAt = vehicleM.CreatedAt
	vehicle.UpdatedAt = vehicleM.UpdatedAt

	return nil
}

// FindByID retrieves a vehicle by its unique ID.
func (repo *vehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	var vehicleM model.VehicleModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&vehicleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVehicleNotFound
		}

		return nil, errors.Wrap(err, "failed to find vehicle by ID")
	}

	return toVehicleDomain(&vehicleM), nil
}

// FindByDeliveryman retrieves every vehicle registered by a courier.
func (repo *vehicleRepository) FindByDeliveryman(ctx context.Context, deliverymanID uuid.UUID) ([]*entity.Vehicle, error) {
	var vehicleModels []*model.VehicleModel

	if err := repo.db.WithContext(ctx).
		Where("deliveryman_id = ?", deliverymanID).
		Order("created_at DESC").
		Find(&vehicleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find vehicles by deliveryman")
	}

	vehicles := make([]*entity.Vehicle, 0, len(vehicleModels))
	for _, vehicleM := range vehicleModels {
		vehicles = append(vehicles, toVehicleDomain(vehicleM))
	}

	return vehicles, nil
}

// Update modifies an existing vehicle.
func (repo *vehicleRepository) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VehicleModel{}).
		Where("id = ?", vehicle.ID).
		Updates(map[string]any{
			"model": vehicle.Model,
			"brand": vehicle.Brand,
			"plate": vehicle.Plate,
			"year":  vehicle.Year,
			"type":  string(vehicle.Type),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update vehicle")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVehicleNotFound
	}

	return nil
}

// Delete removes a vehicle by its ID.
func (repo *vehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.VehicleModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete vehicle")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVehicleNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toVehicleDomain(data *model.VehicleModel) *entity.Vehicle {
	if data == nil {
		return nil
	}

	return &entity.Vehicle{
		ID:            data.ID,
		DeliverymanID: data.DeliverymanID,
		Model:         data.Model,
		Brand:         data.Brand,
		Plate:         data.Plate,
		Year:          data.Year,
		Type:          entity.VehicleType(data.Type),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromVehicleDomain(data *entity.Vehicle) *model.VehicleModel {
	if data == nil {
		return nil
	}

	return &model.VehicleModel{
		ID:            data.ID,
		DeliverymanID: data.DeliverymanID,
		Model:         data.Model,
		Brand:         data.Brand,
		Plate:         data.Plate,
		Year:          data.Year,
		Type:          string(data.Type),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
