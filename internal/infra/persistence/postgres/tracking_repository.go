package postgres

import (
	"context"
	"encoding/json"

	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/domain/repository"
	"feira/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// trackingRepository implements the repository.TrackingRepository interface.
type trackingRepository struct {
	db *gorm.DB
}

// NewTrackingRepository is the constructor for trackingRepository.
func NewTrackingRepository(db *gorm.DB) repository.TrackingRepository {
	return &trackingRepository{
		db: db,
	}
}

// withRelations preloads the purchase (with items) and the assigned courier.
func (repo *trackingRepository) withRelations(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Purchase").
		Preload("Purchase.Items").
		Preload("Purchase.Items.Product").
		Preload("DeliveryPerson")
}

// Create persists a new tracking record.
func (repo *trackingRepository) Create(ctx context.Context, tracking *entity.Tracking) error {
	trackingM, err := fromTrackingDomain(tracking)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).
		Omit("Purchase", "DeliveryPerson").
		Create(trackingM).Error; err != nil {
		// purchase_id is unique; one tracking row per purchase.
		if isUniqueConstraintViolation(err) {
			return repository.ErrTrackingExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid purchase or courier reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create tracking")
	}

	// Update the entity with generated values
	tracking.ID = trackingM.ID
	tracking.CreatedAt = trackingM.CreatedAt
	tracking.UpdatedAt = trackingM.UpdatedAt

	return nil
}

// FindByID retrieves a tracking record with its purchase and courier joined.
func (repo *trackingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tracking, error) {
	var trackingM model.TrackingModel

	if err := repo.withRelations(ctx).
		Where("id = ?", id).
		First(&trackingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTrackingNotFound
		}

		return nil, errors.Wrap(err, "failed to find tracking by ID")
	}

	return toTrackingDomain(&trackingM)
}

// FindByPurchase retrieves the tracking record of a purchase.
func (repo *trackingRepository) FindByPurchase(ctx context.Context, purchaseID uuid.UUID) (*entity.Tracking, error) {
	var trackingM model.TrackingModel

	if err := repo.withRelations(ctx).
		Where("purchase_id = ?", purchaseID).
		First(&trackingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTrackingNotFound
		}

		return nil, errors.Wrap(err, "failed to find tracking by purchase")
	}

	return toTrackingDomain(&trackingM)
}

// FindLastByBuyer retrieves the most recently updated tracking record among
// the buyer's purchases.
func (repo *trackingRepository) FindLastByBuyer(ctx context.Context, buyerID uuid.UUID) (*entity.Tracking, error) {
	var trackingM model.TrackingModel

	if err := repo.withRelations(ctx).
		Joins("JOIN purchases ON purchases.id = tracking.purchase_id").
		Where("purchases.buyer_id = ?", buyerID).
		Order("tracking.updated_at DESC").
		First(&trackingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTrackingNotFound
		}

		return nil, errors.Wrap(err, "failed to find last tracking by buyer")
	}

	return toTrackingDomain(&trackingM)
}

// FindByCourier retrieves the tracking records assigned to a courier, newest first.
func (repo *trackingRepository) FindByCourier(ctx context.Context, courierID uuid.UUID) ([]*entity.Tracking, error) {
	var trackingModels []*model.TrackingModel

	if err := repo.withRelations(ctx).
		Where("delivery_person_id = ?", courierID).
		Order("created_at DESC").
		Find(&trackingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find tracking by courier")
	}

	trackings := make([]*entity.Tracking, 0, len(trackingModels))
	for _, trackingM := range trackingModels {
		tracking, err := toTrackingDomain(trackingM)
		if err != nil {
			return nil, err
		}
		trackings = append(trackings, tracking)
	}

	return trackings, nil
}

// Update persists courier assignment, status, location and estimate changes.
func (repo *trackingRepository) Update(ctx context.Context, tracking *entity.Tracking) error {
	location, err := marshalLocation(tracking.LastLocation)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.TrackingModel{}).
		Where("id = ?", tracking.ID).
		Updates(map[string]any{
			"delivery_person_id": tracking.DeliveryPersonID,
			"status":             string(tracking.Status),
			"last_location":      location,
			"estimated_time":     tracking.EstimatedTime,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update tracking")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTrackingNotFound
	}

	return nil
}

// --- Mapper Functions ---

// storedLocation is the JSONB shape of the last_location column.
type storedLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func marshalLocation(point *orb.Point) (datatypes.JSON, error) {
	if point == nil {
		return nil, nil
	}

	raw, err := json.Marshal(storedLocation{
		Latitude:  point.Lat(),
		Longitude: point.Lon(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal tracking location")
	}

	return datatypes.JSON(raw), nil
}

func unmarshalLocation(raw datatypes.JSON) (*orb.Point, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var loc storedLocation
	if err := json.Unmarshal(raw, &loc); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal tracking location")
	}

	point := orb.Point{loc.Longitude, loc.Latitude}

	return &point, nil
}

// toTrackingDomain converts a GORM TrackingModel to a domain Tracking entity.
func toTrackingDomain(data *model.TrackingModel) (*entity.Tracking, error) {
	if data == nil {
		return nil, nil
	}

	location, err := unmarshalLocation(data.LastLocation)
	if err != nil {
		return nil, err
	}

	return &entity.Tracking{
		ID:               data.ID,
		PurchaseID:       data.PurchaseID,
		DeliveryPersonID: data.DeliveryPersonID,
		Status:           entity.TrackingStatus(data.Status),
		LastLocation:     location,
		EstimatedTime:    data.EstimatedTime,
		Purchase:         toPurchaseDomain(data.Purchase),
		DeliveryPerson:   toProfileDomain(data.DeliveryPerson),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}, nil
}

// fromTrackingDomain converts a domain Tracking entity to a GORM TrackingModel.
func fromTrackingDomain(data *entity.Tracking) (*model.TrackingModel, error) {
	if data == nil {
		return nil, nil
	}

	location, err := marshalLocation(data.LastLocation)
	if err != nil {
		return nil, err
	}

	return &model.TrackingModel{
		ID:               data.ID,
		PurchaseID:       data.PurchaseID,
		DeliveryPersonID: data.DeliveryPersonID,
		Status:           string(data.Status),
		LastLocation:     location,
		EstimatedTime:    data.EstimatedTime,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}, nil
}
