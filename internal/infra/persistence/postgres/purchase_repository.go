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

// purchaseRepository implements the repository.PurchaseRepository interface.
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository is the constructor for purchaseRepository.
func NewPurchaseRepository(db *gorm.DB) repository.PurchaseRepository {
	return &purchaseRepository{
		db: db,
	}
}

// withItems preloads line items and their products; every read path needs them.
func (repo *purchaseRepository) withItems(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product")
}

// Create persists a new open purchase for a buyer and store.
func (repo *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	purchaseM := fromPurchaseDomain(purchase)

	if err := repo.db.WithContext(ctx).Omit("Items").Create(purchaseM).Error; err != nil {
		// The partial unique index on (buyer_id, store_id) WHERE NOT is_paid
		// rejects a second open cart for the same pair.
		if isUniqueConstraintViolation(err) {
			return repository.ErrOpenPurchaseExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid buyer or store reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create purchase")
	}

	// Update the entity with generated values
	purchase.ID = purchaseM.ID
	purchase.CreatedAt = purchaseM.CreatedAt
	purchase.UpdatedAt = purchaseM.UpdatedAt

	return nil
}

// FindByID retrieves a purchase with its items.
func (repo *purchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	var purchaseM model.PurchaseModel

	if err := repo.withItems(ctx).
		Where("id = ?", id).
		First(&purchaseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPurchaseNotFound
		}

		return nil, errors.Wrap(err, "failed to find purchase by ID")
	}

	return toPurchaseDomain(&purchaseM), nil
}

// FindOpenByBuyerAndStore retrieves the open (unpaid) purchase for a buyer and store pair.
func (repo *purchaseRepository) FindOpenByBuyerAndStore(ctx context.Context, buyerID, storeID uuid.UUID) (*entity.Purchase, error) {
	var purchaseM model.PurchaseModel

	if err := repo.withItems(ctx).
		Where("buyer_id = ? AND store_id = ? AND is_paid = ?", buyerID, storeID, false).
		First(&purchaseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPurchaseNotFound
		}

		return nil, errors.Wrap(err, "failed to find open purchase")
	}

	return toPurchaseDomain(&purchaseM), nil
}

// FindLastOpenByBuyer retrieves the buyer's most recently updated open purchase.
func (repo *purchaseRepository) FindLastOpenByBuyer(ctx context.Context, buyerID uuid.UUID) (*entity.Purchase, error) {
	var purchaseM model.PurchaseModel

	if err := repo.withItems(ctx).
		Where("buyer_id = ? AND is_paid = ?", buyerID, false).
		Order("updated_at DESC").
		First(&purchaseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPurchaseNotFound
		}

		return nil, errors.Wrap(err, "failed to find last open purchase")
	}

	return toPurchaseDomain(&purchaseM), nil
}

// FindByBuyer retrieves the buyer's purchases, newest first.
func (repo *purchaseRepository) FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Purchase, error) {
	var purchaseModels []*model.PurchaseModel

	if err := repo.withItems(ctx).
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Find(&purchaseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find purchases by buyer")
	}

	return toPurchaseDomainSlice(purchaseModels), nil
}

// FindByStore retrieves the paid purchases placed against a store, newest first.
func (repo *purchaseRepository) FindByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Purchase, error) {
	var purchaseModels []*model.PurchaseModel

	if err := repo.withItems(ctx).
		Where("store_id = ? AND is_paid = ?", storeID, true).
		Order("created_at DESC").
		Find(&purchaseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find purchases by store")
	}

	return toPurchaseDomainSlice(purchaseModels), nil
}

// UpdateFlags persists the is_paid / is_delivered columns of a purchase.
func (repo *purchaseRepository) UpdateFlags(ctx context.Context, purchase *entity.Purchase) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PurchaseModel{}).
		Where("id = ?", purchase.ID).
		Updates(map[string]any{
			"is_paid":      purchase.IsPaid,
			"is_delivered": purchase.IsDelivered,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update purchase flags")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPurchaseNotFound
	}

	return nil
}

// CreateItem inserts a new line item.
func (repo *purchaseRepository) CreateItem(ctx context.Context, item *entity.PurchaseItem) error {
	itemM := fromPurchaseItemDomain(item)

	if err := repo.db.WithContext(ctx).Omit("Product").Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid purchase or product reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create purchase item")
	}

	item.ID = itemM.ID

	return nil
}

// UpdateItemQuantity sets the quantity of an existing line item.
func (repo *purchaseRepository) UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PurchaseItemModel{}).
		Where("id = ?", itemID).
		Update("quantity", quantity)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update item quantity")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPurchaseItemNotFound
	}

	return nil
}

// DeleteItemsByProduct removes the line items of a purchase that reference the given product.
func (repo *purchaseRepository) DeleteItemsByProduct(ctx context.Context, purchaseID, productID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("purchase_id = ? AND product_id = ?", purchaseID, productID).
		Delete(&model.PurchaseItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete purchase items by product")
	}

	return nil
}

// DeleteItems removes every line item of a purchase.
func (repo *purchaseRepository) DeleteItems(ctx context.Context, purchaseID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("purchase_id = ?", purchaseID).
		Delete(&model.PurchaseItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete purchase items")
	}

	return nil
}

// --- Mapper Functions ---

// toPurchaseDomain converts a GORM PurchaseModel to a domain Purchase entity.
func toPurchaseDomain(data *model.PurchaseModel) *entity.Purchase {
	if data == nil {
		return nil
	}

	items := make([]*entity.PurchaseItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, toPurchaseItemDomain(itemM))
	}

	return &entity.Purchase{
		ID:          data.ID,
		BuyerID:     data.BuyerID,
		StoreID:     data.StoreID,
		IsPaid:      data.IsPaid,
		IsDelivered: data.IsDelivered,
		Items:       items,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toPurchaseDomainSlice(models []*model.PurchaseModel) []*entity.Purchase {
	purchases := make([]*entity.Purchase, 0, len(models))
	for _, purchaseM := range models {
		purchases = append(purchases, toPurchaseDomain(purchaseM))
	}

	return purchases
}

// toPurchaseItemDomain converts a GORM PurchaseItemModel to a domain PurchaseItem.
func toPurchaseItemDomain(data *model.PurchaseItemModel) *entity.PurchaseItem {
	if data == nil {
		return nil
	}

	return &entity.PurchaseItem{
		ID:         data.ID,
		PurchaseID: data.PurchaseID,
		ProductID:  data.ProductID,
		Quantity:   data.Quantity,
		Product:    toProductDomain(data.Product),
	}
}

// fromPurchaseDomain converts a domain Purchase entity to a GORM PurchaseModel.
func fromPurchaseDomain(data *entity.Purchase) *model.PurchaseModel {
	if data == nil {
		return nil
	}

	return &model.PurchaseModel{
		ID:          data.ID,
		BuyerID:     data.BuyerID,
		StoreID:     data.StoreID,
		IsPaid:      data.IsPaid,
		IsDelivered: data.IsDelivered,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromPurchaseItemDomain converts a domain PurchaseItem to a GORM PurchaseItemModel.
func fromPurchaseItemDomain(data *entity.PurchaseItem) *model.PurchaseItemModel {
	if data == nil {
		return nil
	}

	return &model.PurchaseItemModel{
		ID:         data.ID,
		PurchaseID: data.PurchaseID,
		ProductID:  data.ProductID,
		Quantity:   data.Quantity,
	}
}
