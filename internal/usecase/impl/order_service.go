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

const (
	minItemQuantity = 1
	maxItemQuantity = 99
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager    repository.TransactionManager
	purchaseRepo repository.PurchaseRepository
	trackingRepo repository.TrackingRepository
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	PurchaseRepo repository.PurchaseRepository
	TrackingRepo repository.TrackingRepository
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewOrderService is the constructor for orderService. It receives all dependencies as interfaces.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:    params.TxManager,
		purchaseRepo: params.PurchaseRepo,
		trackingRepo: params.TrackingRepo,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetOrCreateOpenPurchase returns the buyer's open cart for a store, creating
// it when absent. The lookup and insert run in one transaction; when a
// concurrent insert wins the race, the unique partial index rejects ours.
// Postgres aborts the whole transaction after the failed insert, so the
// conflict is surfaced out of it and the winner's row is read back outside.
func (srv *orderService) GetOrCreateOpenPurchase(ctx context.Context, buyerID, storeID uuid.UUID) (*entity.Purchase, error) {
	var purchase *entity.Purchase

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		purchaseRepo := repoFactory.PurchaseRepo()

		existing, findErr := purchaseRepo.FindOpenByBuyerAndStore(ctx, buyerID, storeID)
		if findErr == nil {
			purchase = existing

			return nil
		}
		if !errors.Is(findErr, repository.ErrPurchaseNotFound) {
			return errors.Wrap(findErr, "failed to look up open purchase")
		}

		newPurchase := &entity.Purchase{
			BuyerID: buyerID,
			StoreID: storeID,
		}
		createErr := purchaseRepo.Create(ctx, newPurchase)
		if createErr == nil {
			purchase = newPurchase

			return nil
		}
		if errors.Is(createErr, repository.ErrOpenPurchaseExists) {
			// A concurrent request created the cart between lookup and
			// insert. No further statement can run on this transaction
			// once the insert has errored, so roll back and fall through.
			return createErr
		}

		return errors.Wrap(createErr, "failed to create open purchase")
	})
	if errors.Is(err, repository.ErrOpenPurchaseExists) {
		existing, findErr := srv.purchaseRepo.FindOpenByBuyerAndStore(ctx, buyerID, storeID)
		if findErr != nil {
			return nil, errors.Wrap(findErr, "failed to reload open purchase after race")
		}

		return existing, nil
	}
	if err != nil {
		srv.log(ctx).Error("GetOrCreateOpenPurchase failed",
			slog.Any("buyerID", buyerID), slog.Any("storeID", storeID), slog.Any("error", err))

		return nil, err
	}

	return purchase, nil
}

// AddItem puts a quantity of a product into an open cart. The quantity is
// clamped server-side and merged into an existing line item for the same
// product instead of creating a duplicate row.
func (srv *orderService) AddItem(ctx context.Context, buyerID, purchaseID, productID uuid.UUID, quantity int) (*entity.Purchase, error) {
	quantity = clampQuantity(quantity)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		purchaseRepo := repoFactory.PurchaseRepo()

		purchase, err := srv.loadOwnedOpenPurchase(ctx, purchaseRepo, buyerID, purchaseID)
		if err != nil {
			return err
		}

		if _, err := repoFactory.ProductRepo().FindByID(ctx, productID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to load product for cart")
		}

		if existing := purchase.FindItemByProduct(productID); existing != nil {
			merged := clampQuantity(existing.Quantity + quantity)

			return purchaseRepo.UpdateItemQuantity(ctx, existing.ID, merged)
		}

		return purchaseRepo.CreateItem(ctx, &entity.PurchaseItem{
			PurchaseID: purchaseID,
			ProductID:  productID,
			Quantity:   quantity,
		})
	})
	if err != nil {
		srv.log(ctx).Warn("AddItem failed",
			slog.Any("purchaseID", purchaseID), slog.Any("productID", productID), slog.Any("error", err))

		return nil, err
	}

	return srv.GetPurchase(ctx, purchaseID)
}

// RemoveItem removes a product's line items from an open cart.
func (srv *orderService) RemoveItem(ctx context.Context, buyerID, purchaseID, productID uuid.UUID) (*entity.Purchase, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		purchaseRepo := repoFactory.PurchaseRepo()

		if _, err := srv.loadOwnedOpenPurchase(ctx, purchaseRepo, buyerID, purchaseID); err != nil {
			return err
		}

		return purchaseRepo.DeleteItemsByProduct(ctx, purchaseID, productID)
	})
	if err != nil {
		return nil, err
	}

	return srv.GetPurchase(ctx, purchaseID)
}

// ClearPurchase removes every line item from an open cart.
func (srv *orderService) ClearPurchase(ctx context.Context, buyerID, purchaseID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		purchaseRepo := repoFactory.PurchaseRepo()

		if _, err := srv.loadOwnedOpenPurchase(ctx, purchaseRepo, buyerID, purchaseID); err != nil {
			return err
		}

		return purchaseRepo.DeleteItems(ctx, purchaseID)
	})
}

// GetPurchase retrieves a purchase with its items.
func (srv *orderService) GetPurchase(ctx context.Context, purchaseID uuid.UUID) (*entity.Purchase, error) {
	purchase, err := srv.purchaseRepo.FindByID(ctx, purchaseID)
	if err != nil {
		if errors.Is(err, repository.ErrPurchaseNotFound) {
			return nil, domainerrors.ErrPurchaseNotFound
		}

		return nil, errors.Wrap(err, "failed to get purchase")
	}

	return purchase, nil
}

// GetLastOpenPurchase retrieves the buyer's most recently updated open cart,
// or nil when the buyer has none.
func (srv *orderService) GetLastOpenPurchase(ctx context.Context, buyerID uuid.UUID) (*entity.Purchase, error) {
	purchase, err := srv.purchaseRepo.FindLastOpenByBuyer(ctx, buyerID)
	if err != nil {
		if errors.Is(err, repository.ErrPurchaseNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to get last open purchase")
	}

	return purchase, nil
}

// GetOpenPurchaseItemCount sums the quantities in the buyer's last open cart.
func (srv *orderService) GetOpenPurchaseItemCount(ctx context.Context, buyerID uuid.UUID) (int, error) {
	purchase, err := srv.GetLastOpenPurchase(ctx, buyerID)
	if err != nil {
		return 0, err
	}
	if purchase == nil {
		return 0, nil
	}

	return purchase.ItemCount(), nil
}

// Checkout marks the cart paid and creates its tracking record in one
// transaction, so a paid purchase can never lack tracking. The order-paid
// event is published afterwards, best-effort.
func (srv *orderService) Checkout(ctx context.Context, input *usecase.CheckoutInput) (*usecase.CheckoutOutput, error) {
	var (
		purchase *entity.Purchase
		tracking *entity.Tracking
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		purchaseRepo := repoFactory.PurchaseRepo()
		trackingRepo := repoFactory.TrackingRepo()

		loaded, err := purchaseRepo.FindByID(ctx, input.PurchaseID)
		if err != nil {
			if errors.Is(err, repository.ErrPurchaseNotFound) {
				return domainerrors.ErrPurchaseNotFound
			}

			return errors.Wrap(err, "failed to load purchase for checkout")
		}

		if loaded.BuyerID != input.BuyerID {
			return domainerrors.ErrPurchaseOwnership
		}

		// Checkout retries land here: already paid, tracking already exists.
		if loaded.IsPaid {
			existingTracking, trackErr := trackingRepo.FindByPurchase(ctx, loaded.ID)
			if trackErr != nil {
				return errors.Wrap(trackErr, "failed to load tracking of paid purchase")
			}
			purchase, tracking = loaded, existingTracking

			return nil
		}

		if len(loaded.Items) == 0 {
			return domainerrors.ErrPurchaseEmpty
		}

		loaded.MarkPaid()
		if err := purchaseRepo.UpdateFlags(ctx, loaded); err != nil {
			return errors.Wrap(err, "failed to mark purchase paid")
		}

		newTracking := &entity.Tracking{
			PurchaseID:    loaded.ID,
			Status:        entity.TrackingEmTransito,
			EstimatedTime: input.EstimatedTime,
		}
		if err := trackingRepo.Create(ctx, newTracking); err != nil {
			if errors.Is(err, repository.ErrTrackingExists) {
				// A concurrent checkout won. The transaction is unusable
				// after the failed insert; roll everything back and pick
				// up the winner's state outside.
				return err
			}

			return errors.Wrap(err, "failed to create tracking during checkout")
		}

		purchase, tracking = loaded, newTracking

		return nil
	})
	if errors.Is(err, repository.ErrTrackingExists) {
		// The winner marked the purchase paid and published the event.
		return srv.reloadCheckout(ctx, input.PurchaseID)
	}
	if err != nil {
		srv.log(ctx).Warn("Checkout failed", slog.Any("purchaseID", input.PurchaseID), slog.Any("error", err))

		return nil, err
	}

	srv.publishOrderEvent(ctx, service.OrderEventPaid, purchase, tracking)

	srv.log(ctx).Info("Checkout completed",
		slog.Any("purchaseID", purchase.ID), slog.Any("trackingID", tracking.ID))

	return &usecase.CheckoutOutput{Purchase: purchase, Tracking: tracking}, nil
}

// reloadCheckout reads back the purchase and tracking written by a concurrent
// checkout that won the tracking insert race.
func (srv *orderService) reloadCheckout(ctx context.Context, purchaseID uuid.UUID) (*usecase.CheckoutOutput, error) {
	purchase, err := srv.purchaseRepo.FindByID(ctx, purchaseID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload purchase after checkout race")
	}

	tracking, err := srv.trackingRepo.FindByPurchase(ctx, purchaseID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload tracking after checkout race")
	}

	srv.log(ctx).Info("Checkout already completed concurrently",
		slog.Any("purchaseID", purchase.ID), slog.Any("trackingID", tracking.ID))

	return &usecase.CheckoutOutput{Purchase: purchase, Tracking: tracking}, nil
}

// MarkDelivered records the buyer confirming their order arrived. Only the
// purchase's own buyer may confirm; the purchase flag and the tracking status
// move together in one transaction.
func (srv *orderService) MarkDelivered(ctx context.Context, buyerID, purchaseID uuid.UUID) (*entity.Purchase, error) {
	var purchase *entity.Purchase

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		purchaseRepo := repoFactory.PurchaseRepo()
		trackingRepo := repoFactory.TrackingRepo()

		loaded, err := purchaseRepo.FindByID(ctx, purchaseID)
		if err != nil {
			if errors.Is(err, repository.ErrPurchaseNotFound) {
				return domainerrors.ErrPurchaseNotFound
			}

			return errors.Wrap(err, "failed to load purchase for delivery")
		}

		if loaded.BuyerID != buyerID {
			return domainerrors.ErrPurchaseOwnership
		}

		if err := loaded.MarkDelivered(); err != nil {
			return errors.Wrap(domainerrors.ErrPurchaseNotPaid, "delivery confirmation rejected")
		}

		if err := purchaseRepo.UpdateFlags(ctx, loaded); err != nil {
			return errors.Wrap(err, "failed to mark purchase delivered")
		}

		// Move the tracking to its terminal success state alongside.
		tracking, trackErr := trackingRepo.FindByPurchase(ctx, purchaseID)
		if trackErr != nil && !errors.Is(trackErr, repository.ErrTrackingNotFound) {
			return errors.Wrap(trackErr, "failed to load tracking for delivery")
		}
		if trackErr == nil && tracking.Status != entity.TrackingEntregue {
			if err := tracking.ChangeStatus(entity.TrackingEntregue); err != nil {
				return errors.Wrap(domainerrors.ErrTrackingTransition, err.Error())
			}
			if err := trackingRepo.Update(ctx, tracking); err != nil {
				return errors.Wrap(err, "failed to update tracking for delivery")
			}
		}

		purchase = loaded

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("MarkDelivered failed", slog.Any("purchaseID", purchaseID), slog.Any("error", err))

		return nil, err
	}

	srv.publishOrderEvent(ctx, service.OrderEventDelivered, purchase, nil)

	return purchase, nil
}

// ListBuyerPurchases retrieves the buyer's purchases, newest first.
func (srv *orderService) ListBuyerPurchases(ctx context.Context, buyerID uuid.UUID) ([]*entity.Purchase, error) {
	purchases, err := srv.purchaseRepo.FindByBuyer(ctx, buyerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list buyer purchases")
	}

	return purchases, nil
}

// ListStorePurchases retrieves the paid purchases placed against a store.
func (srv *orderService) ListStorePurchases(ctx context.Context, storeID uuid.UUID) ([]*entity.Purchase, error) {
	purchases, err := srv.purchaseRepo.FindByStore(ctx, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list store purchases")
	}

	return purchases, nil
}

// loadOwnedOpenPurchase fetches a purchase and verifies the caller owns it
// and may still mutate its line items.
func (srv *orderService) loadOwnedOpenPurchase(ctx context.Context, purchaseRepo repository.PurchaseRepository, buyerID, purchaseID uuid.UUID) (*entity.Purchase, error) {
	purchase, err := purchaseRepo.FindByID(ctx, purchaseID)
	if err != nil {
		if errors.Is(err, repository.ErrPurchaseNotFound) {
			return nil, domainerrors.ErrPurchaseNotFound
		}

		return nil, errors.Wrap(err, "failed to load purchase")
	}

	if purchase.BuyerID != buyerID {
		return nil, domainerrors.ErrPurchaseOwnership
	}
	if !purchase.IsOpen() {
		return nil, domainerrors.ErrPurchaseNotOpen
	}

	return purchase, nil
}

// publishOrderEvent publishes an order lifecycle event. Failures are logged,
// never surfaced: event delivery must not break the order flow.
func (srv *orderService) publishOrderEvent(ctx context.Context, eventType string, purchase *entity.Purchase, tracking *entity.Tracking) {
	event := &service.OrderEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		PurchaseID: purchase.ID.String(),
		BuyerID:    purchase.BuyerID.String(),
		StoreID:    purchase.StoreID.String(),
		Status:     string(purchase.Status()),
		Total:      purchase.Total(),
	}
	if tracking != nil {
		event.TrackingID = tracking.ID.String()
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.String("type", eventType), slog.Any("purchaseID", purchase.ID), slog.Any("error", err))
	}
}

// clampQuantity forces a requested quantity into the allowed range instead of
// trusting the client-side clamp.
func clampQuantity(quantity int) int {
	if quantity < minItemQuantity {
		return minItemQuantity
	}
	if quantity > maxItemQuantity {
		return maxItemQuantity
	}

	return quantity
}
