package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// spendStatuses are the order states that count towards loyalty.
var spendStatuses = []string{
	string(entity.OrderStatusCompleted),
	string(entity.OrderStatusCollected),
}

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists an order and its items in one statement batch.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateIdempotencyKey
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("order violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves an order with its items.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindByIdempotencyKey reads from the primary so a just-committed checkout is visible.
func (repo *orderRepository) FindByIdempotencyKey(ctx context.Context, customerID uuid.UUID, key string) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Preload("Items").
		Where("customer_id = ? AND idempotency_key = ?", customerID, key).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by idempotency key")
	}

	return toOrderDomain(&orderM), nil
}

// ListByCustomer retrieves a page of a customer's orders, newest first.
func (repo *orderRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by customer")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// SumCompletedSpend reads from the primary; tiers must reflect the latest checkout.
func (repo *orderRepository) SumCompletedSpend(ctx context.Context, customerID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal

	row := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.OrderModel{}).
		Select("COALESCE(SUM(total), 0)").
		Where("customer_id = ? AND status IN ?", customerID, spendStatuses).
		Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum customer spend")
	}

	return total, nil
}

// SumPoints totals points across completed and collected orders.
func (repo *orderRepository) SumPoints(ctx context.Context, customerID uuid.UUID) (int64, error) {
	var points int64

	row := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.OrderModel{}).
		Select("COALESCE(SUM(points_earned), 0)").
		Where("customer_id = ? AND status IN ?", customerID, spendStatuses).
		Row()
	if err := row.Scan(&points); err != nil {
		return 0, errors.Wrap(err, "failed to sum customer points")
	}

	return points, nil
}

// UpdateStatus performs a compare-and-set on the order status.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Update("status", string(to))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check order existence")
	}
	if count == 0 {
		return repository.ErrOrderNotFound
	}

	return repository.ErrOrderStatusConflict
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:               data.ID,
		CustomerID:       data.CustomerID,
		Status:           entity.OrderStatus(data.Status),
		PaymentMethod:    entity.PaymentMethod(data.PaymentMethod),
		PaymentReference: data.PaymentReference,
		Fulfilment:       entity.Fulfilment(data.Fulfilment),
		Total:            data.Total,
		PointsEarned:     data.PointsEarned,
		TierAtPurchase:   entity.Tier(data.TierAtPurchase),
		TierAfter:        entity.Tier(data.TierAfter),
		Items:            make([]entity.OrderItem, 0, len(data.Items)),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
	if data.IdempotencyKey != nil {
		order.IdempotencyKey = *data.IdempotencyKey
	}

	for _, itemM := range data.Items {
		order.Items = append(order.Items, entity.OrderItem{
			ID:         itemM.ID,
			OrderID:    itemM.OrderID,
			ItemID:     itemM.ItemID,
			Source:     entity.CatalogSource(itemM.Source),
			Name:       itemM.Name,
			UnitPrice:  itemM.UnitPrice,
			Quantity:   itemM.Quantity,
			SupplierID: itemM.SupplierID,
		})
	}

	return order
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	orderM := &model.OrderModel{
		ID:               data.ID,
		CustomerID:       data.CustomerID,
		Status:           string(data.Status),
		PaymentMethod:    string(data.PaymentMethod),
		PaymentReference: data.PaymentReference,
		Fulfilment:       string(data.Fulfilment),
		Total:            data.Total,
		PointsEarned:     data.PointsEarned,
		TierAtPurchase:   string(data.TierAtPurchase),
		TierAfter:        string(data.TierAfter),
		Items:            make([]model.OrderItemModel, 0, len(data.Items)),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
	if data.IdempotencyKey != "" {
		key := data.IdempotencyKey
		orderM.IdempotencyKey = &key
	}

	for _, item := range data.Items {
		orderM.Items = append(orderM.Items, model.OrderItemModel{
			ID:         item.ID,
			OrderID:    data.ID,
			ItemID:     item.ItemID,
			Source:     string(item.Source),
			Name:       item.Name,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
			SupplierID: item.SupplierID,
		})
	}

	return orderM
}
