package orders

import (
	"context"

	"github.com/maintenix/maintenix-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository defines persistence operations for order tables and the
// idempotency ledger.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	CreateOrderLines(ctx context.Context, lines []models.OrderLine) error
	CreateIdempotencyKey(ctx context.Context, key *models.IdempotencyKey) error
	FindIdempotencyKey(ctx context.Context, requestKey, resourceType string) (*models.IdempotencyKey, error)
	FindOrderByID(ctx context.Context, id int64) (*models.Order, error)
	ListOrders(ctx context.Context, params ListParams) ([]models.Order, error)
}

// Service defines order-level operations exposed to the API layer.
type Service interface {
	Create(ctx context.Context, input CreateOrderInput) (*OrderSnapshot, bool, error)
	Get(ctx context.Context, id int64) (*OrderSnapshot, error)
	List(ctx context.Context, params ListParams) ([]OrderSnapshot, error)
}
