package items

import (
	"context"

	"github.com/maintenix/maintenix-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository defines persistence operations for the items table.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, item *models.Item) (*models.Item, error)
	FindByID(ctx context.Context, id int64) (*models.Item, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, filters ListFilters) ([]models.Item, error)
	Update(ctx context.Context, id int64, updates map[string]any) error
}

// Service defines the item operations exposed to the API layer.
type Service interface {
	Create(ctx context.Context, input CreateItemInput) (*ItemResponse, error)
	Get(ctx context.Context, id int64) (*ItemResponse, error)
	List(ctx context.Context, filters ListFilters) ([]ItemResponse, error)
	Update(ctx context.Context, id int64, input UpdateItemInput) (*ItemResponse, error)
}
