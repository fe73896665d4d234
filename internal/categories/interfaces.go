package categories

import (
	"context"

	"github.com/maintenix/maintenix-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository defines persistence operations for the categories table.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, category *models.Category) (*models.Category, error)
	FindByID(ctx context.Context, id int64) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Update(ctx context.Context, id int64, updates map[string]any) error
}

// Service defines the category operations exposed to the API layer.
type Service interface {
	Create(ctx context.Context, input CreateCategoryInput) (*CategoryResponse, error)
	Get(ctx context.Context, id int64) (*CategoryResponse, error)
	List(ctx context.Context) ([]CategoryResponse, error)
	Update(ctx context.Context, id int64, input UpdateCategoryInput) (*CategoryResponse, error)
}
