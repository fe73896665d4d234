package categories

import (
	"time"

	"github.com/maintenix/maintenix-backend/pkg/db/models"
)

// CreateCategoryInput carries the fields accepted when registering a category.
type CreateCategoryInput struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

// UpdateCategoryInput carries the mutable fields of a category. Nil means unchanged.
type UpdateCategoryInput struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=120"`
}

// CategoryResponse is the public shape returned by the API.
type CategoryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toResponse(m *models.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
