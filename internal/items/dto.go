package items

import (
	"time"

	"github.com/maintenix/maintenix-backend/pkg/db/models"
)

// CreateItemInput carries the fields accepted when registering an item.
type CreateItemInput struct {
	Name       string  `json:"name" validate:"required,min=1,max=200"`
	SKU        string  `json:"sku" validate:"required,min=1,max=64"`
	Price      float64 `json:"price" validate:"min=0"`
	Stock      int     `json:"stock" validate:"min=0"`
	CategoryID *int64  `json:"category_id" validate:"omitempty,gt=0"`
}

// UpdateItemInput carries the mutable item fields. Nil means unchanged.
type UpdateItemInput struct {
	Name       *string  `json:"name" validate:"omitempty,min=1,max=200"`
	SKU        *string  `json:"sku" validate:"omitempty,min=1,max=64"`
	Price      *float64 `json:"price" validate:"omitempty,min=0"`
	Stock      *int     `json:"stock" validate:"omitempty,min=0"`
	CategoryID *int64   `json:"category_id" validate:"omitempty,gt=0"`
}

// ListFilters describe the inputs supported by the items list.
type ListFilters struct {
	SKU        string
	CategoryID *int64
}

// ItemCategory is the embedded category summary returned with an item.
type ItemCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ItemResponse is the public shape returned by the API.
type ItemResponse struct {
	ID         int64         `json:"id"`
	Name       string        `json:"name"`
	SKU        string        `json:"sku"`
	Price      float64       `json:"price"`
	Stock      int           `json:"stock"`
	CategoryID *int64        `json:"category_id,omitempty"`
	Category   *ItemCategory `json:"category,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

func toResponse(m *models.Item) *ItemResponse {
	resp := &ItemResponse{
		ID:         m.ID,
		Name:       m.Name,
		SKU:        m.SKU,
		Price:      m.Price,
		Stock:      m.Stock,
		CategoryID: m.CategoryID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.Category != nil {
		resp.Category = &ItemCategory{ID: m.Category.ID, Name: m.Category.Name}
	}
	return resp
}
