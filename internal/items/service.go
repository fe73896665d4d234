package items

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/maintenix/maintenix-backend/pkg/db/models"
	pkgerrors "github.com/maintenix/maintenix-backend/pkg/errors"
	"gorm.io/gorm"
)

type categoryFinder interface {
	FindByID(ctx context.Context, id int64) (*models.Category, error)
}

type service struct {
	repo       Repository
	categories categoryFinder
}

// NewService builds an items service with the required dependencies.
func NewService(repo Repository, categories categoryFinder) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("items repository required")
	}
	if categories == nil {
		return nil, fmt.Errorf("categories repository required")
	}
	return &service{repo: repo, categories: categories}, nil
}

func (s *service) Create(ctx context.Context, input CreateItemInput) (*ItemResponse, error) {
	name := strings.TrimSpace(input.Name)
	sku := strings.TrimSpace(input.SKU)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item name required")
	}
	if sku == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item sku required")
	}
	if input.Price < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item price cannot be negative")
	}
	if input.Stock < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item stock cannot be negative")
	}

	if input.CategoryID != nil {
		if err := s.ensureCategory(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
	}

	item, err := s.repo.Create(ctx, &models.Item{
		Name:       name,
		SKU:        sku,
		Price:      input.Price,
		Stock:      input.Stock,
		CategoryID: input.CategoryID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating item")
	}

	return s.Get(ctx, item.ID)
}

func (s *service) Get(ctx context.Context, id int64) (*ItemResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading item")
	}
	return toResponse(item), nil
}

func (s *service) List(ctx context.Context, filters ListFilters) ([]ItemResponse, error) {
	records, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing items")
	}
	out := make([]ItemResponse, 0, len(records))
	for i := range records {
		out = append(out, *toResponse(&records[i]))
	}
	return out, nil
}

func (s *service) Update(ctx context.Context, id int64, input UpdateItemInput) (*ItemResponse, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "item name cannot be empty")
		}
		updates["name"] = name
	}
	if input.SKU != nil {
		sku := strings.TrimSpace(*input.SKU)
		if sku == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "item sku cannot be empty")
		}
		updates["sku"] = sku
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "item price cannot be negative")
		}
		updates["price"] = *input.Price
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "item stock cannot be negative")
		}
		updates["stock"] = *input.Stock
	}
	if input.CategoryID != nil {
		if err := s.ensureCategory(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
		updates["category_id"] = *input.CategoryID
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating item")
		}
	}

	return s.Get(ctx, id)
}

func (s *service) ensureCategory(ctx context.Context, id int64) error {
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeValidation, "category does not exist").
				WithDetails(map[string]any{"category_id": id})
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "checking category")
	}
	return nil
}
