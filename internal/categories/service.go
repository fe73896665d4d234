package categories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/maintenix/maintenix-backend/pkg/db"
	"github.com/maintenix/maintenix-backend/pkg/db/models"
	pkgerrors "github.com/maintenix/maintenix-backend/pkg/errors"
	"gorm.io/gorm"
)

type service struct {
	repo Repository
}

// NewService builds a categories service with the required dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("categories repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input CreateCategoryInput) (*CategoryResponse, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category name required")
	}

	category, err := s.repo.Create(ctx, &models.Category{Name: name})
	if err != nil {
		if db.IsUniqueViolation(err, "categories") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "category name already exists").
				WithDetails(map[string]any{"name": name})
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating category")
	}
	return toResponse(category), nil
}

func (s *service) Get(ctx context.Context, id int64) (*CategoryResponse, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading category")
	}
	return toResponse(category), nil
}

func (s *service) List(ctx context.Context) ([]CategoryResponse, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing categories")
	}
	out := make([]CategoryResponse, 0, len(records))
	for i := range records {
		out = append(out, *toResponse(&records[i]))
	}
	return out, nil
}

func (s *service) Update(ctx context.Context, id int64, input UpdateCategoryInput) (*CategoryResponse, error) {
	updates := map[string]any{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "category name cannot be empty")
		}
		updates["name"] = name
	}

	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			if db.IsUniqueViolation(err, "categories") {
				return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "category name already exists")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating category")
		}
	}

	return s.Get(ctx, id)
}
