package categories

import (
	"context"
	"testing"

	pkgerrors "github.com/maintenix/maintenix-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	conn := setupCategoriesTestDB(t)
	svc, err := NewService(NewRepository(conn))
	require.NoError(t, err)
	return svc
}

func TestServiceCreate_TrimsAndReturns(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Create(ctx, CreateCategoryInput{Name: "  Hydraulics "})
	require.NoError(t, err)
	assert.Equal(t, "Hydraulics", resp.Name)
	assert.NotZero(t, resp.ID)
}

func TestServiceCreate_DuplicateNameConflicts(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateCategoryInput{Name: "Filters"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateCategoryInput{Name: "Filters"})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeConflict, typed.Code())
}

func TestServiceCreate_EmptyNameRejected(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), CreateCategoryInput{Name: "   "})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestServiceGet_NotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Get(context.Background(), 9999)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestServiceUpdate_RenamesCategory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateCategoryInput{Name: "Bearngs"})
	require.NoError(t, err)

	name := "Bearings"
	updated, err := svc.Update(ctx, created.ID, UpdateCategoryInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Bearings", updated.Name)
}

func TestServiceUpdate_NoFieldsIsNoop(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateCategoryInput{Name: "Seals"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, UpdateCategoryInput{})
	require.NoError(t, err)
	assert.Equal(t, created.Name, updated.Name)
}
