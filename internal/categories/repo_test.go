package categories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/maintenix/maintenix-backend/pkg/db/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCategoriesTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:categories_" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS categories (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name ON categories (name);`
	require.NoError(t, conn.Exec(schema).Error)

	return conn
}

func TestCategoriesRepo_CreateAndFind(t *testing.T) {
	conn := setupCategoriesTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.Category{Name: "Hydraulics"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hydraulics", found.Name)
}

func TestCategoriesRepo_UniqueName(t *testing.T) {
	conn := setupCategoriesTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.Category{Name: "Filters"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &models.Category{Name: "Filters"})
	require.Error(t, err)
}

func TestCategoriesRepo_ListOrdersByName(t *testing.T) {
	conn := setupCategoriesTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	for _, name := range []string{"Pneumatics", "Bearings", "Electrical"} {
		_, err := repo.Create(ctx, &models.Category{Name: name})
		require.NoError(t, err)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Bearings", list[0].Name)
	assert.Equal(t, "Electrical", list[1].Name)
	assert.Equal(t, "Pneumatics", list[2].Name)
}

func TestCategoriesRepo_Update(t *testing.T) {
	conn := setupCategoriesTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.Category{Name: "Elecrical"})
	require.NoError(t, err)

	require.NoError(t, repo.Update(ctx, created.ID, map[string]any{"name": "Electrical"}))

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Electrical", found.Name)
}
