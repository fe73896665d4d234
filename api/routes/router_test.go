package routes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/maintenix/maintenix-backend/internal/categories"
	"github.com/maintenix/maintenix-backend/internal/items"
	"github.com/maintenix/maintenix-backend/internal/orders"
	"github.com/maintenix/maintenix-backend/internal/storage"
	"github.com/maintenix/maintenix-backend/pkg/config"
	"github.com/maintenix/maintenix-backend/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type gormTxRunner struct {
	db *gorm.DB
}

func (r gormTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	dsn := "file:router_" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE categories (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);
CREATE UNIQUE INDEX idx_categories_name ON categories (name);
CREATE TABLE items (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  sku TEXT NOT NULL,
  price REAL NOT NULL DEFAULT 0,
  stock INTEGER NOT NULL DEFAULT 0,
  category_id INTEGER,
  created_at DATETIME,
  updated_at DATETIME
);
CREATE TABLE orders (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  report TEXT NOT NULL,
  created_at DATETIME
);
CREATE TABLE order_lines (
  order_id INTEGER NOT NULL,
  item_id INTEGER NOT NULL,
  quantity INTEGER NOT NULL DEFAULT 1,
  PRIMARY KEY (order_id, item_id)
);
CREATE TABLE idempotency_keys (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  request_key TEXT NOT NULL,
  resource_type TEXT NOT NULL,
  resource_id INTEGER NOT NULL,
  created_at DATETIME
);
CREATE UNIQUE INDEX idx_idempotency_keys_request_key ON idempotency_keys (request_key);`
	require.NoError(t, conn.Exec(schema).Error)

	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.Storage.Bucket = "maintenix-simulated"
	cfg.Storage.Region = "us-east-1"

	categoriesRepo := categories.NewRepository(conn)
	categoriesService, err := categories.NewService(categoriesRepo)
	require.NoError(t, err)

	itemsRepo := items.NewRepository(conn)
	itemsService, err := items.NewService(itemsRepo, categoriesRepo)
	require.NoError(t, err)

	ordersService, err := orders.NewService(orders.NewRepository(conn), itemsRepo, gormTxRunner{db: conn}, nil)
	require.NoError(t, err)

	storageService, err := storage.NewService(cfg.Storage, nil)
	require.NoError(t, err)

	return NewRouter(cfg, nil, stubPinger{}, nil, categoriesService, itemsService, ordersService, storageService)
}

func doJSON(t *testing.T, handler http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	for k, v := range headers {
		r.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope types.SuccessEnvelope
	require.NoError(t, json.NewDecoder(w.Body).Decode(&envelope))
	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok, "expected object payload")
	return data
}

func TestRouter_HealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, "GET", "/health/live", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "GET", "/health/ready", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	checks := data["checks"].(map[string]any)
	assert.Equal(t, "ok", checks["database"])
	assert.Equal(t, "skipped", checks["redis"])
}

func TestRouter_FullOrderFlow(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, "POST", "/api/v1/categories", `{"name":"Hydraulics"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	categoryID := int64(decodeData(t, w)["id"].(float64))

	itemBody := fmt.Sprintf(`{"name":"Pressure valve","sku":"PV-100","price":49.99,"stock":12,"category_id":%d}`, categoryID)
	w = doJSON(t, router, "POST", "/api/v1/items", itemBody, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	itemID := int64(decodeData(t, w)["id"].(float64))

	orderBody := fmt.Sprintf(`{"report":"replaced valve on pump 3","items":[{"item_id":%d,"quantity":2}]}`, itemID)
	headers := map[string]string{"Idempotency-Key": "req-router-1"}

	w = doJSON(t, router, "POST", "/api/v1/orders", orderBody, headers)
	require.Equal(t, http.StatusCreated, w.Code)
	first := decodeData(t, w)

	// Replay with the same key returns the same order with 200.
	w = doJSON(t, router, "POST", "/api/v1/orders", orderBody, headers)
	require.Equal(t, http.StatusOK, w.Code)
	second := decodeData(t, w)
	assert.Equal(t, first["id"], second["id"])

	orderID := int64(first["id"].(float64))
	w = doJSON(t, router, "GET", fmt.Sprintf("/api/v1/orders/%d", orderID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "GET", "/api/v1/orders", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_OrderWithUnknownItemFails(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, "POST", "/api/v1/orders", `{"report":"ghost parts","items":[{"item_id":12345}]}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_NotFoundPaths(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, "GET", "/api/v1/orders/999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, "GET", "/api/v1/items/999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_StorageSimulation(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, "POST", "/api/v1/storage/simulate-upload-image", `{"image_name":"IMG001.jpg","order_id":4}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "maintenance/4/IMG001.jpg", data["object_key"])

	w = doJSON(t, router, "GET", "/api/v1/storage/simulate-list-images/4", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "GET", "/api/v1/storage/bucket-info", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	info := decodeData(t, w)
	assert.Equal(t, "maintenix-simulated", info["bucket_name"])
}
