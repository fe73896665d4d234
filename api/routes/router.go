package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maintenix/maintenix-backend/api/controllers"
	"github.com/maintenix/maintenix-backend/api/middleware"
	"github.com/maintenix/maintenix-backend/internal/categories"
	"github.com/maintenix/maintenix-backend/internal/items"
	"github.com/maintenix/maintenix-backend/internal/orders"
	"github.com/maintenix/maintenix-backend/internal/storage"
	"github.com/maintenix/maintenix-backend/pkg/config"
	"github.com/maintenix/maintenix-backend/pkg/db"
	"github.com/maintenix/maintenix-backend/pkg/logger"
	"github.com/maintenix/maintenix-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	categoriesService categories.Service,
	itemsService items.Service,
	ordersService orders.Service,
	storageService storage.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	writePolicy := middleware.NewRateLimitPolicy("write", cfg.RateLimit.Window, cfg.RateLimit.Limit)

	// A typed nil *redis.Client must not reach the limiter or the health
	// check as a non-nil interface.
	var limiter redis.Limiter
	var redisP redis.Pinger
	if redisClient != nil {
		limiter = redisClient
		redisP = redisClient
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/categories", func(r chi.Router) {
			r.With(middleware.RateLimit(writePolicy, limiter, logg)).Post("/", controllers.CreateCategory(categoriesService, logg))
			r.Get("/", controllers.ListCategories(categoriesService, logg))
			r.Get("/{categoryId}", controllers.GetCategory(categoriesService, logg))
			r.With(middleware.RateLimit(writePolicy, limiter, logg)).Patch("/{categoryId}", controllers.UpdateCategory(categoriesService, logg))
		})

		r.Route("/items", func(r chi.Router) {
			r.With(middleware.RateLimit(writePolicy, limiter, logg)).Post("/", controllers.CreateItem(itemsService, logg))
			r.Get("/", controllers.ListItems(itemsService, logg))
			r.Get("/{itemId}", controllers.GetItem(itemsService, logg))
			r.With(middleware.RateLimit(writePolicy, limiter, logg)).Patch("/{itemId}", controllers.UpdateItem(itemsService, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.With(middleware.RateLimit(writePolicy, limiter, logg)).Post("/", controllers.CreateOrder(ordersService, logg))
			r.Get("/", controllers.ListOrders(ordersService, logg))
			r.Get("/{orderId}", controllers.GetOrder(ordersService, logg))
		})

		r.Route("/storage", func(r chi.Router) {
			r.Post("/simulate-upload-image", controllers.SimulateUploadImage(storageService, logg))
			r.Get("/simulate-list-images/{orderId}", controllers.SimulateListImages(storageService, logg))
			r.Post("/simulate-delete-image", controllers.SimulateDeleteImage(storageService, logg))
			r.Get("/bucket-info", controllers.BucketInfo(storageService, logg))
		})
	})

	return r
}
