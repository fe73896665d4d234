package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/maintenix/maintenix-backend/api/responses"
	"github.com/maintenix/maintenix-backend/api/validators"
	ordersvc "github.com/maintenix/maintenix-backend/internal/orders"
	pkgerrors "github.com/maintenix/maintenix-backend/pkg/errors"
	"github.com/maintenix/maintenix-backend/pkg/logger"
)

const idempotencyKeyHeader = "Idempotency-Key"

const maxOrdersPageSize = 200

type createOrderRequest struct {
	Report    string                    `json:"report" validate:"required"`
	RequestID string                    `json:"request_id" validate:"omitempty,max=128"`
	Items     []ordersvc.OrderLineInput `json:"items" validate:"omitempty,dive"`
}

// CreateOrder places a maintenance order. The Idempotency-Key header takes
// precedence over the body's request_id; with neither the call is not
// idempotent. Responds 201 when this request created the order and 200 when
// an earlier request with the same key did.
func CreateOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		var payload createOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		requestKey := strings.TrimSpace(r.Header.Get(idempotencyKeyHeader))
		if requestKey == "" {
			requestKey = strings.TrimSpace(payload.RequestID)
		}

		ctx := r.Context()
		if logg != nil && requestKey != "" {
			ctx = logg.WithRequestKey(ctx, requestKey)
		}

		snapshot, created, err := svc.Create(ctx, ordersvc.CreateOrderInput{
			Report:     payload.Report,
			RequestKey: requestKey,
			Lines:      payload.Items,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		responses.WriteSuccessStatus(w, status, snapshot)
	}
}

// ListOrders returns order snapshots in insertion order. Without a limit
// query parameter the full set is returned; a supplied limit is capped at 200.
func ListOrders(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 0, 1, maxOrdersPageSize)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		offset, err := validators.ParseQueryInt(r, "offset", 0, 0, 1<<30)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		orders, err := svc.List(r.Context(), ordersvc.ListParams{Limit: limit, Offset: offset})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, orders)
	}
}

// GetOrder returns a single order snapshot.
func GetOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		id, err := validators.ParsePathID(chi.URLParam(r, "orderId"), "orderId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, order)
	}
}
