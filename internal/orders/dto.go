package orders

import (
	"time"

	"github.com/maintenix/maintenix-backend/pkg/db/models"
)

// OrderLineInput is one requested line of a new order. A nil quantity
// defaults to 1.
type OrderLineInput struct {
	ItemID   int64 `json:"item_id" validate:"required,gt=0"`
	Quantity *int  `json:"quantity" validate:"omitempty,gt=0"`
}

// CreateOrderInput carries the fields accepted when placing an order. The
// request key, when present, makes the call idempotent.
type CreateOrderInput struct {
	Report     string
	RequestKey string
	Lines      []OrderLineInput
}

// ListParams describe the inputs supported by the orders list.
type ListParams struct {
	Limit  int
	Offset int
}

// OrderLineSnapshot is one line of a persisted order.
type OrderLineSnapshot struct {
	ItemID   int64 `json:"item_id"`
	Quantity int   `json:"quantity"`
}

// OrderSnapshot is the read-back view of a persisted order. The same shape is
// returned whether the order was just created or recovered through the
// idempotency ledger.
type OrderSnapshot struct {
	ID        int64               `json:"id"`
	Report    string              `json:"report"`
	CreatedAt time.Time           `json:"created_at"`
	Items     []OrderLineSnapshot `json:"items"`
}

func toSnapshot(m *models.Order) *OrderSnapshot {
	snap := &OrderSnapshot{
		ID:        m.ID,
		Report:    m.Report,
		CreatedAt: m.CreatedAt,
		Items:     make([]OrderLineSnapshot, 0, len(m.Lines)),
	}
	for _, line := range m.Lines {
		snap.Items = append(snap.Items, OrderLineSnapshot{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
		})
	}
	return snap
}
