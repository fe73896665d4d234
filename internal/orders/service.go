package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/maintenix/maintenix-backend/internal/items"
	"github.com/maintenix/maintenix-backend/pkg/db"
	"github.com/maintenix/maintenix-backend/pkg/db/models"
	pkgerrors "github.com/maintenix/maintenix-backend/pkg/errors"
	"github.com/maintenix/maintenix-backend/pkg/logger"
	"gorm.io/gorm"
)

// resourceTypeOrder labels order rows in the idempotency ledger.
const resourceTypeOrder = "order"

// requestKeyConstraint matches both the Postgres index name and the SQLite
// constraint message for the ledger's unique key.
const requestKeyConstraint = "request_key"

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type service struct {
	repo  Repository
	items items.Repository
	tx    txRunner
	logg  *logger.Logger
}

// NewService builds an orders service with the required dependencies.
func NewService(repo Repository, itemsRepo items.Repository, tx txRunner, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if itemsRepo == nil {
		return nil, fmt.Errorf("items repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, items: itemsRepo, tx: tx, logg: logg}, nil
}

// Create persists an order with its lines in a single transaction. When a
// request key is supplied the call is idempotent: a retry returns the order
// created by the first request, and a concurrent duplicate is resolved by the
// ledger's unique constraint. The returned bool is true only for the request
// that actually created the order.
func (s *service) Create(ctx context.Context, input CreateOrderInput) (*OrderSnapshot, bool, error) {
	report := strings.TrimSpace(input.Report)
	if report == "" {
		return nil, false, pkgerrors.New(pkgerrors.CodeValidation, "order report required")
	}

	lines, err := normalizeLines(input.Lines)
	if err != nil {
		return nil, false, err
	}

	requestKey := strings.TrimSpace(input.RequestKey)
	if requestKey != "" {
		snap, found, err := s.findByRequestKey(ctx, requestKey)
		if err != nil {
			return nil, false, err
		}
		if found {
			return snap, false, nil
		}
	}

	var orderID int64
	txErr := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		itemsRepo := s.items.WithTx(tx)

		order, err := repo.CreateOrder(ctx, &models.Order{Report: report})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating order").
				WithDetails(map[string]any{"step": "order"})
		}

		for _, line := range lines {
			exists, err := itemsRepo.ExistsByID(ctx, line.ItemID)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "checking item").
					WithDetails(map[string]any{"step": "lines"})
			}
			if !exists {
				return pkgerrors.New(pkgerrors.CodeValidation, "item does not exist").
					WithDetails(map[string]any{"item_id": line.ItemID})
			}
		}

		rows := make([]models.OrderLine, 0, len(lines))
		for _, line := range lines {
			rows = append(rows, models.OrderLine{
				OrderID:  order.ID,
				ItemID:   line.ItemID,
				Quantity: line.Quantity,
			})
		}
		if err := repo.CreateOrderLines(ctx, rows); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating order lines").
				WithDetails(map[string]any{"step": "lines"})
		}

		if requestKey != "" {
			key := &models.IdempotencyKey{
				RequestKey:   requestKey,
				ResourceType: resourceTypeOrder,
				ResourceID:   order.ID,
			}
			if err := repo.CreateIdempotencyKey(ctx, key); err != nil {
				return err
			}
		}

		orderID = order.ID
		return nil
	})

	if txErr != nil {
		if requestKey != "" && db.IsUniqueViolation(txErr, requestKeyConstraint) {
			// Another request won the race on the same key. The transaction was
			// rolled back, so the winner's row is what we must return.
			snap, found, err := s.findByRequestKey(ctx, requestKey)
			if err == nil && found {
				if s.logg != nil {
					logCtx := s.logg.WithRequestKey(ctx, requestKey)
					s.logg.Info(s.logg.WithOrderID(logCtx, snap.ID), "order.create.race_recovered")
				}
				return snap, false, nil
			}
		}
		if typed := pkgerrors.As(txErr); typed != nil {
			return nil, false, txErr
		}
		return nil, false, pkgerrors.Wrap(pkgerrors.CodeInternal, txErr, "creating order")
	}

	snap, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, false, err
	}
	return snap, true, nil
}

// Get returns the snapshot of one order.
func (s *service) Get(ctx context.Context, id int64) (*OrderSnapshot, error) {
	order, err := s.repo.FindOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading order")
	}
	return toSnapshot(order), nil
}

// List returns order snapshots in insertion order.
func (s *service) List(ctx context.Context, params ListParams) ([]OrderSnapshot, error) {
	records, err := s.repo.ListOrders(ctx, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing orders")
	}
	out := make([]OrderSnapshot, 0, len(records))
	for i := range records {
		out = append(out, *toSnapshot(&records[i]))
	}
	return out, nil
}

type normalizedLine struct {
	ItemID   int64
	Quantity int
}

func normalizeLines(inputs []OrderLineInput) ([]normalizedLine, error) {
	seen := map[int64]bool{}
	lines := make([]normalizedLine, 0, len(inputs))
	for _, in := range inputs {
		if in.ItemID <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "item id must be positive").
				WithDetails(map[string]any{"item_id": in.ItemID})
		}
		if seen[in.ItemID] {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "duplicate item in order").
				WithDetails(map[string]any{"item_id": in.ItemID})
		}
		seen[in.ItemID] = true

		qty := 1
		if in.Quantity != nil {
			if *in.Quantity <= 0 {
				return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive").
					WithDetails(map[string]any{"item_id": in.ItemID, "quantity": *in.Quantity})
			}
			qty = *in.Quantity
		}
		lines = append(lines, normalizedLine{ItemID: in.ItemID, Quantity: qty})
	}
	return lines, nil
}

// findByRequestKey resolves a ledger entry to the snapshot of the order it
// points at. A missing ledger row is not an error.
func (s *service) findByRequestKey(ctx context.Context, requestKey string) (*OrderSnapshot, bool, error) {
	key, err := s.repo.FindIdempotencyKey(ctx, requestKey, resourceTypeOrder)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reading idempotency ledger")
	}

	order, err := s.repo.FindOrderByID(ctx, key.ResourceID)
	if err != nil {
		return nil, false, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading order for idempotency key").
			WithDetails(map[string]any{"request_key": requestKey})
	}
	return toSnapshot(order), true, nil
}
