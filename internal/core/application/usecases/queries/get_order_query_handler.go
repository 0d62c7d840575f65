package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"
	"manufacturing/internal/pkg/clock"
	"manufacturing/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db    *gorm.DB
	clock clock.Clock
}

func NewGetOrderQueryHandler(db *gorm.DB, clk clock.Clock) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, clock: clk}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	db := h.db.WithContext(ctx)
	orderID := query.OrderID().String()

	resp := OrderResponse{ID: query.OrderID(), LaborCost: decimal.Zero}
	var bomID uuid.UUID
	var placedOn, deliveryOn time.Time
	var status, availability int

	err := db.Raw(`
		SELECT customer, product, bom_id, quantity, placed_on, delivery_on, status, availability
		FROM orders
		WHERE id = ?
	`, orderID).Row().Scan(
		&resp.Customer,
		&resp.Product,
		&bomID,
		&resp.Quantity,
		&placedOn,
		&deliveryOn,
		&status,
		&availability,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", orderID)
	}
	if err != nil {
		return OrderResponse{}, err
	}

	if resp.BomID, err = toKernelUUID(bomID); err != nil {
		return OrderResponse{}, err
	}
	resp.PlacedOn = kernel.DateOf(placedOn)
	resp.DeliveryOn = kernel.DateOf(deliveryOn)
	resp.Status = order.EffectiveStatus(order.Status(status), resp.DeliveryOn, kernel.DateOf(h.clock.Now()))
	resp.Availability = order.Availability(availability)

	if resp.WorkOrders, err = selectWorkOrders(db, "wo.order_id = ?", orderID); err != nil {
		return OrderResponse{}, err
	}
	for _, wo := range resp.WorkOrders {
		resp.LaborCost = resp.LaborCost.Add(wo.LaborCost)
	}

	return resp, nil
}
