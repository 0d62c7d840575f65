package queries

import (
	"errors"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"
	"manufacturing/internal/core/domain/model/workorder"
	"manufacturing/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads an order with its work orders.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderResponse is an order as a reader sees it. Status is the effective
// status; LaborCost sums the work orders' labor cost.
type OrderResponse struct {
	ID           kernel.UUID
	Customer     string
	Product      string
	BomID        kernel.UUID
	Quantity     int
	PlacedOn     kernel.Date
	DeliveryOn   kernel.Date
	Status       order.Status
	Availability order.Availability
	LaborCost    decimal.Decimal
	WorkOrders   []WorkOrderResponse
}

// WorkOrderResponse is a work order line. LaborCost is the hours between
// start and end at the center's hourly rate, zero until the work order is Done.
type WorkOrderResponse struct {
	ID             kernel.UUID
	OrderID        kernel.UUID
	WorkCenterID   kernel.UUID
	WorkCenterName string
	OperatorID     kernel.UUID
	Quantity       int
	Status         workorder.Status
	StartedAt      *time.Time
	FinishedAt     *time.Time
	Comments       string
	LaborCost      decimal.Decimal
}
