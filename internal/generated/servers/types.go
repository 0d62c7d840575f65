package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Created defines model for Created.
type Created struct {
	Id openapi_types.UUID `json:"id"`
}

// NewStockItem defines model for NewStockItem.
type NewStockItem struct {
	Kind   string `json:"kind"`
	Name   string `json:"name"`
	OnHand int    `json:"onHand"`
}

// StockItem defines model for StockItem.
type StockItem struct {
	Available int                `json:"available"`
	Id        openapi_types.UUID `json:"id"`
	Kind      string             `json:"kind"`
	Name      string             `json:"name"`
	OnHand    int                `json:"onHand"`
	Reserved  int                `json:"reserved"`
}

// Replenishment defines model for Replenishment.
type Replenishment struct {
	Quantity int `json:"quantity"`
}

// StockMovement defines model for StockMovement.
type StockMovement struct {
	Id         openapi_types.UUID  `json:"id"`
	Kind       string              `json:"kind"`
	OccurredAt time.Time           `json:"occurredAt"`
	OrderId    *openapi_types.UUID `json:"orderId,omitempty"`
	Quantity   int                 `json:"quantity"`
}

// ComponentLine defines model for ComponentLine.
type ComponentLine struct {
	PerUnit     int                `json:"perUnit"`
	StockItemId openapi_types.UUID `json:"stockItemId"`
}

// NewBom defines model for NewBom.
type NewBom struct {
	Components []ComponentLine `json:"components"`
	Name       string          `json:"name"`
}

// BomRevision defines model for BomRevision.
type BomRevision struct {
	Components []ComponentLine `json:"components"`
}

// Bom defines model for Bom.
type Bom struct {
	Components []BomComponent      `json:"components"`
	Id         openapi_types.UUID  `json:"id"`
	Name       string              `json:"name"`
	PreviousId *openapi_types.UUID `json:"previousId,omitempty"`
	Quantity   int                 `json:"quantity"`
	Version    int                 `json:"version"`
}

// BomComponent defines model for BomComponent.
type BomComponent struct {
	Available     int                `json:"available"`
	PerUnit       int                `json:"perUnit"`
	Required      int                `json:"required"`
	StockItemId   openapi_types.UUID `json:"stockItemId"`
	StockItemName string             `json:"stockItemName"`
}

// Decimal defines model for Decimal.
type Decimal = string

// NewWorkCenter defines model for NewWorkCenter.
type NewWorkCenter struct {
	Capacity    int     `json:"capacity"`
	CostPerHour Decimal `json:"costPerHour"`
	Name        string  `json:"name"`
}

// WorkCenter defines model for WorkCenter.
type WorkCenter struct {
	Capacity      int                `json:"capacity"`
	CostPerHour   Decimal            `json:"costPerHour"`
	DowntimeHours Decimal            `json:"downtimeHours"`
	Id            openapi_types.UUID `json:"id"`
	Load          int                `json:"load"`
	Name          string             `json:"name"`
}

// WorkCenterLoad defines model for WorkCenterLoad.
type WorkCenterLoad struct {
	Capacity     int                `json:"capacity"`
	Load         int                `json:"load"`
	WorkCenterId openapi_types.UUID `json:"workCenterId"`
}

// Downtime defines model for Downtime.
type Downtime struct {
	Hours Decimal `json:"hours"`
}

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// WorkOrderStatus defines model for WorkOrderStatus.
type WorkOrderStatus string

// NewOrder defines model for NewOrder.
type NewOrder struct {
	BomId      openapi_types.UUID  `json:"bomId"`
	Customer   string              `json:"customer"`
	DeliveryOn openapi_types.Date  `json:"deliveryOn"`
	PlacedOn   *openapi_types.Date `json:"placedOn,omitempty"`
	Product    string              `json:"product"`
	Quantity   int                 `json:"quantity"`
}

// OrderDetails defines model for OrderDetails.
type OrderDetails struct {
	Customer   string             `json:"customer"`
	DeliveryOn openapi_types.Date `json:"deliveryOn"`
}

// OrderSnapshot defines model for OrderSnapshot.
type OrderSnapshot struct {
	DeliveryOn openapi_types.Date `json:"deliveryOn"`
	Id         openapi_types.UUID `json:"id"`
	Product    string             `json:"product"`
	Status     OrderStatus        `json:"status"`
}

// Order defines model for Order.
type Order struct {
	Availability string             `json:"availability"`
	BomId        openapi_types.UUID `json:"bomId"`
	Customer     string             `json:"customer"`
	DeliveryOn   openapi_types.Date `json:"deliveryOn"`
	Id           openapi_types.UUID `json:"id"`
	LaborCost    Decimal            `json:"laborCost"`
	PlacedOn     openapi_types.Date `json:"placedOn"`
	Product      string             `json:"product"`
	Quantity     int                `json:"quantity"`
	Status       OrderStatus        `json:"status"`
	WorkOrders   []WorkOrder        `json:"workOrders"`
}

// WorkOrder defines model for WorkOrder.
type WorkOrder struct {
	Comments       string             `json:"comments"`
	FinishedAt     *time.Time         `json:"finishedAt,omitempty"`
	Id             openapi_types.UUID `json:"id"`
	LaborCost      Decimal            `json:"laborCost"`
	OperatorId     openapi_types.UUID `json:"operatorId"`
	OrderId        openapi_types.UUID `json:"orderId"`
	Quantity       int                `json:"quantity"`
	StartedAt      *time.Time         `json:"startedAt,omitempty"`
	Status         WorkOrderStatus    `json:"status"`
	WorkCenterId   openapi_types.UUID `json:"workCenterId"`
	WorkCenterName string             `json:"workCenterName"`
}

// NewWorkOrder defines model for NewWorkOrder.
type NewWorkOrder struct {
	Comments     *string            `json:"comments,omitempty"`
	OperatorId   openapi_types.UUID `json:"operatorId"`
	Quantity     *int               `json:"quantity,omitempty"`
	WorkCenterId openapi_types.UUID `json:"workCenterId"`
}

// Transition defines model for Transition.
type Transition struct {
	Status WorkOrderStatus `json:"status"`
}

// Dashboard defines model for Dashboard.
type Dashboard struct {
	Cancelled  int `json:"cancelled"`
	Delayed    int `json:"delayed"`
	Done       int `json:"done"`
	Draft      int `json:"draft"`
	InProgress int `json:"inProgress"`
	Total      int `json:"total"`
}

// ListStockMovementsParams defines parameters for ListStockMovements.
type ListStockMovementsParams struct {
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

// ListWorkOrdersParams defines parameters for ListWorkOrders.
type ListWorkOrdersParams struct {
	WorkCenterId *openapi_types.UUID `form:"workCenterId,omitempty" json:"workCenterId,omitempty"`
}

// GetBomParams defines parameters for GetBom.
type GetBomParams struct {
	Quantity *int `form:"quantity,omitempty" json:"quantity,omitempty"`
}
