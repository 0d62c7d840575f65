// Package servers holds the HTTP contract of the service: the embedded
// OpenAPI document plus the Go types, server interface and echo routing that
// follow from it.
package servers

import (
	_ "embed"
	"fmt"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /api/v1/stock-items)
	ListStockItems(ctx echo.Context) error
	// (POST /api/v1/stock-items)
	CreateStockItem(ctx echo.Context) error
	// (GET /api/v1/stock-items/{id})
	GetStockItem(ctx echo.Context, id openapi_types.UUID) error
	// (DELETE /api/v1/stock-items/{id})
	DeleteStockItem(ctx echo.Context, id openapi_types.UUID) error
	// (POST /api/v1/stock-items/{id}/replenish)
	ReplenishStockItem(ctx echo.Context, id openapi_types.UUID) error
	// (GET /api/v1/stock-items/{id}/movements)
	ListStockMovements(ctx echo.Context, id openapi_types.UUID, params ListStockMovementsParams) error

	// (POST /api/v1/boms)
	CreateBom(ctx echo.Context) error
	// (GET /api/v1/boms/{id})
	GetBom(ctx echo.Context, id openapi_types.UUID, params GetBomParams) error
	// (DELETE /api/v1/boms/{id})
	DeleteBom(ctx echo.Context, id openapi_types.UUID) error
	// (POST /api/v1/boms/{id}/revisions)
	ReviseBom(ctx echo.Context, id openapi_types.UUID) error

	// (GET /api/v1/work-centers)
	ListWorkCenters(ctx echo.Context) error
	// (POST /api/v1/work-centers)
	CreateWorkCenter(ctx echo.Context) error
	// (DELETE /api/v1/work-centers/{id})
	DeleteWorkCenter(ctx echo.Context, id openapi_types.UUID) error
	// (GET /api/v1/work-centers/{id}/load)
	GetWorkCenterLoad(ctx echo.Context, id openapi_types.UUID) error
	// (POST /api/v1/work-centers/{id}/downtime)
	RecordDowntime(ctx echo.Context, id openapi_types.UUID) error

	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context) error
	// (POST /api/v1/orders)
	PlaceOrder(ctx echo.Context) error
	// (GET /api/v1/orders/export)
	ExportOrders(ctx echo.Context) error
	// (GET /api/v1/orders/{id})
	GetOrder(ctx echo.Context, id openapi_types.UUID) error
	// (PATCH /api/v1/orders/{id})
	UpdateOrderDetails(ctx echo.Context, id openapi_types.UUID) error
	// (DELETE /api/v1/orders/{id})
	DeleteOrder(ctx echo.Context, id openapi_types.UUID) error
	// (POST /api/v1/orders/{id}/refresh-status)
	RefreshOrderStatus(ctx echo.Context, id openapi_types.UUID) error
	// (POST /api/v1/orders/{id}/cancel)
	CancelOrder(ctx echo.Context, id openapi_types.UUID) error
	// (POST /api/v1/orders/{id}/work-orders)
	ScheduleWorkOrder(ctx echo.Context, id openapi_types.UUID) error

	// (GET /api/v1/work-orders)
	ListWorkOrders(ctx echo.Context, params ListWorkOrdersParams) error
	// (DELETE /api/v1/work-orders/{id})
	CancelWorkOrder(ctx echo.Context, id openapi_types.UUID) error
	// (POST /api/v1/work-orders/{id}/transitions)
	TransitionWorkOrder(ctx echo.Context, id openapi_types.UUID) error

	// (GET /api/v1/dashboard)
	GetDashboard(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindID(ctx echo.Context) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

// withID adapts a handler that takes the id path parameter.
func withID(h func(echo.Context, openapi_types.UUID) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id, err := bindID(ctx)
		if err != nil {
			return err
		}
		return h(ctx, id)
	}
}

// ListStockMovements converts echo context to params.
func (w *ServerInterfaceWrapper) ListStockMovements(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}

	var params ListStockMovementsParams
	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	return w.Handler.ListStockMovements(ctx, id, params)
}

// GetBom converts echo context to params.
func (w *ServerInterfaceWrapper) GetBom(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}

	var params GetBomParams
	err = runtime.BindQueryParameter("form", true, false, "quantity", ctx.QueryParams(), &params.Quantity)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter quantity: %s", err))
	}

	return w.Handler.GetBom(ctx, id, params)
}

// ListWorkOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListWorkOrders(ctx echo.Context) error {
	var params ListWorkOrdersParams
	err := runtime.BindQueryParameter("form", true, false, "workCenterId", ctx.QueryParams(), &params.WorkCenterId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter workCenterId: %s", err))
	}

	return w.Handler.ListWorkOrders(ctx, params)
}

// EchoRouter is the subset of echo.Echo and echo.Group used for registration.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the routes under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	w := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/api/v1/stock-items", si.ListStockItems)
	router.POST(baseURL+"/api/v1/stock-items", si.CreateStockItem)
	router.GET(baseURL+"/api/v1/stock-items/:id", withID(si.GetStockItem))
	router.DELETE(baseURL+"/api/v1/stock-items/:id", withID(si.DeleteStockItem))
	router.POST(baseURL+"/api/v1/stock-items/:id/replenish", withID(si.ReplenishStockItem))
	router.GET(baseURL+"/api/v1/stock-items/:id/movements", w.ListStockMovements)

	router.POST(baseURL+"/api/v1/boms", si.CreateBom)
	router.GET(baseURL+"/api/v1/boms/:id", w.GetBom)
	router.DELETE(baseURL+"/api/v1/boms/:id", withID(si.DeleteBom))
	router.POST(baseURL+"/api/v1/boms/:id/revisions", withID(si.ReviseBom))

	router.GET(baseURL+"/api/v1/work-centers", si.ListWorkCenters)
	router.POST(baseURL+"/api/v1/work-centers", si.CreateWorkCenter)
	router.DELETE(baseURL+"/api/v1/work-centers/:id", withID(si.DeleteWorkCenter))
	router.GET(baseURL+"/api/v1/work-centers/:id/load", withID(si.GetWorkCenterLoad))
	router.POST(baseURL+"/api/v1/work-centers/:id/downtime", withID(si.RecordDowntime))

	router.GET(baseURL+"/api/v1/orders", si.ListOrders)
	router.POST(baseURL+"/api/v1/orders", si.PlaceOrder)
	router.GET(baseURL+"/api/v1/orders/export", si.ExportOrders)
	router.GET(baseURL+"/api/v1/orders/:id", withID(si.GetOrder))
	router.PATCH(baseURL+"/api/v1/orders/:id", withID(si.UpdateOrderDetails))
	router.DELETE(baseURL+"/api/v1/orders/:id", withID(si.DeleteOrder))
	router.POST(baseURL+"/api/v1/orders/:id/refresh-status", withID(si.RefreshOrderStatus))
	router.POST(baseURL+"/api/v1/orders/:id/cancel", withID(si.CancelOrder))
	router.POST(baseURL+"/api/v1/orders/:id/work-orders", withID(si.ScheduleWorkOrder))

	router.GET(baseURL+"/api/v1/work-orders", w.ListWorkOrders)
	router.DELETE(baseURL+"/api/v1/work-orders/:id", withID(si.CancelWorkOrder))
	router.POST(baseURL+"/api/v1/work-orders/:id/transitions", withID(si.TransitionWorkOrder))

	router.GET(baseURL+"/api/v1/dashboard", si.GetDashboard)
}

//go:embed openapi.yaml
var openAPIDocument []byte

var (
	swaggerOnce sync.Once
	swaggerSpec *openapi3.T
	swaggerErr  error
)

// GetSwagger returns the parsed OpenAPI document. Callers get their own copy
// and may modify it.
func GetSwagger() (*openapi3.T, error) {
	swaggerOnce.Do(func() {
		swaggerSpec, swaggerErr = openapi3.NewLoader().LoadFromData(openAPIDocument)
	})
	if swaggerErr != nil {
		return nil, fmt.Errorf("error loading OpenAPI document: %w", swaggerErr)
	}
	return openapi3.NewLoader().LoadFromData(openAPIDocument)
}

// RawSpec returns the embedded OpenAPI document as YAML.
func RawSpec() []byte {
	return openAPIDocument
}
