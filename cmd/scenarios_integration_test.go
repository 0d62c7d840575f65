package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"manufacturing/internal/adapters/out/postgres/outboxrepo"
	"manufacturing/internal/adapters/out/postgres/pgtest"
	"manufacturing/internal/adapters/out/xlsx"
	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/generated/servers"
	"manufacturing/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/stretchr/testify/suite"
)

// ScenariosIntegrationTestSuite drives the whole service over HTTP against
// a real PostgreSQL.
type ScenariosIntegrationTestSuite struct {
	suite.Suite
	pg     *pgtest.Database
	root   *CompositionRoot
	router *echo.Echo
}

func (suite *ScenariosIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg

	cfg := DefaultConfig()
	cfg.DBLockTimeoutMs = 500
	suite.root = NewCompositionRoot(cfg, pg.DB, slog.New(slog.DiscardHandler))

	suite.router, err = suite.root.CreateRouter()
	suite.Require().NoError(err)
}

func (suite *ScenariosIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Reset())
}

func (suite *ScenariosIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.root.Close())
	suite.Require().NoError(suite.pg.Stop(context.Background()))
}

// Scenario A: a placement that cannot reserve every component reserves none.
func (suite *ScenariosIntegrationTestSuite) TestInsufficientStockReservesNothing() {
	screw := suite.createStockItem("Screw A", "component", 10)
	plate := suite.createStockItem("Plate B", "raw", 3)
	widget := suite.createBom("Widget", map[uuid.UUID]int{screw: 2, plate: 1})

	rec := suite.placeOrder(widget, 4, suite.today().AddDate(0, 0, 7))
	suite.requireError(rec, http.StatusConflict, errs.KindConflict)

	var item servers.StockItem
	suite.getJSON("/api/v1/stock-items/"+screw.String(), &item)
	suite.Equal(0, item.Reserved)
	suite.Equal(10, item.Available)

	var orders []servers.OrderSnapshot
	suite.getJSON("/api/v1/orders", &orders)
	suite.Empty(orders)
}

// Scenario B: a work center never holds more active work orders than its
// capacity.
func (suite *ScenariosIntegrationTestSuite) TestCapacityIsFreedWhenWorkOrderFinishes() {
	screw := suite.createStockItem("Screw A", "component", 10)
	widget := suite.createBom("Widget", map[uuid.UUID]int{screw: 1})
	press := suite.createWorkCenter("Press-1", "60", 1)
	orderID := suite.createdID(suite.placeOrder(widget, 2, suite.today().AddDate(0, 0, 7)))

	first := suite.createdID(suite.scheduleWorkOrder(orderID, press, 1))

	rec := suite.scheduleWorkOrder(orderID, press, 1)
	suite.requireError(rec, http.StatusConflict, errs.KindConflict)

	var load servers.WorkCenterLoad
	suite.getJSON("/api/v1/work-centers/"+press.String()+"/load", &load)
	suite.Equal(1, load.Load)

	suite.transition(first, "InProgress")
	suite.transition(first, "Done")

	var o servers.Order
	suite.getJSON("/api/v1/orders/"+orderID.String(), &o)
	suite.Equal(servers.OrderStatus("InProgress"), o.Status, "one of two units produced")

	second := suite.createdID(suite.scheduleWorkOrder(orderID, press, 1))

	suite.getJSON("/api/v1/orders/"+orderID.String(), &o)
	suite.Equal(servers.OrderStatus("InProgress"), o.Status)
	suite.Len(o.WorkOrders, 2)

	var atPress []servers.WorkOrder
	suite.getJSON("/api/v1/work-orders?workCenterId="+press.String(), &atPress)
	suite.Require().Len(atPress, 2)
	for _, wo := range atPress {
		suite.Equal(orderID, wo.OrderId)
	}

	suite.transition(second, "InProgress")
	suite.transition(second, "Done")

	suite.getJSON("/api/v1/orders/"+orderID.String(), &o)
	suite.Equal(servers.OrderStatus("Done"), o.Status)
}

// Scenario C: an order past its delivery date with nothing done is Delayed,
// and refreshing it again changes nothing.
func (suite *ScenariosIntegrationTestSuite) TestOverdueOrderIsDelayed() {
	screw := suite.createStockItem("Screw A", "component", 10)
	widget := suite.createBom("Widget", map[uuid.UUID]int{screw: 1})

	body := servers.NewOrder{
		Customer:   "ACME",
		Product:    "Widget",
		BomId:      widget,
		Quantity:   1,
		PlacedOn:   suite.date(suite.today().AddDate(0, 0, -3)),
		DeliveryOn: *suite.date(suite.today().AddDate(0, 0, -1)),
	}
	orderID := suite.createdID(suite.do(http.MethodPost, "/api/v1/orders", body))

	var o servers.Order
	suite.getJSON("/api/v1/orders/"+orderID.String(), &o)
	suite.Equal(servers.OrderStatus("Delayed"), o.Status, "reads derive the status")

	for range 2 {
		rec := suite.do(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/refresh-status", nil)
		suite.Require().Equal(http.StatusNoContent, rec.Code)
	}

	var dashboard servers.Dashboard
	suite.getJSON("/api/v1/dashboard", &dashboard)
	suite.Equal(servers.Dashboard{Total: 1, Delayed: 1}, dashboard)
}

// Scenario D: a bill of material cannot be deleted while an active order
// uses it.
func (suite *ScenariosIntegrationTestSuite) TestBomInUseUntilOrderDone() {
	screw := suite.createStockItem("Screw A", "component", 10)
	widget := suite.createBom("Widget", map[uuid.UUID]int{screw: 2})
	press := suite.createWorkCenter("Press-1", "45.50", 1)
	orderID := suite.createdID(suite.placeOrder(widget, 1, suite.today().AddDate(0, 0, 7)))

	workOrder := suite.createdID(suite.scheduleWorkOrder(orderID, press, 0))
	suite.transition(workOrder, "InProgress")

	rec := suite.do(http.MethodDelete, "/api/v1/boms/"+widget.String(), nil)
	suite.requireError(rec, http.StatusConflict, errs.KindIntegrity)

	suite.transition(workOrder, "Done")

	var o servers.Order
	suite.getJSON("/api/v1/orders/"+orderID.String(), &o)
	suite.Equal(servers.OrderStatus("Done"), o.Status)
	suite.Equal("Consumed", o.Availability)

	var item servers.StockItem
	suite.getJSON("/api/v1/stock-items/"+screw.String(), &item)
	suite.Equal(8, item.OnHand)
	suite.Equal(0, item.Reserved)

	rec = suite.do(http.MethodDelete, "/api/v1/boms/"+widget.String(), nil)
	suite.Require().Equal(http.StatusNoContent, rec.Code)

	rec = suite.do(http.MethodGet, "/api/v1/boms/"+widget.String(), nil)
	suite.requireError(rec, http.StatusNotFound, errs.KindNotFound)
}

func (suite *ScenariosIntegrationTestSuite) TestCancelReleasesReservations() {
	screw := suite.createStockItem("Screw A", "component", 10)
	widget := suite.createBom("Widget", map[uuid.UUID]int{screw: 2})
	orderID := suite.createdID(suite.placeOrder(widget, 3, suite.today().AddDate(0, 0, 7)))

	var item servers.StockItem
	suite.getJSON("/api/v1/stock-items/"+screw.String(), &item)
	suite.Equal(6, item.Reserved)

	rec := suite.do(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/cancel", nil)
	suite.Require().Equal(http.StatusNoContent, rec.Code)

	suite.getJSON("/api/v1/stock-items/"+screw.String(), &item)
	suite.Equal(0, item.Reserved)
	suite.Equal(10, item.OnHand)

	var movements []servers.StockMovement
	suite.getJSON("/api/v1/stock-items/"+screw.String()+"/movements?limit=10", &movements)
	suite.Require().Len(movements, 2)
	suite.Equal("release", movements[0].Kind)
	suite.Equal("reserve", movements[1].Kind)
}

func (suite *ScenariosIntegrationTestSuite) TestEventsAreRelayedFromOutbox() {
	screw := suite.createStockItem("Screw A", "component", 10)
	widget := suite.createBom("Widget", map[uuid.UUID]int{screw: 1})
	suite.createdID(suite.placeOrder(widget, 1, suite.today().AddDate(0, 0, 7)))

	outbox := outboxrepo.NewGormOutboxRepository(suite.pg.DB)
	pending, err := outbox.ListPending(suite.T().Context(), 10)
	suite.Require().NoError(err)
	suite.Require().NotEmpty(pending)

	cmd, err := commands.NewRelayOutboxCommand(10)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.root.CreateRelayOutboxCommandHandler().Handle(suite.T().Context(), cmd))

	pending, err = outbox.ListPending(suite.T().Context(), 10)
	suite.Require().NoError(err)
	suite.Empty(pending)
}

func (suite *ScenariosIntegrationTestSuite) TestExportOrders() {
	screw := suite.createStockItem("Screw A", "component", 10)
	widget := suite.createBom("Widget", map[uuid.UUID]int{screw: 1})
	suite.createdID(suite.placeOrder(widget, 1, suite.today().AddDate(0, 0, 7)))

	rec := suite.do(http.MethodGet, "/api/v1/orders/export", nil)

	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.Equal(xlsx.ContentType, rec.Header().Get(echo.HeaderContentType))
	suite.Contains(rec.Header().Get(echo.HeaderContentDisposition), xlsx.OrdersFileName)
	suite.NotEmpty(rec.Body.Bytes())
}

func (suite *ScenariosIntegrationTestSuite) today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

func (suite *ScenariosIntegrationTestSuite) date(t time.Time) *openapi_types.Date {
	return &openapi_types.Date{Time: t}
}

func (suite *ScenariosIntegrationTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var payload bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&payload).Encode(body))
	}

	req := httptest.NewRequest(method, path, &payload)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	return rec
}

func (suite *ScenariosIntegrationTestSuite) getJSON(path string, dst any) {
	rec := suite.do(http.MethodGet, path, nil)
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), dst))
}

func (suite *ScenariosIntegrationTestSuite) createdID(rec *httptest.ResponseRecorder) uuid.UUID {
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var created servers.Created
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	return created.Id
}

func (suite *ScenariosIntegrationTestSuite) requireError(rec *httptest.ResponseRecorder, code int, kind errs.Kind) {
	suite.Require().Equal(code, rec.Code, rec.Body.String())
	var body servers.Error
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	suite.Equal(string(kind), body.Kind)
}

func (suite *ScenariosIntegrationTestSuite) createStockItem(name, kind string, onHand int) uuid.UUID {
	return suite.createdID(suite.do(http.MethodPost, "/api/v1/stock-items",
		servers.NewStockItem{Name: name, Kind: kind, OnHand: onHand}))
}

func (suite *ScenariosIntegrationTestSuite) createBom(name string, perUnit map[uuid.UUID]int) uuid.UUID {
	body := servers.NewBom{Name: name}
	for id, n := range perUnit {
		body.Components = append(body.Components, servers.ComponentLine{StockItemId: id, PerUnit: n})
	}
	return suite.createdID(suite.do(http.MethodPost, "/api/v1/boms", body))
}

func (suite *ScenariosIntegrationTestSuite) createWorkCenter(name, costPerHour string, capacity int) uuid.UUID {
	return suite.createdID(suite.do(http.MethodPost, "/api/v1/work-centers",
		servers.NewWorkCenter{Name: name, CostPerHour: costPerHour, Capacity: capacity}))
}

func (suite *ScenariosIntegrationTestSuite) placeOrder(bomID uuid.UUID, qty int, deliveryOn time.Time) *httptest.ResponseRecorder {
	return suite.do(http.MethodPost, "/api/v1/orders", servers.NewOrder{
		Customer:   "ACME",
		Product:    "Widget",
		BomId:      bomID,
		Quantity:   qty,
		DeliveryOn: openapi_types.Date{Time: deliveryOn},
	})
}

func (suite *ScenariosIntegrationTestSuite) scheduleWorkOrder(orderID, centerID uuid.UUID, qty int) *httptest.ResponseRecorder {
	body := servers.NewWorkOrder{WorkCenterId: centerID, OperatorId: uuid.New()}
	if qty > 0 {
		body.Quantity = &qty
	}
	return suite.do(http.MethodPost, fmt.Sprintf("/api/v1/orders/%s/work-orders", orderID), body)
}

func (suite *ScenariosIntegrationTestSuite) transition(workOrderID uuid.UUID, status string) {
	rec := suite.do(http.MethodPost, fmt.Sprintf("/api/v1/work-orders/%s/transitions", workOrderID),
		servers.Transition{Status: servers.WorkOrderStatus(status)})
	suite.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())
}

func TestScenariosIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(ScenariosIntegrationTestSuite))
}
