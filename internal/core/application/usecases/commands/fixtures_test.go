package commands_test

import (
	"testing"
	"time"

	"manufacturing/internal/core/domain/model/bom"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"
	"manufacturing/internal/core/domain/model/stock"
	"manufacturing/internal/core/domain/model/workcenter"
	"manufacturing/internal/core/domain/model/workorder"
	"manufacturing/internal/pkg/clock"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	now   = time.Date(2026, 5, 10, 10, 0, 0, 0, time.UTC)
	today = kernel.DateOf(now)
	clk   = clock.Fixed{At: now}
)

func restoreItem(t *testing.T, name string, onHand, reserved int) *stock.Item {
	t.Helper()
	item, err := stock.RestoreItem(kernel.NewUUID(), name, stock.Component, onHand, reserved)
	require.NoError(t, err)
	return item
}

type line struct {
	item    *stock.Item
	perUnit int
}

func newBom(t *testing.T, name string, lines ...line) *bom.BillOfMaterial {
	t.Helper()
	components := make([]bom.Component, 0, len(lines))
	for _, l := range lines {
		c, err := bom.NewComponent(l.item.ID(), l.perUnit)
		require.NoError(t, err)
		components = append(components, c)
	}
	b, err := bom.NewBillOfMaterial(kernel.NewUUID(), name, components)
	require.NoError(t, err)
	return b
}

func restoreOrder(t *testing.T, b *bom.BillOfMaterial, qty int, deliveryOn kernel.Date, status order.Status) *order.Order {
	t.Helper()
	availability := order.Reserved
	if status == order.Cancelled {
		availability = order.Released
	}
	o, err := order.RestoreOrder(kernel.NewUUID(), "ACME", "Widget", b.ID(), qty,
		today.AddDays(-7), deliveryOn, status, availability)
	require.NoError(t, err)
	return o
}

func newCenter(t *testing.T, name string, capacity int) *workcenter.WorkCenter {
	t.Helper()
	wc, err := workcenter.NewWorkCenter(kernel.NewUUID(), name, decimal.NewFromInt(60), capacity)
	require.NoError(t, err)
	return wc
}

func restoreWorkOrder(t *testing.T, o *order.Order, wc *workcenter.WorkCenter, qty int, status workorder.Status) *workorder.WorkOrder {
	t.Helper()
	var startedAt, finishedAt *time.Time
	if status != workorder.Planned {
		s := now.Add(-2 * time.Hour)
		startedAt = &s
	}
	if status == workorder.Done {
		f := now.Add(-time.Hour)
		finishedAt = &f
	}
	wo, err := workorder.RestoreWorkOrder(kernel.NewUUID(), o.ID(), wc.ID(), kernel.NewUUID(),
		qty, status, startedAt, finishedAt, "")
	require.NoError(t, err)
	return wo
}

func restoreReservation(t *testing.T, o *order.Order, item *stock.Item, outstanding, consumed int) *stock.Reservation {
	t.Helper()
	res, err := stock.RestoreReservation(kernel.NewUUID(), o.ID(), item.ID(), outstanding, consumed)
	require.NoError(t, err)
	return res
}
