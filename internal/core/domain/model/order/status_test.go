package order_test

import (
	"testing"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"
	"manufacturing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	for _, s := range []order.Status{order.Draft, order.InProgress, order.Done, order.Delayed, order.Cancelled} {
		require.NoError(t, s.Validate(), s.String())
	}
	require.ErrorIs(t, order.Unknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, order.Status(42).Validate(), errs.ErrValueIsInvalid)
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestParseStatus(t *testing.T) {
	s, err := order.ParseStatus("Delayed")
	require.NoError(t, err)
	assert.Equal(t, order.Delayed, s)

	_, err = order.ParseStatus("Unknown")
	require.Error(t, err)
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Done.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Delayed.IsTerminal())
	assert.False(t, order.Draft.IsTerminal())
}

func TestEffectiveStatus(t *testing.T) {
	yesterday := kernel.NewDate(2026, 5, 9)

	assert.Equal(t, order.Delayed, order.EffectiveStatus(order.Draft, yesterday, today))
	assert.Equal(t, order.Delayed, order.EffectiveStatus(order.InProgress, yesterday, today))
	assert.Equal(t, order.Done, order.EffectiveStatus(order.Done, yesterday, today))
	assert.Equal(t, order.Cancelled, order.EffectiveStatus(order.Cancelled, yesterday, today))
	assert.Equal(t, order.Draft, order.EffectiveStatus(order.Draft, today, today))
}

// A past delivery date with nothing done reads as Delayed.
func TestDeriveStatus_PastDeliveryNothingDone(t *testing.T) {
	placed := kernel.NewDate(2026, 4, 1)
	delivery := kernel.NewDate(2026, 4, 20)

	o, err := order.RestoreOrder(kernel.NewUUID(), "ACME", "Widget", kernel.NewUUID(), 2, placed, delivery, order.Draft, order.Reserved)
	require.NoError(t, err)

	o.RefreshStatus(order.Progress{Total: 1}, today, now)

	assert.Equal(t, order.Delayed, o.Status())
}
