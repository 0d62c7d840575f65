package workcenter_test

import (
	"testing"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/workcenter"
	"manufacturing/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkCenter(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		cost     decimal.Decimal
		wantErr  error
	}{
		{"valid", 2, decimal.NewFromInt(40), nil},
		{"free of charge", 1, decimal.Zero, nil},
		{"zero capacity", 0, decimal.NewFromInt(40), workcenter.ErrInvalidCapacity},
		{"negative cost", 1, decimal.NewFromInt(-1), workcenter.ErrInvalidCost},
		{"sub-cent cost", 1, decimal.RequireFromString("0.005"), workcenter.ErrInvalidCost},
		{"cost too large", 1, decimal.New(1, 10), workcenter.ErrInvalidCost},
		{"capacity too large", kernel.MaxQuantity + 1, decimal.NewFromInt(40), workcenter.ErrInvalidCapacity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wc, err := workcenter.NewWorkCenter(kernel.NewUUID(), "Press-1", tt.cost, tt.capacity)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.capacity, wc.Capacity())
			assert.True(t, wc.Downtime().IsZero())
		})
	}
}

func TestWorkCenter_Admit(t *testing.T) {
	wc, err := workcenter.NewWorkCenter(kernel.NewUUID(), "Press-1", decimal.NewFromInt(40), 1)
	require.NoError(t, err)

	require.NoError(t, wc.Admit(0))

	err = wc.Admit(1)
	require.ErrorIs(t, err, workcenter.ErrCapacityExceeded)
	require.ErrorIs(t, err, errs.ErrConflict)
}

func TestWorkCenter_RecordDowntime(t *testing.T) {
	wc, err := workcenter.NewWorkCenter(kernel.NewUUID(), "Lathe", decimal.NewFromInt(25), 3)
	require.NoError(t, err)

	require.NoError(t, wc.RecordDowntime(decimal.RequireFromString("1.5")))
	require.NoError(t, wc.RecordDowntime(decimal.NewFromInt(2)))
	assert.True(t, decimal.RequireFromString("3.5").Equal(wc.Downtime()))

	require.ErrorIs(t, wc.RecordDowntime(decimal.Zero), workcenter.ErrInvalidDowntime)
	require.ErrorIs(t, wc.RecordDowntime(decimal.RequireFromString("0.005")), workcenter.ErrInvalidDowntime)
	require.NoError(t, wc.RecordDowntime(decimal.RequireFromString("0.250")), "trailing zeros are whole cents")
	assert.True(t, decimal.RequireFromString("3.75").Equal(wc.Downtime()))
}

func TestWorkCenter_LaborCost(t *testing.T) {
	wc, err := workcenter.NewWorkCenter(kernel.NewUUID(), "Lathe", decimal.RequireFromString("30.00"), 1)
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(45).Equal(wc.LaborCost(90*time.Minute)))
	assert.True(t, wc.LaborCost(0).IsZero())
}
