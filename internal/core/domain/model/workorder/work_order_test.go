package workorder_test

import (
	"testing"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/workorder"
	"manufacturing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

func newWorkOrder(t *testing.T) *workorder.WorkOrder {
	t.Helper()
	wo, err := workorder.NewWorkOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 4, " first batch ")
	require.NoError(t, err)
	return wo
}

func TestNewWorkOrder(t *testing.T) {
	wo := newWorkOrder(t)

	assert.Equal(t, workorder.Planned, wo.Status())
	assert.Equal(t, 4, wo.Quantity())
	assert.Equal(t, "first batch", wo.Comments())
	assert.Nil(t, wo.StartedAt())
	assert.True(t, wo.OccupiesCapacity())

	_, err := workorder.NewWorkOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{}, 0, "")
	require.ErrorIs(t, err, workorder.ErrQuantityIsInvalid)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestWorkOrder_TransitionTable(t *testing.T) {
	all := []workorder.Status{workorder.Planned, workorder.InProgress, workorder.Blocked, workorder.Done}
	allowed := map[[2]workorder.Status]bool{
		{workorder.Planned, workorder.InProgress}: true,
		{workorder.InProgress, workorder.Done}:    true,
		{workorder.InProgress, workorder.Blocked}: true,
		{workorder.Blocked, workorder.InProgress}: true,
	}

	for _, from := range all {
		for _, to := range all {
			t.Run(from.String()+"->"+to.String(), func(t *testing.T) {
				assert.Equal(t, allowed[[2]workorder.Status{from, to}], from.CanTransitionTo(to))
			})
		}
	}
}

func TestWorkOrder_Lifecycle(t *testing.T) {
	wo := newWorkOrder(t)

	changed, err := wo.TransitionTo(workorder.InProgress, start)
	require.NoError(t, err)
	assert.True(t, changed)
	require.NotNil(t, wo.StartedAt())
	assert.Equal(t, start, *wo.StartedAt())
	assert.Nil(t, wo.FinishedAt())

	_, err = wo.TransitionTo(workorder.Blocked, start.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, wo.OccupiesCapacity())
	assert.True(t, wo.ReentersCapacity(workorder.InProgress))

	_, err = wo.TransitionTo(workorder.InProgress, start.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, start, *wo.StartedAt(), "resuming keeps the original start")

	_, err = wo.TransitionTo(workorder.Done, start.Add(3*time.Hour))
	require.NoError(t, err)
	require.NotNil(t, wo.FinishedAt())
	assert.Equal(t, 3*time.Hour, wo.Duration())

	changed, err = wo.TransitionTo(workorder.Done, start.Add(4*time.Hour))
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, start.Add(3*time.Hour), *wo.FinishedAt())
}

func TestWorkOrder_RejectedTransitions(t *testing.T) {
	wo := newWorkOrder(t)

	_, err := wo.TransitionTo(workorder.Done, start)
	require.ErrorIs(t, err, workorder.ErrInvalidTransition)
	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, workorder.Planned, wo.Status())

	_, err = wo.TransitionTo(workorder.Blocked, start)
	require.ErrorIs(t, err, workorder.ErrInvalidTransition)
}

func TestWorkOrder_CanCancel(t *testing.T) {
	wo := newWorkOrder(t)
	require.NoError(t, wo.CanCancel())

	_, err := wo.TransitionTo(workorder.InProgress, start)
	require.NoError(t, err)
	require.ErrorIs(t, wo.CanCancel(), workorder.ErrInvalidTransition)
}

func TestRestoreWorkOrder_TimestampsFollowStatus(t *testing.T) {
	ids := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()}

	_, err := workorder.RestoreWorkOrder(ids[0], ids[1], ids[2], ids[3], 1, workorder.Done, &start, nil, "")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = workorder.RestoreWorkOrder(ids[0], ids[1], ids[2], ids[3], 1, workorder.Planned, &start, nil, "")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	end := start.Add(time.Hour)
	wo, err := workorder.RestoreWorkOrder(ids[0], ids[1], ids[2], ids[3], 1, workorder.Done, &start, &end, "")
	require.NoError(t, err)
	assert.Equal(t, time.Hour, wo.Duration())
}

func TestParseStatus(t *testing.T) {
	s, err := workorder.ParseStatus("InProgress")
	require.NoError(t, err)
	assert.Equal(t, workorder.InProgress, s)

	_, err = workorder.ParseStatus("Paused")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
