package services_test

import (
	"testing"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"
	"manufacturing/internal/core/domain/model/workorder"
	"manufacturing/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeProgress(t *testing.T) {
	orderID := kernel.NewUUID()
	newWO := func(qty int, statuses ...workorder.Status) *workorder.WorkOrder {
		wo, err := workorder.NewWorkOrder(kernel.NewUUID(), orderID, kernel.NewUUID(), kernel.NewUUID(), qty, "")
		require.NoError(t, err)
		for _, s := range statuses {
			_, err = wo.TransitionTo(s, at)
			require.NoError(t, err)
		}
		return wo
	}

	p := services.SummarizeProgress([]*workorder.WorkOrder{
		newWO(1),
		newWO(2, workorder.InProgress),
		newWO(3, workorder.InProgress, workorder.Blocked),
		newWO(4, workorder.InProgress, workorder.Done),
	})

	assert.Equal(t, order.Progress{Total: 4, Started: 3, Done: 1, Scheduled: 10}, p)
	assert.Equal(t, order.Progress{}, services.SummarizeProgress(nil))
}
