package services

import (
	"manufacturing/internal/core/domain/model/order"
	"manufacturing/internal/core/domain/model/workorder"
)

// SummarizeProgress counts an order's work orders by how far they got.
func SummarizeProgress(wos []*workorder.WorkOrder) order.Progress {
	var p order.Progress
	for _, wo := range wos {
		p.Total++
		p.Scheduled += wo.Quantity()
		if wo.Status() != workorder.Planned {
			p.Started++
		}
		if wo.Status() == workorder.Done {
			p.Done++
		}
	}
	return p
}
