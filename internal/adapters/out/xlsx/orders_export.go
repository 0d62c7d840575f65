// Package xlsx renders read models as spreadsheets.
package xlsx

import (
	"fmt"
	"io"

	"manufacturing/internal/core/application/usecases/queries"

	"github.com/xuri/excelize/v2"
)

const (
	ContentType      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	OrdersFileName   = "orders.xlsx"
	ordersSheet      = "Orders"
	defaultSheet     = "Sheet1"
	columnWidth      = 20
	headerFillColour = "#D3D3D3"
)

var orderHeaders = []string{"ID", "Product", "Status", "Delivery Date"}

// WriteOrders writes the order snapshot as a one-sheet workbook to w.
func WriteOrders(w io.Writer, orders []queries.OrderSnapshotResponse) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(ordersSheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{headerFillColour}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	for i, header := range orderHeaders {
		cell, cellErr := excelize.CoordinatesToCellName(i+1, 1)
		if cellErr != nil {
			return cellErr
		}
		if err = f.SetCellValue(ordersSheet, cell, header); err != nil {
			return err
		}
		if err = f.SetCellStyle(ordersSheet, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	for i, o := range orders {
		row := []string{o.ID.String(), o.Product, o.Status.String(), o.DeliveryOn.String()}
		for col, value := range row {
			cell, cellErr := excelize.CoordinatesToCellName(col+1, i+2)
			if cellErr != nil {
				return cellErr
			}
			if err = f.SetCellValue(ordersSheet, cell, value); err != nil {
				return err
			}
		}
	}

	last, err := excelize.ColumnNumberToName(len(orderHeaders))
	if err != nil {
		return err
	}
	if err = f.SetColWidth(ordersSheet, "A", last, columnWidth); err != nil {
		return err
	}

	if err = f.DeleteSheet(defaultSheet); err != nil {
		return err
	}

	return f.Write(w)
}
