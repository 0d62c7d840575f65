package postgres

import (
	"manufacturing/internal/adapters/out/postgres/bomrepo"
	"manufacturing/internal/adapters/out/postgres/orderrepo"
	"manufacturing/internal/adapters/out/postgres/outboxrepo"
	"manufacturing/internal/adapters/out/postgres/reservationrepo"
	"manufacturing/internal/adapters/out/postgres/stockrepo"
	"manufacturing/internal/adapters/out/postgres/workcenterrepo"
	"manufacturing/internal/adapters/out/postgres/workorderrepo"

	"gorm.io/gorm"
)

// Models lists every table of the service in dependency order.
func Models() []any {
	return []any{
		&stockrepo.StockItemDTO{},
		&stockrepo.StockMovementDTO{},
		&bomrepo.BomDTO{},
		&bomrepo.ComponentDTO{},
		&workcenterrepo.WorkCenterDTO{},
		&orderrepo.OrderDTO{},
		&workorderrepo.WorkOrderDTO{},
		&reservationrepo.ReservationDTO{},
		&outboxrepo.OutboxMessageDTO{},
	}
}

// Migrate creates or updates the schema, including foreign keys and checks.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// TruncateAll empties every table. Tests use it between cases.
func TruncateAll(db *gorm.DB) error {
	return db.Exec("TRUNCATE TABLE outbox, reservations, work_orders, orders, work_centers, " +
		"bom_components, boms, stock_movements, stock_items").Error
}
