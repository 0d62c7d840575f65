package order

// Progress summarizes the work orders of one order.
type Progress struct {
	// Total is the number of work orders.
	Total int
	// Started counts work orders that have left Planned.
	Started int
	// Done counts finished work orders.
	Done int
	// Scheduled is the product quantity covered by work orders.
	Scheduled int
}
