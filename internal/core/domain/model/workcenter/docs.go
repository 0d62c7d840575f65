// Package workcenter models the machines or stations where work orders run.
// A work center admits at most Capacity work orders that are Planned or
// InProgress at the same time.
package workcenter
