// Package queries contains read operations for retrieving system state.
// Queries bypass the aggregates and read the tables directly with raw SQL,
// returning read models shaped for one use case each.
//
// Read models expose the effective order status: a stored non-terminal
// status whose delivery date has passed reads as Delayed even if no command
// re-derived it yet.
package queries
