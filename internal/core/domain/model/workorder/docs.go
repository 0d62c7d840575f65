// Package workorder models the unit of shop-floor work that produces part of
// a manufacturing order at one work center.
//
// Status transitions:
//
//	Planned ──> InProgress ──> Done
//	               │  ^
//	               v  │
//	             Blocked
//
// Done -> Done is accepted as a no-op; every other transition is rejected.
// Planned and InProgress work orders occupy capacity at their work center.
package workorder
