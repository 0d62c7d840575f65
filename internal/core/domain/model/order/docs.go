// Package order provides the manufacturing order aggregate: a customer's
// request for a quantity of a product built from one bill of material.
//
// The package includes:
//   - Order: the aggregate root holding identity, dates, status and availability
//   - Status: the lifecycle derived from the order's work orders and delivery date
//   - Availability: what happened to the stock reserved for the order
//   - Progress: the summary of work orders the status is derived from
//   - Event: facts recorded by the aggregate for publication after commit
//
// Status derivation, in order of precedence:
//   - Cancelled stays Cancelled
//   - Done when at least one work order exists and all are Done
//   - Delayed when the delivery date is before today
//   - InProgress when any work order has left Planned
//   - Draft otherwise
package order
