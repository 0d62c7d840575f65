// Package services provides domain services that coordinate several aggregates
// in one business operation.
//
// The package includes:
//   - StockLedger: all-or-nothing reservation of a bill of material's
//     requirements, plus consumption and release against per-order reservations
//   - SummarizeProgress: folds an order's work orders into order.Progress
package services
