// Package stock models the stock ledger: stock items with their on-hand and
// reserved counters, per-order reservations, and the movement history every
// counter change leaves behind.
//
// Invariants held by Item at all times:
//   - 0 <= onHand
//   - 0 <= reserved <= onHand
//
// Counters only change through Reserve, Release, Consume and Replenish.
package stock
