// Package bom models bills of material: the stock items, and the per-unit
// quantities of each, needed to manufacture one unit of a product.
//
// A bill of material is immutable once created. Changing the recipe goes
// through Revise, which produces the next version and leaves orders placed
// against the previous one untouched.
package bom
