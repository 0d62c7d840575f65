// Package kernel holds the value objects shared by every aggregate of the
// manufacturing domain: identifiers and calendar dates.
//
// Both are immutable; their zero values are invalid and are rejected by Validate.
package kernel
