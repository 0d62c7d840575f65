package kernel

import "math"

// MaxQuantity is the largest unit count stored for a stock item, an order,
// a work order or a bill of material line.
const MaxQuantity = math.MaxInt32
