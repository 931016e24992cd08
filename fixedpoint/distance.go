package fixedpoint

import "math"

// Distance is a signed, non-negative-by-convention edge cost.
//
// Distance is backed by int32 rather than int so that overflow budgets
// are explicit and portable: MaxDistance leaves five bits of headroom so
// that every valid Distance can be shifted into a ScaledDistance without
// overflowing int32.
type Distance int32

// MaxDistance and MinDistance bound the values a Distance may legally
// hold. MaxDistance is math.MaxInt32>>5 (headroom for a five-bit left
// shift into ScaledDistance); MinDistance is math.MinInt32 + (1<<5).
const (
	MaxDistance Distance = math.MaxInt32 >> 5
	MinDistance Distance = math.MinInt32 + (1 << 5)
)

// scaleBits is the number of fractional bits carried by ScaledDistance.
const scaleBits = 5

// scaleFactor is 1<<scaleBits, i.e. 32.
const scaleFactor = 1 << scaleBits
