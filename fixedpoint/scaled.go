package fixedpoint

import "math"

// ScaledDistance represents a Distance left-shifted by scaleBits (Q27.5
// fixed point): five fractional bits on top of a 32-bit signed integer.
// All solver-internal arithmetic (the Lagrangian subgradient loop, the
// 1-tree objective) happens in this type so that the hot path never
// touches floating point.
type ScaledDistance int32

// MinScaled and MaxScaled are the saturated sentinels: the MST and 1-tree
// kernels use MinScaled to force a Fixed edge's selection and MaxScaled
// as the "not yet reached" cost before any candidate edge is seen.
const (
	MinScaled ScaledDistance = math.MinInt32
	MaxScaled ScaledDistance = math.MaxInt32
)

// FromDistance converts d to its scaled representation (d << scaleBits).
// Precondition: d << scaleBits fits in int32, which holds for
// 0 <= d <= MaxDistance but not for negative d near MinDistance (the
// caller's responsibility; real TSPLIB95 distance magnitudes top out at
// a few million, comfortably inside this range after shifting).
func FromDistance(d Distance) ScaledDistance {
	return ScaledDistance(int32(d) << scaleBits)
}

// ToDistance truncates s back to a Distance by an arithmetic right
// shift. Go's >> on a signed integer performs arithmetic (sign-extending)
// shift, so truncation rounds toward negative infinity for negative s —
// this matches the reference semantics of the scaled type (truncating
// conversion, not round-to-zero).
func (s ScaledDistance) ToDistance() Distance {
	return Distance(int32(s) >> scaleBits)
}

// ToDistanceRoundedUp converts s to a Distance rounded toward positive
// infinity: add (1<<scaleBits)-1 before truncating. Used when converting
// a lower bound, where rounding down would make the bound inadmissible
// (a stronger-than-true claim).
func (s ScaledDistance) ToDistanceRoundedUp() Distance {
	return Distance((int32(s) + scaleFactor - 1) >> scaleBits)
}

// RoundUpWideScaled converts a 64-bit scaled accumulator to a Distance,
// rounded toward positive infinity, without narrowing to ScaledDistance
// first. Sums like the Held-Karp 1-tree objective (2*S plus per-edge
// reduced distances, folded over up to n edges) can legitimately exceed
// int32 before the final right-shift brings the result back into
// Distance range; narrowing early would corrupt the bound instead of
// merely rounding it.
func RoundUpWideScaled(x int64) Distance {
	return Distance((x + scaleFactor - 1) >> scaleBits)
}

// Add returns s + t. Plain 32-bit addition; overflow is the caller's
// responsibility per the package-level overflow budget.
func (s ScaledDistance) Add(t ScaledDistance) ScaledDistance { return s + t }

// Sub returns s - t.
func (s ScaledDistance) Sub(t ScaledDistance) ScaledDistance { return s - t }

// MulScalar returns k*s.
func (s ScaledDistance) MulScalar(k int32) ScaledDistance {
	return ScaledDistance(k * int32(s))
}

// DivScalar returns s/k, truncating toward zero (Go's integer division
// semantics). k must be non-zero; callers never divide by a
// caller-supplied zero on the hot path (norm2 == 0 is checked before any
// division in the lower-bound loop).
func (s ScaledDistance) DivScalar(k int32) ScaledDistance {
	return ScaledDistance(int32(s) / k)
}

// SumScaled folds xs from zero, accumulating in int64 and narrowing only
// on return: a sum of many scaled distances (e.g. the n-term node-penalty
// sum in the Held-Karp lower bound) can overflow int32 mid-fold even when
// each term and the true final value do not. DebugChecks, when true,
// panics if the narrowed result does not round-trip through int64,
// surfacing the overflow a release build would otherwise silently wrap.
func SumScaled(xs ...ScaledDistance) ScaledDistance {
	var acc int64
	for _, x := range xs {
		acc += int64(x)
	}
	if DebugChecks {
		if int64(int32(acc)) != acc {
			panic("fixedpoint: SumScaled overflowed int32 on narrowing")
		}
	}
	return ScaledDistance(int32(acc))
}

// DebugChecks enables the narrowing-overflow assertion in SumScaled (the
// only place it is checked): with it on, an overflow panics; with it off,
// the result wraps and callers rely on the documented magnitude budget. Exposed as a package-level toggle rather than a build tag
// so callers (and tests) can flip it without a recompile.
var DebugChecks = false
