package numeric

import (
	"math"

	"github.com/shopspring/decimal"
)

// RoundCents rounds a money amount to 2 decimal places (half up).
func RoundCents(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// RoundTo rounds v to the given number of decimal places (half up).
func RoundTo(v float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}

// CompoundFactor returns (1 + periodicRate)^periods computed over decimals,
// so long schedules don't pick up binary-float drift in the growth factor.
func CompoundFactor(periodicRate float64, periods int) float64 {
	if periods == 0 {
		return 1
	}
	base := decimal.NewFromFloat(1 + periodicRate)
	f, _ := base.Pow(decimal.NewFromInt(int64(periods))).Float64()
	return f
}

// DiscountFactor returns (1 + rate)^-periods.
func DiscountFactor(rate float64, periods int) float64 {
	cf := CompoundFactor(rate, periods)
	if cf == 0 {
		return math.Inf(1)
	}
	return 1 / cf
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampMin bounds v from below.
func ClampMin(v, lo float64) float64 {
	if v < lo {
		return lo
	}
	return v
}

// ApproxZero reports whether a money balance is paid off for scheduling purposes.
func ApproxZero(v float64) bool {
	return math.Abs(v) < 0.005
}
