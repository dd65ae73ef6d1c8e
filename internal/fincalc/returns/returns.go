package returns

import (
	"math"

	"FinPlanSaas/internal/fincalc/numeric"
)

// Defaults for the iterative IRR solver.
const (
	DefaultIRRMaxIterations = 1000
	DefaultIRRTolerance     = 1e-7
	irrInitialGuess         = 0.10
)

// NPV discounts a cash-flow series at the given rate (fraction, not percent).
// Index 0 is undiscounted, so an up-front outflow belongs at flows[0].
func NPV(rate float64, flows []float64) float64 {
	total := 0.0
	for i, f := range flows {
		total += f / math.Pow(1+rate, float64(i))
	}
	return total
}

// npvDerivative is dNPV/dRate for the Newton step.
func npvDerivative(rate float64, flows []float64) float64 {
	total := 0.0
	for i, f := range flows {
		if i == 0 {
			continue
		}
		fi := float64(i)
		total += -fi * f / math.Pow(1+rate, fi+1)
	}
	return total
}

// IRR solves for the rate where NPV is zero using Newton-Raphson from a 10%
// guess. It reports false on a zero derivative or when maxIterations pass
// without |NPV| dropping under tolerance; divergence is a normal outcome for
// series with no sign change, not an error.
func IRR(flows []float64, maxIterations int, tolerance float64) (float64, bool) {
	if maxIterations <= 0 {
		maxIterations = DefaultIRRMaxIterations
	}
	if tolerance <= 0 {
		tolerance = DefaultIRRTolerance
	}
	rate := irrInitialGuess
	for i := 0; i < maxIterations; i++ {
		value := NPV(rate, flows)
		if math.Abs(value) < tolerance {
			return rate, true
		}
		derivative := npvDerivative(rate, flows)
		if derivative == 0 {
			return 0, false
		}
		rate -= value / derivative
	}
	return 0, false
}

// PaybackPeriod is the first period whose cumulative inflow covers the
// initial investment, false when the series never recovers it.
func PaybackPeriod(initialInvestment float64, flows []float64) (int, bool) {
	cumulative := 0.0
	for i, f := range flows {
		cumulative += f
		if cumulative >= initialInvestment {
			return i + 1, true
		}
	}
	return 0, false
}

// ROI is net profit over cost, as a percent.
func ROI(netProfit, cost float64) (float64, bool) {
	if cost == 0 {
		return 0, false
	}
	return netProfit / cost * 100, true
}

// ROA is net income over total assets, as a percent.
func ROA(netIncome, totalAssets float64) (float64, bool) {
	if totalAssets == 0 {
		return 0, false
	}
	return netIncome / totalAssets * 100, true
}

// ROE is net income over shareholder equity, as a percent.
func ROE(netIncome, equity float64) (float64, bool) {
	if equity == 0 {
		return 0, false
	}
	return netIncome / equity * 100, true
}

// ProfitabilityIndex is the present value of future flows per unit of initial
// investment. flows holds the future periods only (period 1 onward).
func ProfitabilityIndex(rate float64, flows []float64, initialInvestment float64) (float64, bool) {
	if initialInvestment == 0 {
		return 0, false
	}
	pv := 0.0
	for i, f := range flows {
		pv += f / math.Pow(1+rate, float64(i+1))
	}
	return pv / initialInvestment, true
}

// CompoundInterest grows principal at the annual percent rate compounded
// compoundsPerYear times per year for the given whole years.
func CompoundInterest(principal, annualRatePercent float64, years, compoundsPerYear int) float64 {
	if compoundsPerYear <= 0 || years < 0 {
		return principal
	}
	periodicRate := annualRatePercent / 100 / float64(compoundsPerYear)
	return principal * numeric.CompoundFactor(periodicRate, compoundsPerYear*years)
}
