package savings

import (
	"FinPlanSaas/internal/fincalc/numeric"
)

// maxGoalMonths caps the goal search at 100 years.
const maxGoalMonths = 1200

// GoalMonths iterates month by month, compounding at the annual rate and
// adding the contribution, until the target is reached. False when the goal
// is not reachable inside the cap.
func GoalMonths(target, current, monthlyContribution, annualRatePercent float64) (int, bool) {
	if current >= target {
		return 0, true
	}
	monthlyRate := annualRatePercent / 100 / 12
	balance := current
	for m := 1; m <= maxGoalMonths; m++ {
		balance += balance*monthlyRate + monthlyContribution
		if balance >= target {
			return m, true
		}
	}
	return 0, false
}

// Projection returns the month-end balance series for the given horizon.
func Projection(current, monthlyContribution, annualRatePercent float64, months int) []float64 {
	if months <= 0 {
		return nil
	}
	monthlyRate := annualRatePercent / 100 / 12
	out := make([]float64, months)
	balance := current
	for m := 0; m < months; m++ {
		balance += balance*monthlyRate + monthlyContribution
		out[m] = numeric.RoundCents(balance)
	}
	return out
}

// RequiredMonthlySavings solves the annuity future-value identity for the
// contribution that reaches target in the given months:
//
//	target = current*(1+i)^n + c*((1+i)^n - 1)/i
//
// A zero rate degenerates to straight division. Returns 0 when the current
// balance alone already grows past the target.
func RequiredMonthlySavings(target, current, annualRatePercent float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	monthlyRate := annualRatePercent / 100 / 12
	if monthlyRate == 0 {
		return numeric.RoundCents(numeric.ClampMin((target-current)/float64(months), 0))
	}
	growth := numeric.CompoundFactor(monthlyRate, months)
	required := (target - current*growth) * monthlyRate / (growth - 1)
	return numeric.RoundCents(numeric.ClampMin(required, 0))
}
