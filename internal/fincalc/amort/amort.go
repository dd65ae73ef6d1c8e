package amort

import (
	"FinPlanSaas/internal/fincalc/numeric"
)

// Frequency selects how often loan payments are made.
type Frequency string

const (
	FrequencyMonthly  Frequency = "monthly"
	FrequencyBiWeekly Frequency = "biweekly"
	FrequencyWeekly   Frequency = "weekly"
)

// PeriodsPerYear returns the payment count for one year of the frequency.
// Unknown frequencies fall back to monthly.
func (f Frequency) PeriodsPerYear() int {
	switch f {
	case FrequencyBiWeekly:
		return 26
	case FrequencyWeekly:
		return 52
	default:
		return 12
	}
}

// Entry is one period of an amortization schedule. Money fields are kept
// unrounded; callers round at the presentation boundary.
type Entry struct {
	Period              int     `json:"period"`
	Payment             float64 `json:"payment"`
	Principal           float64 `json:"principal"`
	Interest            float64 `json:"interest"`
	Balance             float64 `json:"balance"`
	CumulativeInterest  float64 `json:"cumulative_interest"`
	CumulativePrincipal float64 `json:"cumulative_principal"`
}

// PaymentFor computes the level payment for a fully amortizing loan.
// A zero periodic rate degenerates to straight-line repayment.
func PaymentFor(principal, annualRatePercent float64, periods, periodsPerYear int) float64 {
	if periods <= 0 {
		return 0
	}
	periodicRate := annualRatePercent / 100 / float64(periodsPerYear)
	if periodicRate == 0 {
		return principal / float64(periods)
	}
	discount := numeric.DiscountFactor(periodicRate, periods)
	return principal * periodicRate / (1 - discount)
}

// Schedule builds the period-by-period amortization of a loan, applying any
// flat extra payment against principal each period. The loop is capped at 2x
// the nominal term so pathological rate/extra combinations still terminate.
func Schedule(principal, annualRatePercent float64, periods, periodsPerYear int, extraPayment float64) []Entry {
	if principal <= 0 || periods <= 0 {
		return nil
	}
	periodicRate := annualRatePercent / 100 / float64(periodsPerYear)
	payment := PaymentFor(principal, annualRatePercent, periods, periodsPerYear)

	entries := make([]Entry, 0, periods)
	balance := principal
	cumInterest := 0.0
	cumPrincipal := 0.0
	maxPeriods := periods * 2

	for p := 1; p <= maxPeriods && !numeric.ApproxZero(balance); p++ {
		interest := balance * periodicRate
		principalPaid := payment + extraPayment - interest
		if principalPaid < 0 {
			principalPaid = 0
		}
		if principalPaid > balance {
			principalPaid = balance
		}
		balance -= principalPaid
		cumInterest += interest
		cumPrincipal += principalPaid

		entries = append(entries, Entry{
			Period:              p,
			Payment:             principalPaid + interest,
			Principal:           principalPaid,
			Interest:            interest,
			Balance:             balance,
			CumulativeInterest:  cumInterest,
			CumulativePrincipal: cumPrincipal,
		})
	}
	return entries
}

// TotalInterest sums the interest portion of a schedule.
func TotalInterest(entries []Entry) float64 {
	total := 0.0
	for _, e := range entries {
		total += e.Interest
	}
	return total
}

// TotalPaid sums every payment in a schedule.
func TotalPaid(entries []Entry) float64 {
	total := 0.0
	for _, e := range entries {
		total += e.Payment
	}
	return total
}
