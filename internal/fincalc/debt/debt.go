package debt

import (
	"sort"

	"FinPlanSaas/internal/fincalc/numeric"
)

// maxPayoffMonths bounds the per-debt simulation (50 years).
const maxPayoffMonths = 600

// Item is one outstanding debt.
type Item struct {
	Name              string  `json:"name"`
	Balance           float64 `json:"balance"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	MinimumPayment    float64 `json:"minimum_payment"`
}

// PayoffResult is the simulated payoff of a single debt.
type PayoffResult struct {
	Name           string  `json:"name"`
	MonthsToPayoff int     `json:"months_to_payoff"`
	InterestPaid   float64 `json:"interest_paid"`
}

// Avalanche orders debts by interest rate descending and simulates each.
func Avalanche(debts []Item, extraPayment float64) []PayoffResult {
	ordered := make([]Item, len(debts))
	copy(ordered, debts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].AnnualRatePercent > ordered[j].AnnualRatePercent
	})
	return simulateAll(ordered, extraPayment)
}

// Snowball orders debts by balance ascending and simulates each.
func Snowball(debts []Item, extraPayment float64) []PayoffResult {
	ordered := make([]Item, len(debts))
	copy(ordered, debts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Balance < ordered[j].Balance
	})
	return simulateAll(ordered, extraPayment)
}

// simulateAll runs every debt through its own payoff simulation with the
// full extra payment. Payments freed up by an earlier payoff are not
// redirected to the remaining debts; each debt is treated in isolation.
func simulateAll(ordered []Item, extraPayment float64) []PayoffResult {
	results := make([]PayoffResult, len(ordered))
	for i, d := range ordered {
		months, interest := simulate(d, extraPayment)
		results[i] = PayoffResult{
			Name:           d.Name,
			MonthsToPayoff: months,
			InterestPaid:   numeric.RoundCents(interest),
		}
	}
	return results
}

// simulate amortizes one debt monthly at minimum + extra until payoff or the
// safety cap, whichever comes first.
func simulate(d Item, extraPayment float64) (months int, interestPaid float64) {
	balance := d.Balance
	monthlyRate := d.AnnualRatePercent / 100 / 12
	payment := d.MinimumPayment + extraPayment

	for months < maxPayoffMonths && !numeric.ApproxZero(balance) {
		interest := balance * monthlyRate
		principal := payment - interest
		if principal <= 0 {
			// payment never outruns interest; report the cap
			return maxPayoffMonths, interestPaid + interest*float64(maxPayoffMonths-months)
		}
		if principal > balance {
			principal = balance
		}
		balance -= principal
		interestPaid += interest
		months++
	}
	return months, interestPaid
}
