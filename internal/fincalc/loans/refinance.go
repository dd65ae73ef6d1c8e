package loans

import (
	"math"

	"FinPlanSaas/internal/fincalc/amort"
	"FinPlanSaas/internal/fincalc/numeric"
)

// RefinanceRequest compares staying on the current loan against refinancing
// the balance onto new terms, paying closing costs up front.
type RefinanceRequest struct {
	CurrentBalance      float64 `json:"current_balance"`
	CurrentRatePercent  float64 `json:"current_rate_percent"`
	RemainingTermMonths int     `json:"remaining_term_months"`
	ProposedRatePercent float64 `json:"proposed_rate_percent"`
	ProposedTermMonths  int     `json:"proposed_term_months"`
	ClosingCosts        float64 `json:"closing_costs"`
}

// RefinanceResult summarizes both loans and the break-even point.
type RefinanceResult struct {
	CurrentPayment  float64 `json:"current_payment"`
	ProposedPayment float64 `json:"proposed_payment"`
	MonthlySavings  float64 `json:"monthly_savings"`
	CurrentTotal    float64 `json:"current_total"`
	ProposedTotal   float64 `json:"proposed_total"`
	NetSavings      float64 `json:"net_savings"`
	BreakEvenMonths int     `json:"break_even_months"`
	Worthwhile      bool    `json:"worthwhile"`
}

// Refinance runs both amortizations independently. The refinance is
// worthwhile only when net savings are positive and closing costs are
// recovered before the proposed term ends.
func Refinance(req RefinanceRequest) RefinanceResult {
	currentSchedule := amort.Schedule(req.CurrentBalance, req.CurrentRatePercent, req.RemainingTermMonths, 12, 0)
	proposedSchedule := amort.Schedule(req.CurrentBalance, req.ProposedRatePercent, req.ProposedTermMonths, 12, 0)

	currentPayment := amort.PaymentFor(req.CurrentBalance, req.CurrentRatePercent, req.RemainingTermMonths, 12)
	proposedPayment := amort.PaymentFor(req.CurrentBalance, req.ProposedRatePercent, req.ProposedTermMonths, 12)
	monthlySavings := currentPayment - proposedPayment

	currentTotal := amort.TotalPaid(currentSchedule)
	proposedTotal := amort.TotalPaid(proposedSchedule) + req.ClosingCosts
	netSavings := currentTotal - proposedTotal

	breakEven := 0
	if monthlySavings > 0 {
		breakEven = int(math.Ceil(req.ClosingCosts / monthlySavings))
	}
	worthwhile := netSavings > 0 && monthlySavings > 0 && breakEven < req.ProposedTermMonths

	return RefinanceResult{
		CurrentPayment:  numeric.RoundCents(currentPayment),
		ProposedPayment: numeric.RoundCents(proposedPayment),
		MonthlySavings:  numeric.RoundCents(monthlySavings),
		CurrentTotal:    numeric.RoundCents(currentTotal),
		ProposedTotal:   numeric.RoundCents(proposedTotal),
		NetSavings:      numeric.RoundCents(netSavings),
		BreakEvenMonths: breakEven,
		Worthwhile:      worthwhile,
	}
}

// DebtToIncome is monthly debt service over monthly gross income, as a
// percent. False when there is no income to measure against.
func DebtToIncome(monthlyDebt, monthlyIncome float64) (float64, bool) {
	if monthlyIncome == 0 {
		return 0, false
	}
	return monthlyDebt / monthlyIncome * 100, true
}
