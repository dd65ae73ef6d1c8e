package loans

import (
	"FinPlanSaas/internal/fincalc/amort"
	"FinPlanSaas/internal/fincalc/numeric"
)

// CarLoanRequest describes a vehicle purchase to be financed. Sales tax is
// charged on the price net of trade-in; fees are rolled into the amount
// financed along with the tax.
type CarLoanRequest struct {
	VehiclePrice      float64 `json:"vehicle_price"`
	DownPayment       float64 `json:"down_payment"`
	TradeInValue      float64 `json:"trade_in_value"`
	SalesTaxPercent   float64 `json:"sales_tax_percent"`
	Fees              float64 `json:"fees"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TermMonths        int     `json:"term_months"`
}

// CarLoanResult is the financed amount and its monthly amortization summary.
type CarLoanResult struct {
	AmountFinanced float64       `json:"amount_financed"`
	SalesTax       float64       `json:"sales_tax"`
	MonthlyPayment float64       `json:"monthly_payment"`
	TotalInterest  float64       `json:"total_interest"`
	TotalCost      float64       `json:"total_cost"`
	Schedule       []amort.Entry `json:"schedule"`
}

// CarLoan rolls tax and fees into the financed amount and amortizes monthly.
func CarLoan(req CarLoanRequest) CarLoanResult {
	taxable := numeric.ClampMin(req.VehiclePrice-req.TradeInValue, 0)
	salesTax := taxable * req.SalesTaxPercent / 100
	financed := numeric.ClampMin(taxable+salesTax+req.Fees-req.DownPayment, 0)

	payment := amort.PaymentFor(financed, req.AnnualRatePercent, req.TermMonths, 12)
	schedule := amort.Schedule(financed, req.AnnualRatePercent, req.TermMonths, 12, 0)
	totalInterest := amort.TotalInterest(schedule)

	return CarLoanResult{
		AmountFinanced: numeric.RoundCents(financed),
		SalesTax:       numeric.RoundCents(salesTax),
		MonthlyPayment: numeric.RoundCents(payment),
		TotalInterest:  numeric.RoundCents(totalInterest),
		TotalCost:      numeric.RoundCents(req.DownPayment + financed + totalInterest),
		Schedule:       schedule,
	}
}
