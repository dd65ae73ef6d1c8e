package loans

import (
	"FinPlanSaas/internal/fincalc/amort"
	"FinPlanSaas/internal/fincalc/numeric"
)

// MortgageRequest describes a home loan. ExtraPayment is a flat amount added
// to every scheduled payment.
type MortgageRequest struct {
	Principal         float64         `json:"principal"`
	AnnualRatePercent float64         `json:"annual_rate_percent"`
	TermYears         int             `json:"term_years"`
	Frequency         amort.Frequency `json:"frequency"`
	ExtraPayment      float64         `json:"extra_payment"`
}

// MortgageResult is the computed loan summary plus its full schedule.
type MortgageResult struct {
	Payment       float64       `json:"payment"`
	PeriodsTotal  int           `json:"periods_total"`
	PeriodsActual int           `json:"periods_actual"`
	TotalInterest float64       `json:"total_interest"`
	TotalPaid     float64       `json:"total_paid"`
	Schedule      []amort.Entry `json:"schedule"`
}

// Mortgage amortizes a home loan at the requested payment frequency.
func Mortgage(req MortgageRequest) MortgageResult {
	periodsPerYear := req.Frequency.PeriodsPerYear()
	periods := req.TermYears * periodsPerYear
	payment := amort.PaymentFor(req.Principal, req.AnnualRatePercent, periods, periodsPerYear)
	schedule := amort.Schedule(req.Principal, req.AnnualRatePercent, periods, periodsPerYear, req.ExtraPayment)
	return MortgageResult{
		Payment:       numeric.RoundCents(payment),
		PeriodsTotal:  periods,
		PeriodsActual: len(schedule),
		TotalInterest: numeric.RoundCents(amort.TotalInterest(schedule)),
		TotalPaid:     numeric.RoundCents(amort.TotalPaid(schedule)),
		Schedule:      schedule,
	}
}

// AccelerationResult compares a mortgage with and without extra payments.
type AccelerationResult struct {
	Baseline      MortgageResult `json:"baseline"`
	Accelerated   MortgageResult `json:"accelerated"`
	PaymentsSaved int            `json:"payments_saved"`
	InterestSaved float64        `json:"interest_saved"`
}

// Acceleration runs the same mortgage twice, with and without the extra
// payment, and reports payments and interest saved by accelerating.
func Acceleration(req MortgageRequest) AccelerationResult {
	baseReq := req
	baseReq.ExtraPayment = 0
	baseline := Mortgage(baseReq)
	accelerated := Mortgage(req)
	return AccelerationResult{
		Baseline:      baseline,
		Accelerated:   accelerated,
		PaymentsSaved: baseline.PeriodsActual - accelerated.PeriodsActual,
		InterestSaved: numeric.RoundCents(baseline.TotalInterest - accelerated.TotalInterest),
	}
}
