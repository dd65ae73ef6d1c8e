package calc

import (
	"net/http"

	"FinPlanSaas/api"
	"FinPlanSaas/internal/fincalc/amort"
	"FinPlanSaas/internal/fincalc/loans"
	"FinPlanSaas/internal/fincalc/numeric"
	"FinPlanSaas/internal/validation"
)

// Handler: POST /calc/loan-payment
// Body: {"principal":300000, "annual_rate_percent":4.5, "term_periods":360, "frequency":"monthly", "extra_payment":0, "include_schedule":false}
func LoanPaymentHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Principal         float64 `json:"principal"`
		AnnualRatePercent float64 `json:"annual_rate_percent"`
		TermPeriods       int     `json:"term_periods"`
		Frequency         string  `json:"frequency"`
		ExtraPayment      float64 `json:"extra_payment"`
		IncludeSchedule   bool    `json:"include_schedule"`
	}
	if !decode(w, r, &req) {
		return
	}
	if err := validation.All(
		validation.PositiveAmount("principal", req.Principal),
		validation.RatePercent("annual_rate_percent", req.AnnualRatePercent),
		validation.PositiveCount("term_periods", req.TermPeriods),
		validation.NonNegativeAmount("extra_payment", req.ExtraPayment),
	); err != nil {
		api.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	perYear := amort.Frequency(req.Frequency).PeriodsPerYear()
	payment := amort.PaymentFor(req.Principal, req.AnnualRatePercent, req.TermPeriods, perYear)
	schedule := amort.Schedule(req.Principal, req.AnnualRatePercent, req.TermPeriods, perYear, req.ExtraPayment)

	result := map[string]interface{}{
		"payment":        numeric.RoundCents(payment),
		"periods_actual": len(schedule),
		"total_interest": numeric.RoundCents(amort.TotalInterest(schedule)),
		"total_paid":     numeric.RoundCents(amort.TotalPaid(schedule)),
	}
	if req.IncludeSchedule {
		result["schedule"] = roundSchedule(schedule)
	}
	writeResult(w, result)
}

// roundSchedule rounds schedule money fields for presentation.
func roundSchedule(entries []amort.Entry) []amort.Entry {
	out := make([]amort.Entry, len(entries))
	for i, e := range entries {
		out[i] = amort.Entry{
			Period:              e.Period,
			Payment:             numeric.RoundCents(e.Payment),
			Principal:           numeric.RoundCents(e.Principal),
			Interest:            numeric.RoundCents(e.Interest),
			Balance:             numeric.RoundCents(e.Balance),
			CumulativeInterest:  numeric.RoundCents(e.CumulativeInterest),
			CumulativePrincipal: numeric.RoundCents(e.CumulativePrincipal),
		}
	}
	return out
}

// Handler: POST /calc/mortgage
func MortgageHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Principal         float64 `json:"principal"`
		AnnualRatePercent float64 `json:"annual_rate_percent"`
		TermYears         int     `json:"term_years"`
		Frequency         string  `json:"frequency"`
		ExtraPayment      float64 `json:"extra_payment"`
		IncludeSchedule   bool    `json:"include_schedule"`
	}
	if !decode(w, r, &req) {
		return
	}
	if err := validation.All(
		validation.PositiveAmount("principal", req.Principal),
		validation.RatePercent("annual_rate_percent", req.AnnualRatePercent),
		validation.PositiveCount("term_years", req.TermYears),
		validation.NonNegativeAmount("extra_payment", req.ExtraPayment),
	); err != nil {
		api.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := loans.Mortgage(loans.MortgageRequest{
		Principal:         req.Principal,
		AnnualRatePercent: req.AnnualRatePercent,
		TermYears:         req.TermYears,
		Frequency:         amort.Frequency(req.Frequency),
		ExtraPayment:      req.ExtraPayment,
	})
	if !req.IncludeSchedule {
		result.Schedule = nil
	} else {
		result.Schedule = roundSchedule(result.Schedule)
	}
	writeResult(w, result)
}

// Handler: POST /calc/mortgage/acceleration
func AccelerationHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Principal         float64 `json:"principal"`
		AnnualRatePercent float64 `json:"annual_rate_percent"`
		TermYears         int     `json:"term_years"`
		Frequency         string  `json:"frequency"`
		ExtraPayment      float64 `json:"extra_payment"`
	}
	if !decode(w, r, &req) {
		return
	}
	if err := validation.All(
		validation.PositiveAmount("principal", req.Principal),
		validation.RatePercent("annual_rate_percent", req.AnnualRatePercent),
		validation.PositiveCount("term_years", req.TermYears),
		validation.PositiveAmount("extra_payment", req.ExtraPayment),
	); err != nil {
		api.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := loans.Acceleration(loans.MortgageRequest{
		Principal:         req.Principal,
		AnnualRatePercent: req.AnnualRatePercent,
		TermYears:         req.TermYears,
		Frequency:         amort.Frequency(req.Frequency),
		ExtraPayment:      req.ExtraPayment,
	})
	// schedules are large and rarely wanted in the comparison view
	result.Baseline.Schedule = nil
	result.Accelerated.Schedule = nil
	writeResult(w, result)
}

// Handler: POST /calc/car-loan
func CarLoanHandler(w http.ResponseWriter, r *http.Request) {
	var req loans.CarLoanRequest
	if !decode(w, r, &req) {
		return
	}
	if err := validation.All(
		validation.PositiveAmount("vehicle_price", req.VehiclePrice),
		validation.NonNegativeAmount("down_payment", req.DownPayment),
		validation.NonNegativeAmount("trade_in_value", req.TradeInValue),
		validation.RatePercent("sales_tax_percent", req.SalesTaxPercent),
		validation.NonNegativeAmount("fees", req.Fees),
		validation.RatePercent("annual_rate_percent", req.AnnualRatePercent),
		validation.PositiveCount("term_months", req.TermMonths),
	); err != nil {
		api.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	result := loans.CarLoan(req)
	result.Schedule = nil
	writeResult(w, result)
}

// Handler: POST /calc/student-loan
func StudentLoanHandler(w http.ResponseWriter, r *http.Request) {
	var req loans.StudentLoanRequest
	if !decode(w, r, &req) {
		return
	}
	if err := validation.All(
		validation.PositiveAmount("principal", req.Principal),
		validation.RatePercent("annual_rate_percent", req.AnnualRatePercent),
		validation.PositiveCount("term_months", req.TermMonths),
		validation.NonNegativeCount("grace_months", req.GraceMonths),
		validation.NonNegativeCount("deferment_months", req.DefermentMonths),
	); err != nil {
		api.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	result := loans.StudentLoan(req)
	result.Schedule = nil
	writeResult(w, result)
}

// Handler: POST /calc/student-loan/income-based
func IncomeBasedHandler(w http.ResponseWriter, r *http.Request) {
	var req loans.IncomeBasedRequest
	if !decode(w, r, &req) {
		return
	}
	if err := validation.All(
		validation.PositiveAmount("principal", req.Principal),
		validation.RatePercent("annual_rate_percent", req.AnnualRatePercent),
		validation.PositiveCount("term_months", req.TermMonths),
		validation.NonNegativeAmount("annual_income", req.AnnualIncome),
		validation.PositiveCount("family_size", req.FamilySize),
	); err != nil {
		api.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeResult(w, loans.IncomeBased(req))
}

// Handler: POST /calc/student-loan/forgiveness
func ForgivenessHandler(w http.ResponseWriter, r *http.Request) {
	var req loans.ForgivenessRequest
	if !decode(w, r, &req) {
		return
	}
	if err := validation.All(
		validation.PositiveAmount("principal", req.Principal),
		validation.RatePercent("annual_rate_percent", req.AnnualRatePercent),
		validation.PositiveCount("term_months", req.TermMonths),
		validation.NonNegativeAmount("annual_income", req.AnnualIncome),
		validation.PositiveCount("family_size", req.FamilySize),
		validation.PositiveCount("forgiveness_years", req.ForgivenessYears),
	); err != nil {
		api.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeResult(w, loans.Forgiveness(req))
}

// Handler: POST /calc/refinance
func RefinanceHandler(w http.ResponseWriter, r *http.Request) {
	var req loans.RefinanceRequest
	if !decode(w, r, &req) {
		return
	}
	if err := validation.All(
		validation.PositiveAmount("current_balance", req.CurrentBalance),
		validation.RatePercent("current_rate_percent", req.CurrentRatePercent),
		validation.PositiveCount("remaining_term_months", req.RemainingTermMonths),
		validation.RatePercent("proposed_rate_percent", req.ProposedRatePercent),
		validation.PositiveCount("proposed_term_months", req.ProposedTermMonths),
		validation.NonNegativeAmount("closing_costs", req.ClosingCosts),
	); err != nil {
		api.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeResult(w, loans.Refinance(req))
}

// Handler: POST /calc/dti
// Body: {"monthly_debt":2000, "monthly_income":5000}
func DebtToIncomeHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MonthlyDebt   float64 `json:"monthly_debt"`
		MonthlyIncome float64 `json:"monthly_income"`
	}
	if !decode(w, r, &req) {
		return
	}
	if err := validation.All(
		validation.NonNegativeAmount("monthly_debt", req.MonthlyDebt),
		validation.NonNegativeAmount("monthly_income", req.MonthlyIncome),
	); err != nil {
		api.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	dti, ok := loans.DebtToIncome(req.MonthlyDebt, req.MonthlyIncome)
	writeResult(w, map[string]interface{}{
		"dti_percent": optRound(dti, ok, 2),
	})
}
