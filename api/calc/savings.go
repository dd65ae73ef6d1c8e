package calc

import (
	"net/http"

	"FinPlanSaas/api"
	"FinPlanSaas/internal/fincalc/savings"
	"FinPlanSaas/internal/validation"
)

// Handler: POST /calc/savings/goal
// Body: {"target":50000, "current":5000, "monthly_contribution":400, "annual_rate_percent":4}
func SavingsGoalHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Target              float64 `json:"target"`
		Current             float64 `json:"current"`
		MonthlyContribution float64 `json:"monthly_contribution"`
		AnnualRatePercent   float64 `json:"annual_rate_percent"`
	}
	if !decode(w, r, &req) {
		return
	}
	if err := validation.All(
		validation.PositiveAmount("target", req.Target),
		validation.NonNegativeAmount("current", req.Current),
		validation.NonNegativeAmount("monthly_contribution", req.MonthlyContribution),
		validation.RatePercent("annual_rate_percent", req.AnnualRatePercent),
	); err != nil {
		api.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	months, ok := savings.GoalMonths(req.Target, req.Current, req.MonthlyContribution, req.AnnualRatePercent)
	result := map[string]interface{}{"reachable": ok}
	if ok {
		result["months"] = months
	}
	writeResult(w, result)
}

// Handler: POST /calc/savings/projection
func SavingsProjectionHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Current             float64 `json:"current"`
		MonthlyContribution float64 `json:"monthly_contribution"`
		AnnualRatePercent   float64 `json:"annual_rate_percent"`
		Months              int     `json:"months"`
	}
	if !decode(w, r, &req) {
		return
	}
	if err := validation.All(
		validation.NonNegativeAmount("current", req.Current),
		validation.NonNegativeAmount("monthly_contribution", req.MonthlyContribution),
		validation.RatePercent("annual_rate_percent", req.AnnualRatePercent),
		validation.PositiveCount("months", req.Months),
	); err != nil {
		api.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeResult(w, map[string]interface{}{
		"balances": savings.Projection(req.Current, req.MonthlyContribution, req.AnnualRatePercent, req.Months),
	})
}

// Handler: POST /calc/savings/required
func RequiredSavingsHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Target            float64 `json:"target"`
		Current           float64 `json:"current"`
		AnnualRatePercent float64 `json:"annual_rate_percent"`
		Months            int     `json:"months"`
	}
	if !decode(w, r, &req) {
		return
	}
	if err := validation.All(
		validation.PositiveAmount("target", req.Target),
		validation.NonNegativeAmount("current", req.Current),
		validation.RatePercent("annual_rate_percent", req.AnnualRatePercent),
		validation.PositiveCount("months", req.Months),
	); err != nil {
		api.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeResult(w, map[string]interface{}{
		"monthly_contribution": savings.RequiredMonthlySavings(req.Target, req.Current, req.AnnualRatePercent, req.Months),
	})
}
