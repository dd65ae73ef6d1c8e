package calc

import (
	"net/http"

	"FinPlanSaas/api"
	"FinPlanSaas/internal/fincalc/numeric"
	"FinPlanSaas/internal/fincalc/returns"
	"FinPlanSaas/internal/validation"
)

// Handler: POST /calc/npv
// Body: {"rate_percent":10, "flows":[-1000, 400, 400, 400]}
func NPVHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RatePercent float64   `json:"rate_percent"`
		Flows       []float64 `json:"flows"`
	}
	if !decode(w, r, &req) {
		return
	}
	if len(req.Flows) == 0 {
		api.RespondWithError(w, http.StatusBadRequest, "flows must not be empty")
		return
	}
	writeResult(w, map[string]interface{}{
		"npv": numeric.RoundCents(returns.NPV(req.RatePercent/100, req.Flows)),
	})
}

// Handler: POST /calc/irr
// Body: {"flows":[-1000, 400, 400, 400], "max_iterations":1000, "tolerance":1e-7}
func IRRHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Flows         []float64 `json:"flows"`
		MaxIterations int       `json:"max_iterations"`
		Tolerance     float64   `json:"tolerance"`
	}
	if !decode(w, r, &req) {
		return
	}
	if len(req.Flows) == 0 {
		api.RespondWithError(w, http.StatusBadRequest, "flows must not be empty")
		return
	}
	rate, ok := returns.IRR(req.Flows, req.MaxIterations, req.Tolerance)
	writeResult(w, map[string]interface{}{
		"irr_percent": optRound(rate*100, ok, 4),
		"converged":   ok,
	})
}

// Handler: POST /calc/payback
// Body: {"initial_investment":1000, "flows":[400, 400, 400]}
func PaybackHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		InitialInvestment float64   `json:"initial_investment"`
		Flows             []float64 `json:"flows"`
	}
	if !decode(w, r, &req) {
		return
	}
	if err := validation.PositiveAmount("initial_investment", req.InitialInvestment); err != nil {
		api.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	period, ok := returns.PaybackPeriod(req.InitialInvestment, req.Flows)
	result := map[string]interface{}{"recovered": ok}
	if ok {
		result["payback_period"] = period
	}
	writeResult(w, result)
}

// Handler: POST /calc/roi
// Computes whichever ratios the body carries denominators for.
func ROIHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		NetProfit   float64 `json:"net_profit"`
		Cost        float64 `json:"cost"`
		NetIncome   float64 `json:"net_income"`
		TotalAssets float64 `json:"total_assets"`
		Equity      float64 `json:"equity"`
	}
	if !decode(w, r, &req) {
		return
	}
	writeResult(w, map[string]interface{}{
		"roi_percent": optRound2(returns.ROI(req.NetProfit, req.Cost)),
		"roa_percent": optRound2(returns.ROA(req.NetIncome, req.TotalAssets)),
		"roe_percent": optRound2(returns.ROE(req.NetIncome, req.Equity)),
	})
}

// Handler: POST /calc/profitability-index
// Body: {"rate_percent":10, "initial_investment":1000, "flows":[400, 400, 400]}
func ProfitabilityIndexHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RatePercent       float64   `json:"rate_percent"`
		InitialInvestment float64   `json:"initial_investment"`
		Flows             []float64 `json:"flows"`
	}
	if !decode(w, r, &req) {
		return
	}
	if err := validation.PositiveAmount("initial_investment", req.InitialInvestment); err != nil {
		api.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	index, ok := returns.ProfitabilityIndex(req.RatePercent/100, req.Flows, req.InitialInvestment)
	writeResult(w, map[string]interface{}{
		"profitability_index": optRound(index, ok, 4),
	})
}

// Handler: POST /calc/compound-interest
func CompoundInterestHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Principal         float64 `json:"principal"`
		AnnualRatePercent float64 `json:"annual_rate_percent"`
		Years             int     `json:"years"`
		CompoundsPerYear  int     `json:"compounds_per_year"`
	}
	if !decode(w, r, &req) {
		return
	}
	if err := validation.All(
		validation.PositiveAmount("principal", req.Principal),
		validation.RatePercent("annual_rate_percent", req.AnnualRatePercent),
		validation.NonNegativeCount("years", req.Years),
		validation.PositiveCount("compounds_per_year", req.CompoundsPerYear),
	); err != nil {
		api.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	futureValue := returns.CompoundInterest(req.Principal, req.AnnualRatePercent, req.Years, req.CompoundsPerYear)
	writeResult(w, map[string]interface{}{
		"future_value":    numeric.RoundCents(futureValue),
		"interest_earned": numeric.RoundCents(futureValue - req.Principal),
	})
}
