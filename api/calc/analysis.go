package calc

import (
	"net/http"

	"FinPlanSaas/api"
	"FinPlanSaas/internal/fincalc/cashflow"
	"FinPlanSaas/internal/fincalc/forecast"
	"FinPlanSaas/internal/fincalc/numeric"
	"FinPlanSaas/internal/validation"
)

// Handler: POST /calc/variance
// Body: {"actual":1100, "budgeted":1000, "periods_elapsed":4}
func VarianceHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Actual         float64 `json:"actual"`
		Budgeted       float64 `json:"budgeted"`
		PeriodsElapsed int     `json:"periods_elapsed"`
	}
	if !decode(w, r, &req) {
		return
	}
	if err := validation.All(
		validation.NonNegativeAmount("budgeted", req.Budgeted),
		validation.NonNegativeCount("periods_elapsed", req.PeriodsElapsed),
	); err != nil {
		api.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeResult(w, map[string]interface{}{
		"variance":         numeric.RoundCents(cashflow.Variance(req.Actual, req.Budgeted)),
		"variance_percent": optRound2(cashflow.VariancePercent(req.Actual, req.Budgeted)),
		"utilization_rate": optRound2(cashflow.UtilizationRate(req.Actual, req.Budgeted)),
		"remaining_budget": numeric.RoundCents(cashflow.RemainingBudget(req.Budgeted, req.Actual)),
		"burn_rate":        numeric.RoundCents(cashflow.BurnRate(req.Actual, req.PeriodsElapsed)),
	})
}

// optRound2 adapts an optional metric straight from an engine call.
func optRound2(v float64, ok bool) *float64 {
	return optRound(v, ok, 2)
}

// Handler: POST /calc/cash-flow
// Body: {"inflows":[...], "outflows":[...], "cash_balance":5000, "daily_expenses":250}
func CashFlowHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Inflows            []float64 `json:"inflows"`
		Outflows           []float64 `json:"outflows"`
		CashBalance        float64   `json:"cash_balance"`
		DailyExpenses      float64   `json:"daily_expenses"`
		CapitalExpenditure float64   `json:"capital_expenditure"`
	}
	if !decode(w, r, &req) {
		return
	}
	if len(req.Inflows) != len(req.Outflows) {
		api.RespondWithError(w, http.StatusBadRequest, "inflows and outflows must be the same length")
		return
	}

	net := make([]float64, len(req.Inflows))
	for i := range req.Inflows {
		net[i] = cashflow.NetCashFlow(req.Inflows[i], req.Outflows[i])
	}
	cumulative := cashflow.CumulativeCashFlow(net)
	operating := 0.0
	if len(cumulative) > 0 {
		operating = cumulative[len(cumulative)-1]
	}
	for i := range cumulative {
		net[i] = numeric.RoundCents(net[i])
		cumulative[i] = numeric.RoundCents(cumulative[i])
	}

	writeResult(w, map[string]interface{}{
		"net":                  net,
		"cumulative":           cumulative,
		"free_cash_flow":       numeric.RoundCents(cashflow.FreeCashFlow(operating, req.CapitalExpenditure)),
		"days_of_cash_on_hand": optRound2(cashflow.DaysOfCashOnHand(req.CashBalance, req.DailyExpenses)),
	})
}

// Handler: POST /calc/categories
// Body: {"categories":[{"name":"travel","budgeted":1000,"actual":1210}, ...]}
func CategoriesHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Categories []cashflow.CategorySpending `json:"categories"`
	}
	if !decode(w, r, &req) {
		return
	}
	if len(req.Categories) == 0 {
		api.RespondWithError(w, http.StatusBadRequest, "categories must not be empty")
		return
	}
	writeResult(w, cashflow.ClassifyAll(req.Categories))
}

// Handler: POST /calc/forecast/linear
func LinearForecastHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Series       []float64 `json:"series"`
		PeriodsAhead int       `json:"periods_ahead"`
	}
	if !decode(w, r, &req) {
		return
	}
	if err := validation.PositiveCount("periods_ahead", req.PeriodsAhead); err != nil {
		api.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	projection := forecast.Linear(req.Series, req.PeriodsAhead)
	for i := range projection {
		projection[i] = numeric.RoundCents(projection[i])
	}
	writeResult(w, map[string]interface{}{"projection": projection})
}

// Handler: POST /calc/forecast/moving-average
func MovingAverageHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Series     []float64 `json:"series"`
		WindowSize int       `json:"window_size"`
	}
	if !decode(w, r, &req) {
		return
	}
	if err := validation.PositiveCount("window_size", req.WindowSize); err != nil {
		api.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeResult(w, map[string]interface{}{
		"forecast": numeric.RoundCents(forecast.MovingAverage(req.Series, req.WindowSize)),
	})
}

// Handler: POST /calc/forecast/smoothing
func SmoothingHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Series       []float64 `json:"series"`
		Alpha        float64   `json:"alpha"`
		PeriodsAhead int       `json:"periods_ahead"`
	}
	if !decode(w, r, &req) {
		return
	}
	if err := validation.All(
		validation.Fraction("alpha", req.Alpha),
		validation.PositiveCount("periods_ahead", req.PeriodsAhead),
	); err != nil {
		api.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	smoothed := forecast.Smooth(req.Series, req.Alpha)
	projection := forecast.SmoothedForecast(req.Series, req.Alpha, req.PeriodsAhead)
	for i := range smoothed {
		smoothed[i] = numeric.RoundCents(smoothed[i])
	}
	for i := range projection {
		projection[i] = numeric.RoundCents(projection[i])
	}
	writeResult(w, map[string]interface{}{
		"smoothed":   smoothed,
		"projection": projection,
	})
}

// Handler: POST /calc/forecast/trend
func TrendHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Series []float64 `json:"series"`
	}
	if !decode(w, r, &req) {
		return
	}
	writeResult(w, map[string]interface{}{
		"trend": forecast.IdentifyTrend(req.Series),
	})
}
