package calc

import (
	"net/http"

	"FinPlanSaas/api"
	"FinPlanSaas/internal/fincalc/estimate"
	"FinPlanSaas/internal/fincalc/numeric"
	"FinPlanSaas/internal/fincalc/project"
	"FinPlanSaas/internal/validation"
)

// Handler: POST /calc/project/estimate
// Body: {"optimistic":8, "most_likely":10, "pessimistic":18, "confidence_percent":95}
func EstimateHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		estimate.ThreePoint
		ConfidencePercent int `json:"confidence_percent"`
	}
	if !decode(w, r, &req) {
		return
	}
	if req.Optimistic > req.MostLikely || req.MostLikely > req.Pessimistic {
		api.RespondWithError(w, http.StatusBadRequest, "estimates must satisfy optimistic <= most_likely <= pessimistic")
		return
	}
	low, high := req.ConfidenceInterval(req.ConfidencePercent)
	writeResult(w, map[string]interface{}{
		"expected":        numeric.RoundTo(req.Expected(), 2),
		"std_dev":         numeric.RoundTo(req.StdDev(), 4),
		"confidence_low":  numeric.RoundTo(low, 2),
		"confidence_high": numeric.RoundTo(high, 2),
	})
}

// Handler: POST /calc/project/evm
func EVMHandler(w http.ResponseWriter, r *http.Request) {
	var req estimate.EVMSnapshot
	if !decode(w, r, &req) {
		return
	}
	if err := validation.All(
		validation.NonNegativeAmount("planned_value", req.PlannedValue),
		validation.NonNegativeAmount("earned_value", req.EarnedValue),
		validation.NonNegativeAmount("actual_cost", req.ActualCost),
		validation.NonNegativeAmount("budget_at_completion", req.BudgetAtCompletion),
	); err != nil {
		api.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeResult(w, estimate.Metrics(req))
}

// Handler: POST /calc/project/analytics
// Aggregates progress, cost and resource effort over a project snapshot.
func ProjectAnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		project.Project
		MonthsElapsed int `json:"months_elapsed"`
	}
	if !decode(w, r, &req) {
		return
	}
	if err := validation.NonNegativeCount("months_elapsed", req.MonthsElapsed); err != nil {
		api.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeResult(w, map[string]interface{}{
		"overall_progress": numeric.RoundTo(project.OverallProgress(req.Project), 2),
		"phase_progress":   project.PhaseProgress(req.Project),
		"cost":             project.Cost(req.Project, req.MonthsElapsed),
		"resources":        project.Resources(req.Project),
	})
}

// Handler: POST /calc/project/validate
// Returns the full list of structural problems; an empty list means valid.
func ProjectValidateHandler(w http.ResponseWriter, r *http.Request) {
	var req project.Project
	if !decode(w, r, &req) {
		return
	}
	problems := project.Validate(req)
	if problems == nil {
		problems = []string{}
	}
	writeResult(w, map[string]interface{}{
		"valid":    len(problems) == 0,
		"problems": problems,
	})
}
