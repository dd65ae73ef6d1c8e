package calc

import (
	"net/http"

	"FinPlanSaas/api"
	"FinPlanSaas/internal/fincalc/debt"
	"FinPlanSaas/internal/validation"
)

func decodeDebtPlan(w http.ResponseWriter, r *http.Request) ([]debt.Item, float64, bool) {
	var req struct {
		Debts        []debt.Item `json:"debts"`
		ExtraPayment float64     `json:"extra_payment"`
	}
	if !decode(w, r, &req) {
		return nil, 0, false
	}
	if len(req.Debts) == 0 {
		api.RespondWithError(w, http.StatusBadRequest, "debts must not be empty")
		return nil, 0, false
	}
	for _, d := range req.Debts {
		if err := validation.All(
			validation.PositiveAmount(d.Name+" balance", d.Balance),
			validation.RatePercent(d.Name+" annual_rate_percent", d.AnnualRatePercent),
			validation.NonNegativeAmount(d.Name+" minimum_payment", d.MinimumPayment),
		); err != nil {
			api.RespondWithError(w, http.StatusBadRequest, err.Error())
			return nil, 0, false
		}
	}
	if err := validation.NonNegativeAmount("extra_payment", req.ExtraPayment); err != nil {
		api.RespondWithError(w, http.StatusBadRequest, err.Error())
		return nil, 0, false
	}
	return req.Debts, req.ExtraPayment, true
}

// Handler: POST /calc/debt/avalanche
// Body: {"debts":[{"name":"card","balance":5000,"annual_rate_percent":22,"minimum_payment":150}], "extra_payment":100}
func AvalancheHandler(w http.ResponseWriter, r *http.Request) {
	debts, extra, ok := decodeDebtPlan(w, r)
	if !ok {
		return
	}
	writeResult(w, map[string]interface{}{
		"strategy": "avalanche",
		"payoffs":  debt.Avalanche(debts, extra),
	})
}

// Handler: POST /calc/debt/snowball
func SnowballHandler(w http.ResponseWriter, r *http.Request) {
	debts, extra, ok := decodeDebtPlan(w, r)
	if !ok {
		return
	}
	writeResult(w, map[string]interface{}{
		"strategy": "snowball",
		"payoffs":  debt.Snowball(debts, extra),
	})
}
