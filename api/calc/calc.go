package calc

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"FinPlanSaas/api/constants"
	"FinPlanSaas/internal/fincalc/numeric"
)

// StartCalcService starts the calculator HTTP listener. Every endpoint is a
// pure computation over the request body; nothing is persisted.
func StartCalcService(port int) {
	router := mux.NewRouter()

	// Loans
	router.HandleFunc("/calc/loan-payment", LoanPaymentHandler).Methods("POST")
	router.HandleFunc("/calc/mortgage", MortgageHandler).Methods("POST")
	router.HandleFunc("/calc/mortgage/acceleration", AccelerationHandler).Methods("POST")
	router.HandleFunc("/calc/car-loan", CarLoanHandler).Methods("POST")
	router.HandleFunc("/calc/student-loan", StudentLoanHandler).Methods("POST")
	router.HandleFunc("/calc/student-loan/income-based", IncomeBasedHandler).Methods("POST")
	router.HandleFunc("/calc/student-loan/forgiveness", ForgivenessHandler).Methods("POST")
	router.HandleFunc("/calc/refinance", RefinanceHandler).Methods("POST")
	router.HandleFunc("/calc/dti", DebtToIncomeHandler).Methods("POST")

	// Budget variance and cash flow
	router.HandleFunc("/calc/variance", VarianceHandler).Methods("POST")
	router.HandleFunc("/calc/cash-flow", CashFlowHandler).Methods("POST")
	router.HandleFunc("/calc/categories", CategoriesHandler).Methods("POST")

	// Forecasting
	router.HandleFunc("/calc/forecast/linear", LinearForecastHandler).Methods("POST")
	router.HandleFunc("/calc/forecast/moving-average", MovingAverageHandler).Methods("POST")
	router.HandleFunc("/calc/forecast/smoothing", SmoothingHandler).Methods("POST")
	router.HandleFunc("/calc/forecast/trend", TrendHandler).Methods("POST")

	// Return metrics
	router.HandleFunc("/calc/npv", NPVHandler).Methods("POST")
	router.HandleFunc("/calc/irr", IRRHandler).Methods("POST")
	router.HandleFunc("/calc/payback", PaybackHandler).Methods("POST")
	router.HandleFunc("/calc/roi", ROIHandler).Methods("POST")
	router.HandleFunc("/calc/profitability-index", ProfitabilityIndexHandler).Methods("POST")
	router.HandleFunc("/calc/compound-interest", CompoundInterestHandler).Methods("POST")

	// Debt strategies
	router.HandleFunc("/calc/debt/avalanche", AvalancheHandler).Methods("POST")
	router.HandleFunc("/calc/debt/snowball", SnowballHandler).Methods("POST")

	// Savings
	router.HandleFunc("/calc/savings/goal", SavingsGoalHandler).Methods("POST")
	router.HandleFunc("/calc/savings/projection", SavingsProjectionHandler).Methods("POST")
	router.HandleFunc("/calc/savings/required", RequiredSavingsHandler).Methods("POST")

	// Project estimation and analytics
	router.HandleFunc("/calc/project/estimate", EstimateHandler).Methods("POST")
	router.HandleFunc("/calc/project/evm", EVMHandler).Methods("POST")
	router.HandleFunc("/calc/project/analytics", ProjectAnalyticsHandler).Methods("POST")
	router.HandleFunc("/calc/project/validate", ProjectValidateHandler).Methods("POST")

	router.HandleFunc("/calc/hello", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Hello from Calculator Service"))
	})

	log.Printf("Calculator Service started on :%d", port)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", port), router); err != nil {
		log.Fatalf("Calculator Service failed: %v", err)
	}
}

// decode parses the JSON body into dst, writing the error response itself.
func decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, constants.ErrInvalidRequestBody, http.StatusBadRequest)
		return false
	}
	return true
}

// writeResult sends the standard success envelope with a calculation id.
func writeResult(w http.ResponseWriter, result interface{}) {
	resp := map[string]interface{}{
		constants.ValueSuccess:     true,
		constants.KeyCalculationID: uuid.New().String(),
		"result":                   result,
	}
	w.Header().Set(constants.ContentTypeText, constants.ContentTypeJSON)
	json.NewEncoder(w).Encode(resp)
}

// optCents turns an optional money/percent value into a nullable, rounded field.
func optCents(v float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	rounded := numeric.RoundCents(v)
	return &rounded
}

// optRound is optCents at an arbitrary precision.
func optRound(v float64, ok bool, places int32) *float64 {
	if !ok {
		return nil
	}
	rounded := numeric.RoundTo(v, places)
	return &rounded
}
