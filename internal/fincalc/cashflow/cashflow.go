package cashflow

import "FinPlanSaas/internal/fincalc/numeric"

// Variance is actual spend against budget; positive means over budget.
func Variance(actual, budgeted float64) float64 {
	return actual - budgeted
}

// VariancePercent returns variance as a percent of budget. The bool is false
// when there is no budget baseline to compare against.
func VariancePercent(actual, budgeted float64) (float64, bool) {
	if budgeted == 0 {
		return 0, false
	}
	return (actual - budgeted) / budgeted * 100, true
}

// UtilizationRate is spend as a percent of budget.
func UtilizationRate(spent, budgeted float64) (float64, bool) {
	if budgeted == 0 {
		return 0, false
	}
	return spent / budgeted * 100, true
}

// RemainingBudget may go negative when a budget is overspent.
func RemainingBudget(budgeted, spent float64) float64 {
	return budgeted - spent
}

// BurnRate is average spend per elapsed period, 0 before anything has elapsed.
func BurnRate(totalSpent float64, periodsElapsed int) float64 {
	if periodsElapsed == 0 {
		return 0
	}
	return totalSpent / float64(periodsElapsed)
}

// NetCashFlow for a single period.
func NetCashFlow(inflows, outflows float64) float64 {
	return inflows - outflows
}

// CumulativeCashFlow is the running sum over a net-flow series.
func CumulativeCashFlow(netFlows []float64) []float64 {
	out := make([]float64, len(netFlows))
	running := 0.0
	for i, f := range netFlows {
		running += f
		out[i] = running
	}
	return out
}

// FreeCashFlow is operating cash flow less capital expenditure.
func FreeCashFlow(operating, capitalExpenditure float64) float64 {
	return operating - capitalExpenditure
}

// DaysOfCashOnHand is runway at the current daily expense rate. The bool is
// false when daily expenses are zero (runway is unbounded, not infinite-days).
func DaysOfCashOnHand(cashBalance, dailyExpenses float64) (float64, bool) {
	if dailyExpenses == 0 {
		return 0, false
	}
	return cashBalance / dailyExpenses, true
}

// SpendingStatus classifies a category against its budget.
type SpendingStatus string

const (
	StatusOnTrack SpendingStatus = "on-track"
	StatusOver    SpendingStatus = "over"
	StatusUnder   SpendingStatus = "under"
)

// toleranceBand is the +/- percent variance treated as on track.
const toleranceBand = 5.0

// CategorySpending is one budget line with its recorded spend.
type CategorySpending struct {
	Name     string  `json:"name"`
	Budgeted float64 `json:"budgeted"`
	Actual   float64 `json:"actual"`
}

// CategoryReport is a classified budget line.
type CategoryReport struct {
	Name            string         `json:"name"`
	Budgeted        float64        `json:"budgeted"`
	Actual          float64        `json:"actual"`
	Variance        float64        `json:"variance"`
	VariancePercent *float64       `json:"variance_percent,omitempty"`
	Status          SpendingStatus `json:"status"`
}

// Classify derives variance and status for one category. An unbudgeted
// category with spend is over by definition; with no spend it is on track.
func Classify(c CategorySpending) CategoryReport {
	report := CategoryReport{
		Name:     c.Name,
		Budgeted: c.Budgeted,
		Actual:   c.Actual,
		Variance: numeric.RoundCents(Variance(c.Actual, c.Budgeted)),
		Status:   StatusOnTrack,
	}
	pct, ok := VariancePercent(c.Actual, c.Budgeted)
	if !ok {
		if c.Actual > 0 {
			report.Status = StatusOver
		}
		return report
	}
	rounded := numeric.RoundTo(pct, 2)
	report.VariancePercent = &rounded
	switch {
	case pct > toleranceBand:
		report.Status = StatusOver
	case pct < -toleranceBand:
		report.Status = StatusUnder
	}
	return report
}

// ClassifyAll classifies every category in order.
func ClassifyAll(categories []CategorySpending) []CategoryReport {
	out := make([]CategoryReport, len(categories))
	for i, c := range categories {
		out[i] = Classify(c)
	}
	return out
}
