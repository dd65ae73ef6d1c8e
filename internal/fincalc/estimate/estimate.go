package estimate

// ThreePoint is a PERT-style estimate of a single work item.
type ThreePoint struct {
	Optimistic  float64 `json:"optimistic"`
	MostLikely  float64 `json:"most_likely"`
	Pessimistic float64 `json:"pessimistic"`
}

// Expected is the PERT weighted mean (O + 4M + P) / 6.
func (tp ThreePoint) Expected() float64 {
	return (tp.Optimistic + 4*tp.MostLikely + tp.Pessimistic) / 6
}

// StdDev is the PERT spread (P - O) / 6.
func (tp ThreePoint) StdDev() float64 {
	return (tp.Pessimistic - tp.Optimistic) / 6
}

// zScore maps the supported confidence levels; anything else gets 95%.
func zScore(confidencePercent int) float64 {
	switch confidencePercent {
	case 68:
		return 1.0
	case 95:
		return 1.96
	case 99:
		return 2.576
	default:
		return 1.96
	}
}

// ConfidenceInterval returns the estimate band at the given confidence level.
func (tp ThreePoint) ConfidenceInterval(confidencePercent int) (low, high float64) {
	expected := tp.Expected()
	margin := zScore(confidencePercent) * tp.StdDev()
	return expected - margin, expected + margin
}

// EVMSnapshot is a point-in-time earned-value picture of a project.
type EVMSnapshot struct {
	PlannedValue       float64 `json:"planned_value"`
	EarnedValue        float64 `json:"earned_value"`
	ActualCost         float64 `json:"actual_cost"`
	BudgetAtCompletion float64 `json:"budget_at_completion"`
}

// EVMMetrics derives the standard earned-value measures. The index and
// completion fields are nil when their denominator is zero: an index over a
// zero baseline is undefined, not zero.
type EVMMetrics struct {
	ScheduleVariance float64  `json:"schedule_variance"`
	CostVariance     float64  `json:"cost_variance"`
	SPI              *float64 `json:"spi,omitempty"`
	CPI              *float64 `json:"cpi,omitempty"`
	EAC              *float64 `json:"eac,omitempty"`
	ETC              *float64 `json:"etc,omitempty"`
}

// Metrics computes SV, CV, SPI, CPI, EAC and ETC from a snapshot.
func Metrics(s EVMSnapshot) EVMMetrics {
	m := EVMMetrics{
		ScheduleVariance: s.EarnedValue - s.PlannedValue,
		CostVariance:     s.EarnedValue - s.ActualCost,
	}
	if s.PlannedValue != 0 {
		spi := s.EarnedValue / s.PlannedValue
		m.SPI = &spi
	}
	if s.ActualCost != 0 {
		cpi := s.EarnedValue / s.ActualCost
		m.CPI = &cpi
		if cpi != 0 {
			eac := s.BudgetAtCompletion / cpi
			etc := eac - s.ActualCost
			m.EAC = &eac
			m.ETC = &etc
		}
	}
	return m
}
