package estimate

import (
	"math"
	"testing"
)

func TestThreePoint_Expected(t *testing.T) {
	tp := ThreePoint{Optimistic: 8, MostLikely: 10, Pessimistic: 18}
	if got := tp.Expected(); math.Abs(got-11) > 1e-9 {
		t.Errorf("expected estimate 11, got %.4f", got)
	}
}

func TestThreePoint_StdDev(t *testing.T) {
	tp := ThreePoint{Optimistic: 8, MostLikely: 10, Pessimistic: 18}
	want := 10.0 / 6.0
	if got := tp.StdDev(); math.Abs(got-want) > 1e-9 {
		t.Errorf("expected std dev %.4f, got %.4f", want, got)
	}
}

func TestConfidenceInterval(t *testing.T) {
	tp := ThreePoint{Optimistic: 8, MostLikely: 10, Pessimistic: 18}
	cases := []struct {
		confidence int
		z          float64
	}{
		{68, 1.0},
		{95, 1.96},
		{99, 2.576},
		{80, 1.96}, // unsupported level falls back to 95%
	}
	for _, tc := range cases {
		low, high := tp.ConfidenceInterval(tc.confidence)
		margin := tc.z * tp.StdDev()
		if math.Abs(low-(11-margin)) > 1e-9 || math.Abs(high-(11+margin)) > 1e-9 {
			t.Errorf("confidence %d%%: got [%.4f, %.4f], want margin %.4f around 11",
				tc.confidence, low, high, margin)
		}
	}
}

func TestMetrics(t *testing.T) {
	m := Metrics(EVMSnapshot{
		PlannedValue:       100000,
		EarnedValue:        120000,
		ActualCost:         80000,
		BudgetAtCompletion: 500000,
	})
	if m.ScheduleVariance != 20000 {
		t.Errorf("SV = %.2f, want 20000", m.ScheduleVariance)
	}
	if m.CostVariance != 40000 {
		t.Errorf("CV = %.2f, want 40000", m.CostVariance)
	}
	if m.SPI == nil || math.Abs(*m.SPI-1.2) > 1e-9 {
		t.Errorf("SPI = %v, want 1.2", m.SPI)
	}
	if m.CPI == nil || math.Abs(*m.CPI-1.5) > 1e-9 {
		t.Errorf("CPI = %v, want 1.5", m.CPI)
	}
	if m.EAC == nil || math.Abs(*m.EAC-500000/1.5) > 1e-6 {
		t.Errorf("EAC = %v, want %.2f", m.EAC, 500000/1.5)
	}
	if m.ETC == nil || math.Abs(*m.ETC-(500000/1.5-80000)) > 1e-6 {
		t.Errorf("ETC = %v", m.ETC)
	}
}

func TestMetrics_UndefinedIndexes(t *testing.T) {
	m := Metrics(EVMSnapshot{PlannedValue: 0, EarnedValue: 500, ActualCost: 0, BudgetAtCompletion: 1000})
	if m.SPI != nil {
		t.Error("SPI over zero planned value must be undefined, not zero")
	}
	if m.CPI != nil || m.EAC != nil || m.ETC != nil {
		t.Error("CPI and its derived measures must be undefined with zero actual cost")
	}
	// variances are still plain subtractions
	if m.ScheduleVariance != 500 || m.CostVariance != 500 {
		t.Errorf("variances wrong: SV=%.2f CV=%.2f", m.ScheduleVariance, m.CostVariance)
	}
}
