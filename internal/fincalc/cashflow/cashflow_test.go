package cashflow

import (
	"math"
	"testing"
)

func TestVariancePercent_ZeroBudgetHasNoValue(t *testing.T) {
	for _, actual := range []float64{0, 100, -250, 1e9} {
		if _, ok := VariancePercent(actual, 0); ok {
			t.Errorf("VariancePercent(%v, 0) should have no value", actual)
		}
	}
}

func TestVariancePercent(t *testing.T) {
	pct, ok := VariancePercent(1100, 1000)
	if !ok || math.Abs(pct-10) > 1e-9 {
		t.Errorf("expected 10%% variance, got %.4f ok=%v", pct, ok)
	}
	pct, ok = VariancePercent(900, 1000)
	if !ok || math.Abs(pct+10) > 1e-9 {
		t.Errorf("expected -10%% variance, got %.4f ok=%v", pct, ok)
	}
}

func TestBurnRate(t *testing.T) {
	if BurnRate(1200, 0) != 0 {
		t.Error("burn rate with no elapsed periods should be 0")
	}
	if got := BurnRate(1200, 4); got != 300 {
		t.Errorf("expected burn rate 300, got %.2f", got)
	}
}

func TestCumulativeCashFlow(t *testing.T) {
	got := CumulativeCashFlow([]float64{100, -40, 10})
	want := []float64{100, 60, 70}
	if len(got) != len(want) {
		t.Fatalf("length mismatch: %d vs %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("cumulative[%d] = %.2f, want %.2f", i, got[i], want[i])
		}
	}
}

func TestDaysOfCashOnHand(t *testing.T) {
	if _, ok := DaysOfCashOnHand(5000, 0); ok {
		t.Error("zero daily expenses should have no value")
	}
	days, ok := DaysOfCashOnHand(5000, 250)
	if !ok || days != 20 {
		t.Errorf("expected 20 days, got %.2f ok=%v", days, ok)
	}
}

func TestClassify_ToleranceBand(t *testing.T) {
	cases := []struct {
		name     string
		budgeted float64
		actual   float64
		want     SpendingStatus
	}{
		{"exactly on budget", 1000, 1000, StatusOnTrack},
		{"inside band high", 1000, 1049, StatusOnTrack},
		{"inside band low", 1000, 951, StatusOnTrack},
		{"over", 1000, 1051, StatusOver},
		{"under", 1000, 949, StatusUnder},
		{"unbudgeted spend", 0, 50, StatusOver},
		{"unbudgeted no spend", 0, 0, StatusOnTrack},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report := Classify(CategorySpending{Name: tc.name, Budgeted: tc.budgeted, Actual: tc.actual})
			if report.Status != tc.want {
				t.Errorf("expected %s, got %s", tc.want, report.Status)
			}
		})
	}
}

func TestClassify_UnbudgetedOmitsPercent(t *testing.T) {
	report := Classify(CategorySpending{Name: "misc", Budgeted: 0, Actual: 75})
	if report.VariancePercent != nil {
		t.Error("variance percent should be absent without a budget baseline")
	}
	if report.Variance != 75 {
		t.Errorf("expected variance 75, got %.2f", report.Variance)
	}
}

func TestUtilizationAndRemaining(t *testing.T) {
	util, ok := UtilizationRate(250, 1000)
	if !ok || util != 25 {
		t.Errorf("expected 25%% utilization, got %.2f ok=%v", util, ok)
	}
	if _, ok := UtilizationRate(250, 0); ok {
		t.Error("utilization with zero budget should have no value")
	}
	if RemainingBudget(1000, 250) != 750 {
		t.Error("remaining budget mismatch")
	}
}
