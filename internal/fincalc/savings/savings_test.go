package savings

import (
	"math"
	"testing"
)

func TestGoalMonths_ZeroRate(t *testing.T) {
	months, ok := GoalMonths(12000, 0, 1000, 0)
	if !ok || months != 12 {
		t.Errorf("expected 12 months, got %d ok=%v", months, ok)
	}
}

func TestGoalMonths_AlreadyReached(t *testing.T) {
	months, ok := GoalMonths(5000, 6000, 100, 3)
	if !ok || months != 0 {
		t.Errorf("goal already met should be 0 months, got %d ok=%v", months, ok)
	}
}

func TestGoalMonths_InterestShortensTimeline(t *testing.T) {
	flat, _ := GoalMonths(100000, 10000, 500, 0)
	compounding, _ := GoalMonths(100000, 10000, 500, 6)
	if compounding >= flat {
		t.Errorf("compounding should reach the goal sooner: %d vs %d", compounding, flat)
	}
}

func TestGoalMonths_UnreachablePastCap(t *testing.T) {
	// zero contribution and zero growth never reaches the target
	if _, ok := GoalMonths(1000000, 100, 0, 0); ok {
		t.Error("unreachable goal should report no value")
	}
}

func TestProjection_MatchesGoalSearch(t *testing.T) {
	target, current, contribution, rate := 50000.0, 5000.0, 400.0, 4.0
	months, ok := GoalMonths(target, current, contribution, rate)
	if !ok {
		t.Fatal("goal expected to be reachable")
	}
	series := Projection(current, contribution, rate, months)
	if len(series) != months {
		t.Fatalf("expected %d projected months, got %d", months, len(series))
	}
	if series[months-1] < target {
		t.Errorf("projection should cross the target by month %d, got %.2f", months, series[months-1])
	}
	if months > 1 && series[months-2] >= target {
		t.Errorf("target should not be crossed before month %d", months)
	}
}

func TestRequiredMonthlySavings_ZeroRate(t *testing.T) {
	if got := RequiredMonthlySavings(12000, 0, 0, 12); got != 1000 {
		t.Errorf("expected 1000/month, got %.2f", got)
	}
}

func TestRequiredMonthlySavings_ReachesTarget(t *testing.T) {
	target, current, rate, months := 60000.0, 10000.0, 5.0, 60
	contribution := RequiredMonthlySavings(target, current, rate, months)
	series := Projection(current, contribution, rate, months)
	final := series[len(series)-1]
	if math.Abs(final-target) > 1.0 {
		t.Errorf("solved contribution %.2f lands at %.2f, want ~%.2f", contribution, final, target)
	}
}

func TestRequiredMonthlySavings_AlreadyFunded(t *testing.T) {
	if got := RequiredMonthlySavings(10000, 20000, 5, 24); got != 0 {
		t.Errorf("overfunded goal should need 0/month, got %.2f", got)
	}
}
