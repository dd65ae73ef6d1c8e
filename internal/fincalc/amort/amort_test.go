package amort

import (
	"math"
	"testing"
)

func TestPaymentFor_ThirtyYearFixed(t *testing.T) {
	// 300k at 4.5% over 30 years, monthly
	payment := PaymentFor(300000, 4.5, 360, 12)
	if math.Abs(payment-1520.06) > 0.01 {
		t.Errorf("expected payment near 1520.06, got %.4f", payment)
	}
}

func TestPaymentFor_ZeroRateIsStraightLine(t *testing.T) {
	payment := PaymentFor(12000, 0, 12, 12)
	if payment != 1000 {
		t.Errorf("zero-rate payment should be principal/periods, got %.4f", payment)
	}
}

func TestPaymentFor_ZeroPeriods(t *testing.T) {
	if p := PaymentFor(1000, 5, 0, 12); p != 0 {
		t.Errorf("expected 0 payment for zero periods, got %.4f", p)
	}
}

func TestSchedule_PrincipalSumMatchesPrincipal(t *testing.T) {
	cases := []struct {
		name      string
		principal float64
		rate      float64
		periods   int
		perYear   int
		extra     float64
	}{
		{"mortgage", 300000, 4.5, 360, 12, 0},
		{"mortgage with extra", 300000, 4.5, 360, 12, 200},
		{"car loan", 25000, 6.9, 60, 12, 0},
		{"zero rate", 9000, 0, 36, 12, 0},
		{"biweekly", 150000, 3.75, 520, 26, 50},
		{"high rate", 5000, 24, 24, 12, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entries := Schedule(tc.principal, tc.rate, tc.periods, tc.perYear, tc.extra)
			if len(entries) == 0 {
				t.Fatal("expected a non-empty schedule")
			}
			var principalSum float64
			for _, e := range entries {
				principalSum += e.Principal
			}
			if math.Abs(principalSum-tc.principal) > 0.01 {
				t.Errorf("principal portions sum to %.4f, want %.2f", principalSum, tc.principal)
			}
		})
	}
}

func TestSchedule_BalanceNeverIncreases(t *testing.T) {
	entries := Schedule(300000, 4.5, 360, 12, 150)
	previous := math.Inf(1)
	for _, e := range entries {
		if e.Balance > previous+1e-9 {
			t.Fatalf("balance increased at period %d: %.6f -> %.6f", e.Period, previous, e.Balance)
		}
		previous = e.Balance
	}
	final := entries[len(entries)-1].Balance
	if math.Abs(final) > 0.01 {
		t.Errorf("final balance should be ~0, got %.6f", final)
	}
}

func TestSchedule_ExtraPaymentShortensTerm(t *testing.T) {
	base := Schedule(200000, 5, 360, 12, 0)
	accelerated := Schedule(200000, 5, 360, 12, 300)
	if len(accelerated) >= len(base) {
		t.Errorf("extra payment should shorten the schedule: %d vs %d periods", len(accelerated), len(base))
	}
	if TotalInterest(accelerated) >= TotalInterest(base) {
		t.Errorf("extra payment should reduce total interest")
	}
}

func TestSchedule_TerminatesUnderPathologicalInputs(t *testing.T) {
	// payment barely above interest still has to terminate at the cap
	entries := Schedule(100000, 99, 12, 12, 0)
	if len(entries) > 24 {
		t.Errorf("schedule exceeded its safety cap: %d periods", len(entries))
	}
}

func TestFrequency_PeriodsPerYear(t *testing.T) {
	cases := []struct {
		freq Frequency
		want int
	}{
		{FrequencyMonthly, 12},
		{FrequencyBiWeekly, 26},
		{FrequencyWeekly, 52},
		{Frequency("unknown"), 12},
	}
	for _, tc := range cases {
		if got := tc.freq.PeriodsPerYear(); got != tc.want {
			t.Errorf("%s: expected %d periods per year, got %d", tc.freq, tc.want, got)
		}
	}
}
