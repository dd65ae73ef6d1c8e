package loans

import (
	"math"
	"testing"

	"FinPlanSaas/internal/fincalc/amort"
)

func TestMortgage_ThirtyYearMonthly(t *testing.T) {
	result := Mortgage(MortgageRequest{
		Principal:         300000,
		AnnualRatePercent: 4.5,
		TermYears:         30,
		Frequency:         amort.FrequencyMonthly,
	})
	if math.Abs(result.Payment-1520.06) > 0.01 {
		t.Errorf("expected payment near 1520.06, got %.2f", result.Payment)
	}
	if result.PeriodsTotal != 360 {
		t.Errorf("expected 360 periods, got %d", result.PeriodsTotal)
	}
}

func TestMortgage_FrequencyVariants(t *testing.T) {
	monthly := Mortgage(MortgageRequest{Principal: 300000, AnnualRatePercent: 4.5, TermYears: 30, Frequency: amort.FrequencyMonthly})
	biweekly := Mortgage(MortgageRequest{Principal: 300000, AnnualRatePercent: 4.5, TermYears: 30, Frequency: amort.FrequencyBiWeekly})
	weekly := Mortgage(MortgageRequest{Principal: 300000, AnnualRatePercent: 4.5, TermYears: 30, Frequency: amort.FrequencyWeekly})

	if biweekly.PeriodsTotal != 780 || weekly.PeriodsTotal != 1560 {
		t.Errorf("unexpected period counts: biweekly=%d weekly=%d", biweekly.PeriodsTotal, weekly.PeriodsTotal)
	}
	// each payment shrinks as frequency rises
	if !(weekly.Payment < biweekly.Payment && biweekly.Payment < monthly.Payment) {
		t.Errorf("payments should shrink with frequency: %v %v %v", monthly.Payment, biweekly.Payment, weekly.Payment)
	}
}

func TestAcceleration_SavesPaymentsAndInterest(t *testing.T) {
	result := Acceleration(MortgageRequest{
		Principal:         300000,
		AnnualRatePercent: 4.5,
		TermYears:         30,
		Frequency:         amort.FrequencyMonthly,
		ExtraPayment:      200,
	})
	if result.PaymentsSaved <= 0 {
		t.Errorf("extra payment should save payments, got %d", result.PaymentsSaved)
	}
	if result.InterestSaved <= 0 {
		t.Errorf("extra payment should save interest, got %.2f", result.InterestSaved)
	}
	if result.Accelerated.PeriodsActual+result.PaymentsSaved != result.Baseline.PeriodsActual {
		t.Error("payments saved should reconcile with the two schedules")
	}
}

func TestCarLoan_TaxAndFeeRollIn(t *testing.T) {
	result := CarLoan(CarLoanRequest{
		VehiclePrice:      30000,
		DownPayment:       5000,
		TradeInValue:      2000,
		SalesTaxPercent:   8,
		Fees:              500,
		AnnualRatePercent: 6,
		TermMonths:        60,
	})
	// taxable 28000, tax 2240, financed 28000+2240+500-5000
	if math.Abs(result.SalesTax-2240) > 0.01 {
		t.Errorf("expected sales tax 2240, got %.2f", result.SalesTax)
	}
	if math.Abs(result.AmountFinanced-25740) > 0.01 {
		t.Errorf("expected 25740 financed, got %.2f", result.AmountFinanced)
	}
	if result.MonthlyPayment <= 0 {
		t.Error("expected a positive monthly payment")
	}
}

func TestStudentLoan_Capitalization(t *testing.T) {
	result := StudentLoan(StudentLoanRequest{
		Principal:         20000,
		AnnualRatePercent: 6,
		TermMonths:        120,
		GraceMonths:       6,
		DefermentMonths:   6,
	})
	// simple interest: 20000 * 6% * 1yr
	if math.Abs(result.CapitalizedInterest-1200) > 0.01 {
		t.Errorf("expected 1200 capitalized, got %.2f", result.CapitalizedInterest)
	}
	if math.Abs(result.PrincipalAtRepayment-21200) > 0.01 {
		t.Errorf("expected 21200 at repayment, got %.2f", result.PrincipalAtRepayment)
	}

	subsidized := StudentLoan(StudentLoanRequest{
		Principal:         20000,
		AnnualRatePercent: 6,
		TermMonths:        120,
		GraceMonths:       6,
		Subsidized:        true,
	})
	if subsidized.CapitalizedInterest != 0 {
		t.Errorf("subsidized loan should not capitalize, got %.2f", subsidized.CapitalizedInterest)
	}
}

func TestIncomeBased_CappedAtStandardPayment(t *testing.T) {
	// high income: the 10% formula exceeds the standard payment and is capped
	result := IncomeBased(IncomeBasedRequest{
		Principal:         10000,
		AnnualRatePercent: 5,
		TermMonths:        120,
		AnnualIncome:      500000,
		FamilySize:        1,
	})
	if result.MonthlyPayment != result.StandardPayment {
		t.Errorf("payment should cap at standard: %.2f vs %.2f", result.MonthlyPayment, result.StandardPayment)
	}
}

func TestIncomeBased_LowIncomePaysZero(t *testing.T) {
	// income below 150% of the guideline has no discretionary income
	result := IncomeBased(IncomeBasedRequest{
		Principal:         30000,
		AnnualRatePercent: 5,
		TermMonths:        120,
		AnnualIncome:      20000,
		FamilySize:        3,
	})
	if result.DiscretionaryIncome != 0 || result.MonthlyPayment != 0 {
		t.Errorf("expected zero payment, got %.2f (discretionary %.2f)",
			result.MonthlyPayment, result.DiscretionaryIncome)
	}
}

func TestForgiveness_RemainderForgiven(t *testing.T) {
	result := Forgiveness(ForgivenessRequest{
		IncomeBasedRequest: IncomeBasedRequest{
			Principal:         80000,
			AnnualRatePercent: 6,
			TermMonths:        120,
			AnnualIncome:      35000,
			FamilySize:        1,
		},
		ForgivenessYears: 20,
	})
	if result.BalanceForgiven <= 0 {
		t.Errorf("a low income-driven payment should leave a forgiven balance, got %.2f", result.BalanceForgiven)
	}
	if result.PaidOffEarly {
		t.Error("loan should not pay off before the forgiveness horizon")
	}
}

func TestRefinance_WorthwhileAndBreakEven(t *testing.T) {
	result := Refinance(RefinanceRequest{
		CurrentBalance:      200000,
		CurrentRatePercent:  6.5,
		RemainingTermMonths: 300,
		ProposedRatePercent: 4.5,
		ProposedTermMonths:  300,
		ClosingCosts:        4000,
	})
	if result.MonthlySavings <= 0 {
		t.Fatalf("a 2-point rate drop should save monthly, got %.2f", result.MonthlySavings)
	}
	wantBreakEven := int(math.Ceil(4000 / result.MonthlySavings))
	if result.BreakEvenMonths != wantBreakEven {
		t.Errorf("break-even = %d, want %d", result.BreakEvenMonths, wantBreakEven)
	}
	if !result.Worthwhile {
		t.Error("refinance with positive net savings and early break-even should be worthwhile")
	}
}

func TestRefinance_NotWorthwhileWhenCostsDominate(t *testing.T) {
	result := Refinance(RefinanceRequest{
		CurrentBalance:      50000,
		CurrentRatePercent:  5.0,
		RemainingTermMonths: 24,
		ProposedRatePercent: 4.9,
		ProposedTermMonths:  24,
		ClosingCosts:        5000,
	})
	if result.Worthwhile {
		t.Error("closing costs dwarfing the rate saving should not be worthwhile")
	}
}

func TestDebtToIncome(t *testing.T) {
	dti, ok := DebtToIncome(2000, 5000)
	if !ok || math.Abs(dti-40) > 1e-9 {
		t.Errorf("expected DTI 40%%, got %.4f ok=%v", dti, ok)
	}
	if _, ok := DebtToIncome(2000, 0); ok {
		t.Error("DTI with no income should have no value")
	}
}
