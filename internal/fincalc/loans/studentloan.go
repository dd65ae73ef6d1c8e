package loans

import (
	"FinPlanSaas/internal/fincalc/amort"
	"FinPlanSaas/internal/fincalc/numeric"
)

// Federal poverty guideline used by the income-driven payment formula:
// a base amount for a household of one plus an increment per extra person.
const (
	povertyGuidelineBase      = 15060.0
	povertyGuidelinePerPerson = 5380.0
	discretionaryMultiplier   = 1.5
	incomeDrivenShare         = 0.10
)

// povertyGuideline returns the annual guideline for a family size.
func povertyGuideline(familySize int) float64 {
	if familySize < 1 {
		familySize = 1
	}
	return povertyGuidelineBase + povertyGuidelinePerPerson*float64(familySize-1)
}

// StudentLoanRequest describes a student loan entering repayment. Interest
// accrued over grace and deferment months is capitalized onto the principal
// before amortization unless the loan is subsidized.
type StudentLoanRequest struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TermMonths        int     `json:"term_months"`
	GraceMonths       int     `json:"grace_months"`
	DefermentMonths   int     `json:"deferment_months"`
	Subsidized        bool    `json:"subsidized"`
}

// StudentLoanResult is the post-capitalization amortization summary.
type StudentLoanResult struct {
	CapitalizedInterest  float64       `json:"capitalized_interest"`
	PrincipalAtRepayment float64       `json:"principal_at_repayment"`
	MonthlyPayment       float64       `json:"monthly_payment"`
	TotalInterest        float64       `json:"total_interest"`
	TotalPaid            float64       `json:"total_paid"`
	Schedule             []amort.Entry `json:"schedule"`
}

// capitalizedPrincipal adds simple interest accrued before repayment.
func capitalizedPrincipal(req StudentLoanRequest) (principal, accrued float64) {
	principal = req.Principal
	if req.Subsidized {
		return principal, 0
	}
	preMonths := req.GraceMonths + req.DefermentMonths
	accrued = req.Principal * (req.AnnualRatePercent / 100) * float64(preMonths) / 12
	return principal + accrued, accrued
}

// StudentLoan capitalizes pre-repayment interest and amortizes monthly.
func StudentLoan(req StudentLoanRequest) StudentLoanResult {
	principal, accrued := capitalizedPrincipal(req)
	payment := amort.PaymentFor(principal, req.AnnualRatePercent, req.TermMonths, 12)
	schedule := amort.Schedule(principal, req.AnnualRatePercent, req.TermMonths, 12, 0)
	totalInterest := amort.TotalInterest(schedule)
	return StudentLoanResult{
		CapitalizedInterest:  numeric.RoundCents(accrued),
		PrincipalAtRepayment: numeric.RoundCents(principal),
		MonthlyPayment:       numeric.RoundCents(payment),
		TotalInterest:        numeric.RoundCents(totalInterest),
		TotalPaid:            numeric.RoundCents(amort.TotalPaid(schedule)),
		Schedule:             schedule,
	}
}

// IncomeBasedRequest asks for an income-driven payment on a student loan.
type IncomeBasedRequest struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TermMonths        int     `json:"term_months"`
	AnnualIncome      float64 `json:"annual_income"`
	FamilySize        int     `json:"family_size"`
}

// IncomeBasedResult is the monthly payment under the income-driven formula,
// never above the standard amortizing payment.
type IncomeBasedResult struct {
	StandardPayment     float64 `json:"standard_payment"`
	DiscretionaryIncome float64 `json:"discretionary_income"`
	MonthlyPayment      float64 `json:"monthly_payment"`
}

// IncomeBased computes 10% of discretionary income (income above 150% of the
// poverty guideline for the family size), spread monthly and capped at the
// standard payment.
func IncomeBased(req IncomeBasedRequest) IncomeBasedResult {
	standard := amort.PaymentFor(req.Principal, req.AnnualRatePercent, req.TermMonths, 12)
	discretionary := numeric.ClampMin(req.AnnualIncome-discretionaryMultiplier*povertyGuideline(req.FamilySize), 0)
	payment := incomeDrivenShare * discretionary / 12
	if payment > standard {
		payment = standard
	}
	return IncomeBasedResult{
		StandardPayment:     numeric.RoundCents(standard),
		DiscretionaryIncome: numeric.RoundCents(discretionary),
		MonthlyPayment:      numeric.RoundCents(payment),
	}
}

// ForgivenessRequest projects the balance forgiven after a fixed number of
// years of income-driven payments.
type ForgivenessRequest struct {
	IncomeBasedRequest
	ForgivenessYears int `json:"forgiveness_years"`
}

// ForgivenessResult reports what remains to be forgiven at the horizon.
type ForgivenessResult struct {
	MonthlyPayment  float64 `json:"monthly_payment"`
	TotalPaid       float64 `json:"total_paid"`
	BalanceForgiven float64 `json:"balance_forgiven"`
	PaidOffEarly    bool    `json:"paid_off_early"`
}

// Forgiveness simulates the income-driven payment month by month. A payment
// below accruing interest grows the balance; whatever is left at the horizon
// is the forgiven amount.
func Forgiveness(req ForgivenessRequest) ForgivenessResult {
	ib := IncomeBased(req.IncomeBasedRequest)
	monthlyRate := req.AnnualRatePercent / 100 / 12
	balance := req.Principal
	totalPaid := 0.0
	months := req.ForgivenessYears * 12

	for m := 0; m < months && !numeric.ApproxZero(balance); m++ {
		interest := balance * monthlyRate
		payment := ib.MonthlyPayment
		if payment > balance+interest {
			payment = balance + interest
		}
		balance += interest - payment
		totalPaid += payment
	}

	return ForgivenessResult{
		MonthlyPayment:  ib.MonthlyPayment,
		TotalPaid:       numeric.RoundCents(totalPaid),
		BalanceForgiven: numeric.RoundCents(numeric.ClampMin(balance, 0)),
		PaidOffEarly:    numeric.ApproxZero(balance),
	}
}
