package validation

import "fmt"

// Request-boundary guards for the calculator endpoints. The calculation
// packages assume sanitized inputs; anything structurally invalid is
// rejected here before a calculation runs.

// PositiveAmount rejects zero or negative money amounts.
func PositiveAmount(field string, v float64) error {
	if v <= 0 {
		return fmt.Errorf("%s must be greater than zero", field)
	}
	return nil
}

// NonNegativeAmount rejects negative money amounts.
func NonNegativeAmount(field string, v float64) error {
	if v < 0 {
		return fmt.Errorf("%s must not be negative", field)
	}
	return nil
}

// PositiveCount rejects non-positive period/term counts.
func PositiveCount(field string, v int) error {
	if v <= 0 {
		return fmt.Errorf("%s must be greater than zero", field)
	}
	return nil
}

// NonNegativeCount rejects negative counts.
func NonNegativeCount(field string, v int) error {
	if v < 0 {
		return fmt.Errorf("%s must not be negative", field)
	}
	return nil
}

// RatePercent rejects negative whole-number percent rates (4.5 means 4.5%).
func RatePercent(field string, v float64) error {
	if v < 0 {
		return fmt.Errorf("%s must not be negative", field)
	}
	return nil
}

// Fraction rejects values outside (0, 1], e.g. smoothing factors.
func Fraction(field string, v float64) error {
	if v <= 0 || v > 1 {
		return fmt.Errorf("%s must be in (0, 1]", field)
	}
	return nil
}

// All returns the first failing guard, nil when every guard passes.
func All(checks ...error) error {
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}
