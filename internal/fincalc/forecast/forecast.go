package forecast

// Trend classifies the direction of a series.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// trendDeadband is the mean period-over-period delta treated as flat.
const trendDeadband = 0.1

// Linear fits an ordinary least-squares line over (index, value) and projects
// it periodsAhead past the series. Fewer than 2 points is underdetermined and
// yields an empty projection.
func Linear(series []float64, periodsAhead int) []float64 {
	n := len(series)
	if n < 2 || periodsAhead <= 0 {
		return nil
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range series {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	fn := float64(n)
	denom := fn*sumXX - sumX*sumX
	if denom == 0 {
		return nil
	}
	slope := (fn*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / fn

	out := make([]float64, periodsAhead)
	for i := 0; i < periodsAhead; i++ {
		out[i] = intercept + slope*float64(n+i)
	}
	return out
}

// MovingAverage forecasts the next period as the mean of the last windowSize
// points, or 0 when the history is shorter than the window.
func MovingAverage(series []float64, windowSize int) float64 {
	if windowSize <= 0 || len(series) < windowSize {
		return 0
	}
	sum := 0.0
	for _, v := range series[len(series)-windowSize:] {
		sum += v
	}
	return sum / float64(windowSize)
}

// Smooth applies exponential smoothing S[t] = alpha*x[t] + (1-alpha)*S[t-1],
// seeded with the first observation.
func Smooth(series []float64, alpha float64) []float64 {
	if len(series) == 0 {
		return nil
	}
	out := make([]float64, len(series))
	out[0] = series[0]
	for i := 1; i < len(series); i++ {
		out[i] = alpha*series[i] + (1-alpha)*out[i-1]
	}
	return out
}

// SmoothedForecast projects periodsAhead values by replicating the last
// smoothed level.
func SmoothedForecast(series []float64, alpha float64, periodsAhead int) []float64 {
	smoothed := Smooth(series, alpha)
	if len(smoothed) == 0 || periodsAhead <= 0 {
		return nil
	}
	level := smoothed[len(smoothed)-1]
	out := make([]float64, periodsAhead)
	for i := range out {
		out[i] = level
	}
	return out
}

// IdentifyTrend classifies the mean period-over-period delta of the series.
func IdentifyTrend(series []float64) Trend {
	if len(series) < 2 {
		return TrendStable
	}
	total := 0.0
	for i := 1; i < len(series); i++ {
		total += series[i] - series[i-1]
	}
	mean := total / float64(len(series)-1)
	switch {
	case mean > trendDeadband:
		return TrendIncreasing
	case mean < -trendDeadband:
		return TrendDecreasing
	default:
		return TrendStable
	}
}
