package energy

import "fmt"

// DayMetrics pairs a 1-based day number with its computed metrics.
type DayMetrics struct {
	Day     int                `json:"Day"`
	Metrics PerformanceMetrics `json:"Metrics"`
}

// ChunkDays splits the consumption series into consecutive chunks of up
// to 24 hours and computes the metrics for each, numbering days from 1.
// The last chunk may be shorter than 24 hours.
func ChunkDays(consumption []float64, dayTariff, nightTariff float64, source string) ([]DayMetrics, error) {
	if len(consumption) == 0 {
		return nil, fmt.Errorf("%w: hourly consumption must contain at least one value", ErrInvalidInput)
	}
	numDays := (len(consumption) + hoursPerDay - 1) / hoursPerDay
	results := make([]DayMetrics, 0, numDays)
	for day := 0; day < numDays; day++ {
		start := day * hoursPerDay
		end := start + hoursPerDay
		if end > len(consumption) {
			end = len(consumption)
		}
		m, err := Compute(consumption[start:end], dayTariff, nightTariff, source)
		if err != nil {
			return nil, err
		}
		results = append(results, DayMetrics{Day: day + 1, Metrics: m})
	}
	return results, nil
}
