package energy

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Day hours are local indices 6..21 within a 24-hour chunk; the remaining
// indices 22, 23 and 0..5 are night hours.
const (
	dayStartHour = 6
	dayEndHour   = 21
	hoursPerDay  = 24
)

// PerformanceMetrics holds the derived usage metrics for one day chunk.
// Consumption and cost fields are rounded to 2 decimals, CO2 to 3.
type PerformanceMetrics struct {
	AverageCostPerKWh     float64 `json:"average_cost_per_kwh"`
	TotalDayConsumption   float64 `json:"total_day_consumption"`
	TotalNightConsumption float64 `json:"total_night_consumption"`
	TotalCO2Emissions     float64 `json:"total_co2_emissions"`
	TotalConsumption      float64 `json:"total_consumption"`
	DaytimeCost           float64 `json:"daytime_cost"`
	NighttimeCost         float64 `json:"nighttime_cost"`
	TotalCost             float64 `json:"total_cost"`
}

// Compute derives the performance metrics for a single day chunk of at
// most 24 hourly values. Consumption must be non-empty and source must be
// a key of the emission-factor table.
//
// Known boundary quirk: the total consumption sums every element of the
// slice while the day/night split only covers indices 0..23. A caller
// passing more than 24 values directly therefore gets a total exceeding
// the sum of the day and night parts. ChunkDays never produces such a
// slice.
func Compute(consumption []float64, dayTariff, nightTariff float64, source string) (PerformanceMetrics, error) {
	if len(consumption) == 0 {
		return PerformanceMetrics{}, fmt.Errorf("%w: hourly consumption must contain at least one value", ErrInvalidInput)
	}
	factor, err := FactorFor(source)
	if err != nil {
		return PerformanceMetrics{}, err
	}

	var dayKWh, nightKWh float64
	for h := 0; h < hoursPerDay && h < len(consumption); h++ {
		if h >= dayStartHour && h <= dayEndHour {
			dayKWh += consumption[h]
		} else {
			nightKWh += consumption[h]
		}
	}
	totalKWh := floats.Sum(consumption)

	var dayCost, nightCost float64
	if dayKWh > 0 {
		dayCost = dayKWh * dayTariff
	}
	if nightKWh > 0 {
		nightCost = nightKWh * nightTariff
	}
	totalCost := dayCost + nightCost

	var avgCost float64
	if totalKWh > 0 {
		avgCost = totalCost / totalKWh
	}

	return PerformanceMetrics{
		AverageCostPerKWh:     round2(avgCost),
		TotalDayConsumption:   round2(dayKWh),
		TotalNightConsumption: round2(nightKWh),
		TotalCO2Emissions:     round3(totalKWh * factor),
		TotalConsumption:      round2(totalKWh),
		DaytimeCost:           round2(dayCost),
		NighttimeCost:         round2(nightCost),
		TotalCost:             round2(totalCost),
	}, nil
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
