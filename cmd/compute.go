package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gridkit/enermetrics/core/energy"
)

var (
	computeConsumption string
	computeDayTariff   float64
	computeNightTariff float64
	computeSource      string
)

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute performance metrics offline",
	Long:  "Computes the per-day performance metrics for a comma-separated hourly consumption series and prints them as JSON.",
	RunE:  runCompute,
}

func init() {
	computeCmd.Flags().StringVar(&computeConsumption, "consumption", "", "comma-separated hourly consumption in kWh")
	computeCmd.Flags().Float64Var(&computeDayTariff, "day-tariff", 0, "daytime tariff per kWh")
	computeCmd.Flags().Float64Var(&computeNightTariff, "night-tariff", 0, "nighttime tariff per kWh")
	computeCmd.Flags().StringVar(&computeSource, "source", "", "energy source")
	rootCmd.AddCommand(computeCmd)
}

func runCompute(cmd *cobra.Command, args []string) error {
	series, err := parseSeries(computeConsumption)
	if err != nil {
		return err
	}
	days, err := energy.ChunkDays(series, computeDayTariff, computeNightTariff, computeSource)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(days)
}

func parseSeries(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("consumption is required")
	}
	parts := strings.Split(s, ",")
	series := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("consumption value %q is not a number", p)
		}
		series = append(series, v)
	}
	return series, nil
}
