package energy

import (
	"fmt"
	"sort"
	"strings"
)

// emissionFactors maps an energy source to its emission factor in
// kg CO2 per kWh. The table is fixed for the process lifetime.
var emissionFactors = map[string]float64{
	"coal":        0.9,
	"natural_gas": 0.45,
	"oil":         0.7,
	"nuclear":     0.004,
	"renewables":  0.03,
	"grid_mix":    0.5,
}

// FactorFor returns the emission factor for the given source. Lookup is
// case-insensitive. Unknown sources fail with ErrInvalidInput and a
// message listing the valid keys.
func FactorFor(source string) (float64, error) {
	f, ok := emissionFactors[strings.ToLower(source)]
	if !ok {
		return 0, fmt.Errorf("%w: unknown energy source %q, valid sources: %s",
			ErrInvalidInput, source, strings.Join(ValidSources(), ", "))
	}
	return f, nil
}

// ValidSources returns the known source keys in sorted order.
func ValidSources() []string {
	keys := make([]string, 0, len(emissionFactors))
	for k := range emissionFactors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
