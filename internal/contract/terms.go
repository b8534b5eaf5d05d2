package contract

// Contract kind constants
const (
	KindAsian       = "ASIAN"
	KindLookbackMax = "LOOKBACK_MAX"
	KindLookbackMin = "LOOKBACK_MIN"
	KindTerminal    = "TERMINAL"
)

// Asian terms: the state variable is the arithmetic mean of the recorded
// fixings.
type Asian struct{}

// StateVariable implements Terms.
func (Asian) StateVariable(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Kind implements Terms.
func (Asian) Kind() string { return KindAsian }

// LookbackMax terms: the state variable is the maximum recorded fixing.
type LookbackMax struct{}

// StateVariable implements Terms.
func (LookbackMax) StateVariable(values []float64) float64 {
	return maxOf(values)
}

// Kind implements Terms.
func (LookbackMax) Kind() string { return KindLookbackMax }

// LookbackMin terms: the state variable is the minimum recorded fixing.
type LookbackMin struct{}

// StateVariable implements Terms.
func (LookbackMin) StateVariable(values []float64) float64 {
	return minOf(values)
}

// Kind implements Terms.
func (LookbackMin) Kind() string { return KindLookbackMin }

// Terminal terms: the state variable is the last recorded fixing. Combined
// with Barrier this prices barrier-at-expiry contracts.
type Terminal struct{}

// StateVariable implements Terms.
func (Terminal) StateVariable(values []float64) float64 {
	return values[len(values)-1]
}

// Kind implements Terms.
func (Terminal) Kind() string { return KindTerminal }

// Ensure concrete terms implement Terms
var (
	_ Terms = Asian{}
	_ Terms = LookbackMax{}
	_ Terms = LookbackMin{}
	_ Terms = Terminal{}
)

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func minOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
