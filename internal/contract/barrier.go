package contract

import "fmt"

// Variant identifies a barrier knock condition.
type Variant string

// Barrier variant constants
const (
	UpAndOut   Variant = "UP_OUT"
	DownAndOut Variant = "DOWN_OUT"
	UpAndIn    Variant = "UP_IN"
	DownAndIn  Variant = "DOWN_IN"
)

// Barrier wraps inner terms with a knock condition evaluated over the full
// history of observed values. The knock condition is strict in every
// variant: a path whose extremum touches the level exactly neither knocks
// out nor knocks in.
type Barrier struct {
	Level   float64
	Variant Variant
	Inner   Terms
}

// StateVariable delegates to the inner terms.
func (b Barrier) StateVariable(values []float64) float64 {
	return b.Inner.StateVariable(values)
}

// Kind implements Terms.
func (b Barrier) Kind() string {
	return fmt.Sprintf("%s_%s", b.Variant, b.Inner.Kind())
}

// Active implements Activation. Out variants pay unless knocked; In
// variants pay only once knocked.
func (b Barrier) Active(values []float64) bool {
	switch b.Variant {
	case UpAndOut:
		return !b.knockedUp(values)
	case DownAndOut:
		return !b.knockedDown(values)
	case UpAndIn:
		return b.knockedUp(values)
	case DownAndIn:
		return b.knockedDown(values)
	}
	return false
}

// knockedUp reports whether any observed value exceeded the level.
func (b Barrier) knockedUp(values []float64) bool {
	return maxOf(values) > b.Level
}

// knockedDown reports whether any observed value fell below the level.
func (b Barrier) knockedDown(values []float64) bool {
	return minOf(values) < b.Level
}

// Ensure Barrier implements both hook interfaces
var (
	_ Terms      = Barrier{}
	_ Activation = Barrier{}
)
