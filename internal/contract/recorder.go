// Package contract models path-dependent options as a fixing recorder: an
// ordered record of observed fixings, an expiry state machine, and
// per-contract hooks that reduce the record to the scalar the payoff
// consumes and decide whether the payoff is paid at all.
package contract

import (
	"errors"
	"fmt"
	"sort"

	"option-pricing-lab/internal/payoff"
)

// Recorder errors
var (
	ErrNotExpired      = errors.New("payoff requested before expiry")
	ErrOutOfOrder      = errors.New("observation time precedes last recorded fixing")
	ErrEmptySchedule   = errors.New("fixing schedule is empty")
	ErrDuplicateFixing = errors.New("fixing schedule contains duplicate times")
	ErrInvalidFixing   = errors.New("fixing times must be positive")
	ErrInvalidExpiry   = errors.New("expiry must be positive")
)

// Record is the observation history of one simulated path. It is replaced
// wholesale on every accepted fixing, never mutated in place, so a returned
// Record stays valid after further observations. StateVariable is non-nil
// exactly when the contract has expired.
type Record struct {
	Times         []float64
	Values        []float64
	StateVariable *float64
}

// Terms reduces a completed fixing history to the scalar fed to the payoff
// function.
type Terms interface {
	// StateVariable reduces the observed underlying values, in
	// chronological order, to a single scalar.
	StateVariable(values []float64) float64

	// Kind returns the contract kind identifier.
	Kind() string
}

// Activation decides whether the payoff is paid at all, from the full
// history of observed values. Terms that do not implement Activation are
// always active.
type Activation interface {
	Active(values []float64) bool
}

// Recorder tracks the fixings of one path-dependent contract along a
// simulated path. It is a two-state machine: open until an observation at
// or past expiry arrives, then expired until Reset. A Recorder is owned by
// a single pricing loop; use Clone for parallel workers.
type Recorder struct {
	spot     float64
	expiry   float64
	payoff   payoff.Function
	schedule []float64
	terms    Terms
	record   Record
}

// NewRecorder validates the fixing schedule and builds a recorder in the
// open state. The schedule is copied and sorted ascending.
func NewRecorder(spot, expiry float64, fn payoff.Function, schedule []float64, terms Terms) (*Recorder, error) {
	if len(schedule) == 0 {
		return nil, ErrEmptySchedule
	}
	if expiry <= 0 {
		return nil, fmt.Errorf("%w: got %.6f", ErrInvalidExpiry, expiry)
	}

	cp := make([]float64, len(schedule))
	copy(cp, schedule)
	sort.Float64s(cp)

	for i, t := range cp {
		if t <= 0 {
			return nil, fmt.Errorf("%w: got %.6f", ErrInvalidFixing, t)
		}
		if i > 0 && t == cp[i-1] {
			return nil, fmt.Errorf("%w: %.6f", ErrDuplicateFixing, t)
		}
	}

	return &Recorder{
		spot:     spot,
		expiry:   expiry,
		payoff:   fn,
		schedule: cp,
		terms:    terms,
	}, nil
}

// Times returns a copy of the fixing schedule in ascending order.
func (r *Recorder) Times() []float64 {
	cp := make([]float64, len(r.schedule))
	copy(cp, r.schedule)
	return cp
}

// Expiry returns the contract expiry in years.
func (r *Recorder) Expiry() float64 {
	return r.expiry
}

// Spot returns the initial underlying level the contract was written on.
func (r *Recorder) Spot() float64 {
	return r.spot
}

// Kind returns the contract kind identifier from its terms.
func (r *Recorder) Kind() string {
	return r.terms.Kind()
}

// Record returns the current observation snapshot.
func (r *Recorder) Record() Record {
	return r.record
}

// Reset discards the observation history and reopens the contract.
func (r *Recorder) Reset() {
	r.record = Record{}
}

// Observe presents the underlying value at time t. Times outside the fixing
// schedule and duplicates of an already recorded fixing are ignored.
// Observations must arrive in non-decreasing time order; a step backwards
// is a driver bug and fails with ErrOutOfOrder. On acceptance the record is
// replaced wholesale, and once the newest fixing reaches expiry the state
// variable is derived from the history.
func (r *Recorder) Observe(t, value float64) error {
	n := len(r.record.Times)
	if n > 0 && t < r.record.Times[n-1] {
		return fmt.Errorf("%w: %.6f after %.6f", ErrOutOfOrder, t, r.record.Times[n-1])
	}
	if !r.scheduled(t) || r.seen(t) {
		return nil
	}

	times := make([]float64, n+1)
	copy(times, r.record.Times)
	times[n] = t

	values := make([]float64, n+1)
	copy(values, r.record.Values)
	values[n] = value

	next := Record{Times: times, Values: values}
	if times[n] >= r.expiry {
		sv := r.terms.StateVariable(values)
		next.StateVariable = &sv
	}
	r.record = next
	return nil
}

// Expired reports whether the newest recorded fixing has reached expiry.
// The comparison is inclusive: an observation at exactly the expiry time
// expires the contract.
func (r *Recorder) Expired() bool {
	n := len(r.record.Times)
	return n > 0 && r.record.Times[n-1] >= r.expiry
}

// Payoff returns the undiscounted payoff of the recorded path. Calling it
// before expiry is a usage error. A contract whose activation condition
// failed (a knocked-out or never-knocked-in barrier) pays zero.
func (r *Recorder) Payoff() (float64, error) {
	if !r.Expired() {
		return 0, fmt.Errorf("%w: %d of %d fixings observed", ErrNotExpired, len(r.record.Times), len(r.schedule))
	}
	if act, ok := r.terms.(Activation); ok && !act.Active(r.record.Values) {
		return 0, nil
	}
	return r.payoff(*r.record.StateVariable), nil
}

// Clone returns a recorder with the same contract terms and an empty
// record.
func (r *Recorder) Clone() *Recorder {
	schedule := make([]float64, len(r.schedule))
	copy(schedule, r.schedule)
	return &Recorder{
		spot:     r.spot,
		expiry:   r.expiry,
		payoff:   r.payoff,
		schedule: schedule,
		terms:    r.terms,
	}
}

// scheduled reports whether t is one of the required fixing times.
func (r *Recorder) scheduled(t float64) bool {
	i := sort.SearchFloat64s(r.schedule, t)
	return i < len(r.schedule) && r.schedule[i] == t
}

// seen reports whether t has already been recorded.
func (r *Recorder) seen(t float64) bool {
	for _, rt := range r.record.Times {
		if rt == t {
			return true
		}
	}
	return false
}
