package curve

import (
	"errors"
	"fmt"
	"math"
)

// Zero curve errors
var (
	ErrNoPillars       = errors.New("zero curve requires at least one pillar")
	ErrPillarOrder     = errors.New("zero curve pillars must have strictly increasing maturities")
	ErrPillarMaturity  = errors.New("zero curve pillar maturities must be positive")
)

// Pillar is one point on a zero curve: a continuously compounded zero rate
// quoted at a maturity in years.
type Pillar struct {
	Maturity float64
	Rate     float64
}

// Zero is a piecewise zero-rate curve. Discount factors are interpolated
// log-linearly between pillars; outside the pillar range the nearest zero
// rate is extrapolated flat.
type Zero struct {
	pillars []Pillar
}

// NewZero validates and copies the pillar set.
func NewZero(pillars []Pillar) (*Zero, error) {
	if len(pillars) == 0 {
		return nil, ErrNoPillars
	}

	cp := make([]Pillar, len(pillars))
	copy(cp, pillars)

	for i, p := range cp {
		if p.Maturity <= 0 {
			return nil, fmt.Errorf("%w: pillar %d has maturity %.6f", ErrPillarMaturity, i, p.Maturity)
		}
		if i > 0 && p.Maturity <= cp[i-1].Maturity {
			return nil, fmt.Errorf("%w: pillar %d", ErrPillarOrder, i)
		}
	}

	return &Zero{pillars: cp}, nil
}

// Discount implements Discounter.
func (z *Zero) Discount(maturity float64) float64 {
	if maturity <= 0 {
		return 1
	}

	first := z.pillars[0]
	if maturity <= first.Maturity {
		return math.Exp(-first.Rate * maturity)
	}

	last := z.pillars[len(z.pillars)-1]
	if maturity >= last.Maturity {
		return math.Exp(-last.Rate * maturity)
	}

	// Locate the bracketing pillars and interpolate log discount factors
	// linearly in maturity.
	for i := 1; i < len(z.pillars); i++ {
		lo, hi := z.pillars[i-1], z.pillars[i]
		if maturity > hi.Maturity {
			continue
		}
		logLo := -lo.Rate * lo.Maturity
		logHi := -hi.Rate * hi.Maturity
		w := (maturity - lo.Maturity) / (hi.Maturity - lo.Maturity)
		return math.Exp(logLo + w*(logHi-logLo))
	}

	// Unreachable: maturity < last pillar is always bracketed above.
	return math.Exp(-last.Rate * maturity)
}

// Ensure Zero implements Discounter
var _ Discounter = (*Zero)(nil)
