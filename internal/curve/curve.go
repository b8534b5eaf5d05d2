// Package curve provides yield-curve discounting for pricing.
package curve

import "math"

// Discounter converts a cash amount paid at maturity into present value.
type Discounter interface {
	// Discount returns the discount factor for a maturity in years.
	Discount(maturity float64) float64
}

// Flat discounts every maturity at a single continuously compounded rate.
type Flat struct {
	Rate float64
}

// Discount implements Discounter.
func (f Flat) Discount(maturity float64) float64 {
	if maturity <= 0 {
		return 1
	}
	return math.Exp(-f.Rate * maturity)
}

// Ensure Flat implements Discounter
var _ Discounter = Flat{}
