// Package payoff defines terminal payoff functions over a single scalar
// state variable.
package payoff

import "math"

// Payoff kind constants
const (
	KindCall    = "CALL"
	KindPut     = "PUT"
	KindDigital = "DIGITAL"
	KindForward = "FORWARD"
)

// Function maps an option state variable to the amount paid at expiry.
// Implementations must be pure and total for finite input.
type Function func(x float64) float64

// Call pays max(x - strike, 0).
func Call(strike float64) Function {
	return func(x float64) float64 {
		return math.Max(x-strike, 0)
	}
}

// Put pays max(strike - x, 0).
func Put(strike float64) Function {
	return func(x float64) float64 {
		return math.Max(strike-x, 0)
	}
}

// Digital pays a fixed amount when the state variable finishes strictly
// above the strike, zero otherwise.
func Digital(strike, amount float64) Function {
	return func(x float64) float64 {
		if x > strike {
			return amount
		}
		return 0
	}
}

// Forward pays x - strike, which may be negative.
func Forward(strike float64) Function {
	return func(x float64) float64 {
		return x - strike
	}
}
