package process

import (
	"fmt"
	"math"
)

// GBM evolves a value under geometric Brownian motion:
//
//	next = value * exp((drift - 0.5*vol^2)*dt + vol*sqrt(dt)*z)
//
// For risk-neutral pricing the drift is the risk-free rate.
type GBM struct {
	Drift      float64
	Volatility float64
}

// Evolve implements Evolver. A zero increment returns the value unchanged.
func (g GBM) Evolve(value, dt, z float64) float64 {
	exponent := (g.Drift-0.5*g.Volatility*g.Volatility)*dt + g.Volatility*math.Sqrt(dt)*z
	return value * math.Exp(exponent)
}

// Name returns the process identifier including parameters.
func (g GBM) Name() string {
	return fmt.Sprintf("GBM_mu%.4f_sigma%.4f", g.Drift, g.Volatility)
}

// Ensure GBM implements Evolver
var _ Evolver = GBM{}
