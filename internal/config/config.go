// Package config loads and validates YAML pricing books. A book names the
// underlying process, the discount curve, the run parameters, and the set
// of contracts to price in one batch.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"option-pricing-lab/internal/contract"
	"option-pricing-lab/internal/curve"
	"option-pricing-lab/internal/process"
)

// Validation errors
var (
	ErrNoSpot          = errors.New("process.spot must be positive")
	ErrNoVolatility    = errors.New("process.volatility must be non-negative")
	ErrNoCurve         = errors.New("curve needs either rate or pillars, not both")
	ErrNoPaths         = errors.New("run.paths must be positive")
	ErrNoContracts     = errors.New("book has no contracts")
	ErrUnnamedContract = errors.New("contract is missing a name")
	ErrDuplicateName   = errors.New("duplicate contract name")
	ErrNegativeWorkers = errors.New("run.workers must be non-negative")
)

// Book is the top-level YAML document.
type Book struct {
	Process   ProcessConfig    `yaml:"process"`
	Curve     CurveConfig      `yaml:"curve"`
	Run       RunConfig        `yaml:"run"`
	Contracts []ContractConfig `yaml:"contracts"`
}

// ProcessConfig describes the geometric Brownian motion underlying.
type ProcessConfig struct {
	Spot       float64 `yaml:"spot"`
	Drift      float64 `yaml:"drift"`
	Volatility float64 `yaml:"volatility"`
}

// CurveConfig is either a flat rate or a set of zero pillars. Exactly one
// form must be present.
type CurveConfig struct {
	Rate    *float64       `yaml:"rate,omitempty"`
	Pillars []PillarConfig `yaml:"pillars,omitempty"`
}

// PillarConfig is one maturity/rate point on a zero curve.
type PillarConfig struct {
	Maturity float64 `yaml:"maturity"`
	Rate     float64 `yaml:"rate"`
}

// RunConfig holds the Monte-Carlo run parameters.
type RunConfig struct {
	Paths   int    `yaml:"paths"`
	Seed    uint64 `yaml:"seed"`
	Workers int    `yaml:"workers"`
}

// ContractConfig describes one contract in the book.
type ContractConfig struct {
	Name          string         `yaml:"name"`
	Kind          string         `yaml:"kind"`
	Payoff        string         `yaml:"payoff"`
	Strike        float64        `yaml:"strike"`
	DigitalAmount *float64       `yaml:"digital_amount,omitempty"`
	Expiry        float64        `yaml:"expiry"`
	Fixings       []float64      `yaml:"fixings"`
	Barrier       *BarrierConfig `yaml:"barrier,omitempty"`
}

// BarrierConfig is the optional barrier block on a contract.
type BarrierConfig struct {
	Variant string  `yaml:"variant"`
	Level   float64 `yaml:"level"`
}

// Load reads and validates a book from a YAML file.
func Load(path string) (*Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var book Book
	if err := yaml.Unmarshal(data, &book); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := book.Validate(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}
	return &book, nil
}

// Validate checks structural constraints the contract factory cannot see.
// Contract-level parameters are validated again when the book is built.
func (b *Book) Validate() error {
	if b.Process.Spot <= 0 {
		return ErrNoSpot
	}
	if b.Process.Volatility < 0 {
		return ErrNoVolatility
	}
	if (b.Curve.Rate == nil) == (len(b.Curve.Pillars) == 0) {
		return ErrNoCurve
	}
	if b.Run.Paths <= 0 {
		return ErrNoPaths
	}
	if b.Run.Workers < 0 {
		return ErrNegativeWorkers
	}
	if len(b.Contracts) == 0 {
		return ErrNoContracts
	}

	seen := make(map[string]struct{}, len(b.Contracts))
	for i, c := range b.Contracts {
		if c.Name == "" {
			return fmt.Errorf("%w: contract %d", ErrUnnamedContract, i)
		}
		if _, dup := seen[c.Name]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateName, c.Name)
		}
		seen[c.Name] = struct{}{}
	}
	return nil
}

// BuildProcess constructs the underlying process from the book.
func (b *Book) BuildProcess() *process.Process {
	return process.New(b.Process.Spot, process.GBM{
		Drift:      b.Process.Drift,
		Volatility: b.Process.Volatility,
	})
}

// BuildCurve constructs the discount curve from the book.
func (b *Book) BuildCurve() (curve.Discounter, error) {
	if b.Curve.Rate != nil {
		return curve.Flat{Rate: *b.Curve.Rate}, nil
	}
	pillars := make([]curve.Pillar, len(b.Curve.Pillars))
	for i, p := range b.Curve.Pillars {
		pillars[i] = curve.Pillar{Maturity: p.Maturity, Rate: p.Rate}
	}
	return curve.NewZero(pillars)
}

// BuildContracts constructs one recorder per contract, in book order.
func (b *Book) BuildContracts() ([]*contract.Recorder, error) {
	recs := make([]*contract.Recorder, 0, len(b.Contracts))
	for _, c := range b.Contracts {
		cfg := contract.Config{
			Kind:          c.Kind,
			Payoff:        c.Payoff,
			Strike:        c.Strike,
			DigitalAmount: c.DigitalAmount,
			Spot:          b.Process.Spot,
			Expiry:        c.Expiry,
			Fixings:       c.Fixings,
		}
		if c.Barrier != nil {
			cfg.Barrier = &contract.BarrierSpec{
				Variant: contract.Variant(c.Barrier.Variant),
				Level:   c.Barrier.Level,
			}
		}
		rec, err := contract.FromConfig(cfg)
		if err != nil {
			return nil, fmt.Errorf("contract %s: %w", c.Name, err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
