package contract

import (
	"errors"

	"option-pricing-lab/internal/payoff"
)

// Factory errors
var (
	ErrUnknownKind           = errors.New("unknown contract kind")
	ErrUnknownPayoff         = errors.New("unknown payoff kind")
	ErrUnknownBarrierVariant = errors.New("unknown barrier variant")
	ErrMissingDigitalAmount  = errors.New("DIGITAL payoff requires DigitalAmount")
	ErrInvalidBarrierLevel   = errors.New("barrier level must be positive")
)

// BarrierSpec configures an optional barrier wrapper.
type BarrierSpec struct {
	Variant Variant
	Level   float64
}

// Config describes one contract to build.
type Config struct {
	Kind          string // ASIAN | LOOKBACK_MAX | LOOKBACK_MIN | TERMINAL
	Payoff        string // CALL | PUT | DIGITAL | FORWARD
	Strike        float64
	DigitalAmount *float64 // required for DIGITAL

	Spot    float64
	Expiry  float64
	Fixings []float64

	Barrier *BarrierSpec
}

// FromConfig builds a Recorder from a contract description. Validates
// required parameters and returns clear errors for missing or unknown
// fields.
func FromConfig(cfg Config) (*Recorder, error) {
	terms, err := termsFor(cfg.Kind)
	if err != nil {
		return nil, err
	}

	if cfg.Barrier != nil {
		if cfg.Barrier.Level <= 0 {
			return nil, ErrInvalidBarrierLevel
		}
		switch cfg.Barrier.Variant {
		case UpAndOut, DownAndOut, UpAndIn, DownAndIn:
		default:
			return nil, ErrUnknownBarrierVariant
		}
		terms = Barrier{Level: cfg.Barrier.Level, Variant: cfg.Barrier.Variant, Inner: terms}
	}

	fn, err := payoffFor(cfg)
	if err != nil {
		return nil, err
	}

	return NewRecorder(cfg.Spot, cfg.Expiry, fn, cfg.Fixings, terms)
}

func termsFor(kind string) (Terms, error) {
	switch kind {
	case KindAsian:
		return Asian{}, nil
	case KindLookbackMax:
		return LookbackMax{}, nil
	case KindLookbackMin:
		return LookbackMin{}, nil
	case KindTerminal:
		return Terminal{}, nil
	default:
		return nil, ErrUnknownKind
	}
}

func payoffFor(cfg Config) (payoff.Function, error) {
	switch cfg.Payoff {
	case payoff.KindCall:
		return payoff.Call(cfg.Strike), nil
	case payoff.KindPut:
		return payoff.Put(cfg.Strike), nil
	case payoff.KindDigital:
		if cfg.DigitalAmount == nil {
			return nil, ErrMissingDigitalAmount
		}
		return payoff.Digital(cfg.Strike, *cfg.DigitalAmount), nil
	case payoff.KindForward:
		return payoff.Forward(cfg.Strike), nil
	default:
		return nil, ErrUnknownPayoff
	}
}
