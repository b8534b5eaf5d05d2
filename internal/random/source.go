// Package random supplies standard-normal draws for path simulation.
package random

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Source produces independent standard-normal draws, one per simulated time
// step. Sources are not safe for concurrent use; give each worker its own.
type Source interface {
	Next() float64
}

// Normal draws from a seeded standard normal distribution. The same seed
// reproduces the same draw sequence.
type Normal struct {
	dist distuv.Normal
}

// NewNormal creates a seeded normal source.
func NewNormal(seed uint64) *Normal {
	return &Normal{
		dist: distuv.Normal{
			Mu:    0,
			Sigma: 1,
			Src:   rand.NewSource(seed),
		},
	}
}

// Next implements Source.
func (n *Normal) Next() float64 {
	return n.dist.Rand()
}

// Fixed replays a predetermined draw sequence. It exists for deterministic
// tests; exhausting it is test misuse and panics.
type Fixed struct {
	draws []float64
	next  int
}

// NewFixed creates a source replaying the given draws in order.
func NewFixed(draws ...float64) *Fixed {
	cp := make([]float64, len(draws))
	copy(cp, draws)
	return &Fixed{draws: cp}
}

// Next implements Source.
func (f *Fixed) Next() float64 {
	if f.next >= len(f.draws) {
		panic("random: fixed source exhausted")
	}
	z := f.draws[f.next]
	f.next++
	return z
}

// Remaining returns how many draws are left.
func (f *Fixed) Remaining() int {
	return len(f.draws) - f.next
}

// Ensure implementations satisfy Source
var (
	_ Source = (*Normal)(nil)
	_ Source = (*Fixed)(nil)
)
