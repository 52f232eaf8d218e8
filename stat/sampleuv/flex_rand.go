package sampleuv

import "math/rand/v2"

// Source is the uniform random number generator contract required by
// Flex.Sample. It is satisfied by an adapter over *rand.Rand (see
// NewSource) or over any other generator producing uniform variates in
// [0, 1), such as mathext/prng.MT19937 wrapped in rand.New.
type Source[S scalar] interface {
	Uniform() S
}

// randSource adapts a *rand.Rand to Source[S].
type randSource[S scalar] struct {
	rnd *rand.Rand
}

// NewSource wraps rnd as a Source[S]. rnd may be built over any
// rand.Source, including mathext/prng.MT19937 for reproducible streams
// seeded with a fixed value.
func NewSource[S scalar](rnd *rand.Rand) Source[S] {
	return randSource[S]{rnd: rnd}
}

func (r randSource[S]) Uniform() S {
	return S(r.rnd.Float64())
}
