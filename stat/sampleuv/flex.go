package sampleuv

import (
	"fmt"
	"math"
)

// Func is a scalar real-valued function, used for the log-density f0 and
// its first two derivatives f1, f2 supplied to NewFlex.
type Func[S scalar] func(S) S

// DomainError is returned by NewFlex when the supplied log-density,
// breakpoints or transform parameters are inconsistent: too few points, a
// non-finite interior breakpoint, an unbounded endpoint paired with a
// transform parameter that would make the tail non-integrable, or an
// interval whose transformed density does not match one of the eight
// supported shapes.
type DomainError struct {
	Msg string
}

func (e *DomainError) Error() string { return "sampleuv: " + e.Msg }

// NumericWarning reports that setup terminated at its iteration or
// breakpoint budget without reaching the requested efficiency rho. The
// sampler returned by NewFlex in this case is still a correct rejection
// sampler; it simply rejects more often than requested.
type NumericWarning struct {
	Rho      float64
	Achieved float64
}

func (e *NumericWarning) Error() string {
	return fmt.Sprintf("sampleuv: requested rho %.4g not reached, achieved %.4g", e.Rho, e.Achieved)
}

// RuntimeInvariantError describes an invariant violation discovered during
// sampling, such as the density exceeding its hat at a drawn point by more
// than floating point rounding can explain. It is never returned to the
// caller of Sample; if a Logger option was supplied it is passed there, and
// sampling continues by rejecting the offending draw and retrying.
type RuntimeInvariantError struct {
	Msg string
	X   float64
}

func (e *RuntimeInvariantError) Error() string {
	return fmt.Sprintf("sampleuv: %s at x=%g", e.Msg, e.X)
}

// flexConfig holds the options configurable via FlexOption.
type flexConfig[S scalar] struct {
	maxPoints     int
	maxIterations int
	logger        func(string, ...any)
}

// FlexOption configures a Flex sampler at construction.
type FlexOption[S scalar] func(*flexConfig[S])

// MaxPoints bounds the number of intervals setup may create while splitting
// toward the requested efficiency. The default is 1000.
func MaxPoints[S scalar](n int) FlexOption[S] {
	return func(c *flexConfig[S]) { c.maxPoints = n }
}

// MaxIterations bounds the number of splitting sweeps setup performs. The
// default is 100.
func MaxIterations[S scalar](n int) FlexOption[S] {
	return func(c *flexConfig[S]) { c.maxIterations = n }
}

// Logger installs a callback used to report RuntimeInvariantError and
// NumericWarning conditions. If unset, a NumericWarning is still recorded
// on the Flex value and returned by Warning, while a RuntimeInvariantError
// is not reported at all.
func Logger[S scalar](f func(string, ...any)) FlexOption[S] {
	return func(c *flexConfig[S]) { c.logger = f }
}

// Flex is a sampler for a univariate density known up to normalization,
// built by transformed density rejection with inflection points (Botts,
// Hörmann & Leydold, 2013). The density is specified as its natural
// logarithm f0 plus the first two derivatives f1, f2, piecewise transformed
// by a T_c family member on each of a set of user-supplied breakpoints.
//
// A *Flex is immutable once constructed by NewFlex and is safe for
// concurrent use by multiple goroutines, each with its own Source.
type Flex[S scalar] struct {
	f0, f1, f2 Func[S]

	intervals []Interval[S]
	disc      discreteSampler[S]

	warning error
	logger  func(string, ...any)
}

// NewFlex constructs a sampler for the density whose natural log is f0,
// with first and second derivatives f1 and f2. points lists the interior
// and exterior breakpoints of the piecewise transform in increasing order
// (len(points) == len(cs)+1); points[0] and points[len(points)-1] may be
// -Inf and +Inf respectively. cs[i] is the transform parameter used on
// [points[i], points[i+1]]. rho is the target ratio of total hat area to
// total squeeze area; setup splits intervals until it is reached or a
// budget from MaxPoints/MaxIterations is exhausted, in which case the
// returned sampler is valid but a NumericWarning is recorded and can be
// retrieved with Warning.
func NewFlex[S scalar](f0, f1, f2 Func[S], points []S, cs []S, rho S, opts ...FlexOption[S]) (*Flex[S], error) {
	if len(points) < 2 {
		return nil, &DomainError{Msg: "at least two breakpoints are required"}
	}
	if len(cs) != len(points)-1 {
		return nil, &DomainError{Msg: "len(cs) must equal len(points)-1"}
	}
	if rho <= 1 {
		return nil, &DomainError{Msg: "rho must be greater than 1"}
	}
	for i := 1; i < len(points)-1; i++ {
		if math.IsInf(float64(points[i]), 0) || math.IsNaN(float64(points[i])) {
			return nil, &DomainError{Msg: "interior breakpoints must be finite"}
		}
	}
	for i := 0; i < len(points)-1; i++ {
		if points[i] >= points[i+1] {
			return nil, &DomainError{Msg: "breakpoints must be strictly increasing"}
		}
	}
	if math.IsInf(float64(points[0]), -1) && cs[0] <= -1 {
		return nil, &DomainError{Msg: "an unbounded left tail requires c > -1 on its interval"}
	}
	if n := len(points); math.IsInf(float64(points[n-1]), 1) && cs[n-2] <= -1 {
		return nil, &DomainError{Msg: "an unbounded right tail requires c > -1 on its interval"}
	}

	cfg := flexConfig[S]{maxPoints: 1000, maxIterations: 100}
	for _, opt := range opts {
		opt(&cfg)
	}

	intervals, achieved, err := setup(f0, f1, f2, points, cs, rho, cfg.maxPoints, cfg.maxIterations)
	if err != nil {
		return nil, err
	}

	areas := make([]S, len(intervals))
	for i, iv := range intervals {
		areas[i] = iv.hatArea
	}

	fl := &Flex[S]{
		f0:        f0,
		f1:        f1,
		f2:        f2,
		intervals: intervals,
		disc:      newDiscreteSampler(areas),
		logger:    cfg.logger,
	}

	if !achieved {
		var sumHat, sumSqueeze neumaier[S]
		for _, iv := range intervals {
			sumHat.add(iv.hatArea)
			sumSqueeze.add(iv.squeezeArea)
		}
		achievedRho := float64(sumHat.total())
		if sq := float64(sumSqueeze.total()); sq > 0 {
			achievedRho /= sq
		} else {
			achievedRho = math.Inf(1)
		}
		fl.warning = &NumericWarning{Rho: float64(rho), Achieved: achievedRho}
		if cfg.logger != nil {
			cfg.logger("sampleuv: flex setup did not reach requested rho: %v", fl.warning)
		}
	}

	return fl, nil
}

// Warning returns the NumericWarning recorded during construction, or nil
// if the requested efficiency was achieved.
func (f *Flex[S]) Warning() error { return f.warning }

// Intervals returns a read-only snapshot of the hat/squeeze decomposition
// computed by NewFlex.
func (f *Flex[S]) Intervals() []FlexInterval[S] {
	out := make([]FlexInterval[S], len(f.intervals))
	for i, iv := range f.intervals {
		out[i] = iv.export()
	}
	return out
}

// Sample draws one variate from the target density using rng as the source
// of uniform randomness.
func (f *Flex[S]) Sample(rng Source[S]) S {
	for {
		u1 := rng.Uniform()
		idx, target := f.disc.draw(u1)
		iv := &f.intervals[idx]

		var lo S
		if idx > 0 {
			lo = f.disc.cum[idx-1]
		}
		hi := f.disc.cum[idx]
		p := S(1)
		if hi > lo {
			p = (target - lo) / (hi - lo)
		}

		x := invertHat(iv, p)
		hatVal := inverseTransform(iv.hat.Evaluate(x), iv.c)

		u2 := rng.Uniform()
		if iv.squeeze.validSqueeze() {
			sqVal := inverseTransform(iv.squeeze.Evaluate(x), iv.c)
			if u2*hatVal <= sqVal {
				return x
			}
		}

		dens := S(math.Exp(float64(f.f0(x))))
		if dens > hatVal*(1+1e-9) {
			f.reportInvariant(x, dens, hatVal)
			continue
		}
		if u2*hatVal <= dens {
			return x
		}
		// Rejected: loop and draw again.
	}
}

func (f *Flex[S]) reportInvariant(x, dens, hatVal S) {
	err := &RuntimeInvariantError{Msg: "density exceeds hat", X: float64(x)}
	if f.logger != nil {
		f.logger("sampleuv: %v (density %g, hat %g)", err, float64(dens), float64(hatVal))
	}
}

// invertHat returns the x in [iv.lx, iv.rx] such that the hat's cumulative
// integral from iv.lx to x equals p times the interval's total hat area.
func invertHat[S scalar](iv *Interval[S], p S) S {
	slope := iv.hat.Slope
	if math.Abs(float64(slope)) < slopeEps {
		width := iv.rx - iv.lx
		return iv.lx + p*width
	}

	var anchor S
	if iv.haveLeft {
		anchor = antiderivative(iv.hat.Evaluate(iv.lx), iv.c)
	}
	z := anchor + p*iv.hatArea*slope
	y := inverseAntiderivative(z, iv.c)
	return iv.hat.Inverse(y)
}
