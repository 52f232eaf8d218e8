package sampleuv

import (
	"sort"

	"github.com/flexhat/flex/floats"
)

// discreteSampler draws an interval index with probability proportional to
// its hat area, via inversion over the cumulative sum of areas.
type discreteSampler[S scalar] struct {
	cum   []S
	total S
}

func newDiscreteSampler[S scalar](areas []S) discreteSampler[S] {
	cum := cumSum(areas)
	total := S(0)
	if len(cum) > 0 {
		total = cum[len(cum)-1]
	}
	return discreteSampler[S]{cum: cum, total: total}
}

// cumSum returns the cumulative sum of areas. When S is float64 this
// delegates to floats.CumSum so the well-tested, panic-on-mismatch
// implementation in the floats package does the summation; for other
// instantiations of S a local, identically-structured loop is used since
// floats.CumSum only operates on []float64.
func cumSum[S scalar](areas []S) []S {
	if v, ok := any(areas).([]float64); ok {
		dst := make([]float64, len(v))
		floats.CumSum(dst, v)
		return any(dst).([]S)
	}
	dst := make([]S, len(areas))
	var run S
	for i, a := range areas {
		run += a
		dst[i] = run
	}
	return dst
}

// draw returns the index of the interval selected by the uniform variate u
// in [0, 1), and the residual target value within that interval's
// cumulative area (used by Flex.Sample to invert the hat without drawing a
// second uniform).
func (d discreteSampler[S]) draw(u S) (idx int, target S) {
	target = u * d.total
	idx = sort.Search(len(d.cum), func(i int) bool {
		return d.cum[i] > target
	})
	if idx >= len(d.cum) {
		idx = len(d.cum) - 1
	}
	return idx, target
}
