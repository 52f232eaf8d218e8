package sampleuv

import "math"

// neumaier accumulates a running sum with the compensated summation scheme
// of Neumaier (1974), a small extension of Kahan summation that also
// compensates when the running sum is smaller in magnitude than the next
// term. The two-sided Σhat/Σsqueeze comparison in the setup loop is exactly
// the case where this matters: squeeze area is frequently orders of
// magnitude smaller than hat area on early, coarse interval sets.
type neumaier[S scalar] struct {
	sum, c S
}

func (n *neumaier[S]) add(x S) {
	t := n.sum + x
	if abs(n.sum) >= abs(x) {
		n.c += (n.sum - t) + x
	} else {
		n.c += (x - t) + n.sum
	}
	n.sum = t
}

func (n neumaier[S]) total() S { return n.sum + n.c }

// evalDerivs evaluates f0, f1, f2 at x and returns the transformed values;
// callers only use it for finite endpoints.
func evalDerivs[S scalar](f0, f1, f2 Func[S], x, c S) (tx, t1x, t2x S) {
	return transformPoint(f0(x), f1(x), f2(x), c)
}

// buildInterval constructs and classifies a single interval [lx, rx] with
// transform parameter c, evaluating the density derivatives at whichever
// endpoints are finite.
func buildInterval[S scalar](f0, f1, f2 Func[S], lx, rx, c S) (Interval[S], error) {
	iv := Interval[S]{lx: lx, rx: rx, c: c}
	if !math.IsInf(float64(lx), -1) {
		iv.haveLeft = true
		iv.ltx, iv.lt1x, iv.lt2x = evalDerivs(f0, f1, f2, lx, c)
	}
	if !math.IsInf(float64(rx), 1) {
		iv.haveRight = true
		iv.rtx, iv.rt1x, iv.rt2x = evalDerivs(f0, f1, f2, rx, c)
	}
	if err := buildHatSqueeze(&iv); err != nil {
		return iv, err
	}
	return iv, nil
}

// splitInterval divides iv at its arcmean point into two new intervals,
// re-evaluating and re-classifying each half.
func splitInterval[S scalar](f0, f1, f2 Func[S], iv Interval[S]) (left, right Interval[S], err error) {
	m := arcmean(&iv)
	left, err = buildInterval(f0, f1, f2, iv.lx, m, iv.c)
	if err != nil {
		return left, right, err
	}
	right, err = buildInterval(f0, f1, f2, m, iv.rx, iv.c)
	if err != nil {
		return left, right, err
	}
	return left, right, nil
}

// setup runs the adaptive splitting loop: starting from the initial
// intervals induced by points and cs, intervals are repeatedly split at
// their arcmean point, preferring those whose hat/squeeze area gap exceeds
// the sweep average, until Σhat/Σsqueeze <= rho or a budget is exhausted.
//
// It returns the final interval list and reports, via the second return
// value, whether rho was actually achieved.
func setup[S scalar](f0, f1, f2 Func[S], points []S, cs []S, rho S, maxPoints, maxIterations int) ([]Interval[S], bool, error) {
	intervals := make([]Interval[S], len(cs))
	for i, c := range cs {
		iv, err := buildInterval(f0, f1, f2, points[i], points[i+1], c)
		if err != nil {
			return nil, false, err
		}
		intervals[i] = iv
	}

	achieved := false
	for iter := 0; iter < maxIterations; iter++ {
		var sumHat, sumSqueeze neumaier[S]
		for _, iv := range intervals {
			sumHat.add(iv.hatArea)
			sumSqueeze.add(iv.squeezeArea)
		}
		hatTotal := sumHat.total()
		squeezeTotal := sumSqueeze.total()

		if squeezeTotal > 0 && hatTotal <= rho*squeezeTotal {
			achieved = true
			break
		}
		if squeezeTotal == 0 && hatTotal == 0 {
			achieved = true
			break
		}
		if len(intervals) >= maxPoints {
			break
		}

		excess := hatTotal - squeezeTotal
		avg := S(math.Nextafter(float64(excess), math.Inf(-1))) / S(len(intervals))

		next := make([]Interval[S], 0, len(intervals)*2)
		splitBudget := maxPoints - len(intervals)
		for _, iv := range intervals {
			if splitBudget > 0 && iv.hatArea-iv.squeezeArea > avg {
				left, right, err := splitInterval(f0, f1, f2, iv)
				if err != nil {
					return nil, false, err
				}
				next = append(next, left, right)
				splitBudget--
			} else {
				next = append(next, iv)
			}
		}
		intervals = next
	}

	return intervals, achieved, nil
}
