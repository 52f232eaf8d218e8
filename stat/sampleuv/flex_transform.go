package sampleuv

import "math"

// transform applies the T_c transformation family to x:
//
//	T_0(x)   = log(x)
//	T_c(x)   = sign(c) * x^c   for c != 0
//
// x is expected to be a density value (or a value produced by inverse) and
// is therefore always non-negative; the sign(c) factor is what keeps T_c
// monotonically increasing for negative c.
func transform[S scalar](x S, c S) S {
	if c == 0 {
		return S(math.Log(float64(x)))
	}
	v := S(math.Pow(float64(x), float64(c)))
	if c < 0 {
		return -v
	}
	return v
}

// inverseTransform is the functional inverse of transform, T_c^{-1}.
func inverseTransform[S scalar](y S, c S) S {
	switch {
	case c == 0:
		return S(math.Exp(float64(y)))
	case c == 1:
		return y
	case c == -1:
		return -1 / y
	default:
		return S(math.Pow(math.Abs(float64(y)), 1/float64(c)))
	}
}

// antiderivative returns an antiderivative, with respect to y, of
// inverseTransform(y, c). It is only evaluated at points where sign(c)*y >= 0,
// the branch on which inverseTransform(y, c) has the expected sign.
func antiderivative[S scalar](y S, c S) S {
	switch {
	case c == 0:
		return S(math.Exp(float64(y)))
	case c == -1:
		return S(-math.Log(math.Abs(float64(y))))
	default:
		fc := float64(c)
		fy := float64(y)
		sign := 1.0
		if fc < 0 {
			sign = -1
		}
		return S(sign * fc / (fc + 1) * math.Pow(math.Abs(fy), (fc+1)/fc))
	}
}

// inverseAntiderivative is the functional inverse of antiderivative, used to
// invert the hat's cumulative distribution in closed form during sampling.
func inverseAntiderivative[S scalar](z S, c S) S {
	switch {
	case c == 0:
		return S(math.Log(float64(z)))
	case c == -1:
		return S(-math.Exp(-float64(z)))
	default:
		fc := float64(c)
		fz := float64(z)
		sign := 1.0
		if fc < 0 {
			sign = -1
		}
		base := fz * (fc + 1) / math.Abs(fc)
		v := math.Pow(base, fc/(fc+1))
		return S(sign * v)
	}
}

// transformPoint evaluates the transformed density and its first two
// derivatives at a point, given the untransformed log-density value and
// derivatives f0(x), f1(x), f2(x).
//
//	c == 0: the transformed space is the log-density itself, values pass
//	        through unchanged.
//	c != 0: let t = exp(f0(x)) be the density; then
//	        T_c(t)   = sign(c) * t^c
//	        T_c(t)'  = c * sign(c) * t^c * f1(x)
//	        T_c(t)'' = c * sign(c) * t^c * (c*f1(x)^2 + f2(x))
func transformPoint[S scalar](f0, f1, f2 S, c S) (tx, t1x, t2x S) {
	if c == 0 {
		return f0, f1, f2
	}
	t := S(math.Exp(float64(f0)))
	tc := S(math.Pow(float64(t), float64(c)))
	sign := S(1)
	if c < 0 {
		sign = -1
	}
	tx = sign * tc
	t1x = c * sign * tc * f1
	t2x = c * sign * tc * (c*f1*f1 + f2)
	return tx, t1x, t2x
}
