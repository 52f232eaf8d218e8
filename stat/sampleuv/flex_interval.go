package sampleuv

import "math"

// FuncType classifies the local shape of a transformed density on an
// interval, following the eight cases of transformed density rejection with
// inflection points. The letter distinguishes a concave-dominant variant
// (hat is a tangent, squeeze is a secant) from a convex-dominant one (the
// reverse).
type FuncType int

const (
	// TypeUndefined marks an interval whose transformed density does not
	// match any of the eight supported shapes; NewFlex reports this as a
	// DomainError.
	TypeUndefined FuncType = iota
	T1a
	T1b
	T2a
	T2b
	T3a
	T3b
	T4a
	T4b
)

// Interval is the internal, fully-populated representation of one piece of
// the domain: the transformed density and its derivatives at both
// endpoints, the resulting hat and squeeze, and their areas. FlexInterval is
// the trimmed, exported counterpart returned by Flex.Intervals.
type Interval[S scalar] struct {
	lx, rx S
	c      S

	haveLeft, haveRight       bool
	ltx, lt1x, lt2x           S
	rtx, rt1x, rt2x           S

	typ FuncType

	hat, squeeze         LinearFun[S]
	hatArea, squeezeArea S
}

// FlexInterval is the read-only, exported view of one interval of the
// piecewise hat/squeeze decomposition.
type FlexInterval[S scalar] struct {
	Left, Right          S
	C                    S
	Type                 FuncType
	Hat, Squeeze         LinearFun[S]
	HatArea, SqueezeArea S
}

func (iv Interval[S]) export() FlexInterval[S] {
	return FlexInterval[S]{
		Left:        iv.lx,
		Right:       iv.rx,
		C:           iv.c,
		Type:        iv.typ,
		Hat:         iv.hat,
		Squeeze:     iv.squeeze,
		HatArea:     iv.hatArea,
		SqueezeArea: iv.squeezeArea,
	}
}

// classify determines the shape tag of the interval from the signs of the
// transformed derivatives at its endpoints, following the case analysis in
// Botts, Hörmann & Leydold (2013).
func classify[S scalar](iv *Interval[S]) FuncType {
	leftInf := math.IsInf(float64(iv.lx), -1)
	rightInf := math.IsInf(float64(iv.rx), 1)

	switch {
	case leftInf && rightInf:
		return TypeUndefined
	case leftInf:
		if iv.rt2x < 0 && iv.rt1x > 0 {
			return T4a
		}
		return TypeUndefined
	case rightInf:
		if iv.lt2x < 0 && iv.lt1x < 0 {
			return T4a
		}
		return TypeUndefined
	}

	// Boundary cases: the transformed density vanishes at one endpoint
	// (which happens for c > 0 transforms where the density itself is
	// zero at that endpoint).
	if iv.ltx == 0 && iv.rt2x > 0 {
		return T4b
	}
	if iv.rtx == 0 && iv.lt2x > 0 {
		return T4b
	}

	R := (iv.rtx - iv.ltx) / (iv.rx - iv.lx)
	switch {
	case iv.lt1x >= R && iv.rt1x >= R:
		return T1a
	case iv.lt1x <= R && iv.rt1x <= R:
		return T1b
	case iv.lt2x <= 0 && iv.rt2x <= 0:
		return T4a
	case iv.lt2x >= 0 && iv.rt2x >= 0:
		return T4b
	case iv.lt1x >= R && R >= iv.rt1x:
		// Derivative decreases across the interval: concave region
		// borders one of the two endpoints. Use the sign of the second
		// derivative at each end to say which.
		if iv.lt2x <= 0 {
			return T2a
		}
		return T3b
	case iv.lt1x <= R && R <= iv.rt1x:
		if iv.rt2x <= 0 {
			return T3a
		}
		return T2b
	default:
		return TypeUndefined
	}
}

// buildHatSqueeze populates iv.typ, iv.hat, iv.squeeze, iv.hatArea and
// iv.squeezeArea from the endpoint derivatives already stored in iv.
func buildHatSqueeze[S scalar](iv *Interval[S]) error {
	typ := classify(iv)
	if typ == TypeUndefined {
		return &DomainError{Msg: "transformed density does not match a supported shape on this interval"}
	}
	iv.typ = typ

	leftInf := !iv.haveLeft
	rightInf := !iv.haveRight

	var leftTangent, rightTangent LinearFun[S]
	if !leftInf {
		leftTangent = tangent(iv.lx, iv.ltx, iv.lt1x)
	}
	if !rightInf {
		rightTangent = tangent(iv.rx, iv.rtx, iv.rt1x)
	}

	haveSecant := !leftInf && !rightInf
	var sec LinearFun[S]
	if haveSecant {
		sec = secant(iv.lx, iv.rx, iv.ltx, iv.rtx)
	}

	nanSqueeze := LinearFun[S]{Slope: S(math.NaN())}

	concave := typ == T1a || typ == T2a || typ == T3a || typ == T4a

	if concave {
		iv.hat = chooseConcaveTangent(typ, iv, leftTangent, rightTangent, leftInf, rightInf)
		if haveSecant {
			iv.squeeze = sec
		} else {
			iv.squeeze = nanSqueeze
		}
	} else {
		// Convex variants never arise with an unbounded endpoint: classify
		// only ever returns T4a there, never T4b.
		iv.hat = sec
		iv.squeeze = chooseConvexTangent(typ, iv, leftTangent, rightTangent)
	}

	iv.hatArea = area(iv.hat, iv.c, iv.lx, iv.rx)
	if iv.squeeze.validSqueeze() {
		iv.squeezeArea = area(iv.squeeze, iv.c, iv.lx, iv.rx)
	} else {
		iv.squeezeArea = 0
	}

	if math.IsNaN(float64(iv.hatArea)) || iv.hatArea < 0 {
		return &RuntimeInvariantError{Msg: "hat area is negative or NaN"}
	}
	if math.IsNaN(float64(iv.squeezeArea)) || iv.squeezeArea < 0 {
		iv.squeezeArea = 0
	}
	return nil
}

// chooseConcaveTangent picks which endpoint's tangent line serves as the
// hat for a concave-dominant interval (T1a/T2a/T3a/T4a).
func chooseConcaveTangent[S scalar](typ FuncType, iv *Interval[S], lt, rt LinearFun[S], leftInf, rightInf bool) LinearFun[S] {
	if leftInf {
		return rt
	}
	if rightInf {
		return lt
	}
	switch typ {
	case T2a:
		// Concavity borders the left endpoint.
		return lt
	case T3a:
		// Concavity borders the right endpoint.
		return rt
	default:
		R := (iv.rtx - iv.ltx) / (iv.rx - iv.lx)
		if abs(iv.lt1x-R) <= abs(iv.rt1x-R) {
			return lt
		}
		return rt
	}
}

// chooseConvexTangent picks which endpoint's tangent line serves as the
// squeeze for a convex-dominant interval (T1b/T2b/T3b/T4b). Both endpoints
// are always finite here.
func chooseConvexTangent[S scalar](typ FuncType, iv *Interval[S], lt, rt LinearFun[S]) LinearFun[S] {
	switch typ {
	case T2b:
		return rt
	case T3b:
		return lt
	default:
		R := (iv.rtx - iv.ltx) / (iv.rx - iv.lx)
		if abs(iv.lt1x-R) <= abs(iv.rt1x-R) {
			return lt
		}
		return rt
	}
}

func abs[S scalar](x S) S {
	if x < 0 {
		return -x
	}
	return x
}

// area computes ∫_lx^rx T_c^{-1}(l(x)) dx for the linear function l over
// [lx, rx], using the closed-form antiderivative of T_c^{-1} and falling
// back to a first-order (constant-density) approximation when l is so
// nearly flat that dividing by its slope would lose precision.
//
// When one endpoint is infinite (only ever the case for the hat of a T4a
// interval, validated at construction to have c > -1), the antiderivative
// at that endpoint is taken to be its limit of 0, which is what makes the
// tail integrable in the first place.
const slopeEps = 1e-12

func area[S scalar](l LinearFun[S], c, lx, rx S) S {
	leftInf := math.IsInf(float64(lx), -1)
	rightInf := math.IsInf(float64(rx), 1)
	slope := l.Slope

	switch {
	case leftInf && rightInf:
		return S(math.Inf(1))
	case leftInf:
		return antiderivative(l.Evaluate(rx), c) / slope
	case rightInf:
		return -antiderivative(l.Evaluate(lx), c) / slope
	}

	width := rx - lx
	if math.Abs(float64(slope)) < slopeEps {
		mid := l.Evaluate(lx + width/2)
		return inverseTransform(mid, c) * width
	}
	ylx := l.Evaluate(lx)
	yrx := l.Evaluate(rx)
	return (antiderivative(yrx, c) - antiderivative(ylx, c)) / slope
}
