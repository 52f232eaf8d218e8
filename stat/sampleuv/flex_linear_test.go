package sampleuv

import "testing"

func TestLinearFunEvaluateInverse(t *testing.T) {
	l := newLinearFun(2.0, 3.0, 5.0) // y = 5 + 2*(x-3)
	for _, x := range []float64{-10, 0, 3, 7.5, 100} {
		y := l.Evaluate(x)
		got := l.Inverse(y)
		if diff := got - x; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("Inverse(Evaluate(%v)) = %v, want %v", x, got, x)
		}
	}
}

func TestSecantAnchor(t *testing.T) {
	s := secant(0.0, 1.0, 5.0, 2.0) // yl > yr, pivot should be xl
	if s.Pivot != 0 {
		t.Errorf("secant pivot = %v, want 0 (anchored at larger y)", s.Pivot)
	}
	s2 := secant(0.0, 1.0, 2.0, 5.0) // yr > yl, pivot should be xr
	if s2.Pivot != 1 {
		t.Errorf("secant pivot = %v, want 1 (anchored at larger y)", s2.Pivot)
	}
}

func TestLinearFunFloat32(t *testing.T) {
	l := newLinearFun[float32](1.5, -2, 4)
	y := l.Evaluate(1)
	if got := l.Inverse(y); got < 0.999 || got > 1.001 {
		t.Errorf("Inverse(Evaluate(1)) = %v, want ~1", got)
	}
}
