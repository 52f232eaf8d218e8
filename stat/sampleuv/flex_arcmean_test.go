package sampleuv

import (
	"math"
	"testing"
)

func TestArcmeanBoundedInterior(t *testing.T) {
	iv := Interval[float64]{
		lx: 0, rx: 2,
		haveLeft: true, haveRight: true,
		lt1x: 2, rt1x: -2,
	}
	m := arcmean(&iv)
	if m <= iv.lx || m >= iv.rx {
		t.Fatalf("arcmean = %v, want strictly inside (%v, %v)", m, iv.lx, iv.rx)
	}
	// Symmetric slopes around the midpoint should land on the midpoint.
	if got, want := m, 1.0; got < want-1e-9 || got > want+1e-9 {
		t.Errorf("arcmean = %v, want %v", got, want)
	}
}

func TestArcmeanEqualSlopesFallsBackToMidpoint(t *testing.T) {
	iv := Interval[float64]{
		lx: 0, rx: 4,
		haveLeft: true, haveRight: true,
		lt1x: 1, rt1x: 1,
	}
	if got, want := arcmean(&iv), 2.0; got != want {
		t.Errorf("arcmean = %v, want %v", got, want)
	}
}

func TestArcmeanUnboundedLeft(t *testing.T) {
	iv := Interval[float64]{
		lx: math.Inf(-1), rx: 5,
		haveLeft: false, haveRight: true,
	}
	m := arcmean(&iv)
	if m >= iv.rx {
		t.Errorf("arcmean = %v, want something left of %v", m, iv.rx)
	}
}
