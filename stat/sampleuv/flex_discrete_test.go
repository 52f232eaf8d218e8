package sampleuv

import "testing"

func TestDiscreteSamplerDraw(t *testing.T) {
	areas := []float64{1, 2, 3, 4}
	d := newDiscreteSampler(areas)
	if d.total != 10 {
		t.Fatalf("total = %v, want 10", d.total)
	}

	cases := []struct {
		u       float64
		wantIdx int
	}{
		{0, 0},
		{0.05, 0}, // target 0.5, cum=[1,3,6,10]
		{0.15, 1}, // target 1.5
		{0.35, 2}, // target 3.5
		{0.95, 3}, // target 9.5
	}
	for _, c := range cases {
		idx, target := d.draw(c.u)
		if idx != c.wantIdx {
			t.Errorf("draw(%v) idx = %d, want %d (target=%v)", c.u, idx, c.wantIdx, target)
		}
	}
}

func TestCumSumFloat32(t *testing.T) {
	areas := []float32{1, 2, 3}
	got := cumSum(areas)
	want := []float32{1, 3, 6}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cumSum[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
