package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestRelativeErrorIdentical(t *testing.T) {
	x := []float64{1, -2, 3.5, 0}
	if e := RelativeError(x, x); e != 0 {
		t.Errorf("expected 0, got %g", e)
	}
}

func TestRelativeErrorKnown(t *testing.T) {
	truth := []float64{3, 4}
	actual := []float64{3, 5}
	if e := RelativeError(actual, truth); math.Abs(e-0.2) > 1e-12 {
		t.Errorf("expected 0.2, got %g", e)
	}
}

func TestRelativeErrorScaleInvariant(t *testing.T) {
	actual := []float64{1.1, -0.4, 2.9, 0.3}
	truth := []float64{1, -0.5, 3, 0}
	base := RelativeError(actual, truth)

	for _, c := range []float64{-3, 0.01, 2, 1e6} {
		sa := make([]float64, len(actual))
		st := make([]float64, len(truth))
		for i := range actual {
			sa[i] = c * actual[i]
			st[i] = c * truth[i]
		}
		if e := RelativeError(sa, st); math.Abs(e-base) > 1e-12 {
			t.Errorf("c=%g: expected %g, got %g", c, base, e)
		}
	}
}

func TestRelativeErrorZeroTruth(t *testing.T) {
	e := RelativeError([]float64{1, 0}, []float64{0, 0})
	if !math.IsInf(e, 1) {
		t.Errorf("expected +Inf, got %g", e)
	}
	e = RelativeError([]float64{0, 0}, []float64{0, 0})
	if !math.IsNaN(e) {
		t.Errorf("expected NaN, got %g", e)
	}
}

func TestRelativeErrorComplex(t *testing.T) {
	truth := []complex128{complex(3, 4), 0}
	actual := []complex128{complex(3, 4), complex(0, 1)}
	if e := RelativeErrorC(actual, truth); math.Abs(e-0.2) > 1e-12 {
		t.Errorf("expected 0.2, got %g", e)
	}
	if e := RelativeErrorC(truth, truth); e != 0 {
		t.Errorf("expected 0, got %g", e)
	}
}

func TestRelativeErrorDenseUsesFrobenius(t *testing.T) {
	truth := mat.NewDense(2, 2, []float64{1, 2, 2, 4})
	actual := mat.NewDense(2, 2, []float64{1, 2, 2, 5})

	want := RelativeError([]float64{1, 2, 2, 5}, []float64{1, 2, 2, 4})
	if e := RelativeErrorDense(actual, truth); math.Abs(e-want) > 1e-12 {
		t.Errorf("expected %g, got %g", want, e)
	}
}

func TestFrameError(t *testing.T) {
	m := NewFrameError()
	m.Observe([]float64{3, 5}, []float64{3, 4})
	m.Observe([]float64{1, 0}, []float64{1, 0})

	if len(m.Values()) != 2 {
		t.Fatalf("expected 2 values, got %d", len(m.Values()))
	}
	if math.Abs(m.Value()-0.1) > 1e-12 {
		t.Errorf("expected mean 0.1, got %g", m.Value())
	}
	if math.Abs(m.Max()-0.2) > 1e-12 {
		t.Errorf("expected max 0.2, got %g", m.Max())
	}

	m.Reset()
	if m.Value() != 0 || m.Max() != 0 || len(m.Values()) != 0 {
		t.Error("expected zero state after reset")
	}
}

func TestSparsity(t *testing.T) {
	s := NewSparsity()
	if s.Value() != 0 {
		t.Error("expected zero before observations")
	}
	s.Observe([]float64{0, 1, 0, 2})
	s.Observe([]float64{0, 0})
	if math.Abs(s.Value()-4.0/6.0) > 1e-12 {
		t.Errorf("expected 2/3, got %g", s.Value())
	}
	s.Reset()
	if s.Value() != 0 {
		t.Error("expected zero after reset")
	}
}
