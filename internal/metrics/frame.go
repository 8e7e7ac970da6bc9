package metrics

import (
	"math"
)

// FrameError tracks relative error one frame (column) at a time.
type FrameError struct {
	name   string
	sum    float64
	max    float64
	values []float64
}

func NewFrameError() *FrameError {
	return &FrameError{
		name: "relative_error",
	}
}

func (f *FrameError) Name() string { return f.name }

// Observe records the relative error of one reconstructed frame.
func (f *FrameError) Observe(actual, truth []float64) {
	e := RelativeError(actual, truth)
	f.values = append(f.values, e)
	f.sum += e
	if e > f.max || math.IsNaN(e) {
		f.max = e
	}
}

// Value is the mean relative error over observed frames.
func (f *FrameError) Value() float64 {
	if len(f.values) == 0 {
		return 0
	}
	return f.sum / float64(len(f.values))
}

func (f *FrameError) Max() float64 { return f.max }

// Values returns the per-frame errors in observation order.
func (f *FrameError) Values() []float64 { return f.values }

func (f *FrameError) Reset() {
	f.sum = 0
	f.max = 0
	f.values = nil
}

// Sparsity counts exact zeros across observed columns.
type Sparsity struct {
	name    string
	zeros   int
	samples int
}

func NewSparsity() *Sparsity {
	return &Sparsity{
		name: "sparsity",
	}
}

func (s *Sparsity) Name() string {
	return s.name
}

func (s *Sparsity) Observe(x []float64) {
	for _, v := range x {
		if v == 0 {
			s.zeros++
		}
	}
	s.samples += len(x)
}

// Value is the fraction of observed entries that are zero.
func (s *Sparsity) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return float64(s.zeros) / float64(s.samples)
}

func (s *Sparsity) Reset() {
	s.zeros = 0
	s.samples = 0
}
