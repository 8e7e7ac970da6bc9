package prox

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Hard zeroes every element of x with x*x < 2*gamma and returns x.
func Hard(x []float64, gamma float64) []float64 {
	cut := 2 * gamma
	for i, v := range x {
		if v*v < cut {
			x[i] = 0
		}
	}
	return x
}

// Soft returns sign(x) * max(|x| - gamma, 0) as a new slice.
func Soft(x []float64, gamma float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = softScalar(v, gamma)
	}
	return out
}

// ScaledHard thresholds x in place with the effective threshold
// gamma*alpha/scale and returns the result multiplied by scale, where
// scale = 1/(1 + 2*gamma*beta).
func ScaledHard(x []float64, gamma, alpha, beta float64) []float64 {
	scale := Scale(gamma, beta)
	Hard(x, (gamma*alpha)/scale)
	out := make([]float64, len(x))
	floats.ScaleTo(out, scale, x)
	return out
}

// ScaledSoft soft-thresholds x at gamma*alpha and multiplies by
// scale = 1/(1 + 2*gamma*beta). Unlike ScaledHard the threshold is not
// divided by scale.
func ScaledSoft(x []float64, gamma, alpha, beta float64) []float64 {
	out := Soft(x, gamma*alpha)
	floats.Scale(Scale(gamma, beta), out)
	return out
}

// Scale is the ridge shrinkage factor 1/(1 + 2*gamma*beta).
func Scale(gamma, beta float64) float64 {
	return 1 / (1 + (2 * gamma * beta))
}

func softScalar(v, gamma float64) float64 {
	mag := math.Max(math.Abs(v)-gamma, 0)
	return sign(v) * mag
}

// sign follows the numeric convention sign(0) == 0; NaN propagates.
func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	case v == 0:
		return 0
	}
	return v
}

// HardC is Hard for complex values, comparing |z|^2 against 2*gamma.
func HardC(z []complex128, gamma float64) []complex128 {
	cut := 2 * gamma
	for i, v := range z {
		if abs2(v) < cut {
			z[i] = 0
		}
	}
	return z
}

// SoftC shrinks each magnitude by gamma while keeping its phase.
func SoftC(z []complex128, gamma float64) []complex128 {
	out := make([]complex128, len(z))
	for i, v := range z {
		mag := cmplx.Abs(v)
		if mag == 0 {
			continue
		}
		shrunk := math.Max(mag-gamma, 0)
		out[i] = v * complex(shrunk/mag, 0)
	}
	return out
}

// ScaledHardC is ScaledHard for complex values.
func ScaledHardC(z []complex128, gamma, alpha, beta float64) []complex128 {
	scale := Scale(gamma, beta)
	HardC(z, (gamma*alpha)/scale)
	out := make([]complex128, len(z))
	for i, v := range z {
		out[i] = v * complex(scale, 0)
	}
	return out
}

// ScaledSoftC is ScaledSoft for complex values.
func ScaledSoftC(z []complex128, gamma, alpha, beta float64) []complex128 {
	scale := complex(Scale(gamma, beta), 0)
	out := SoftC(z, gamma*alpha)
	for i := range out {
		out[i] *= scale
	}
	return out
}

func abs2(v complex128) float64 {
	mag := cmplx.Abs(v)
	return mag * mag
}

// HardDense applies Hard to every element of m in place and returns m.
func HardDense(m *mat.Dense, gamma float64) *mat.Dense {
	cut := 2 * gamma
	m.Apply(func(_, _ int, v float64) float64 {
		if v*v < cut {
			return 0
		}
		return v
	}, m)
	return m
}

// SoftDense returns a new matrix holding Soft applied to m.
func SoftDense(m mat.Matrix, gamma float64) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 {
		return softScalar(v, gamma)
	}, m)
	return &out
}

// ScaledHardDense is ScaledHard for matrices; m is zeroed in place.
func ScaledHardDense(m *mat.Dense, gamma, alpha, beta float64) *mat.Dense {
	scale := Scale(gamma, beta)
	HardDense(m, (gamma*alpha)/scale)
	var out mat.Dense
	out.Scale(scale, m)
	return &out
}

// ScaledSoftDense is ScaledSoft for matrices.
func ScaledSoftDense(m mat.Matrix, gamma, alpha, beta float64) *mat.Dense {
	out := SoftDense(m, gamma*alpha)
	out.Scale(Scale(gamma, beta), out)
	return out
}
