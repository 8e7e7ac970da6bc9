package prox_test

import (
	"math"
	"math/cmplx"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/proxvid/internal/prox"
)

var _ = Describe("Hard", func() {
	It("zeroes entries whose square is below 2*gamma", func() {
		x := []float64{0.5, -1.0, 2.0, -0.1, 1.5}
		Expect(prox.Hard(x, 0.5)).To(Equal([]float64{0, -1.0, 2.0, 0, 1.5}))
	})

	It("modifies and returns its argument", func() {
		x := []float64{0.1, 3}
		out := prox.Hard(x, 1)
		Expect(&out[0]).To(BeIdenticalTo(&x[0]))
		Expect(x).To(Equal([]float64{0, 3}))
	})

	It("only zeroes exact zeros when gamma is 0", func() {
		x := []float64{0, 1e-300, -2, 0, 5e-9}
		orig := append([]float64(nil), x...)
		out := prox.Hard(x, 0)
		for i, v := range orig {
			if v == 0 {
				Expect(out[i]).To(BeZero())
			} else {
				Expect(out[i]).To(Equal(v))
			}
		}
	})

	It("is disabled by a negative gamma", func() {
		x := []float64{0, 0.01, -0.02}
		Expect(prox.Hard(x, -1)).To(Equal([]float64{0, 0.01, -0.02}))
	})

	It("keeps values exactly at the cutoff", func() {
		x := []float64{1, -1}
		Expect(prox.Hard(x, 0.5)).To(Equal([]float64{1, -1}))
	})
})

var _ = Describe("Soft", func() {
	It("shrinks magnitudes toward zero", func() {
		x := []float64{3, -3, 0.5, -0.5, 0}
		Expect(prox.Soft(x, 1)).To(Equal([]float64{2, -2, 0, 0, 0}))
	})

	It("leaves its argument untouched", func() {
		x := []float64{3, -0.2}
		_ = prox.Soft(x, 1)
		Expect(x).To(Equal([]float64{3, -0.2}))
	})

	It("never grows magnitudes or flips signs for non-negative gamma", func() {
		x := []float64{-4.5, -1, -0.3, 0, 0.2, 0.9, 7}
		for _, gamma := range []float64{0, 0.1, 0.5, 1, 10} {
			out := prox.Soft(x, gamma)
			for i := range x {
				Expect(math.Abs(out[i])).To(BeNumerically("<=", math.Abs(x[i])))
				if out[i] != 0 {
					Expect(math.Signbit(out[i])).To(Equal(math.Signbit(x[i])))
				}
			}
		}
	})

	It("widens magnitudes for a negative gamma", func() {
		Expect(prox.Soft([]float64{1, -1, 0}, -0.5)).To(Equal([]float64{1.5, -1.5, 0}))
	})
})

var _ = Describe("ScaledHard", func() {
	It("matches Hard at gamma*alpha when beta is 0", func() {
		a := []float64{0.2, -0.9, 1.4, -3, 0.05}
		b := append([]float64(nil), a...)
		Expect(prox.ScaledHard(a, 0.7, 0.6, 0)).To(Equal(prox.Hard(b, 0.7*0.6)))
	})

	It("raises the threshold and shrinks survivors", func() {
		// scale = 1/(1+2*1*0.5) = 0.5, threshold = 0.5/0.5 = 1, cutoff 2
		x := []float64{1.2, 2, -3}
		out := prox.ScaledHard(x, 1, 0.5, 0.5)
		Expect(out).To(Equal([]float64{0, 1, -1.5}))
		Expect(x).To(Equal([]float64{0, 2, -3}))
	})

	It("produces non-finite output when 1+2*gamma*beta is 0", func() {
		out := prox.ScaledHard([]float64{1}, 1, 1, -0.5)
		Expect(math.IsInf(out[0], 0) || math.IsNaN(out[0])).To(BeTrue())
	})
})

var _ = Describe("ScaledSoft", func() {
	It("matches Soft at gamma*alpha when beta is 0", func() {
		x := []float64{0.2, -0.9, 1.4, -3, 0.05}
		Expect(prox.ScaledSoft(x, 0.7, 0.6, 0)).To(Equal(prox.Soft(x, 0.7*0.6)))
	})

	It("does not divide the threshold by the scale", func() {
		// scale = 0.5, threshold = gamma*alpha = 0.5
		Expect(prox.ScaledSoft([]float64{2.5, -1}, 1, 0.5, 0.5)).To(Equal([]float64{1, -0.25}))
	})
})

var _ = Describe("complex operators", func() {
	It("hard thresholds on squared modulus", func() {
		z := []complex128{complex(0.3, 0.4), complex(1, 1), 0}
		Expect(prox.HardC(z, 0.2)).To(Equal([]complex128{0, complex(1, 1), 0}))
	})

	It("soft thresholds the modulus and keeps the phase", func() {
		z := []complex128{complex(3, 4), complex(0.3, 0.4), 0}
		out := prox.SoftC(z, 1)
		Expect(cmplx.Abs(out[0])).To(BeNumerically("~", 4, 1e-12))
		Expect(cmplx.Phase(out[0])).To(BeNumerically("~", cmplx.Phase(z[0]), 1e-12))
		Expect(out[1]).To(BeZero())
		Expect(out[2]).To(BeZero())
		Expect(z[0]).To(Equal(complex(3, 4)))
	})

	It("reduces to the plain operators when beta is 0", func() {
		z := []complex128{complex(0.2, 0.1), complex(-2, 0.5), complex(0, -1.1)}
		w := append([]complex128(nil), z...)
		Expect(prox.ScaledSoftC(z, 0.4, 2, 0)).To(Equal(prox.SoftC(z, 0.8)))
		Expect(prox.ScaledHardC(z, 0.4, 2, 0)).To(Equal(prox.HardC(w, 0.8)))
	})
})

var _ = Describe("dense operators", func() {
	It("preserves shape and thresholds in place", func() {
		m := mat.NewDense(2, 3, []float64{0.1, 2, -0.2, -3, 0.5, 4})
		out := prox.HardDense(m, 0.5)
		Expect(out).To(BeIdenticalTo(m))
		r, c := out.Dims()
		Expect([]int{r, c}).To(Equal([]int{2, 3}))
		Expect(out.RawMatrix().Data).To(Equal([]float64{0, 2, 0, -3, 0, 4}))
	})

	It("returns a fresh matrix from SoftDense", func() {
		m := mat.NewDense(2, 2, []float64{3, -3, 0.5, 0})
		out := prox.SoftDense(m, 1)
		Expect(mat.Equal(out, mat.NewDense(2, 2, []float64{2, -2, 0, 0}))).To(BeTrue())
		Expect(m.At(0, 0)).To(Equal(3.0))
	})

	It("agrees with the slice operators", func() {
		data := []float64{0.3, -1.7, 2.2, -0.05, 0.8, -0.9}
		m := mat.NewDense(3, 2, append([]float64(nil), data...))
		got := prox.ScaledSoftDense(m, 0.5, 1.2, 0.3)
		want := prox.ScaledSoft(data, 0.5, 1.2, 0.3)
		Expect(got.RawMatrix().Data).To(Equal(want))

		hm := mat.NewDense(3, 2, append([]float64(nil), data...))
		gotHard := prox.ScaledHardDense(hm, 0.5, 1.2, 0.3)
		wantHard := prox.ScaledHard(append([]float64(nil), data...), 0.5, 1.2, 0.3)
		for i, v := range wantHard {
			Expect(gotHard.RawMatrix().Data[i]).To(BeNumerically("~", v, 1e-15))
		}
	})
})
