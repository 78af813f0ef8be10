package epicycle

import (
	"cmp"
	"math"
	"slices"

	"honnef.co/go/curve"
)

// Component is one term of a Fourier series: a vector of length
// |Coefficient| that starts at the coefficient's phase and rotates
// Frequency full turns per unit of time.
type Component struct {
	Frequency   int
	Coefficient Complex
}

// Radius returns the magnitude of the coefficient, which is the radius of the
// component's epicycle.
func (c Component) Radius() float64 {
	return c.Coefficient.Magnitude()
}

// Phase returns the initial phase of the component, in radians.
func (c Component) Phase() float64 {
	return c.Coefficient.Phase()
}

// At returns the component's vector at time t.
func (c Component) At(t float64) Complex {
	return c.Coefficient.Rotate(2 * math.Pi * float64(c.Frequency) * t)
}

// Fold maps DFT index k of a signal of length n to a signed frequency. Indices
// up to and including n/2 map to themselves, higher indices map to k-n. For
// even n, the Nyquist index n/2 thus maps to +n/2.
func Fold(k, n int) int {
	if k <= n/2 {
		return k
	}
	return k - n
}

// Transform computes the discrete Fourier transform of signal and returns the
// maxComponents components with the largest magnitude, sorted by ascending
// frequency.
//
// Coefficients are normalized by 1/n, so that evaluating all n components at
// t = i/n yields signal[i] again. Components of equal magnitude are ranked by
// their DFT index. A negative maxComponents is treated as zero.
//
// Transform uses the naive O(n²) algorithm.
func Transform(signal []Complex, maxComponents int) []Component {
	n := len(signal)
	if n == 0 || maxComponents <= 0 {
		return nil
	}

	// roots[m] is e^(-2πi·m/n); the term for sample i of bin k uses
	// roots[k·i mod n].
	roots := make([]Complex, n)
	for m := range roots {
		roots[m] = Polar(1, -2*math.Pi*float64(m)/float64(n))
	}

	comps := make([]Component, n)
	inv := 1 / float64(n)
	for k := range n {
		var sum Complex
		idx := 0
		for _, v := range signal {
			sum = sum.Add(v.Mul(roots[idx]))
			idx += k
			if idx >= n {
				idx -= n
			}
		}
		comps[k] = Component{
			Frequency:   Fold(k, n),
			Coefficient: sum.Scale(inv),
		}
	}

	slices.SortStableFunc(comps, func(a, b Component) int {
		return cmp.Compare(b.Radius(), a.Radius())
	})
	comps = slices.Clip(comps[:min(maxComponents, n)])
	slices.SortFunc(comps, func(a, b Component) int {
		return cmp.Compare(a.Frequency, b.Frequency)
	})
	return comps
}

// Centroid returns the mean of points. The centroid of no points is the
// origin.
func Centroid(points []curve.Point) curve.Point {
	if len(points) == 0 {
		return curve.Point{}
	}
	var x, y float64
	for _, pt := range points {
		x += pt.X
		y += pt.Y
	}
	n := float64(len(points))
	return curve.Pt(x/n, y/n)
}

// Signal converts points to complex values relative to their centroid. This
// moves the energy of the path's position out of frequency 0, so that all of
// the motion is captured by oscillating components.
func Signal(points []curve.Point) []Complex {
	if len(points) == 0 {
		return nil
	}
	c := Centroid(points)
	out := make([]Complex, len(points))
	for i, pt := range points {
		out[i] = ComplexFromVec2(pt.Sub(c))
	}
	return out
}
