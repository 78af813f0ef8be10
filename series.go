package epicycle

import (
	"iter"
	"slices"

	"honnef.co/go/curve"
)

// Series is a truncated Fourier series. It is immutable; the zero value is the
// empty series, which evaluates to zero everywhere.
type Series struct {
	comps []Component
}

// NewSeries returns a series of the given components, chained in the order
// given. The slice is copied.
func NewSeries(components []Component) Series {
	if len(components) == 0 {
		return Series{}
	}
	return Series{comps: slices.Clone(components)}
}

// Fit returns the series of the n most significant components of the closed
// path described by points. See [Signal] and [Transform].
func Fit(points []curve.Point, n int) Series {
	return Series{comps: Transform(Signal(points), n)}
}

// Len returns the number of components.
func (s Series) Len() int { return len(s.comps) }

// Component returns the ith component.
func (s Series) Component(i int) Component { return s.comps[i] }

// Components returns an iterator over the components, in chaining order.
func (s Series) Components() iter.Seq[Component] {
	return slices.Values(s.comps)
}

// Eval returns the value of the series at time t. For integer frequencies the
// result is periodic in t with period 1.
func (s Series) Eval(t float64) Complex {
	var sum Complex
	for _, c := range s.comps {
		sum = sum.Add(c.At(t))
	}
	return sum
}

// Reach returns the sum of all component radii. No point of the chain is ever
// further than that from the origin.
func (s Series) Reach() float64 {
	var r float64
	for _, c := range s.comps {
		r += c.Radius()
	}
	return r
}

// Arm is one link of an epicycle chain: the partial sum before and after
// adding a single component.
type Arm struct {
	Start     Complex
	End       Complex
	Radius    float64
	Frequency int
}

// Arms returns an iterator over the chain of partial sums at time t, starting
// at the origin. The End of the last arm equals s.Eval(t).
func (s Series) Arms(t float64) iter.Seq[Arm] {
	return func(yield func(Arm) bool) {
		var sum Complex
		for _, c := range s.comps {
			prev := sum
			sum = sum.Add(c.At(t))
			if !yield(Arm{
				Start:     prev,
				End:       sum,
				Radius:    c.Radius(),
				Frequency: c.Frequency,
			}) {
				return
			}
		}
	}
}

// AppendArms appends the chain of partial sums at time t to dst and returns
// the extended slice.
func (s Series) AppendArms(dst []Arm, t float64) []Arm {
	dst = slices.Grow(dst, len(s.comps))
	for arm := range s.Arms(t) {
		dst = append(dst, arm)
	}
	return dst
}
