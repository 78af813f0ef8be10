package epicycle

import (
	"math"
	"slices"

	"honnef.co/go/curve"
)

// SampleShape returns n points spaced at equal arc length along the outline of
// s, starting at the outline's first point. The last sample stops one step
// short of the start, so the result describes a closed path without a
// duplicate endpoint.
//
// The accuracy is used both for converting s to a path and for arc length
// computations.
func SampleShape(s curve.Shape, n int, accuracy float64) []curve.Point {
	if n <= 0 {
		return nil
	}
	segs := slices.Collect(curve.Segments(s.PathElements(accuracy)))
	if len(segs) == 0 {
		return nil
	}
	lens := make([]float64, len(segs))
	var total float64
	for i, seg := range segs {
		lens[i] = seg.Arclen(accuracy)
		total += lens[i]
	}

	out := make([]curve.Point, 0, n)
	// Arc length at which the current segment starts.
	var base float64
	i := 0
	for j := range n {
		target := total * float64(j) / float64(n)
		for i < len(segs)-1 && target >= base+lens[i] {
			base += lens[i]
			i++
		}
		seg := segs[i]
		if lens[i] == 0 {
			out = append(out, seg.Start())
			continue
		}
		t := seg.SolveForArclen(min(target-base, lens[i]), accuracy)
		out = append(out, seg.Eval(t))
	}
	return out
}

// SquarePath returns n points along the outline of an axis-aligned square with
// sides of length size, centered on the origin. The outline starts at the
// corner with the smallest coordinates and proceeds in the direction of
// increasing x.
func SquarePath(size float64, n int) []curve.Point {
	h := size / 2
	r := curve.Rect{X0: -h, Y0: -h, X1: h, Y1: h}
	return SampleShape(r, n, 1e-9)
}

// CirclePath returns n points at equal angles along a circle of the given
// radius, centered on the origin, starting on the positive x axis.
func CirclePath(radius float64, n int) []curve.Point {
	if n <= 0 {
		return nil
	}
	out := make([]curve.Point, n)
	for i := range out {
		v := curve.VecFromAngle(2 * math.Pi * float64(i) / float64(n)).Mul(radius)
		out[i] = curve.Point(v)
	}
	return out
}

// HeartPath returns n points along the heart curve
//
//	x = 16 sin³θ
//	y = -(13 cos θ - 5 cos 2θ - 2 cos 3θ - cos 4θ)
//
// at equal steps of θ, multiplied by scale. The heart is upright in a y-down
// coordinate system.
func HeartPath(scale float64, n int) []curve.Point {
	if n <= 0 {
		return nil
	}
	out := make([]curve.Point, n)
	for i := range out {
		th := 2 * math.Pi * float64(i) / float64(n)
		sin := math.Sin(th)
		x := 16 * sin * sin * sin
		y := -(13*math.Cos(th) - 5*math.Cos(2*th) - 2*math.Cos(3*th) - math.Cos(4*th))
		out[i] = curve.Pt(x*scale, y*scale)
	}
	return out
}
