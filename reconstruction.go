package epicycle

import (
	"iter"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
	"honnef.co/go/curve"
)

const (
	// DefaultComponents is a component count that reproduces typical paths of a
	// few hundred samples without visible error.
	DefaultComponents = 100
	// DefaultTrailLength is the trail capacity used when Options.TrailLength is
	// zero.
	DefaultTrailLength = 2000
	// DefaultVisualTrailLength is the number of trail points that get drawn
	// when Options.VisualTrailLength is zero.
	DefaultVisualTrailLength = 2000
)

// Options describes a reconstruction. Zero trail lengths take their
// defaults; the component count is always taken literally.
type Options struct {
	// Number of components to keep. Zero or negative means none at all, which
	// makes the reconstruction evaluate to Center everywhere.
	Components int
	// Offset added to every reconstructed point.
	Center curve.Point
	// Display color. The package doesn't interpret it beyond fading trails.
	Color colorful.Color
	// Number of points kept in the trail. Zero means DefaultTrailLength,
	// negative disables the trail.
	TrailLength int
	// Number of most recent trail points over which the trail fades out. Zero
	// means DefaultVisualTrailLength, negative means the whole trail.
	VisualTrailLength int
}

func (opts Options) withDefaults() Options {
	opts.Components = max(opts.Components, 0)
	switch {
	case opts.TrailLength == 0:
		opts.TrailLength = DefaultTrailLength
	case opts.TrailLength < 0:
		opts.TrailLength = 0
	}
	if opts.VisualTrailLength == 0 {
		opts.VisualTrailLength = DefaultVisualTrailLength
	}
	return opts
}

// Reconstruction animates one path. Its series is fixed at construction; only
// its trail changes from frame to frame.
type Reconstruction struct {
	series      Series
	center      curve.Point
	color       colorful.Color
	trail       *Trail
	trailLength int
	visualCap   int
}

// NewReconstruction fits a series to path, which is centered on its own
// centroid first, and returns a reconstruction that draws it around
// opts.Center. An empty path or a component count of zero yields a
// reconstruction that always evaluates to the center.
func NewReconstruction(path []curve.Point, opts Options) *Reconstruction {
	opts = opts.withDefaults()
	return &Reconstruction{
		series:      Fit(path, opts.Components),
		center:      opts.Center,
		color:       opts.Color,
		trail:       NewTrail(opts.TrailLength),
		trailLength: opts.TrailLength,
		visualCap:   opts.VisualTrailLength,
	}
}

func (r *Reconstruction) Series() Series         { return r.series }
func (r *Reconstruction) Center() curve.Point    { return r.center }
func (r *Reconstruction) Color() colorful.Color  { return r.color }
func (r *Reconstruction) Trail() *Trail          { return r.trail }
func (r *Reconstruction) VisualTrailLength() int { return r.visualCap }

// Eval returns the reconstructed point at time t.
func (r *Reconstruction) Eval(t float64) curve.Point {
	return r.center.Translate(r.series.Eval(t).Vec2())
}

// Epicycle is one rotating arm of a reconstruction, in the reconstruction's
// coordinates. The circle is centered on the arm's start and has the radius
// of the component that produced the arm.
type Epicycle struct {
	Circle curve.Circle
	Arm    curve.Line
}

// Epicycles returns an iterator over the epicycle chain at time t.
func (r *Reconstruction) Epicycles(t float64) iter.Seq[Epicycle] {
	return func(yield func(Epicycle) bool) {
		for arm := range r.series.Arms(t) {
			if !yield(r.epicycle(arm)) {
				return
			}
		}
	}
}

// AppendEpicycles appends the epicycle chain at time t to dst and returns the
// extended slice.
func (r *Reconstruction) AppendEpicycles(dst []Epicycle, t float64) []Epicycle {
	dst = slices.Grow(dst, r.series.Len())
	for arm := range r.series.Arms(t) {
		dst = append(dst, r.epicycle(arm))
	}
	return dst
}

func (r *Reconstruction) epicycle(arm Arm) Epicycle {
	start := r.center.Translate(arm.Start.Vec2())
	return Epicycle{
		Circle: curve.Circle{Center: start, Radius: arm.Radius},
		Arm: curve.Line{
			P0: start,
			P1: r.center.Translate(arm.End.Vec2()),
		},
	}
}

// Update evaluates the reconstruction at time t, prepends the point to the
// trail and returns it.
func (r *Reconstruction) Update(t float64) curve.Point {
	pt := r.Eval(t)
	r.trail.Update(pt, r.trailLength)
	return pt
}

// BoundingBox returns a rectangle that contains every point the epicycle chain
// can reach, including its circles.
func (r *Reconstruction) BoundingBox() curve.Rect {
	d := r.series.Reach()
	return curve.Rect{
		X0: r.center.X - d,
		Y0: r.center.Y - d,
		X1: r.center.X + d,
		Y1: r.center.Y + d,
	}
}

// Frame is what a renderer needs to draw one reconstruction for one frame.
// Frames are meant to be reused; [Reconstruction.Step] overwrites them in
// place.
type Frame struct {
	Color     colorful.Color
	Point     curve.Point
	Epicycles []Epicycle
	Trail     []TrailSegment
}

// Step advances the reconstruction to time t and fills f with the result: the
// epicycle chain at t, the reconstructed point, and the trail including that
// point. The slices in f are reused.
func (r *Reconstruction) Step(t float64, f *Frame) {
	f.Color = r.color
	f.Epicycles = r.AppendEpicycles(f.Epicycles[:0], t)
	// The chain's tip is the reconstructed point.
	f.Point = r.center
	if n := len(f.Epicycles); n > 0 {
		f.Point = f.Epicycles[n-1].Arm.P1
	}
	r.trail.Update(f.Point, r.trailLength)
	f.Trail = r.trail.AppendSegments(f.Trail[:0], r.visualCap)
}
