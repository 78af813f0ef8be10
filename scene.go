package epicycle

import (
	"iter"
	"math"
	"slices"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/lucasb-eyer/go-colorful"
	"honnef.co/go/curve"
)

// DefaultStep is the time step used by NewScene when given a step of zero. It
// completes one loop every 2000 frames.
const DefaultStep = 0.0005

// StepForFPS returns the time step that completes one loop in period when
// rendering fps frames per second.
//
// The frame delta is rounded to whole nanoseconds, so the step is approximate:
// StepForFPS(60, time.Second) is 0.016666666, not 1/60. Time still wraps at
// exactly 1, but a loop may take one frame more or less than fps·period.
func StepForFPS(fps int, period time.Duration) float64 {
	if fps <= 0 || period <= 0 {
		return 0
	}
	return harmonica.FPS(fps) / period.Seconds()
}

// Scene is a collection of reconstructions that share a time value. Time runs
// from 0 to 1, advances by a fixed step per frame and wraps at 1, which is
// exactly one period of every reconstruction.
type Scene struct {
	recs []*Reconstruction
	t    float64
	step float64
}

// NewScene returns an empty scene that advances by step per frame. A step of
// zero means DefaultStep.
func NewScene(step float64) *Scene {
	if step == 0 {
		step = DefaultStep
	}
	return &Scene{step: step}
}

// Add creates a reconstruction of path and adds it to the scene.
func (s *Scene) Add(path []curve.Point, opts Options) *Reconstruction {
	r := NewReconstruction(path, opts)
	s.recs = append(s.recs, r)
	return r
}

// Len returns the number of reconstructions.
func (s *Scene) Len() int { return len(s.recs) }

// At returns the ith reconstruction, in the order they were added.
func (s *Scene) At(i int) *Reconstruction { return s.recs[i] }

// All returns an iterator over the reconstructions, in the order they were
// added.
func (s *Scene) All() iter.Seq2[int, *Reconstruction] {
	return slices.All(s.recs)
}

func (s *Scene) Time() float64 { return s.t }
func (s *Scene) Step() float64 { return s.step }

// SetTime sets the scene's time, wrapped into [0, 1).
func (s *Scene) SetTime(t float64) {
	s.t = wrap(t)
}

// Advance advances the scene's time by one step and returns the new time.
func (s *Scene) Advance() float64 {
	s.t = wrap(s.t + s.step)
	return s.t
}

// wrap reduces t to [0, 1) by whole periods.
func wrap(t float64) float64 {
	t -= math.Floor(t)
	if t >= 1 {
		// t was a tiny negative number and rounded up.
		t = 0
	}
	return t
}

// Frame steps every reconstruction at the current time, then advances the
// time. It reuses frames, which it resizes to Len, and returns it.
func (s *Scene) Frame(frames []Frame) []Frame {
	if cap(frames) < len(s.recs) {
		frames = append(frames[:cap(frames)], make([]Frame, len(s.recs)-cap(frames))...)
	}
	frames = frames[:len(s.recs)]
	for i, r := range s.recs {
		r.Step(s.t, &frames[i])
	}
	s.Advance()
	return frames
}

// BoundingBox returns the union of the reconstructions' bounding boxes. The
// bounding box of an empty scene is the zero rectangle.
func (s *Scene) BoundingBox() curve.Rect {
	if len(s.recs) == 0 {
		return curve.Rect{}
	}
	bbox := s.recs[0].BoundingBox()
	for _, r := range s.recs[1:] {
		bbox = bbox.Union(r.BoundingBox())
	}
	return bbox
}

// Palette returns n colors of evenly spaced hues, for scenes whose caller
// doesn't care to pick colors.
func Palette(n int) []colorful.Color {
	if n <= 0 {
		return nil
	}
	out := make([]colorful.Color, n)
	for i := range out {
		out[i] = colorful.Hsv(360*float64(i)/float64(n), 0.8, 0.95)
	}
	return out
}
