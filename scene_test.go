package epicycle

import (
	"math"
	"testing"
	"time"

	"honnef.co/go/curve"
)

func TestSceneAdvanceWraps(t *testing.T) {
	s := NewScene(0.25)
	var got []float64
	for range 6 {
		got = append(got, s.Advance())
	}
	diff(t, []float64{0.25, 0.5, 0.75, 0, 0.25, 0.5}, got)

	s = NewScene(0.3)
	for range 4 {
		s.Advance()
	}
	if tm := s.Time(); math.Abs(tm-0.2) > 1e-12 {
		t.Errorf("got time %v, want 0.2", tm)
	}
}

func TestSceneAdvanceStaysInRange(t *testing.T) {
	s := NewScene(DefaultStep)
	for range 10000 {
		tm := s.Advance()
		if tm < 0 || tm >= 1 {
			t.Fatalf("time %v out of range", tm)
		}
	}
	// 10000 steps of 1/2000 are five full loops.
	if tm := s.Time(); math.Min(tm, 1-tm) > 1e-9 {
		t.Errorf("got time %v after five loops, want 0", tm)
	}
}

func TestSceneSetTime(t *testing.T) {
	s := NewScene(0)
	if s.Step() != DefaultStep {
		t.Errorf("got step %v, want %v", s.Step(), DefaultStep)
	}
	for _, tt := range []struct{ in, want float64 }{
		{0.4, 0.4},
		{1, 0},
		{2.5, 0.5},
		{-0.25, 0.75},
		{-1e-18, 0},
	} {
		s.SetTime(tt.in)
		if got := s.Time(); math.Abs(got-tt.want) > 1e-12 || got >= 1 {
			t.Errorf("SetTime(%v): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSceneFrame(t *testing.T) {
	s := NewScene(0.01)
	colors := Palette(3)
	s.Add(SquarePath(150, 200), Options{Center: curve.Pt(300, 200), Color: colors[0], Components: 30})
	s.Add(CirclePath(120, 200), Options{Center: curve.Pt(600, 200), Color: colors[1], Components: 30})
	s.Add(HeartPath(6, 300), Options{Center: curve.Pt(900, 200), Color: colors[2], Components: 30})
	if s.Len() != 3 {
		t.Fatalf("got %d reconstructions, want 3", s.Len())
	}

	frames := s.Frame(nil)
	if len(frames) != 3 {
		t.Fatalf("got %d frames, want 3", len(frames))
	}
	for i, r := range s.All() {
		if frames[i].Point != r.Eval(0) {
			t.Errorf("frame %d: got point %v, want %v", i, frames[i].Point, r.Eval(0))
		}
		if frames[i].Color != colors[i] {
			t.Errorf("frame %d: got color %v, want %v", i, frames[i].Color, colors[i])
		}
	}
	if s.Time() != 0.01 {
		t.Errorf("got time %v after one frame, want 0.01", s.Time())
	}

	first := &frames[0]
	frames = s.Frame(frames)
	if &frames[0] != first {
		t.Error("Frame reallocated the frames")
	}
	for i := range frames {
		if frames[i].Point != s.At(i).Eval(0.01) {
			t.Errorf("frame %d: got point %v, want %v", i, frames[i].Point, s.At(i).Eval(0.01))
		}
		if len(frames[i].Trail) != 1 {
			t.Errorf("frame %d: got %d trail segments, want 1", i, len(frames[i].Trail))
		}
	}

	// Frames shrink to the number of reconstructions.
	if n := len(NewScene(0).Frame(frames)); n != 0 {
		t.Errorf("got %d frames for an empty scene", n)
	}
}

func TestSceneSeamless(t *testing.T) {
	s := NewScene(0.001)
	s.Add(HeartPath(6, 300), Options{Components: 60})
	var frames []Frame
	var prev curve.Point
	var maxStep float64
	for i := range 2500 {
		frames = s.Frame(frames)
		if i > 0 {
			maxStep = max(maxStep, frames[0].Point.Distance(prev))
		}
		prev = frames[0].Point
	}
	// Crossing from t≈1 to t=0 moves the point no further than any other
	// step does.
	r := s.At(0)
	if d := r.Eval(0).Distance(r.Eval(0.999)); d > maxStep*1.01 {
		t.Errorf("seam jump %v exceeds largest step %v", d, maxStep)
	}
}

func TestSceneBoundingBox(t *testing.T) {
	s := NewScene(0)
	diff(t, curve.Rect{}, s.BoundingBox())
	a := s.Add(CirclePath(10, 32), Options{Center: curve.Pt(0, 0), Components: 4})
	b := s.Add(CirclePath(10, 32), Options{Center: curve.Pt(100, 50), Components: 4})
	diff(t, a.BoundingBox().Union(b.BoundingBox()), s.BoundingBox())
	bbox := s.BoundingBox()
	if bbox.X0 > -10+1e-9 || bbox.X1 < 110-1e-9 || bbox.Y1 < 60-1e-9 {
		t.Errorf("bounding box %v doesn't cover both circles", bbox)
	}
}

func TestStepForFPS(t *testing.T) {
	if got := StepForFPS(50, 40*time.Second); math.Abs(got-0.0005) > 1e-15 {
		t.Errorf("got step %v, want 0.0005", got)
	}
	// The frame delta has nanosecond resolution.
	if got := StepForFPS(60, time.Second); got != 0.016666666 {
		t.Errorf("got step %v, want 0.016666666", got)
	}
	if got := StepForFPS(0, time.Second); got != 0 {
		t.Errorf("got step %v for 0 fps", got)
	}
	if got := StepForFPS(60, 0); got != 0 {
		t.Errorf("got step %v for a zero period", got)
	}
}

func TestPalette(t *testing.T) {
	if p := Palette(0); p != nil {
		t.Errorf("got %v for zero colors", p)
	}
	p := Palette(6)
	if len(p) != 6 {
		t.Fatalf("got %d colors, want 6", len(p))
	}
	for i, c := range p {
		if !c.IsValid() {
			t.Errorf("color %d is invalid: %v", i, c)
		}
		h, _, _ := c.Hsv()
		if want := 60 * float64(i); math.Abs(h-want) > 1e-6 {
			t.Errorf("color %d has hue %v, want %v", i, h, want)
		}
	}
}

func TestSceneZeroComponents(t *testing.T) {
	s := NewScene(0.1)
	center := curve.Pt(12, 34)
	s.Add(CirclePath(10, 50), Options{Center: center})
	var frames []Frame
	for range 15 {
		frames = s.Frame(frames)
		if frames[0].Point != center || len(frames[0].Epicycles) != 0 {
			t.Fatalf("got point %v with %d epicycles, want the center and none", frames[0].Point, len(frames[0].Epicycles))
		}
	}
}
