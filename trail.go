package epicycle

import (
	"fmt"
	"image/color"
	"iter"

	"github.com/lucasb-eyer/go-colorful"
	"honnef.co/go/curve"
)

// Trail is a bounded history of points, most recent first. It is a ring
// buffer: pushing a point is O(1) and evicts the oldest point once the trail
// is at capacity.
type Trail struct {
	buf []curve.Point
	// Index of the most recent point in buf.
	head int
	n    int
}

// NewTrail returns an empty trail that holds at most capacity points.
func NewTrail(capacity int) *Trail {
	return &Trail{buf: make([]curve.Point, max(capacity, 0))}
}

// Len returns the number of points in the trail.
func (tr *Trail) Len() int { return tr.n }

// Cap returns the maximum number of points the trail holds.
func (tr *Trail) Cap() int { return len(tr.buf) }

// Push prepends pt, evicting the oldest point if the trail is full. A trail of
// capacity zero stays empty.
func (tr *Trail) Push(pt curve.Point) {
	if len(tr.buf) == 0 {
		return
	}
	tr.head--
	if tr.head < 0 {
		tr.head = len(tr.buf) - 1
	}
	tr.buf[tr.head] = pt
	if tr.n < len(tr.buf) {
		tr.n++
	}
}

// Update prepends pt and then drops the oldest points until at most maxLength
// remain. When maxLength differs from the current capacity, the trail is
// resized first; keeping maxLength constant between calls avoids that
// allocation.
func (tr *Trail) Update(pt curve.Point, maxLength int) {
	if maxLength != len(tr.buf) {
		tr.Resize(maxLength)
	}
	tr.Push(pt)
}

// Resize changes the capacity of the trail, keeping the most recent points.
func (tr *Trail) Resize(capacity int) {
	capacity = max(capacity, 0)
	if capacity == len(tr.buf) {
		return
	}
	buf := make([]curve.Point, capacity)
	n := min(tr.n, capacity)
	for i := range n {
		buf[i] = tr.At(i)
	}
	tr.buf = buf
	tr.head = 0
	tr.n = n
}

// Reset removes all points.
func (tr *Trail) Reset() {
	tr.head = 0
	tr.n = 0
}

// At returns the ith most recent point. At(0) is the point pushed last.
func (tr *Trail) At(i int) curve.Point {
	if i < 0 || i >= tr.n {
		panic(fmt.Sprintf("index %d out of range [0, %d)", i, tr.n))
	}
	i += tr.head
	if i >= len(tr.buf) {
		i -= len(tr.buf)
	}
	return tr.buf[i]
}

// All returns an iterator over the points, most recent first.
func (tr *Trail) All() iter.Seq2[int, curve.Point] {
	return func(yield func(int, curve.Point) bool) {
		for i := range tr.n {
			if !yield(i, tr.At(i)) {
				return
			}
		}
	}
}

// Points returns a copy of the points, most recent first.
func (tr *Trail) Points() []curve.Point {
	return tr.AppendPoints(nil)
}

// AppendPoints appends the points, most recent first, to dst and returns the
// extended slice.
func (tr *Trail) AppendPoints(dst []curve.Point) []curve.Point {
	if tr.n == 0 {
		return dst
	}
	end := tr.head + tr.n
	if end <= len(tr.buf) {
		return append(dst, tr.buf[tr.head:end]...)
	}
	dst = append(dst, tr.buf[tr.head:]...)
	return append(dst, tr.buf[:end-len(tr.buf)]...)
}

// TrailSegment is a line between two adjacent trail points and its opacity.
type TrailSegment struct {
	Line curve.Line
	// Opacity in (0, 1).
	Alpha float64
}

// Alpha8 returns the segment's opacity scaled to [0, 255].
func (seg TrailSegment) Alpha8() uint8 {
	return uint8(seg.Alpha * 255)
}

// Color returns base with the segment's opacity as its alpha channel.
func (seg TrailSegment) Color(base colorful.Color) color.NRGBA {
	r, g, b := base.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: seg.Alpha8()}
}

// Segments returns an iterator over the line segments between adjacent points,
// newest first, with linearly decreasing opacity.
//
// Only the visualCap most recent points take part, so the fade always
// completes within that many points no matter how long the trail's history
// is. With L = min(Len, visualCap), segment i (1 ≤ i < L) joins points i-1
// and i and has opacity 1 - i/L. A visualCap of zero or less disables the
// cap.
func (tr *Trail) Segments(visualCap int) iter.Seq[TrailSegment] {
	return func(yield func(TrailSegment) bool) {
		l := tr.n
		if visualCap > 0 {
			l = min(l, visualCap)
		}
		if l < 2 {
			return
		}
		prev := tr.At(0)
		for i := 1; i < l; i++ {
			pt := tr.At(i)
			if !yield(TrailSegment{
				Line:  curve.Line{P0: prev, P1: pt},
				Alpha: 1 - float64(i)/float64(l),
			}) {
				return
			}
			prev = pt
		}
	}
}

// AppendSegments is like [Trail.Segments] but appends the segments to dst.
func (tr *Trail) AppendSegments(dst []TrailSegment, visualCap int) []TrailSegment {
	for seg := range tr.Segments(visualCap) {
		dst = append(dst, seg)
	}
	return dst
}
