// Package epicycle reconstructs closed 2D paths as sums of rotating vectors,
// so-called epicycles, derived from a discrete Fourier transform of the path's
// coordinates. It was designed to drive animations that trace a path with a
// chain of spinning arms, but it is pure numerics and does no drawing of its
// own.
//
// Geometry is expressed with the types of [honnef.co/go/curve]: points, lines,
// circles and rectangles. Colors are [colorful.Color] values.
//
// # From path to components
//
// A path is an ordered sequence of points sampled at uniform parametric steps
// in [0, 1). [Signal] centers the points on their centroid and turns them into
// [Complex] values, and [Transform] computes their DFT, keeps the N components
// with the largest magnitude and orders them by frequency. Frequencies are
// folded so that DFT index k of a signal of length n maps to k for k ≤ n/2 and
// to k−n otherwise; the Nyquist index of an even-length signal is thus
// positive.
//
// [Fit] performs all of the above and returns a [Series].
//
// # Evaluating
//
// [Series.Eval] returns the reconstructed point at time t. The series is
// periodic in t with period 1. [Series.Arms] produces the chain of partial
// sums, one [Arm] per component, which is what gets drawn as the rotating
// arms. The chain's last end point is exactly the value returned by Eval.
//
// # Animating
//
// A [Reconstruction] owns a series, a center offset, a display color and a
// [Trail] of previously reconstructed points. A [Scene] owns several
// reconstructions and a shared time value that advances by a fixed step per
// frame and wraps at 1. Time is always passed explicitly: [Reconstruction.Step]
// can be driven by a [Scene] or by the caller's own clock.
//
// Nothing in this package blocks or does I/O, and nothing is safe for
// concurrent mutation. One goroutine drives the frame loop.
//
// # Input paths
//
// [SampleShape] samples any [curve.Shape] at uniform arc-length steps.
// [SquarePath], [CirclePath] and [HeartPath] produce the usual demonstration
// curves.
//
// [colorful.Color]: https://pkg.go.dev/github.com/lucasb-eyer/go-colorful#Color
package epicycle
