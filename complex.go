package epicycle

import (
	"fmt"
	"math"

	"honnef.co/go/curve"
)

// Complex is a complex number, Re + Im·i. It doubles as a 2D vector ⟨Re, Im⟩.
//
// We don't use complex128 because the arms of an epicycle chain are vectors
// first and foremost, and the methods read better that way.
type Complex struct {
	Re float64
	Im float64
}

// Cx returns the complex number re + im·i.
func Cx(re, im float64) Complex {
	return Complex{Re: re, Im: im}
}

// Polar returns the complex number with magnitude r and phase theta.
func Polar(r, theta float64) Complex {
	sin, cos := math.Sincos(theta)
	return Complex{
		Re: r * cos,
		Im: r * sin,
	}
}

// ComplexFromVec2 returns the complex number x + y·i.
func ComplexFromVec2(v curve.Vec2) Complex {
	return Complex{Re: v.X, Im: v.Y}
}

func (c Complex) Splat() (float64, float64) {
	return c.Re, c.Im
}

func (c Complex) String() string {
	if c.Im < 0 || (c.Im == 0 && math.Signbit(c.Im)) {
		return fmt.Sprintf("%g-%gi", c.Re, -c.Im)
	}
	return fmt.Sprintf("%g+%gi", c.Re, c.Im)
}

// Magnitude returns the euclidean norm of c.
func (c Complex) Magnitude() float64 {
	return math.Hypot(c.Re, c.Im)
}

// Phase returns the argument of c, atan2(im, re), in (-π, π].
//
// The phase of zero is 0. Callers shouldn't attach any meaning to that.
func (c Complex) Phase() float64 {
	return math.Atan2(c.Im, c.Re)
}

// Rotate rotates c by angle radians. This is the same as multiplying by
// e^(i·angle).
func (c Complex) Rotate(angle float64) Complex {
	sin, cos := math.Sincos(angle)
	return Complex{
		Re: c.Re*cos - c.Im*sin,
		Im: c.Re*sin + c.Im*cos,
	}
}

func (c Complex) Add(o Complex) Complex {
	return Complex{
		Re: c.Re + o.Re,
		Im: c.Im + o.Im,
	}
}

func (c Complex) Sub(o Complex) Complex {
	return Complex{
		Re: c.Re - o.Re,
		Im: c.Im - o.Im,
	}
}

// Scale multiplies both parts of c by f.
func (c Complex) Scale(f float64) Complex {
	return Complex{
		Re: c.Re * f,
		Im: c.Im * f,
	}
}

// Mul returns the complex product c·o.
func (c Complex) Mul(o Complex) Complex {
	return Complex{
		Re: c.Re*o.Re - c.Im*o.Im,
		Im: c.Re*o.Im + c.Im*o.Re,
	}
}

// Conj returns the complex conjugate of c.
func (c Complex) Conj() Complex {
	return Complex{Re: c.Re, Im: -c.Im}
}

// Vec2 returns c as the vector ⟨re, im⟩.
func (c Complex) Vec2() curve.Vec2 {
	return curve.Vec(c.Re, c.Im)
}

// IsInf reports whether at least one of re and im is infinite.
func (c Complex) IsInf() bool {
	return math.IsInf(c.Re, 0) || math.IsInf(c.Im, 0)
}

// IsNaN reports whether at least one of re and im is NaN.
func (c Complex) IsNaN() bool {
	return math.IsNaN(c.Re) || math.IsNaN(c.Im)
}
