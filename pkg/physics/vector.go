// Package physics provides the 2D vector type shared by the world model and
// the turn protocol.
package physics

import (
	"fmt"
	"math"
	"strconv"
)

// Vec2 is a 2D vector. It is used both for positions and for velocities or
// accelerations.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Zero is the zero vector.
var Zero = Vec2{}

// Add returns v + r.
func (v Vec2) Add(r Vec2) Vec2 { return Vec2{v.X + r.X, v.Y + r.Y} }

// Sub returns v - r.
func (v Vec2) Sub(r Vec2) Vec2 { return Vec2{v.X - r.X, v.Y - r.Y} }

// Scale returns v multiplied by factor.
func (v Vec2) Scale(factor float64) Vec2 { return Vec2{v.X * factor, v.Y * factor} }

// Mul returns factor * v. It is the scalar-first form of Scale.
func Mul(factor float64, v Vec2) Vec2 { return Vec2{factor * v.X, factor * v.Y} }

// Dot returns the dot product of v and r.
func (v Vec2) Dot(r Vec2) float64 { return v.X*r.X + v.Y*r.Y }

// Distance returns the Euclidean distance between v and r.
func (v Vec2) Distance(r Vec2) float64 { return math.Hypot(r.X-v.X, r.Y-v.Y) }

// Magnitude returns the Euclidean length of v.
func (v Vec2) Magnitude() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns v divided by its magnitude. The zero vector has no
// direction and yields NaN components, so callers check IsZero first.
func (v Vec2) Normalize() Vec2 {
	m := v.Magnitude()
	return Vec2{v.X / m, v.Y / m}
}

// Rotate returns v rotated counter-clockwise by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// ClampMagnitude returns v unchanged when its magnitude is at most max and v
// rescaled to exactly max otherwise.
func (v Vec2) ClampMagnitude(max float64) Vec2 {
	m := v.Magnitude()
	if m <= max {
		return v
	}
	return v.Scale(max / m)
}

// Angle returns the direction of v in radians.
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// FromAngle builds a vector of the given magnitude pointing at angle radians.
func FromAngle(angle, magnitude float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{magnitude * cos, magnitude * sin}
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// IsFinite reports whether both components are finite numbers.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// MarshalJSON always renders a fractional part, so {1, 0} is written as
// {"x":1.0,"y":0.0} like the reference bots do.
func (v Vec2) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, 48)
	b = append(b, `{"x":`...)
	b, err := appendFloat(b, v.X)
	if err != nil {
		return nil, err
	}
	b = append(b, `,"y":`...)
	if b, err = appendFloat(b, v.Y); err != nil {
		return nil, err
	}
	return append(b, '}'), nil
}

// appendFloat follows encoding/json's float64 formatting and appends ".0"
// when the result would otherwise read as an integer.
func appendFloat(dst []byte, f float64) ([]byte, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("physics: unsupported vector component %v", f)
	}

	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}

	start := len(dst)
	dst = strconv.AppendFloat(dst, f, format, -1, 64)
	if format == 'e' {
		// e-09 -> e-9
		n := len(dst)
		if n-start >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
		return dst, nil
	}

	for _, c := range dst[start:] {
		if c == '.' {
			return dst, nil
		}
	}
	return append(dst, '.', '0'), nil
}
