package geometry

import "fmt"

// Vector2 represents a 2D point or texture coordinate
type Vector2 struct {
	X, Y float32
}

// NewVector2 creates a new 2D vector
func NewVector2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns the sum of two vectors
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference between two vectors
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul multiplies the vector by a scalar
func (v Vector2) Mul(scalar float32) Vector2 {
	return Vector2{X: v.X * scalar, Y: v.Y * scalar}
}

// Div divides the vector by a scalar. It fails when the scalar is closer to
// zero than Epsilon.
func (v Vector2) Div(scalar float32) (Vector2, error) {
	if abs32(scalar) < Epsilon {
		return Vector2{}, ErrDivideByZero
	}
	return Vector2{X: v.X / scalar, Y: v.Y / scalar}, nil
}

// Dot returns the dot product of two vectors
func (v Vector2) Dot(other Vector2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the magnitude of the vector
func (v Vector2) Length() float32 {
	return sqrt32(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vector2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction. It fails for
// vectors of near-zero length.
func (v Vector2) Normalize() (Vector2, error) {
	length := v.Length()
	if length < Epsilon {
		return Vector2{}, fmt.Errorf("normalize zero-length vector: %w", ErrDivideByZero)
	}
	return Vector2{X: v.X / length, Y: v.Y / length}, nil
}

// Negate returns the vector with both components sign-flipped
func (v Vector2) Negate() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// Distance returns the distance between two points
func (v Vector2) Distance(other Vector2) float32 {
	return v.Sub(other).Length()
}

// DistanceSquared returns the squared distance between two points
func (v Vector2) DistanceSquared(other Vector2) float32 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	return dx*dx + dy*dy
}

// Lerp linearly interpolates between v and other by t
func (v Vector2) Lerp(other Vector2, t float32) Vector2 {
	return Vector2{
		X: v.X + (other.X-v.X)*t,
		Y: v.Y + (other.Y-v.Y)*t,
	}
}

// IsZero reports whether both components are within Epsilon of zero
func (v Vector2) IsZero() bool {
	return abs32(v.X) < Epsilon && abs32(v.Y) < Epsilon
}

// IsUnit reports whether the vector has length 1 within Epsilon
func (v Vector2) IsUnit() bool {
	return abs32(v.LengthSquared()-1) < Epsilon
}

// Equal reports componentwise equality within Epsilon
func (v Vector2) Equal(other Vector2) bool {
	return v.EqualEpsilon(other, Epsilon)
}

// EqualEpsilon reports componentwise equality within a caller-chosen tolerance
func (v Vector2) EqualEpsilon(other Vector2, epsilon float32) bool {
	return abs32(v.X-other.X) < epsilon && abs32(v.Y-other.Y) < epsilon
}

// AddInPlace adds other to the receiver
func (v *Vector2) AddInPlace(other Vector2) {
	v.X += other.X
	v.Y += other.Y
}

// SubInPlace subtracts other from the receiver
func (v *Vector2) SubInPlace(other Vector2) {
	v.X -= other.X
	v.Y -= other.Y
}

// MulInPlace multiplies the receiver by a scalar
func (v *Vector2) MulInPlace(scalar float32) {
	v.X *= scalar
	v.Y *= scalar
}

// NormalizeInPlace scales the receiver to unit length. It fails for vectors
// of near-zero length and leaves the receiver untouched in that case.
func (v *Vector2) NormalizeInPlace() error {
	length := v.Length()
	if length < Epsilon {
		return fmt.Errorf("normalize zero-length vector: %w", ErrDivideByZero)
	}
	v.X /= length
	v.Y /= length
	return nil
}
