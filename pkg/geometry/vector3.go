package geometry

import (
	"fmt"
	"math"
)

// Vector3 represents a 3D point or direction
type Vector3 struct {
	X, Y, Z float32
}

// NewVector3 creates a new 3D vector
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub returns the difference between two vectors
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Mul multiplies the vector by a scalar
func (v Vector3) Mul(scalar float32) Vector3 {
	return Vector3{
		X: v.X * scalar,
		Y: v.Y * scalar,
		Z: v.Z * scalar,
	}
}

// MulElem multiplies two vectors componentwise
func (v Vector3) MulElem(other Vector3) Vector3 {
	return Vector3{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
	}
}

// Div divides the vector by a scalar. It fails when the scalar is closer to
// zero than Epsilon.
func (v Vector3) Div(scalar float32) (Vector3, error) {
	if abs32(scalar) < Epsilon {
		return Vector3{}, ErrDivideByZero
	}
	return Vector3{X: v.X / scalar, Y: v.Y / scalar, Z: v.Z / scalar}, nil
}

// Dot returns the dot product of two vectors
func (v Vector3) Dot(other Vector3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude of the vector
func (v Vector3) Length() float32 {
	return sqrt32(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vector3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector in the same direction. It fails for
// vectors of near-zero length.
func (v Vector3) Normalize() (Vector3, error) {
	length := v.Length()
	if length < Epsilon {
		return Vector3{}, fmt.Errorf("normalize zero-length vector: %w", ErrDivideByZero)
	}
	return Vector3{X: v.X / length, Y: v.Y / length, Z: v.Z / length}, nil
}

// NormalizeSafe returns a unit vector in the same direction, or the zero
// vector when the length is near zero.
func (v Vector3) NormalizeSafe() Vector3 {
	length := v.Length()
	if length < Epsilon {
		return Vector3{}
	}
	return Vector3{X: v.X / length, Y: v.Y / length, Z: v.Z / length}
}

// Distance returns the distance between two points
func (v Vector3) Distance(other Vector3) float32 {
	return v.Sub(other).Length()
}

// DistanceSquared returns the squared distance between two points
func (v Vector3) DistanceSquared(other Vector3) float32 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	dz := v.Z - other.Z
	return dx*dx + dy*dy + dz*dz
}

// Negate returns the vector with all components sign-flipped
func (v Vector3) Negate() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Min returns a vector with the minimum components of two vectors
func (v Vector3) Min(other Vector3) Vector3 {
	return Vector3{
		X: min(v.X, other.X),
		Y: min(v.Y, other.Y),
		Z: min(v.Z, other.Z),
	}
}

// Max returns a vector with the maximum components of two vectors
func (v Vector3) Max(other Vector3) Vector3 {
	return Vector3{
		X: max(v.X, other.X),
		Y: max(v.Y, other.Y),
		Z: max(v.Z, other.Z),
	}
}

// Clamp limits every component to the range spanned by lo and hi
func (v Vector3) Clamp(lo, hi Vector3) Vector3 {
	return v.Max(lo).Min(hi)
}

// Angle returns the angle between two vectors in radians. Zero-length
// inputs yield an angle of zero.
func (v Vector3) Angle(other Vector3) float32 {
	lenProduct := v.Length() * other.Length()
	if lenProduct < Epsilon {
		return 0
	}
	cos := v.Dot(other) / lenProduct
	cos = min(1, max(-1, cos))
	return float32(math.Acos(float64(cos)))
}

// Lerp linearly interpolates between v and other by t
func (v Vector3) Lerp(other Vector3, t float32) Vector3 {
	return Vector3{
		X: v.X + (other.X-v.X)*t,
		Y: v.Y + (other.Y-v.Y)*t,
		Z: v.Z + (other.Z-v.Z)*t,
	}
}

// Slerp spherically interpolates between v and other by t. Both inputs are
// expected to be unit vectors.
func (v Vector3) Slerp(other Vector3, t float32) Vector3 {
	dot := v.Dot(other)
	dot = min(1, max(-1, dot))

	theta := float32(math.Acos(float64(dot))) * t
	relative := other.Sub(v.Mul(dot)).NormalizeSafe()

	sin := float32(math.Sin(float64(theta)))
	cos := float32(math.Cos(float64(theta)))
	return v.Mul(cos).Add(relative.Mul(sin))
}

// Reflect mirrors the vector off a plane with the given unit normal
func (v Vector3) Reflect(normal Vector3) Vector3 {
	return v.Sub(normal.Mul(2 * v.Dot(normal)))
}

// Project returns the projection of the vector onto another. Projecting onto
// a near-zero vector yields the zero vector.
func (v Vector3) Project(onto Vector3) Vector3 {
	ontoLengthSq := onto.LengthSquared()
	if ontoLengthSq < Epsilon {
		return Vector3{}
	}
	return onto.Mul(v.Dot(onto) / ontoLengthSq)
}

// IsZero reports whether all components are within Epsilon of zero
func (v Vector3) IsZero() bool {
	return abs32(v.X) < Epsilon && abs32(v.Y) < Epsilon && abs32(v.Z) < Epsilon
}

// IsUnit reports whether the vector has length 1 within Epsilon
func (v Vector3) IsUnit() bool {
	return abs32(v.LengthSquared()-1) < Epsilon
}

// IsPerpendicular reports whether two vectors are perpendicular within Epsilon
func (v Vector3) IsPerpendicular(other Vector3) bool {
	return abs32(v.Dot(other)) < Epsilon
}

// IsParallel reports whether two vectors are parallel within Epsilon
func (v Vector3) IsParallel(other Vector3) bool {
	return v.Cross(other).IsZero()
}

// Equal reports componentwise equality within Epsilon
func (v Vector3) Equal(other Vector3) bool {
	return v.EqualEpsilon(other, Epsilon)
}

// EqualEpsilon reports componentwise equality within a caller-chosen tolerance
func (v Vector3) EqualEpsilon(other Vector3, epsilon float32) bool {
	return abs32(v.X-other.X) < epsilon &&
		abs32(v.Y-other.Y) < epsilon &&
		abs32(v.Z-other.Z) < epsilon
}

// AddInPlace adds other to the receiver
func (v *Vector3) AddInPlace(other Vector3) {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
}

// SubInPlace subtracts other from the receiver
func (v *Vector3) SubInPlace(other Vector3) {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
}

// MulInPlace multiplies the receiver by a scalar
func (v *Vector3) MulInPlace(scalar float32) {
	v.X *= scalar
	v.Y *= scalar
	v.Z *= scalar
}

// NormalizeInPlace scales the receiver to unit length. It fails for vectors
// of near-zero length and leaves the receiver untouched in that case.
func (v *Vector3) NormalizeInPlace() error {
	length := v.Length()
	if length < Epsilon {
		return fmt.Errorf("normalize zero-length vector: %w", ErrDivideByZero)
	}
	v.X /= length
	v.Y /= length
	v.Z /= length
	return nil
}
