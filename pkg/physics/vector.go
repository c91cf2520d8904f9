// pkg/physics/vector.go
package physics

import "math"

// Vector2D represents a 2D vector with x and y components.
// Screen coordinates are used throughout: X grows to the right, Y grows downwards.
type Vector2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the sum of two vectors
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X + other.X,
		Y: v.Y + other.Y,
	}
}

// Sub returns the difference between two vectors
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X - other.X,
		Y: v.Y - other.Y,
	}
}

// Scale multiplies the vector by a scalar value
func (v Vector2D) Scale(factor float64) Vector2D {
	return Vector2D{
		X: v.X * factor,
		Y: v.Y * factor,
	}
}

// Length returns the magnitude of the vector
func (v Vector2D) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vector2D) Normalize() Vector2D {
	length := v.Length()
	if length == 0 {
		return Vector2D{}
	}
	return Vector2D{
		X: v.X / length,
		Y: v.Y / length,
	}
}

// IsZero reports whether both components are zero
func (v Vector2D) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
