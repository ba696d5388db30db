package types

import "fmt"

// Vec2 is an integer grid position or offset.
type Vec2 struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewVec2(x, y int) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) String() string {
	return fmt.Sprintf("Vec2{X: %d, Y: %d}", v.X, v.Y)
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Mul scales both components by scalar.
func (v Vec2) Mul(scalar int) Vec2 {
	return Vec2{v.X * scalar, v.Y * scalar}
}

// LengthSq returns the squared length. Grid code compares distances with this
// instead of taking square roots.
func (v Vec2) LengthSq() int {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Dot(other Vec2) int {
	return v.X*other.X + v.Y*other.Y
}

// Manhattan returns the 4-neighbour walking distance between v and other.
func (v Vec2) Manhattan(other Vec2) int {
	return abs(v.X-other.X) + abs(v.Y-other.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
