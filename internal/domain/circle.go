package domain

import "math"

type Circle struct {
	X      float64
	Y      float64
	Radius float64
}

// Area returns π·r². A negative radius is accepted and yields the same area
// as its absolute value.
func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}
