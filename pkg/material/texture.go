package material

import (
	"math"

	"github.com/mveron/gotracer/pkg/core"
)

// SolidColor is a texture with a single uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a solid color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// NewSolidColorRGB creates a solid color texture from components
func NewSolidColorRGB(r, g, b float64) *SolidColor {
	return &SolidColor{Color: core.NewVec3(r, g, b)}
}

// ColorAt implements the Texture interface
func (s *SolidColor) ColorAt(u, v float64, point core.Vec3) core.Vec3 {
	return s.Color
}

// Checker alternates between two textures in a 3D checkerboard pattern
type Checker struct {
	Even core.Texture
	Odd  core.Texture
}

// NewChecker creates a checker texture from two sub-textures
func NewChecker(even, odd core.Texture) *Checker {
	return &Checker{Even: even, Odd: odd}
}

// NewCheckerFromColors creates a checker texture from two solid colors
func NewCheckerFromColors(even, odd core.Vec3) *Checker {
	return NewChecker(NewSolidColor(even), NewSolidColor(odd))
}

// ColorAt selects a sub-texture from the parity of a sine product over the
// hit point
func (c *Checker) ColorAt(u, v float64, point core.Vec3) core.Vec3 {
	sines := math.Sin(10*point.X) * math.Sin(10*point.Y) * math.Sin(10*point.Z)
	if sines < 0 {
		return c.Odd.ColorAt(u, v, point)
	}
	return c.Even.ColorAt(u, v, point)
}
