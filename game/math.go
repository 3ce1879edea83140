package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ClampFloat clamps the given value to the given range.
func ClampFloat(num, min, max float64) float64 {
	if num < min {
		return min
	}
	return math.Min(num, max)
}

// Finite reports whether the value is neither NaN nor an infinity.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Vec3Finite reports whether all components of the vector are finite.
func Vec3Finite(vec mgl64.Vec3) bool {
	return Finite(vec[0]) && Finite(vec[1]) && Finite(vec[2])
}

// Round64 will round a float64 to a given precision.
func Round64(val float64, precision int) float64 {
	pwr := math.Pow(10, float64(precision))
	return math.Round(val*pwr) / pwr
}
