package utils

import (
	"math"
)

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// ModAngDeg maps an angle in degrees into [0, 360).
func ModAngDeg(ang float64) float64 {
	return math.Mod(math.Mod(ang, 360)+360, 360)
}

// ModAngRad maps an angle in radians into [0, 2pi).
func ModAngRad(ang float64) float64 {
	wrapped := math.Mod(math.Mod(ang, 2*math.Pi)+2*math.Pi, 2*math.Pi)
	if wrapped >= 2*math.Pi {
		return 0
	}
	return wrapped
}

// Float64AlmostEqual compares two float64s and returns if the difference between them is less than epsilon.
func Float64AlmostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}
