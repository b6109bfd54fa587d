package util

import "math"

// Noun picks the singular or plural form for number.
func Noun(number int, one, many string) string {
	if int(math.Abs(float64(number))) == 1 {
		return one
	}
	return many
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
