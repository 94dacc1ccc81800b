package ebiten

import (
	"image/color"
	"math"
)

// victoryPulsePeriod is the length of one victory banner pulse in ms
const victoryPulsePeriod = 2000.0

// pulse returns a value oscillating smoothly between lo and hi over
// periodMs, driven by a sine wave
func pulse(now int64, periodMs, lo, hi float64) float64 {
	phase := float64(now%int64(periodMs)) / periodMs
	v := (math.Sin(phase*2*math.Pi) + 1.0) / 2.0
	return lo + (hi-lo)*v
}

// pulsingColor scales the brightness of base between 60% and 100%
func pulsingColor(base color.Color, now int64) color.Color {
	brightness := pulse(now, victoryPulsePeriod, 0.6, 1.0)

	r, g, b, a := base.RGBA()
	return color.RGBA{
		R: uint8(float64(r>>8) * brightness),
		G: uint8(float64(g>>8) * brightness),
		B: uint8(float64(b>>8) * brightness),
		A: uint8(a >> 8),
	}
}
