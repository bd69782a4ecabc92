package waveform

import "math"

// Gamma is the exponent of the perceptual brightness estimate (r+g+b)^Gamma.
const Gamma = 0.43

// Blend mixes two colors at t in [0,1]. The channels are interpolated in linear
// light, then rescaled so their sum carries the interpolated perceptual brightness
// of the endpoints instead of the duller plain average.
func Blend(from, to RGB, t float64) RGB {
	return blendLinear(from.linear(), to.linear(), t)
}

func blendLinear(from, to linear, t float64) RGB {
	brightness := math.Pow(lerp(math.Pow(from.sum(), Gamma), math.Pow(to.sum(), Gamma), t), 1/Gamma)

	mixed := linear{
		r: lerp(from.r, to.r, t),
		g: lerp(from.g, to.g, t),
		b: lerp(from.b, to.b, t),
	}

	sum := mixed.sum()
	if sum <= 0 {
		return Black
	}

	scale := brightness / sum
	return RGB{
		R: ToSRGB(mixed.r * scale),
		G: ToSRGB(mixed.g * scale),
		B: ToSRGB(mixed.b * scale),
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
