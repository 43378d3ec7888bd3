package game

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// EntrantHueStep is the hue distance between consecutive entrants
const EntrantHueStep = 60

// HueColor converts a hue in degrees to a fully saturated colour of the given lightness
func HueColor(hue, lightness float64) color.RGBA {
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	r, g, b := colorful.Hsl(hue, 1, lightness).Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}

// EntrantHue returns the display hue of the entrant at index
func EntrantHue(index int) float64 {
	return float64((index * EntrantHueStep) % 360)
}

// ConfettiColor returns a random bright confetti colour
func ConfettiColor(rng Random) color.RGBA {
	return HueColor(rng.Float64()*360, 0.7)
}
