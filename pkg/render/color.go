// pkg/render/color.go
package render

import "image/color"

// Palette holds the colors the entity renderer needs.
type Palette struct {
	Background  color.RGBA
	Grid        color.RGBA
	Tower       color.RGBA
	Stroke      color.RGBA
	Damage      color.RGBA
	Swatter     color.RGBA
	SwatterMesh color.RGBA
	Slash       color.RGBA
	StrokeWidth float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// FadeColor scales the alpha channel; t is clamped to [0, 1].
func FadeColor(c color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	// color.RGBA is premultiplied, so every channel scales
	return color.RGBA{
		R: uint8(float64(c.R) * t),
		G: uint8(float64(c.G) * t),
		B: uint8(float64(c.B) * t),
		A: uint8(float64(c.A) * t),
	}
}
