// internal/ui/health_bar.go
package ui

import (
	"fmt"
	"image/color"

	"go-bug-smashers/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HealthBar показывает здоровье башни.
type HealthBar struct {
	X, Y, Width, Height float32
}

var healthBack = color.RGBA{40, 40, 40, 200}

func NewHealthBar(x, y, width, height float32) *HealthBar {
	return &HealthBar{X: x, Y: y, Width: width, Height: height}
}

func (h *HealthBar) Draw(screen *ebiten.Image, value, max float64) {
	ratio := 0.0
	if max > 0 {
		ratio = value / max
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	vector.DrawFilledRect(screen, h.X, h.Y, h.Width, h.Height, healthBack, true)
	if ratio > 0 {
		vector.DrawFilledRect(screen, h.X, h.Y, h.Width*float32(ratio), h.Height, config.HealthBarColor, true)
	}
	vector.StrokeRect(screen, h.X, h.Y, h.Width, h.Height, borderWidth, borderColor, true)
	DrawCenteredText(screen, fmt.Sprintf("%.0f / %.0f", value, max), float64(h.X+h.Width/2), float64(h.Y+h.Height/2), 1, color.White)
}
