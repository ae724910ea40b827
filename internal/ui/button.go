// internal/ui/button.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button — прямоугольная кнопка с текстом.
type Button struct {
	X, Y, Width, Height float32
	Text                string
	Color               color.Color
	HoverColor          color.Color
	TextColor           color.Color
	LastClickTime       time.Time
}

func NewButton(x, y, width, height float32, label string, clr, hover, textColor color.Color) *Button {
	return &Button{
		X:          x,
		Y:          y,
		Width:      width,
		Height:     height,
		Text:       label,
		Color:      clr,
		HoverColor: hover,
		TextColor:  textColor,
	}
}

// Contains проверяет, что точка лежит внутри кнопки.
func (b *Button) Contains(x, y float64) bool {
	return x >= float64(b.X) && x <= float64(b.X+b.Width) &&
		y >= float64(b.Y) && y <= float64(b.Y+b.Height)
}

// Click отмечает нажатие (для анимации).
func (b *Button) Click() {
	b.LastClickTime = time.Now()
}

// Draw рисует кнопку; hovered подсвечивает её.
func (b *Button) Draw(screen *ebiten.Image, hovered bool) {
	fill := b.Color
	if hovered {
		fill = b.HoverColor
	}
	// Короткое "нажатие" после клика
	inset := float32(0)
	if time.Since(b.LastClickTime) < 120*time.Millisecond {
		inset = 2
	}
	vector.DrawFilledRect(screen, b.X+inset, b.Y+inset, b.Width-inset*2, b.Height-inset*2, fill, true)
	vector.StrokeRect(screen, b.X+inset, b.Y+inset, b.Width-inset*2, b.Height-inset*2, 2, color.White, true)
	DrawCenteredText(screen, b.Text, float64(b.X+b.Width/2), float64(b.Y+b.Height/2), 2, b.TextColor)
}
