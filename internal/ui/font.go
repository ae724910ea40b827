// internal/ui/font.go
package ui

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Face — общий растровый шрифт интерфейса. Крупный текст получается масштабированием.
var Face = text.NewGoXFace(basicfont.Face7x13)

const lineSpacing = 13

// MeasureText возвращает размер строки при заданном масштабе.
func MeasureText(s string, scale float64) (float64, float64) {
	w, h := text.Measure(s, Face, lineSpacing)
	return w * scale, h * scale
}

// DrawText рисует строку с левым верхним углом в (x, y).
func DrawText(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = lineSpacing
	text.Draw(dst, s, Face, op)
}

// DrawCenteredText рисует строку с центром в (cx, cy).
func DrawCenteredText(dst *ebiten.Image, s string, cx, cy, scale float64, clr color.Color) {
	w, h := MeasureText(s, scale)
	DrawText(dst, s, cx-w/2, cy-h/2, scale, clr)
}

// CheckFont убеждается, что шрифт даёт ненулевые метрики.
func CheckFont() error {
	if w, _ := MeasureText("Ag", 1); w <= 0 {
		return errors.New("ui font has no glyph metrics")
	}
	return nil
}
