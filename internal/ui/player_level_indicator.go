// internal/ui/player_level_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PlayerLevelIndicator отображает уровень и опыт игрока.
type PlayerLevelIndicator struct {
	X, Y float32
}

const (
	xpBarWidth      = 118
	xpBarHeight     = 12
	levelRectWidth  = 16
	levelRectHeight = 12
	levelRectGap    = 9
	maxLevelRects   = 5
	borderWidth     = 1
)

var (
	xpBarColorFill = color.RGBA{70, 100, 120, 220}
	borderColor    = color.White
)

// NewPlayerLevelIndicator создает новый индикатор уровня.
func NewPlayerLevelIndicator(x, y float32) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{X: x, Y: y}
}

// Draw отрисовывает индикатор.
func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, level, currentXP, xpToNext int) {
	// 1. Полоса опыта
	vector.StrokeRect(screen, i.X, i.Y, xpBarWidth, xpBarHeight, borderWidth, borderColor, true)
	fillWidth := float32(float64(xpBarWidth-borderWidth*2) * xpRatio(currentXP, xpToNext))
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, xpBarHeight-borderWidth*2, xpBarColorFill, true)
	}
	DrawText(screen, fmt.Sprintf("%d/%d", currentXP, xpToNext), float64(i.X+xpBarWidth+8), float64(i.Y-1), 1, borderColor)

	// 2. Прямоугольники уровня; после пятого уровня рядом пишется число
	rectY := i.Y + xpBarHeight + 10
	filled := level % maxLevelRects
	if level > 0 && filled == 0 {
		filled = maxLevelRects
	}
	for j := 0; j < maxLevelRects; j++ {
		rectX := i.X + float32(j)*(levelRectWidth+levelRectGap)
		vector.StrokeRect(screen, rectX, rectY, levelRectWidth, levelRectHeight, borderWidth, borderColor, true)
		if j < filled {
			vector.DrawFilledRect(screen, rectX+borderWidth, rectY+borderWidth, levelRectWidth-borderWidth*2, levelRectHeight-borderWidth*2, xpBarColorFill, true)
		}
	}
	labelX := i.X + maxLevelRects*(levelRectWidth+levelRectGap)
	DrawText(screen, fmt.Sprintf("LV %d", level), float64(labelX), float64(rectY-1), 1, borderColor)
}

func xpRatio(currentXP, xpToNext int) float64 {
	if xpToNext <= 0 {
		return 0
	}
	r := float64(currentXP) / float64(xpToNext)
	if r > 1 {
		r = 1
	}
	if r < 0 {
		r = 0
	}
	return r
}
