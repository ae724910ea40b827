// internal/state/input.go
package state

import (
	"go-bug-smashers/internal/system"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// readPointer собирает состояние мыши за кадр.
func readPointer(width, height int) system.PointerInput {
	x, y := ebiten.CursorPosition()
	inside := ebiten.IsFocused() && x >= 0 && y >= 0 && x < width && y < height
	return system.PointerInput{
		X:           float64(x),
		Y:           float64(y),
		Inside:      inside,
		JustPressed: inside && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
}

// syncCursor прячет системный курсор, пока над окном рисуется мухобойка.
func syncCursor(hidden bool) {
	mode := ebiten.CursorModeVisible
	if hidden {
		mode = ebiten.CursorModeHidden
	}
	if ebiten.CursorMode() != mode {
		ebiten.SetCursorMode(mode)
	}
}

func confirmPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}

func pausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
