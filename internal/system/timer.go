// internal/system/timer.go
package system

import "go-bug-smashers/internal/utils"

// GameTimer — секундомер игровой сессии. Пауза не тикает Update, поэтому время стоит.
type GameTimer struct {
	elapsed float64
}

func NewGameTimer() *GameTimer {
	return &GameTimer{}
}

func (t *GameTimer) Update(deltaTime float64) {
	if deltaTime > 0 {
		t.elapsed += deltaTime
	}
}

func (t *GameTimer) Reset() {
	t.elapsed = 0
}

func (t *GameTimer) Elapsed() float64 {
	return t.elapsed
}

// Text возвращает время в виде "MM : SS".
func (t *GameTimer) Text() string {
	return utils.FormatClock(t.elapsed)
}
