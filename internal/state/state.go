// internal/state/state.go
package state

import (
	"go-bug-smashers/internal/config"
	"go-bug-smashers/internal/defs"
	"go-bug-smashers/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Context — общие зависимости всех состояний.
type Context struct {
	Config  *config.Config
	Library *defs.Library
	Logger  *zap.Logger
	Sound   interfaces.Soundtrack
	Scores  interfaces.ScoreRecorder // nil, пока хранилище не открыто
	Seed    int64
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	quit    bool
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Current возвращает текущее состояние.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// Quit просит главный цикл завершиться.
func (sm *StateMachine) Quit() {
	sm.quit = true
}

// ShouldQuit сообщает, запрошен ли выход.
func (sm *StateMachine) ShouldQuit() bool {
	return sm.quit
}
