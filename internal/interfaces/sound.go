package interfaces

import "go-bug-smashers/internal/event"

// Soundtrack — звук, которым управляют состояния игры.
type Soundtrack interface {
	Attach(d *event.Dispatcher)
	Detach(d *event.Dispatcher)
	PlayInGame()
	PlayGameOver()
	Stop()
}
