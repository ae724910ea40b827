package component

// Phase — фаза игровой сессии
type Phase int

const (
	RunningPhase Phase = iota
	OverPhase
)

func (p Phase) String() string {
	switch p {
	case RunningPhase:
		return "running"
	case OverPhase:
		return "over"
	}
	return "unknown"
}
