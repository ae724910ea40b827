// internal/component/visual.go
package component

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
// Timer > 0 означает, что вспышка активна.
type DamageFlash struct {
	Timer    float64 // Сколько времени эффекту осталось
	Duration float64 // Общая продолжительность эффекта
}

// Active reports whether the flash is currently visible.
func (f *DamageFlash) Active() bool {
	return f.Timer > 0
}

// Slash — след удара мухобойкой.
type Slash struct {
	Timer    float64 // Сколько времени эффект уже активен
	Duration float64
}

// Progress returns how far the slash animation has run, in [0, 1].
func (s *Slash) Progress() float64 {
	if s.Duration <= 0 {
		return 1
	}
	p := s.Timer / s.Duration
	if p > 1 {
		return 1
	}
	return p
}
