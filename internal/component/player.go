// internal/component/player.go
package component

// PlayerStateComponent хранит информацию, специфичную для игрока,
// такую как его текущий уровень и опыт.
type PlayerStateComponent struct {
	Level         int // Текущий уровень игрока
	CurrentXP     int // Текущее количество очков опыта
	XPToNextLevel int // Количество опыта, необходимое для следующего уровня
	Kills         int
}

// Swatter — мухобойка, которая следует за курсором.
type Swatter struct {
	LastX    float64 // X на прошлом кадре, для разворота спрайта
	FlipX    bool
	Cooldown float64 // Сколько секунд осталось до следующего удара
}

// Experience — сфера опыта, выпадающая из жука.
type Experience struct {
	Value int
	TTL   float64
}
