// internal/event/types.go
package event

import ark "github.com/mlange-42/ark/ecs"

const (
	EnemySpawned      EventType = "EnemySpawned"      // Жук появился
	EnemySwatted      EventType = "EnemySwatted"      // Жук прихлопнут мухобойкой
	EnemyKilled       EventType = "EnemyKilled"       // Жук убит снарядом
	EnemyReachedTower EventType = "EnemyReachedTower" // Жук добрался до башни
	TowerDamaged      EventType = "TowerDamaged"
	TowerDestroyed    EventType = "TowerDestroyed" // Башня разрушена, игра окончена
	SwatMissed        EventType = "SwatMissed"
	XPCollected       EventType = "XPCollected"
	LevelUp           EventType = "LevelUp"
	ProjectileFired   EventType = "ProjectileFired"
)

// EnemyData — данные событий о жуках
type EnemyData struct {
	Entity ark.Entity
	DefID  string
	X, Y   float64
	XP     int
}

// TowerData — данные событий о башне
type TowerData struct {
	Damage    float64
	Remaining float64
}

// XPData — собранный опыт
type XPData struct {
	Amount int
	Total  int
}

// LevelUpData — новый уровень игрока
type LevelUpData struct {
	Level         int
	XPToNextLevel int
}

// VolleyData — залп башни
type VolleyData struct {
	Count int
}
