// component/tower.go
package component

// Tower — башня в центре экрана, которую защищает игрок.
type Tower struct {
	Name string
}

// ProjectileEmitter стреляет залпами из башни.
type ProjectileEmitter struct {
	Amount   int     // Снарядов в залпе, 0 — эмиттер молчит
	Interval float64 // Период залпа в секундах
	Timer    float64 // Накопленное время с последнего залпа
	Speed    float64
	Damage   float64
}
