package component

// Enemy представляет жука, который ползёт к башне.
type Enemy struct {
	DefID  string  // ID шаблона из конфигурации
	Damage float64 // Урон башне при контакте
	XP     int     // Опыт, выпадающий при убийстве
	Speed  float64 // Базовая скорость шаблона, без множителя сложности
}
