package config

import "image/color"

const (
	MaxDeltaTime  = 0.06
	ClickCooldown = 300 // мс, защита UI-кнопок от дребезга

	DamageFlashDuration = 0.12
	TimerFontScale      = 3.0
	GameOverFontScale   = 6.0
	TopScoresOnMenu     = 5

	SwatterSpriteSize = 32.0 // Размер спрайта мухобойки, совпадает с диаметром коллайдера по умолчанию
)

var (
	BackgroundColor  = color.RGBA{28, 36, 28, 255}
	GridColor        = color.RGBA{40, 52, 40, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	GameOverColor    = color.RGBA{220, 40, 40, 255}
	TowerColor       = color.RGBA{50, 205, 50, 255}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	DamageColor      = color.RGBA{255, 80, 80, 255}
	SwatterColor     = color.RGBA{240, 240, 240, 255}
	SwatterMeshColor = color.RGBA{90, 90, 110, 255}
	SlashColor       = color.RGBA{255, 255, 200, 255}
	XPOrbColor       = color.RGBA{80, 200, 255, 255}
	ProjectileColor  = color.RGBA{255, 215, 0, 255}
	HealthBarColor   = color.RGBA{220, 60, 60, 220}
	XPBarColor       = color.RGBA{70, 130, 180, 220}
	ButtonColor      = color.RGBA{70, 100, 120, 220}
	ButtonHoverColor = color.RGBA{90, 130, 160, 240}
	PauseOverlay     = color.RGBA{0, 0, 0, 128}
	StrokeWidth      = float32(2.0)
)
