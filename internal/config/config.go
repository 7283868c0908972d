// internal/config/config.go
package config

import "image/color"

const (
	TickRate   = 60 // Simulation ticks per second

	MapWidth           = 50
	MapHeight          = 30
	RockProbability    = 0.2
	MaxMapAttempts     = 1000
	InitialMoney       = 100
	InitialBaseHealth  = 100.0
	WaveBonusPerNumber = 5 // Money credited at wave start = waveNumber × this

	UpgradeCostFactor = 0.75 // Upgrade cost = floor(currentCost × factor × level)
	SellRefundFactor  = 0.5  // Sell value = floor(currentCost × factor)
	UpgradeDamage     = 1.5
	UpgradeRange      = 1.2
	UpgradeReload     = 0.8

	EnemyHealthExponent = 1.3  // Enemy health = base × ceil(wave^exponent)
	SpawnCooldownBase   = 10   // Spawn cooldown = max(0, base − ceil(sqrt(queued)))
	EnemySpeedScale     = 0.05 // Tiles per tick per unit of enemy speed
)

// GameSpeeds are the tick multipliers cycled by the speed button.
var GameSpeeds = []int{1, 2, 4}

const (
	TileSize     = 24
	HUDHeight    = 150
	ScreenWidth  = MapWidth * TileSize
	ScreenHeight = MapHeight*TileSize + HUDHeight
	MaxDeltaTime = 0.06

	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0
	SpeedButtonX     = 80
	SpeedButtonY     = 30
	SpeedButtonSize  = 14.0
	PauseButtonX     = 40
	HealthBarX       = 130

	PaletteX            = 10
	PaletteY            = 90
	PaletteButtonWidth  = 150
	PaletteButtonHeight = 40
	PaletteSpacing      = 10
	InfoPanelWidth      = 420

	EnemyRadiusFactor = 0.35
	TowerRadiusFactor = 0.4
	HealthBarHeight   = 3
)

var (
	BackgroundColor   = color.RGBA{20, 20, 30, 255}
	GroundColor       = color.RGBA{34, 139, 34, 255}
	RockColor         = color.RGBA{85, 85, 85, 255}
	PathColor         = color.RGBA{210, 180, 140, 255}
	EntryColor        = color.RGBA{0, 255, 0, 255}
	ExitColor         = color.RGBA{255, 0, 0, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TowerStrokeColor  = color.RGBA{255, 255, 255, 255}
	SelectedColor     = color.RGBA{255, 255, 0, 255}
	RangeColor        = color.RGBA{255, 255, 0, 60}
	HealthBarColor    = color.RGBA{220, 40, 40, 255}
	HealthBarBack     = color.RGBA{40, 40, 40, 200}
	FlashColor        = color.RGBA{255, 60, 60, 255}
	PanelColor        = color.RGBA{30, 30, 45, 230}
	NotStartedColor   = color.RGBA{120, 120, 120, 220}
	RunningColor      = color.RGBA{70, 130, 180, 220}
	PausedColor       = color.RGBA{194, 178, 128, 255}
	GameOverColor     = color.RGBA{220, 60, 60, 220}
	SpeedButtonColors = []color.RGBA{
		{70, 130, 180, 220},  // x1
		{220, 60, 60, 220},   // x2
		{194, 178, 128, 255}, // x4
	}
)
