package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// UnitPixels converts level-design units to pixels.
const UnitPixels = 32.0

// Render layers
const (
	Default ecs.LayerID = iota
	Overlay
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// DeltaTime is the fixed simulation step in seconds.
func (c *Config) DeltaTime() float64 {
	return 1.0 / float64(c.TPS)
}

// PlayerConfig contains all player movement tuning. Distances are pixels,
// speeds pixels per second, times seconds.
type PlayerConfig struct {
	// Movement
	MoveSpeed    float64
	MoveDeadzone float64
	JumpPower    float64
	MaxJumpCount int
	Mass         float64

	// Wall interaction
	WallSlideSpeed     float64
	WallJumpHorizontal float64
	WallJumpVertical   float64
	WallJumpLockTime   float64 // horizontal control lock after a wall jump
	FacingLockTime     float64 // facing flip lock after a wall jump

	// Timing windows
	GroundIgnoreTime float64
	JumpBufferTime   float64

	// Dynamic gravity
	GroundGravityScale float64
	RiseGravityScale   float64
	FallGravityScale   float64
	RiseThreshold      float64 // upward speed above which the player counts as rising

	// Sensors, measured from the centre of the feet
	GroundCastSpread   float64
	GroundCastDepth    float64
	WallCastLowHeight  float64
	WallCastHighHeight float64
	WallCastReach      float64
	GroundLayers       []string
	WallLayers         []string

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
}

// PhysicsConfig contains global rigid body settings
type PhysicsConfig struct {
	Gravity      float64 // pixels per second squared at gravity scale 1
	MaxFallSpeed float64
	CellSize     int // resolv space cell size
}

// ThwompConfig contains crushing block tuning
type ThwompConfig struct {
	MoveSpeed     float64
	ReturnSpeed   float64
	BlinkTime     float64
	HitTime       float64
	StunTime      float64
	DetectAcross  float64 // detection box size perpendicular to the move axis
	DetectAlong   float64 // detection box reach along the move axis
	ProbeOffset   float64
	ProbeDistance float64
	ReturnEpsilon float64
	TrapThickness float64
	HitLayers     []string
	DefaultWidth  float64
	DefaultHeight float64
	DefaultAxis   string
}

// BurnerConfig contains flame trap timing
type BurnerConfig struct {
	OnTime     float64
	OffTime    float64
	StartDelay float64
}

// JumpPadConfig contains spring pad tuning
type JumpPadConfig struct {
	BouncePower float64
	Cooldown    float64
	InitialLast float64 // timestamp of the last bounce before the level starts
}

// FanConfig contains updraft tuning
type FanConfig struct {
	MaxPower    float64 // upward acceleration at full power, pixels per second squared
	ChangeSpeed float64
	OnDuration  float64
	OffDuration float64
}

// FallingPlatformConfig contains crumbling platform tween settings
type FallingPlatformConfig struct {
	FloatDistance float64
	FloatDuration float64
	SinkDistance  float64
	SinkDuration  float64
	FallDelay     float64
	FallDistance  float64
	FallDuration  float64
	RespawnDelay  float64
}

// SawConfig contains saw blade motion settings
type SawConfig struct {
	MoveDistance float64
	MoveDuration float64
}

// MovingPlatformConfig contains ping-pong platform settings
type MovingPlatformConfig struct {
	Speed float64 // round trips are 2/Speed seconds long
}

// CameraConfig contains camera follow and look settings
type CameraConfig struct {
	FollowSmoothing float64

	LookOffsetX   float64
	LookOffsetY   float64
	LookSmooth    float64
	LookHoldTime  float64
	LookThreshold float64
	UpMultiplier  float64
	AirMultiplier float64

	ShakeIntensity float64 // pixels
	ShakeDuration  float64
}

// GameConfig contains score and scene flow settings
type GameConfig struct {
	MaxScore       int
	GameOverDelay  float64
	GameClearDelay float64
	Level          string
}

// UIConfig contains HUD settings
type UIConfig struct {
	ScoreColor   color.RGBA
	BannerColor  color.RGBA
	GameOverText string
	ClearText    string
	ScoreFormat  string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled    bool   // draw collision shapes and state names
	ConfigPath string // optional YAML tuning overrides
	Watch      bool   // reload ConfigPath when it changes
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Thwomp ThwompConfig
var Burner BurnerConfig
var JumpPad JumpPadConfig
var Fan FanConfig
var FallingPlatform FallingPlatformConfig
var Saw SawConfig
var MovingPlatform MovingPlatformConfig
var Camera CameraConfig
var Game GameConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Gray         = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	DarkGray     = color.RGBA{R: 60, G: 60, B: 70, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	SetDefaults()
}

// SetDefaults resets every tuning struct to its built-in values.
func SetDefaults() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Physics = PhysicsConfig{
		Gravity:      9.81 * UnitPixels,
		MaxFallSpeed: 25 * UnitPixels,
		CellSize:     16,
	}

	Player = PlayerConfig{
		// Movement
		MoveSpeed:    5 * UnitPixels,
		MoveDeadzone: 0.01,
		JumpPower:    8 * UnitPixels,
		MaxJumpCount: 2,
		Mass:         1,

		// Wall interaction
		WallSlideSpeed:     1 * UnitPixels,
		WallJumpHorizontal: 5 * UnitPixels,
		WallJumpVertical:   8 * UnitPixels,
		WallJumpLockTime:   0.2,
		FacingLockTime:     0.2,

		GroundIgnoreTime: 0.1,
		JumpBufferTime:   0.1,

		GroundGravityScale: 2,
		RiseGravityScale:   2,
		FallGravityScale:   3,
		RiseThreshold:      0.1 * UnitPixels,

		GroundCastSpread:   0.3 * UnitPixels,
		GroundCastDepth:    0.1 * UnitPixels,
		WallCastLowHeight:  0.4 * UnitPixels,
		WallCastHighHeight: 1.0 * UnitPixels,
		WallCastReach:      0.6 * UnitPixels,
		GroundLayers:       []string{"ground"},
		WallLayers:         []string{"wall"},

		CollisionWidth:  0.75 * UnitPixels,
		CollisionHeight: 1.0 * UnitPixels,
	}

	Thwomp = ThwompConfig{
		MoveSpeed:     8 * UnitPixels,
		ReturnSpeed:   6 * UnitPixels,
		BlinkTime:     0.3,
		HitTime:       0.15,
		StunTime:      0.5,
		DetectAcross:  3 * UnitPixels,
		DetectAlong:   7 * UnitPixels,
		ProbeOffset:   0.05 * UnitPixels,
		ProbeDistance: 0.2 * UnitPixels,
		ReturnEpsilon: 0.05,
		TrapThickness: 4,
		HitLayers:     []string{"ground", "wall"},
		DefaultWidth:  2 * UnitPixels,
		DefaultHeight: 2 * UnitPixels,
		DefaultAxis:   "down",
	}

	Burner = BurnerConfig{
		OnTime:     1.5,
		OffTime:    1.5,
		StartDelay: 0,
	}

	JumpPad = JumpPadConfig{
		BouncePower: 12 * UnitPixels,
		Cooldown:    0.5,
		InitialLast: -999,
	}

	Fan = FanConfig{
		MaxPower:    40 * UnitPixels,
		ChangeSpeed: 2,
		OnDuration:  2,
		OffDuration: 2,
	}

	FallingPlatform = FallingPlatformConfig{
		FloatDistance: 0.3 * UnitPixels,
		FloatDuration: 1,
		SinkDistance:  0.2 * UnitPixels,
		SinkDuration:  0.15,
		FallDelay:     0.5,
		FallDistance:  5 * UnitPixels,
		FallDuration:  1,
		RespawnDelay:  2,
	}

	Saw = SawConfig{
		MoveDistance: 3 * UnitPixels,
		MoveDuration: 2,
	}

	MovingPlatform = MovingPlatformConfig{
		Speed: 0.5,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		LookOffsetX:     2 * UnitPixels,
		LookOffsetY:     2 * UnitPixels,
		LookSmooth:      10,
		LookHoldTime:    0.15,
		LookThreshold:   0.5,
		UpMultiplier:    0.7,
		AirMultiplier:   0.6,
		ShakeIntensity:  3,
		ShakeDuration:   0.25,
	}

	Game = GameConfig{
		MaxScore:       99,
		GameOverDelay:  1.5,
		GameClearDelay: 1.5,
		Level:          "levels/level1.tmx",
	}

	UI = UIConfig{
		ScoreColor:   White,
		BannerColor:  Yellow,
		GameOverText: "GAME OVER",
		ClearText:    "GAME CLEAR",
		ScoreFormat:  "SCORE %02d",
	}
}
