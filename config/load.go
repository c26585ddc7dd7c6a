package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigError reports one invalid tuning value.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// tuningFile mirrors the tunable globals. Keys missing from the file keep
// their current values.
type tuningFile struct {
	Physics         PhysicsConfig         `yaml:"physics"`
	Player          PlayerConfig          `yaml:"player"`
	Thwomp          ThwompConfig          `yaml:"thwomp"`
	Burner          BurnerConfig          `yaml:"burner"`
	JumpPad         JumpPadConfig         `yaml:"jumppad"`
	Fan             FanConfig             `yaml:"fan"`
	FallingPlatform FallingPlatformConfig `yaml:"fallingplatform"`
	Saw             SawConfig             `yaml:"saw"`
	MovingPlatform  MovingPlatformConfig  `yaml:"movingplatform"`
	Camera          CameraConfig          `yaml:"camera"`
	Game            GameConfig            `yaml:"game"`
}

func currentTuning() tuningFile {
	return tuningFile{
		Physics:         Physics,
		Player:          Player,
		Thwomp:          Thwomp,
		Burner:          Burner,
		JumpPad:         JumpPad,
		Fan:             Fan,
		FallingPlatform: FallingPlatform,
		Saw:             Saw,
		MovingPlatform:  MovingPlatform,
		Camera:          Camera,
		Game:            Game,
	}
}

func (t tuningFile) apply() {
	Physics = t.Physics
	Player = t.Player
	Thwomp = t.Thwomp
	Burner = t.Burner
	JumpPad = t.JumpPad
	Fan = t.Fan
	FallingPlatform = t.FallingPlatform
	Saw = t.Saw
	MovingPlatform = t.MovingPlatform
	Camera = t.Camera
	Game = t.Game
}

// LoadOverrides reads a YAML tuning file on top of the current values. The
// globals are only replaced when the merged result validates.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning file: %w", err)
	}
	return ApplyOverrides(data)
}

// ApplyOverrides merges YAML tuning data into the current values.
func ApplyOverrides(data []byte) error {
	merged := currentTuning()
	if err := yaml.Unmarshal(data, &merged); err != nil {
		return fmt.Errorf("parse tuning file: %w", err)
	}

	previous := currentTuning()
	merged.apply()
	if err := Validate(); err != nil {
		previous.apply()
		return err
	}
	return nil
}

// Validate checks the tuning values that would otherwise only fail at first
// use (missing sensor layers, zero durations, broken clip timelines).
func Validate() error {
	var errs []error
	bad := func(field, reason string) {
		errs = append(errs, &ConfigError{Field: field, Reason: reason})
	}
	positive := func(field string, v float64) {
		if v <= 0 {
			bad(field, fmt.Sprintf("must be positive, got %v", v))
		}
	}
	nonNegative := func(field string, v float64) {
		if v < 0 {
			bad(field, fmt.Sprintf("must not be negative, got %v", v))
		}
	}

	if C == nil || C.TPS <= 0 {
		bad("C.TPS", "must be positive")
	}
	positive("Physics.Gravity", Physics.Gravity)
	positive("Physics.MaxFallSpeed", Physics.MaxFallSpeed)
	if Physics.CellSize <= 0 {
		bad("Physics.CellSize", "must be positive")
	}

	positive("Player.MoveSpeed", Player.MoveSpeed)
	positive("Player.JumpPower", Player.JumpPower)
	positive("Player.Mass", Player.Mass)
	positive("Player.WallSlideSpeed", Player.WallSlideSpeed)
	nonNegative("Player.MoveDeadzone", Player.MoveDeadzone)
	nonNegative("Player.WallJumpLockTime", Player.WallJumpLockTime)
	nonNegative("Player.FacingLockTime", Player.FacingLockTime)
	nonNegative("Player.GroundIgnoreTime", Player.GroundIgnoreTime)
	nonNegative("Player.JumpBufferTime", Player.JumpBufferTime)
	positive("Player.GroundCastDepth", Player.GroundCastDepth)
	positive("Player.WallCastReach", Player.WallCastReach)
	positive("Player.CollisionWidth", Player.CollisionWidth)
	positive("Player.CollisionHeight", Player.CollisionHeight)
	if Player.MaxJumpCount < 1 {
		bad("Player.MaxJumpCount", "must allow at least one jump")
	}
	if len(Player.GroundLayers) == 0 {
		bad("Player.GroundLayers", "no ground layers configured")
	}
	if len(Player.WallLayers) == 0 {
		bad("Player.WallLayers", "no wall layers configured")
	}
	if Player.WallCastReach <= Player.CollisionWidth/2 {
		bad("Player.WallCastReach", "does not reach past the collision box")
	}

	positive("Thwomp.MoveSpeed", Thwomp.MoveSpeed)
	positive("Thwomp.ReturnSpeed", Thwomp.ReturnSpeed)
	positive("Thwomp.ProbeDistance", Thwomp.ProbeDistance)
	positive("Thwomp.ReturnEpsilon", Thwomp.ReturnEpsilon)
	nonNegative("Thwomp.BlinkTime", Thwomp.BlinkTime)
	nonNegative("Thwomp.HitTime", Thwomp.HitTime)
	nonNegative("Thwomp.StunTime", Thwomp.StunTime)
	if len(Thwomp.HitLayers) == 0 {
		bad("Thwomp.HitLayers", "no hit layers configured")
	}
	if _, err := ParseAxis(Thwomp.DefaultAxis); err != nil {
		bad("Thwomp.DefaultAxis", err.Error())
	}

	positive("Burner.OnTime", Burner.OnTime)
	positive("Burner.OffTime", Burner.OffTime)
	nonNegative("Burner.StartDelay", Burner.StartDelay)

	positive("JumpPad.BouncePower", JumpPad.BouncePower)
	nonNegative("JumpPad.Cooldown", JumpPad.Cooldown)

	nonNegative("Fan.MaxPower", Fan.MaxPower)
	positive("Fan.OnDuration", Fan.OnDuration)
	positive("Fan.OffDuration", Fan.OffDuration)

	positive("FallingPlatform.FloatDuration", FallingPlatform.FloatDuration)
	positive("FallingPlatform.SinkDuration", FallingPlatform.SinkDuration)
	positive("FallingPlatform.FallDuration", FallingPlatform.FallDuration)
	nonNegative("FallingPlatform.FallDelay", FallingPlatform.FallDelay)
	nonNegative("FallingPlatform.RespawnDelay", FallingPlatform.RespawnDelay)

	positive("Saw.MoveDuration", Saw.MoveDuration)
	positive("MovingPlatform.Speed", MovingPlatform.Speed)

	positive("Camera.LookSmooth", Camera.LookSmooth)
	nonNegative("Camera.LookHoldTime", Camera.LookHoldTime)

	if Game.MaxScore < 0 {
		bad("Game.MaxScore", "must not be negative")
	}
	nonNegative("Game.GameOverDelay", Game.GameOverDelay)
	nonNegative("Game.GameClearDelay", Game.GameClearDelay)

	errs = append(errs, validateClips()...)
	return errors.Join(errs...)
}

func validateClips() []error {
	var errs []error
	for name, clip := range Clips {
		if clip.Duration <= 0 {
			errs = append(errs, &ConfigError{Field: "Clips." + name, Reason: "duration must be positive"})
		}
		if clip.Next != "" {
			if _, ok := Clips[clip.Next]; !ok {
				errs = append(errs, &ConfigError{Field: "Clips." + name, Reason: fmt.Sprintf("unknown next clip %q", clip.Next)})
			}
		}
		for _, m := range clip.Marks {
			if m.Time < 0 || m.Time > clip.Duration {
				errs = append(errs, &ConfigError{Field: "Clips." + name, Reason: fmt.Sprintf("event %s outside the clip", m.Event)})
			}
		}
	}
	for name, event := range requiredClipEvents {
		if !clipHasEvent(name, event) {
			errs = append(errs, &ConfigError{Field: "Clips." + name, Reason: fmt.Sprintf("missing %s event", event)})
		}
	}
	return errs
}

func clipHasEvent(name string, event ClipEvent) bool {
	clip, ok := Clips[name]
	if !ok {
		return false
	}
	for _, m := range clip.Marks {
		if m.Event == event {
			return true
		}
	}
	return false
}
