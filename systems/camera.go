package systems

import (
	"math"

	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/config"
	"github.com/automoto/platformer/shared/gamemath"
	"github.com/automoto/platformer/tags"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	dt := config.C.DeltaTime()

	updateScreenShake(camera, dt)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)
	playerData := components.Player.Get(playerEntry)

	// Get level dimensions for camera bounds
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	updateLookOffset(camera, getOrCreateInput(e), playerData.Grounded, dt)

	// Calculate target camera position (following the player with look offset)
	cx, cy := playerObject.Rect().Center()
	targetX := cx + camera.LookOffset.X
	targetY := cy + camera.LookOffset.Y

	// Calculate camera bounds based on screen and level dimensions
	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	levelWidth := float64(levelData.CurrentLevel.Width)
	levelHeight := float64(levelData.CurrentLevel.Height)

	// Camera bounds: ensure the level always fills the screen
	minCameraX := screenWidth / 2
	maxCameraX := math.Max(minCameraX, levelWidth-screenWidth/2)
	minCameraY := screenHeight / 2
	maxCameraY := math.Max(minCameraY, levelHeight-screenHeight/2)

	// Constrain target position to camera bounds
	targetX = math.Max(minCameraX, math.Min(maxCameraX, targetX))
	targetY = math.Max(minCameraY, math.Min(maxCameraY, targetY))

	// Center the camera on the constrained target position, with some smoothing.
	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// updateLookOffset shifts the view toward a look direction held for long
// enough. Looking up reaches less far, and so does looking while airborne.
func updateLookOffset(camera *components.CameraData, input *components.InputData, grounded bool, dt float64) {
	lookX, lookY := input.LookX, input.LookY
	magnitude := math.Hypot(lookX, lookY)

	if magnitude > config.Camera.LookThreshold {
		camera.LookHeld += dt
	} else {
		camera.LookHeld = 0
	}

	var target dmath.Vec2
	if magnitude > config.Camera.LookThreshold && camera.LookHeld >= config.Camera.LookHoldTime {
		dirX, dirY := lookX/magnitude, lookY/magnitude
		target.X = dirX * config.Camera.LookOffsetX
		target.Y = -dirY * config.Camera.LookOffsetY // y is down on screen
		if dirY > 0 {
			target.Y *= config.Camera.UpMultiplier
		}
		if !grounded {
			target.X *= config.Camera.AirMultiplier
			target.Y *= config.Camera.AirMultiplier
		}
	}

	t := gamemath.ExpSmoothing(config.Camera.LookSmooth, dt)
	camera.LookOffset.X = gamemath.Lerp(camera.LookOffset.X, target.X, t)
	camera.LookOffset.Y = gamemath.Lerp(camera.LookOffset.Y, target.Y, t)
}

// updateScreenShake computes the decaying shake offset
func updateScreenShake(camera *components.CameraData, dt float64) {
	if !camera.Shake.Active() {
		camera.ShakeOffset = dmath.Vec2{}
		return
	}
	camera.Shake.Tick(dt)

	progress := 0.0
	if camera.ShakeDuration > 0 {
		progress = camera.Shake.Remaining() / camera.ShakeDuration
	}
	intensity := camera.ShakeIntensity * progress

	// Oscillating offset using sine/cosine for smooth shake
	elapsed := (camera.ShakeDuration - camera.Shake.Remaining()) * 60
	camera.ShakeOffset = dmath.Vec2{
		X: math.Sin(elapsed*1.1) * intensity,
		Y: math.Cos(elapsed*1.3) * intensity,
	}
}

// TriggerScreenShake starts a screen shake effect. A weaker shake does not
// override a stronger one in progress.
func TriggerScreenShake(ecs *ecs.ECS, intensity, duration float64) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	if camera.Shake.Active() && intensity <= camera.ShakeIntensity {
		return
	}
	camera.ShakeIntensity = intensity
	camera.ShakeDuration = duration
	camera.Shake.Reset(duration)
}
