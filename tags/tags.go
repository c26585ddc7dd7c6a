package tags

import "github.com/yohamta/donburi"

var (
	Player          = donburi.NewTag().SetName("Player")
	Ground          = donburi.NewTag().SetName("Ground")
	Wall            = donburi.NewTag().SetName("Wall")
	Thwomp          = donburi.NewTag().SetName("Thwomp")
	Burner          = donburi.NewTag().SetName("Burner")
	JumpPad         = donburi.NewTag().SetName("JumpPad")
	Fan             = donburi.NewTag().SetName("Fan")
	Saw             = donburi.NewTag().SetName("Saw")
	FallingPlatform = donburi.NewTag().SetName("FallingPlatform")
	MovingPlatform  = donburi.NewTag().SetName("MovingPlatform")
	Checkpoint      = donburi.NewTag().SetName("Checkpoint")
	FinishLine      = donburi.NewTag().SetName("FinishLine")
	Item            = donburi.NewTag().SetName("Item")
	DeadZone        = donburi.NewTag().SetName("DeadZone")
)

// Resolv tags for physics collision
const (
	ResolvSolid   = "solid"
	ResolvGround  = "ground"
	ResolvWall    = "wall"
	ResolvPlayer  = "Player"
	ResolvTrigger = "trigger"
	ResolvThwomp  = "thwomp"
)
