package factory

import (
	"fmt"

	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateThwomp creates a crushing block. The block is solid ground that can be
// ridden; its leading face carries a trap that is only armed while moving.
func CreateThwomp(ecs *ecs.ECS, spawn assets.ThwompSpawn) (*donburi.Entry, error) {
	axisName := spawn.Axis
	if axisName == "" {
		axisName = cfg.Thwomp.DefaultAxis
	}
	axis, err := cfg.ParseAxis(axisName)
	if err != nil {
		return nil, fmt.Errorf("thwomp at (%.0f, %.0f): %w", spawn.X, spawn.Y, err)
	}

	w, h := spawn.Width, spawn.Height
	if w <= 0 || h <= 0 {
		w, h = cfg.Thwomp.DefaultWidth, cfg.Thwomp.DefaultHeight
	}

	thwomp := archetypes.Thwomp.Spawn(ecs)
	obj := newBox(spawn.X, spawn.Y, w, h, tags.ResolvSolid, tags.ResolvGround, tags.ResolvThwomp)
	components.Object.SetValue(thwomp, components.ObjectData{Object: obj})
	addToSpace(ecs, thwomp, obj)

	trap := archetypes.ThwompTrap.Spawn(ecs)
	tx, ty, tw, th := ThwompTrapBounds(spawn.X, spawn.Y, w, h, axis)
	trapObj := newBox(tx, ty, tw, th, tags.ResolvTrigger)
	components.Object.SetValue(trap, components.ObjectData{Object: trapObj})
	components.Contact.SetValue(trap, components.ContactData{Kind: tags.ContactTrap})
	components.Trap.SetValue(trap, components.TrapData{Active: false})
	addToSpace(ecs, trap, trapObj)

	components.Thwomp.SetValue(thwomp, components.ThwompData{
		State:  cfg.ThwompIdle,
		Axis:   axis,
		StartX: spawn.X,
		StartY: spawn.Y,
		Trap:   trapObj,
	})

	return thwomp, nil
}

// ThwompTrapBounds returns the trap strip on the face of a block at (x, y)
// pointing along axis.
func ThwompTrapBounds(x, y, w, h float64, axis cfg.Axis) (float64, float64, float64, float64) {
	t := cfg.Thwomp.TrapThickness
	switch axis {
	case cfg.AxisUp:
		return x, y - t, w, t
	case cfg.AxisLeft:
		return x - t, y, t, h
	case cfg.AxisRight:
		return x + w, y, t, h
	}
	return x, y + h, w, t
}
