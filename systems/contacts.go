package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// contactHandler reacts to the player touching a trigger. enter runs on the
// first tick of an overlap, stay on every tick of it (the first included).
type contactHandler struct {
	enter func(ecs *ecs.ECS, player, trigger *donburi.Entry)
	stay  func(ecs *ecs.ECS, player, trigger *donburi.Entry)
}

var contactHandlers = map[tags.ContactKind]contactHandler{
	// Traps check on stay so a burner igniting under the player still kills.
	tags.ContactTrap:       {stay: touchTrap},
	tags.ContactFinish:     {enter: touchFinish},
	tags.ContactItem:       {enter: touchItem},
	tags.ContactCheckpoint: {enter: touchCheckpoint},
	tags.ContactJumpPad:    {enter: touchJumpPad},
	tags.ContactFan:        {stay: touchFan},
}

// UpdateContacts overlaps each player with the trigger objects and dispatches
// by contact kind.
func UpdateContacts(ecs *ecs.ECS) {
	space := getSpace(ecs)
	if space == nil {
		return
	}

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		// A frozen body takes no part in triggers; overlaps enter again once
		// it simulates.
		if !components.Physics.Get(e).Simulated {
			clear(player.Touching)
			return
		}
		obj := components.Object.Get(e).Object

		hits := boxQuery(space, components.RectOf(obj), tags.ResolvTrigger)
		touching := make(map[*resolv.Object]bool, len(hits))

		for _, o := range hits {
			trigger, ok := o.Data.(*donburi.Entry)
			if !ok || !trigger.Valid() || !trigger.HasComponent(components.Contact) {
				continue
			}
			touching[o] = true

			handler, ok := contactHandlers[components.Contact.Get(trigger).Kind]
			if !ok {
				continue
			}
			if !player.Touching[o] && handler.enter != nil {
				handler.enter(ecs, e, trigger)
			}
			if handler.stay != nil && trigger.Valid() {
				handler.stay(ecs, e, trigger)
			}
		}

		player.Touching = touching
	})
}

func touchTrap(_ *ecs.ECS, player, trigger *donburi.Entry) {
	if trigger.HasComponent(components.Trap) && !components.Trap.Get(trigger).Active {
		return
	}
	RequestDeath(player)
}

func touchFinish(_ *ecs.ECS, player, _ *donburi.Entry) {
	if components.State.Get(player).CurrentState == cfg.Dead {
		return
	}
	DisableControl(player)
	if game := components.Player.Get(player).Game; game != nil {
		game.GameClear()
	}
}

func touchItem(ecs *ecs.ECS, player, item *donburi.Entry) {
	if game := components.Player.Get(player).Game; game != nil {
		game.AddScore()
	}

	obj := components.Object.Get(item).Object
	if obj.Space != nil {
		obj.Space.Remove(obj)
	}
	ecs.World.Remove(item.Entity())
}

func touchCheckpoint(_ *ecs.ECS, _, checkpoint *donburi.Entry) {
	activateCheckpoint(checkpoint)
}

func touchJumpPad(ecs *ecs.ECS, player, pad *donburi.Entry) {
	stepOnJumpPad(pad, player, clock(ecs))
}

func touchFan(_ *ecs.ECS, player, fan *donburi.Entry) {
	blowPlayer(fan, player)
}
