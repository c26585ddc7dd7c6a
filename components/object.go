package components

import (
	"github.com/automoto/platformer/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Rect returns the object's bounds.
func (o ObjectData) Rect() gamemath.Rect {
	return RectOf(o.Object)
}

// RectOf returns the bounds of a resolv object.
func RectOf(obj *resolv.Object) gamemath.Rect {
	return gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}

var Object = donburi.NewComponentType[ObjectData]()
