package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TweenData runs gween tweens one after another, optionally forever.
type TweenData struct {
	Steps []*gween.Tween
	Index int
	Loop  bool
	Value float64
	Done  bool
}

// NewTween builds a sequence from steps.
func NewTween(loop bool, steps ...*gween.Tween) TweenData {
	return TweenData{Steps: steps, Loop: loop}
}

// Update advances the sequence and returns the current value and whether
// the whole sequence has finished. Looping sequences never finish.
func (t *TweenData) Update(dt float64) (float64, bool) {
	if t.Done || len(t.Steps) == 0 {
		return t.Value, true
	}
	v, finished := t.Steps[t.Index].Update(float32(dt))
	t.Value = float64(v)
	if !finished {
		return t.Value, false
	}

	t.Index++
	if t.Index < len(t.Steps) {
		return t.Value, false
	}
	if !t.Loop {
		t.Done = true
		return t.Value, true
	}
	t.Index = 0
	for _, s := range t.Steps {
		s.Reset()
	}
	return t.Value, false
}

var Tween = donburi.NewComponentType[TweenData]()
