package tags

// ContactKind classifies what a trigger does to the player that touches it.
type ContactKind int

const (
	ContactTrap ContactKind = iota
	ContactFinish
	ContactItem
	ContactCheckpoint
	ContactJumpPad
	ContactFan
	contactKindCount
)

var contactKindNames = [contactKindCount]string{
	ContactTrap:       "Trap",
	ContactFinish:     "Finish",
	ContactItem:       "Item",
	ContactCheckpoint: "Checkpoint",
	ContactJumpPad:    "JumpPad",
	ContactFan:        "Fan",
}

func (k ContactKind) String() string {
	if k.Valid() {
		return contactKindNames[k]
	}
	return "Unknown"
}

func (k ContactKind) Valid() bool {
	return k >= 0 && k < contactKindCount
}

// ContactKinds lists every kind in declaration order.
func ContactKinds() []ContactKind {
	kinds := make([]ContactKind, 0, contactKindCount)
	for k := ContactKind(0); k < contactKindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseContactKind maps a level-editor class name ("Trap", "Item", ...) to a kind.
func ParseContactKind(name string) (ContactKind, bool) {
	for k, n := range contactKindNames {
		if n == name {
			return ContactKind(k), true
		}
	}
	return 0, false
}
