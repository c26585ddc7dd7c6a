package components

import (
	"github.com/automoto/platformer/tags"
	"github.com/yohamta/donburi"
)

// ContactData marks an entry's resolv object as a trigger of the given kind.
type ContactData struct {
	Kind tags.ContactKind
}

var Contact = donburi.NewComponentType[ContactData]()
