package components

import "github.com/yohamta/donburi"

// ContactsData remembers which entities a body touched on the previous step,
// so enter and exit events are only published on change.
type ContactsData struct {
	Ground   map[donburi.Entity]struct{}
	Triggers map[donburi.Entity]struct{}
}

var Contacts = donburi.NewComponentType[ContactsData]()
