package components

import "github.com/yohamta/donburi"

// PickupData marks a collectable. Collection flips Active off once and the
// entity stays in the world, so a repeated trigger is ignored.
type PickupData struct {
	Active bool
}

var Pickup = donburi.NewComponentType[PickupData]()

// GroundData is a walkable surface. The footprint lives on the resolv object.
type GroundData struct {
	Top float64
}

var Ground = donburi.NewComponentType[GroundData]()
