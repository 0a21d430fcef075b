package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	PickUp = donburi.NewTag().SetName("PickUp")
	Magnet = donburi.NewTag().SetName("Magnet")
	Ground = donburi.NewTag().SetName("Ground")
)

// Resolv tags for the ground-plane spatial hash
const (
	ResolvPlayer = "Player"
	ResolvPickUp = "pickup"
	ResolvMagnet = "magnet"
	ResolvGround = "ground"
	ResolvQuery  = "query"
)
