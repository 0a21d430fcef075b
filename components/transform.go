package components

import (
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
)

// TransformData is an entity's world position. Y is up; the ground plane is XZ.
type TransformData struct {
	Position vector.Vector
}

var Transform = donburi.NewComponentType[TransformData]()
