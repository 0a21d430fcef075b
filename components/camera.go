package components

import (
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	Position vector.Vector
	LookAt   vector.Vector
	Offset   vector.Vector
	// Target is the followed entity. A nil or removed target freezes the camera.
	Target *donburi.Entry
}

var Camera = donburi.NewComponentType[CameraData]()
