package systems

import (
	"github.com/automoto/rollaball/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera keeps each camera at its target plus offset, looking at the
// target. A camera whose target is missing keeps its last pose.
func UpdateCamera(e *ecs.ECS) {
	components.Camera.Each(e.World, func(cameraEntry *donburi.Entry) {
		followTarget(components.Camera.Get(cameraEntry))
	})
}

func followTarget(camera *components.CameraData) {
	target := camera.Target
	if target == nil || !target.Valid() || !target.HasComponent(components.Transform) {
		return
	}

	pos := components.Transform.Get(target).Position
	camera.Position = pos.Add(camera.Offset)
	camera.LookAt = pos.Clone()
}
