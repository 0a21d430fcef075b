package factory

import (
	"github.com/automoto/rollaball/archetypes"
	"github.com/automoto/rollaball/components"
	cfg "github.com/automoto/rollaball/config"
	"github.com/automoto/rollaball/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera creates a follower for target. target may be nil.
func CreateCamera(ecs *ecs.ECS, target *donburi.Entry) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Position: gamemath.Zero(),
		LookAt:   gamemath.Zero(),
		Offset:   gamemath.Vec3(cfg.Camera.OffsetX, cfg.Camera.OffsetY, cfg.Camera.OffsetZ),
		Target:   target,
	})
	return camera
}
