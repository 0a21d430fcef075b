package factory

import (
	"testing"

	"github.com/automoto/rollaball/components"
	"github.com/automoto/rollaball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestCreatePlayerFootprint(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e, 20, 20, 1)
	player := CreatePlayer(e, 10, 0.5, 10)

	obj := components.Object.Get(player).Object
	if got := obj.Tags(); len(got) != 1 || got[0] != tags.ResolvPlayer {
		t.Fatalf("footprint tags = %v, want [%s]", got, tags.ResolvPlayer)
	}
	if obj.Data != player {
		t.Fatal("footprint does not link back to the player entry")
	}

	spaceEntry, _ := components.Space.First(e.World)
	if n := len(components.Space.Get(spaceEntry).Objects()); n != 1 {
		t.Fatalf("space holds %d objects, want 1", n)
	}
}
