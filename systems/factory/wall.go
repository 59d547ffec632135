package factory

import (
	"github.com/automoto/puppethands/archetypes"
	"github.com/automoto/puppethands/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	attach(ecs, wall, newBox(x, y, w, h, tags.ResolvSolid))
	return wall
}

func CreateKillVolume(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	kill := archetypes.KillVolume.Spawn(ecs)
	attach(ecs, kill, newBox(x, y, w, h, tags.ResolvKill))
	return kill
}
