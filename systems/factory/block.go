package factory

import (
	"github.com/automoto/puppethands/archetypes"
	"github.com/automoto/puppethands/components"
	cfg "github.com/automoto/puppethands/config"
	"github.com/automoto/puppethands/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBlock spawns a grabbable block. Blocks made at runtime grow in from
// nothing; blocks placed by the scene start full size.
func CreateBlock(ecs *ecs.ECS, x, y float64, score, grow bool) *donburi.Entry {
	block := archetypes.Block.Spawn(ecs)

	resolvTags := []string{tags.ResolvInteractable}
	if score {
		resolvTags = append(resolvTags, tags.ResolvScoreBlock)
	}
	size := cfg.Block.Size
	attach(ecs, block, newBox(x, y, size, size, resolvTags...))

	data := components.InteractableData{Score: score, Scale: 1}
	if grow && cfg.Block.GrowSeconds > 0 {
		data.Scale = 0
		data.Grow = gween.New(0, 1, float32(cfg.Block.GrowSeconds), ease.OutBack)
	}
	components.Interactable.SetValue(block, data)

	return block
}

// DuplicateBlock copies template at the given offset.
func DuplicateBlock(ecs *ecs.ECS, template *donburi.Entry, dx, dy float64) *donburi.Entry {
	obj := components.Object.Get(template)
	score := components.Interactable.Get(template).Score
	return CreateBlock(ecs, obj.X+dx, obj.Y+dy, score, true)
}
