// Package scenedata parses the TMX scene layout shared between the demo
// client and the dedicated server. It has no dependencies on ebitengine,
// donburi, or resolv; pure data only.
package scenedata

// Layout holds every placed object of a scene, in scene units.
type Layout struct {
	Width  int
	Height int

	HandSpawn   Point
	Walls       []Rect
	Blocks      []Block
	GoalZones   []Rect
	Buttons     []Rect
	Spawners    []Spawner
	KillVolumes []Rect
	Metronome   *Rect
}

type Point struct {
	X, Y float64
}

// Rect is a placed object. ID is the Tiled object id, used for references
// between objects.
type Rect struct {
	ID         uint32
	X, Y, W, H float64
}

// Block is a grabbable block; score blocks count toward goal zones.
type Block struct {
	Rect
	Score bool
}

// Spawner duplicates the block TemplateID whenever button ButtonID is pushed.
type Spawner struct {
	ButtonID   uint32
	TemplateID uint32
}
