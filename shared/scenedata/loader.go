package scenedata

import (
	"fmt"
	"io/fs"
	"strconv"

	"github.com/lafriks/go-tiled"
)

// Object group names in the TMX file
const (
	GroupWalls       = "Walls"
	GroupBlocks      = "Blocks"
	GroupGoalZones   = "GoalZones"
	GroupButtons     = "Buttons"
	GroupSpawners    = "Spawners"
	GroupKillVolumes = "KillVolumes"
	GroupMetronome   = "Metronome"
	GroupHandSpawn   = "HandSpawn"
)

// LoadLayout parses a TMX file into a Layout. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS.
func LoadLayout(fsys fs.FS, tmxPath string) (*Layout, error) {
	sceneMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := &Layout{
		Width:  sceneMap.Width * sceneMap.TileWidth,
		Height: sceneMap.Height * sceneMap.TileHeight,
		HandSpawn: Point{
			X: float64(sceneMap.Width*sceneMap.TileWidth) / 2,
			Y: float64(sceneMap.Height*sceneMap.TileHeight) / 2,
		},
	}

	for _, og := range sceneMap.ObjectGroups {
		for _, o := range og.Objects {
			r := Rect{ID: o.ID, X: o.X, Y: o.Y, W: o.Width, H: o.Height}
			switch og.Name {
			case GroupWalls:
				layout.Walls = append(layout.Walls, r)
			case GroupBlocks:
				layout.Blocks = append(layout.Blocks, Block{
					Rect:  r,
					Score: o.Properties.GetBool("score"),
				})
			case GroupGoalZones:
				layout.GoalZones = append(layout.GoalZones, r)
			case GroupButtons:
				layout.Buttons = append(layout.Buttons, r)
			case GroupSpawners:
				button, err := objectRef(o.Properties, "button")
				if err != nil {
					return nil, fmt.Errorf("scene %s: spawner %d: %w", tmxPath, o.ID, err)
				}
				template, err := objectRef(o.Properties, "template")
				if err != nil {
					return nil, fmt.Errorf("scene %s: spawner %d: %w", tmxPath, o.ID, err)
				}
				layout.Spawners = append(layout.Spawners, Spawner{
					ButtonID:   button,
					TemplateID: template,
				})
			case GroupKillVolumes:
				layout.KillVolumes = append(layout.KillVolumes, r)
			case GroupMetronome:
				m := r
				layout.Metronome = &m
			case GroupHandSpawn:
				layout.HandSpawn = Point{X: o.X, Y: o.Y}
			}
		}
	}

	if err := layout.validate(); err != nil {
		return nil, fmt.Errorf("scene %s: %w", tmxPath, err)
	}
	return layout, nil
}

// objectRef reads a property holding another object's id. Tiled writes
// references as type "object"; plain ints are accepted too. A missing
// property reads as 0, which validate rejects.
func objectRef(props tiled.Properties, name string) (uint32, error) {
	for _, p := range props {
		if p.Name != name || (p.Type != "object" && p.Type != "int") {
			continue
		}
		id, err := strconv.ParseUint(p.Value, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("property %s: %w", name, err)
		}
		return uint32(id), nil
	}
	return 0, nil
}

// validate checks that spawners reference objects that exist.
func (l *Layout) validate() error {
	buttons := make(map[uint32]bool, len(l.Buttons))
	for _, b := range l.Buttons {
		buttons[b.ID] = true
	}
	blocks := make(map[uint32]bool, len(l.Blocks))
	for _, b := range l.Blocks {
		blocks[b.ID] = true
	}
	for _, s := range l.Spawners {
		if !buttons[s.ButtonID] {
			return fmt.Errorf("spawner references unknown button %d", s.ButtonID)
		}
		if !blocks[s.TemplateID] {
			return fmt.Errorf("spawner references unknown block %d", s.TemplateID)
		}
	}
	return nil
}
