package client

import (
	"github.com/automoto/puppethands/components"
	cfg "github.com/automoto/puppethands/config"
	"github.com/automoto/puppethands/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// Size of the log panel. The row log keeps more history than is shown.
const (
	screenLogWidth = 260
	screenLogRows  = 8
)

// DrawScreenLog renders the newest log rows that fit, bottom aligned, in a
// panel at the bottom left of the screen.
func DrawScreenLog(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.ScreenLog.First(ecs.World)
	if !ok {
		return
	}
	rows := components.ScreenLog.Get(entry).Rows()
	if len(rows) == 0 {
		return
	}

	height := screen.Bounds().Dy()
	rowHeight := cfg.ScreenLog.RowHeight
	visible := min(height/rowHeight, screenLogRows)
	if len(rows) > visible {
		rows = rows[len(rows)-visible:]
	}

	x := 0
	top := height - len(rows)*rowHeight
	vector.DrawFilledRect(screen, float32(x), float32(top), screenLogWidth, float32(height-top), cfg.ScreenLog.Background, false)

	face := fonts.Small.Get()
	for i, row := range rows {
		y := top + (i+1)*rowHeight - 2
		text.Draw(screen, row, face, x+4, y, cfg.ScreenLog.TextColor)
	}
}
