package client

import (
	"image/color"
	"math"

	"github.com/automoto/puppethands/components"
	cfg "github.com/automoto/puppethands/config"
	"github.com/automoto/puppethands/shared/gamemath"
	"github.com/automoto/puppethands/systems"
	"github.com/automoto/puppethands/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// killColor is the translucent fill of kill volumes.
var killColor = color.RGBA{R: 120, G: 0, B: 0, A: 120}

func fillObject(screen *ebiten.Image, o *resolv.Object, c color.Color) {
	vector.DrawFilledRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), c, false)
}

// DrawWalls renders static walls and kill volumes.
func DrawWalls(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		fillObject(screen, components.Object.Get(e).Object, cfg.Gray)
	})
	tags.KillVolume.Each(ecs.World, func(e *donburi.Entry) {
		fillObject(screen, components.Object.Get(e).Object, killColor)
	})
}

// DrawGoalZones outlines each zone, lighting one wall per point scored.
func DrawGoalZones(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.GoalZone.Each(ecs.World, func(e *donburi.Entry) {
		goal := components.GoalZone.Get(e)
		o := components.Object.Get(e).Object
		x0, y0 := float32(o.X), float32(o.Y)
		x1, y1 := float32(o.X+o.W), float32(o.Y+o.H)

		// top, right, bottom, left
		walls := [4][4]float32{
			{x0, y0, x1, y0},
			{x1, y0, x1, y1},
			{x1, y1, x0, y1},
			{x0, y1, x0, y0},
		}
		lit := systems.LitWalls(goal)
		for i, w := range walls {
			c := cfg.GoalZone.IdleColor
			switch {
			case goal.Complete:
				c = cfg.GoalZone.CompleteColor
			case i < lit:
				c = cfg.GoalZone.ProgressColor
			}
			vector.StrokeLine(screen, w[0], w[1], w[2], w[3], 3, c, false)
		}
	})
}

// DrawPushButtons renders each button with its plunger sunk by Depth.
func DrawPushButtons(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.PushButton.Each(ecs.World, func(e *donburi.Entry) {
		button := components.PushButton.Get(e)
		o := components.Object.Get(e).Object

		vector.StrokeRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), 1, cfg.PushButton.Color, false)

		c := cfg.PushButton.Color
		if button.IsPushed {
			c = cfg.PushButton.PushedColor
		}
		inset := float32(2 + button.Depth/2)
		size := float32(o.W) - 2*inset
		if size > 0 {
			vector.DrawFilledRect(screen, float32(o.X)+inset, float32(o.Y)+inset, size, size, c, false)
		}
	})
}

// DrawBlocks renders interactables scaled about their centres.
func DrawBlocks(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Block.Each(ecs.World, func(e *donburi.Entry) {
		item := components.Interactable.Get(e)
		o := components.Object.Get(e).Object
		if item.Scale <= 0 {
			return
		}

		cx, cy := gamemath.Center(o)
		w, h := o.W*item.Scale, o.H*item.Scale
		c := cfg.Block.Color
		if item.Score {
			c = cfg.Block.ScoreColor
		}
		vector.DrawFilledRect(screen, float32(cx-w/2), float32(cy-h/2), float32(w), float32(h), c, false)
		if item.HeldBy != nil {
			vector.StrokeRect(screen, float32(cx-w/2), float32(cy-h/2), float32(w), float32(h), 1, cfg.White, false)
		}
	})
}

// DrawTrails renders the recorded path of every puppet, and the path being
// captured by any recording live hand.
func DrawTrails(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Puppet.Each(ecs.World, func(e *donburi.Entry) {
		drawPath(screen, components.Puppet.Get(e).Trail, cfg.Hand.PuppetColor)
	})
	tags.LiveHand.Each(ecs.World, func(e *donburi.Entry) {
		rec := components.LiveInput.Get(e).Recorder
		if rec.IsRecording() {
			drawPath(screen, rec.Path(), cfg.Hand.RecordingColor)
		}
	})
}

func drawPath(screen *ebiten.Image, path []mgl64.Vec3, c color.RGBA) {
	faded := color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A / 2}
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		vector.StrokeLine(screen, float32(a.X()), float32(a.Y()), float32(b.X()), float32(b.Y()), 1, faded, false)
	}
}

// DrawHands renders every hand as a disc with a heading tick. Live hands
// turn RecordingColor while recording.
func DrawHands(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Hand.Each(ecs.World, func(e *donburi.Entry) {
		pose := components.Pose.Get(e)
		hand := components.Hand.Get(e)

		c := cfg.Hand.PuppetColor
		if e.HasComponent(components.LiveInput) {
			c = cfg.Hand.LiveColor
			if components.LiveInput.Get(e).Recorder.IsRecording() {
				c = cfg.Hand.RecordingColor
			}
		}

		x, y := pose.Position.X(), pose.Position.Y()
		r := cfg.Hand.Size / 2
		if hand.Holding != nil {
			vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), c, true)
		} else {
			vector.StrokeCircle(screen, float32(x), float32(y), float32(r), 2, c, true)
		}

		yaw := gamemath.Yaw(pose.Rotation)
		hx, hy := x+math.Cos(yaw)*r*1.5, y+math.Sin(yaw)*r*1.5
		vector.StrokeLine(screen, float32(x), float32(y), float32(hx), float32(hy), 2, c, true)
	})
}

// DrawMetronome renders the beat bar, shrinking toward the loop point.
func DrawMetronome(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Metronome.Each(ecs.World, func(e *donburi.Entry) {
		m := components.Metronome.Get(e)
		o := components.Object.Get(e).Object

		c := cfg.Metronome.NormalColor
		if m.Warning {
			c = cfg.Metronome.WarnColor
		}
		width := m.Scale * cfg.Metronome.BarLength
		cx, _ := gamemath.Center(o)
		vector.DrawFilledRect(screen, float32(cx-width/2), float32(o.Y), float32(width), float32(o.H), c, false)
	})
}
