package netcomponents

import "github.com/yohamta/donburi"

type NetBlockData struct {
	X, Y  float64
	Scale float64
	Score bool
	Held  bool
}

var NetBlock = donburi.NewComponentType[NetBlockData]()

// LerpNetBlock interpolates between two block states
func LerpNetBlock(from, to NetBlockData, t float64) *NetBlockData {
	return &NetBlockData{
		X:     from.X + (to.X-from.X)*t,
		Y:     from.Y + (to.Y-from.Y)*t,
		Scale: from.Scale + (to.Scale-from.Scale)*t,
		Score: to.Score,
		Held:  to.Held,
	}
}
