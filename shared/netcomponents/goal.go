package netcomponents

import "github.com/yohamta/donburi"

type NetGoalZoneData struct {
	Total    int
	LitWalls int
	Complete bool
}

var NetGoalZone = donburi.NewComponentType[NetGoalZoneData]()
