package systems

import (
	"fmt"
	"io"

	"github.com/automoto/puppethands/components"
	"github.com/yohamta/donburi/ecs"
)

// ScreenLogf writes a row to the in-scene log panel only.
func ScreenLogf(ecs *ecs.ECS, format string, args ...any) {
	if l := ScreenLogWriter(ecs); l != nil {
		l.Add(fmt.Sprintf(format, args...))
	}
}

// ScreenLogWriter returns the panel's row log, or nil if the scene has no
// panel. It is an io.Writer so it can sit behind the standard logger.
func ScreenLogWriter(ecs *ecs.ECS) *components.RowLog {
	entry, ok := components.ScreenLog.First(ecs.World)
	if !ok {
		return nil
	}
	return components.ScreenLog.Get(entry).RowLog
}

var _ io.Writer = (*components.RowLog)(nil)
