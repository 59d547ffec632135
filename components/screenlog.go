package components

import (
	"strings"
	"sync"

	"github.com/yohamta/donburi"
)

// ScreenLogData is the singleton feeding the in-scene log panel.
type ScreenLogData struct {
	*RowLog
}

var ScreenLog = donburi.NewComponentType[ScreenLogData]()

// RowLog keeps the most recent log rows. Rows may be added from any
// goroutine.
type RowLog struct {
	mu   sync.Mutex
	rows []string
	max  int
}

func NewRowLog(max int) *RowLog {
	if max < 1 {
		max = 1
	}
	return &RowLog{max: max}
}

// Add appends one row per line of msg, dropping the oldest beyond the limit.
func (l *RowLog) Add(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range strings.Split(strings.TrimRight(msg, "\n"), "\n") {
		l.rows = append(l.rows, line)
	}
	if over := len(l.rows) - l.max; over > 0 {
		l.rows = append(l.rows[:0], l.rows[over:]...)
	}
}

// Rows returns a copy of the current rows, oldest first.
func (l *RowLog) Rows() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.rows))
	copy(out, l.rows)
	return out
}

// Write lets the panel sit behind the standard logger.
func (l *RowLog) Write(p []byte) (int, error) {
	l.Add(string(p))
	return len(p), nil
}
