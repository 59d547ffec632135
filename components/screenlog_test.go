package components

import (
	"fmt"
	"log"
	"testing"
)

func TestScreenLogKeepsNewestRows(t *testing.T) {
	l := NewRowLog(3)
	for i := 0; i < 5; i++ {
		l.Add(fmt.Sprintf("row %d", i))
	}
	rows := l.Rows()
	want := []string{"row 2", "row 3", "row 4"}
	if len(rows) != len(want) {
		t.Fatalf("rows = %v", rows)
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, rows[i], want[i])
		}
	}
}

func TestScreenLogAsWriter(t *testing.T) {
	l := NewRowLog(10)
	logger := log.New(l, "", 0)
	logger.Printf("first\nsecond")
	rows := l.Rows()
	if len(rows) != 2 || rows[0] != "first" || rows[1] != "second" {
		t.Errorf("rows = %q", rows)
	}
}
