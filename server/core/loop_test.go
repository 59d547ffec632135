package core

import (
	"testing"
	"time"

	"github.com/automoto/puppethands/systems"
)

func TestGameLoopTicksUntilStopped(t *testing.T) {
	s := newTestServer(t, Options{TickRate: 200})

	done := make(chan struct{})
	go func() {
		s.loop.Run()
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for {
		frameCh := make(chan uint64, 1)
		s.enqueue(func() {
			session, _ := systems.GetSession(s.world)
			frameCh <- session.Frame
		})
		select {
		case frame := <-frameCh:
			if frame >= 3 {
				s.Stop()
				select {
				case <-done:
				case <-time.After(2 * time.Second):
					t.Fatal("Run did not return after Stop")
				}
				return
			}
		case <-deadline:
			t.Fatal("loop did not advance the session")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
