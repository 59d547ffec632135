package config

import (
	"errors"
	"testing"

	"github.com/automoto/puppethands/recording"
)

func TestLoadEnvOverrides(t *testing.T) {
	saved := Playback
	savedServer := Server
	t.Cleanup(func() {
		Playback = saved
		Server = savedServer
	})

	t.Setenv("PUPPET_LOOP_POLICY", "derived")
	t.Setenv("PUPPET_BASE_PERIOD", "1.5")
	t.Setenv("PUPPET_MAX_SNAPSHOTS", "600")
	t.Setenv("PUPPET_TICK_RATE", "45")

	if err := LoadEnv(); err != nil {
		t.Fatal(err)
	}
	if Playback.Loop.Policy != recording.LoopDerived {
		t.Errorf("policy = %v, want derived", Playback.Loop.Policy)
	}
	if Playback.Loop.BasePeriod != 1.5 || Playback.MaxSnapshots != 600 {
		t.Errorf("base = %v, max = %d", Playback.Loop.BasePeriod, Playback.MaxSnapshots)
	}
	if Server.TickRate != 45 {
		t.Errorf("tick rate = %d, want 45", Server.TickRate)
	}
}

func TestLoadEnvRejectsBadPeriod(t *testing.T) {
	saved := Playback
	t.Cleanup(func() { Playback = saved })

	t.Setenv("PUPPET_LOOP_POLICY", "fixed")
	t.Setenv("PUPPET_LOOP_PERIOD", "0")
	if err := LoadEnv(); !errors.Is(err, recording.ErrInvalidPeriod) {
		t.Fatalf("err = %v, want ErrInvalidPeriod", err)
	}
}

func TestLoadEnvRejectsBadPolicy(t *testing.T) {
	saved := Playback
	t.Cleanup(func() { Playback = saved })

	t.Setenv("PUPPET_LOOP_POLICY", "sideways")
	if err := LoadEnv(); !errors.Is(err, recording.ErrUnknownPolicy) {
		t.Fatalf("err = %v, want ErrUnknownPolicy", err)
	}
}

func TestLoadEnvIgnoresUnparsable(t *testing.T) {
	saved := Playback
	t.Cleanup(func() { Playback = saved })

	t.Setenv("PUPPET_LOOP_POLICY", "fixed")
	t.Setenv("PUPPET_LOOP_PERIOD", "soon")
	if err := LoadEnv(); err != nil {
		t.Fatal(err)
	}
	if Playback.Loop.Period != saved.Loop.Period {
		t.Errorf("period = %v, want default %v", Playback.Loop.Period, saved.Loop.Period)
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := Playback.Loop.Validate(); err != nil {
		t.Fatal(err)
	}
	if C.TickSeconds() <= 0 {
		t.Error("tick seconds must be positive")
	}
	if !Hand.RecordButton.Valid() || !Hand.GrabButton.Valid() {
		t.Error("hand buttons must be valid")
	}
}
