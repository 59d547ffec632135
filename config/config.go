package config

import (
	"image/color"

	"github.com/automoto/puppethands/recording"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer used by the scene.
const Default ecs.LayerID = 0

// Config holds general scene configuration
type Config struct {
	Width  int
	Height int
	TPS    int // simulation ticks per second
}

// TickSeconds is the simulated time covered by one tick.
func (c *Config) TickSeconds() float64 {
	if c.TPS <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(c.TPS)
}

// PlaybackConfig controls recording and puppet playback
type PlaybackConfig struct {
	Loop         recording.LoopConfig
	MaxSnapshots int // 0 = unbounded
	TrailLength  int // recorded path points drawn behind a puppet
}

// HandConfig contains hand movement and interaction values
type HandConfig struct {
	Size      float64 // collision box edge, also the grab reach
	MoveSpeed float64 // units per second at full touchpad deflection
	TurnSpeed float64 // radians per second while turning toward motion
	SpawnX    float64
	SpawnY    float64

	RecordButton ButtonID
	GrabButton   ButtonID
	RemoveButton ButtonID
	PushButton   ButtonID

	LiveColor      color.RGBA
	RecordingColor color.RGBA
	PuppetColor    color.RGBA
}

// BlockConfig contains grabbable block values
type BlockConfig struct {
	Size        float64
	GrowSeconds float64 // spawned blocks scale up from zero over this time
	Color       color.RGBA
	ScoreColor  color.RGBA
}

// GoalZoneConfig contains goal zone scoring values
type GoalZoneConfig struct {
	Target       int     // score needed to complete the zone
	DecaySeconds float64 // one point lost per interval while below target
	Walls        int     // wall segments lit as the score rises

	IdleColor     color.RGBA
	ProgressColor color.RGBA
	CompleteColor color.RGBA
}

// PushButtonConfig contains push button values
type PushButtonConfig struct {
	Size          float64
	TravelDepth   float64 // plunger depth when fully pushed
	ReturnSeconds float64 // tween time back to rest
	Color         color.RGBA
	PushedColor   color.RGBA
}

// SpawnerConfig contains block spawner values
type SpawnerConfig struct {
	OffsetX float64
	OffsetY float64
}

// MetronomeConfig contains metronome bar values
type MetronomeConfig struct {
	MaxScale    float64 // bar scale at the start of a beat
	WarnAt      float64 // beat progress after which the bar turns WarnColor
	BarLength   float64 // pixels drawn per unit of scale
	NormalColor color.RGBA
	WarnColor   color.RGBA
}

// ScreenLogConfig contains the in-scene log panel values
type ScreenLogConfig struct {
	TotalRows  int
	RowHeight  int
	Background color.RGBA
	TextColor  color.RGBA
}

// SceneConfig selects the embedded scene layout
type SceneConfig struct {
	Path     string
	CellSize int
}

// ServerConfig contains dedicated server values
type ServerConfig struct {
	Port      uint
	TickRate  int
	FrameChan int // buffered controller frames awaiting the next tick
}

// MQTTConfig contains the tracker bridge values
type MQTTConfig struct {
	Enabled    bool
	Broker     string
	ClientID   string
	Username   string
	Password   string
	FrameTopic string // e.g. "tracker/+/frame"
	PoseTopic  string // e.g. "puppet/{id}/pose"
}

// ArchiveConfig contains the ClickHouse recording archive values
type ArchiveConfig struct {
	Enabled  bool
	Addr     string
	Database string
	Username string
	Password string
}

// Global configuration instances
var C *Config
var Playback PlaybackConfig
var Hand HandConfig
var Block BlockConfig
var GoalZone GoalZoneConfig
var PushButton PushButtonConfig
var Spawner SpawnerConfig
var Metronome MetronomeConfig
var ScreenLog ScreenLogConfig
var Scene SceneConfig
var Server ServerConfig
var MQTT MQTTConfig
var Archive ArchiveConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Gray         = color.RGBA{R: 110, G: 110, B: 120, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Playback = PlaybackConfig{
		Loop: recording.LoopConfig{
			Policy:     recording.LoopFixed,
			Period:     2.0,
			BasePeriod: 2.0,
		},
		MaxSnapshots: 0,
		TrailLength:  120,
	}

	Hand = HandConfig{
		Size:      24,
		MoveSpeed: 180,
		TurnSpeed: 8,
		SpawnX:    320,
		SpawnY:    200,

		RecordButton: ButtonApplicationMenu,
		GrabButton:   ButtonTrigger,
		RemoveButton: ButtonB,
		PushButton:   ButtonGrip,

		LiveColor:      LightBlue,
		RecordingColor: Red,
		PuppetColor:    Purple,
	}

	Block = BlockConfig{
		Size:        16,
		GrowSeconds: 0.4,
		Color:       Gray,
		ScoreColor:  Orange,
	}

	// Four scoring blocks light all four walls
	GoalZone = GoalZoneConfig{
		Target:        4,
		DecaySeconds:  1.0,
		Walls:         4,
		IdleColor:     Gray,
		ProgressColor: Blue,
		CompleteColor: Green,
	}

	PushButton = PushButtonConfig{
		Size:          20,
		TravelDepth:   6,
		ReturnSeconds: 0.25,
		Color:         Red,
		PushedColor:   Orange,
	}

	// Duplicates appear one block diagonally from the template
	Spawner = SpawnerConfig{
		OffsetX: 20,
		OffsetY: 20,
	}

	Metronome = MetronomeConfig{
		MaxScale:    0.05,
		WarnAt:      0.8,
		BarLength:   4000,
		NormalColor: White,
		WarnColor:   Red,
	}

	ScreenLog = ScreenLogConfig{
		TotalRows:  50,
		RowHeight:  12,
		Background: BlackOverlay,
		TextColor:  White,
	}

	Scene = SceneConfig{
		Path:     "levels/lab.tmx",
		CellSize: 16,
	}

	Server = ServerConfig{
		Port:      7373,
		TickRate:  30,
		FrameChan: 256,
	}

	MQTT = MQTTConfig{
		Enabled:    false,
		Broker:     "tcp://localhost:1883",
		ClientID:   "puppethands",
		FrameTopic: "tracker/+/frame",
		PoseTopic:  "puppet/{id}/pose",
	}

	Archive = ArchiveConfig{
		Enabled:  false,
		Addr:     "localhost:9000",
		Database: "puppethands",
		Username: "default",
	}
}
