package core

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/automoto/puppethands/bridge/mqtt"
	"github.com/automoto/puppethands/components"
	cfg "github.com/automoto/puppethands/config"
	"github.com/automoto/puppethands/shared/messages"
	"github.com/automoto/puppethands/shared/scenedata"
	"github.com/automoto/puppethands/systems"
	"github.com/automoto/puppethands/systems/factory"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// trackerPrefix marks hands owned by MQTT trackers rather than websocket
// clients.
const trackerPrefix = "tracker:"

// PosePublisher receives each puppet's pose once per tick.
type PosePublisher interface {
	Offer(pose *mqtt.PuppetPose) bool
}

// Options configures a Server.
type Options struct {
	TickRate int
	Layout   *scenedata.Layout
	Sinks    []components.RecordingSink
	Poses    PosePublisher // optional
}

// Server runs the puppet simulation headless and syncs it to connected
// spectators. Router callbacks run on necs goroutines and only queue
// commands; the world is touched by the tick goroutine alone.
type Server struct {
	world     donburi.World
	ecs       *ecs.ECS
	loop      *GameLoop
	transport *transports.WsServerTransport
	tickRate  int
	spawn     scenedata.Point
	poses     PosePublisher

	commands chan func()

	// Tick goroutine only
	hands  map[string]*remoteHand
	synced map[donburi.Entity]string // synced entity -> puppet id, "" for others

	// Track connected clients for broadcasts
	clients map[string]*router.NetworkClient
	mu      sync.RWMutex
}

// NewServer creates a new puppet server for the given scene
func NewServer(opts Options) (*Server, error) {
	if opts.Layout == nil {
		return nil, errors.New("server: no scene layout")
	}
	if opts.TickRate <= 0 {
		return nil, fmt.Errorf("server: tick rate %d must be positive", opts.TickRate)
	}

	world := donburi.NewWorld()
	s := &Server{
		world:    world,
		ecs:      ecs.NewECS(world),
		tickRate: opts.TickRate,
		poses:    opts.Poses,
		commands: make(chan func(), cfg.Server.FrameChan),
		hands:    make(map[string]*remoteHand),
		synced:   make(map[donburi.Entity]string),
		clients:  make(map[string]*router.NetworkClient),
	}
	s.loop = NewGameLoop(s, opts.TickRate)

	// Set up the world for esync
	srvsync.UseEsync(world)

	sinks := append([]components.RecordingSink{sealedBroadcaster{s}}, opts.Sinks...)
	factory.CreateSpace(s.ecs, opts.Layout.Width, opts.Layout.Height, cfg.Scene.CellSize, cfg.Scene.CellSize)
	factory.CreateSession(s.ecs, 1/float64(opts.TickRate), cfg.Playback.Loop, sinks...)
	s.spawn = factory.CreateScene(s.ecs, opts.Layout)
	systems.AddSimulationSystems(s.ecs, s.applyFrames)

	s.setupRouterCallbacks()
	return s, nil
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	// Start game loop
	go s.loop.Run()

	// Create and start WebSocket transport
	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.loop.Stop()
}

func (s *Server) setupRouterCallbacks() {
	// Handle new connections
	router.OnConnect(func(client *router.NetworkClient) {
		s.onConnect(client)
	})

	// Handle disconnections
	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.onDisconnect(client, err)
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		s.onJoin(client, req)
	})

	// Handle controller frames
	router.On(func(client *router.NetworkClient, frame messages.ControllerFrame) {
		id := client.Id()
		s.enqueue(func() { s.queueFrame(id, frame) })
	})

	// Handle errors
	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("[server] client error: %v", err)
	})
}

func (s *Server) onConnect(client *router.NetworkClient) {
	id := client.Id()
	log.Printf("[server] client connected: %s", id)

	s.mu.Lock()
	s.clients[id] = client
	s.mu.Unlock()

	s.enqueue(func() { s.addHand(id) })
}

func (s *Server) onDisconnect(client *router.NetworkClient, err error) {
	id := client.Id()
	if err != nil {
		log.Printf("[server] client %s disconnected with error: %v", id, err)
	} else {
		log.Printf("[server] client %s disconnected", id)
	}

	s.mu.Lock()
	delete(s.clients, id)
	s.mu.Unlock()

	s.enqueue(func() { s.removeHand(id) })
}

func (s *Server) onJoin(client *router.NetworkClient, req messages.JoinRequest) {
	id := client.Id()
	log.Printf("[server] %s joined as %q (version %q)", id, req.Name, req.Version)
	s.enqueue(func() {
		hand, ok := s.hands[id]
		if !ok || !hand.entry.Valid() {
			s.sendTo(client, messages.JoinRejected{Reason: "no hand for this connection"})
			return
		}
		s.sendTo(client, messages.JoinAccepted{
			HandID:   components.Hand.Get(hand.entry).ID,
			TickRate: s.tickRate,
		})
	})
}

// FeedTrackerFrame queues a frame from an MQTT tracker. The first frame
// from a device spawns its hand. Safe to call from any goroutine.
func (s *Server) FeedTrackerFrame(frame *messages.ControllerFrame) {
	if frame == nil || frame.Device == "" {
		return
	}
	owner := trackerPrefix + frame.Device
	f := *frame
	s.enqueue(func() {
		if _, ok := s.hands[owner]; !ok {
			s.addHand(owner)
		}
		s.queueFrame(owner, f)
	})
}

// enqueue hands a command to the tick goroutine without blocking.
func (s *Server) enqueue(cmd func()) {
	select {
	case s.commands <- cmd:
	default:
		log.Printf("Warning: server command queue full, dropping command")
	}
}

// ProcessCommands runs every queued command. Called by the game loop at
// the start of each tick.
func (s *Server) ProcessCommands() {
	for {
		select {
		case cmd := <-s.commands:
			cmd()
		default:
			return
		}
	}
}

func (s *Server) addHand(owner string) {
	if _, exists := s.hands[owner]; exists {
		return
	}
	entry := factory.CreateLiveHand(s.ecs, s.spawn.X, s.spawn.Y, owner)
	s.hands[owner] = &remoteHand{entry: entry}
	log.Printf("[server] hand %s spawned for %s", components.Hand.Get(entry).ID, owner)
}

func (s *Server) removeHand(owner string) {
	hand, ok := s.hands[owner]
	if !ok {
		return
	}
	delete(s.hands, owner)
	if hand.entry.Valid() {
		systems.RemoveEntity(s.ecs, hand.entry)
		log.Printf("[server] hand removed for %s", owner)
	}
}

func (s *Server) sendTo(client *router.NetworkClient, msg any) {
	if err := client.SendMessage(msg); err != nil {
		log.Printf("[server] send to %s failed: %v", client.Id(), err)
	}
}

func (s *Server) broadcast(msg any) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, client := range s.clients {
		s.sendTo(client, msg)
	}
}

// World returns the ECS world
func (s *Server) World() donburi.World {
	return s.world
}

// ClientCount returns the number of connected clients
func (s *Server) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}
