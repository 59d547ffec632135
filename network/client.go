package network

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/automoto/puppethands/recording"
	"github.com/automoto/puppethands/shared/messages"
	"github.com/coder/websocket"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateJoined
	StateError
)

func (s ClientState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateJoined:
		return "joined"
	case StateError:
		return "error"
	}
	return "unknown"
}

// Client forwards the local controller to a puppet server and collects the
// events it broadcasts.
// All shared fields are protected by mu (router callbacks run on necs goroutines).
type Client struct {
	mu sync.RWMutex

	state     ClientState
	lastError error
	handID    string
	tickRate  int
	conn      *websocket.Conn
	sequence  uint32

	sealedCh  chan messages.PuppetSealedEvent
	removedCh chan messages.PuppetRemovedEvent
}

func NewClient() *Client {
	return &Client{
		state:     StateDisconnected,
		sealedCh:  make(chan messages.PuppetSealedEvent, 8),
		removedCh: make(chan messages.PuppetRemovedEvent, 8),
	}
}

// Connect dials the server in a background goroutine and initiates the join handshake.
func (c *Client) Connect(address, version, name string) {
	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.mu.Unlock()

	router.OnConnect(func(_ *router.NetworkClient) {
		log.Println("[client] connected to server")
		c.mu.Lock()
		c.state = StateConnected
		c.mu.Unlock()

		if err := c.SendMessage(messages.JoinRequest{Version: version, Name: name}); err != nil {
			c.setError(fmt.Errorf("failed to send join request: %w", err))
		}
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinAccepted) {
		log.Printf("[client] join accepted: hand=%s tickRate=%d", msg.HandID, msg.TickRate)
		c.mu.Lock()
		c.handID = msg.HandID
		c.tickRate = msg.TickRate
		c.state = StateJoined
		c.mu.Unlock()
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinRejected) {
		log.Printf("[client] join rejected: %s", msg.Reason)
		c.setError(fmt.Errorf("join rejected: %s", msg.Reason))
	})

	router.On(func(_ *router.NetworkClient, evt messages.PuppetSealedEvent) {
		select {
		case c.sealedCh <- evt:
		default:
		}
	})

	router.On(func(_ *router.NetworkClient, evt messages.PuppetRemovedEvent) {
		select {
		case c.removedCh <- evt:
		default:
		}
	})

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] disconnected: %v", err)
		c.mu.Lock()
		if c.state != StateError {
			c.state = StateDisconnected
		}
		c.conn = nil
		c.mu.Unlock()
	})

	router.OnError(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] error: %v", err)
	})

	go func() {
		transport := transports.NewWsClientTransport("ws://" + address)
		err := transport.Start(func(conn *websocket.Conn) {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
		})
		if err != nil {
			c.setError(fmt.Errorf("connection failed: %w", err))
		}
	}()
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.state = StateDisconnected
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}

	router.ResetRouter()
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

// HandID is the server's id for this client's hand, empty until joined.
func (c *Client) HandID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.handID
}

func (c *Client) TickRate() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tickRate
}

// SendInput forwards one tick of controller state. Frames are only sent
// once the join has been accepted.
func (c *Client) SendInput(in recording.InputState) error {
	c.mu.Lock()
	if c.state != StateJoined {
		c.mu.Unlock()
		return nil
	}
	c.sequence++
	seq := c.sequence
	c.mu.Unlock()

	return c.SendMessage(messages.FrameFromInput(seq, in, time.Now().UnixMilli()))
}

func (c *Client) SendMessage(msg any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return fmt.Errorf("not connected")
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	return conn.Write(context.Background(), websocket.MessageBinary, payload)
}

func (c *Client) setError(err error) {
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}

// DrainSealedEvents returns all pending sealed puppet events, non-blocking.
func (c *Client) DrainSealedEvents() []messages.PuppetSealedEvent {
	return drainChan(c.sealedCh)
}

// DrainRemovedEvents returns all pending removed puppet events, non-blocking.
func (c *Client) DrainRemovedEvents() []messages.PuppetRemovedEvent {
	return drainChan(c.removedCh)
}

func drainChan[T any](ch chan T) []T {
	var out []T
	for {
		select {
		case v := <-ch:
			out = append(out, v)
		default:
			return out
		}
	}
}
