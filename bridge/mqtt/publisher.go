package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// PuppetPose is the payload published for each puppet.
type PuppetPose struct {
	ID        string  `json:"id"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Yaw       float64 `json:"yaw"`
	Holding   bool    `json:"holding"`
	Timestamp int64   `json:"ts"` // Unix ms
}

// Publisher publishes puppet poses read from PoseChan.
type Publisher struct {
	client mqtt.Client

	// Input channel (read by publisher, written by the server tick)
	PoseChan chan *PuppetPose

	poseTopic string // e.g., "puppet/{id}/pose"
}

// NewPublisher creates a new MQTT publisher reading from poseChan
func NewPublisher(client mqtt.Client, poseTopic string, poseChan chan *PuppetPose) *Publisher {
	return &Publisher{
		client:    client,
		PoseChan:  poseChan,
		poseTopic: poseTopic,
	}
}

// Start publishes poses until ctx is cancelled or the channel is closed.
func (p *Publisher) Start(ctx context.Context) {
	log.Println("[mqtt] publisher starting")

	for {
		select {
		case <-ctx.Done():
			log.Println("[mqtt] publisher stopped")
			return

		case pose, ok := <-p.PoseChan:
			if !ok {
				log.Println("[mqtt] pose channel closed, publisher stopping")
				return
			}
			if err := p.publishPose(pose); err != nil {
				log.Printf("[mqtt] %v", err)
			}
		}
	}
}

// Offer queues a pose without blocking; poses are dropped while the
// publisher is behind since the next tick supersedes them.
func (p *Publisher) Offer(pose *PuppetPose) bool {
	select {
	case p.PoseChan <- pose:
		return true
	default:
		return false
	}
}

func (p *Publisher) publishPose(pose *PuppetPose) error {
	payload, err := json.Marshal(pose)
	if err != nil {
		return fmt.Errorf("failed to marshal pose: %w", err)
	}

	topic := formatTopic(p.poseTopic, pose.ID)

	// QoS 0: a lost pose is replaced a tick later
	token := p.client.Publish(topic, 0, false, payload)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to publish pose for %s: %w", pose.ID, token.Error())
	}
	return nil
}

// formatTopic replaces the {id} placeholder with the puppet id
func formatTopic(topicPattern, id string) string {
	return strings.ReplaceAll(topicPattern, "{id}", id)
}
