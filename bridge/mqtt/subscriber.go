package mqtt

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/automoto/puppethands/shared/messages"
	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// sendTimeout bounds how long a handler waits on a full frame channel.
const sendTimeout = time.Second

// Subscriber decodes tracker controller frames and writes them to FrameChan.
type Subscriber struct {
	client mqtt.Client

	// Output channel (written by subscriber, read by the server tick)
	FrameChan chan *messages.ControllerFrame

	frameTopic string // e.g., "tracker/+/frame"
}

// NewSubscriber creates a new MQTT subscriber writing to frameChan
func NewSubscriber(client mqtt.Client, frameTopic string, frameChan chan *messages.ControllerFrame) *Subscriber {
	return &Subscriber{
		client:     client,
		FrameChan:  frameChan,
		frameTopic: frameTopic,
	}
}

// Subscribe subscribes to the frame topic
func (s *Subscriber) Subscribe() error {
	token := s.client.Subscribe(s.frameTopic, 1, s.handleFrame)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to subscribe to frame topic: %w", token.Error())
	}
	log.Printf("[mqtt] subscribed to frame topic: %s", s.frameTopic)
	return nil
}

func (s *Subscriber) handleFrame(_ mqtt.Client, msg mqtt.Message) {
	frame, err := decodeFrame(msg.Topic(), msg.Payload())
	if err != nil {
		log.Printf("[mqtt] %v", err)
		return
	}

	// Write to channel (non-blocking with timeout)
	select {
	case s.FrameChan <- frame:
	case <-time.After(sendTimeout):
		log.Printf("Warning: frame channel full, dropping frame %d from %s", frame.Sequence, frame.Device)
	}
}

// decodeFrame parses a JSON controller frame and names it after the device
// in the topic.
func decodeFrame(topic string, payload []byte) (*messages.ControllerFrame, error) {
	deviceID := extractDeviceID(topic)
	if deviceID == "" {
		return nil, fmt.Errorf("could not extract device ID from topic: %s", topic)
	}
	var frame messages.ControllerFrame
	if err := json.Unmarshal(payload, &frame); err != nil {
		return nil, fmt.Errorf("error unmarshaling frame from %s: %w", deviceID, err)
	}
	frame.Device = deviceID
	return &frame, nil
}

// extractDeviceID extracts device ID from MQTT topic
// Example: "tracker/glove-01/frame" -> "glove-01"
func extractDeviceID(topic string) string {
	parts := strings.Split(topic, "/")
	if len(parts) >= 2 {
		return parts[1]
	}
	return ""
}
