package mqtt

import (
	"testing"
	"time"

	"github.com/automoto/puppethands/shared/messages"
)

// fakeMessage implements the paho Message interface for handler tests.
type fakeMessage struct {
	topic   string
	payload []byte
}

func (m fakeMessage) Duplicate() bool   { return false }
func (m fakeMessage) Qos() byte         { return 1 }
func (m fakeMessage) Retained() bool    { return false }
func (m fakeMessage) Topic() string     { return m.topic }
func (m fakeMessage) MessageID() uint16 { return 0 }
func (m fakeMessage) Payload() []byte   { return m.payload }
func (m fakeMessage) Ack()              {}

func TestExtractDeviceID(t *testing.T) {
	tests := []struct {
		topic string
		want  string
	}{
		{"tracker/glove-01/frame", "glove-01"},
		{"tracker/x", "x"},
		{"tracker", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := extractDeviceID(tt.topic); got != tt.want {
			t.Errorf("extractDeviceID(%q) = %q, want %q", tt.topic, got, tt.want)
		}
	}
}

func TestFormatTopic(t *testing.T) {
	if got := formatTopic("puppet/{id}/pose", "abc"); got != "puppet/abc/pose" {
		t.Errorf("formatTopic = %q", got)
	}
}

func TestDecodeFrame(t *testing.T) {
	payload := []byte(`{"seq":3,"pressed":["trigger"],"axes":{"touchpad":[0.5,0]},"ts":99}`)
	frame, err := decodeFrame("tracker/glove-01/frame", payload)
	if err != nil {
		t.Fatal(err)
	}
	if frame.Device != "glove-01" || frame.Sequence != 3 || frame.Timestamp != 99 {
		t.Errorf("frame header = %+v", *frame)
	}
	if len(frame.Pressed) != 1 || frame.Pressed[0] != "trigger" {
		t.Errorf("pressed = %v", frame.Pressed)
	}
	if frame.Axes["touchpad"] != [2]float64{0.5, 0} {
		t.Errorf("axes = %v", frame.Axes)
	}

	// the topic wins over a device named in the payload
	frame, err = decodeFrame("tracker/real/frame", []byte(`{"device":"spoofed"}`))
	if err != nil {
		t.Fatal(err)
	}
	if frame.Device != "real" {
		t.Errorf("device = %q, want real", frame.Device)
	}
}

func TestDecodeFrameErrors(t *testing.T) {
	if _, err := decodeFrame("tracker", []byte(`{}`)); err == nil {
		t.Error("expected an error for a topic without a device")
	}
	if _, err := decodeFrame("tracker/a/frame", []byte(`not json`)); err == nil {
		t.Error("expected an error for a bad payload")
	}
}

func TestHandleFrameQueues(t *testing.T) {
	ch := make(chan *messages.ControllerFrame, 1)
	s := NewSubscriber(nil, "tracker/+/frame", ch)

	s.handleFrame(nil, fakeMessage{topic: "tracker/a/frame", payload: []byte(`{"seq":1}`)})
	s.handleFrame(nil, fakeMessage{topic: "tracker/a/frame", payload: []byte(`garbage`)})

	select {
	case frame := <-ch:
		if frame.Device != "a" || frame.Sequence != 1 {
			t.Errorf("queued frame = %+v", *frame)
		}
	case <-time.After(time.Second):
		t.Fatal("frame was not queued")
	}
	if len(ch) != 0 {
		t.Error("bad payload should not be queued")
	}
}

func TestOfferDoesNotBlock(t *testing.T) {
	p := NewPublisher(nil, "puppet/{id}/pose", make(chan *PuppetPose, 1))
	if !p.Offer(&PuppetPose{ID: "a"}) {
		t.Fatal("first offer should be queued")
	}
	if p.Offer(&PuppetPose{ID: "b"}) {
		t.Error("offer to a full channel should be dropped")
	}
}
