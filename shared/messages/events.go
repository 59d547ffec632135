package messages

// PuppetSealedEvent is broadcast when a live hand seals a recording into a
// new puppet.
type PuppetSealedEvent struct {
	PuppetID  string
	Snapshots int
	Span      float64 // seconds
}

// PuppetRemovedEvent is broadcast when a puppet is taken out of the scene.
type PuppetRemovedEvent struct {
	PuppetID string
}
