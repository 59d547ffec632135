package messages

// JoinRequest is sent by a client after connecting to request a hand.
type JoinRequest struct {
	Version string
	Name    string
}

// JoinAccepted is sent by the server when a client's join request is accepted.
type JoinAccepted struct {
	HandID   string
	TickRate int
}

// JoinRejected is sent by the server when a client's join request is rejected.
type JoinRejected struct {
	Reason string
}
