package controller

import "github.com/google/uuid"

// Session is the per-connection state handed to Handle. It is owned by the
// connection goroutine and must not be shared.
type Session struct {
	ID       string
	Remote   string
	Requests int
}

func NewSession(remote string) *Session {
	return &Session{
		ID:     uuid.NewString(),
		Remote: remote,
	}
}
