package services

import (
	"encoding/json"

	"github.com/olahol/melody"
)

// WSEvent is the payload pushed to a user's open websocket sessions.
type WSEvent struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// BroadcastToUser pushes an event to every session belonging to userID.
// Sessions store their owner under the "userID" key at handshake time.
func BroadcastToUser(m *melody.Melody, userID uint, event WSEvent) {
	if m == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return
	}

	m.BroadcastFilter(payload, func(s *melody.Session) bool {
		sessionUser, exists := s.Get("userID")
		if !exists {
			return false
		}
		id, ok := sessionUser.(uint)
		return ok && id == userID
	})
}
