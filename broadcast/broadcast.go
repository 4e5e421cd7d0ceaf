// broadcast/broadcast.go
package broadcast

import (
	"errors"

	"github.com/quizopoly/gameserver/room"

	"github.com/quizopoly/gameserver/session"
)

var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrSessionNotFound = errors.New("session not found")
)

// Broadcaster delivers wire messages to whole rooms or single connections.
type Broadcaster interface {
	BroadcastToRoom(roomCode string, msgID uint16, data []byte) error
	SendToSession(sessionID string, msgID uint16, data []byte) error
}

// RoomBroadcaster resolves recipients through the room and session
// managers.
type RoomBroadcaster struct {
	roomManager    *room.Manager
	sessionManager *session.Manager
}

func NewRoomBroadcaster(roomManager *room.Manager, sessionManager *session.Manager) *RoomBroadcaster {
	return &RoomBroadcaster{
		roomManager:    roomManager,
		sessionManager: sessionManager,
	}
}

func (b *RoomBroadcaster) BroadcastToRoom(roomCode string, msgID uint16, data []byte) error {
	r, exists := b.roomManager.GetRoom(roomCode)
	if !exists {
		return ErrRoomNotFound
	}

	for _, s := range r.GetSessions() {
		if err := s.Send(msgID, data); err != nil {
			// A dead connection is cleaned up by its own read loop.
			continue
		}
	}
	return nil
}

func (b *RoomBroadcaster) SendToSession(sessionID string, msgID uint16, data []byte) error {
	s, exists := b.sessionManager.Get(sessionID)
	if !exists {
		return ErrSessionNotFound
	}
	return s.Send(msgID, data)
}
