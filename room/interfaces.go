package room

// Broadcaster defines the outbound delivery interface for rooms.
// This is defined here to break the import cycle between room and broadcast.
type Broadcaster interface {
	BroadcastToRoom(roomCode string, msgID uint16, data []byte) error
	SendToSession(sessionID string, msgID uint16, data []byte) error
}
