// game/types.go
package game

import (
	"errors"
	"time"

	"github.com/quizopoly/gameserver/board"
	"github.com/quizopoly/gameserver/question"
)

// Phase is the position in the fixed turn cycle:
// question -> dice -> property|endTurn -> endTurn -> question (next player).
type Phase string

const (
	PhaseQuestion Phase = "question"
	PhaseDice     Phase = "dice"
	PhaseProperty Phase = "property"
	PhaseEndTurn  Phase = "endTurn"
)

// Errors surfaced to the requester per the error policy. Phase and turn
// mismatches are not errors, they are silently ignored.
var (
	ErrRoomFull    = errors.New("room is full")
	ErrGameStarted = errors.New("game already started")
	ErrPieceTaken  = errors.New("game piece already taken")
	ErrNameTaken   = errors.New("name already taken in this room")
)

// Player is one seated participant. SessionID is the connection handle,
// Name is the cross-room stats key.
type Player struct {
	SessionID  string `json:"-"`
	Name       string `json:"name"`
	Piece      string `json:"selectedPiece"`
	Money      int    `json:"money"`
	Position   int    `json:"position"`
	Properties []int  `json:"properties"`
	IsHost     bool   `json:"isHost"`
}

// PropertySlot is the mutable ownership state of one board index.
// Mortgaged is reserved by the rules but unused.
type PropertySlot struct {
	Owner     string `json:"owner,omitempty"`
	Houses    int    `json:"houses,omitempty"`
	Hotel     bool   `json:"hotel,omitempty"`
	Mortgaged bool   `json:"mortgaged,omitempty"`
}

// Config carries the tunable game rules.
type Config struct {
	MaxPlayers    int
	StartingMoney int
	PassGoBonus   int
	AnswerReward  int
	ResultDelay   time.Duration
}

// DefaultConfig returns the standard rules.
func DefaultConfig() Config {
	return Config{
		MaxPlayers:    6,
		StartingMoney: 1500,
		PassGoBonus:   200,
		AnswerReward:  100,
		ResultDelay:   3 * time.Second,
	}
}

// Room is the full mutable state of one play session. It is transport-free:
// all mutation goes through Apply (plus AddPlayer/RemovePlayer for roster
// changes) and results come back as events and timer effects. The owning
// container serializes access.
type Room struct {
	Code             string
	Players          []*Player
	Started          bool
	CurrentIndex     int
	Phase            Phase
	WaitingForAnswer bool
	CurrentQuestion  *question.Record
	QuestionStart    time.Time
	Slots            [board.Size]PropertySlot

	cfg  Config
	draw func() question.Record
	roll func() (int, int)
}

// NewRoom builds an empty room. draw supplies questions and roll supplies
// dice pairs; both are injectable so game logic is deterministic in tests.
func NewRoom(code string, cfg Config, draw func() question.Record, roll func() (int, int)) *Room {
	return &Room{
		Code:  code,
		Phase: PhaseQuestion,
		cfg:   cfg,
		draw:  draw,
		roll:  roll,
	}
}

// AddPlayer seats a new player. The first player becomes host.
func (r *Room) AddPlayer(sessionID, name, piece string) error {
	if r.Started {
		return ErrGameStarted
	}
	if len(r.Players) >= r.cfg.MaxPlayers {
		return ErrRoomFull
	}
	for _, p := range r.Players {
		if p.Name == name {
			return ErrNameTaken
		}
		if piece != "" && p.Piece == piece {
			return ErrPieceTaken
		}
	}

	r.Players = append(r.Players, &Player{
		SessionID:  sessionID,
		Name:       name,
		Piece:      piece,
		Money:      r.cfg.StartingMoney,
		Properties: []int{},
		IsHost:     len(r.Players) == 0,
	})
	return nil
}

// RemovePlayer removes a seated player by connection handle. Host status
// moves to the first remaining player and the turn pointer is clamped back
// to zero if it now points past the roster. Returns whether a player was
// removed and whether the room is now empty.
func (r *Room) RemovePlayer(sessionID string) (removed, empty bool) {
	idx := -1
	for i, p := range r.Players {
		if p.SessionID == sessionID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false, len(r.Players) == 0
	}

	wasHost := r.Players[idx].IsHost
	// A pending question belongs to the player it was asked of. It leaves
	// with them; it is never transferred to the next player.
	if idx == r.CurrentIndex && r.WaitingForAnswer {
		r.CurrentQuestion = nil
		r.WaitingForAnswer = false
	}
	r.Players = append(r.Players[:idx], r.Players[idx+1:]...)

	if len(r.Players) == 0 {
		return true, true
	}
	if wasHost {
		r.Players[0].IsHost = true
	}
	// Keep the turn pointer on the same player when someone seated before
	// them leaves; clamp back to zero when it points past the roster.
	if idx < r.CurrentIndex {
		r.CurrentIndex--
	}
	if r.CurrentIndex >= len(r.Players) {
		r.CurrentIndex = 0
	}
	return true, false
}

// CurrentPlayer returns the player whose turn it is, or nil before anyone
// has joined.
func (r *Room) CurrentPlayer() *Player {
	if len(r.Players) == 0 || r.CurrentIndex >= len(r.Players) {
		return nil
	}
	return r.Players[r.CurrentIndex]
}

// PlayerByName looks a player up by display name.
func (r *Room) PlayerByName(name string) *Player {
	for _, p := range r.Players {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// TakenPieces lists the pieces already claimed in this room.
func (r *Room) TakenPieces() []string {
	pieces := make([]string, 0, len(r.Players))
	for _, p := range r.Players {
		if p.Piece != "" {
			pieces = append(pieces, p.Piece)
		}
	}
	return pieces
}

// PlayerNames lists the seated display names in turn order.
func (r *Room) PlayerNames() []string {
	names := make([]string, len(r.Players))
	for i, p := range r.Players {
		names[i] = p.Name
	}
	return names
}
