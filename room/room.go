// room/room.go
package room

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/quizopoly/gameserver/game"
	"github.com/quizopoly/gameserver/logger"
	"github.com/quizopoly/gameserver/network"
	"github.com/quizopoly/gameserver/session"
)

// Room pairs one game state machine with its connected sessions and owns
// the timers attached to it: the question countdown and the delayed turn
// advance. All game mutation is serialized under mu; the sessions map has
// its own lock so broadcasts never contend with game logic.
type Room struct {
	Code      string
	Game      *game.Room
	CreatedAt time.Time

	mu  sync.Mutex
	mgr *Manager

	sessMu   sync.RWMutex
	sessions map[string]*session.Session

	questionTimerID int64
	questionSeq     int64
	remaining       int
	advanceTimerID  int64
}

func newRoom(code string, g *game.Room, mgr *Manager) *Room {
	return &Room{
		Code:      code,
		Game:      g,
		CreatedAt: time.Now(),
		mgr:       mgr,
		sessions:  make(map[string]*session.Session),
	}
}

// Dispatch runs one inbound action against the room. One action is fully
// processed, timers adjusted and notifications sent, before the next.
func (r *Room) Dispatch(a game.Action) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.applyLocked(a)
}

func (r *Room) applyLocked(a game.Action) {
	events, effects := r.Game.Apply(a, time.Now())
	for _, ef := range effects {
		r.runEffectLocked(ef)
	}
	r.emitLocked(events)
}

func (r *Room) runEffectLocked(ef game.Effect) {
	switch ef.Type {
	case game.EffectStartQuestionTimer:
		// Replace any countdown already running for this room. The sequence
		// number stamps each countdown so a tick from an earlier one that is
		// already in flight cannot touch its successor.
		r.stopQuestionTimerLocked()
		r.remaining = ef.Seconds
		r.questionSeq++
		seq := r.questionSeq
		r.questionTimerID = r.mgr.timers.AddTimer(time.Second, time.Second, func() {
			r.countdownTick(seq)
		})

	case game.EffectCancelQuestionTimer:
		r.stopQuestionTimerLocked()

	case game.EffectScheduleAdvance:
		code := r.Code
		r.advanceTimerID = r.mgr.timers.AddTimer(r.mgr.cfg.ResultDelay, 0, func() {
			// The room may have been destroyed during the pause.
			r.mgr.dispatchInternal(code, game.Action{Type: game.ActionAdvanceTurn})
		})
	}
}

// countdownTick fires once per second while a question is open. The tick
// that reaches zero hands control to the timeout path; a tick racing a
// cancellation sees questionTimerID cleared, or a sequence number from an
// older countdown, and does nothing.
func (r *Room) countdownTick(seq int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.questionTimerID == 0 || seq != r.questionSeq {
		return
	}

	r.remaining--
	if r.remaining > 0 {
		r.emitLocked([]game.Event{{
			Type:    game.EventTimerTick,
			Payload: game.TimerTickPayload{SecondsRemaining: r.remaining},
		}})
		return
	}

	r.stopQuestionTimerLocked()
	r.applyLocked(game.Action{Type: game.ActionQuestionTimeout})
}

func (r *Room) stopQuestionTimerLocked() {
	if r.questionTimerID != 0 {
		r.mgr.timers.RemoveTimer(r.questionTimerID)
		r.questionTimerID = 0
		r.remaining = 0
	}
}

// stopTimersLocked cancels everything scheduled for this room. Called on
// destruction so no timer outlives its room.
func (r *Room) stopTimersLocked() {
	r.stopQuestionTimerLocked()
	if r.advanceTimerID != 0 {
		r.mgr.timers.RemoveTimer(r.advanceTimerID)
		r.advanceTimerID = 0
	}
}

// emitLocked delivers reducer events. Answer results additionally feed the
// stats tracker and trigger a statsUpdated broadcast for the roster.
func (r *Room) emitLocked(events []game.Event) {
	for _, ev := range events {
		r.send(ev)

		if ev.Type == game.EventAnswerResult {
			result, ok := ev.Payload.(game.AnswerResultPayload)
			if !ok {
				continue
			}
			r.mgr.stats.RecordOutcome(result.PlayerName, result.Correct, result.TimeTaken)
			r.mgr.observeAnswer(result.TimeTaken)
			r.send(game.Event{
				Type:    game.EventStatsUpdated,
				Payload: r.mgr.stats.ForNames(r.Game.PlayerNames()),
			})
		}
	}
}

func (r *Room) send(ev game.Event) {
	data, err := json.Marshal(ev.Payload)
	if err != nil {
		logger.Log.Errorf("Failed to marshal event %d for room %s: %v", ev.Type, r.Code, err)
		return
	}

	msgID := wireMsgID(ev.Type)
	if ev.To != "" {
		if err := r.mgr.broadcaster.SendToSession(ev.To, msgID, data); err != nil {
			logger.Log.Warnf("Failed to deliver event to session %s: %v", ev.To, err)
		}
		return
	}
	if err := r.mgr.broadcaster.BroadcastToRoom(r.Code, msgID, data); err != nil {
		logger.Log.Warnf("Failed to broadcast to room %s: %v", r.Code, err)
	}
}

// AddSession attaches a connection to the room's delivery set.
func (r *Room) AddSession(s *session.Session) {
	r.sessMu.Lock()
	defer r.sessMu.Unlock()
	r.sessions[s.ID] = s
}

// RemoveSession detaches a connection.
func (r *Room) RemoveSession(sessionID string) {
	r.sessMu.Lock()
	defer r.sessMu.Unlock()
	delete(r.sessions, sessionID)
}

// GetSessions returns a snapshot of the connected sessions.
func (r *Room) GetSessions() []*session.Session {
	r.sessMu.RLock()
	defer r.sessMu.RUnlock()

	sessions := make([]*session.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}
	return sessions
}

func wireMsgID(t game.EventType) uint16 {
	switch t {
	case game.EventRoomCreated:
		return network.MsgTypeRoomCreated
	case game.EventRoomJoined:
		return network.MsgTypeRoomJoined
	case game.EventPlayersUpdated:
		return network.MsgTypePlayersUpdated
	case game.EventGameStarted:
		return network.MsgTypeGameStarted
	case game.EventQuestion:
		return network.MsgTypeQuestion
	case game.EventTimerTick:
		return network.MsgTypeTimerTick
	case game.EventAnswerResult:
		return network.MsgTypeAnswerResult
	case game.EventDiceRolled:
		return network.MsgTypeDiceRolled
	case game.EventPropertyPurchased:
		return network.MsgTypePropertyPurchased
	case game.EventGameUpdated:
		return network.MsgTypeGameUpdated
	case game.EventStatsUpdated:
		return network.MsgTypeStatsUpdated
	case game.EventError:
		return network.MsgTypeError
	}
	return network.MsgTypeError
}
