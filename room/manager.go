// room/manager.go
package room

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/quizopoly/gameserver/game"
	"github.com/quizopoly/gameserver/logger"
	"github.com/quizopoly/gameserver/question"
	"github.com/quizopoly/gameserver/session"
	"github.com/quizopoly/gameserver/stats"
	"github.com/quizopoly/gameserver/timer"
)

// ErrRoomNotFound is returned when an action names an unknown room code.
var ErrRoomNotFound = errors.New("room not found")

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 6
)

// Metrics is the optional instrumentation hook, satisfied by the monitor.
type Metrics interface {
	SetActiveRooms(count int)
	ObserveAnswerTime(seconds int)
}

// Info is a read-only room summary for the admin surface.
type Info struct {
	Code    string     `json:"code"`
	Players int        `json:"players"`
	Started bool       `json:"started"`
	Phase   game.Phase `json:"phase"`
}

// Manager is the session directory: it owns every live room, generates
// room codes, routes inbound actions and handles disconnect recovery.
// Constructed once at process start; there is no global registry.
type Manager struct {
	mu    sync.RWMutex
	rooms map[string]*Room

	cfg         game.Config
	bank        *question.Bank
	stats       *stats.Tracker
	timers      *timer.Manager
	broadcaster Broadcaster
	metrics     Metrics

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewManager builds the directory. The broadcaster is attached afterwards
// via SetBroadcaster because it is constructed over this manager.
func NewManager(cfg game.Config, bank *question.Bank, tracker *stats.Tracker, timers *timer.Manager) *Manager {
	return &Manager{
		rooms:  make(map[string]*Room),
		cfg:    cfg,
		bank:   bank,
		stats:  tracker,
		timers: timers,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (m *Manager) SetBroadcaster(b Broadcaster) {
	m.broadcaster = b
}

func (m *Manager) SetMetrics(metrics Metrics) {
	m.metrics = metrics
}

func (m *Manager) observeAnswer(seconds int) {
	if m.metrics != nil {
		m.metrics.ObserveAnswerTime(seconds)
	}
}

func (m *Manager) updateRoomGauge() {
	if m.metrics != nil {
		m.metrics.SetActiveRooms(m.Count())
	}
}

// CreateRoom builds a room with the requester as host and notifies them.
func (m *Manager) CreateRoom(sess *session.Session, playerName, piece string) (*Room, error) {
	g := game.NewRoom("", m.cfg, m.bank.Draw, m.rollDice)
	if err := g.AddPlayer(sess.ID, playerName, piece); err != nil {
		return nil, err
	}

	m.mu.Lock()
	code := m.generateCodeLocked()
	g.Code = code
	r := newRoom(code, g, m)
	r.sessions[sess.ID] = sess
	m.rooms[code] = r
	m.mu.Unlock()

	m.stats.Ensure(playerName)
	sess.Bind(playerName, piece, code)
	m.updateRoomGauge()

	logger.Log.Infof("Session %s created room %s as %s", sess.ID, code, playerName)

	r.send(game.Event{
		Type: game.EventRoomCreated,
		To:   sess.ID,
		Payload: game.RoomPayload{
			RoomCode:    code,
			Players:     g.PlayerViews(),
			TakenPieces: g.TakenPieces(),
		},
	})
	return r, nil
}

// JoinRoom seats a player in an existing room and notifies everyone.
// Returns ErrRoomNotFound or one of the game seating errors.
func (m *Manager) JoinRoom(code string, sess *session.Session, playerName, piece string) error {
	r, ok := m.GetRoom(code)
	if !ok {
		return ErrRoomNotFound
	}
	if err := m.seatPlayer(r, sess, playerName, piece); err != nil {
		return err
	}

	m.stats.Ensure(playerName)
	sess.Bind(playerName, piece, code)

	logger.Log.Infof("Session %s joined room %s as %s", sess.ID, code, playerName)
	return nil
}

// seatPlayer adds the joiner under the room lock. The room can be destroyed
// between lookup and locking by the last player's disconnect; an emptied
// room is never revived, so it counts as not found.
func (m *Manager) seatPlayer(r *Room, sess *session.Session, playerName, piece string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.Game.Players) == 0 {
		return ErrRoomNotFound
	}
	if err := r.Game.AddPlayer(sess.ID, playerName, piece); err != nil {
		return err
	}
	r.AddSession(sess)
	joined := game.RoomPayload{
		RoomCode:    r.Code,
		Players:     r.Game.PlayerViews(),
		TakenPieces: r.Game.TakenPieces(),
	}
	r.emitLocked([]game.Event{
		{Type: game.EventRoomJoined, To: sess.ID, Payload: joined},
		{Type: game.EventPlayersUpdated, Payload: game.PlayersUpdatedPayload{
			Players:     joined.Players,
			TakenPieces: joined.TakenPieces,
		}},
	})
	return nil
}

// Dispatch routes an inbound action to its room.
func (m *Manager) Dispatch(code string, a game.Action) error {
	r, ok := m.GetRoom(code)
	if !ok {
		return ErrRoomNotFound
	}
	r.Dispatch(a)
	return nil
}

// dispatchInternal is the entry point for scheduled callbacks. It looks the
// room up again so a callback firing after destruction is a no-op.
func (m *Manager) dispatchInternal(code string, a game.Action) {
	if r, ok := m.GetRoom(code); ok {
		r.Dispatch(a)
	}
}

// RemoveConnection handles a disconnect: the player leaves their room, host
// status is reassigned if needed, and an empty room is destroyed with its
// timers. Remaining players get the new roster, plus a snapshot if a game
// was in progress.
func (m *Manager) RemoveConnection(sess *session.Session) {
	code := sess.Room()
	if code == "" {
		return
	}
	r, ok := m.GetRoom(code)
	if !ok {
		return
	}

	r.mu.Lock()
	hadPending := r.Game.WaitingForAnswer
	removed, empty := r.Game.RemovePlayer(sess.ID)
	// RemovePlayer drops a question that was pending for the leaver; the
	// countdown attached to it must die too.
	if hadPending && !r.Game.WaitingForAnswer {
		r.stopQuestionTimerLocked()
	}
	r.RemoveSession(sess.ID)

	if empty {
		r.stopTimersLocked()
		r.mu.Unlock()
		m.removeRoom(code)
		m.updateRoomGauge()
		logger.Log.Infof("Room %s destroyed, last player left", code)
		return
	}

	if removed {
		events := []game.Event{
			{Type: game.EventPlayersUpdated, Payload: game.PlayersUpdatedPayload{
				Players:     r.Game.PlayerViews(),
				TakenPieces: r.Game.TakenPieces(),
			}},
		}
		if r.Game.Started {
			events = append(events, game.Event{Type: game.EventGameUpdated, Payload: r.Game.BuildSnapshot()})
		}
		r.emitLocked(events)
		logger.Log.Infof("Session %s left room %s, %d players remain", sess.ID, code, len(r.Game.Players))
	}
	r.mu.Unlock()
}

// GetRoom looks a room up by code.
func (m *Manager) GetRoom(code string) (*Room, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rooms[code]
	return r, ok
}

func (m *Manager) removeRoom(code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rooms, code)
}

// Count returns the number of live rooms.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rooms)
}

// List summarizes the live rooms for the admin RPC.
func (m *Manager) List() []Info {
	m.mu.RLock()
	rooms := make([]*Room, 0, len(m.rooms))
	for _, r := range m.rooms {
		rooms = append(rooms, r)
	}
	m.mu.RUnlock()

	infos := make([]Info, 0, len(rooms))
	for _, r := range rooms {
		r.mu.Lock()
		infos = append(infos, Info{
			Code:    r.Code,
			Players: len(r.Game.Players),
			Started: r.Game.Started,
			Phase:   r.Game.Phase,
		})
		r.mu.Unlock()
	}
	return infos
}

// generateCodeLocked draws 6-character base-36 codes until one is unused.
// Collisions are vanishingly rare at this scale, but the check is cheap.
func (m *Manager) generateCodeLocked() string {
	for {
		buf := make([]byte, codeLength)
		m.rngMu.Lock()
		for i := range buf {
			buf[i] = codeAlphabet[m.rng.Intn(len(codeAlphabet))]
		}
		m.rngMu.Unlock()

		code := string(buf)
		if _, exists := m.rooms[code]; !exists {
			return code
		}
	}
}

func (m *Manager) rollDice() (int, int) {
	m.rngMu.Lock()
	defer m.rngMu.Unlock()
	return m.rng.Intn(6) + 1, m.rng.Intn(6) + 1
}
