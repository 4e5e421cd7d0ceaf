// game/events.go
package game

import "github.com/quizopoly/gameserver/question"

// EventType names an outbound notification.
type EventType int

const (
	EventRoomCreated EventType = iota
	EventRoomJoined
	EventPlayersUpdated
	EventGameStarted
	EventQuestion
	EventTimerTick
	EventAnswerResult
	EventDiceRolled
	EventPropertyPurchased
	EventGameUpdated
	EventStatsUpdated
	EventError
)

// Event is one outbound notification produced by the reducer. An empty To
// means broadcast to the whole room; otherwise it is delivered to that
// session only.
type Event struct {
	Type    EventType
	To      string
	Payload any
}

// EffectType names a timer request the owning container must execute.
type EffectType int

const (
	// EffectStartQuestionTimer starts the per-second countdown for the
	// pending question, replacing any countdown already running.
	EffectStartQuestionTimer EffectType = iota
	// EffectCancelQuestionTimer stops the countdown eagerly.
	EffectCancelQuestionTimer
	// EffectScheduleAdvance schedules the delayed turn advance that follows
	// a wrong or timed-out answer.
	EffectScheduleAdvance
)

// Effect is a timer request emitted alongside events.
type Effect struct {
	Type    EffectType
	Seconds int
}

// QuestionPayload is the question as shown to players: the correct index
// and explanation are withheld until the answer is in.
type QuestionPayload struct {
	Question   string              `json:"question"`
	Options    []string            `json:"options"`
	Category   string              `json:"category"`
	Difficulty question.Difficulty `json:"difficulty"`
	TimeLimit  int                 `json:"timeLimit"`
}

// TimerTickPayload carries the remaining answer time.
type TimerTickPayload struct {
	SecondsRemaining int `json:"secondsRemaining"`
}

// AnswerResultPayload reports how the pending question was resolved.
type AnswerResultPayload struct {
	PlayerName  string `json:"playerName"`
	Correct     bool   `json:"correct"`
	TimedOut    bool   `json:"timedOut,omitempty"`
	Explanation string `json:"explanation"`
	TimeTaken   int    `json:"timeTaken"`
}

// DiceRolledPayload reports a resolved dice roll.
type DiceRolledPayload struct {
	PlayerName     string `json:"playerName"`
	Dice           [2]int `json:"dice"`
	Total          int    `json:"total"`
	NewPosition    int    `json:"newPosition"`
	SpaceName      string `json:"spaceName"`
	CanBuyProperty bool   `json:"canBuyProperty"`
	RentOwed       int    `json:"rentOwed,omitempty"`
	RentPaidTo     string `json:"rentPaidTo,omitempty"`
	TaxPaid        int    `json:"taxPaid,omitempty"`
	PassedGo       bool   `json:"passedGo,omitempty"`
}

// PropertyPurchasedPayload reports a completed purchase.
type PropertyPurchasedPayload struct {
	PlayerName    string `json:"playerName"`
	PropertyIndex int    `json:"propertyIndex"`
	PropertyName  string `json:"propertyName"`
	Price         int    `json:"price"`
}

// ErrorPayload carries an error message to the requester.
type ErrorPayload struct {
	Message string `json:"message"`
}

// PlayerView is a player as seen in payloads.
type PlayerView struct {
	Name       string `json:"name"`
	Piece      string `json:"selectedPiece,omitempty"`
	Money      int    `json:"money"`
	Position   int    `json:"position"`
	Properties []int  `json:"properties"`
	IsHost     bool   `json:"isHost"`
}

// SlotView is an owned board slot as seen in snapshots.
type SlotView struct {
	Index  int    `json:"index"`
	Owner  string `json:"owner"`
	Houses int    `json:"houses"`
	Hotel  bool   `json:"hotel"`
}

// Snapshot is the full room state pushed on every gameUpdated.
type Snapshot struct {
	Code             string       `json:"roomCode"`
	Players          []PlayerView `json:"players"`
	CurrentPlayer    int          `json:"currentPlayer"`
	Phase            Phase        `json:"phase"`
	Started          bool         `json:"gameStarted"`
	WaitingForAnswer bool         `json:"waitingForAnswer"`
	Properties       []SlotView   `json:"properties"`
}

// RoomPayload is sent on roomCreated and roomJoined.
type RoomPayload struct {
	RoomCode    string       `json:"roomCode"`
	Players     []PlayerView `json:"players"`
	TakenPieces []string     `json:"takenPieces"`
}

// PlayersUpdatedPayload is broadcast whenever the roster changes.
type PlayersUpdatedPayload struct {
	Players     []PlayerView `json:"players"`
	TakenPieces []string     `json:"takenPieces"`
}

// PlayerViews renders the roster for payloads.
func (r *Room) PlayerViews() []PlayerView {
	views := make([]PlayerView, len(r.Players))
	for i, p := range r.Players {
		views[i] = PlayerView{
			Name:       p.Name,
			Piece:      p.Piece,
			Money:      p.Money,
			Position:   p.Position,
			Properties: p.Properties,
			IsHost:     p.IsHost,
		}
	}
	return views
}

// BuildSnapshot renders the room for gameUpdated broadcasts. Only owned
// slots are included; the static board table is client-side data.
func (r *Room) BuildSnapshot() Snapshot {
	slots := make([]SlotView, 0)
	for i, s := range r.Slots {
		if s.Owner != "" {
			slots = append(slots, SlotView{Index: i, Owner: s.Owner, Houses: s.Houses, Hotel: s.Hotel})
		}
	}
	return Snapshot{
		Code:             r.Code,
		Players:          r.PlayerViews(),
		CurrentPlayer:    r.CurrentIndex,
		Phase:            r.Phase,
		Started:          r.Started,
		WaitingForAnswer: r.WaitingForAnswer,
		Properties:       slots,
	}
}
