// game/room.go
package game

import (
	"math"
	"time"

	"github.com/quizopoly/gameserver/board"
)

// Apply runs one action against the room and returns the notifications to
// deliver plus any timer effects to execute. Stale actions (wrong actor,
// wrong phase) return nothing: out-of-order client messages are tolerated,
// not errored. Explicit error events are reserved for lobby-level failures.
func (r *Room) Apply(a Action, now time.Time) ([]Event, []Effect) {
	switch a.Type {
	case ActionStartGame:
		return r.applyStartGame(a)
	case ActionStartTurn:
		return r.applyStartTurn(a, now)
	case ActionAnswerQuestion:
		return r.applyAnswer(a, now)
	case ActionQuestionTimeout:
		return r.applyTimeout()
	case ActionAdvanceTurn:
		return r.applyAdvanceTurn()
	case ActionRollDice:
		return r.applyRollDice(a)
	case ActionBuyProperty:
		return r.applyBuyProperty(a)
	case ActionEndTurn:
		return r.applyEndTurn(a)
	}
	return nil, nil
}

func (r *Room) applyStartGame(a Action) ([]Event, []Effect) {
	actor := r.playerBySession(a.Actor)
	if actor == nil || !actor.IsHost {
		return errorTo(a.Actor, "only the host can start the game"), nil
	}
	if r.Started {
		return errorTo(a.Actor, "game already started"), nil
	}
	if len(r.Players) < 2 {
		return errorTo(a.Actor, "need at least 2 players to start"), nil
	}

	r.Started = true
	r.CurrentIndex = 0
	r.Phase = PhaseQuestion

	return []Event{{Type: EventGameStarted, Payload: r.BuildSnapshot()}}, nil
}

func (r *Room) applyStartTurn(a Action, now time.Time) ([]Event, []Effect) {
	if !r.Started || r.Phase != PhaseQuestion || r.WaitingForAnswer || !r.isCurrent(a.Actor) {
		return nil, nil
	}

	q := r.draw()
	r.CurrentQuestion = &q
	r.WaitingForAnswer = true
	r.QuestionStart = now

	events := []Event{{
		Type: EventQuestion,
		Payload: QuestionPayload{
			Question:   q.Question,
			Options:    q.Options,
			Category:   q.Category,
			Difficulty: q.Difficulty,
			TimeLimit:  q.TimeLimitSeconds(),
		},
	}}
	effects := []Effect{{Type: EffectStartQuestionTimer, Seconds: q.TimeLimitSeconds()}}
	return events, effects
}

func (r *Room) applyAnswer(a Action, now time.Time) ([]Event, []Effect) {
	if !r.WaitingForAnswer || r.CurrentQuestion == nil || !r.isCurrent(a.Actor) {
		return nil, nil
	}

	q := *r.CurrentQuestion
	player := r.CurrentPlayer()
	correct := a.AnswerIndex == q.CorrectAnswer
	elapsed := int(math.Round(now.Sub(r.QuestionStart).Seconds()))

	r.CurrentQuestion = nil
	r.WaitingForAnswer = false

	result := AnswerResultPayload{
		PlayerName:  player.Name,
		Correct:     correct,
		Explanation: q.Explanation,
		TimeTaken:   elapsed,
	}
	effects := []Effect{{Type: EffectCancelQuestionTimer}}

	if correct {
		player.Money += r.cfg.AnswerReward
		r.Phase = PhaseDice
	} else {
		effects = append(effects, Effect{Type: EffectScheduleAdvance})
	}

	events := []Event{
		{Type: EventAnswerResult, Payload: result},
		{Type: EventGameUpdated, Payload: r.BuildSnapshot()},
	}
	return events, effects
}

// applyTimeout fires when the countdown reaches zero with the question
// still pending. A tick that lost the race with an answer no-ops here.
func (r *Room) applyTimeout() ([]Event, []Effect) {
	if !r.WaitingForAnswer || r.CurrentQuestion == nil {
		return nil, nil
	}

	q := *r.CurrentQuestion
	player := r.CurrentPlayer()
	if player == nil {
		r.CurrentQuestion = nil
		r.WaitingForAnswer = false
		return nil, nil
	}

	r.CurrentQuestion = nil
	r.WaitingForAnswer = false

	events := []Event{
		{Type: EventAnswerResult, Payload: AnswerResultPayload{
			PlayerName:  player.Name,
			Correct:     false,
			TimedOut:    true,
			Explanation: q.Explanation,
			TimeTaken:   q.TimeLimitSeconds(),
		}},
		{Type: EventGameUpdated, Payload: r.BuildSnapshot()},
	}
	return events, []Effect{{Type: EffectScheduleAdvance}}
}

// applyAdvanceTurn is the delayed follow-up to a wrong or timed-out answer.
// State may have moved on during the delay, so it re-validates: if a fresh
// question is already pending, the stale advance is dropped.
func (r *Room) applyAdvanceTurn() ([]Event, []Effect) {
	if !r.Started || len(r.Players) == 0 || r.WaitingForAnswer {
		return nil, nil
	}
	r.advance()
	return []Event{{Type: EventGameUpdated, Payload: r.BuildSnapshot()}}, nil
}

func (r *Room) applyRollDice(a Action) ([]Event, []Effect) {
	if !r.Started || r.Phase != PhaseDice || !r.isCurrent(a.Actor) {
		return nil, nil
	}

	player := r.CurrentPlayer()
	d1, d2 := r.roll()
	total := d1 + d2

	oldPos := player.Position
	newPos := (oldPos + total) % board.Size
	player.Position = newPos

	passedGo := newPos < oldPos
	if passedGo {
		player.Money += r.cfg.PassGoBonus
	}

	sp := board.SpaceAt(newPos)
	payload := DiceRolledPayload{
		PlayerName:  player.Name,
		Dice:        [2]int{d1, d2},
		Total:       total,
		NewPosition: newPos,
		SpaceName:   sp.Name,
		PassedGo:    passedGo,
	}

	switch {
	case sp.Ownable() && r.Slots[newPos].Owner == "":
		payload.CanBuyProperty = true
		r.Phase = PhaseProperty

	case sp.Ownable() && r.Slots[newPos].Owner != player.Name:
		rent := Rent(newPos, &r.Slots, total)
		player.Money -= rent
		if owner := r.PlayerByName(r.Slots[newPos].Owner); owner != nil {
			owner.Money += rent
		}
		payload.RentOwed = rent
		payload.RentPaidTo = r.Slots[newPos].Owner
		r.Phase = PhaseEndTurn

	case sp.Type == board.Tax:
		player.Money -= sp.Tax
		payload.TaxPaid = sp.Tax
		r.Phase = PhaseEndTurn

	default:
		// Own property, corner, chest or chance: nothing to settle.
		r.Phase = PhaseEndTurn
	}

	events := []Event{
		{Type: EventDiceRolled, Payload: payload},
		{Type: EventGameUpdated, Payload: r.BuildSnapshot()},
	}
	return events, nil
}

func (r *Room) applyBuyProperty(a Action) ([]Event, []Effect) {
	if !r.Started || r.Phase != PhaseProperty || !r.isCurrent(a.Actor) {
		return nil, nil
	}

	player := r.CurrentPlayer()
	idx := a.PropertyIndex
	if idx < 0 || idx >= board.Size {
		return nil, nil
	}
	sp := board.SpaceAt(idx)
	// Insufficient funds and already-owned races are silent no-ops.
	if !sp.Ownable() || r.Slots[idx].Owner != "" || player.Money < sp.Price {
		return nil, nil
	}

	player.Money -= sp.Price
	player.Properties = append(player.Properties, idx)
	r.Slots[idx].Owner = player.Name
	r.Phase = PhaseEndTurn

	events := []Event{
		{Type: EventPropertyPurchased, Payload: PropertyPurchasedPayload{
			PlayerName:    player.Name,
			PropertyIndex: idx,
			PropertyName:  sp.Name,
			Price:         sp.Price,
		}},
		{Type: EventGameUpdated, Payload: r.BuildSnapshot()},
	}
	return events, nil
}

func (r *Room) applyEndTurn(a Action) ([]Event, []Effect) {
	if !r.Started || r.Phase != PhaseEndTurn || !r.isCurrent(a.Actor) {
		return nil, nil
	}
	r.advance()
	return []Event{{Type: EventGameUpdated, Payload: r.BuildSnapshot()}}, nil
}

func (r *Room) advance() {
	r.CurrentIndex = (r.CurrentIndex + 1) % len(r.Players)
	r.Phase = PhaseQuestion
}

func (r *Room) isCurrent(sessionID string) bool {
	p := r.CurrentPlayer()
	return p != nil && p.SessionID == sessionID
}

func (r *Room) playerBySession(sessionID string) *Player {
	for _, p := range r.Players {
		if p.SessionID == sessionID {
			return p
		}
	}
	return nil
}

func errorTo(sessionID, msg string) []Event {
	return []Event{{Type: EventError, To: sessionID, Payload: ErrorPayload{Message: msg}}}
}
