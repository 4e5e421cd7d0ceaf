// game/actions.go
package game

// ActionType tags an inbound action for the reducer.
type ActionType int

const (
	ActionStartGame ActionType = iota
	ActionStartTurn
	ActionAnswerQuestion
	ActionRollDice
	ActionBuyProperty
	ActionEndTurn

	// Internal actions scheduled by the timer layer. They re-enter through
	// Apply so they re-validate current state before mutating; a late
	// callback is a no-op.
	ActionQuestionTimeout
	ActionAdvanceTurn
)

// Action is one discrete inbound event. Actor is the session ID of the
// requesting connection; internal actions leave it empty.
type Action struct {
	Type          ActionType
	Actor         string
	AnswerIndex   int
	PropertyIndex int
}
