package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizopoly/gameserver/question"
)

var testQuestion = question.Record{
	Question:      "What is the standard rate of VAT in the UK?",
	Options:       []string{"15%", "17.5%", "20%", "25%"},
	CorrectAnswer: 2,
	Explanation:   "The standard rate has been 20% since January 2011.",
	Category:      "economics",
	Difficulty:    question.Easy,
}

// testRoom builds a room with Amy (host) and Ben seated, a fixed question
// and a controllable dice roll.
func testRoom(t *testing.T, dice *[2]int) *Room {
	t.Helper()

	draw := func() question.Record { return testQuestion }
	roll := func() (int, int) {
		if dice == nil {
			return 3, 4
		}
		return dice[0], dice[1]
	}

	r := NewRoom("ABC123", DefaultConfig(), draw, roll)
	require.NoError(t, r.AddPlayer("sess-amy", "Amy", "car"))
	require.NoError(t, r.AddPlayer("sess-ben", "Ben", "dog"))
	return r
}

// startedRoom additionally starts the game so Amy's turn is up in the
// question phase.
func startedRoom(t *testing.T, dice *[2]int) *Room {
	t.Helper()
	r := testRoom(t, dice)
	events, _ := r.Apply(Action{Type: ActionStartGame, Actor: "sess-amy"}, time.Now())
	require.Len(t, events, 1)
	require.Equal(t, EventGameStarted, events[0].Type)
	return r
}

func eventTypes(events []Event) []EventType {
	types := make([]EventType, len(events))
	for i, e := range events {
		types[i] = e.Type
	}
	return types
}

func TestAddPlayer(t *testing.T) {
	r := NewRoom("ABC123", DefaultConfig(), nil, nil)

	require.NoError(t, r.AddPlayer("s1", "Amy", "car"))
	assert.True(t, r.Players[0].IsHost, "first player should be host")
	assert.Equal(t, 1500, r.Players[0].Money)

	require.NoError(t, r.AddPlayer("s2", "Ben", "dog"))
	assert.False(t, r.Players[1].IsHost)

	assert.ErrorIs(t, r.AddPlayer("s3", "Amy", "hat"), ErrNameTaken)
	assert.ErrorIs(t, r.AddPlayer("s3", "Cat", "dog"), ErrPieceTaken)
	assert.Equal(t, []string{"car", "dog"}, r.TakenPieces())
}

func TestAddPlayerRoomFull(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxPlayers = 2
	r := NewRoom("ABC123", cfg, nil, nil)
	require.NoError(t, r.AddPlayer("s1", "Amy", ""))
	require.NoError(t, r.AddPlayer("s2", "Ben", ""))

	assert.ErrorIs(t, r.AddPlayer("s3", "Cat", ""), ErrRoomFull)
}

func TestAddPlayerAfterStart(t *testing.T) {
	r := startedRoom(t, nil)
	assert.ErrorIs(t, r.AddPlayer("s3", "Cat", ""), ErrGameStarted)
}

func TestStartGameRequiresHost(t *testing.T) {
	r := testRoom(t, nil)
	events, _ := r.Apply(Action{Type: ActionStartGame, Actor: "sess-ben"}, time.Now())

	require.Len(t, events, 1)
	assert.Equal(t, EventError, events[0].Type)
	assert.Equal(t, "sess-ben", events[0].To)
	assert.False(t, r.Started)
}

func TestStartGameRequiresTwoPlayers(t *testing.T) {
	r := NewRoom("ABC123", DefaultConfig(), nil, nil)
	require.NoError(t, r.AddPlayer("s1", "Amy", ""))

	events, _ := r.Apply(Action{Type: ActionStartGame, Actor: "s1"}, time.Now())
	require.Len(t, events, 1)
	assert.Equal(t, EventError, events[0].Type)
}

func TestStartGame(t *testing.T) {
	r := testRoom(t, nil)
	events, effects := r.Apply(Action{Type: ActionStartGame, Actor: "sess-amy"}, time.Now())

	assert.Empty(t, effects)
	require.Len(t, events, 1)
	assert.Equal(t, EventGameStarted, events[0].Type)
	assert.True(t, r.Started)
	assert.Equal(t, 0, r.CurrentIndex)
	assert.Equal(t, PhaseQuestion, r.Phase)

	// A second start is rejected.
	events, _ = r.Apply(Action{Type: ActionStartGame, Actor: "sess-amy"}, time.Now())
	require.Len(t, events, 1)
	assert.Equal(t, EventError, events[0].Type)
}

func TestStartTurnDrawsQuestion(t *testing.T) {
	r := startedRoom(t, nil)
	events, effects := r.Apply(Action{Type: ActionStartTurn, Actor: "sess-amy"}, time.Now())

	require.Len(t, events, 1)
	require.Equal(t, EventQuestion, events[0].Type)
	payload := events[0].Payload.(QuestionPayload)
	assert.Equal(t, testQuestion.Question, payload.Question)
	assert.Equal(t, 45, payload.TimeLimit)
	assert.True(t, r.WaitingForAnswer)

	require.Len(t, effects, 1)
	assert.Equal(t, EffectStartQuestionTimer, effects[0].Type)
	assert.Equal(t, 45, effects[0].Seconds)
}

func TestStartTurnIgnoredForWrongActor(t *testing.T) {
	r := startedRoom(t, nil)
	events, effects := r.Apply(Action{Type: ActionStartTurn, Actor: "sess-ben"}, time.Now())
	assert.Empty(t, events)
	assert.Empty(t, effects)
	assert.False(t, r.WaitingForAnswer)
}

func TestCorrectAnswerRewardsAndAdvancesPhase(t *testing.T) {
	r := startedRoom(t, nil)
	asked := time.Now()
	r.Apply(Action{Type: ActionStartTurn, Actor: "sess-amy"}, asked)

	events, effects := r.Apply(
		Action{Type: ActionAnswerQuestion, Actor: "sess-amy", AnswerIndex: 2},
		asked.Add(12*time.Second),
	)

	require.Equal(t, []EventType{EventAnswerResult, EventGameUpdated}, eventTypes(events))
	result := events[0].Payload.(AnswerResultPayload)
	assert.Equal(t, "Amy", result.PlayerName)
	assert.True(t, result.Correct)
	assert.False(t, result.TimedOut)
	assert.Equal(t, 12, result.TimeTaken)
	assert.Equal(t, testQuestion.Explanation, result.Explanation)

	assert.Equal(t, 1600, r.Players[0].Money)
	assert.Equal(t, PhaseDice, r.Phase)
	assert.False(t, r.WaitingForAnswer)

	require.Len(t, effects, 1)
	assert.Equal(t, EffectCancelQuestionTimer, effects[0].Type)
}

func TestWrongAnswerSchedulesAdvance(t *testing.T) {
	r := startedRoom(t, nil)
	asked := time.Now()
	r.Apply(Action{Type: ActionStartTurn, Actor: "sess-amy"}, asked)

	events, effects := r.Apply(
		Action{Type: ActionAnswerQuestion, Actor: "sess-amy", AnswerIndex: 0},
		asked.Add(5*time.Second),
	)

	result := events[0].Payload.(AnswerResultPayload)
	assert.False(t, result.Correct)
	assert.Equal(t, 1500, r.Players[0].Money, "wrong answer earns nothing")
	assert.Equal(t, PhaseQuestion, r.Phase, "phase holds until the delayed advance")

	require.Len(t, effects, 2)
	assert.Equal(t, EffectCancelQuestionTimer, effects[0].Type)
	assert.Equal(t, EffectScheduleAdvance, effects[1].Type)

	// The delayed advance moves the turn to Ben.
	events, _ = r.Apply(Action{Type: ActionAdvanceTurn}, time.Now())
	require.Len(t, events, 1)
	assert.Equal(t, 1, r.CurrentIndex)
	assert.Equal(t, PhaseQuestion, r.Phase)
}

func TestAnswerFromWrongPlayerIgnored(t *testing.T) {
	r := startedRoom(t, nil)
	r.Apply(Action{Type: ActionStartTurn, Actor: "sess-amy"}, time.Now())

	events, effects := r.Apply(Action{Type: ActionAnswerQuestion, Actor: "sess-ben", AnswerIndex: 2}, time.Now())
	assert.Empty(t, events)
	assert.Empty(t, effects)
	assert.True(t, r.WaitingForAnswer, "question stays pending")
}

func TestTimeoutCountsAsIncorrect(t *testing.T) {
	r := startedRoom(t, nil)
	r.Apply(Action{Type: ActionStartTurn, Actor: "sess-amy"}, time.Now())

	events, effects := r.Apply(Action{Type: ActionQuestionTimeout}, time.Now())

	require.Equal(t, []EventType{EventAnswerResult, EventGameUpdated}, eventTypes(events))
	result := events[0].Payload.(AnswerResultPayload)
	assert.False(t, result.Correct)
	assert.True(t, result.TimedOut)
	assert.Equal(t, 45, result.TimeTaken, "timeout is charged the full limit")

	require.Len(t, effects, 1)
	assert.Equal(t, EffectScheduleAdvance, effects[0].Type)
	assert.False(t, r.WaitingForAnswer)
}

func TestTimeoutAfterAnswerIsNoop(t *testing.T) {
	r := startedRoom(t, nil)
	asked := time.Now()
	r.Apply(Action{Type: ActionStartTurn, Actor: "sess-amy"}, asked)
	r.Apply(Action{Type: ActionAnswerQuestion, Actor: "sess-amy", AnswerIndex: 2}, asked)

	events, effects := r.Apply(Action{Type: ActionQuestionTimeout}, time.Now())
	assert.Empty(t, events)
	assert.Empty(t, effects)
	assert.Equal(t, PhaseDice, r.Phase)
}

func TestStaleAdvanceDropped(t *testing.T) {
	r := startedRoom(t, nil)
	asked := time.Now()
	r.Apply(Action{Type: ActionStartTurn, Actor: "sess-amy"}, asked)
	r.Apply(Action{Type: ActionAnswerQuestion, Actor: "sess-amy", AnswerIndex: 0}, asked)
	r.Apply(Action{Type: ActionAdvanceTurn}, time.Now())

	// Ben has already drawn his question by the time a stale advance lands.
	r.Apply(Action{Type: ActionStartTurn, Actor: "sess-ben"}, time.Now())
	events, _ := r.Apply(Action{Type: ActionAdvanceTurn}, time.Now())

	assert.Empty(t, events)
	assert.Equal(t, 1, r.CurrentIndex, "turn must not skip past Ben")
}

func TestRollDiceLandsOnChance(t *testing.T) {
	dice := [2]int{3, 4}
	r := startedRoom(t, &dice)
	answerCorrect(t, r, "sess-amy")

	events, effects := r.Apply(Action{Type: ActionRollDice, Actor: "sess-amy"}, time.Now())

	assert.Empty(t, effects)
	require.Equal(t, []EventType{EventDiceRolled, EventGameUpdated}, eventTypes(events))
	payload := events[0].Payload.(DiceRolledPayload)
	assert.Equal(t, [2]int{3, 4}, payload.Dice)
	assert.Equal(t, 7, payload.Total)
	assert.Equal(t, 7, payload.NewPosition)
	assert.Equal(t, "Chance", payload.SpaceName)
	assert.False(t, payload.CanBuyProperty)
	assert.False(t, payload.PassedGo)

	assert.Equal(t, 7, r.Players[0].Position)
	assert.Equal(t, PhaseEndTurn, r.Phase)
}

func TestRollDiceOffersUnownedProperty(t *testing.T) {
	dice := [2]int{5, 6} // lands on Pall Mall (11)
	r := startedRoom(t, &dice)
	answerCorrect(t, r, "sess-amy")

	events, _ := r.Apply(Action{Type: ActionRollDice, Actor: "sess-amy"}, time.Now())

	payload := events[0].Payload.(DiceRolledPayload)
	assert.True(t, payload.CanBuyProperty)
	assert.Equal(t, "Pall Mall", payload.SpaceName)
	assert.Equal(t, PhaseProperty, r.Phase)
}

func TestRollDicePaysRent(t *testing.T) {
	dice := [2]int{5, 6}
	r := startedRoom(t, &dice)
	r.Slots[11].Owner = "Ben"
	r.Players[1].Properties = append(r.Players[1].Properties, 11)
	answerCorrect(t, r, "sess-amy")

	events, _ := r.Apply(Action{Type: ActionRollDice, Actor: "sess-amy"}, time.Now())

	payload := events[0].Payload.(DiceRolledPayload)
	assert.Equal(t, 10, payload.RentOwed)
	assert.Equal(t, "Ben", payload.RentPaidTo)
	assert.Equal(t, 1590, r.Players[0].Money)
	assert.Equal(t, 1510, r.Players[1].Money)
	assert.Equal(t, PhaseEndTurn, r.Phase)
}

func TestRollDiceOwnPropertyNothingDue(t *testing.T) {
	dice := [2]int{5, 6}
	r := startedRoom(t, &dice)
	r.Slots[11].Owner = "Amy"
	answerCorrect(t, r, "sess-amy")

	events, _ := r.Apply(Action{Type: ActionRollDice, Actor: "sess-amy"}, time.Now())

	payload := events[0].Payload.(DiceRolledPayload)
	assert.False(t, payload.CanBuyProperty)
	assert.Zero(t, payload.RentOwed)
	assert.Equal(t, 1600, r.Players[0].Money)
	assert.Equal(t, PhaseEndTurn, r.Phase)
}

func TestRollDicePaysTax(t *testing.T) {
	dice := [2]int{1, 3} // Income Tax (4)
	r := startedRoom(t, &dice)
	answerCorrect(t, r, "sess-amy")

	events, _ := r.Apply(Action{Type: ActionRollDice, Actor: "sess-amy"}, time.Now())

	payload := events[0].Payload.(DiceRolledPayload)
	assert.Equal(t, 200, payload.TaxPaid)
	assert.Equal(t, 1400, r.Players[0].Money)
	assert.Equal(t, PhaseEndTurn, r.Phase)
}

func TestRollDicePassesGo(t *testing.T) {
	dice := [2]int{2, 3}
	r := startedRoom(t, &dice)
	r.Players[0].Position = 38 // wraps to 3
	answerCorrect(t, r, "sess-amy")

	events, _ := r.Apply(Action{Type: ActionRollDice, Actor: "sess-amy"}, time.Now())

	payload := events[0].Payload.(DiceRolledPayload)
	assert.True(t, payload.PassedGo)
	assert.Equal(t, 3, payload.NewPosition)
	// 1500 + 100 answer reward + 200 pass-go bonus.
	assert.Equal(t, 1800, r.Players[0].Money)
}

func TestRollDiceOutsidePhaseIgnored(t *testing.T) {
	r := startedRoom(t, nil)
	events, effects := r.Apply(Action{Type: ActionRollDice, Actor: "sess-amy"}, time.Now())
	assert.Empty(t, events)
	assert.Empty(t, effects)
}

func TestBuyProperty(t *testing.T) {
	dice := [2]int{5, 6}
	r := startedRoom(t, &dice)
	answerCorrect(t, r, "sess-amy")
	r.Apply(Action{Type: ActionRollDice, Actor: "sess-amy"}, time.Now())

	events, _ := r.Apply(Action{Type: ActionBuyProperty, Actor: "sess-amy", PropertyIndex: 11}, time.Now())

	require.Equal(t, []EventType{EventPropertyPurchased, EventGameUpdated}, eventTypes(events))
	payload := events[0].Payload.(PropertyPurchasedPayload)
	assert.Equal(t, "Pall Mall", payload.PropertyName)
	assert.Equal(t, 140, payload.Price)

	assert.Equal(t, 1460, r.Players[0].Money)
	assert.Equal(t, []int{11}, r.Players[0].Properties)
	assert.Equal(t, "Amy", r.Slots[11].Owner)
	assert.Equal(t, PhaseEndTurn, r.Phase)
}

func TestBuyPropertyInsufficientFundsIgnored(t *testing.T) {
	dice := [2]int{5, 6}
	r := startedRoom(t, &dice)
	answerCorrect(t, r, "sess-amy")
	r.Apply(Action{Type: ActionRollDice, Actor: "sess-amy"}, time.Now())
	r.Players[0].Money = 50

	events, _ := r.Apply(Action{Type: ActionBuyProperty, Actor: "sess-amy", PropertyIndex: 11}, time.Now())

	assert.Empty(t, events)
	assert.Empty(t, r.Slots[11].Owner)
	assert.Equal(t, PhaseProperty, r.Phase)
}

func TestEndTurnAdvances(t *testing.T) {
	dice := [2]int{3, 4}
	r := startedRoom(t, &dice)
	answerCorrect(t, r, "sess-amy")
	r.Apply(Action{Type: ActionRollDice, Actor: "sess-amy"}, time.Now())

	events, _ := r.Apply(Action{Type: ActionEndTurn, Actor: "sess-amy"}, time.Now())

	require.Len(t, events, 1)
	assert.Equal(t, EventGameUpdated, events[0].Type)
	assert.Equal(t, 1, r.CurrentIndex)
	assert.Equal(t, PhaseQuestion, r.Phase)
	assert.Equal(t, "Ben", r.CurrentPlayer().Name)
}

func TestRemovePlayerReassignsHost(t *testing.T) {
	r := testRoom(t, nil)
	removed, empty := r.RemovePlayer("sess-amy")

	assert.True(t, removed)
	assert.False(t, empty)
	assert.True(t, r.Players[0].IsHost, "host moves to the next player")
	assert.Equal(t, "Ben", r.Players[0].Name)

	removed, empty = r.RemovePlayer("sess-ben")
	assert.True(t, removed)
	assert.True(t, empty)
}

func TestRemovePlayerDropsPendingQuestion(t *testing.T) {
	r := startedRoom(t, nil)
	r.Apply(Action{Type: ActionStartTurn, Actor: "sess-amy"}, time.Now())
	require.True(t, r.WaitingForAnswer)

	removed, empty := r.RemovePlayer("sess-amy")
	require.True(t, removed)
	require.False(t, empty)

	assert.False(t, r.WaitingForAnswer, "the question leaves with the player it was asked of")
	assert.Nil(t, r.CurrentQuestion)

	// A timeout already in flight must not resolve against Ben.
	events, effects := r.Apply(Action{Type: ActionQuestionTimeout}, time.Now())
	assert.Empty(t, events)
	assert.Empty(t, effects)
}

func TestRemoveOtherPlayerKeepsPendingQuestion(t *testing.T) {
	r := testRoom(t, nil)
	require.NoError(t, r.AddPlayer("sess-cat", "Cat", "hat"))
	r.Apply(Action{Type: ActionStartGame, Actor: "sess-amy"}, time.Now())
	r.Apply(Action{Type: ActionStartTurn, Actor: "sess-amy"}, time.Now())

	removed, _ := r.RemovePlayer("sess-cat")
	require.True(t, removed)

	assert.True(t, r.WaitingForAnswer, "a bystander leaving must not cancel Amy's question")
	assert.NotNil(t, r.CurrentQuestion)
}

func TestRemoveEarlierPlayerKeepsTurnOwner(t *testing.T) {
	r := testRoom(t, nil)
	require.NoError(t, r.AddPlayer("sess-cat", "Cat", "hat"))
	r.Apply(Action{Type: ActionStartGame, Actor: "sess-amy"}, time.Now())
	r.CurrentIndex = 1 // Ben's turn
	r.Apply(Action{Type: ActionStartTurn, Actor: "sess-ben"}, time.Now())

	removed, _ := r.RemovePlayer("sess-amy")
	require.True(t, removed)

	assert.Equal(t, "Ben", r.CurrentPlayer().Name, "turn stays with Ben after an earlier seat empties")
	assert.True(t, r.WaitingForAnswer)
}

func TestRemoveCurrentPlayerClampsTurn(t *testing.T) {
	r := startedRoom(t, nil)
	r.CurrentIndex = 1 // Ben's turn

	removed, empty := r.RemovePlayer("sess-ben")
	require.True(t, removed)
	require.False(t, empty)
	assert.Equal(t, 0, r.CurrentIndex)
	assert.Equal(t, "Amy", r.CurrentPlayer().Name)
}

func TestFullTurnCycle(t *testing.T) {
	dice := [2]int{3, 4}
	r := startedRoom(t, &dice)

	// Amy: question -> dice -> endTurn.
	answerCorrect(t, r, "sess-amy")
	r.Apply(Action{Type: ActionRollDice, Actor: "sess-amy"}, time.Now())
	r.Apply(Action{Type: ActionEndTurn, Actor: "sess-amy"}, time.Now())
	assert.Equal(t, "Ben", r.CurrentPlayer().Name)

	// Ben: question -> dice -> endTurn, wrapping back to Amy.
	answerCorrect(t, r, "sess-ben")
	r.Apply(Action{Type: ActionRollDice, Actor: "sess-ben"}, time.Now())
	r.Apply(Action{Type: ActionEndTurn, Actor: "sess-ben"}, time.Now())
	assert.Equal(t, "Amy", r.CurrentPlayer().Name)
	assert.Equal(t, PhaseQuestion, r.Phase)
}

// answerCorrect walks the current player through question and correct answer
// so the room sits in the dice phase.
func answerCorrect(t *testing.T, r *Room, actor string) {
	t.Helper()
	now := time.Now()
	_, effects := r.Apply(Action{Type: ActionStartTurn, Actor: actor}, now)
	require.NotEmpty(t, effects)
	events, _ := r.Apply(Action{Type: ActionAnswerQuestion, Actor: actor, AnswerIndex: testQuestion.CorrectAnswer}, now)
	require.NotEmpty(t, events)
	require.Equal(t, PhaseDice, r.Phase)
}
