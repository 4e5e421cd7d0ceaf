package network

// Inbound message types.
const (
	MsgTypeHeartbeat = 1

	MsgTypeCreateRoom  = 101
	MsgTypeJoinRoom    = 102
	MsgTypeStartGame   = 103
	MsgTypeStartTurn   = 104
	MsgTypeAnswer      = 105
	MsgTypeRollDice    = 106
	MsgTypeBuyProperty = 107
	MsgTypeEndTurn     = 108
)

// Outbound message types.
const (
	MsgTypeRoomCreated       = 201
	MsgTypeRoomJoined        = 202
	MsgTypePlayersUpdated    = 203
	MsgTypeGameStarted       = 204
	MsgTypeQuestion          = 205
	MsgTypeTimerTick         = 206
	MsgTypeAnswerResult      = 207
	MsgTypeDiceRolled        = 208
	MsgTypePropertyPurchased = 209
	MsgTypeGameUpdated       = 210
	MsgTypeStatsUpdated      = 211
	MsgTypeError             = 212
)
