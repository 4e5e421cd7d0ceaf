package main

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/quizopoly/gameserver/logger"
)

// Message IDs mirrored from the server protocol.
const (
	msgCreateRoom  = 101
	msgJoinRoom    = 102
	msgStartGame   = 103
	msgStartTurn   = 104
	msgAnswer      = 105
	msgRollDice    = 106
	msgBuyProperty = 107
	msgEndTurn     = 108
)

var eventNames = map[uint16]string{
	201: "roomCreated",
	202: "roomJoined",
	203: "playersUpdated",
	204: "gameStarted",
	205: "question",
	206: "timerTick",
	207: "answerResult",
	208: "diceRolled",
	209: "propertyPurchased",
	210: "gameUpdated",
	211: "statsUpdated",
	212: "error",
}

// send frames and sends one message to the server.
func send(c *websocket.Conn, msgID uint16, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	packet := make([]byte, 4+len(data))
	binary.BigEndian.PutUint16(packet[0:2], msgID)
	binary.BigEndian.PutUint16(packet[2:4], uint16(len(data)))
	copy(packet[4:], data)

	return c.WriteMessage(websocket.BinaryMessage, packet)
}

func main() {
	logger.InitDevelopment()

	name := "Player"
	if len(os.Args) > 1 {
		name = os.Args[1]
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	u := url.URL{Scheme: "ws", Host: "localhost:8080", Path: "/ws"}
	logger.Log.Infof("Connecting to %s as %s", u.String(), name)

	c, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		logger.Log.Fatalf("Dial failed: %v", err)
	}
	defer c.Close()

	done := make(chan struct{})
	roomCode := make(chan string, 1)

	go func() {
		defer close(done)
		for {
			_, message, err := c.ReadMessage()
			if err != nil {
				logger.Log.Infof("Read error: %v", err)
				return
			}
			if len(message) < 4 {
				continue
			}
			msgID := binary.BigEndian.Uint16(message[0:2])
			data := message[4:]

			eventName := eventNames[msgID]
			if eventName == "" {
				eventName = strconv.Itoa(int(msgID))
			}
			logger.Log.Infof("<- %s: %s", eventName, string(data))

			if eventName == "roomCreated" || eventName == "roomJoined" {
				var payload struct {
					RoomCode string `json:"roomCode"`
				}
				if json.Unmarshal(data, &payload) == nil {
					select {
					case roomCode <- payload.RoomCode:
					default:
					}
				}
			}
		}
	}()

	code := ""
	if len(os.Args) > 2 {
		code = strings.ToUpper(os.Args[2])
		logger.Log.Infof("Joining room %s...", code)
		send(c, msgJoinRoom, map[string]string{"roomCode": code, "playerName": name, "selectedPiece": "dog"})
	} else {
		logger.Log.Info("Creating room...")
		send(c, msgCreateRoom, map[string]string{"playerName": name, "selectedPiece": "car"})
	}

	select {
	case code = <-roomCode:
		logger.Log.Infof("In room %s", code)
	case <-time.After(5 * time.Second):
		logger.Log.Fatal("No room confirmation from server")
	}

	logger.Log.Info("Commands: start | turn | answer <n> | roll | buy <index> | end | quit")

	reader := bufio.NewReader(os.Stdin)
	for {
		select {
		case <-done:
			return
		case <-interrupt:
			logger.Log.Info("Interrupt received, closing connection.")
			c.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			select {
			case <-done:
			case <-time.After(time.Second):
			}
			return
		default:
			text, _ := reader.ReadString('\n')
			fields := strings.Fields(text)
			if len(fields) == 0 {
				continue
			}

			var err error
			switch fields[0] {
			case "start":
				err = send(c, msgStartGame, map[string]string{"roomCode": code})
			case "turn":
				err = send(c, msgStartTurn, map[string]string{"roomCode": code})
			case "answer":
				if len(fields) < 2 {
					logger.Log.Info("usage: answer <option index>")
					continue
				}
				n, _ := strconv.Atoi(fields[1])
				err = send(c, msgAnswer, map[string]any{"roomCode": code, "answerIndex": n})
			case "roll":
				err = send(c, msgRollDice, map[string]string{"roomCode": code})
			case "buy":
				if len(fields) < 2 {
					logger.Log.Info("usage: buy <property index>")
					continue
				}
				n, _ := strconv.Atoi(fields[1])
				err = send(c, msgBuyProperty, map[string]any{"roomCode": code, "propertyIndex": n})
			case "end":
				err = send(c, msgEndTurn, map[string]string{"roomCode": code})
			case "quit":
				return
			default:
				logger.Log.Infof("Unknown command: %s", fields[0])
				continue
			}
			if err != nil {
				logger.Log.Infof("Write error: %v", err)
				return
			}
		}
	}
}
