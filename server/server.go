package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/rpc"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/quizopoly/gameserver/broadcast"
	"github.com/quizopoly/gameserver/game"
	"github.com/quizopoly/gameserver/logger"
	"github.com/quizopoly/gameserver/monitor"
	"github.com/quizopoly/gameserver/network"
	"github.com/quizopoly/gameserver/room"
	gameserver_rpc "github.com/quizopoly/gameserver/rpc"
	"github.com/quizopoly/gameserver/session"
	"github.com/quizopoly/gameserver/stats"
)

const Version = "0.1.0"

type GameServer struct {
	addr           string
	upgrader       websocket.Upgrader
	roomManager    *room.Manager
	sessionManager *session.Manager
	tracker        *stats.Tracker
	broadcaster    broadcast.Broadcaster
	rpcServer      *gameserver_rpc.Server
	monitor        *monitor.Monitor
	shutdownChan   chan struct{}
}

func NewGameServer(addr, rpcAddr string, roomManager *room.Manager, tracker *stats.Tracker, mon *monitor.Monitor) *GameServer {
	s := &GameServer{
		addr:           addr,
		roomManager:    roomManager,
		sessionManager: session.NewManager(),
		tracker:        tracker,
		monitor:        mon,
		shutdownChan:   make(chan struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}

	s.broadcaster = broadcast.NewRoomBroadcaster(s.roomManager, s.sessionManager)
	s.roomManager.SetBroadcaster(s.broadcaster)
	if mon != nil {
		s.roomManager.SetMetrics(mon)
	}

	rpcServer, err := gameserver_rpc.NewServer(rpcAddr)
	if err != nil {
		logger.Log.Fatalf("Failed to create RPC server: %v", err)
	}
	s.rpcServer = rpcServer

	adminService := gameserver_rpc.NewAdminService(tracker, roomManager)
	rpc.Register(adminService)

	return s
}

func (s *GameServer) Start() error {
	go s.rpcServer.Start()

	router := httprouter.New()
	router.GET("/ws", s.handleWebSocket)
	router.GET("/qr/:code", s.handleJoinQR)
	router.GET("/healthz", s.handleHealth)
	router.GET("/version", s.handleVersion)

	logger.Log.Infof("Game server listening on %s", s.addr)
	return http.ListenAndServe(s.addr, router)
}

func (s *GameServer) Shutdown() {
	close(s.shutdownChan)
	s.rpcServer.Stop()
}

func (s *GameServer) handleHealth(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok\n"))
}

func (s *GameServer) handleVersion(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("quizopoly v" + Version + "\n"))
}

// handleJoinQR serves a QR code encoding the join link for a room, so a
// host can put the code on screen for other players to scan.
func (s *GameServer) handleJoinQR(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	code := p.ByName("code")
	if _, ok := s.roomManager.GetRoom(code); !ok {
		http.NotFound(w, r)
		return
	}

	joinURL := fmt.Sprintf("http://%s/?room=%s", r.Host, code)
	png, err := qrcode.Encode(joinURL, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "failed to render QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (s *GameServer) handleWebSocket(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Infof("Failed to upgrade connection: %v", err)
		return
	}
	s.handleConnection(conn)
}

func (s *GameServer) handleConnection(conn *websocket.Conn) {
	wsConn := network.NewWSConnection(conn)
	sess := session.NewSession(uuid.New().String(), wsConn)
	s.sessionManager.Add(sess)
	if s.monitor != nil {
		s.monitor.IncOnlinePlayers()
	}

	logger.Log.Infof("New connection from %s, session ID: %s", wsConn.RemoteAddr(), sess.GetID())

	defer func() {
		logger.Log.Infof("Connection closed from %s, session ID: %s", wsConn.RemoteAddr(), sess.GetID())
		s.roomManager.RemoveConnection(sess)
		s.sessionManager.Remove(sess.GetID())
		if s.monitor != nil {
			s.monitor.DecOnlinePlayers()
		}
		wsConn.Close()
	}()

	for {
		select {
		case <-s.shutdownChan:
			return
		default:
			packet, err := wsConn.ReadPacket()
			if err != nil {
				return
			}
			s.handlePacket(sess, packet)
		}
	}
}

type createRoomRequest struct {
	PlayerName    string `json:"playerName"`
	SelectedPiece string `json:"selectedPiece"`
}

type joinRoomRequest struct {
	RoomCode      string `json:"roomCode"`
	PlayerName    string `json:"playerName"`
	SelectedPiece string `json:"selectedPiece"`
}

type roomRequest struct {
	RoomCode string `json:"roomCode"`
}

type answerRequest struct {
	RoomCode    string `json:"roomCode"`
	AnswerIndex int    `json:"answerIndex"`
}

type buyPropertyRequest struct {
	RoomCode      string `json:"roomCode"`
	PropertyIndex int    `json:"propertyIndex"`
}

func (s *GameServer) handlePacket(sess *session.Session, packet *network.Packet) {
	switch packet.MsgID {
	case network.MsgTypeHeartbeat:
		sess.LastActive = time.Now()
	case network.MsgTypeCreateRoom:
		s.handleCreateRoom(sess, packet)
	case network.MsgTypeJoinRoom:
		s.handleJoinRoom(sess, packet)
	case network.MsgTypeStartGame:
		s.countAndDispatch(sess, packet, "startGame", game.Action{Type: game.ActionStartGame})
	case network.MsgTypeStartTurn:
		s.countAndDispatch(sess, packet, "startTurn", game.Action{Type: game.ActionStartTurn})
	case network.MsgTypeAnswer:
		s.handleAnswer(sess, packet)
	case network.MsgTypeRollDice:
		s.countAndDispatch(sess, packet, "rollDice", game.Action{Type: game.ActionRollDice})
	case network.MsgTypeBuyProperty:
		s.handleBuyProperty(sess, packet)
	case network.MsgTypeEndTurn:
		s.countAndDispatch(sess, packet, "endTurn", game.Action{Type: game.ActionEndTurn})
	default:
		logger.Log.Infof("Unknown message type: %d", packet.MsgID)
	}
}

func (s *GameServer) handleCreateRoom(sess *session.Session, packet *network.Packet) {
	var req createRoomRequest
	if err := json.Unmarshal(packet.Data, &req); err != nil || req.PlayerName == "" {
		s.sendError(sess, "player name is required")
		return
	}
	if s.monitor != nil {
		s.monitor.IncAction("createRoom")
	}

	if _, err := s.roomManager.CreateRoom(sess, req.PlayerName, req.SelectedPiece); err != nil {
		s.sendError(sess, err.Error())
	}
}

func (s *GameServer) handleJoinRoom(sess *session.Session, packet *network.Packet) {
	var req joinRoomRequest
	if err := json.Unmarshal(packet.Data, &req); err != nil || req.PlayerName == "" || req.RoomCode == "" {
		s.sendError(sess, "room code and player name are required")
		return
	}
	if s.monitor != nil {
		s.monitor.IncAction("joinRoom")
	}

	if err := s.roomManager.JoinRoom(req.RoomCode, sess, req.PlayerName, req.SelectedPiece); err != nil {
		s.sendError(sess, err.Error())
	}
}

func (s *GameServer) handleAnswer(sess *session.Session, packet *network.Packet) {
	var req answerRequest
	if err := json.Unmarshal(packet.Data, &req); err != nil {
		return
	}
	s.dispatch(sess, req.RoomCode, "answerQuestion", game.Action{
		Type:        game.ActionAnswerQuestion,
		AnswerIndex: req.AnswerIndex,
	})
}

func (s *GameServer) handleBuyProperty(sess *session.Session, packet *network.Packet) {
	var req buyPropertyRequest
	if err := json.Unmarshal(packet.Data, &req); err != nil {
		return
	}
	s.dispatch(sess, req.RoomCode, "buyProperty", game.Action{
		Type:          game.ActionBuyProperty,
		PropertyIndex: req.PropertyIndex,
	})
}

func (s *GameServer) countAndDispatch(sess *session.Session, packet *network.Packet, name string, a game.Action) {
	var req roomRequest
	if err := json.Unmarshal(packet.Data, &req); err != nil {
		return
	}
	s.dispatch(sess, req.RoomCode, name, a)
}

func (s *GameServer) dispatch(sess *session.Session, roomCode, name string, a game.Action) {
	if s.monitor != nil {
		s.monitor.IncAction(name)
	}

	a.Actor = sess.GetID()
	if err := s.roomManager.Dispatch(roomCode, a); err != nil {
		s.sendError(sess, "room not found")
	}
}

func (s *GameServer) sendError(sess *session.Session, message string) {
	data, _ := json.Marshal(game.ErrorPayload{Message: message})
	if err := sess.Send(network.MsgTypeError, data); err != nil {
		logger.Log.Warnf("Failed to send error to session %s: %v", sess.GetID(), err)
	}
}
