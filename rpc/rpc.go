package rpc

import (
	"net"
	"net/rpc"

	"github.com/quizopoly/gameserver/logger"
	"github.com/quizopoly/gameserver/room"
	"github.com/quizopoly/gameserver/stats"
)

// Server manages the RPC listener.
type Server struct {
	listener net.Listener
	address  string
}

// NewServer creates a new RPC server. Services are registered by the
// caller before Start.
func NewServer(addr string) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	return &Server{
		listener: listener,
		address:  addr,
	}, nil
}

// Start begins listening for RPC requests.
func (s *Server) Start() {
	logger.Log.Infof("RPC server listening on %s", s.address)
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if _, ok := err.(*net.OpError); ok {
				logger.Log.Info("RPC server listener closed.")
				return
			}
			logger.Log.Errorf("RPC server accept error: %v", err)
			continue
		}
		go rpc.ServeConn(conn)
	}
}

// Stop closes the RPC listener.
func (s *Server) Stop() {
	if s.listener != nil {
		logger.Log.Info("Stopping RPC server.")
		s.listener.Close()
	}
}

// AdminService exposes operational queries over net/rpc: per-player trivia
// stats and a live room listing.
type AdminService struct {
	tracker *stats.Tracker
	rooms   *room.Manager
}

func NewAdminService(tracker *stats.Tracker, rooms *room.Manager) *AdminService {
	return &AdminService{tracker: tracker, rooms: rooms}
}

type GetPlayerStatsArgs struct {
	Name string
}

type GetPlayerStatsReply struct {
	Found bool
	Stats stats.Record
}

func (a *AdminService) GetPlayerStats(args *GetPlayerStatsArgs, reply *GetPlayerStatsReply) error {
	rec, ok := a.tracker.Get(args.Name)
	reply.Found = ok
	reply.Stats = rec
	return nil
}

type ListRoomsArgs struct{}

type ListRoomsReply struct {
	Rooms []room.Info
}

func (a *AdminService) ListRooms(_ *ListRoomsArgs, reply *ListRoomsReply) error {
	reply.Rooms = a.rooms.List()
	return nil
}
