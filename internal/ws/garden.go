package ws

import (
	"context"
	"encoding/json"
	"time"

	"idle_garden/internal/logger"
	"idle_garden/internal/service"

	"github.com/gorilla/websocket"
)

const (
	writeWait = 10 * time.Second
	pongWait  = 60 * time.Second
)

// client → server
type Request struct {
	Type string `json:"type"` // "state" | "ping"
}

// server → client
type StateMessage struct {
	Type  string             `json:"type"`
	State *service.GameState `json:"state"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Session serves a single garden feed connection. The client asks for
// state frames and the server answers with a freshly computed snapshot,
// nothing is pushed unrequested.
type Session struct {
	userID int64
	conn   *websocket.Conn
	users  *service.UserService
}

func NewSession(userID int64, conn *websocket.Conn, users *service.UserService) *Session {
	return &Session{
		userID: userID,
		conn:   conn,
		users:  users,
	}
}

func (s *Session) Run() {
	defer s.conn.Close()

	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug("garden feed read error", "user_id", s.userID, "error", err)
			}
			return
		}
		s.conn.SetReadDeadline(time.Now().Add(pongWait))

		var req Request
		if err := json.Unmarshal(data, &req); err != nil {
			s.writeJSON(ErrorMessage{Type: "error", Message: "invalid message"})
			continue
		}

		switch req.Type {
		case "state":
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			state, err := s.users.State(ctx, s.userID)
			cancel()
			if err != nil {
				logger.Error("garden feed state error", "user_id", s.userID, "error", err)
				s.writeJSON(ErrorMessage{Type: "error", Message: "failed to load state"})
				continue
			}
			s.writeJSON(StateMessage{Type: "state", State: state})
		case "ping":
			s.writeJSON(map[string]string{"type": "pong"})
		default:
			s.writeJSON(ErrorMessage{Type: "error", Message: "unknown message type"})
		}
	}
}

func (s *Session) writeJSON(v any) {
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := s.conn.WriteJSON(v); err != nil {
		logger.Debug("garden feed write error", "user_id", s.userID, "error", err)
	}
}
