package controller

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/middleware"
	"github.com/lgbarn/chessrules-go/internal/session"
	"github.com/lgbarn/chessrules-go/internal/ws"
)

// WebSocketController serves the board-update stream of a session.
type WebSocketController struct {
	cfg *config.Config
}

// NewWebSocketController creates a WebSocketController logging through cfg.
func NewWebSocketController(cfg *config.Config) *WebSocketController {
	return &WebSocketController{cfg: cfg}
}

// closeGrace bounds how long the close frame may take to write.
const closeGrace = time.Second

// wsConn serialises writes from the read loop and the update pump.
type wsConn struct {
	*websocket.Conn
	mu sync.Mutex
}

func (c *wsConn) send(t ws.MessageType, payload interface{}) error {
	msg, err := ws.NewMessage(t, payload)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.WriteJSON(msg)
}

// HandleConnection streams board snapshots to the client, one on connect and
// one after every move, and applies the moves the client sends.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	s, ok := c.Locals(middleware.SessionKey).(*session.Session)
	if !ok {
		c.Close()
		return
	}
	conn := &wsConn{Conn: c}

	// Subscribe before the first snapshot so no move can slip in between.
	updates, unsubscribe := s.Subscribe()
	if err := conn.send(ws.MessageTypeBoard, s.Snapshot()); err != nil {
		wsc.cfg.Logf(1, "board %s: write error: %v", s.ID, err)
		unsubscribe()
		return
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for snap := range updates {
			if err := conn.send(ws.MessageTypeBoard, snap); err != nil {
				wsc.cfg.Logf(1, "board %s: write error: %v", s.ID, err)
			}
		}
		// The session is gone or we unsubscribed. Tell the client and unblock
		// the read loop; the handler's return closes the socket.
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "board closed")
		if err := c.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeGrace)); err != nil {
			wsc.cfg.Logf(2, "board %s: close frame: %v", s.ID, err)
		}
		c.SetReadDeadline(time.Now())
	}()

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			wsc.cfg.Logf(2, "board %s: read error: %v", s.ID, err)
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			wsc.reply(conn, s, ws.Error{Error: "parse error: " + err.Error()})
			continue
		}
		if err := wsc.handleMessage(conn, s, msg); err != nil {
			wsc.cfg.Logf(2, "board %s: %v", s.ID, err)
			wsc.reply(conn, s, ws.Error{Error: err.Error()})
		}
	}

	unsubscribe()
	<-done
}

// reply sends an error message to the client.
func (wsc *WebSocketController) reply(conn *wsConn, s *session.Session, e ws.Error) {
	if err := conn.send(ws.MessageTypeError, e); err != nil {
		wsc.cfg.Logf(2, "board %s: write error: %v", s.ID, err)
	}
}

func (wsc *WebSocketController) handleMessage(conn *wsConn, s *session.Session, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move chess.MovePair
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return err
		}
		// The resulting snapshot reaches this client through its subscription.
		if _, err := s.Move(move.From, move.To); err != nil {
			return err
		}
		wsc.cfg.Logf(1, "board %s: %s -> %s", s.ID, move.From, move.To)
		return nil

	case ws.MessageTypeSelect:
		var sq chess.Square
		if err := json.Unmarshal(msg.Payload, &sq); err != nil {
			return err
		}
		moves, err := s.LegalMoves(sq)
		if err != nil {
			return err
		}
		return conn.send(ws.MessageTypeMoves, ws.Moves{From: sq, Moves: moves})

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}
