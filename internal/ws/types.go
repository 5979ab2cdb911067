// Package ws defines the websocket message envelope shared by the server and
// its clients.
package ws

import (
	"encoding/json"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	MessageTypeMove   MessageType = "move"   // client -> server, payload chess.MovePair
	MessageTypeSelect MessageType = "select" // client -> server, payload chess.Square
	MessageTypeBoard  MessageType = "board"  // server -> client, payload session.Snapshot
	MessageTypeMoves  MessageType = "moves"  // server -> client, payload Moves
	MessageTypeError  MessageType = "error"  // server -> client, payload Error
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Moves lists the legal destinations of the piece on From.
type Moves struct {
	From  chess.Square   `json:"from"`
	Moves []chess.Square `json:"moves"`
}

// Error carries a failure back to the client.
type Error struct {
	Error string `json:"error"`
}

// NewMessage marshals payload into a message of the given type.
func NewMessage(t MessageType, payload interface{}) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: raw}, nil
}
