package ws

import (
	"encoding/json"

	"github.com/Chaitanyahoon/focusarenaa-sub001/common/utils"
	"github.com/Chaitanyahoon/focusarenaa-sub001/models"
)

// MessageType represents the type of WebSocket message
type MessageType string

const (
	MessageTypePing     MessageType = "ping"
	MessageTypePong     MessageType = "pong"
	MessageTypePresence MessageType = "presence"
	MessageTypeEvent    MessageType = "event"
	MessageTypeError    MessageType = "error"
)

// Message is the envelope both directions use on the socket.
type Message struct {
	Type     MessageType `json:"type"`
	PlayerID string      `json:"playerId,omitempty"`
	Data     interface{} `json:"data,omitempty"`
}

// MessageHandler processes inbound client messages. The hub is push-first;
// clients only send keepalives and presence queries.
type MessageHandler struct {
	server *Server
}

func NewMessageHandler(server *Server) *MessageHandler {
	return &MessageHandler{server: server}
}

func (h *MessageHandler) HandleMessage(client *Client, message []byte) error {
	var msg Message
	if err := json.Unmarshal(message, &msg); err != nil {
		return err
	}

	switch msg.Type {
	case MessageTypePing:
		return h.send(client, Message{Type: MessageTypePong})
	case MessageTypePresence:
		return h.send(client, Message{
			Type: MessageTypePresence,
			Data: map[string]int{"online": h.server.OnlineCount()},
		})
	default:
		utils.Logger.Warn("Unknown message type", utils.Logger.String("type", string(msg.Type)))
		return h.sendError(client, "unknown message type")
	}
}

// PushEvent routes one economy event to its player; level-ups are also
// announced to everyone online.
func (h *MessageHandler) PushEvent(event *models.EconomyEvent) {
	msg := Message{
		Type:     MessageTypeEvent,
		PlayerID: event.PlayerID,
		Data:     event,
	}

	msgBytes, err := json.Marshal(msg)
	if err != nil {
		utils.Logger.Error("Failed to marshal event", utils.Logger.String("error", err.Error()))
		return
	}

	if event.Type == models.EventLevelUp {
		h.server.Broadcast(msgBytes)
		return
	}

	h.server.SendToPlayer(event.PlayerID, msgBytes)
}

func (h *MessageHandler) send(client *Client, msg Message) error {
	msgBytes, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	client.send <- msgBytes
	return nil
}

func (h *MessageHandler) sendError(client *Client, errorMsg string) error {
	return h.send(client, Message{
		Type: MessageTypeError,
		Data: map[string]string{"error": errorMsg},
	})
}
