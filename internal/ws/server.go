package ws

import (
	"net/http"
	"sync"

	"github.com/Chaitanyahoon/focusarenaa-sub001/common/utils"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // In production, this should be more restrictive
	},
}

type Client struct {
	ID       string
	PlayerID string
	Conn     *websocket.Conn
	Server   *Server
	mu       sync.Mutex
	send     chan []byte
}

// Server is the realtime push hub. Clients are keyed by player id; economy
// events fanned in from the queue are pushed to the affected player, and
// global announcements go out on broadcast.
type Server struct {
	clients    map[string]*Client
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
	handler    *MessageHandler
}

func NewServer() *Server {
	server := &Server{
		clients:    make(map[string]*Client),
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}

	server.handler = NewMessageHandler(server)

	return server
}

// Handler exposes the message handler so the hub binary can push queue
// events into connected sockets.
func (s *Server) Handler() *MessageHandler {
	return s.handler
}

func (s *Server) Run() {
	for {
		select {
		case client := <-s.register:
			s.mu.Lock()
			if old, ok := s.clients[client.PlayerID]; ok {
				close(old.send)
			}
			s.clients[client.PlayerID] = client
			s.mu.Unlock()

		case client := <-s.unregister:
			s.mu.Lock()
			if current, ok := s.clients[client.PlayerID]; ok && current == client {
				delete(s.clients, client.PlayerID)
				close(client.send)
			}
			s.mu.Unlock()

		case message := <-s.broadcast:
			s.mu.Lock()
			for playerID, client := range s.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(s.clients, playerID)
				}
			}
			s.mu.Unlock()
		}
	}
}

func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "Token is required", http.StatusUnauthorized)
		return
	}

	claims, err := utils.ValidateJwTTokenWithClaims(token)
	if err != nil {
		utils.Logger.Warn("Failed to validate token", utils.Logger.String("error", err.Error()))
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		utils.Logger.Warn("Failed to upgrade connection", utils.Logger.String("error", err.Error()))
		return
	}

	client := &Client{
		ID:       claims.UserID,
		PlayerID: claims.PlayerID,
		Conn:     conn,
		Server:   s,
		send:     make(chan []byte, 256),
	}

	s.register <- client

	go client.readPump()
	go client.writePump()
}

// SendToPlayer delivers a message to one connected player. Returns false
// when the player is offline.
func (s *Server) SendToPlayer(playerID string, message []byte) bool {
	s.mu.RLock()
	client, ok := s.clients[playerID]
	s.mu.RUnlock()
	if !ok {
		return false
	}

	select {
	case client.send <- message:
		return true
	default:
		return false
	}
}

func (s *Server) Broadcast(message []byte) {
	s.broadcast <- message
}

// OnlineCount reports the number of connected players.
func (s *Server) OnlineCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

func (s *Server) IsOnline(playerID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.clients[playerID]
	return ok
}

func (c *Client) readPump() {
	defer func() {
		c.Server.unregister <- c
		c.Conn.Close()
	}()

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				utils.Logger.Warn("Websocket read failed",
					utils.Logger.String("player_id", c.PlayerID),
					utils.Logger.String("error", err.Error()),
				)
			}
			break
		}

		if err := c.Server.handler.HandleMessage(c, message); err != nil {
			utils.Logger.Warn("Failed to handle message",
				utils.Logger.String("player_id", c.PlayerID),
				utils.Logger.String("error", err.Error()),
			)
		}
	}
}

func (c *Client) writePump() {
	defer func() {
		c.Conn.Close()
	}()

	for message := range c.send {
		c.mu.Lock()
		err := c.Conn.WriteMessage(websocket.TextMessage, message)
		c.mu.Unlock()

		if err != nil {
			return
		}
	}

	c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}
