package websocket

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/zonaelectrica/zeia-server/domain/entities"
	"github.com/zonaelectrica/zeia-server/domain/repositories"
	"github.com/zonaelectrica/zeia-server/internal/live"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512 * 1024 // 512KB for audio frames

	// Assistant speech sample rate, PCM16 mono.
	playbackSampleRate = 24000
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// TODO: Implement proper origin checking
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Hub maintains the set of active clients.
type Hub struct {
	// Registered clients.
	clients map[string]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Mutex for thread-safe access to clients map
	mu sync.RWMutex

	connector repositories.LiveConnector

	logger *zap.Logger
}

// NewHub creates a new WebSocket hub
func NewHub(connector repositories.LiveConnector, logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		connector:  connector,
		logger:     logger,
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.clientID] = client
			h.mu.Unlock()
			h.logger.Info("Client registered", zap.String("clientID", client.clientID))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.clientID]; ok {
				delete(h.clients, client.clientID)
				client.closeSend()
			}
			h.mu.Unlock()
			client.stopSession()
			h.logger.Info("Client unregistered", zap.String("clientID", client.clientID))
		}
	}
}

type WriteData struct {
	// MessageType is the type of the websocket message.
	// Expect websocket.TextMessage or websocket.BinaryMessage
	Type    int
	Payload []byte
}

// Client is a middleman between one browser connection and its live
// voice session.
type Client struct {
	hub *Hub

	// The websocket connection.
	conn *websocket.Conn

	// Buffered channel of outbound messages.
	send chan WriteData

	// Client ID for this connection
	clientID string

	// Logger
	logger *zap.Logger

	// Active voice session, at most one per client.
	session *live.Session

	mutex sync.Mutex

	// Guards send against writes racing the unregister close. The
	// session goroutine keeps emitting sink events until the stream
	// winds down, which can outlive the socket.
	sendMu     sync.Mutex
	sendClosed bool
}

// HandleWebSocket handles websocket requests with a pre-authenticated
// client ID.
func HandleWebSocket(hub *Hub, c echo.Context, clientID string, logger *zap.Logger) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Error("WebSocket upgrade failed", zap.Error(err))
		return err
	}

	client := &Client{
		hub:      hub,
		conn:     conn,
		send:     make(chan WriteData, 256),
		clientID: clientID,
		logger:   logger,
	}

	client.hub.register <- client

	// Allow collection of memory referenced by the caller by doing all work in
	// new goroutines.
	go client.writePump()
	go client.readPump()

	return nil
}

// readPump pumps messages from the websocket connection to the session.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		messageType, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Error("WebSocket error", zap.Error(err))
			}
			break
		}

		switch messageType {
		case websocket.TextMessage:
			c.processControlMessage(message)
		case websocket.BinaryMessage:
			c.forwardMicFrame(message)
		default:
			c.logger.Warn("Received unknown message type", zap.Int("type", messageType))
		}
	}
}

// writePump pumps messages from the session to the websocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(message.Type, message.Payload); err != nil {
				c.logger.Error("Failed to write message", zap.Error(err))
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// processControlMessage handles JSON control frames from the browser
func (c *Client) processControlMessage(message []byte) {
	msg, err := ParseInbound(message)
	if err != nil {
		c.logger.Error("Failed to parse message", zap.Error(err))
		c.sendError("bad_message", "No se pudo interpretar el mensaje.")
		return
	}

	switch msg.Type {
	case MessageTypeSessionStart:
		c.handleSessionStart()
	case MessageTypeSessionStop:
		c.handleSessionStop()
	default:
		c.logger.Warn("Unknown message type", zap.String("type", string(msg.Type)))
		c.sendError("unknown_message", "Tipo de mensaje desconocido.")
	}
}

// forwardMicFrame pushes a binary mic frame into the active session.
func (c *Client) forwardMicFrame(data []byte) {
	c.mutex.Lock()
	session := c.session
	c.mutex.Unlock()

	if session == nil {
		c.logger.Warn("Received mic frame but no active session",
			zap.String("clientID", c.clientID))
		return
	}

	session.SendFrame(data)
}

// handleSessionStart opens the live session for this client.
func (c *Client) handleSessionStart() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.session != nil {
		c.sendError("session_active", "Ya hay una sesión de voz activa.")
		return
	}

	session, err := live.Start(context.Background(), c.hub.connector, c, c.logger)
	if err != nil {
		c.logger.Error("Failed to start live session",
			zap.String("clientID", c.clientID),
			zap.Error(err))
		c.sendError("session_failed", "No se pudo conectar con ZEIA. Intenta de nuevo.")
		return
	}
	c.session = session

	c.logger.Info("Voice session started", zap.String("clientID", c.clientID))
	c.sendJSON(SessionStartedMessage{
		BaseMessage: newBase(MessageTypeSessionStarted),
		SampleRate:  playbackSampleRate,
	})
}

// handleSessionStop closes the live session, if any. The session_closed
// frame is emitted from OnClosed once the stream actually ends.
func (c *Client) handleSessionStop() {
	c.mutex.Lock()
	session := c.session
	c.mutex.Unlock()

	if session == nil {
		return
	}
	if err := session.Stop(); err != nil {
		c.logger.Warn("Failed to stop live session",
			zap.String("clientID", c.clientID),
			zap.Error(err))
	}
}

func (c *Client) stopSession() {
	c.mutex.Lock()
	session := c.session
	c.session = nil
	c.mutex.Unlock()

	if session != nil {
		session.Stop()
	}
}

// OnAudio implements live.Sink.
func (c *Client) OnAudio(chunk live.PlaybackChunk) {
	c.sendJSON(AudioChunkMessage{
		BaseMessage: newBase(MessageTypeAudioChunk),
		Data:        base64.StdEncoding.EncodeToString(chunk.Data),
		StartMs:     chunk.StartAt.Milliseconds(),
		DurationMs:  chunk.Duration.Milliseconds(),
	})
}

// OnInterrupted implements live.Sink.
func (c *Client) OnInterrupted() {
	c.sendJSON(newBase(MessageTypeInterrupted))
}

// OnPartial implements live.Sink.
func (c *Client) OnPartial(role entities.MessageRole, text string) {
	c.sendJSON(TranscriptPartialMessage{
		BaseMessage: newBase(MessageTypeTranscriptPartial),
		Role:        role,
		Text:        text,
	})
}

// OnTurnComplete implements live.Sink.
func (c *Client) OnTurnComplete(history []entities.TranscriptTurn) {
	c.sendJSON(TranscriptMessage{
		BaseMessage: newBase(MessageTypeTranscript),
		Turns:       history,
	})
}

// OnClosed implements live.Sink.
func (c *Client) OnClosed(err error) {
	c.mutex.Lock()
	c.session = nil
	c.mutex.Unlock()

	msg := SessionClosedMessage{BaseMessage: newBase(MessageTypeSessionClosed)}
	if err != nil {
		msg.Error = err.Error()
	}
	c.sendJSON(msg)
	c.logger.Info("Voice session closed",
		zap.String("clientID", c.clientID),
		zap.Error(err))
}

func (c *Client) sendError(code, text string) {
	c.sendJSON(ErrorMessage{
		BaseMessage: newBase(MessageTypeError),
		Code:        code,
		Message:     text,
	})
}

func (c *Client) sendJSON(v interface{}) {
	payload, err := json.Marshal(v)
	if err != nil {
		c.logger.Error("Failed to marshal message", zap.Error(err))
		return
	}

	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	if c.sendClosed {
		return
	}

	select {
	case c.send <- WriteData{Type: websocket.TextMessage, Payload: payload}:
	default:
		c.logger.Warn("Send buffer full, dropping message",
			zap.String("clientID", c.clientID))
	}
}

func (c *Client) closeSend() {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	if c.sendClosed {
		return
	}
	c.sendClosed = true
	close(c.send)
}
