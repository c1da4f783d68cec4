package websocket

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"bloom/internal/domain"
	"bloom/internal/service"
)

// SignalingMessage represents a WebRTC signaling message exchanged
// between the two participants of a telehealth visit
type SignalingMessage struct {
	Type          string      `json:"type"`
	AppointmentID string      `json:"appointment_id"`
	From          string      `json:"from"`
	To            string      `json:"to,omitempty"`
	Data          interface{} `json:"data,omitempty"`
	Timestamp     string      `json:"timestamp"`
}

// Client represents a connected WebSocket participant
type Client struct {
	AppointmentID string
	Role          string // patient or provider
	Conn          *websocket.Conn
	Send          chan []byte
	Hub           *TelehealthHub
}

// TelehealthHub maintains the set of active participants grouped by
// appointment and relays signaling messages between them
type TelehealthHub struct {
	// Registered participants by appointment ID and role
	rooms map[string]map[string]*Client

	// Inbound messages from the participants
	broadcast chan []byte

	// Register requests from the participants
	register chan *Client

	// Unregister requests from participants
	unregister chan *Client

	// Active visit sessions by appointment ID
	sessions map[string]*VisitSession

	logger *zap.Logger

	services *service.Services

	mutex sync.RWMutex
}

// VisitSession represents an active telehealth visit
type VisitSession struct {
	AppointmentID string     `json:"appointment_id"`
	Status        string     `json:"status"` // waiting, active, ended
	CreatedAt     time.Time  `json:"created_at"`
	EndedAt       *time.Time `json:"ended_at,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow connections without Origin header (for testing)
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}

		allowedOrigins := []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"https://localhost:3000",
			"https://127.0.0.1:3000",
		}

		for _, allowed := range allowedOrigins {
			if origin == allowed {
				return true
			}
		}

		// For now, allow all origins during development
		return true
	},
	ReadBufferSize:  65536,
	WriteBufferSize: 65536,
}

// NewTelehealthHub creates a new telehealth signaling hub
func NewTelehealthHub(logger *zap.Logger, services *service.Services) *TelehealthHub {
	return &TelehealthHub{
		rooms:      make(map[string]map[string]*Client),
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		sessions:   make(map[string]*VisitSession),
		logger:     logger,
		services:   services,
	}
}

// Run starts the telehealth hub
func (h *TelehealthHub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			room, ok := h.rooms[client.AppointmentID]
			if !ok {
				room = make(map[string]*Client)
				h.rooms[client.AppointmentID] = room
			}
			room[client.Role] = client
			if _, ok := h.sessions[client.AppointmentID]; !ok {
				h.sessions[client.AppointmentID] = &VisitSession{
					AppointmentID: client.AppointmentID,
					Status:        "waiting",
					CreatedAt:     time.Now(),
				}
			}
			h.mutex.Unlock()
			h.logger.Info("Participant connected",
				zap.String("appointment_id", client.AppointmentID),
				zap.String("role", client.Role))

		case client := <-h.unregister:
			h.mutex.Lock()
			if room, ok := h.rooms[client.AppointmentID]; ok {
				if current, ok := room[client.Role]; ok && current == client {
					delete(room, client.Role)
					close(client.Send)
				}
				if len(room) == 0 {
					delete(h.rooms, client.AppointmentID)
					if session, ok := h.sessions[client.AppointmentID]; ok && session.Status != "ended" {
						session.Status = "ended"
						now := time.Now()
						session.EndedAt = &now
					}
				}
			}
			h.mutex.Unlock()
			h.logger.Info("Participant disconnected",
				zap.String("appointment_id", client.AppointmentID),
				zap.String("role", client.Role))

		case message := <-h.broadcast:
			var msg SignalingMessage
			if err := json.Unmarshal(message, &msg); err != nil {
				h.logger.Error("Failed to unmarshal message", zap.Error(err))
				continue
			}

			h.handleSignalingMessage(&msg)
		}
	}
}

// handleSignalingMessage processes incoming signaling messages
func (h *TelehealthHub) handleSignalingMessage(msg *SignalingMessage) {
	switch msg.Type {
	case "call-offer":
		h.handleCallOffer(msg)
	case "call-answer":
		h.handleCallAnswer(msg)
	case "ice-candidate":
		h.relayToPeer(msg)
	case "call-end":
		h.handleCallEnd(msg)
	case "ping":
		h.handlePing(msg)
	default:
		h.logger.Warn("Unknown message type", zap.String("type", msg.Type))
	}
}

// handleCallOffer forwards the offer to the other participant and marks
// the visit as waiting for an answer
func (h *TelehealthHub) handleCallOffer(msg *SignalingMessage) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if session, exists := h.sessions[msg.AppointmentID]; exists {
		session.Status = "waiting"
	}

	peer := h.peerOf(msg)
	if peer == nil {
		h.logger.Warn("Peer not connected for call offer",
			zap.String("appointment_id", msg.AppointmentID),
			zap.String("from", msg.From))

		errorMsg := &SignalingMessage{
			Type:          "call-error",
			AppointmentID: msg.AppointmentID,
			To:            msg.From,
			Data:          map[string]string{"error": "Participant not available"},
			Timestamp:     time.Now().Format(time.RFC3339),
		}
		if room, ok := h.rooms[msg.AppointmentID]; ok {
			if sender, ok := room[msg.From]; ok {
				h.sendMessageToClient(sender, errorMsg)
			}
		}
		return
	}

	h.sendMessageToClient(peer, msg)
	h.logger.Info("Call offer forwarded",
		zap.String("appointment_id", msg.AppointmentID),
		zap.String("from", msg.From))
}

// handleCallAnswer marks the visit active and forwards the answer
func (h *TelehealthHub) handleCallAnswer(msg *SignalingMessage) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if session, exists := h.sessions[msg.AppointmentID]; exists {
		session.Status = "active"
	}

	if peer := h.peerOf(msg); peer != nil {
		h.sendMessageToClient(peer, msg)
		h.logger.Info("Call answer forwarded",
			zap.String("appointment_id", msg.AppointmentID),
			zap.String("from", msg.From))
	}
}

// relayToPeer forwards a message to the other participant of the visit
func (h *TelehealthHub) relayToPeer(msg *SignalingMessage) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	if peer := h.peerOf(msg); peer != nil {
		h.sendMessageToClient(peer, msg)
	}
}

// handleCallEnd closes the visit session and notifies the other peer
func (h *TelehealthHub) handleCallEnd(msg *SignalingMessage) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if session, exists := h.sessions[msg.AppointmentID]; exists {
		session.Status = "ended"
		now := time.Now()
		session.EndedAt = &now
	}

	if peer := h.peerOf(msg); peer != nil {
		h.sendMessageToClient(peer, msg)
	}

	h.logger.Info("Visit ended", zap.String("appointment_id", msg.AppointmentID))
}

// handlePing answers keepalive pings from a participant
func (h *TelehealthHub) handlePing(msg *SignalingMessage) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	pongMsg := &SignalingMessage{
		Type:          "pong",
		AppointmentID: msg.AppointmentID,
		To:            msg.From,
		Timestamp:     time.Now().Format(time.RFC3339),
	}

	if room, ok := h.rooms[msg.AppointmentID]; ok {
		if client, ok := room[msg.From]; ok {
			h.sendMessageToClient(client, pongMsg)
		}
	}
}

// peerOf returns the other participant of the sender's visit
// NOTE: callers must hold the mutex
func (h *TelehealthHub) peerOf(msg *SignalingMessage) *Client {
	room, ok := h.rooms[msg.AppointmentID]
	if !ok {
		return nil
	}
	for role, client := range room {
		if role != msg.From {
			return client
		}
	}
	return nil
}

// sendMessageToClient sends a message to a specific participant
// NOTE: callers must hold the mutex
func (h *TelehealthHub) sendMessageToClient(client *Client, msg *SignalingMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("Failed to marshal message", zap.Error(err))
		return
	}

	select {
	case client.Send <- data:
	default:
		h.logger.Warn("Failed to send message - client channel full or closed",
			zap.String("appointment_id", client.AppointmentID),
			zap.String("role", client.Role),
			zap.String("message_type", msg.Type))
		// Let the cleanup happen in the main hub loop when the
		// connection closes naturally
	}
}

// HandleConnection upgrades the request to a WebSocket and joins the
// participant to the visit room of their appointment
func (h *TelehealthHub) HandleConnection(c *gin.Context) {
	appointmentID := c.Query("appointment_id")
	role := c.Query("role")

	if appointmentID == "" || role == "" {
		h.logger.Warn("Missing appointment_id or role in WebSocket request",
			zap.String("appointment_id", appointmentID),
			zap.String("role", role))
		c.JSON(http.StatusBadRequest, gin.H{"error": "appointment_id and role required"})
		return
	}

	if role != "patient" && role != "provider" {
		h.logger.Warn("Invalid role", zap.String("role", role))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
		return
	}

	appointment, err := h.services.Appointment.GetByID(c.Request.Context(), appointmentID)
	if err != nil {
		h.logger.Warn("Appointment not found for WebSocket request",
			zap.String("appointment_id", appointmentID))
		c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
		return
	}

	if appointment.VisitType != domain.VisitTypeTelehealth {
		c.JSON(http.StatusBadRequest, gin.H{"error": "appointment is not a telehealth visit"})
		return
	}

	if appointment.Status == domain.AppointmentStatusCancelled {
		c.JSON(http.StatusConflict, gin.H{"error": "appointment is cancelled"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade connection", zap.Error(err))
		return
	}

	client := &Client{
		AppointmentID: appointmentID,
		Role:          role,
		Conn:          conn,
		Send:          make(chan []byte, 256),
		Hub:           h,
	}

	h.register <- client

	go client.writePump()
	go client.readPump()
}

// readPump pumps messages from the websocket connection to the hub
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()

	// Allow large SDP payloads and batches of ICE candidates (up to 10MB)
	c.Conn.SetReadLimit(10 * 1024 * 1024)
	c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.logger.Error("WebSocket error", zap.Error(err))
			}
			break
		}

		var msg SignalingMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			c.Hub.logger.Error("Failed to unmarshal message", zap.Error(err))
			continue
		}

		// Stamp sender info, the client cannot speak for anyone else
		msg.From = c.Role
		msg.AppointmentID = c.AppointmentID
		msg.Timestamp = time.Now().Format(time.RFC3339)

		correctedMessage, err := json.Marshal(msg)
		if err != nil {
			c.Hub.logger.Error("Failed to marshal corrected message", zap.Error(err))
			continue
		}

		c.Hub.broadcast <- correctedMessage
	}
}

// writePump pumps messages from the hub to the websocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			// One message per frame to avoid huge concatenated frames
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				c.Hub.logger.Error("Failed to write message to WebSocket",
					zap.String("appointment_id", c.AppointmentID),
					zap.String("role", c.Role),
					zap.Error(err))
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// GetActiveSessions returns the visit sessions that are not yet ended
func (h *TelehealthHub) GetActiveSessions() map[string]*VisitSession {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	sessions := make(map[string]*VisitSession)
	for id, session := range h.sessions {
		if session.Status == "active" || session.Status == "waiting" {
			sessions[id] = session
		}
	}
	return sessions
}

// IsParticipantConnected reports whether the given role has joined the visit
func (h *TelehealthHub) IsParticipantConnected(appointmentID, role string) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	room, ok := h.rooms[appointmentID]
	if !ok {
		return false
	}
	_, ok = room[role]
	return ok
}
