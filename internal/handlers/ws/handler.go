package ws

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/storyloop/storyloop/internal/push"
	"github.com/storyloop/storyloop/internal/services/coordinator"
)

// Inbound actions
const (
	actionJoin       = "join"
	actionLeave      = "leave"
	actionContribute = "contribute"
)

// inboundMessage is one client request frame
type inboundMessage struct {
	Action  string `json:"action"`
	StoryID string `json:"story_id"`
	Text    string `json:"text,omitempty"`
}

// client tracks one websocket connection. The stories set is only touched by
// the connection's own read loop; writes are serialized by writeMu.
type client struct {
	conn    *websocket.Conn
	userID  string
	writeMu sync.Mutex
	stories map[string]struct{}
}

// Config holds the configuration for the websocket handler
type Config struct {
	// Coordinator handles the session protocol. It may be set later with
	// SetCoordinator, since the coordinator itself needs the handler as its
	// publisher.
	Coordinator coordinator.Service

	// Logger is optional; slog.Default is used when nil
	Logger *slog.Logger
}

// Handler upgrades HTTP requests to websockets, dispatches inbound frames to
// the coordinator, and delivers push events back to connections. It
// implements push.Publisher.
type Handler struct {
	coordinator coordinator.Service
	upgrader    websocket.Upgrader
	logger      *slog.Logger

	mu      sync.RWMutex
	clients map[string]*client
}

// New creates a new websocket handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		coordinator: cfg.Coordinator,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger:  logger,
		clients: make(map[string]*client),
	}, nil
}

// SetCoordinator wires the coordinator in after construction. Must be called
// before the handler starts serving connections.
func (h *Handler) SetCoordinator(svc coordinator.Service) {
	h.coordinator = svc
}

// ServeHTTP upgrades the request and runs the connection's read loop.
// Identity resolution is external; the authenticated user ID arrives on the
// X-User-ID header (or user_id query parameter for browser clients).
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.coordinator == nil {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}

	userID := r.Header.Get("X-User-ID")
	if userID == "" {
		userID = r.URL.Query().Get("user_id")
	}
	if userID == "" {
		http.Error(w, "missing user identity", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	connID := uuid.New().String()
	c := &client{
		conn:    conn,
		userID:  userID,
		stories: make(map[string]struct{}),
	}

	h.mu.Lock()
	h.clients[connID] = c
	h.mu.Unlock()

	h.logger.Info("connection opened", "conn_id", connID, "user_id", userID)

	h.readLoop(r.Context(), connID, c)
}

// Publish sends an event to a single connection
func (h *Handler) Publish(ctx context.Context, connID string, event *push.Event) error {
	h.mu.RLock()
	c, ok := h.clients[connID]
	h.mu.RUnlock()

	if !ok {
		return errors.New("connection not found")
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	return c.conn.WriteJSON(event)
}

func (h *Handler) readLoop(ctx context.Context, connID string, c *client) {
	defer h.closeConnection(ctx, connID, c)

	for {
		var msg inboundMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("connection read failed", "conn_id", connID, "error", err)
			}
			return
		}

		h.dispatch(ctx, connID, c, &msg)
	}
}

func (h *Handler) dispatch(ctx context.Context, connID string, c *client, msg *inboundMessage) {
	switch msg.Action {
	case actionJoin:
		_, err := h.coordinator.Join(ctx, &coordinator.JoinInput{
			ConnID:  connID,
			UserID:  c.userID,
			StoryID: msg.StoryID,
		})
		if err != nil {
			h.logAction(connID, msg, err)
			return
		}
		c.stories[msg.StoryID] = struct{}{}

	case actionLeave:
		_, err := h.coordinator.Leave(ctx, &coordinator.LeaveInput{
			ConnID:  connID,
			UserID:  c.userID,
			StoryID: msg.StoryID,
		})
		if err != nil {
			h.logAction(connID, msg, err)
			return
		}
		delete(c.stories, msg.StoryID)

	case actionContribute:
		_, err := h.coordinator.Contribute(ctx, &coordinator.ContributeInput{
			ConnID:  connID,
			UserID:  c.userID,
			StoryID: msg.StoryID,
			Text:    msg.Text,
		})
		if err != nil {
			h.logAction(connID, msg, err)
		}

	default:
		h.logger.Warn("unknown action", "conn_id", connID, "action", msg.Action)
	}
}

// logAction records a failed action. Expected rejections were already handled
// by the coordinator; store failures are surfaced to the caller as retryable.
func (h *Handler) logAction(connID string, msg *inboundMessage, err error) {
	var rejection coordinator.CoordinatorError
	if errors.As(err, &rejection) {
		return
	}

	h.logger.Error("action failed",
		"conn_id", connID,
		"action", msg.Action,
		"story_id", msg.StoryID,
		"error", err)
}

// closeConnection detaches the connection from every session it joined and
// unregisters it, so a dropped socket cannot strand session members
func (h *Handler) closeConnection(ctx context.Context, connID string, c *client) {
	for storyID := range c.stories {
		if _, err := h.coordinator.Leave(ctx, &coordinator.LeaveInput{
			ConnID:  connID,
			UserID:  c.userID,
			StoryID: storyID,
		}); err != nil {
			h.logger.Warn("failed to leave session on disconnect",
				"conn_id", connID,
				"story_id", storyID,
				"error", err)
		}
	}

	h.mu.Lock()
	delete(h.clients, connID)
	h.mu.Unlock()

	c.conn.Close()
	h.logger.Info("connection closed", "conn_id", connID, "user_id", c.userID)
}
