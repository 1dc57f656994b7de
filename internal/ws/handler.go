package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/collabview/boardbridge/internal/infrastructure/monitoring"
	"github.com/collabview/boardbridge/internal/metadata"
	"github.com/collabview/boardbridge/internal/screen"
	"github.com/collabview/boardbridge/internal/shared/types"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Origin policy is enforced by the embedding host
	},
}

// Handler manages WebSocket connections from embedded surfaces and
// participant metadata listeners.
type Handler struct {
	screens  *screen.Manager
	metadata *metadata.Channel
	metrics  *monitoring.Metrics
	logger   *zap.Logger
}

// NewHandler creates a new WebSocket handler.
func NewHandler(screens *screen.Manager, metadataCh *metadata.Channel, metrics *monitoring.Metrics, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		screens:  screens,
		metadata: metadataCh,
		metrics:  metrics,
		logger:   logger,
	}
}

// HandleSurface handles the embedded-surface connection for one screen.
// The screen must already be mounted; the surface identifies it by path.
func (h *Handler) HandleSurface(c *gin.Context) {
	screenID := c.Param("id")
	scr, ok := h.screens.Get(screenID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "screen not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	if h.metrics != nil {
		h.metrics.RecordWSConnect()
		defer h.metrics.RecordWSDisconnect()
	}

	h.logger.Debug("surface connected", zap.String("screen_id", screenID))

	for {
		var event types.SurfaceEvent
		if err := conn.ReadJSON(&event); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Debug("surface read error", zap.Error(err))
			}
			break
		}

		if h.metrics != nil {
			h.metrics.RecordSurfaceEvent(event.Type)
		}

		switch event.Type {
		case types.EventNavigate:
			h.handleNavigate(conn, scr, event)
		case types.EventMessage:
			// Fire-and-forget; malformed payloads are the bridge's
			// problem and die silently there.
			scr.Bridge().OnMessage([]byte(event.Payload))
		case types.EventLoadError:
			scr.Reporter().OnLoadError()
			if h.metrics != nil {
				h.metrics.RecordLoadError()
			}
		case types.EventPing:
			h.send(conn, map[string]interface{}{"type": "pong"})
		default:
			h.logger.Debug("unknown surface event type", zap.String("type", event.Type))
		}
	}
}

// handleNavigate answers a navigation intent. The decision is computed
// synchronously from the screen's live params; the surface blocks the
// navigation on the reply.
func (h *Handler) handleNavigate(conn *websocket.Conn, scr *screen.Screen, event types.SurfaceEvent) {
	allowed := scr.ShouldAllow(event.URL)

	if h.metrics != nil {
		h.metrics.RecordNavigation(allowed)
	}
	if !allowed {
		h.logger.Debug("navigation blocked",
			zap.String("screen_id", scr.ID),
			zap.String("url", event.URL),
		)
	}

	h.send(conn, types.NavigationDecision{
		Type:    "navigation_decision",
		URL:     event.URL,
		Allowed: allowed,
	})
}

// HandleMetadataFeed streams conference metadata updates to a participant
// listener until it disconnects.
func (h *Handler) HandleMetadataFeed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	subscriberID := uuid.New().String()
	updates := h.metadata.Subscribe(subscriberID)
	defer h.metadata.Unsubscribe(subscriberID)

	// Replay current records so late joiners see the active session.
	for _, topic := range h.metadata.Topics() {
		if record, ok := h.metadata.Get(topic); ok {
			if err := h.send(conn, metadata.Update{TopicKey: topic, Record: record}); err != nil {
				return
			}
		}
	}

	// Drain reads so close frames are processed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case update, ok := <-updates:
			if !ok {
				return
			}
			if err := h.send(conn, update); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func (h *Handler) send(conn *websocket.Conn, data interface{}) error {
	return conn.WriteJSON(data)
}
