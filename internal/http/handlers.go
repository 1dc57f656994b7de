package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/collabview/boardbridge/internal/dialog"
	"github.com/collabview/boardbridge/internal/metadata"
	"github.com/collabview/boardbridge/internal/probe"
	"github.com/collabview/boardbridge/internal/screen"
	"github.com/collabview/boardbridge/internal/shared/types"
	"github.com/collabview/boardbridge/internal/state"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	screens  *screen.Manager
	metadata *metadata.Channel
	store    *state.Store
	dialogs  *dialog.Service
	prober   *probe.Prober
}

// NewHandlers creates a new handler set
func NewHandlers(
	screens *screen.Manager,
	metadataCh *metadata.Channel,
	store *state.Store,
	dialogs *dialog.Service,
	prober *probe.Prober,
) *Handlers {
	return &Handlers{
		screens:  screens,
		metadata: metadataCh,
		store:    store,
		dialogs:  dialogs,
		prober:   prober,
	}
}

// Root handles health check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "boardbridge",
		"version": "1.0.0",
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	status, _ := h.prober.Check(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"status":        "healthy",
		"screens":       h.screens.Stats(),
		"collab_server": status,
	})
}

// MountScreen mounts a whiteboard screen for the given route parameters
func (h *Handlers) MountScreen(c *gin.Context) {
	var req types.MountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scr := h.screens.Mount(req.Params)

	c.JSON(http.StatusCreated, gin.H{
		"screen": scr,
	})
}

// GetScreen returns a mounted screen
func (h *Handlers) GetScreen(c *gin.Context) {
	screenID := c.Param("id")

	scr, ok := h.screens.Get(screenID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "screen not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"screen": scr})
}

// ListScreens lists all mounted screens
func (h *Handlers) ListScreens(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"screens": h.screens.List(),
		"stats":   h.screens.Stats(),
	})
}

// UnmountScreen removes a mounted screen
func (h *Handlers) UnmountScreen(c *gin.Context) {
	screenID := c.Param("id")

	success := h.screens.Unmount(screenID)
	if !success {
		c.JSON(http.StatusNotFound, gin.H{"error": "screen not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"screen_id": screenID,
	})
}

// GetMetadata returns the current record for a metadata topic
func (h *Handlers) GetMetadata(c *gin.Context) {
	topic := c.Param("topic")

	record, ok := h.metadata.Get(topic)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no record for topic"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"topic_key": topic,
		"record":    record,
	})
}

// ListMetadataTopics lists all topics with a current record
func (h *Handlers) ListMetadataTopics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"topics": h.metadata.Topics()})
}

// GetWhiteboardState returns the committed collaboration credentials
func (h *Handlers) GetWhiteboardState(c *gin.Context) {
	details, ok := h.store.CollabDetails()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no collaboration session committed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"collab_details": details})
}

// ListDialogs lists open dialogs
func (h *Handlers) ListDialogs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"dialogs": h.dialogs.Open()})
}

// DismissDialog dismisses an open dialog
func (h *Handlers) DismissDialog(c *gin.Context) {
	dialogID := c.Param("id")

	if !h.dialogs.Dismiss(dialogID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "dialog not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "dialog_id": dialogID})
}
