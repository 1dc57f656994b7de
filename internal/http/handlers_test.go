package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collabview/boardbridge/internal/dialog"
	"github.com/collabview/boardbridge/internal/metadata"
	"github.com/collabview/boardbridge/internal/probe"
	"github.com/collabview/boardbridge/internal/screen"
	"github.com/collabview/boardbridge/internal/shared/types"
	"github.com/collabview/boardbridge/internal/state"
)

func newTestRouter(t *testing.T) (*gin.Engine, *screen.Manager, *state.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := state.NewStore()
	metadataCh := metadata.NewChannel(nil)
	dialogs := dialog.NewService(nil)
	screens := screen.NewManager(store, metadataCh, dialogs, nil)
	prober := probe.New("", time.Second, nil)

	handlers := NewHandlers(screens, metadataCh, store, dialogs, prober)

	router := gin.New()
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.POST("/screens", handlers.MountScreen)
	router.GET("/screens", handlers.ListScreens)
	router.GET("/screens/:id", handlers.GetScreen)
	router.DELETE("/screens/:id", handlers.UnmountScreen)
	router.GET("/metadata/:topic", handlers.GetMetadata)
	router.GET("/state/whiteboard", handlers.GetWhiteboardState)

	return router, screens, store
}

func perform(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRoot(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := perform(router, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "boardbridge")
}

func TestMountAndGetScreen(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := perform(router, http.MethodPost, "/screens", `{
		"params": {
			"location_href": "https://app.example/",
			"collab_server_url": "https://collab.example",
			"local_participant_name": "Ana"
		}
	}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Screen struct {
			ID  string `json:"id"`
			URI string `json:"uri"`
		} `json:"screen"`
	}
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.Screen.ID)
	assert.Contains(t, created.Screen.URI, "username=Ana")

	w = perform(router, http.MethodGet, "/screens/"+created.Screen.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = perform(router, http.MethodDelete, "/screens/"+created.Screen.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = perform(router, http.MethodGet, "/screens/"+created.Screen.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMountRequiresLocationHref(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := perform(router, http.MethodPost, "/screens", `{"params": {}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMetadataNotFound(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := perform(router, http.MethodGet, "/metadata/whiteboard", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWhiteboardState(t *testing.T) {
	router, _, store := newTestRouter(t)

	w := perform(router, http.MethodGet, "/state/whiteboard", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	store.CommitCollabDetails(types.CollabDetails{RoomID: "r1", RoomKey: "k1"})

	w = perform(router, http.MethodGet, "/state/whiteboard", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "r1")
}

func TestHealthWithoutCollabServer(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := perform(router, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}
