// Package server wires the boardbridge components into an HTTP service.
package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/collabview/boardbridge/internal/api/middleware"
	"github.com/collabview/boardbridge/internal/config"
	"github.com/collabview/boardbridge/internal/dialog"
	httpapi "github.com/collabview/boardbridge/internal/http"
	"github.com/collabview/boardbridge/internal/infrastructure/monitoring"
	"github.com/collabview/boardbridge/internal/logging"
	"github.com/collabview/boardbridge/internal/metadata"
	"github.com/collabview/boardbridge/internal/probe"
	"github.com/collabview/boardbridge/internal/screen"
	"github.com/collabview/boardbridge/internal/shared/types"
	"github.com/collabview/boardbridge/internal/state"
	"github.com/collabview/boardbridge/internal/ws"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	screens  *screen.Manager
	store    *state.Store
	metadata *metadata.Channel
	dialogs  *dialog.Service
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
}

// metadataSink decorates the metadata channel with broadcast metrics. Every
// publish through it corresponds to one accepted credential message.
type metadataSink struct {
	channel *metadata.Channel
	metrics *monitoring.Metrics
}

func (s *metadataSink) SetMetadata(topicKey string, record types.BroadcastRecord) {
	s.channel.SetMetadata(topicKey, record)
	s.metrics.RecordMessageAccepted()
	s.metrics.RecordBroadcast()
}

// dialogSink decorates the dialog service with metrics.
type dialogSink struct {
	dialogs *dialog.Service
	metrics *monitoring.Metrics
}

func (s *dialogSink) OpenDialog(d types.DialogDescriptor) {
	s.dialogs.OpenDialog(d)
	s.metrics.RecordDialogOpened()
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	// Initialize logger
	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger = logging.NewDefault()
	}

	logger.Info("Initializing boardbridge server",
		zap.String("port", cfg.Server.Port),
		zap.String("collab_server", cfg.Collab.DefaultServerURL),
	)

	// Initialize metrics first (needed by other components)
	metrics := monitoring.NewMetrics()

	// External-collaborator implementations: host state, metadata channel,
	// dialog presentation.
	store := state.NewStore()
	metadataCh := metadata.NewChannel(logger.Logger)
	dialogs := dialog.NewService(logger.Logger)

	// Collab server reachability probe
	prober := probe.New(cfg.Collab.DefaultServerURL, cfg.Collab.ProbeTimeout, logger.Logger)

	// Screen manager with metric-decorated sinks
	screens := screen.NewManager(
		store,
		&metadataSink{channel: metadataCh, metrics: metrics},
		&dialogSink{dialogs: dialogs, metrics: metrics},
		logger.Logger,
	).WithMetrics(metrics).WithDefaultServerURL(cfg.Collab.DefaultServerURL)

	// Create router
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	// Create handlers
	handlers := httpapi.NewHandlers(screens, metadataCh, store, dialogs, prober)
	wsHandler := ws.NewHandler(screens, metadataCh, metrics, logger.Logger)

	// Register routes
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	// Screen lifecycle
	router.POST("/screens", handlers.MountScreen)
	router.GET("/screens", handlers.ListScreens)
	router.GET("/screens/:id", handlers.GetScreen)
	router.DELETE("/screens/:id", handlers.UnmountScreen)

	// Conference metadata
	router.GET("/metadata", handlers.ListMetadataTopics)
	router.GET("/metadata/:topic", handlers.GetMetadata)

	// Host state
	router.GET("/state/whiteboard", handlers.GetWhiteboardState)

	// Dialogs
	router.GET("/dialogs", handlers.ListDialogs)
	router.DELETE("/dialogs/:id", handlers.DismissDialog)

	// WebSocket: embedded-surface channel and participant metadata feed
	router.GET("/ws/screens/:id", wsHandler.HandleSurface)
	router.GET("/ws/metadata", wsHandler.HandleMetadataFeed)

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	logger.Info("Server initialized successfully")

	return &Server{
		router:   router,
		screens:  screens,
		store:    store,
		metadata: metadataCh,
		dialogs:  dialogs,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
	}, nil
}

// Router exposes the gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Close gracefully shuts down the server
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")

	// Sync logger before exit
	s.logger.Sync()

	return nil
}
