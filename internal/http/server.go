package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"pulsenet-backend/internal/core"
	"pulsenet-backend/internal/logger"
)

// Server bundles together the dependencies required by the HTTP handlers.
// It implements http.Handler so it can be passed to http.ListenAndServe.
type Server struct {
	Analysis *core.AnalysisService
	Chat     *core.ChatService
	Store    core.RecordStore
	Log      *logger.Logger

	engine *gin.Engine
}

// NewServer constructs a Server and wires up the routes.
func NewServer(analysis *core.AnalysisService, chat *core.ChatService, store core.RecordStore, log *logger.Logger) *Server {
	s := &Server{
		Analysis: analysis,
		Chat:     chat,
		Store:    store,
		Log:      log,
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestID())
	engine.Use(requestLog(log))
	// The browser frontend is served from a different origin.
	engine.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
	}))

	engine.GET("/health", s.handleHealth)

	api := engine.Group("/api")
	{
		api.POST("/analyze", s.handleAnalyze)
		api.GET("/doctor/records", s.handleDoctorRecords)
		api.POST("/common-chat", s.handleCommonChat)
	}

	s.engine = engine
	return s
}

// ServeHTTP dispatches to the underlying gin engine.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}
