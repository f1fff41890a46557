package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fakemart/fakemart/internal/gen"
)

// Server exposes the event generator over HTTP for consumers that
// poll for simulated website traffic instead of reading a stream from
// stdout. gen.Generator is not safe for concurrent use, so all event
// requests funnel through a single worker goroutine.
type Server struct {
	router *gin.Engine
	events chan eventRequest
}

type eventRequest struct {
	count int
	reply chan []any
}

// NewServer creates a new server instance around a Generator.
func NewServer(g *gen.Generator) *Server {
	router := gin.Default()

	server := &Server{
		router: router,
		events: make(chan eventRequest),
	}

	// Single worker owns the generator; see gen.Generator docs.
	go func() {
		for req := range server.events {
			out := make([]any, 0, req.count)
			for i := 0; i < req.count; i++ {
				out = append(out, g.Event())
			}
			req.reply <- out
		}
	}()

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthCheck)
		api.GET("/event", s.event)
		api.GET("/events", s.eventBatch)
	}
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "fakemart",
		"version": "0.1.0",
	})
}

// event returns one freshly generated website event.
func (s *Server) event(c *gin.Context) {
	c.JSON(http.StatusOK, s.generate(1)[0])
}

// eventBatch returns n events in one response, capped at 1000.
func (s *Server) eventBatch(c *gin.Context) {
	n, err := strconv.Atoi(c.DefaultQuery("n", "10"))
	if err != nil || n < 1 || n > 1000 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": "error",
			"error":  "n must be an integer between 1 and 1000",
		})
		return
	}
	c.JSON(http.StatusOK, s.generate(n))
}

func (s *Server) generate(n int) []any {
	reply := make(chan []any, 1)
	s.events <- eventRequest{count: n, reply: reply}
	return <-reply
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
