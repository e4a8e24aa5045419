// Package server exposes stationtime over HTTP with gin. Every request is a
// single-shot build: the table is computed, queried and discarded; nothing is
// cached between requests.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/stationtime/audit"
	"github.com/katalvlaran/stationtime/store"
	"github.com/katalvlaran/stationtime/traveltime"
	"github.com/katalvlaran/stationtime/wave"
)

// Networks is the subset of store.Store the handlers need.
type Networks interface {
	SaveNetwork(ctx context.Context, name string, req traveltime.BuildRequest) error
	LoadNetwork(ctx context.Context, name string) (traveltime.BuildRequest, error)
	ListNetworks(ctx context.Context) ([]string, error)
}

// Options configures the router.
type Options struct {
	// Networks enables the /api/networks routes; nil answers 503 there.
	Networks Networks
	// Audit runs an audit on every query even when the request does not ask.
	Audit bool
	// AuditMaxStations skips audits above this size; 0 means no limit.
	AuditMaxStations int
	// MaxStations rejects networks above this size before any table is
	// allocated; 0 means no limit.
	MaxStations int
}

// QueryRequest is the body of POST /api/traveltimes.
type QueryRequest struct {
	traveltime.BuildRequest
	Queries      []traveltime.Query `json:"queries"`
	Audit        bool               `json:"audit"`
	IncludeTable bool               `json:"includeTable"`
}

// NetworkQueryRequest is the body of POST /api/networks/:name/queries.
type NetworkQueryRequest struct {
	Queries      []traveltime.Query `json:"queries"`
	Audit        bool               `json:"audit"`
	IncludeTable bool               `json:"includeTable"`
}

// QueryResponse carries answers in query order.
type QueryResponse struct {
	Times         []int               `json:"times"`
	Stats         wave.Result         `json:"stats"`
	Discrepancies []audit.Discrepancy `json:"discrepancies,omitempty"`
	AuditSkipped  bool                `json:"auditSkipped,omitempty"`
	Table         [][]int             `json:"table,omitempty"`
}

// ErrTooManyStations is returned for networks above Options.MaxStations.
var ErrTooManyStations = errors.New("server: station count exceeds limit")

// session is one build-and-query request.
type session struct {
	req          traveltime.BuildRequest
	queries      []traveltime.Query
	audit        bool
	includeTable bool
}

type handler struct {
	opts Options
}

// NewRouter builds the gin engine with CORS, health and API routes.
func NewRouter(opts Options) *gin.Engine {
	h := &handler{opts: opts}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	api := router.Group("/api")
	{
		api.POST("/traveltimes", h.travelTimes)

		api.GET("/networks", h.listNetworks)
		api.PUT("/networks/:name", h.saveNetwork)
		api.POST("/networks/:name/queries", h.queryNetwork)
	}

	return router
}

// travelTimes builds the posted network and answers its queries.
func (h *handler) travelTimes(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.answer(c, session{req: req.BuildRequest, queries: req.Queries, audit: req.Audit, includeTable: req.IncludeTable})
}

// checkSize rejects station counts above the configured limit.
func (h *handler) checkSize(n int) error {
	if h.opts.MaxStations > 0 && n > h.opts.MaxStations {
		return fmt.Errorf("%w: %d stations, limit %d", ErrTooManyStations, n, h.opts.MaxStations)
	}
	return nil
}

// listNetworks returns stored network names.
func (h *handler) listNetworks(c *gin.Context) {
	if !h.requireStore(c) {
		return
	}
	names, err := h.opts.Networks.ListNetworks(c.Request.Context())
	if err != nil {
		log.Printf("Error listing networks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list networks"})
		return
	}
	if names == nil {
		names = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"networks": names})
}

// saveNetwork validates the posted network by building it, then stores it.
func (h *handler) saveNetwork(c *gin.Context) {
	if !h.requireStore(c) {
		return
	}
	var req traveltime.BuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.checkSize(req.StationCount); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	net, err := traveltime.Build(req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	name := c.Param("name")
	if err := h.opts.Networks.SaveNetwork(c.Request.Context(), name, req); err != nil {
		log.Printf("Error saving network %q: %v", name, err)
		c.JSON(statusFor(err), gin.H{"error": "Failed to save network"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"name": name, "stationCount": req.StationCount, "stats": net.Stats()})
}

// queryNetwork loads a stored network, builds it and answers the queries.
func (h *handler) queryNetwork(c *gin.Context) {
	if !h.requireStore(c) {
		return
	}
	var body NetworkQueryRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := c.Param("name")
	req, err := h.opts.Networks.LoadNetwork(c.Request.Context(), name)
	if err != nil {
		if !errors.Is(err, store.ErrNetworkNotFound) {
			log.Printf("Error loading network %q: %v", name, err)
		}
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	h.answer(c, session{req: req, queries: body.Queries, audit: body.Audit, includeTable: body.IncludeTable})
}

// answer runs one build-and-query session and writes the response.
func (h *handler) answer(c *gin.Context, s session) {
	req, qs := s.req, s.queries
	if err := h.checkSize(req.StationCount); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	net, err := traveltime.Build(req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	times, err := net.Answer(qs)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	resp := QueryResponse{Times: times, Stats: net.Stats()}
	if s.includeTable {
		resp.Table = net.Table().Rows()
	}
	if s.audit || h.opts.Audit {
		if h.opts.AuditMaxStations > 0 && req.StationCount > h.opts.AuditMaxStations {
			resp.AuditSkipped = true
		} else {
			resp.Discrepancies, err = audit.CheckQueries(req, net, qs)
			if err != nil {
				log.Printf("Error auditing queries: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to audit queries"})
				return
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) requireStore(c *gin.Context) bool {
	if h.opts.Networks == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "network store is not configured"})
		return false
	}
	return true
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, traveltime.ErrInvalidStationCount),
		errors.Is(err, traveltime.ErrTooManyStations),
		errors.Is(err, ErrTooManyStations),
		errors.Is(err, traveltime.ErrStationOutOfRange),
		errors.Is(err, traveltime.ErrInvalidTime),
		errors.Is(err, traveltime.ErrSelfLoop),
		errors.Is(err, store.ErrInvalidName):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNetworkNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
