package main

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dileep-u-k/weather-gateway/internal/accuweather"
	"github.com/dileep-u-k/weather-gateway/internal/tools"
	"github.com/dileep-u-k/weather-gateway/internal/version"
	"github.com/dileep-u-k/weather-gateway/internal/weather"
)

// GatewayHandler serves the REST tool surface: listing tool definitions
// and invoking a tool by name. It owns no state beyond the registry.
type GatewayHandler struct {
	registry *tools.Registry
}

// NewGatewayHandler creates a handler over the given registry.
func NewGatewayHandler(registry *tools.Registry) *GatewayHandler {
	return &GatewayHandler{registry: registry}
}

// toolInvocation is the body of POST /tools/:name. Arguments stays raw
// so it is handed to the tool exactly as the caller wrote it.
type toolInvocation struct {
	Arguments json.RawMessage `json:"arguments"`
}

// HandleListTools returns the definitions of every registered tool.
func (h *GatewayHandler) HandleListTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"tools": h.registry.Definitions(),
		"count": h.registry.Count(),
	})
}

// HandleToolInvocation executes one tool synchronously and maps its
// failure taxonomy onto HTTP status codes: validation errors are 400,
// unknown tools and unresolvable locations 404, upstream failures 502.
func (h *GatewayHandler) HandleToolInvocation(c *gin.Context) {
	name := c.Param("name")

	var req toolInvocation
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	// An empty body means a tool with no required arguments.
	if len(req.Arguments) == 0 {
		req.Arguments = json.RawMessage("{}")
	}

	log.Printf("--- Tool invocation: %s args=%s", name, string(req.Arguments))

	result, err := h.registry.Execute(c.Request.Context(), name, string(req.Arguments))
	if err != nil {
		status := statusForError(err)
		log.Printf("Tool %s failed (HTTP %d): %v", name, status, err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	// Structured tools return JSON text; pass it through unquoted so
	// callers get an object, not a string of an object.
	if json.Valid([]byte(result)) {
		c.JSON(http.StatusOK, gin.H{"tool": name, "result": json.RawMessage(result)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tool": name, "result": result})
}

// HandleHealthz reports liveness and build info.
func (h *GatewayHandler) HandleHealthz(c *gin.Context) {
	info := version.Get()
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": info.Version,
		"commit":  info.GitCommit,
	})
}

// statusForError maps the error taxonomy onto HTTP status codes.
func statusForError(err error) int {
	var validationErr *weather.ValidationError
	var notFoundErr *weather.NotFoundError
	var upstreamErr *accuweather.UpstreamError

	switch {
	case errors.Is(err, tools.ErrUnknownTool):
		return http.StatusNotFound
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &upstreamErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
