// internal/server/router.go
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dining-concierge/internal/common/config"
	"dining-concierge/internal/common/logger"
	"dining-concierge/internal/common/metrics"
	"dining-concierge/internal/common/validation"
	"dining-concierge/internal/models"
)

// Forwarder relays raw user text to the intent recognizer.
type Forwarder interface {
	Forward(ctx context.Context, text string) (string, error)
}

// TurnDispatcher routes a fulfillment turn to the right intent handler.
type TurnDispatcher interface {
	HandleTurn(ctx context.Context, turn *models.Turn) interface{}
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Router wires the HTTP surface: the public chat relay, the fulfillment
// endpoint the recognizer calls back into, and the operational endpoints.
type Router struct {
	relay      Forwarder
	dispatcher TurnDispatcher
	cfg        *config.Config
	logger     logger.Logger
}

func NewRouter(relay Forwarder, dispatcher TurnDispatcher, cfg *config.Config, log logger.Logger) *Router {
	return &Router{
		relay:      relay,
		dispatcher: dispatcher,
		cfg:        cfg,
		logger:     log,
	}
}

// Engine builds the gin engine with all routes registered.
func (rt *Router) Engine() *gin.Engine {
	if rt.cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.POST("/chat", rt.handleChat)
	engine.POST("/fulfillment", rt.handleFulfillment)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.GET("/healthz", rt.handleHealth)

	return engine
}

// handleChat is the front door: it accepts one utterance, forwards it to the
// recognizer, and returns the first reply. Errors map to a 500 with the error
// text in the body; the CORS header is set on every response.
func (rt *Router) handleChat(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", rt.cfg.Server.CORSAllowOrigin)

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.RelayRequests.WithLabelValues("bad_request").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("An error occurred: %s", err)})
		return
	}

	reply, err := rt.relay.Forward(c.Request.Context(), req.Message)
	if err != nil {
		metrics.RelayRequests.WithLabelValues("error").Inc()
		rt.logger.WithError(err).Error("relay failed", nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("An error occurred: %s", err)})
		return
	}

	metrics.RelayRequests.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, gin.H{"message": reply})
}

// handleFulfillment receives a turn from the recognizer, validates the
// envelope, and hands it to the dispatcher. The dispatcher's result is
// serialized as-is, whichever shape it has.
func (rt *Router) handleFulfillment(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	if err := validation.ValidateTurn(payload); err != nil {
		rt.logger.Warn("turn envelope rejected", map[string]interface{}{"reason": err.Error()})
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var turn models.Turn
	if err := json.Unmarshal(payload, &turn); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rt.dispatcher.HandleTurn(c.Request.Context(), &turn))
}

func (rt *Router) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": rt.cfg.App.Name,
		"version": rt.cfg.App.Version,
	})
}
