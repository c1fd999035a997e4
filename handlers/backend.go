package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health relays the backend pipeline's health state.
func (h *Handler) Health(c *gin.Context) {
	body, err := h.backend.Health(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "backend unreachable", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "backend": json.RawMessage(body)})
}

// ResetCollection drops the backend's document collection.
func (h *Handler) ResetCollection(c *gin.Context) {
	body, err := h.backend.DeleteCollection(c.Request.Context())
	if err != nil {
		h.log.Errorw("resetting collection failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to reset collection", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "collection reset", "backend": json.RawMessage(body)})
}
