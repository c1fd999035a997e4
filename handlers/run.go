package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type runRequest struct {
	Ticker string `json:"ticker"`
}

// Run triggers a backend analysis for a ticker and, on success, overwrites
// the stored last run with the backend's payload.
func (h *Handler) Run(c *gin.Context) {
	var req runRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Ticker) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ticker is missing or invalid, send { \"ticker\": \"AAPL\" }"})
		return
	}
	ticker := strings.TrimSpace(req.Ticker)

	payload, err := h.backend.Run(c.Request.Context(), ticker)
	if err != nil {
		h.log.Errorw("backend run failed", "ticker", ticker, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "backend run failed", "detail": err.Error()})
		return
	}

	savedAt, err := h.store.Save(ticker, payload)
	if err != nil {
		h.log.Errorw("saving run result failed", "ticker", ticker, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save run result"})
		return
	}

	h.log.Infow("run completed", "ticker", ticker, "savedAt", savedAt)
	c.JSON(http.StatusOK, gin.H{
		"message": "run completed",
		"ticker":  ticker,
		"saved":   true,
		"savedAt": savedAt,
		"backend": json.RawMessage(payload),
	})
}
