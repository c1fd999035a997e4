package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetLastRun returns the stored run verbatim. The absent state is an
// ordinary response, not an error.
func (h *Handler) GetLastRun(c *gin.Context) {
	run, err := h.store.Load()
	if err != nil {
		h.log.Warnw("loading last run failed, treating as absent", "error", err)
	}
	if err != nil || !run.Exists {
		c.JSON(http.StatusOK, gin.H{
			"exists": false,
			"data":   nil,
			"meta":   gin.H{"ticker": nil, "savedAt": nil},
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"exists": true,
		"data":   json.RawMessage(run.Payload),
		"meta":   gin.H{"ticker": run.Ticker, "savedAt": run.SavedAt},
	})
}

// ClearLastRun deletes the stored run. Clearing an already-empty store
// succeeds.
func (h *Handler) ClearLastRun(c *gin.Context) {
	if err := h.store.Clear(); err != nil {
		h.log.Errorw("clearing last run failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "last run cleared"})
}
