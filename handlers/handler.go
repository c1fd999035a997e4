// Package handlers exposes the stored-run pipeline as a JSON API.
package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Timoffire/bachelor-thesis/gateway"
	"github.com/Timoffire/bachelor-thesis/store"
)

type Handler struct {
	store   store.RunStore
	backend *gateway.Client
	log     *zap.SugaredLogger
}

func New(st store.RunStore, backend *gateway.Client, log *zap.SugaredLogger) *Handler {
	return &Handler{store: st, backend: backend, log: log}
}

func (h *Handler) Register(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.POST("/run", h.Run)
		api.GET("/last-run", h.GetLastRun)
		api.DELETE("/last-run", h.ClearLastRun)
		api.GET("/metrics", h.ListMetrics)
		api.GET("/metrics/:slug", h.GetMetric)
		api.POST("/reset-collection", h.ResetCollection)
		api.GET("/health", h.Health)
	}
}
