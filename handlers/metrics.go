package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Timoffire/bachelor-thesis/metrics"
	"github.com/Timoffire/bachelor-thesis/sections"
)

type metricSummary struct {
	Key          string      `json:"key"`
	Slug         string      `json:"slug"`
	Label        string      `json:"label"`
	Value        interface{} `json:"value"`
	Formatted    string      `json:"formatted"`
	Sources      int         `json:"sources"`
	LLMAvailable bool        `json:"llm_available"`
}

type sourceView struct {
	Source string `json:"source"`
	Href   string `json:"href"`
}

// ListMetrics renders the stored run as the capped summary list. "No run
// yet" is distinct from a run that yields zero metrics.
func (h *Handler) ListMetrics(c *gin.Context) {
	run, err := h.store.Load()
	if err != nil || !run.Exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "no run yet"})
		return
	}

	records, total := metrics.Normalize(run.Payload)
	items := make([]metricSummary, 0, len(records))
	for _, m := range records {
		items = append(items, metricSummary{
			Key:          m.Key,
			Slug:         m.Slug,
			Label:        m.Label,
			Value:        m.Value,
			Formatted:    metrics.FormatValue(m.Value, m.Slug),
			Sources:      len(m.Sources),
			LLMAvailable: m.LLMResponse != "",
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"ticker":  run.Ticker,
		"savedAt": run.SavedAt,
		"total":   total,
		"metrics": items,
	})
}

// GetMetric looks up one metric by slug, past the summary cap, and returns
// its formatted value, sources and the narrative split into sections.
func (h *Handler) GetMetric(c *gin.Context) {
	run, err := h.store.Load()
	if err != nil || !run.Exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "no run yet"})
		return
	}

	slug := c.Param("slug")
	m, ok := metrics.Find(run.Payload, slug)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "metric not found"})
		return
	}

	srcs := make([]sourceView, 0, len(m.Sources))
	for _, s := range m.Sources {
		srcs = append(srcs, sourceView{Source: s, Href: metrics.SourceHref(s)})
	}
	secs := sections.Split(m.LLMResponse)
	if secs == nil {
		secs = []sections.Section{}
	}

	c.JSON(http.StatusOK, gin.H{
		"key":          m.Key,
		"slug":         m.Slug,
		"label":        m.Label,
		"value":        m.Value,
		"formatted":    metrics.FormatValue(m.Value, m.Slug),
		"llm_response": m.LLMResponse,
		"sections":     secs,
		"sources":      srcs,
	})
}
