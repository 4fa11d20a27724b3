package delivery

import (
	"encoding/json"
	"net/http"

	"github.com/Vovarama1992/cloudio/internal/models"
	"github.com/Vovarama1992/cloudio/internal/ports"
	"github.com/Vovarama1992/go-utils/logger"
)

type SearchHandler struct {
	search ports.Searcher
	log    *logger.ZapLogger
}

func NewSearchHandler(search ports.Searcher, log *logger.ZapLogger) *SearchHandler {
	return &SearchHandler{
		search: search,
		log:    log,
	}
}

// POST /search
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req models.SearchQuery
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "received search query",
		Fields:  map[string]any{"text": req.Text},
	})

	results, err := h.search.Search(r.Context(), req.Text)
	if err != nil {
		h.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "search failed",
			Error:   err,
		})
		writeError(w, http.StatusInternalServerError, "search failed")
		return
	}
	if results == nil {
		results = []models.SearchResult{}
	}

	writeJSON(w, http.StatusOK, models.SearchResponse{Results: results})
}

// GET /
func Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Cloudio backend is running"})
}

// GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
