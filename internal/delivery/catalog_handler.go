package delivery

import (
	"encoding/json"
	"net/http"

	"github.com/Vovarama1992/cloudio/internal/models"
	"github.com/Vovarama1992/cloudio/internal/ports"
	"github.com/Vovarama1992/go-utils/logger"
)

type CatalogHandler struct {
	catalog ports.CatalogService
	log     *logger.ZapLogger
}

func NewCatalogHandler(catalog ports.CatalogService, log *logger.ZapLogger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		log:     log,
	}
}

// GET /files
func (h *CatalogHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	files, err := h.catalog.ListFiles(r.Context())
	if err != nil {
		h.fail(w, "list files failed", err)
		return
	}
	if files == nil {
		files = []models.File{}
	}
	writeJSON(w, http.StatusOK, files)
}

// POST /files
func (h *CatalogHandler) CreateFile(w http.ResponseWriter, r *http.Request) {
	var req models.NewFile
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	id, err := h.catalog.CreateFile(r.Context(), req)
	if err != nil {
		h.fail(w, "create file failed", err)
		return
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "file added",
		Fields: map[string]any{
			"fileID":    id,
			"mediaType": req.MediaType,
		},
	})

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":      id,
		"message": "File added",
	})
}

// DELETE /files/{id}
func (h *CatalogHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.catalog.DeleteFile(r.Context(), id); err != nil {
		h.fail(w, "delete file failed", err)
		return
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "file deleted",
		Fields:  map[string]any{"fileID": id},
	})
	writeJSON(w, http.StatusOK, map[string]string{"message": "Deleted successfully"})
}

// GET /categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		h.fail(w, "list categories failed", err)
		return
	}
	if cats == nil {
		cats = []models.Category{}
	}
	writeJSON(w, http.StatusOK, cats)
}

// POST /categories
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.NewCategory
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	c, err := h.catalog.CreateCategory(r.Context(), req.Name)
	if err != nil {
		h.fail(w, "create category failed", err)
		return
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "category added",
		Fields:  map[string]any{"categoryID": c.ID, "name": c.Name},
	})
	writeJSON(w, http.StatusCreated, c)
}

// DELETE /categories/{id}
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.catalog.DeleteCategory(r.Context(), id); err != nil {
		h.fail(w, "delete category failed", err)
		return
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "category deleted",
		Fields:  map[string]any{"categoryID": id},
	})
	writeJSON(w, http.StatusOK, map[string]string{"message": "Category deleted"})
}

func (h *CatalogHandler) fail(w http.ResponseWriter, msg string, err error) {
	status := statusFor(err)
	level := "error"
	if status < http.StatusInternalServerError {
		level = "warn"
	}
	h.log.Log(logger.LogEntry{
		Level:   level,
		Message: msg,
		Fields:  map[string]any{"status": status},
		Error:   err,
	})
	writeError(w, status, err.Error())
}
