package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Vovarama1992/cloudio/internal/domain"
	"github.com/Vovarama1992/cloudio/internal/domain/views"
	"github.com/Vovarama1992/cloudio/internal/models"
	"github.com/Vovarama1992/go-utils/logger"
)

type catalogPage struct {
	View       *views.CatalogView
	Cards      []views.Card
	Chips      []views.Chip
	MediaTypes []models.MediaType
	Alerts     []string
	WSURL      string
	ManagePath string

	ConfirmDeleteFile     string
	ConfirmDeleteCategory string
}

func (s *Server) newCatalogView(r *http.Request, a *alerts, st *models.ViewState) *views.CatalogView {
	v := views.NewCatalogView(s.api, r.URL.Path, a, formConfirmer(r), s.log)
	v.Form.CategoryID = st.Catalog.CategoryID
	if st.Catalog.MediaType.Valid() {
		v.Form.MediaType = st.Catalog.MediaType
	}
	return v
}

// GET / and GET /manage
func (s *Server) catalogPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	st := s.loadState(ctx)
	a := &alerts{}

	v := s.newCatalogView(r, a, st)
	_ = v.Load(ctx)

	s.renderCatalog(w, v, a)
}

// POST /manage
func (s *Server) manage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	st := s.loadState(ctx)
	a := &alerts{}
	v := s.newCatalogView(r, a, st)

	var err error
	action := r.PostFormValue("action")
	switch action {
	case "add_file":
		v.Form.Title = r.PostFormValue("title")
		v.Form.Description = r.PostFormValue("description")
		v.Form.SourceURL = r.PostFormValue("source_url")
		v.Form.CategoryID, _ = strconv.Atoi(r.PostFormValue("category_id"))
		v.Form.MediaType = models.MediaType(r.PostFormValue("media_type"))
		err = v.AddFile(ctx)

		st.Catalog.CategoryID = v.Form.CategoryID
		st.Catalog.MediaType = v.Form.MediaType
		s.saveState(ctx, st)
	case "delete_file":
		err = v.DeleteFile(ctx, formID(r))
	case "add_category":
		v.NewCategoryName = r.PostFormValue("name")
		err = v.AddCategory(ctx)
	case "delete_category":
		err = v.DeleteCategory(ctx, formID(r))
	default:
		http.Error(w, "unknown action", http.StatusBadRequest)
		return
	}

	if errors.Is(err, views.ErrRequiredFields) {
		a.Alert("Title and source URL are required")
	}
	if err != nil {
		s.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: "catalog action failed",
			Fields:  map[string]any{"action": action},
			Error:   err,
		})
	}

	if !v.Loaded() {
		_ = v.Load(ctx)
	}
	s.renderCatalog(w, v, a)
}

func (s *Server) renderCatalog(w http.ResponseWriter, v *views.CatalogView, a *alerts) {
	s.render(w, "catalog", catalogPage{
		View:                  v,
		Cards:                 v.Cards(),
		Chips:                 v.FilterChips(),
		MediaTypes:            []models.MediaType{models.MediaVideo, models.MediaPDF, models.MediaImage},
		Alerts:                a.msgs,
		WSURL:                 s.wsURL,
		ManagePath:            domain.AdminPath,
		ConfirmDeleteFile:     views.ConfirmDeleteFile,
		ConfirmDeleteCategory: views.ConfirmDeleteCategory,
	})
}

func formID(r *http.Request) int {
	id, _ := strconv.Atoi(r.PostFormValue("id"))
	return id
}
