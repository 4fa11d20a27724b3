package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/Vovarama1992/cloudio/internal/ports"
	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Server renders the search and catalog pages on top of the REST backend.
type Server struct {
	api      ports.BackendAPI
	sessions ports.SessionStore
	log      *logger.ZapLogger

	pages map[string]*template.Template
	wsURL string
}

func NewServer(api ports.BackendAPI, sessions ports.SessionStore, apiURL string, log *logger.ZapLogger) (*Server, error) {
	pages := make(map[string]*template.Template)
	for _, name := range []string{"catalog", "search"} {
		t, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		pages[name] = t
	}

	return &Server{
		api:      api,
		sessions: sessions,
		log:      log,
		pages:    pages,
		wsURL:    changeFeedURL(apiURL),
	}, nil
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.withSession)

	r.Get("/", s.catalogPage)
	r.Get("/manage", s.catalogPage)
	r.Post("/manage", s.manage)

	r.Get("/search", s.searchPage)
	r.Post("/search", s.submitSearch)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"healthy"}`))
	})

	return r
}

func (s *Server) render(w http.ResponseWriter, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.pages[page].ExecuteTemplate(w, "layout.html", data); err != nil {
		s.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "render page failed",
			Fields:  map[string]any{"page": page},
			Error:   err,
		})
	}
}

// changeFeedURL maps http://host:8000 to ws://host:8000/ws.
func changeFeedURL(apiURL string) string {
	u := strings.TrimRight(apiURL, "/")
	switch {
	case strings.HasPrefix(u, "https://"):
		u = "wss://" + strings.TrimPrefix(u, "https://")
	case strings.HasPrefix(u, "http://"):
		u = "ws://" + strings.TrimPrefix(u, "http://")
	}
	return u + "/ws"
}
