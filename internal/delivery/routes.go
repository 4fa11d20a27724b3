package delivery

import (
	"net/http"

	"github.com/Vovarama1992/cloudio/internal/delivery/ws"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func RegisterRoutes(r chi.Router, hCatalog *CatalogHandler, hSearch *SearchHandler) {
	r.Get("/", Root)
	r.Get("/health", Health)

	// search
	r.Post("/search", hSearch.Search)

	// files
	r.Get("/files", hCatalog.ListFiles)
	r.Post("/files", hCatalog.CreateFile)
	r.Delete("/files/{id}", hCatalog.DeleteFile)

	// categories
	r.Get("/categories", hCatalog.ListCategories)
	r.Post("/categories", hCatalog.CreateCategory)
	r.Delete("/categories/{id}", hCatalog.DeleteCategory)
}

// NewRouter assembles the full API: CORS for any origin, metrics, REST routes and the change feed.
func NewRouter(hCatalog *CatalogHandler, hSearch *SearchHandler, hub *ws.Hub, metrics *Metrics) http.Handler {
	r := chi.NewRouter()

	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	RegisterRoutes(r, hCatalog, hSearch)

	r.Get("/ws", ws.Handler(hub))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	return r
}
