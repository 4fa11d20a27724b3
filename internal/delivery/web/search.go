package web

import (
	"net/http"

	"github.com/Vovarama1992/cloudio/internal/domain/views"
)

type searchPage struct {
	View   *views.SearchView
	Alerts []string
}

// GET /search
func (s *Server) searchPage(w http.ResponseWriter, r *http.Request) {
	st := s.loadState(r.Context())

	v := views.NewSearchView(s.api, &alerts{}, s.log)
	v.Query = st.Search.Query
	v.Results = st.Search.Results

	s.render(w, "search", searchPage{View: v})
}

// POST /search
func (s *Server) submitSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	st := s.loadState(ctx)
	a := &alerts{}

	v := views.NewSearchView(s.api, a, s.log)
	v.Query = r.PostFormValue("query")
	v.Results = st.Search.Results

	if err := v.Submit(ctx); err == nil {
		st.Search.Results = v.Results
	}
	st.Search.Query = v.Query
	s.saveState(ctx, st)

	s.render(w, "search", searchPage{View: v, Alerts: a.msgs})
}
