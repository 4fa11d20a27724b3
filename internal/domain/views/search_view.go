package views

import (
	"context"

	"github.com/Vovarama1992/cloudio/internal/models"
	"github.com/Vovarama1992/cloudio/internal/ports"
	"github.com/Vovarama1992/go-utils/logger"
)

type SearchView struct {
	api   ports.SearchAPI
	alert Alerter
	log   *logger.ZapLogger

	Query   string
	Results []models.SearchResult
}

func NewSearchView(api ports.SearchAPI, alert Alerter, log *logger.ZapLogger) *SearchView {
	return &SearchView{
		api:   api,
		alert: alert,
		log:   log,
	}
}

// Submit sends the current query once and replaces the results on success.
// On failure the previous results stay and the user is alerted.
func (v *SearchView) Submit(ctx context.Context) error {
	results, err := v.api.Search(ctx, v.Query)
	return v.Apply(v.Query, results, err)
}

// Apply records the outcome of a search that was issued elsewhere,
// e.g. from a background command in the terminal UI.
func (v *SearchView) Apply(query string, results []models.SearchResult, err error) error {
	if err != nil {
		v.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "error fetching results",
			Fields:  map[string]any{"query": query},
			Error:   err,
		})
		v.alert.Alert(MsgSearchFailed)
		return err
	}

	v.Results = results
	return nil
}
