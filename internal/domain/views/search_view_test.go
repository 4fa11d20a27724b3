package views

import (
	"context"
	"testing"

	"github.com/Vovarama1992/cloudio/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchView_Submit_ReplacesResults(t *testing.T) {
	api := &fakeAPI{results: []models.SearchResult{{Source: "A", Text: "hit"}}}
	al := &alerts{}
	v := NewSearchView(api, al, nopLogger())
	v.Results = []models.SearchResult{{Source: "old", Text: "old"}}
	v.Query = "genesis"

	require.NoError(t, v.Submit(context.Background()))

	assert.Equal(t, []string{"POST /search genesis"}, api.Calls())
	assert.Equal(t, []models.SearchResult{{Source: "A", Text: "hit"}}, v.Results)
	assert.Empty(t, al.msgs)
}

func TestSearchView_Submit_FailureKeepsResultsAndAlerts(t *testing.T) {
	api := &fakeAPI{failSearch: true}
	al := &alerts{}
	v := NewSearchView(api, al, nopLogger())
	prev := []models.SearchResult{{Source: "old", Text: "kept"}}
	v.Results = prev
	v.Query = "x"

	require.Error(t, v.Submit(context.Background()))

	assert.Equal(t, prev, v.Results)
	assert.Equal(t, []string{MsgSearchFailed}, al.msgs)
	assert.Len(t, api.Calls(), 1)
}

func TestSearchView_Apply(t *testing.T) {
	al := &alerts{}
	v := NewSearchView(nil, al, nopLogger())

	require.NoError(t, v.Apply("q", []models.SearchResult{{Text: "a"}}, nil))
	assert.Len(t, v.Results, 1)

	require.Error(t, v.Apply("q", nil, assert.AnError))
	assert.Len(t, v.Results, 1)
	assert.Equal(t, []string{MsgSearchFailed}, al.msgs)
}
