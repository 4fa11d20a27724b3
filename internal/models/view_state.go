package models

// ViewState is what the front end remembers for one visitor between requests.
type ViewState struct {
	Search  SearchState  `json:"search"`
	Catalog CatalogState `json:"catalog"`
}

type SearchState struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
}

// CatalogState keeps the add-file selection fields, which survive a successful submit.
type CatalogState struct {
	CategoryID int       `json:"category_id"`
	MediaType  MediaType `json:"media_type"`
}
