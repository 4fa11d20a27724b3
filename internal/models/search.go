package models

type SearchQuery struct {
	Text string `json:"text"`
}

type SearchResult struct {
	Source string `json:"source"`
	Text   string `json:"text"`
}

type SearchResponse struct {
	Results []SearchResult `json:"results"`
}
