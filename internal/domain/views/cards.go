package views

import (
	"github.com/Vovarama1992/cloudio/internal/domain"
	"github.com/Vovarama1992/cloudio/internal/models"
)

// Card is one tile of the catalog grid.
type Card struct {
	ID           int
	Title        string
	Description  string
	CategoryName string
	MediaType    models.MediaType

	EmbedURL string // video iframe
	ImageURL string // image preview
	OpenURL  string // "open file" link, everything but video

	Deletable bool
}

type Chip struct {
	ID     int
	Label  string
	Active bool
}

func (v *CatalogView) Cards() []Card {
	cards := make([]Card, 0, len(v.Files))
	for _, f := range v.Files {
		c := Card{
			ID:           f.ID,
			Title:        f.Title,
			Description:  f.Description,
			CategoryName: f.CategoryName,
			MediaType:    f.MediaType,
			Deletable:    v.Admin,
		}
		switch f.MediaType {
		case models.MediaVideo:
			c.EmbedURL = domain.EmbedURL(f.SourceURL)
		case models.MediaImage:
			c.ImageURL = f.SourceURL
		}
		if f.MediaType != models.MediaVideo {
			c.OpenURL = f.SourceURL
		}
		cards = append(cards, c)
	}
	return cards
}

// FilterChips lists "All" plus one chip per category. They do not filter yet.
func (v *CatalogView) FilterChips() []Chip {
	chips := make([]Chip, 0, len(v.Categories)+1)
	chips = append(chips, Chip{Label: "All", Active: true})
	for _, c := range v.Categories {
		chips = append(chips, Chip{ID: c.ID, Label: c.Name})
	}
	return chips
}
