package models

type MediaType string

const (
	MediaVideo MediaType = "video"
	MediaPDF   MediaType = "pdf"
	MediaImage MediaType = "image"
)

// UncategorizedName is reported for files whose category was deleted.
const UncategorizedName = "uncategorized"

func (t MediaType) Valid() bool {
	switch t {
	case MediaVideo, MediaPDF, MediaImage:
		return true
	}
	return false
}

type File struct {
	ID           int       `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	Description  string    `db:"description" json:"description"`
	SourceURL    string    `db:"source_url" json:"source_url"`
	CategoryID   int       `db:"category_id" json:"category_id"`     // 0 when uncategorized
	CategoryName string    `db:"category_name" json:"category_name"` // joined from categories
	MediaType    MediaType `db:"media_type" json:"media_type"`
}

// NewFile is the create payload of POST /files.
type NewFile struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	SourceURL   string    `json:"source_url"`
	CategoryID  int       `json:"category_id"`
	MediaType   MediaType `json:"media_type"`
}
