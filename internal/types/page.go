package types

import "time"

// Metadata is the head content emitted for every rendered route.
type Metadata struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords,omitempty"`
}

// Page is a fully rendered route.
type Page struct {
	Path        string
	Status      int
	ContentType string
	Metadata    Metadata
	Body        []byte
}

// SitemapEntry is one <url> of the sitemap.
type SitemapEntry struct {
	Loc             string    `json:"loc"`
	LastModified    time.Time `json:"last_modified"`
	ChangeFrequency string    `json:"change_frequency"`
	Priority        float64   `json:"priority"`
}
