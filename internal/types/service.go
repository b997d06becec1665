package types

// Service is a treatment offered across every location.
type Service struct {
	Slug      string `json:"slug" yaml:"slug"`
	Title     string `json:"title" yaml:"title"`
	Keyword   string `json:"keyword" yaml:"keyword"`
	ShortDesc string `json:"short_desc" yaml:"shortDesc"`
}

// Benefit is a single highlight card on a service page.
type Benefit struct {
	Icon  string `json:"icon" yaml:"icon"`
	Title string `json:"title" yaml:"title"`
	Desc  string `json:"desc" yaml:"desc"`
}

// Section is a heading followed by body paragraphs.
type Section struct {
	Heading    string   `json:"heading" yaml:"heading"`
	Paragraphs []string `json:"paragraphs" yaml:"paragraphs"`
}

// ServiceContent is the hand-authored copy for a service page, keyed by the
// service slug in the content table.
type ServiceContent struct {
	HeroTitle    string    `json:"hero_title" yaml:"heroTitle"`
	HeroSubtitle string    `json:"hero_subtitle" yaml:"heroSubtitle"`
	Benefits     []Benefit `json:"benefits" yaml:"benefits"`
	Sections     []Section `json:"sections" yaml:"sections"`
	PriceRange   string    `json:"price_range" yaml:"priceRange"`
}
