package render

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/FACorreiaa/uk-dental-implants/internal/types"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

const (
	ChangeWeekly  = "weekly"
	ChangeMonthly = "monthly"
)

// PriorityForTier maps a city tier onto its sitemap priority.
func PriorityForTier(tier int) float64 {
	switch tier {
	case 1:
		return 0.9
	case 2:
		return 0.8
	case 3:
		return 0.7
	default:
		return 0.6
	}
}

// SitemapEntries lists every page in sitemap order: home, locations, quote,
// services, then cities. All entries share the same last-modified instant.
func (r *Renderer) SitemapEntries() []types.SitemapEntry {
	now := r.now()
	services := r.catalogue.Services()
	cities := r.catalogue.Cities()

	entries := make([]types.SitemapEntry, 0, 3+len(services)+len(cities))
	entries = append(entries,
		types.SitemapEntry{Loc: r.absURL("/"), LastModified: now, ChangeFrequency: ChangeWeekly, Priority: 1.0},
		types.SitemapEntry{Loc: r.absURL("/locations"), LastModified: now, ChangeFrequency: ChangeWeekly, Priority: 0.9},
		types.SitemapEntry{Loc: r.absURL("/quote"), LastModified: now, ChangeFrequency: ChangeMonthly, Priority: 0.8},
	)
	for _, s := range services {
		entries = append(entries, types.SitemapEntry{
			Loc:             r.absURL("/services/" + s.Slug),
			LastModified:    now,
			ChangeFrequency: ChangeMonthly,
			Priority:        0.8,
		})
	}
	for _, c := range cities {
		entries = append(entries, types.SitemapEntry{
			Loc:             r.absURL("/locations/" + c.Slug),
			LastModified:    now,
			ChangeFrequency: ChangeMonthly,
			Priority:        PriorityForTier(c.Tier),
		})
	}
	return entries
}

type urlset struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []urlEntry
}

type urlEntry struct {
	XMLName    xml.Name `xml:"url"`
	Loc        string   `xml:"loc"`
	LastMod    string   `xml:"lastmod"`
	ChangeFreq string   `xml:"changefreq"`
	Priority   string   `xml:"priority"`
}

// Sitemap encodes SitemapEntries as a sitemaps.org urlset document.
func (r *Renderer) Sitemap() ([]byte, error) {
	entries := r.SitemapEntries()
	set := urlset{Xmlns: sitemapNamespace, URLs: make([]urlEntry, len(entries))}
	for i, e := range entries {
		set.URLs[i] = urlEntry{
			Loc:        e.Loc,
			LastMod:    e.LastModified.UTC().Format(time.RFC3339),
			ChangeFreq: e.ChangeFrequency,
			Priority:   fmt.Sprintf("%.1f", e.Priority),
		}
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

func (r *Renderer) absURL(path string) string {
	base := strings.TrimRight(r.site.BaseURL, "/")
	if path == "/" {
		return base
	}
	return base + path
}
