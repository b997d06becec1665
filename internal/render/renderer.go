// Package render turns resolved routes into HTML pages and the sitemap.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/FACorreiaa/uk-dental-implants/internal/resolver"
	"github.com/FACorreiaa/uk-dental-implants/internal/types"
)

//go:embed templates
var templateFS embed.FS

const (
	ContentTypeHTML = "text/html; charset=utf-8"
	ContentTypeXML  = "application/xml; charset=utf-8"

	footerCityCount   = 8
	homeTier2Count    = 12
	regionPreviewSize = 8
)

var pageTemplates = []string{"home", "locations", "city", "service", "quote", "thanks", "notfound"}

// Catalogue is the read side of the dataset the renderer needs for
// aggregate pages.
type Catalogue interface {
	Cities() []types.City
	Services() []types.Service
	CitiesByTier(tier int) []types.City
	CitiesByRegion(region types.Region) []types.City
	Regions() []types.Region
}

// SiteInfo carries the site-wide identity shown in the layout and used for
// absolute URLs.
type SiteInfo struct {
	Name    string
	BaseURL string
	Phone   string
	Email   string
}

type Option func(*Renderer)

// WithClock overrides the time source used for sitemap timestamps and the
// footer year.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

type Renderer struct {
	catalogue Catalogue
	site      SiteInfo
	templates map[string]*template.Template
	now       func() time.Time

	nav navView
}

func New(catalogue Catalogue, site SiteInfo, opts ...Option) (*Renderer, error) {
	if site.Name == "" {
		site.Name = "UK Dental Implants"
	}
	r := &Renderer{
		catalogue: catalogue,
		site:      site,
		templates: make(map[string]*template.Template, len(pageTemplates)),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	for _, name := range pageTemplates {
		tmpl, err := template.New(name).Funcs(funcMap).ParseFS(templateFS,
			"templates/layout.html",
			"templates/partials/*.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.templates[name] = tmpl
	}

	tier1 := catalogue.CitiesByTier(1)
	r.nav = navView{
		Services:  catalogue.Services(),
		TopCities: firstN(tier1, footerCityCount),
	}
	return r, nil
}

// Render produces the page for a resolution. NotFound resolutions yield the
// not-found page with status 404.
func (r *Renderer) Render(res resolver.Resolution) (*types.Page, error) {
	if res.Outcome != resolver.Resolved {
		return r.RenderNotFound(res.Route)
	}

	switch res.Route.Kind {
	case resolver.KindHome:
		return r.renderHome()
	case resolver.KindLocations:
		return r.renderLocations()
	case resolver.KindCity:
		return r.renderCity(res.City)
	case resolver.KindService:
		return r.renderService(res.Service, res.Content)
	case resolver.KindQuote:
		return r.RenderQuote(QuoteForm{})
	case resolver.KindSitemap:
		body, err := r.Sitemap()
		if err != nil {
			return nil, err
		}
		return &types.Page{Path: res.Route.Path(), Status: http.StatusOK, ContentType: ContentTypeXML, Body: body}, nil
	default:
		return r.RenderNotFound(res.Route)
	}
}

// RenderNotFound renders the 404 page for a route that did not resolve.
func (r *Renderer) RenderNotFound(route resolver.Route) (*types.Page, error) {
	path := route.Path()
	if route.Kind == resolver.KindUnknown {
		path = "/" + route.Slug
	}
	return r.execute("notfound", path, http.StatusNotFound, notFoundMetadata(route.Kind), notFoundView{Kind: route.Kind.String()})
}

// QuoteForm is the state of the quote form when it is (re)displayed.
type QuoteForm struct {
	Values  types.LeadForm
	Missing []string
}

// RenderQuote renders the quote page. Missing field names are highlighted and
// the page status is 400 when any are present.
func (r *Renderer) RenderQuote(q QuoteForm) (*types.Page, error) {
	status := http.StatusOK
	if len(q.Missing) > 0 {
		status = http.StatusBadRequest
	}
	return r.execute("quote", "/quote", status, QuoteMetadata(), quoteView{Form: newFormView(q, "default")})
}

// RenderThanks renders the confirmation shown after a successful submission.
func (r *Renderer) RenderThanks(form types.LeadForm, ack *types.LeadAck) (*types.Page, error) {
	meta := types.Metadata{Title: "Thank You"}
	return r.execute("thanks", "/quote", http.StatusOK, meta, thanksView{CityName: form.CityName, Ack: ack})
}

func (r *Renderer) renderHome() (*types.Page, error) {
	cities := r.catalogue.Cities()
	data := homeView{
		Tier1:       r.catalogue.CitiesByTier(1),
		Tier2:       firstN(r.catalogue.CitiesByTier(2), homeTier2Count),
		Services:    r.catalogue.Services(),
		TotalCities: len(cities),
		Form:        newFormView(QuoteForm{}, "hero"),
	}
	return r.execute("home", "/", http.StatusOK, HomeMetadata(), data)
}

func (r *Renderer) renderLocations() (*types.Page, error) {
	regions := r.catalogue.Regions()
	data := locationsView{
		TotalCities:  len(r.catalogue.Cities()),
		TotalRegions: len(regions),
		Tiers: []tierGroup{
			{Heading: "Major Cities", Blurb: "Dental implant specialists in the UK's largest cities", Cities: r.catalogue.CitiesByTier(1)},
			{Heading: "Large Cities", Blurb: "Implant dentists in major urban areas", Cities: r.catalogue.CitiesByTier(2)},
			{Heading: "Medium Cities", Blurb: "Tooth implant services in growing urban centres", Cities: r.catalogue.CitiesByTier(3)},
			{Heading: "Large Towns", Blurb: "Local dental implant providers across the UK", Cities: r.catalogue.CitiesByTier(4)},
		},
	}
	for _, region := range regions {
		members := r.catalogue.CitiesByRegion(region)
		data.Regions = append(data.Regions, regionGroup{
			Name:  region,
			Count: len(members),
			Shown: firstN(members, regionPreviewSize),
			More:  max(len(members)-regionPreviewSize, 0),
		})
	}
	return r.execute("locations", "/locations", http.StatusOK, LocationsMetadata(), data)
}

func (r *Renderer) renderCity(city *types.CityDetail) (*types.Page, error) {
	if city == nil {
		return nil, fmt.Errorf("failed to render city: %w", resolver.ErrNotFound)
	}
	data := cityView{
		City:     *city,
		Services: r.catalogue.Services(),
		Prices:   cityPrices,
		FAQs:     cityFAQs(city.Name),
		Form:     newFormView(QuoteForm{Values: types.LeadForm{CityName: city.Name}}, "hero"),
	}
	return r.execute("city", "/locations/"+city.Slug, http.StatusOK, CityMetadata(city.City), data)
}

func (r *Renderer) renderService(svc *types.Service, content *types.ServiceContent) (*types.Page, error) {
	if svc == nil || content == nil {
		return nil, fmt.Errorf("failed to render service: %w", resolver.ErrNotFound)
	}
	first, rest, _ := strings.Cut(content.HeroTitle, " ")
	data := serviceView{
		Service:   *svc,
		Content:   *content,
		HeroFirst: first,
		HeroRest:  rest,
		TopCities: r.catalogue.CitiesByTier(1),
		Form:      newFormView(QuoteForm{Values: types.LeadForm{ServiceName: svc.Title}}, "hero"),
	}
	return r.execute("service", "/services/"+svc.Slug, http.StatusOK, ServiceMetadata(*svc), data)
}

func (r *Renderer) execute(name, path string, status int, meta types.Metadata, data any) (*types.Page, error) {
	tmpl, ok := r.templates[name]
	if !ok {
		return nil, fmt.Errorf("unknown template %q", name)
	}

	v := layoutView{
		Site:      r.site,
		Meta:      meta,
		Title:     r.documentTitle(path, meta.Title),
		Canonical: r.absURL(path),
		Nav:       r.nav,
		Year:      r.now().Year(),
		Data:      data,
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", v); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", path, err)
	}
	return &types.Page{
		Path:        path,
		Status:      status,
		ContentType: ContentTypeHTML,
		Metadata:    meta,
		Body:        buf.Bytes(),
	}, nil
}

// documentTitle applies the site title template to every page but home.
func (r *Renderer) documentTitle(path, title string) string {
	if path == "/" && title == homeTitle {
		return title
	}
	return fmt.Sprintf("%s | %s", title, r.site.Name)
}

func firstN(cities []types.City, n int) []types.City {
	if len(cities) > n {
		return cities[:n]
	}
	return cities
}
