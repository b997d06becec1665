// Package resolver maps URL paths onto catalogue entries. Every request
// resolves in one step to either Resolved or NotFound.
package resolver

import (
	"errors"
	"strings"

	"github.com/FACorreiaa/uk-dental-implants/internal/types"
)

// ErrNotFound is returned by Resolution.Err for paths that do not name a
// catalogue entry.
var ErrNotFound = errors.New("page not found")

// Catalogue is the slice of the dataset the resolver reads.
type Catalogue interface {
	CityBySlug(slug string) (types.City, bool)
	NearbyCities(slug string) []types.City
	RegionImplantData(region types.Region) string
	PatientDemographics(region types.Region) string
	ServiceBySlug(slug string) (types.Service, bool)
	ServiceContent(slug string) (types.ServiceContent, bool)
	AllCitySlugs() []string
	ServiceSlugs() []string
}

type Kind int

const (
	KindUnknown Kind = iota
	KindHome
	KindLocations
	KindCity
	KindService
	KindQuote
	KindSitemap
)

func (k Kind) String() string {
	switch k {
	case KindHome:
		return "home"
	case KindLocations:
		return "locations"
	case KindCity:
		return "city"
	case KindService:
		return "service"
	case KindQuote:
		return "quote"
	case KindSitemap:
		return "sitemap"
	default:
		return "unknown"
	}
}

type Outcome int

const (
	Pending Outcome = iota
	Resolved
	NotFound
)

func (o Outcome) String() string {
	switch o {
	case Resolved:
		return "resolved"
	case NotFound:
		return "not_found"
	default:
		return "pending"
	}
}

// Route names a page family and, for per-item routes, its slug.
type Route struct {
	Kind Kind
	Slug string
}

// Path returns the canonical URL path of the route.
func (r Route) Path() string {
	switch r.Kind {
	case KindHome:
		return "/"
	case KindLocations:
		return "/locations"
	case KindCity:
		return "/locations/" + r.Slug
	case KindService:
		return "/services/" + r.Slug
	case KindQuote:
		return "/quote"
	case KindSitemap:
		return "/sitemap.xml"
	default:
		return ""
	}
}

// Resolution is the outcome of resolving one route.
type Resolution struct {
	Route   Route
	Outcome Outcome

	City    *types.CityDetail
	Service *types.Service
	Content *types.ServiceContent
}

// Err reports ErrNotFound for unresolved routes.
func (r Resolution) Err() error {
	if r.Outcome == NotFound {
		return ErrNotFound
	}
	return nil
}

type Resolver struct {
	catalogue Catalogue
}

func New(catalogue Catalogue) *Resolver {
	return &Resolver{catalogue: catalogue}
}

// Resolve parses a URL path and resolves it. Trailing slashes are ignored;
// anything outside the route table is NotFound.
func (r *Resolver) Resolve(path string) Resolution {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return r.ResolveRoute(Route{Kind: KindHome})
	}

	parts := strings.Split(trimmed, "/")
	switch {
	case len(parts) == 1 && parts[0] == "locations":
		return r.ResolveRoute(Route{Kind: KindLocations})
	case len(parts) == 1 && parts[0] == "quote":
		return r.ResolveRoute(Route{Kind: KindQuote})
	case len(parts) == 1 && parts[0] == "sitemap.xml":
		return r.ResolveRoute(Route{Kind: KindSitemap})
	case len(parts) == 2 && parts[0] == "locations":
		return r.ResolveCity(parts[1])
	case len(parts) == 2 && parts[0] == "services":
		return r.ResolveService(parts[1])
	}
	return notFound(Route{Kind: KindUnknown, Slug: trimmed})
}

// ResolveRoute resolves an already-parsed route.
func (r *Resolver) ResolveRoute(route Route) Resolution {
	switch route.Kind {
	case KindCity:
		return r.ResolveCity(route.Slug)
	case KindService:
		return r.ResolveService(route.Slug)
	case KindHome, KindLocations, KindQuote, KindSitemap:
		return Resolution{Route: Route{Kind: route.Kind}, Outcome: Resolved}
	default:
		return notFound(route)
	}
}

// ResolveCity resolves /locations/{slug}.
func (r *Resolver) ResolveCity(slug string) Resolution {
	route := Route{Kind: KindCity, Slug: slug}
	city, ok := r.catalogue.CityBySlug(slug)
	if !ok {
		return notFound(route)
	}
	return Resolution{
		Route:   route,
		Outcome: Resolved,
		City: &types.CityDetail{
			City:         city,
			ImplantData:  r.catalogue.RegionImplantData(city.Region),
			Demographics: r.catalogue.PatientDemographics(city.Region),
			Nearby:       r.catalogue.NearbyCities(slug),
		},
	}
}

// ResolveService resolves /services/{slug}. Both the service entry and its
// content-table entry must exist.
func (r *Resolver) ResolveService(slug string) Resolution {
	route := Route{Kind: KindService, Slug: slug}
	svc, ok := r.catalogue.ServiceBySlug(slug)
	if !ok {
		return notFound(route)
	}
	content, ok := r.catalogue.ServiceContent(slug)
	if !ok {
		return notFound(route)
	}
	return Resolution{Route: route, Outcome: Resolved, Service: &svc, Content: &content}
}

// Routes enumerates every resolvable page: home, locations, quote, then each
// service and each city in dataset order.
func (r *Resolver) Routes() []Route {
	services := r.catalogue.ServiceSlugs()
	cities := r.catalogue.AllCitySlugs()
	routes := make([]Route, 0, 3+len(services)+len(cities))
	routes = append(routes,
		Route{Kind: KindHome},
		Route{Kind: KindLocations},
		Route{Kind: KindQuote},
	)
	for _, s := range services {
		routes = append(routes, Route{Kind: KindService, Slug: s})
	}
	for _, c := range cities {
		routes = append(routes, Route{Kind: KindCity, Slug: c})
	}
	return routes
}

func notFound(route Route) Resolution {
	return Resolution{Route: route, Outcome: NotFound}
}
