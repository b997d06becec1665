package city

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/uk-dental-implants/internal/resolver"
	"github.com/FACorreiaa/uk-dental-implants/internal/types"
)

var ErrInvalidTier = errors.New("tier must be between 1 and 4")

// Catalogue is the read side of the dataset the catalogue API serves.
type Catalogue interface {
	Cities() []types.City
	CitiesByRegion(region types.Region) []types.City
	CitiesByTier(tier int) []types.City
	Regions() []types.Region
	Services() []types.Service
}

type CityResolver interface {
	ResolveCity(slug string) resolver.Resolution
}

// Filter narrows ListCities. Zero values match everything.
type Filter struct {
	Region types.Region
	Tier   int
}

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	ListCities(ctx context.Context, f Filter) ([]types.City, error)
	GetCity(ctx context.Context, slug string) (*types.CityDetail, error)
	ListRegions(ctx context.Context) []types.RegionSummary
	ListServices(ctx context.Context) []types.Service
}

type ServiceImpl struct {
	logger    *slog.Logger
	catalogue Catalogue
	resolver  CityResolver
}

func NewServiceImpl(catalogue Catalogue, res CityResolver, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:    logger,
		catalogue: catalogue,
		resolver:  res,
	}
}

// ListCities returns the cities matching every set field of f, in dataset
// order. An unknown region matches nothing.
func (s *ServiceImpl) ListCities(ctx context.Context, f Filter) ([]types.City, error) {
	_, span := otel.Tracer("CityService").Start(ctx, "ListCities", trace.WithAttributes(
		attribute.String("filter.region", string(f.Region)),
		attribute.Int("filter.tier", f.Tier),
	))
	defer span.End()

	if f.Tier != 0 && (f.Tier < 1 || f.Tier > 4) {
		span.SetStatus(codes.Error, "invalid tier")
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTier, f.Tier)
	}

	var cities []types.City
	switch {
	case f.Region != "":
		cities = s.catalogue.CitiesByRegion(f.Region)
	case f.Tier != 0:
		cities = s.catalogue.CitiesByTier(f.Tier)
	default:
		cities = s.catalogue.Cities()
	}

	if f.Region != "" && f.Tier != 0 {
		filtered := cities[:0]
		for _, c := range cities {
			if c.Tier == f.Tier {
				filtered = append(filtered, c)
			}
		}
		cities = filtered
	}

	span.SetAttributes(attribute.Int("cities.count", len(cities)))
	span.SetStatus(codes.Ok, "cities listed")
	return cities, nil
}

// GetCity returns the city with its region prose and nearby cities, or
// resolver.ErrNotFound.
func (s *ServiceImpl) GetCity(ctx context.Context, slug string) (*types.CityDetail, error) {
	ctx, span := otel.Tracer("CityService").Start(ctx, "GetCity", trace.WithAttributes(
		attribute.String("city.slug", slug),
	))
	defer span.End()

	res := s.resolver.ResolveCity(slug)
	if err := res.Err(); err != nil {
		s.logger.DebugContext(ctx, "City not found", slog.String("slug", slug))
		span.SetStatus(codes.Error, "city not found")
		return nil, fmt.Errorf("city %q: %w", slug, err)
	}
	return res.City, nil
}

// ListRegions returns every region with its city count, in first-appearance
// order.
func (s *ServiceImpl) ListRegions(ctx context.Context) []types.RegionSummary {
	_, span := otel.Tracer("CityService").Start(ctx, "ListRegions")
	defer span.End()

	regions := s.catalogue.Regions()
	out := make([]types.RegionSummary, 0, len(regions))
	for _, r := range regions {
		out = append(out, types.RegionSummary{Name: r, Cities: len(s.catalogue.CitiesByRegion(r))})
	}
	return out
}

func (s *ServiceImpl) ListServices(ctx context.Context) []types.Service {
	_, span := otel.Tracer("CityService").Start(ctx, "ListServices")
	defer span.End()
	return s.catalogue.Services()
}
