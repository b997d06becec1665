package pages

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/uk-dental-implants/app/observability/metrics"
	"github.com/FACorreiaa/uk-dental-implants/internal/render"
	"github.com/FACorreiaa/uk-dental-implants/internal/resolver"
	"github.com/FACorreiaa/uk-dental-implants/internal/types"
)

type Resolver interface {
	Resolve(path string) resolver.Resolution
}

type Renderer interface {
	Render(res resolver.Resolution) (*types.Page, error)
	RenderQuote(q render.QuoteForm) (*types.Page, error)
}

// QuoteContext looks up the display names a quote link may carry.
type QuoteContext interface {
	CityBySlug(slug string) (types.City, bool)
	ServiceBySlug(slug string) (types.Service, bool)
}

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	Page(ctx context.Context, path string) (*types.Page, error)
	QuotePage(ctx context.Context, citySlug, serviceSlug string) (*types.Page, error)
}

type ServiceImpl struct {
	logger   *slog.Logger
	resolver Resolver
	renderer Renderer
	quote    QuoteContext
	cache    *cache.Cache
	metrics  *metrics.AppMetrics
}

// NewServiceImpl wires the page pipeline. Rendered pages of resolved routes
// are cached for ttl; NotFound pages never are.
func NewServiceImpl(res Resolver, renderer Renderer, quote QuoteContext, ttl, cleanup time.Duration,
	logger *slog.Logger, m *metrics.AppMetrics) *ServiceImpl {
	return &ServiceImpl{
		logger:   logger,
		resolver: res,
		renderer: renderer,
		quote:    quote,
		cache:    cache.New(ttl, cleanup),
		metrics:  m,
	}
}

// Page resolves and renders path. A NotFound resolution is not an error: it
// yields the 404 page.
func (s *ServiceImpl) Page(ctx context.Context, path string) (*types.Page, error) {
	ctx, span := otel.Tracer("PagesService").Start(ctx, "Page", trace.WithAttributes(
		attribute.String("page.path", path),
	))
	defer span.End()

	res := s.resolver.Resolve(path)
	kind := attribute.String("kind", res.Route.Kind.String())
	span.SetAttributes(kind, attribute.String("page.outcome", res.Outcome.String()))

	key := res.Route.Path()
	if res.Outcome == resolver.Resolved {
		if cached, ok := s.cache.Get(key); ok {
			s.metrics.PageCacheHitsTotal.Add(ctx, 1, metric.WithAttributes(kind))
			span.SetAttributes(attribute.Bool("page.cache_hit", true))
			return cached.(*types.Page), nil
		}
	}

	start := time.Now()
	page, err := s.renderer.Render(res)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to render page",
			slog.String("path", path),
			slog.String("kind", res.Route.Kind.String()),
			slog.Any("error", err),
		)
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		return nil, fmt.Errorf("failed to render %s: %w", path, err)
	}
	s.metrics.PageRenderDurationSeconds.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(kind))

	if res.Outcome == resolver.NotFound {
		s.logger.DebugContext(ctx, "Page not found", slog.String("path", path))
		s.metrics.PagesNotFoundTotal.Add(ctx, 1, metric.WithAttributes(kind))
		return page, nil
	}

	s.metrics.PagesRenderedTotal.Add(ctx, 1, metric.WithAttributes(kind))
	s.cache.Set(key, page, cache.DefaultExpiration)
	return page, nil
}

// QuotePage renders the quote form, pre-filled with the display names of the
// city and service slugs when they exist. Unknown slugs are ignored.
func (s *ServiceImpl) QuotePage(ctx context.Context, citySlug, serviceSlug string) (*types.Page, error) {
	if citySlug == "" && serviceSlug == "" {
		return s.Page(ctx, "/quote")
	}

	_, span := otel.Tracer("PagesService").Start(ctx, "QuotePage", trace.WithAttributes(
		attribute.String("quote.city", citySlug),
		attribute.String("quote.service", serviceSlug),
	))
	defer span.End()

	var form types.LeadForm
	if c, ok := s.quote.CityBySlug(citySlug); ok {
		form.CityName = c.Name
	}
	if svc, ok := s.quote.ServiceBySlug(serviceSlug); ok {
		form.ServiceName = svc.Title
	}

	page, err := s.renderer.RenderQuote(render.QuoteForm{Values: form})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		return nil, fmt.Errorf("failed to render quote page: %w", err)
	}
	return page, nil
}

// Purge drops every cached page.
func (s *ServiceImpl) Purge() {
	s.cache.Flush()
}
