// Package site exports the whole site as static files.
package site

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/uk-dental-implants/internal/resolver"
	"github.com/FACorreiaa/uk-dental-implants/internal/types"
)

type RouteSource interface {
	Routes() []resolver.Route
	ResolveRoute(route resolver.Route) resolver.Resolution
}

type Renderer interface {
	Render(res resolver.Resolution) (*types.Page, error)
	RenderNotFound(route resolver.Route) (*types.Page, error)
}

// Report summarises one export or check run.
type Report struct {
	Pages    int
	Bytes    int64
	Duration time.Duration
}

type Exporter struct {
	logger   *slog.Logger
	routes   RouteSource
	renderer Renderer
	workers  int
}

func NewExporter(routes RouteSource, renderer Renderer, workers int, logger *slog.Logger) *Exporter {
	return &Exporter{
		logger:   logger,
		routes:   routes,
		renderer: renderer,
		workers:  max(workers, 1),
	}
}

// Export renders every route plus the sitemap and the 404 page under outDir.
// Page paths map to <path>/index.html. The first failure cancels the rest.
func (e *Exporter) Export(ctx context.Context, outDir string) (*Report, error) {
	ctx, span := otel.Tracer("SiteExporter").Start(ctx, "Export")
	defer span.End()

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	start := time.Now()
	var pages, written atomic.Int64
	write := func(page *types.Page, file string) error {
		target := filepath.Join(outDir, file)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("failed to create dir for %s: %w", page.Path, err)
		}
		if err := os.WriteFile(target, page.Body, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}
		pages.Add(1)
		written.Add(int64(len(page.Body)))
		return nil
	}

	err := e.each(ctx, func(page *types.Page) error {
		return write(page, OutputFile(page.Path))
	})
	if err == nil {
		var page *types.Page
		page, err = e.renderer.RenderNotFound(resolver.Route{Kind: resolver.KindUnknown, Slug: "404"})
		if err == nil {
			err = write(page, "404.html")
		}
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "export failed")
		return nil, err
	}

	report := &Report{Pages: int(pages.Load()), Bytes: written.Load(), Duration: time.Since(start)}
	span.SetAttributes(attribute.Int("export.pages", report.Pages), attribute.Int64("export.bytes", report.Bytes))
	e.logger.InfoContext(ctx, "Site exported",
		slog.String("out", outDir),
		slog.Int("pages", report.Pages),
		slog.Int64("bytes", report.Bytes),
		slog.Duration("duration", report.Duration),
	)
	return report, nil
}

// Check renders every route without writing anything and fails on the first
// route that does not resolve or render with status 200.
func (e *Exporter) Check(ctx context.Context) (*Report, error) {
	start := time.Now()
	var pages, size atomic.Int64
	err := e.each(ctx, func(page *types.Page) error {
		pages.Add(1)
		size.Add(int64(len(page.Body)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Report{Pages: int(pages.Load()), Bytes: size.Load(), Duration: time.Since(start)}, nil
}

// each renders the enumerated routes and the sitemap on a bounded worker pool.
func (e *Exporter) each(ctx context.Context, fn func(*types.Page) error) error {
	routes := append(e.routes.Routes(), resolver.Route{Kind: resolver.KindSitemap})

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for _, route := range routes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := e.routes.ResolveRoute(route)
			if err := res.Err(); err != nil {
				return fmt.Errorf("route %s %q: %w", route.Kind, route.Slug, err)
			}
			page, err := e.renderer.Render(res)
			if err != nil {
				return err
			}
			if page.Status != http.StatusOK {
				return fmt.Errorf("route %s rendered status %d", page.Path, page.Status)
			}
			return fn(page)
		})
	}
	return g.Wait()
}

// OutputFile maps a page path onto its file under the export root.
func OutputFile(path string) string {
	trimmed := strings.Trim(path, "/")
	switch {
	case trimmed == "":
		return "index.html"
	case filepath.Ext(trimmed) != "":
		return filepath.FromSlash(trimmed)
	default:
		return filepath.Join(filepath.FromSlash(trimmed), "index.html")
	}
}
