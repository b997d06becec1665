package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/FACorreiaa/uk-dental-implants/internal/container"
)

// setupBenchmarkContainer wires the application once per benchmark
func setupBenchmarkContainer(b *testing.B) *container.Container {
	b.Helper()
	cfg := e2eConfig()
	cfg.Server.Timeout = 0
	c, err := container.NewContainer(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		b.Fatal(err)
	}
	return c
}

func benchmarkRoute(b *testing.B, path string) {
	c := setupBenchmarkContainer(b)
	router := c.Router()

	b.ReportAllocs()

	for b.Loop() {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}
}

// BenchmarkHomePage benchmarks the cached home page through the full router
func BenchmarkHomePage(b *testing.B) {
	benchmarkRoute(b, "/")
}

// BenchmarkCityPage benchmarks a cached city page through the full router
func BenchmarkCityPage(b *testing.B) {
	benchmarkRoute(b, "/locations/london")
}

// BenchmarkNotFound benchmarks the uncached 404 path
func BenchmarkNotFound(b *testing.B) {
	benchmarkRoute(b, "/locations/atlantis")
}

// BenchmarkCitiesAPI benchmarks the JSON catalogue listing
func BenchmarkCitiesAPI(b *testing.B) {
	benchmarkRoute(b, "/api/v1/cities?tier=4")
}

// BenchmarkRenderCityUncached benchmarks resolution plus template execution
func BenchmarkRenderCityUncached(b *testing.B) {
	c := setupBenchmarkContainer(b)

	b.ReportAllocs()

	for b.Loop() {
		if _, err := c.Renderer.Render(c.Resolver.Resolve("/locations/london")); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRenderSitemap benchmarks building the full sitemap document
func BenchmarkRenderSitemap(b *testing.B) {
	c := setupBenchmarkContainer(b)

	b.ReportAllocs()

	for b.Loop() {
		if _, err := c.Renderer.Sitemap(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPageServiceCached benchmarks the page service cache hit path
func BenchmarkPageServiceCached(b *testing.B) {
	c := setupBenchmarkContainer(b)
	ctx := context.Background()
	if _, err := c.PagesService.Page(ctx, "/services/all-on-4"); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()

	for b.Loop() {
		if _, err := c.PagesService.Page(ctx, "/services/all-on-4"); err != nil {
			b.Fatal(err)
		}
	}
}
