package site

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/FACorreiaa/uk-dental-implants/internal/dataset"
	"github.com/FACorreiaa/uk-dental-implants/internal/render"
	"github.com/FACorreiaa/uk-dental-implants/internal/resolver"
	"github.com/FACorreiaa/uk-dental-implants/internal/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var testLogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

func newExporter(t *testing.T, workers int) (*Exporter, *dataset.Dataset) {
	t.Helper()
	d, err := dataset.Load()
	require.NoError(t, err)
	r, err := render.New(d, render.SiteInfo{BaseURL: "https://example.test"})
	require.NoError(t, err)
	return NewExporter(resolver.New(d), r, workers, testLogger), d
}

func TestOutputFile(t *testing.T) {
	tests := map[string]string{
		"/":                  "index.html",
		"/locations":         filepath.Join("locations", "index.html"),
		"/locations/leeds":   filepath.Join("locations", "leeds", "index.html"),
		"/services/all-on-4": filepath.Join("services", "all-on-4", "index.html"),
		"/sitemap.xml":       "sitemap.xml",
	}
	for in, want := range tests {
		assert.Equal(t, want, OutputFile(in), in)
	}
}

func TestExport(t *testing.T) {
	e, d := newExporter(t, 4)
	out := t.TempDir()

	report, err := e.Export(context.Background(), out)
	require.NoError(t, err)

	// routes + sitemap + 404
	want := 3 + len(d.Services()) + len(d.Cities()) + 2
	assert.Equal(t, want, report.Pages)
	assert.Positive(t, report.Bytes)

	for _, f := range []string{
		"index.html",
		"locations/index.html",
		"locations/london/index.html",
		"locations/belfast/index.html",
		"services/all-on-4/index.html",
		"quote/index.html",
		"sitemap.xml",
		"404.html",
	} {
		info, err := os.Stat(filepath.Join(out, filepath.FromSlash(f)))
		require.NoError(t, err, f)
		assert.Positive(t, info.Size(), f)
	}

	sitemap, err := os.ReadFile(filepath.Join(out, "sitemap.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(sitemap), "https://example.test/locations/london")

	notFound, err := os.ReadFile(filepath.Join(out, "404.html"))
	require.NoError(t, err)
	assert.Contains(t, string(notFound), "Page Not Found")
}

func TestCheck(t *testing.T) {
	e, d := newExporter(t, 1)

	report, err := e.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3+len(d.Services())+len(d.Cities())+1, report.Pages)
}

type brokenRoutes struct {
	*resolver.Resolver
}

func (b brokenRoutes) Routes() []resolver.Route {
	return append(b.Resolver.Routes(), resolver.Route{Kind: resolver.KindCity, Slug: "atlantis"})
}

func TestCheck_UnresolvableRoute(t *testing.T) {
	d, err := dataset.Load()
	require.NoError(t, err)
	r, err := render.New(d, render.SiteInfo{BaseURL: "https://example.test"})
	require.NoError(t, err)

	e := NewExporter(brokenRoutes{resolver.New(d)}, r, 4, testLogger)
	_, err = e.Check(context.Background())
	assert.ErrorIs(t, err, resolver.ErrNotFound)
}

type failingRenderer struct {
	Renderer
}

var errBoom = errors.New("boom")

func (failingRenderer) Render(resolver.Resolution) (*types.Page, error) {
	return nil, errBoom
}

func TestExport_RenderFailure(t *testing.T) {
	e, _ := newExporter(t, 2)
	e.renderer = failingRenderer{e.renderer}

	_, err := e.Export(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, errBoom)
}

func TestExport_Cancelled(t *testing.T) {
	e, _ := newExporter(t, 2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Export(ctx, t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
}
