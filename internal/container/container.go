package container

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/FACorreiaa/uk-dental-implants/app/observability/metrics"
	"github.com/FACorreiaa/uk-dental-implants/config"
	"github.com/FACorreiaa/uk-dental-implants/internal/api/city"
	"github.com/FACorreiaa/uk-dental-implants/internal/api/lead"
	"github.com/FACorreiaa/uk-dental-implants/internal/api/pages"
	"github.com/FACorreiaa/uk-dental-implants/internal/dataset"
	"github.com/FACorreiaa/uk-dental-implants/internal/render"
	"github.com/FACorreiaa/uk-dental-implants/internal/resolver"
	"github.com/FACorreiaa/uk-dental-implants/internal/router"
)

// Container holds all application dependencies
type Container struct {
	Config   config.Config
	Logger   *slog.Logger
	Dataset  *dataset.Dataset
	Resolver *resolver.Resolver
	Renderer *render.Renderer

	PagesService *pages.ServiceImpl
	PagesHandler *pages.Handler
	LeadHandler  *lead.Handler
	CityHandler  *city.Handler
}

type Option func(*options)

type options struct {
	submitter  lead.Submitter
	renderOpts []render.Option
}

// WithSubmitter replaces the simulated lead submitter.
func WithSubmitter(s lead.Submitter) Option {
	return func(o *options) { o.submitter = s }
}

// WithRenderOptions forwards options to the page renderer.
func WithRenderOptions(opts ...render.Option) Option {
	return func(o *options) { o.renderOpts = append(o.renderOpts, opts...) }
}

// NewContainer loads the embedded dataset and wires every service and handler.
func NewContainer(cfg config.Config, logger *slog.Logger, opts ...Option) (*Container, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.submitter == nil {
		o.submitter = lead.NewSimulatedSubmitter(cfg.Lead.SubmitDelay)
	}

	data, err := dataset.Load()
	if err != nil {
		logger.Error("Failed to load dataset", slog.Any("error", err))
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	renderer, err := render.New(data, render.SiteInfo{
		Name:    cfg.Site.Name,
		BaseURL: cfg.Site.BaseURL,
		Phone:   cfg.Site.Phone,
		Email:   cfg.Site.Email,
	}, o.renderOpts...)
	if err != nil {
		logger.Error("Failed to parse templates", slog.Any("error", err))
		return nil, fmt.Errorf("failed to build renderer: %w", err)
	}

	metrics.InitAppMetrics()
	m := metrics.Get()
	res := resolver.New(data)

	pagesService := pages.NewServiceImpl(res, renderer, data, cfg.Cache.TTL, cfg.Cache.Cleanup, logger, m)
	pagesHandler := pages.NewPagesHandler(pagesService, logger)

	leadService := lead.NewServiceImpl(o.submitter, logger, m)
	leadHandler := lead.NewLeadHandler(leadService, renderer, logger)

	cityService := city.NewServiceImpl(data, res, logger)
	cityHandler := city.NewCityHandler(cityService, logger)

	return &Container{
		Config:       cfg,
		Logger:       logger,
		Dataset:      data,
		Resolver:     res,
		Renderer:     renderer,
		PagesService: pagesService,
		PagesHandler: pagesHandler,
		LeadHandler:  leadHandler,
		CityHandler:  cityHandler,
	}, nil
}

// Router returns the application handler with every route mounted.
func (c *Container) Router() http.Handler {
	return router.SetupRouter(&router.Config{
		Logger:         c.Logger,
		PagesHandler:   c.PagesHandler,
		LeadHandler:    c.LeadHandler,
		CityHandler:    c.CityHandler,
		AllowedOrigins: c.Config.CORS.AllowedOrigins,
		Timeout:        c.Config.Server.Timeout,
		LeadRateLimit:  c.Config.Lead.RateLimit,
		LeadRateWindow: c.Config.Lead.RateWindow,
	})
}

// Close releases all resources held by the container
func (c *Container) Close() {
	c.PagesService.Purge()
}
