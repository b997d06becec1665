package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	appLogger "github.com/FACorreiaa/uk-dental-implants/app/logger"
	appMiddleware "github.com/FACorreiaa/uk-dental-implants/app/middleware"
	"github.com/FACorreiaa/uk-dental-implants/internal/api"
	"github.com/FACorreiaa/uk-dental-implants/internal/api/city"
	"github.com/FACorreiaa/uk-dental-implants/internal/api/lead"
	"github.com/FACorreiaa/uk-dental-implants/internal/api/pages"
)

const pageMaxAge = 300

// Config contains dependencies needed for the router setup
type Config struct {
	Logger         *slog.Logger
	PagesHandler   *pages.Handler
	LeadHandler    *lead.Handler
	CityHandler    *city.Handler
	AllowedOrigins []string
	Timeout        time.Duration
	LeadRateLimit  int
	LeadRateWindow time.Duration
}

// SetupRouter builds the full application handler: server-wide middleware,
// the HTML site, and the versioned JSON API.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(appLogger.StructuredLogger(cfg.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(middleware.GetHead)
	if cfg.Timeout > 0 {
		r.Use(middleware.Timeout(cfg.Timeout))
	}
	r.Use(middleware.Compress(5, "text/html", "application/xml", "application/json"))
	r.Use(appMiddleware.SecurityHeaders)
	r.Use(appMiddleware.Trace("http.server"))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	// HTML site
	r.Group(func(r chi.Router) {
		r.Use(appMiddleware.CacheControl(pageMaxAge))

		r.Get("/", cfg.PagesHandler.ServePage)
		r.Get("/locations", cfg.PagesHandler.ServePage)
		r.Get("/locations/{slug}", cfg.PagesHandler.ServePage)
		r.Get("/services/{slug}", cfg.PagesHandler.ServePage)
		r.Get("/sitemap.xml", cfg.PagesHandler.ServePage)
	})
	r.Get("/quote", cfg.PagesHandler.ServeQuote)
	r.With(leadRateLimit(cfg, pageLimited)).Post("/quote", cfg.LeadHandler.SubmitQuoteForm)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
			ExposedHeaders: []string{"X-Request-Id"},
			MaxAge:         300,
		}))

		r.Get("/cities", cfg.CityHandler.ListCities)
		r.Get("/cities/{slug}", cfg.CityHandler.GetCity)
		r.Get("/regions", cfg.CityHandler.ListRegions)
		r.Get("/services", cfg.CityHandler.ListServices)

		r.Get("/leads/options", cfg.LeadHandler.GetFormOptions)
		r.With(leadRateLimit(cfg, apiLimited)).Post("/leads", cfg.LeadHandler.CreateLead)

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			api.ErrorResponse(w, r, http.StatusNotFound, "resource not found")
		})
	})

	r.NotFound(cfg.PagesHandler.ServePage)

	return r
}

// leadRateLimit caps lead submissions per client IP. A non-positive limit
// disables it.
func leadRateLimit(cfg *Config, onLimit http.HandlerFunc) func(http.Handler) http.Handler {
	if cfg.LeadRateLimit <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(cfg.LeadRateLimit, cfg.LeadRateWindow,
		httprate.WithKeyByIP(),
		httprate.WithLimitHandler(onLimit),
	)
}

func pageLimited(w http.ResponseWriter, _ *http.Request) {
	http.Error(w, "Too many requests, please try again shortly.", http.StatusTooManyRequests)
}

func apiLimited(w http.ResponseWriter, r *http.Request) {
	api.ErrorResponse(w, r, http.StatusTooManyRequests, "too many lead submissions")
}
