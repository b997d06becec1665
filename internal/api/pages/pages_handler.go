package pages

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/uk-dental-implants/internal/api"
)

type Handler struct {
	logger  *slog.Logger
	service Service
}

func NewPagesHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// ServePage renders whatever r.URL.Path resolves to, including the 404 page.
// It is also the router's NotFound handler.
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PagesHandler").Start(r.Context(), "ServePage")
	defer span.End()

	page, err := h.service.Page(ctx, r.URL.Path)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to serve page", slog.String("path", r.URL.Path), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "page failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	api.WritePage(w, r, page)
}

// ServeQuote handles GET /quote?city={slug}&service={slug}.
func (h *Handler) ServeQuote(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PagesHandler").Start(r.Context(), "ServeQuote")
	defer span.End()

	q := r.URL.Query()
	page, err := h.service.QuotePage(ctx, q.Get("city"), q.Get("service"))
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to serve quote page", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "quote page failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	api.WritePage(w, r, page)
}
