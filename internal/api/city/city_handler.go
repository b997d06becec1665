package city

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/uk-dental-implants/internal/api"
	"github.com/FACorreiaa/uk-dental-implants/internal/resolver"
	"github.com/FACorreiaa/uk-dental-implants/internal/types"
)

type Handler struct {
	logger  *slog.Logger
	service Service
}

func NewCityHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// ListCities handles GET /api/v1/cities?region={name}&tier={1-4}
func (h *Handler) ListCities(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("CityHandler").Start(r.Context(), "ListCities")
	defer span.End()

	l := h.logger.With(slog.String("method", "ListCities"))

	q := r.URL.Query()
	f := Filter{Region: types.Region(q.Get("region"))}
	if raw := q.Get("tier"); raw != "" {
		tier, err := strconv.Atoi(raw)
		if err != nil {
			l.WarnContext(ctx, "Invalid tier parameter", slog.String("tier", raw))
			span.SetStatus(codes.Error, "invalid tier")
			api.ErrorResponse(w, r, http.StatusBadRequest, "tier must be an integer between 1 and 4")
			return
		}
		f.Tier = tier
	}

	cities, err := h.service.ListCities(ctx, f)
	if err != nil {
		if errors.Is(err, ErrInvalidTier) {
			api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
			return
		}
		l.ErrorContext(ctx, "Failed to list cities", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to list cities")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, api.NewListResponse(cities))
	span.SetStatus(codes.Ok, "Cities returned successfully")
}

// GetCity handles GET /api/v1/cities/{slug}
func (h *Handler) GetCity(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("CityHandler").Start(r.Context(), "GetCity")
	defer span.End()

	slug := chi.URLParam(r, "slug")
	city, err := h.service.GetCity(ctx, slug)
	if err != nil {
		if errors.Is(err, resolver.ErrNotFound) {
			span.SetStatus(codes.Error, "city not found")
			api.ErrorResponse(w, r, http.StatusNotFound, "city not found")
			return
		}
		h.logger.ErrorContext(ctx, "Failed to get city", slog.String("slug", slug), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to get city")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, city)
	span.SetStatus(codes.Ok, "City returned successfully")
}

// ListRegions handles GET /api/v1/regions
func (h *Handler) ListRegions(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("CityHandler").Start(r.Context(), "ListRegions")
	defer span.End()

	api.WriteJSONResponse(w, r, http.StatusOK, api.NewListResponse(h.service.ListRegions(ctx)))
}

// ListServices handles GET /api/v1/services
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("CityHandler").Start(r.Context(), "ListServices")
	defer span.End()

	api.WriteJSONResponse(w, r, http.StatusOK, api.NewListResponse(h.service.ListServices(ctx)))
}
