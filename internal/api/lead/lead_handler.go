package lead

import (
	"errors"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/uk-dental-implants/internal/api"
	"github.com/FACorreiaa/uk-dental-implants/internal/render"
	"github.com/FACorreiaa/uk-dental-implants/internal/types"
)

const maxFormBytes = 64 << 10

// PageRenderer renders the HTML states of the quote form.
type PageRenderer interface {
	RenderQuote(q render.QuoteForm) (*types.Page, error)
	RenderThanks(form types.LeadForm, ack *types.LeadAck) (*types.Page, error)
}

type Handler struct {
	logger  *slog.Logger
	service Service
	pages   PageRenderer
}

func NewLeadHandler(service Service, pages PageRenderer, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
		pages:   pages,
	}
}

// SubmitQuoteForm handles POST /quote from the HTML form. Missing fields
// re-render the form with status 400; success renders the thank-you page.
func (h *Handler) SubmitQuoteForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("LeadHandler").Start(r.Context(), "SubmitQuoteForm")
	defer span.End()

	l := h.logger.With(slog.String("method", "SubmitQuoteForm"))

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		l.WarnContext(ctx, "Failed to parse quote form", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid form body")
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	form := FormFromValues(r.PostForm.Get)
	ack, err := h.service.SubmitLead(ctx, form)

	var missing *MissingFieldsError
	switch {
	case errors.As(err, &missing):
		page, rerr := h.pages.RenderQuote(render.QuoteForm{Values: Normalize(form), Missing: missing.Fields})
		if rerr != nil {
			h.renderFailed(w, r, l, rerr)
			return
		}
		span.SetStatus(codes.Error, "Missing required fields")
		api.WritePage(w, r, page)
		return
	case err != nil:
		l.ErrorContext(ctx, "Failed to submit lead", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Submission failed")
		http.Error(w, "We couldn't send your request, please try again", http.StatusInternalServerError)
		return
	}

	page, err := h.pages.RenderThanks(Normalize(form), ack)
	if err != nil {
		h.renderFailed(w, r, l, err)
		return
	}
	span.SetStatus(codes.Ok, "Lead accepted")
	api.WritePage(w, r, page)
}

// CreateLead handles POST /api/v1/leads.
func (h *Handler) CreateLead(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("LeadHandler").Start(r.Context(), "CreateLead")
	defer span.End()

	l := h.logger.With(slog.String("method", "CreateLead"))

	var form types.LeadForm
	if err := api.DecodeJSONBody(w, r, &form); err != nil {
		l.WarnContext(ctx, "Failed to decode lead body", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	ack, err := h.service.SubmitLead(ctx, form)
	var missing *MissingFieldsError
	switch {
	case errors.As(err, &missing):
		span.SetStatus(codes.Error, "Missing required fields")
		api.ErrorResponseWithDetails(w, r, http.StatusBadRequest, missing.Error(), map[string]any{
			"missing_fields": missing.Fields,
		})
		return
	case err != nil:
		l.ErrorContext(ctx, "Failed to submit lead", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Submission failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to submit lead")
		return
	}

	span.SetStatus(codes.Ok, "Lead accepted")
	api.WriteJSONResponse(w, r, http.StatusCreated, ack)
}

type optionsResponse struct {
	Treatments   []types.Option `json:"treatments"`
	MissingTeeth []types.Option `json:"missing_teeth"`
	Required     []string       `json:"required"`
}

// GetFormOptions handles GET /api/v1/leads/options.
func (h *Handler) GetFormOptions(w http.ResponseWriter, r *http.Request) {
	api.WriteJSONResponse(w, r, http.StatusOK, optionsResponse{
		Treatments:   types.TreatmentOptions,
		MissingTeeth: types.MissingTeethOptions,
		Required:     RequiredFields,
	})
}

func (h *Handler) renderFailed(w http.ResponseWriter, r *http.Request, l *slog.Logger, err error) {
	l.ErrorContext(r.Context(), "Failed to render quote page", slog.Any("error", err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// FormFromValues maps HTML form fields onto a LeadForm.
func FormFromValues(get func(string) string) types.LeadForm {
	return types.LeadForm{
		Name:          get("name"),
		Email:         get("email"),
		Phone:         get("phone"),
		Postcode:      get("postcode"),
		TreatmentType: get("treatmentType"),
		MissingTeeth:  get("missingTeeth"),
		Message:       get("message"),
		CityName:      get("cityName"),
		ServiceName:   get("serviceName"),
	}
}
