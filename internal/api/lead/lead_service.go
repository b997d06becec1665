package lead

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/uk-dental-implants/app/observability/metrics"
	"github.com/FACorreiaa/uk-dental-implants/internal/types"
)

// ErrMissingFields matches any *MissingFieldsError via errors.Is.
var ErrMissingFields = errors.New("missing required fields")

// RequiredFields lists the form fields that must be non-blank, in display
// order.
var RequiredFields = []string{"name", "email", "phone", "postcode"}

// MissingFieldsError names the required fields that were blank.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingFields, strings.Join(e.Fields, ", "))
}

func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrMissingFields
}

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	SubmitLead(ctx context.Context, form types.LeadForm) (*types.LeadAck, error)
}

type ServiceImpl struct {
	logger    *slog.Logger
	submitter Submitter
	metrics   *metrics.AppMetrics
}

func NewServiceImpl(submitter Submitter, logger *slog.Logger, m *metrics.AppMetrics) *ServiceImpl {
	return &ServiceImpl{
		logger:    logger,
		submitter: submitter,
		metrics:   m,
	}
}

// SubmitLead trims the form, checks that the required fields are present and
// hands it to the submitter. Only presence is checked; email and phone
// formats are left to the submitter.
func (s *ServiceImpl) SubmitLead(ctx context.Context, form types.LeadForm) (*types.LeadAck, error) {
	ctx, span := otel.Tracer("LeadService").Start(ctx, "SubmitLead", trace.WithAttributes(
		attribute.String("lead.city", form.CityName),
		attribute.String("lead.service", form.ServiceName),
		attribute.String("lead.treatment", form.TreatmentType),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "SubmitLead"))

	form = Normalize(form)
	if missing := MissingFields(form); len(missing) > 0 {
		err := &MissingFieldsError{Fields: missing}
		l.InfoContext(ctx, "Lead rejected", slog.Any("missing", missing))
		span.SetStatus(codes.Error, "missing required fields")
		s.record(ctx, "missing_fields")
		return nil, err
	}

	ack, err := s.submitter.Submit(ctx, form)
	if err != nil {
		l.ErrorContext(ctx, "Lead submission failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "submission failed")
		s.record(ctx, "failed")
		return nil, fmt.Errorf("failed to submit lead: %w", err)
	}

	l.InfoContext(ctx, "Lead accepted",
		slog.String("lead_id", ack.ID.String()),
		slog.String("city", form.CityName),
		slog.String("service", form.ServiceName),
	)
	span.SetAttributes(attribute.String("lead.id", ack.ID.String()))
	span.SetStatus(codes.Ok, "Lead accepted")
	s.record(ctx, "accepted")
	return ack, nil
}

func (s *ServiceImpl) record(ctx context.Context, outcome string) {
	s.metrics.LeadSubmissionsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// Normalize trims surrounding whitespace from every field.
func Normalize(form types.LeadForm) types.LeadForm {
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	form.Phone = strings.TrimSpace(form.Phone)
	form.Postcode = strings.TrimSpace(form.Postcode)
	form.TreatmentType = strings.TrimSpace(form.TreatmentType)
	form.MissingTeeth = strings.TrimSpace(form.MissingTeeth)
	form.Message = strings.TrimSpace(form.Message)
	form.CityName = strings.TrimSpace(form.CityName)
	form.ServiceName = strings.TrimSpace(form.ServiceName)
	return form
}

// MissingFields returns the blank required fields in RequiredFields order.
func MissingFields(form types.LeadForm) []string {
	values := map[string]string{
		"name":     form.Name,
		"email":    form.Email,
		"phone":    form.Phone,
		"postcode": form.Postcode,
	}
	var missing []string
	for _, f := range RequiredFields {
		if strings.TrimSpace(values[f]) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}
