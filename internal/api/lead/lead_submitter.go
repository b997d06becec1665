package lead

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/FACorreiaa/uk-dental-implants/internal/types"
)

// DefaultSubmitDelay matches the latency of the simulated backend.
const DefaultSubmitDelay = 1500 * time.Millisecond

var _ Submitter = (*SimulatedSubmitter)(nil)

// Submitter delivers a validated lead to whatever backend receives it.
type Submitter interface {
	Submit(ctx context.Context, form types.LeadForm) (*types.LeadAck, error)
}

// SimulatedSubmitter waits a fixed delay and then accepts every lead. There
// is no de-duplication: submitting the same form twice yields two acks.
type SimulatedSubmitter struct {
	delay time.Duration
	now   func() time.Time
}

func NewSimulatedSubmitter(delay time.Duration) *SimulatedSubmitter {
	return &SimulatedSubmitter{delay: delay, now: time.Now}
}

// Submit blocks for the configured delay. It returns ctx.Err() if the
// context ends first.
func (s *SimulatedSubmitter) Submit(ctx context.Context, form types.LeadForm) (*types.LeadAck, error) {
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	return &types.LeadAck{
		ID:         uuid.New(),
		ReceivedAt: s.now().UTC(),
		Message:    ConfirmationMessage(form.CityName),
	}, nil
}

// ConfirmationMessage is the text shown once a lead is accepted.
func ConfirmationMessage(cityName string) string {
	specialist := "dental implant specialist"
	if cityName != "" {
		specialist = cityName + " " + specialist
	}
	return "Your consultation request has been received. A " + specialist +
		" will contact you within 24 hours to discuss your treatment options."
}
