package types

import (
	"time"

	"github.com/google/uuid"
)

// LeadForm is the consultation request collected by the quote form.
// Name, Email, Phone and Postcode are required; everything else is optional.
type LeadForm struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Postcode      string `json:"postcode"`
	TreatmentType string `json:"treatment_type,omitempty"`
	MissingTeeth  string `json:"missing_teeth,omitempty"`
	Message       string `json:"message,omitempty"`
	CityName      string `json:"city_name,omitempty"`    // display context only
	ServiceName   string `json:"service_name,omitempty"` // display context only
}

// LeadAck acknowledges a submitted lead.
type LeadAck struct {
	ID         uuid.UUID `json:"id"`
	ReceivedAt time.Time `json:"received_at"`
	Message    string    `json:"message"`
}

// Option is a value/label pair rendered as a select option.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var TreatmentOptions = []Option{
	{Value: "single", Label: "Single Tooth Implant"},
	{Value: "multiple", Label: "Multiple Implants"},
	{Value: "all-on-4", Label: "All-on-4 (Full Arch)"},
	{Value: "all-on-6", Label: "All-on-6 (Full Arch)"},
	{Value: "full-mouth", Label: "Full Mouth Implants"},
	{Value: "implant-dentures", Label: "Implant Dentures"},
	{Value: "not-sure", Label: "Not Sure - Need Advice"},
}

var MissingTeethOptions = []Option{
	{Value: "1", Label: "1 tooth"},
	{Value: "2-3", Label: "2-3 teeth"},
	{Value: "4-6", Label: "4-6 teeth"},
	{Value: "upper-arch", Label: "Full upper arch"},
	{Value: "lower-arch", Label: "Full lower arch"},
	{Value: "both-arches", Label: "Both arches (full mouth)"},
	{Value: "dentures", Label: "Currently wear dentures"},
}
