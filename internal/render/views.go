package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/FACorreiaa/uk-dental-implants/internal/types"
)

var funcMap = template.FuncMap{
	"lower": strings.ToLower,
	"tel": func(phone string) string {
		return strings.ReplaceAll(phone, " ", "")
	},
	"cityPath": func(c types.City) string {
		return "/locations/" + c.Slug
	},
	"servicePath": func(s types.Service) string {
		return "/services/" + s.Slug
	},
	"join": strings.Join,
}

type layoutView struct {
	Site      SiteInfo
	Meta      types.Metadata
	Title     string
	Canonical string
	Nav       navView
	Year      int
	Data      any
}

type navView struct {
	Services  []types.Service
	TopCities []types.City
}

type formView struct {
	Variant             string
	Values              types.LeadForm
	Missing             map[string]bool
	MissingList         []string
	TreatmentOptions    []types.Option
	MissingTeethOptions []types.Option
}

func newFormView(q QuoteForm, variant string) formView {
	missing := make(map[string]bool, len(q.Missing))
	for _, f := range q.Missing {
		missing[f] = true
	}
	return formView{
		Variant:             variant,
		Values:              q.Values,
		Missing:             missing,
		MissingList:         q.Missing,
		TreatmentOptions:    types.TreatmentOptions,
		MissingTeethOptions: types.MissingTeethOptions,
	}
}

type homeView struct {
	Tier1       []types.City
	Tier2       []types.City
	Services    []types.Service
	TotalCities int
	Form        formView
}

type tierGroup struct {
	Heading string
	Blurb   string
	Cities  []types.City
}

type regionGroup struct {
	Name  types.Region
	Count int
	Shown []types.City
	More  int
}

type locationsView struct {
	TotalCities  int
	TotalRegions int
	Tiers        []tierGroup
	Regions      []regionGroup
}

type priceRow struct {
	Type  string
	Price string
	Desc  string
}

var cityPrices = []priceRow{
	{Type: "Single Tooth Implant", Price: "£1,800 - £3,500", Desc: "One missing tooth"},
	{Type: "Implant Bridge (3 teeth)", Price: "£3,500 - £6,000", Desc: "Multiple adjacent"},
	{Type: "All-on-4 (per arch)", Price: "£12,000 - £20,000", Desc: "Full arch solution"},
	{Type: "Full Mouth (both arches)", Price: "£25,000 - £50,000", Desc: "Complete restoration"},
}

type faq struct {
	Question string
	Answer   string
}

func cityFAQs(name string) []faq {
	return []faq{
		{
			Question: fmt.Sprintf("How much do dental implants cost in %s?", name),
			Answer: fmt.Sprintf("Single tooth dental implants in %s typically cost £1,800-£3,500 including the implant, abutment and crown. "+
				"All-on-4 full arch treatment ranges from £12,000-£20,000 per arch, while full mouth restoration costs £25,000-£50,000. "+
				"Most practices offer 0%% finance options.", name),
		},
		{
			Question: "How long do dental implants last?",
			Answer: "With proper care and regular dental check-ups, dental implants can last 25 years or more, and many last a lifetime. " +
				"The titanium implant post itself is designed to be permanent, while the crown may need replacement after 15-20 years due to normal wear.",
		},
		{
			Question: fmt.Sprintf("Can I get dental implants on the NHS in %s?", name),
			Answer: fmt.Sprintf("Dental implants are rarely available on the NHS as they're considered a cosmetic treatment. "+
				"NHS funding is typically reserved for cases involving trauma, cancer reconstruction, or congenital defects. "+
				"Most patients in %s access implants through private dental care with flexible payment options.", name),
		},
		{
			Question: "Is dental implant surgery painful?",
			Answer: "Dental implant surgery is performed under local anaesthetic, so you won't feel pain during the procedure. " +
				"Most patients report less discomfort than expected during recovery, similar to a tooth extraction. " +
				"Sedation options are available for anxious patients.",
		},
	}
}

type cityView struct {
	City     types.CityDetail
	Services []types.Service
	Prices   []priceRow
	FAQs     []faq
	Form     formView
}

type serviceView struct {
	Service   types.Service
	Content   types.ServiceContent
	HeroFirst string
	HeroRest  string
	TopCities []types.City
	Form      formView
}

type quoteView struct {
	Form formView
}

type thanksView struct {
	CityName string
	Ack      *types.LeadAck
}

type notFoundView struct {
	Kind string
}
