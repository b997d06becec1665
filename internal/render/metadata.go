package render

import (
	"fmt"
	"strings"

	"github.com/FACorreiaa/uk-dental-implants/internal/resolver"
	"github.com/FACorreiaa/uk-dental-implants/internal/types"
)

const (
	homeTitle       = "UK Dental Implants | Compare Prices From Local Specialists"
	homeDescription = "Get free quotes for dental implants from specialist UK dentists. Compare prices for single tooth, All-on-4, and full mouth implants. 0% finance available."
)

var homeKeywords = []string{
	"dental implants",
	"tooth implant",
	"All-on-4",
	"full mouth implants",
	"dental implant cost UK",
	"implant dentures",
}

func HomeMetadata() types.Metadata {
	return types.Metadata{
		Title:       homeTitle,
		Description: homeDescription,
		Keywords:    append([]string(nil), homeKeywords...),
	}
}

func LocationsMetadata() types.Metadata {
	return types.Metadata{
		Title:       "Dental Implant Specialists Near You | All UK Locations",
		Description: "Find specialist dental implant dentists across the UK. Get free consultations in your local area with 0% finance available.",
	}
}

func QuoteMetadata() types.Metadata {
	return types.Metadata{
		Title:       "Get Free Dental Implant Consultation | No Obligation",
		Description: "Get a free dental implant consultation from specialist UK dentists. Compare prices and find the best treatment for your missing teeth.",
	}
}

// CityMetadata builds the title, description and keywords of a city page.
func CityMetadata(city types.City) types.Metadata {
	name := city.Name
	return types.Metadata{
		Title: fmt.Sprintf("Dental Implants %s | From £1,800 Per Tooth", name),
		Description: fmt.Sprintf(
			"Get dental implants in %s from £1,800. Compare prices from specialist implant dentists in %s. Free CT scan, 0%% finance. Book your consultation.",
			name, city.Region,
		),
		Keywords: []string{
			"dental implants " + name,
			"tooth implant " + name,
			"All-on-4 " + name,
			"implant dentist " + name,
			"dental implant cost " + name,
			name + " implants",
		},
	}
}

// ServiceMetadata builds the title, description and keywords of a service page.
func ServiceMetadata(svc types.Service) types.Metadata {
	kw := svc.Keyword
	return types.Metadata{
		Title: fmt.Sprintf("%s UK | Free Consultation & 0%% Finance", svc.Title),
		Description: fmt.Sprintf(
			"Get %s from specialist UK dentists. Compare prices, find local providers, and book your free consultation today.",
			strings.ToLower(kw),
		),
		Keywords: []string{
			kw,
			kw + " UK",
			kw + " cost",
			kw + " near me",
			"best " + kw,
			kw + " price",
		},
	}
}

func notFoundMetadata(kind resolver.Kind) types.Metadata {
	switch kind {
	case resolver.KindCity:
		return types.Metadata{Title: "City Not Found"}
	case resolver.KindService:
		return types.Metadata{Title: "Service Not Found"}
	default:
		return types.Metadata{Title: "Page Not Found"}
	}
}
