package types

// Region is one of the declared geographic regions a city belongs to.
type Region string

// City is a single location page in the catalogue.
type City struct {
	Slug   string `json:"slug" yaml:"slug"`
	Name   string `json:"name" yaml:"name"`
	Region Region `json:"region" yaml:"region"`
	Tier   int    `json:"tier" yaml:"tier"` // 1 = largest; grouping only
}

// RegionProfile carries the prose fragments interpolated into city pages.
// Both fragments are optional, callers fall back to generic copy.
type RegionProfile struct {
	Name         Region `json:"name" yaml:"name"`
	ImplantData  string `json:"implant_data,omitempty" yaml:"implantData"`
	Demographics string `json:"demographics,omitempty" yaml:"demographics"`
}

// RegionSummary is the JSON shape returned by the regions endpoint.
type RegionSummary struct {
	Name   Region `json:"name"`
	Cities int    `json:"cities"`
}

// CityDetail is a city with the derived views a location page needs.
type CityDetail struct {
	City
	ImplantData  string `json:"implant_data"`
	Demographics string `json:"demographics"`
	Nearby       []City `json:"nearby"`
}
