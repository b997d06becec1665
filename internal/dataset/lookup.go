package dataset

import "github.com/FACorreiaa/uk-dental-implants/internal/types"

// CityBySlug returns the city with the given slug, or false when none exists.
func (d *Dataset) CityBySlug(slug string) (types.City, bool) {
	i, ok := d.cityIndex[slug]
	if !ok {
		return types.City{}, false
	}
	return d.cities[i], true
}

// AllCitySlugs enumerates every city route in dataset order.
func (d *Dataset) AllCitySlugs() []string {
	slugs := make([]string, len(d.cities))
	for i, c := range d.cities {
		slugs[i] = c.Slug
	}
	return slugs
}

// CitiesByRegion returns the cities of a region in dataset order. An unknown
// region yields an empty slice.
func (d *Dataset) CitiesByRegion(region types.Region) []types.City {
	return append([]types.City{}, d.byRegion[region]...)
}

// CitiesByTier returns the cities of a tier in dataset order.
func (d *Dataset) CitiesByTier(tier int) []types.City {
	return append([]types.City{}, d.byTier[tier]...)
}

// Regions lists the distinct regions in order of first appearance in the city
// list.
func (d *Dataset) Regions() []types.Region {
	return append([]types.Region(nil), d.regions...)
}

// NearbyCities returns up to MaxNearbyCities other cities sharing the
// region of slug. There is no distance computation involved.
func (d *Dataset) NearbyCities(slug string) []types.City {
	city, ok := d.CityBySlug(slug)
	if !ok {
		return []types.City{}
	}
	nearby := make([]types.City, 0, MaxNearbyCities)
	for _, c := range d.byRegion[city.Region] {
		if c.Slug == city.Slug {
			continue
		}
		nearby = append(nearby, c)
		if len(nearby) == MaxNearbyCities {
			break
		}
	}
	return nearby
}

func (d *Dataset) ServiceBySlug(slug string) (types.Service, bool) {
	i, ok := d.serviceIndex[slug]
	if !ok {
		return types.Service{}, false
	}
	return d.services[i], true
}

// ServiceContent looks up the content table entry for a service slug.
func (d *Dataset) ServiceContent(slug string) (types.ServiceContent, bool) {
	c, ok := d.content[slug]
	return c, ok
}

func (d *Dataset) ServiceSlugs() []string {
	slugs := make([]string, len(d.services))
	for i, s := range d.services {
		slugs[i] = s.Slug
	}
	return slugs
}

// RegionImplantData returns the region's implant prose, or the generic
// default when the region has none.
func (d *Dataset) RegionImplantData(region types.Region) string {
	if p, ok := d.profiles[region]; ok && p.ImplantData != "" {
		return p.ImplantData
	}
	return DefaultImplantData
}

// PatientDemographics returns the region's demographics prose, or the generic
// default.
func (d *Dataset) PatientDemographics(region types.Region) string {
	if p, ok := d.profiles[region]; ok && p.Demographics != "" {
		return p.Demographics
	}
	return DefaultDemographics
}
