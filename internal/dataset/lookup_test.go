package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/uk-dental-implants/internal/types"
)

func loadCatalogue(t *testing.T) *Dataset {
	t.Helper()
	d, err := Load()
	require.NoError(t, err)
	return d
}

func TestCityBySlug(t *testing.T) {
	d := loadCatalogue(t)

	t.Run("round trip for every city", func(t *testing.T) {
		for _, c := range d.Cities() {
			got, ok := d.CityBySlug(c.Slug)
			require.True(t, ok, c.Slug)
			assert.Equal(t, c, got)
		}
	})

	t.Run("absent slugs", func(t *testing.T) {
		for _, slug := range []string{"atlantis", "", "LONDON", "london/", "../etc/passwd"} {
			got, ok := d.CityBySlug(slug)
			assert.False(t, ok, slug)
			assert.Equal(t, types.City{}, got)
		}
	})
}

func TestAllCitySlugs_DatasetOrder(t *testing.T) {
	d := loadCatalogue(t)
	slugs := d.AllCitySlugs()
	cities := d.Cities()
	require.Len(t, slugs, len(cities))
	for i, c := range cities {
		assert.Equal(t, c.Slug, slugs[i])
	}
}

func TestCitiesByRegion(t *testing.T) {
	d := loadCatalogue(t)

	for _, region := range d.Regions() {
		got := d.CitiesByRegion(region)
		want := 0
		for _, c := range d.Cities() {
			if c.Region == region {
				want++
			}
		}
		assert.Len(t, got, want, "completeness for %s", region)
		for _, c := range got {
			assert.Equal(t, region, c.Region, "precision for %s", region)
		}
	}

	t.Run("unknown region is empty, not nil", func(t *testing.T) {
		got := d.CitiesByRegion("Atlantis")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("preserves dataset order", func(t *testing.T) {
		d := newFixture(t)
		got := d.CitiesByRegion("Greater London")
		assert.Equal(t, []string{"london", "croydon", "richmond"}, slugsOf(got))
	})
}

func TestCitiesByTier_Partition(t *testing.T) {
	d := loadCatalogue(t)

	seen := make(map[string]int)
	total := 0
	for tier := MinTier; tier <= MaxTier; tier++ {
		part := d.CitiesByTier(tier)
		total += len(part)
		for _, c := range part {
			assert.Equal(t, tier, c.Tier)
			seen[c.Slug]++
		}
	}
	assert.Equal(t, len(d.Cities()), total, "union of tiers is the dataset")
	for slug, n := range seen {
		assert.Equal(t, 1, n, "%s appears in more than one tier", slug)
	}
	assert.Empty(t, d.CitiesByTier(5))
}

func TestRegions_FirstOccurrenceOrder(t *testing.T) {
	d := newFixture(t)
	assert.Equal(t, []types.Region{"Greater London", "Scotland"}, d.Regions())

	full := loadCatalogue(t)
	regions := full.Regions()
	assert.Len(t, regions, 12)
	assert.Equal(t, types.Region("Greater London"), regions[0])
}

func TestNearbyCities(t *testing.T) {
	d := loadCatalogue(t)

	for _, c := range d.Cities() {
		nearby := d.NearbyCities(c.Slug)
		assert.LessOrEqual(t, len(nearby), MaxNearbyCities)
		for _, n := range nearby {
			assert.NotEqual(t, c.Slug, n.Slug, "%s lists itself", c.Slug)
			assert.Equal(t, c.Region, n.Region)
		}
	}

	t.Run("fixture order and exclusion", func(t *testing.T) {
		d := newFixture(t)
		assert.Equal(t, []string{"london", "richmond"}, slugsOf(d.NearbyCities("croydon")))
		assert.Equal(t, []string{"paisley"}, slugsOf(d.NearbyCities("glasgow")))
	})

	t.Run("truncates to the first eight", func(t *testing.T) {
		london := d.CitiesByRegion("Greater London")
		require.Greater(t, len(london), MaxNearbyCities+1)
		nearby := d.NearbyCities("london")
		assert.Equal(t, slugsOf(london[1:MaxNearbyCities+1]), slugsOf(nearby))
	})

	t.Run("unknown slug", func(t *testing.T) {
		assert.Empty(t, d.NearbyCities("atlantis"))
	})
}

func TestRegionProse_Fallbacks(t *testing.T) {
	d := newFixture(t)

	assert.Equal(t, "London prose", d.RegionImplantData("Greater London"))
	assert.Equal(t, "Londoners", d.PatientDemographics("Greater London"))
	assert.Equal(t, DefaultImplantData, d.RegionImplantData("Scotland"))
	assert.Equal(t, DefaultDemographics, d.PatientDemographics("Scotland"))
	assert.Equal(t, DefaultImplantData, d.RegionImplantData("Atlantis"))
}

func TestServiceLookups(t *testing.T) {
	d := newFixture(t)

	svc, ok := d.ServiceBySlug("all-on-4")
	require.True(t, ok)
	assert.Equal(t, "All-on-4 Implants", svc.Title)

	content, ok := d.ServiceContent("all-on-4")
	require.True(t, ok)
	assert.Equal(t, "£12,000 - £20,000 per arch", content.PriceRange)

	_, ok = d.ServiceBySlug("teeth-whitening")
	assert.False(t, ok)
	_, ok = d.ServiceContent("teeth-whitening")
	assert.False(t, ok)

	assert.Equal(t, []string{"dental-implants", "all-on-4"}, d.ServiceSlugs())
}

func slugsOf(cities []types.City) []string {
	out := make([]string, len(cities))
	for i, c := range cities {
		out[i] = c.Slug
	}
	return out
}
