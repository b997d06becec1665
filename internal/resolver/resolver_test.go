package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/uk-dental-implants/internal/dataset"
	"github.com/FACorreiaa/uk-dental-implants/internal/types"
)

// MockCatalogue is a mock implementation of Catalogue
type MockCatalogue struct {
	mock.Mock
}

func (m *MockCatalogue) CityBySlug(slug string) (types.City, bool) {
	args := m.Called(slug)
	return args.Get(0).(types.City), args.Bool(1)
}

func (m *MockCatalogue) NearbyCities(slug string) []types.City {
	args := m.Called(slug)
	return args.Get(0).([]types.City)
}

func (m *MockCatalogue) RegionImplantData(region types.Region) string {
	return m.Called(region).String(0)
}

func (m *MockCatalogue) PatientDemographics(region types.Region) string {
	return m.Called(region).String(0)
}

func (m *MockCatalogue) ServiceBySlug(slug string) (types.Service, bool) {
	args := m.Called(slug)
	return args.Get(0).(types.Service), args.Bool(1)
}

func (m *MockCatalogue) ServiceContent(slug string) (types.ServiceContent, bool) {
	args := m.Called(slug)
	return args.Get(0).(types.ServiceContent), args.Bool(1)
}

func (m *MockCatalogue) AllCitySlugs() []string {
	return m.Called().Get(0).([]string)
}

func (m *MockCatalogue) ServiceSlugs() []string {
	return m.Called().Get(0).([]string)
}

func newCatalogueResolver(t *testing.T) *Resolver {
	t.Helper()
	d, err := dataset.Load()
	require.NoError(t, err)
	return New(d)
}

func TestResolve_CityRoutes(t *testing.T) {
	r := newCatalogueResolver(t)

	t.Run("london resolves", func(t *testing.T) {
		res := r.Resolve("/locations/london")
		require.Equal(t, Resolved, res.Outcome)
		require.NoError(t, res.Err())
		require.NotNil(t, res.City)
		assert.Equal(t, "London", res.City.Name)
		assert.Equal(t, types.Region("Greater London"), res.City.Region)
		assert.Equal(t, 1, res.City.Tier)
		assert.NotEmpty(t, res.City.ImplantData)
		assert.Len(t, res.City.Nearby, dataset.MaxNearbyCities)
		assert.Equal(t, Route{Kind: KindCity, Slug: "london"}, res.Route)
	})

	t.Run("atlantis is not found", func(t *testing.T) {
		res := r.Resolve("/locations/atlantis")
		assert.Equal(t, NotFound, res.Outcome)
		assert.ErrorIs(t, res.Err(), ErrNotFound)
		assert.Nil(t, res.City)
	})

	t.Run("trailing slash", func(t *testing.T) {
		assert.Equal(t, Resolved, r.Resolve("/locations/leeds/").Outcome)
	})
}

func TestResolve_AggregateRoutes(t *testing.T) {
	r := newCatalogueResolver(t)

	cases := map[string]Kind{
		"/":            KindHome,
		"":             KindHome,
		"/locations":   KindLocations,
		"/quote":       KindQuote,
		"/sitemap.xml": KindSitemap,
	}
	for path, kind := range cases {
		res := r.Resolve(path)
		assert.Equal(t, Resolved, res.Outcome, path)
		assert.Equal(t, kind, res.Route.Kind, path)
	}
}

func TestResolve_UnknownPaths(t *testing.T) {
	r := newCatalogueResolver(t)

	for _, path := range []string{"/about", "/locations/london/extra", "/services", "/services/", "/privacy"} {
		res := r.Resolve(path)
		assert.Equal(t, NotFound, res.Outcome, path)
		assert.ErrorIs(t, res.Err(), ErrNotFound, path)
	}
}

func TestResolveService(t *testing.T) {
	t.Run("resolves with the catalogue", func(t *testing.T) {
		r := newCatalogueResolver(t)
		res := r.Resolve("/services/all-on-4")
		require.Equal(t, Resolved, res.Outcome)
		assert.Equal(t, "All-on-4 Implants", res.Service.Title)
		assert.Equal(t, "£12,000 - £20,000 per arch", res.Content.PriceRange)
	})

	t.Run("unknown service", func(t *testing.T) {
		cat := new(MockCatalogue)
		cat.On("ServiceBySlug", "veneers").Return(types.Service{}, false).Once()

		res := New(cat).ResolveService("veneers")
		assert.Equal(t, NotFound, res.Outcome)
		cat.AssertExpectations(t)
		cat.AssertNotCalled(t, "ServiceContent", "veneers")
	})

	t.Run("service without content is not found", func(t *testing.T) {
		cat := new(MockCatalogue)
		cat.On("ServiceBySlug", "all-on-6").Return(types.Service{Slug: "all-on-6", Title: "All-on-6 Implants"}, true).Once()
		cat.On("ServiceContent", "all-on-6").Return(types.ServiceContent{}, false).Once()

		res := New(cat).ResolveService("all-on-6")
		assert.Equal(t, NotFound, res.Outcome)
		assert.Nil(t, res.Service)
		assert.Nil(t, res.Content)
		cat.AssertExpectations(t)
	})
}

func TestResolveCity_UsesRegionProse(t *testing.T) {
	cat := new(MockCatalogue)
	city := types.City{Slug: "paisley", Name: "Paisley", Region: "Scotland", Tier: 3}
	nearby := []types.City{{Slug: "glasgow", Name: "Glasgow", Region: "Scotland", Tier: 1}}
	cat.On("CityBySlug", "paisley").Return(city, true).Once()
	cat.On("RegionImplantData", types.Region("Scotland")).Return("scottish prose").Once()
	cat.On("PatientDemographics", types.Region("Scotland")).Return("scottish patients").Once()
	cat.On("NearbyCities", "paisley").Return(nearby).Once()

	res := New(cat).ResolveCity("paisley")
	require.Equal(t, Resolved, res.Outcome)
	assert.Equal(t, city, res.City.City)
	assert.Equal(t, "scottish prose", res.City.ImplantData)
	assert.Equal(t, "scottish patients", res.City.Demographics)
	assert.Equal(t, nearby, res.City.Nearby)
	cat.AssertExpectations(t)
}

func TestRoutes(t *testing.T) {
	cat := new(MockCatalogue)
	cat.On("ServiceSlugs").Return([]string{"dental-implants", "all-on-4"})
	cat.On("AllCitySlugs").Return([]string{"london", "leeds"})

	routes := New(cat).Routes()
	paths := make([]string, len(routes))
	for i, rt := range routes {
		paths[i] = rt.Path()
	}
	assert.Equal(t, []string{
		"/", "/locations", "/quote",
		"/services/dental-implants", "/services/all-on-4",
		"/locations/london", "/locations/leeds",
	}, paths)
}

func TestRoutes_AllResolve(t *testing.T) {
	r := newCatalogueResolver(t)
	for _, route := range r.Routes() {
		res := r.Resolve(route.Path())
		assert.Equal(t, Resolved, res.Outcome, route.Path())
		assert.Equal(t, route, res.Route)
	}
}
