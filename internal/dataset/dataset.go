// Package dataset holds the immutable city and service catalogue behind every
// page of the site, together with the lookup functions derived from it.
package dataset

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/FACorreiaa/uk-dental-implants/internal/types"
)

//go:embed data/site.yaml
var embeddedSite []byte

const (
	MinTier = 1
	MaxTier = 4
	// MaxNearbyCities caps the "nearby" block on a city page.
	MaxNearbyCities = 8

	DefaultImplantData  = "Various specialist implant dentists serving the local community"
	DefaultDemographics = "adults seeking permanent tooth replacement"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

type siteFile struct {
	Regions  []types.RegionProfile           `yaml:"regions"`
	Services []types.Service                 `yaml:"services"`
	Content  map[string]types.ServiceContent `yaml:"content"`
	Cities   []types.City                    `yaml:"cities"`
}

// Dataset is the validated, indexed catalogue. It is never mutated after New
// returns and is safe for concurrent use.
type Dataset struct {
	cities   []types.City
	services []types.Service
	content  map[string]types.ServiceContent
	profiles map[types.Region]types.RegionProfile

	cityIndex    map[string]int
	serviceIndex map[string]int
	byRegion     map[types.Region][]types.City
	byTier       map[int][]types.City
	regions      []types.Region
}

// Load decodes the embedded catalogue.
func Load() (*Dataset, error) {
	return Parse(embeddedSite)
}

// Parse decodes a catalogue document. Unknown keys are rejected so a typo in
// the data file fails loudly instead of silently dropping a field.
func Parse(raw []byte) (*Dataset, error) {
	var f siteFile
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode catalogue: %w", err)
	}
	return New(f.Regions, f.Cities, f.Services, f.Content)
}

// New validates the inputs and builds the lookup indexes. Every violated
// invariant is reported, joined into a single error.
func New(regions []types.RegionProfile, cities []types.City, services []types.Service, content map[string]types.ServiceContent) (*Dataset, error) {
	if err := validate(regions, cities, services, content); err != nil {
		return nil, err
	}

	d := &Dataset{
		cities:       append([]types.City(nil), cities...),
		services:     append([]types.Service(nil), services...),
		content:      make(map[string]types.ServiceContent, len(content)),
		profiles:     make(map[types.Region]types.RegionProfile, len(regions)),
		cityIndex:    make(map[string]int, len(cities)),
		serviceIndex: make(map[string]int, len(services)),
		byRegion:     make(map[types.Region][]types.City, len(regions)),
		byTier:       make(map[int][]types.City, MaxTier),
	}
	for k, v := range content {
		d.content[k] = v
	}
	for _, p := range regions {
		d.profiles[p.Name] = p
	}
	for i, s := range d.services {
		d.serviceIndex[s.Slug] = i
	}
	for i, c := range d.cities {
		d.cityIndex[c.Slug] = i
		if _, seen := d.byRegion[c.Region]; !seen {
			d.regions = append(d.regions, c.Region)
		}
		d.byRegion[c.Region] = append(d.byRegion[c.Region], c)
		d.byTier[c.Tier] = append(d.byTier[c.Tier], c)
	}
	return d, nil
}

func validate(regions []types.RegionProfile, cities []types.City, services []types.Service, content map[string]types.ServiceContent) error {
	var errs []error

	declared := make(map[types.Region]int, len(regions))
	for _, r := range regions {
		if _, dup := declared[r.Name]; dup {
			errs = append(errs, fmt.Errorf("region %q declared twice", r.Name))
		}
		declared[r.Name] = 0
	}

	seen := make(map[string]struct{}, len(cities))
	for _, c := range cities {
		if !slugPattern.MatchString(c.Slug) {
			errs = append(errs, fmt.Errorf("%w: city %q", ErrInvalidSlug, c.Slug))
		}
		if _, dup := seen[c.Slug]; dup {
			errs = append(errs, fmt.Errorf("%w: city %q", ErrDuplicateSlug, c.Slug))
		}
		seen[c.Slug] = struct{}{}
		if c.Tier < MinTier || c.Tier > MaxTier {
			errs = append(errs, fmt.Errorf("%w: city %q has tier %d", ErrInvalidTier, c.Slug, c.Tier))
		}
		if _, ok := declared[c.Region]; !ok {
			errs = append(errs, fmt.Errorf("%w: city %q is in %q", ErrUndeclaredRegion, c.Slug, c.Region))
			continue
		}
		declared[c.Region]++
	}
	for _, r := range regions {
		if declared[r.Name] == 0 {
			errs = append(errs, fmt.Errorf("%w: %q", ErrEmptyRegion, r.Name))
		}
	}

	svc := make(map[string]struct{}, len(services))
	for _, s := range services {
		if !slugPattern.MatchString(s.Slug) {
			errs = append(errs, fmt.Errorf("%w: service %q", ErrInvalidSlug, s.Slug))
		}
		if _, dup := svc[s.Slug]; dup {
			errs = append(errs, fmt.Errorf("%w: service %q", ErrDuplicateSlug, s.Slug))
		}
		svc[s.Slug] = struct{}{}
		if _, ok := content[s.Slug]; !ok {
			errs = append(errs, fmt.Errorf("%w: service %q has no content entry", ErrContentGap, s.Slug))
		}
	}
	orphans := make([]string, 0)
	for slug := range content {
		if _, ok := svc[slug]; !ok {
			orphans = append(orphans, slug)
		}
	}
	sort.Strings(orphans)
	for _, slug := range orphans {
		errs = append(errs, fmt.Errorf("%w: content entry %q has no service", ErrContentGap, slug))
	}

	return errors.Join(errs...)
}

// Cities returns every city in dataset order.
func (d *Dataset) Cities() []types.City {
	return append([]types.City(nil), d.cities...)
}

// Services returns every service in dataset order.
func (d *Dataset) Services() []types.Service {
	return append([]types.Service(nil), d.services...)
}
