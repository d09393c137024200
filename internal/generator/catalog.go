package generator

import "github.com/broadband-analytics/internal/domain"

const (
	// DefaultRegion назначается штату, отсутствующему в справочнике регионов
	DefaultRegion = domain.RegionNorth
	// DefaultPopulation назначается штату, отсутствующему в справочнике населения
	DefaultPopulation = 10_000_000
	// RuralShare - доля сельского населения в общем населении штата
	RuralShare = 0.65
)

var canonicalStates = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
	"Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand",
	"Karnataka", "Kerala", "Madhya Pradesh", "Maharashtra", "Manipur",
	"Meghalaya", "Mizoram", "Nagaland", "Odisha", "Punjab",
	"Rajasthan", "Sikkim", "Tamil Nadu", "Telangana", "Tripura",
	"Uttar Pradesh", "Uttarakhand", "West Bengal", "Delhi", "Jammu and Kashmir",
}

// Общее население штатов (приближенно)
var basePopulation = map[string]int{
	"Uttar Pradesh": 200_000_000, "Maharashtra": 112_000_000, "Bihar": 104_000_000,
	"West Bengal": 91_000_000, "Madhya Pradesh": 72_000_000, "Tamil Nadu": 72_000_000,
	"Rajasthan": 68_000_000, "Karnataka": 61_000_000, "Gujarat": 60_000_000,
	"Andhra Pradesh": 49_000_000, "Odisha": 42_000_000, "Telangana": 35_000_000,
	"Kerala": 33_000_000, "Jharkhand": 33_000_000, "Assam": 31_000_000,
	"Punjab": 28_000_000, "Chhattisgarh": 26_000_000, "Haryana": 25_000_000,
	"Delhi": 17_000_000, "Jammu and Kashmir": 12_000_000, "Uttarakhand": 10_000_000,
	"Himachal Pradesh": 7_000_000, "Tripura": 4_000_000, "Meghalaya": 3_000_000,
	"Manipur": 3_000_000, "Nagaland": 2_000_000, "Goa": 1_500_000,
	"Arunachal Pradesh": 1_400_000, "Sikkim": 600_000, "Mizoram": 1_100_000,
}

var stateRegions = map[string]domain.Region{
	"Andhra Pradesh": domain.RegionSouth,
	"Karnataka":      domain.RegionSouth,
	"Kerala":         domain.RegionSouth,
	"Tamil Nadu":     domain.RegionSouth,
	"Telangana":      domain.RegionSouth,

	"Gujarat":     domain.RegionWest,
	"Maharashtra": domain.RegionWest,
	"Goa":         domain.RegionWest,
	"Rajasthan":   domain.RegionWest,

	"Bihar":       domain.RegionEast,
	"Jharkhand":   domain.RegionEast,
	"Odisha":      domain.RegionEast,
	"West Bengal": domain.RegionEast,

	"Delhi":             domain.RegionNorth,
	"Haryana":           domain.RegionNorth,
	"Himachal Pradesh":  domain.RegionNorth,
	"Jammu and Kashmir": domain.RegionNorth,
	"Punjab":            domain.RegionNorth,
	"Uttar Pradesh":     domain.RegionNorth,
	"Uttarakhand":       domain.RegionNorth,

	"Assam":             domain.RegionNortheast,
	"Arunachal Pradesh": domain.RegionNortheast,
	"Manipur":           domain.RegionNortheast,
	"Meghalaya":         domain.RegionNortheast,
	"Mizoram":           domain.RegionNortheast,
	"Nagaland":          domain.RegionNortheast,
	"Sikkim":            domain.RegionNortheast,
	"Tripura":           domain.RegionNortheast,

	"Chhattisgarh":   domain.RegionCentral,
	"Madhya Pradesh": domain.RegionCentral,
}

// CatalogEntry - справочная запись штата
type CatalogEntry struct {
	State      string        `json:"state"`
	Region     domain.Region `json:"region"`
	Population int           `json:"population"`
}

// Catalog - канонический справочник штатов, их регионов и сельского населения.
// Только для чтения, безопасен для конкурентного чтения.
type Catalog struct {
	states     []string
	regions    map[string]domain.Region
	population map[string]int
}

// DefaultCatalog возвращает справочник 30 штатов
func DefaultCatalog() *Catalog {
	rural := make(map[string]int, len(basePopulation))
	for state, pop := range basePopulation {
		rural[state] = int(float64(pop) * RuralShare)
	}
	return NewCatalog(canonicalStates, stateRegions, rural)
}

// NewCatalog создает справочник из готовых таблиц; population задается уже как сельское население
func NewCatalog(states []string, regions map[string]domain.Region, population map[string]int) *Catalog {
	return &Catalog{
		states:     append([]string(nil), states...),
		regions:    regions,
		population: population,
	}
}

// States возвращает копию списка штатов в каноническом порядке
func (c *Catalog) States() []string {
	return append([]string(nil), c.states...)
}

// Contains проверяет, входит ли штат в справочник
func (c *Catalog) Contains(state string) bool {
	for _, s := range c.states {
		if s == state {
			return true
		}
	}
	return false
}

// RegionOf возвращает регион штата, DefaultRegion для неизвестного штата
func (c *Catalog) RegionOf(state string) domain.Region {
	return Lookup(c.regions, state, DefaultRegion)
}

// PopulationOf возвращает сельское население штата, DefaultPopulation для неизвестного штата
func (c *Catalog) PopulationOf(state string) int {
	return Lookup(c.population, state, DefaultPopulation)
}

// StatesIn возвращает штаты региона в каноническом порядке
func (c *Catalog) StatesIn(region domain.Region) []string {
	var out []string
	for _, s := range c.states {
		if c.RegionOf(s) == region {
			out = append(out, s)
		}
	}
	return out
}

// Entries возвращает справочные записи всех штатов
func (c *Catalog) Entries() []CatalogEntry {
	entries := make([]CatalogEntry, 0, len(c.states))
	for _, s := range c.states {
		entries = append(entries, CatalogEntry{
			State:      s,
			Region:     c.RegionOf(s),
			Population: c.PopulationOf(s),
		})
	}
	return entries
}
