package analyzer

// Category is one row of the search policy: which provider categories to
// look for, how far out, and how many results to keep.
type Category struct {
	Group        string
	Categories   []string
	RadiusMeters int
	Limit        int
}

// Policy is an ordered, read-only set of categories.
type Policy struct {
	categories []Category
}

func NewPolicy(categories ...Category) Policy {
	cp := make([]Category, len(categories))
	for i, c := range categories {
		c.Categories = append([]string(nil), c.Categories...)
		cp[i] = c
	}
	return Policy{categories: cp}
}

// Categories returns a copy of the rows in table order.
func (p Policy) Categories() []Category {
	out := make([]Category, len(p.categories))
	for i, c := range p.categories {
		c.Categories = append([]string(nil), c.Categories...)
		out[i] = c
	}
	return out
}

func (p Policy) Len() int {
	return len(p.categories)
}

// Groups returns the group names in table order.
func (p Policy) Groups() []string {
	groups := make([]string, len(p.categories))
	for i, c := range p.categories {
		groups[i] = c.Group
	}
	return groups
}

const (
	GroupSchools       = "Schools"
	GroupGroceries     = "Groceries"
	GroupHealthcare    = "Healthcare"
	GroupTrainStations = "TrainStations"
	GroupBusStops      = "BusStops"
)

// Rail is split from bus so stations aren't crowded out by nearby stops.
var railCategories = []string{
	"public_transport.subway",
	"public_transport.train",
	"public_transport.light_rail",
	"public_transport.monorail",
}

// ResidentialPolicy is the table used for property analysis.
func ResidentialPolicy() Policy {
	return NewPolicy(
		Category{Group: GroupSchools, Categories: []string{"education.school"}, RadiusMeters: 3000, Limit: 3},
		Category{Group: GroupGroceries, Categories: []string{"commercial.supermarket", "commercial.convenience"}, RadiusMeters: 2000, Limit: 3},
		Category{Group: GroupHealthcare, Categories: []string{"healthcare.hospital", "healthcare.clinic"}, RadiusMeters: 5000, Limit: 3},
		Category{Group: GroupTrainStations, Categories: railCategories, RadiusMeters: 3000, Limit: 3},
		Category{Group: GroupBusStops, Categories: []string{"public_transport.bus"}, RadiusMeters: 500, Limit: 2},
	)
}
