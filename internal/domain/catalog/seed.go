package catalog

type CategorySeed struct {
	Name        CategoryName
	Description string
}

type ServiceSeed struct {
	Name        ServiceName
	Description string
	Category    CategoryName
}

var categoryDescriptions = map[CategoryName]string{
	CategoryHomeRepairs: "Home repair services",
	CategoryCleaning:    "Cleaning services",
	CategoryGardening:   "Gardening services",
}

var serviceDescriptions = map[ServiceName]string{
	ServicePlumbing:    "Plumbing services",
	ServiceElectrician: "Electrical services",
	ServiceHandyman:    "Handyman services",
	ServiceCleaning:    "Cleaning services",
	ServicePainting:    "Painting services",
	ServiceGardening:   "Gardening services",
	ServiceWelding:     "Welding services",
}

func CategorySeeds() []CategorySeed {
	out := make([]CategorySeed, 0, len(Categories()))
	for _, n := range Categories() {
		out = append(out, CategorySeed{Name: n, Description: categoryDescriptions[n]})
	}
	return out
}

// ServiceSeeds returns every service with its category resolved through
// Classify.
func ServiceSeeds() ([]ServiceSeed, error) {
	out := make([]ServiceSeed, 0, len(Services()))
	for _, n := range Services() {
		cat, err := Classify(n)
		if err != nil {
			return nil, err
		}
		out = append(out, ServiceSeed{
			Name:        n,
			Description: serviceDescriptions[n],
			Category:    cat,
		})
	}
	return out, nil
}
