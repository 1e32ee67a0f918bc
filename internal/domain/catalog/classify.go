package catalog

import "github.com/BruksfildServices01/service-marketplace/internal/httperr"

// Classify maps a service to the category it belongs to.
func Classify(name ServiceName) (CategoryName, error) {
	switch name {
	case ServicePlumbing, ServiceElectrician, ServiceHandyman:
		return CategoryHomeRepairs, nil
	case ServiceCleaning, ServicePainting:
		return CategoryCleaning, nil
	case ServiceGardening, ServiceWelding:
		return CategoryGardening, nil
	}

	if !name.Valid() {
		return "", ErrInvalidServiceName(string(name))
	}
	return "", httperr.ErrBusiness(
		httperr.KindUnclassifiedService,
		"unclassified_service",
		"No category found for service "+string(name)+".",
	)
}

// ClassifyName parses raw and classifies it in one step.
func ClassifyName(raw string) (CategoryName, error) {
	name, err := ParseServiceName(raw)
	if err != nil {
		return "", err
	}
	return Classify(name)
}
