package catalog

import (
	"strings"

	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
)

// ===============================
// Category names
// ===============================

type CategoryName string

const (
	CategoryHomeRepairs CategoryName = "home_repairs"
	CategoryCleaning    CategoryName = "cleaning"
	CategoryGardening   CategoryName = "gardening"
)

// Categories lists every category in seed order.
func Categories() []CategoryName {
	return []CategoryName{
		CategoryHomeRepairs,
		CategoryCleaning,
		CategoryGardening,
	}
}

func (n CategoryName) Valid() bool {
	switch n {
	case CategoryHomeRepairs, CategoryCleaning, CategoryGardening:
		return true
	}
	return false
}

// ParseCategoryName fails with NotFound: an unknown category name names
// nothing that could exist.
func ParseCategoryName(raw string) (CategoryName, error) {
	n := CategoryName(strings.ToLower(strings.TrimSpace(raw)))
	if !n.Valid() {
		return "", httperr.ErrNotFound("category_not_found", "Category not found.")
	}
	return n, nil
}

// ===============================
// Service names
// ===============================

type ServiceName string

const (
	ServicePlumbing    ServiceName = "plumbing"
	ServiceElectrician ServiceName = "electrician"
	ServiceHandyman    ServiceName = "handyman"
	ServiceCleaning    ServiceName = "cleaning"
	ServicePainting    ServiceName = "painting"
	ServiceGardening   ServiceName = "gardening"
	ServiceWelding     ServiceName = "welding"
)

// Services lists every service in seed order.
func Services() []ServiceName {
	return []ServiceName{
		ServicePlumbing,
		ServiceElectrician,
		ServiceHandyman,
		ServiceCleaning,
		ServicePainting,
		ServiceGardening,
		ServiceWelding,
	}
}

func (n ServiceName) Valid() bool {
	switch n {
	case ServicePlumbing, ServiceElectrician, ServiceHandyman,
		ServiceCleaning, ServicePainting,
		ServiceGardening, ServiceWelding:
		return true
	}
	return false
}

func ParseServiceName(raw string) (ServiceName, error) {
	n := ServiceName(strings.ToLower(strings.TrimSpace(raw)))
	if !n.Valid() {
		return "", ErrInvalidServiceName(raw)
	}
	return n, nil
}

func ErrInvalidServiceName(raw string) error {
	return httperr.ErrBusiness(
		httperr.KindInvalidServiceName,
		"invalid_service_name",
		"Unknown service name: "+raw+".",
	)
}
