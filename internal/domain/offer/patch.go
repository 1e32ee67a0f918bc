package offer

import (
	"strings"

	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

// Patch is a partial update; nil fields keep their current value.
type Patch struct {
	Price       *int64
	Description *string
	ServiceID   *uint
}

func ValidatePrice(price int64) error {
	if price < 0 {
		return httperr.ErrInvalidInput("invalid_price", "Price must be zero or greater.")
	}
	return nil
}

func NormalizeDescription(desc string) (string, error) {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return "", httperr.ErrInvalidInput("missing_description", "Description is required.")
	}
	return desc, nil
}

// Apply validates p and applies it to o. o is untouched when validation
// fails.
func (p Patch) Apply(o *models.ProviderOffer) error {
	next := *o

	if p.Price != nil {
		if err := ValidatePrice(*p.Price); err != nil {
			return err
		}
		next.Price = *p.Price
	}
	if p.Description != nil {
		desc, err := NormalizeDescription(*p.Description)
		if err != nil {
			return err
		}
		next.Description = desc
	}
	if p.ServiceID != nil {
		next.ServiceID = *p.ServiceID
	}

	*o = next
	return nil
}
