package offer

import "github.com/BruksfildServices01/service-marketplace/internal/httperr"

func ErrDuplicate() error {
	return httperr.ErrConflict("duplicate_offer", "You already offer this service.")
}
