package booking

import (
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Apply moves b through ev in memory. Accept and reject bind the acting
// provider.
func Apply(b *models.Booking, ev Event, actorID uint) (from Status, err error) {
	from = Status(b.Status)

	to, err := Next(from, ev)
	if err != nil {
		return from, err
	}

	if ev == EventAccept || ev == EventReject {
		id := actorID
		b.ProviderID = &id
	}
	b.Status = string(to)
	return from, nil
}
