package dto

import (
	"time"

	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

type OfferListDTO struct {
	ID           uint      `json:"id"`
	ProviderID   uint      `json:"provider_id"`
	ProviderName string    `json:"provider_name"`
	ServiceID    uint      `json:"service_id"`
	ServiceName  string    `json:"service_name"`
	Price        int64     `json:"price"`
	Description  string    `json:"description"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func OfferList(offers []models.ProviderOffer) []OfferListDTO {
	out := make([]OfferListDTO, 0, len(offers))
	for _, o := range offers {
		out = append(out, OfferListDTO{
			ID:           o.ID,
			ProviderID:   o.ProviderID,
			ProviderName: o.Provider.Username,
			ServiceID:    o.ServiceID,
			ServiceName:  o.Service.Name,
			Price:        o.Price,
			Description:  o.Description,
			UpdatedAt:    o.UpdatedAt,
		})
	}
	return out
}
