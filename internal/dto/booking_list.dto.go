package dto

import (
	"time"

	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

type BookingListDTO struct {
	ID          uint      `json:"id"`
	ServiceID   uint      `json:"service_id"`
	ServiceName string    `json:"service_name"`
	CustomerID  uint      `json:"customer_id"`
	ProviderID  *uint     `json:"provider_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func BookingList(bookings []models.Booking) []BookingListDTO {
	out := make([]BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingListDTO{
			ID:          b.ID,
			ServiceID:   b.ServiceID,
			ServiceName: b.Service.Name,
			CustomerID:  b.CustomerID,
			ProviderID:  b.ProviderID,
			Status:      b.Status,
			CreatedAt:   b.CreatedAt,
		})
	}
	return out
}
