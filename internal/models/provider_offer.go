package models

import "time"

type ProviderOffer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProviderID uint `gorm:"not null;uniqueIndex:idx_offer_provider_service" json:"provider_id"`
	Provider   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ServiceID uint    `gorm:"not null;uniqueIndex:idx_offer_provider_service;index" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	Price       int64  `gorm:"not null" json:"price"`
	Description string `gorm:"size:255;not null" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
