package dbtest

import (
	"testing"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/service-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

// Seeded opens a database with the full catalog already in place.
func Seeded(t testing.TB) *gorm.DB {
	t.Helper()

	db := Open(t)

	cats := map[catalog.CategoryName]uint{}
	for _, c := range catalog.CategorySeeds() {
		row := models.Category{Name: string(c.Name), Description: c.Description}
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("seed category %s: %v", c.Name, err)
		}
		cats[c.Name] = row.ID
	}

	services, err := catalog.ServiceSeeds()
	if err != nil {
		t.Fatalf("service seeds: %v", err)
	}
	for _, s := range services {
		row := models.Service{Name: string(s.Name), Description: s.Description, CategoryID: cats[s.Category]}
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("seed service %s: %v", s.Name, err)
		}
	}

	return db
}

// User inserts a user with a placeholder password hash.
func User(t testing.TB, db *gorm.DB, username string, role string) models.User {
	t.Helper()

	u := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		Role:         role,
	}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}

func Service(t testing.TB, db *gorm.DB, name catalog.ServiceName) models.Service {
	t.Helper()

	var s models.Service
	if err := db.Where("name = ?", string(name)).First(&s).Error; err != nil {
		t.Fatalf("service %s: %v", name, err)
	}
	return s
}

func Offer(t testing.TB, db *gorm.DB, providerID uint, name catalog.ServiceName, price int64) models.ProviderOffer {
	t.Helper()

	o := models.ProviderOffer{
		ProviderID:  providerID,
		ServiceID:   Service(t, db, name).ID,
		Price:       price,
		Description: "offer for " + string(name),
	}
	if err := db.Omit("Provider", "Service").Create(&o).Error; err != nil {
		t.Fatalf("create offer: %v", err)
	}
	return o
}

func Count(t testing.TB, db *gorm.DB, model any) int64 {
	t.Helper()

	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}
