package config

import (
	"log/slog"

	"gorm.io/gorm"

	"marketplace_backend/models"
	"marketplace_backend/utils"
)

func SeedCategories(db *gorm.DB, log *slog.Logger) {
	categories := []models.Category{
		{Name: "Groceries", Slug: "groceries"},
		{Name: "Electronics", Slug: "electronics"},
		{Name: "Fashion", Slug: "fashion"},
		{Name: "Home & Living", Slug: "home-living"},
		{Name: "Food & Beverage", Slug: "food-beverage"},
	}

	for _, category := range categories {
		var existing models.Category
		if err := db.Where("slug = ?", category.Slug).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := db.Create(&category).Error; err != nil {
					log.Error("Failed to seed category", "name", category.Name, "error", err)
				}
			}
		}
	}

	log.Info("Category seeding complete")
}

// SeedDemoData fills an empty database with a seller account and a couple of
// products so the frontend has something to render in development.
func SeedDemoData(db *gorm.DB, log *slog.Logger) {
	log.Info("Seeding demo data")

	password, _ := utils.HashPassword("password123")

	seller := models.Seller{Location: "Jurong East"}
	if err := db.Create(&seller).Error; err != nil {
		log.Error("Failed to seed seller", "error", err)
		return
	}

	accounts := []models.Account{
		{
			Name:        "Demo Seller",
			Address:     "Jurong East",
			PhoneNumber: "91234567",
			Password:    password,
			SellerID:    &seller.ID,
		},
		{
			Name:        "Demo Buyer",
			Address:     "Tampines",
			PhoneNumber: "98765432",
			Password:    password,
			Wishlist:    "rice, eggs",
		},
	}

	for _, account := range accounts {
		var existing models.Account
		if err := db.Where("phone_number = ?", account.PhoneNumber).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := db.Create(&account).Error; err != nil {
					log.Error("Failed to seed account", "phone", account.PhoneNumber, "error", err)
				}
			}
		}
	}

	products := []models.Product{
		{SellerID: seller.ID, Name: "Jasmine Rice 5kg", Qty: 20, Price: 12.50, Type: "groceries"},
		{SellerID: seller.ID, Name: "Free Range Eggs (10)", Qty: 50, Price: 4.80, Type: "groceries"},
		{SellerID: seller.ID, Name: "USB-C Charger", Qty: 15, Price: 19.90, Type: "electronics"},
	}

	for _, product := range products {
		if err := db.Create(&product).Error; err != nil {
			log.Error("Failed to seed product", "name", product.Name, "error", err)
		}
	}

	log.Info("Demo data seeding complete")
}
