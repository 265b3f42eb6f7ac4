package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/ichaoui56/service-stock2/internal/model"
	"github.com/ichaoui56/service-stock2/pkg/database"
	"github.com/ichaoui56/service-stock2/pkg/logger"
)

// Seeds the admin account, the base categories, and a handful of demo
// products. Safe to run repeatedly: existing rows are left untouched.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found")
	}
	logger.New(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL"))

	db := database.ConnectDB()
	if err := db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.Sale{},
		&model.Purchase{},
	); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	seedAdmin(db)
	categories := seedCategories(db)
	seedProducts(db, categories)

	log.Info().Msg("database seeded")
}

func seedAdmin(db *gorm.DB) {
	var existing model.User
	if err := db.First(&existing, "email = ?", "admin@techvault.com").Error; err == nil {
		return
	}

	admin := &model.User{
		Email: "admin@techvault.com",
		Name:  "Admin User",
		Role:  "ADMIN",
	}
	if err := admin.SetPassword("admin123"); err != nil {
		log.Fatal().Err(err).Msg("failed to hash admin password")
	}
	if err := db.Create(admin).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to create admin user")
	}
	log.Info().Str("email", admin.Email).Msg("admin user created")
}

func seedCategories(db *gorm.DB) map[string]uint {
	names := []string{"Smartphones", "Laptops", "Tablets", "Smartwatches", "Accessories"}
	ids := make(map[string]uint, len(names))
	for _, name := range names {
		category := model.Category{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&category).Error; err != nil {
			log.Fatal().Err(err).Str("category", name).Msg("failed to seed category")
		}
		ids[name] = category.ID
	}
	return ids
}

func seedProducts(db *gorm.DB, categories map[string]uint) {
	products := []model.Product{
		{Name: "iPhone 15 Pro", SKU: "IP15P-001", Brand: "Apple", CostPrice: 899, SalePrice: 1199, Quantity: 25, MinStock: 5, CategoryID: categories["Smartphones"]},
		{Name: "Samsung Galaxy S24", SKU: "SGS24-001", Brand: "Samsung", CostPrice: 749, SalePrice: 999, Quantity: 30, MinStock: 5, CategoryID: categories["Smartphones"]},
		{Name: `MacBook Pro 14"`, SKU: "MBP14-001", Brand: "Apple", CostPrice: 1599, SalePrice: 1999, Quantity: 15, MinStock: 3, CategoryID: categories["Laptops"]},
		{Name: "iPad Air", SKU: "IPA-001", Brand: "Apple", CostPrice: 449, SalePrice: 599, Quantity: 2, MinStock: 5, CategoryID: categories["Tablets"]},
		{Name: "Apple Watch Series 9", SKU: "AWS9-001", Brand: "Apple", CostPrice: 299, SalePrice: 399, Quantity: 20, MinStock: 5, CategoryID: categories["Smartwatches"]},
	}
	for _, p := range products {
		product := p
		if err := db.Where("sku = ?", p.SKU).FirstOrCreate(&product).Error; err != nil {
			log.Fatal().Err(err).Str("sku", p.SKU).Msg("failed to seed product")
		}
	}
}
