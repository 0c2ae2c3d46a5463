package initializers

import (
	"log"

	"github.com/AbheekRai/full-stack-shopping-cart-app/models"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

var demoCatalog = []models.Product{
	{
		Name:        "Wireless Headphones",
		Price:       decimal.RequireFromString("79.99"),
		Description: "Over-ear Bluetooth headphones with active noise cancellation.",
		ImageUrl:    "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400",
		Specs:       datatypes.JSON(`{"color":"black","battery":"30h","bluetooth":"5.3"}`),
	},
	{
		Name:        "Smart Watch",
		Price:       decimal.RequireFromString("199.99"),
		Description: "Fitness tracking, heart rate monitor and a week of battery life.",
		ImageUrl:    "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400",
		Specs:       datatypes.JSON(`{"color":"silver","display":"AMOLED","waterproof":"5ATM"}`),
	},
	{
		Name:        "Mechanical Keyboard",
		Price:       decimal.RequireFromString("129.99"),
		Description: "Hot-swappable switches with per-key RGB backlight.",
		ImageUrl:    "https://images.unsplash.com/photo-1541140532154-b024d705b90a?w=400",
		Specs:       datatypes.JSON(`{"layout":"TKL","switches":"brown"}`),
	},
	{
		Name:        "USB-C Hub",
		Price:       decimal.RequireFromString("39.99"),
		Description: "7-in-1 hub with HDMI, card reader and 100W passthrough charging.",
		ImageUrl:    "https://images.unsplash.com/photo-1625842268584-8f3296236761?w=400",
		Specs:       datatypes.JSON(`{"ports":"7","hdmi":"4K60"}`),
	},
	{
		Name:        "Portable Speaker",
		Price:       decimal.RequireFromString("59.99"),
		Description: "Pocket-sized speaker with surprisingly big sound.",
		ImageUrl:    "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=400",
		Specs:       datatypes.JSON(`{"color":"teal","battery":"12h"}`),
	},
	{
		Name:        "Laptop Backpack",
		Price:       decimal.RequireFromString("49.99"),
		Description: "Water-resistant backpack that fits laptops up to 16 inches.",
		ImageUrl:    "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400",
		Specs:       datatypes.JSON(`{"volume":"22L","material":"recycled polyester"}`),
	},
}

func SyncDatabase() {
	if err := DB.AutoMigrate(&models.Product{}, &models.CartItem{}); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	var count int64
	if err := DB.Model(&models.Product{}).Count(&count).Error; err != nil {
		log.Println("Unable to count products:", err)
		return
	}
	if count == 0 {
		if err := DB.Create(&demoCatalog).Error; err != nil {
			log.Println("Failed to seed demo catalog:", err)
			return
		}
	}
	log.Println("Database synced successfully.")
}
