package service

import (
	"time"

	"dealhunt/internal/model"
)

// SampleOffers returns the fixed sample catalog used by the seed endpoint and
// the seed CLI. Expiry dates are staggered relative to now.
func SampleOffers(now time.Time) []model.Offer {
	return []model.Offer{
		{
			Title:              "iPhone 15 Pro Max",
			Description:        "Latest iPhone with advanced camera system and A17 Pro chip",
			DiscountPercentage: 12,
			OriginalPrice:      floatPtr(159900),
			DiscountedPrice:    floatPtr(140712),
			Store:              "Amazon",
			Category:           "Electronics",
			ProductImage:       "https://images.unsplash.com/photo-1592750475338-74b7b21085ab?w=400",
			OfferLink:          "https://amazon.in/iphone-15-pro-max",
			ExpiryDate:         timePtr(now.AddDate(0, 0, 30)),
			IsActive:           true,
			CreatedAt:          now,
		},
		{
			Title:              "Nike Air Max Sneakers",
			Description:        "Comfortable and stylish sneakers for everyday wear",
			DiscountPercentage: 35,
			OriginalPrice:      floatPtr(8995),
			DiscountedPrice:    floatPtr(5847),
			Store:              "Flipkart",
			Category:           "Fashion",
			ProductImage:       "https://images.unsplash.com/photo-1549298916-b41d501d3772?w=400",
			OfferLink:          "https://flipkart.com/nike-air-max",
			ExpiryDate:         timePtr(now.AddDate(0, 0, 15)),
			IsActive:           true,
			CreatedAt:          now,
		},
		{
			Title:              "Denim Jackets Collection",
			Description:        "Trendy denim jackets for men and women",
			DiscountPercentage: 40,
			OriginalPrice:      floatPtr(2999),
			DiscountedPrice:    floatPtr(1799),
			Store:              "Myntra",
			Category:           "Fashion",
			ProductImage:       "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=400",
			OfferLink:          "https://myntra.com/denim-jackets",
			ExpiryDate:         timePtr(now.AddDate(0, 0, 20)),
			IsActive:           true,
			CreatedAt:          now,
		},
		{
			Title:              "Samsung 4K Smart TV 55\"",
			Description:        "Crystal UHD 4K Smart TV with HDR support",
			DiscountPercentage: 25,
			OriginalPrice:      floatPtr(45990),
			DiscountedPrice:    floatPtr(34493),
			Store:              "Amazon",
			Category:           "Electronics",
			ProductImage:       "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?w=400",
			OfferLink:          "https://amazon.in/samsung-4k-tv",
			ExpiryDate:         timePtr(now.AddDate(0, 0, 25)),
			IsActive:           true,
			CreatedAt:          now,
		},
		{
			Title:              "Boat Headphones Wireless",
			Description:        "Premium wireless headphones with active noise cancellation",
			DiscountPercentage: 50,
			OriginalPrice:      floatPtr(4999),
			DiscountedPrice:    floatPtr(2499),
			Store:              "Flipkart",
			Category:           "Electronics",
			ProductImage:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400",
			OfferLink:          "https://flipkart.com/boat-headphones",
			ExpiryDate:         timePtr(now.AddDate(0, 0, 10)),
			IsActive:           true,
			CreatedAt:          now,
		},
		{
			Title:              "Kitchen Appliances Combo",
			Description:        "Complete kitchen appliances set including mixer, toaster, kettle",
			DiscountPercentage: 30,
			OriginalPrice:      floatPtr(15999),
			DiscountedPrice:    floatPtr(11199),
			Store:              "Meesho",
			Category:           "Home & Kitchen",
			ProductImage:       "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=400",
			OfferLink:          "https://meesho.com/kitchen-combo",
			ExpiryDate:         timePtr(now.AddDate(0, 0, 18)),
			IsActive:           true,
			CreatedAt:          now,
		},
	}
}

// Categories is the static category list exposed on /categories.
var Categories = []string{
	"Electronics", "Fashion", "Home & Kitchen", "Sports & Fitness",
	"Books", "Beauty", "Groceries", "Mobile",
}

// Stores is the static store list exposed on /categories.
var Stores = []string{"Amazon", "Flipkart", "Myntra", "Ajio", "Meesho"}

func floatPtr(v float64) *float64 {
	return &v
}

func timePtr(t time.Time) *time.Time {
	return &t
}
