package catalog

import "github.com/shopscout/backend/internal/domain"

// SeedProducts returns the built-in demo catalog used when no external
// data file is configured.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID: 1, Name: "Red Nike Air Max", Price: 2499, Rating: 4.5,
			Brand: "Nike", Color: "red", Category: "apparel", Platform: "Amazon",
			Description: "Comfortable running shoes with Air Max cushioning",
			BuyLink:     "https://amazon.in/nike-air-max-red",
			ImageURL:    "https://via.placeholder.com/300x200/ff0000/ffffff?text=Nike+Red",
		},
		{
			ID: 2, Name: "Adidas Ultraboost 22", Price: 5999, Rating: 4.6,
			Brand: "Adidas", Color: "black", Category: "apparel", Platform: "Flipkart",
			Description: "Premium running shoes with Boost midsole",
			BuyLink:     "https://flipkart.com/adidas-ultraboost",
			ImageURL:    "https://via.placeholder.com/300x200/000000/ffffff?text=Ultraboost",
		},
		{
			ID: 3, Name: "Levi's Blue Denim Jacket", Price: 1899, Rating: 4.2,
			Brand: "Levi's", Color: "blue", Category: "apparel", Platform: "Myntra",
			Description: "Classic trucker denim jacket in stonewash blue",
			BuyLink:     "https://myntra.com/levis-denim-jacket",
			ImageURL:    "https://via.placeholder.com/300x200/0000ff/ffffff?text=Denim",
		},
		{
			ID: 4, Name: "Puma White Sneakers", Price: 2199, Rating: 4.0,
			Brand: "Puma", Color: "white", Category: "apparel", Platform: "Amazon",
			Description: "Everyday casual sneakers with soft foam insole",
			BuyLink:     "https://amazon.in/puma-sneakers",
			ImageURL:    "https://via.placeholder.com/300x200/ffffff/000000?text=Puma",
		},
		{
			ID: 5, Name: "Redmi Note 13", Price: 13999, Rating: 4.3,
			Brand: "Redmi", Color: "black", Category: "mobiles", Platform: "Amazon",
			Description: "Budget smartphone with AMOLED display and 5000mAh battery",
			BuyLink:     "https://amazon.in/redmi-note-13",
			ImageURL:    "https://via.placeholder.com/300x200/333333/ffffff?text=Redmi",
		},
		{
			ID: 6, Name: "Samsung Galaxy M34", Price: 14499, Rating: 4.1,
			Brand: "Samsung", Color: "blue", Category: "mobiles", Platform: "Flipkart",
			Description: "Mid-range phone with Super AMOLED screen and triple camera",
			BuyLink:     "https://flipkart.com/galaxy-m34",
			ImageURL:    "https://via.placeholder.com/300x200/0044aa/ffffff?text=Galaxy",
		},
		{
			ID: 7, Name: "OnePlus Nord CE 4", Price: 24999, Rating: 4.4,
			Brand: "OnePlus", Color: "green", Category: "mobiles", Platform: "Amazon",
			Description: "Fast smartphone with Snapdragon chipset and 100W charging",
			BuyLink:     "https://amazon.in/oneplus-nord-ce4",
			ImageURL:    "https://via.placeholder.com/300x200/00aa44/ffffff?text=Nord",
		},
		{
			ID: 8, Name: "iPhone 15", Price: 69999, Rating: 4.7,
			Brand: "Apple", Color: "black", Category: "mobiles", Platform: "Amazon",
			Description: "Flagship phone with A16 Bionic and 48MP camera",
			BuyLink:     "https://amazon.in/iphone-15",
			ImageURL:    "https://via.placeholder.com/300x200/111111/ffffff?text=iPhone",
		},
		{
			ID: 9, Name: "HP Pavilion 15", Price: 46999, Rating: 4.2,
			Brand: "HP", Color: "silver", Category: "electronics", Platform: "Flipkart",
			Description: "Laptop with Ryzen 5, 16GB RAM and 512GB SSD",
			BuyLink:     "https://flipkart.com/hp-pavilion-15",
			ImageURL:    "https://via.placeholder.com/300x200/cccccc/000000?text=Pavilion",
		},
		{
			ID: 10, Name: "Lenovo IdeaPad Slim 5", Price: 42999, Rating: 4.3,
			Brand: "Lenovo", Color: "gray", Category: "electronics", Platform: "Amazon",
			Description: "Thin and light laptop with Intel Core i5 and backlit keyboard",
			BuyLink:     "https://amazon.in/ideapad-slim-5",
			ImageURL:    "https://via.placeholder.com/300x200/888888/ffffff?text=IdeaPad",
		},
		{
			ID: 11, Name: "MacBook Air M2", Price: 94999, Rating: 4.8,
			Brand: "Apple", Color: "silver", Category: "electronics", Platform: "Amazon",
			Description: "Apple laptop with M2 chip and all-day battery life",
			BuyLink:     "https://amazon.in/macbook-air-m2",
			ImageURL:    "https://via.placeholder.com/300x200/dddddd/000000?text=MacBook",
		},
		{
			ID: 12, Name: "boAt Rockerz 450", Price: 1499, Rating: 4.0,
			Brand: "boAt", Color: "blue", Category: "electronics", Platform: "Flipkart",
			Description: "Wireless on-ear headphones with 15 hour playback",
			BuyLink:     "https://flipkart.com/boat-rockerz-450",
			ImageURL:    "https://via.placeholder.com/300x200/0066cc/ffffff?text=Rockerz",
		},
		{
			ID: 13, Name: "Sony WH-CH520", Price: 2799, Rating: 4.4,
			Brand: "Sony", Color: "black", Category: "electronics", Platform: "Amazon",
			Description: "Wireless headphones with 50 hour battery and multipoint",
			BuyLink:     "https://amazon.in/sony-wh-ch520",
			ImageURL:    "https://via.placeholder.com/300x200/222222/ffffff?text=Sony",
		},
		{
			ID: 14, Name: "Samsung Crystal 4K TV 43in", Price: 31999, Rating: 4.3,
			Brand: "Samsung", Color: "black", Category: "electronics", Platform: "Flipkart",
			Description: "43 inch 4K UHD smart television with Tizen OS",
			BuyLink:     "https://flipkart.com/samsung-crystal-4k",
			ImageURL:    "https://via.placeholder.com/300x200/000000/ffffff?text=4K+TV",
		},
	}
}
