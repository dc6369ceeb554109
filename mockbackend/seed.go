package mockbackend

import "github.com/craftandcarry/admin-api/transforms"

func f(v float64) *float64 { return &v }
func i(v int) *int         { return &v }

// seedProducts is the starter catalog the stub backend serves, matching
// the shop's three categories.
func seedProducts() []transforms.BackendProduct {
	return []transforms.BackendProduct{
		{
			ID:              "p-1",
			CategoryName:    "Bags",
			ItemName:        "Classic Leather Tote",
			ItemDescription: "A timeless leather tote bag perfect for everyday use",
			ItemFeatures:    []string{"100% Genuine Leather", "Multiple Compartments", "Adjustable Straps", "Handcrafted"},
			ItemPrice:       f(4500),
			Discount:        f(10),
			Gender:          "Women",
			ItemImageURL:    "/uploads/classic-leather-tote.jpg",
		},
		{
			ID:              "p-2",
			CategoryName:    "Bags",
			ItemName:        "Executive Briefcase",
			ItemDescription: "Professional briefcase for business executives",
			ItemFeatures:    []string{"Premium Leather", "Laptop Compartment", "Water Resistant", "Durable Hardware"},
			ItemPrice:       f(6500),
			Discount:        f(15),
			Gender:          "Men",
			ItemImageURL:    "/uploads/executive-briefcase.jpg",
		},
		{
			ID:              "p-3",
			CategoryName:    "Bags",
			ItemName:        "Vintage Messenger Bag",
			ItemDescription: "Stylish messenger bag with vintage appeal",
			ItemFeatures:    []string{"Distressed Leather", "Cross-body Strap", "Quick Access Pocket", "Classic Design"},
			ItemPrice:       f(3800),
			Discount:        f(5),
			Gender:          "Unisex",
			ItemImageURL:    "/uploads/vintage-messenger.jpg",
		},
		{
			ID:              "p-4",
			CategoryName:    "Purses",
			ItemName:        "Luxury Wallet",
			ItemDescription: "Premium leather wallet with RFID protection",
			ItemFeatures:    []string{"RFID Blocking", "Multiple Card Slots", "Slim Design", "Soft Leather"},
			ItemPrice:       f(1200),
			Discount:        f(0),
			Gender:          "Men",
			ItemImageURL:    "/uploads/luxury-wallet.jpg",
		},
		{
			ID:              "p-5",
			CategoryName:    "Purses",
			ItemName:        "Ladies Clutch",
			ItemDescription: "Elegant clutch perfect for special occasions",
			ItemFeatures:    []string{"Compact Design", "Chain Strap", "Premium Finish", "Interior Pockets"},
			ItemPrice:       f(2200),
			Discount:        f(20),
			Gender:          "Women",
			ItemImageURL:    "/uploads/ladies-clutch.jpg",
		},
		{
			ID:              "p-6",
			CategoryName:    "Belts",
			ItemName:        "Classic Leather Belt",
			ItemDescription: "Full-grain leather belt with brass buckle",
			ItemFeatures:    []string{"Full-grain Leather", "Brass Buckle", "Handstitched Edges"},
			ItemPrice:       f(950),
			Discount:        f(0),
			Gender:          "Unisex",
			ItemImageURL:    "/uploads/classic-belt.jpg",
		},
	}
}

func seedOrders() []*transforms.BackendOrder {
	return []*transforms.BackendOrder{
		{
			ID: "o-1001",
			User: &transforms.BackendOrderUser{
				ID: "u-1", UserName: "Priya Sharma", UserEmail: "priya@example.com", PhoneNumber: "9876543210",
			},
			Items: []transforms.BackendOrderItem{
				{
					ID: "oi-1",
					Product: &transforms.BackendOrderProduct{
						ID: "p-1", CategoryName: "Bags", ItemName: "Classic Leather Tote", ItemImageURL: "/uploads/classic-leather-tote.jpg",
					},
					ItemName: "Classic Leather Tote", ItemPrice: f(4500), Quantity: i(1),
				},
			},
			ShippingAddress: &transforms.BackendShippingAddress{
				Street: "14 MG Road", City: "Bengaluru", State: "Karnataka", Pincode: "560001", Phone: "9876543210",
			},
			TotalAmount:   f(4500),
			OrderStatus:   "processing",
			PaymentStatus: "completed",
			PaymentMethod: "online",
			CreatedAt:     "2026-08-20T10:15:00Z",
			UpdatedAt:     "2026-08-20T10:15:00Z",
		},
		{
			ID: "o-1002",
			User: &transforms.BackendOrderUser{
				ID: "u-2", UserName: "Rahul Verma", UserEmail: "rahul@example.com", PhoneNumber: "9123456780",
			},
			Items: []transforms.BackendOrderItem{
				{
					ID: "oi-2",
					Product: &transforms.BackendOrderProduct{
						ID: "p-4", CategoryName: "Purses", ItemName: "Luxury Wallet", ItemImageURL: "/uploads/luxury-wallet.jpg",
					},
					ItemName: "Luxury Wallet", ItemPrice: f(1200), Quantity: i(2),
				},
			},
			ShippingAddress: &transforms.BackendShippingAddress{
				Street: "7 Park Street", City: "Kolkata", State: "West Bengal", Pincode: "700016", Phone: "9123456780",
			},
			TotalAmount:   f(2400),
			OrderStatus:   "shipped",
			PaymentStatus: "completed",
			PaymentMethod: "card",
			CreatedAt:     "2026-08-18T14:30:00Z",
			UpdatedAt:     "2026-08-22T09:05:00Z",
		},
		{
			ID: "o-1003",
			User: &transforms.BackendOrderUser{
				ID: "u-3", UserName: "Anita Desai", UserEmail: "anita@example.com", PhoneNumber: "9988776655",
			},
			Items: []transforms.BackendOrderItem{
				{
					ID: "oi-3",
					Product: &transforms.BackendOrderProduct{
						ID: "p-6", CategoryName: "Belts", ItemName: "Classic Leather Belt", ItemImageURL: "/uploads/classic-belt.jpg",
					},
					ItemName: "Classic Leather Belt", ItemPrice: f(950), Quantity: i(1),
				},
			},
			ShippingAddress: &transforms.BackendShippingAddress{
				Street: "22 Linking Road", City: "Mumbai", State: "Maharashtra", Pincode: "400050", Phone: "9988776655",
			},
			TotalAmount:   f(950),
			OrderStatus:   "delivered",
			PaymentStatus: "completed",
			PaymentMethod: "cod",
			CreatedAt:     "2026-08-10T08:00:00Z",
			UpdatedAt:     "2026-08-15T17:45:00Z",
		},
		{
			ID: "o-1004",
			User: &transforms.BackendOrderUser{
				ID: "u-4", UserName: "Vikram Singh", UserEmail: "vikram@example.com", PhoneNumber: "9012345678",
			},
			Items: []transforms.BackendOrderItem{
				{
					ID: "oi-4",
					Product: &transforms.BackendOrderProduct{
						ID: "p-5", CategoryName: "Purses", ItemName: "Ladies Clutch", ItemImageURL: "/uploads/ladies-clutch.jpg",
					},
					ItemName: "Ladies Clutch", ItemPrice: f(2200), Quantity: i(1),
				},
			},
			ShippingAddress: &transforms.BackendShippingAddress{
				Street: "5 Civil Lines", City: "Jaipur", State: "Rajasthan", Pincode: "302006", Phone: "9012345678",
			},
			TotalAmount:   f(2200),
			OrderStatus:   "cancelled",
			PaymentStatus: "failed",
			PaymentMethod: "online",
			CreatedAt:     "2026-08-25T12:10:00Z",
			UpdatedAt:     "2026-08-26T10:00:00Z",
		},
	}
}
