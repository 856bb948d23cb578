// Package fixtures serves the marketplace API contract from seed data so the
// dashboard can run without a backend.
package fixtures

import "servicehub/models"

// Data is the in-memory catalogue served by the fixture routes.
type Data struct {
	Stores           []models.Store
	Products         []models.Product
	CabServices      []models.CabService
	HandymanServices []models.HandymanService
	TotalUsers       int64
	TotalOrders      int64
	TotalBookings    int64
	Revenue          float64
	GrowthRate       float64
}

var kadapa = models.Location{City: "Kadapa", State: "Andhra Pradesh", Pincode: "516001"}

// Seed returns the sample catalogue for Kadapa.
func Seed() *Data {
	return &Data{
		Stores: []models.Store{
			{
				ID:           "store-1",
				Name:         "Fresh Mart Kadapa",
				Description:  "Premium grocery store with fresh vegetables and fruits",
				Category:     models.GroceryCategory,
				VendorID:     "vendor-1",
				Location:     kadapa,
				Rating:       4.5,
				DeliveryTime: "20-30 mins",
				IsActive:     true,
			},
			{
				ID:           "store-2",
				Name:         "Electronics Hub",
				Description:  "Latest electronics and gadgets",
				Category:     "electronics",
				VendorID:     "vendor-2",
				Location:     kadapa,
				Rating:       4.2,
				DeliveryTime: "45-60 mins",
				IsActive:     true,
			},
		},
		Products: []models.Product{
			{
				ID:          "prod-1",
				Name:        "Fresh Tomatoes",
				Description: "Farm fresh tomatoes from local farms",
				Price:       40,
				Category:    "vegetables",
				StoreID:     "store-1",
				Images:      []string{"https://images.unsplash.com/photo-1588964895597-cfccd6e2dbf9"},
				Stock:       100,
				IsAvailable: true,
			},
			{
				ID:          "prod-2",
				Name:        "Basmati Rice (5kg)",
				Description: "Premium quality basmati rice",
				Price:       450,
				Category:    "groceries",
				StoreID:     "store-1",
				Images:      []string{"https://images.unsplash.com/photo-1695653422259-8a74ffe90401"},
				Stock:       50,
				IsAvailable: true,
			},
		},
		CabServices: []models.CabService{
			{ID: "cab-1", ServiceType: "economy", AvailableSlots: 15, PricePerKm: 12, BaseFare: 50, Location: kadapa, IsActive: true},
			{ID: "cab-2", ServiceType: "premium", AvailableSlots: 8, PricePerKm: 18, BaseFare: 80, Location: kadapa, IsActive: true},
		},
		HandymanServices: []models.HandymanService{
			{
				ID:             "handy-1",
				Category:       "plumbing",
				ProfessionalID: "prof-1",
				Name:           "Expert Plumbing Services",
				Description:    "Professional plumbing repairs and installations",
				PriceRange:     "₹300-₹800",
				Rating:         4.7,
				Availability:   []string{"morning", "afternoon", "evening"},
				Location:       kadapa,
				IsActive:       true,
			},
			{
				ID:             "handy-2",
				Category:       "electrical",
				ProfessionalID: "prof-2",
				Name:           "Electrical Solutions",
				Description:    "Complete electrical repairs and maintenance",
				PriceRange:     "₹250-₹600",
				Rating:         4.5,
				Availability:   []string{"morning", "afternoon"},
				Location:       kadapa,
				IsActive:       true,
			},
		},
		Revenue:    125000,
		GrowthRate: 15.5,
	}
}

// Dashboard aggregates the counters the analytics endpoint reports.
func (d *Data) Dashboard() models.DashboardMetrics {
	var active int64
	for _, s := range d.Stores {
		if s.IsActive {
			active++
		}
	}
	return models.DashboardMetrics{
		TotalUsers:    d.TotalUsers,
		TotalOrders:   d.TotalOrders,
		TotalStores:   active,
		TotalBookings: d.TotalBookings,
		Revenue:       d.Revenue,
		GrowthRate:    d.GrowthRate,
	}
}
