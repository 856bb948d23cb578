package models

// Location is the coarse address attached to stores and services.
type Location struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode,omitempty"`
}

// GroceryCategory is the store category rendered by the grocery view.
const GroceryCategory = "grocery"

// Store is a vendor offering grocery or general e-commerce goods.
type Store struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	VendorID     string   `json:"vendor_id,omitempty"`
	Location     Location `json:"location"`
	Rating       float64  `json:"rating"`
	DeliveryTime string   `json:"delivery_time"`
	IsActive     bool     `json:"is_active"`
}

// IsGrocery reports whether the store belongs to the grocery vertical.
// The comparison is exact; "Grocery" is not grocery.
func (s Store) IsGrocery() bool {
	return s.Category == GroceryCategory
}
