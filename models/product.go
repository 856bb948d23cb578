package models

const (
	// LowStockThreshold is the stock level below which a product is flagged.
	LowStockThreshold = 10

	// PlaceholderImage is used when a product carries no images.
	PlaceholderImage = "https://images.unsplash.com/photo-1542838132-92c53300491e"
)

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	StoreID     string   `json:"store_id"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	Images      []string `json:"images"`
	IsAvailable bool     `json:"is_available"`
}

// LowStock is derived, never stored.
func (p Product) LowStock() bool {
	return p.Stock < LowStockThreshold
}

// CoverImage returns the first image or the placeholder.
func (p Product) CoverImage() string {
	for _, img := range p.Images {
		if img != "" {
			return img
		}
	}
	return PlaceholderImage
}
