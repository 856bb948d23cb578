package models

// CabService is a bookable ride tier, not a booking.
type CabService struct {
	ID             string   `json:"id"`
	ServiceType    string   `json:"service_type"`
	BaseFare       float64  `json:"base_fare"`
	PricePerKm     float64  `json:"price_per_km"`
	AvailableSlots int      `json:"available_slots"`
	Location       Location `json:"location"`
	IsActive       bool     `json:"is_active"`
}

// EstimateFare returns the fare for a trip of km kilometres.
func (c CabService) EstimateFare(km float64) float64 {
	if km < 0 {
		km = 0
	}
	return c.BaseFare + c.PricePerKm*km
}

// HandymanService is a professional's offering in one category.
type HandymanService struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Description    string   `json:"description"`
	ProfessionalID string   `json:"professional_id,omitempty"`
	Rating         float64  `json:"rating"`
	PriceRange     string   `json:"price_range"`
	Availability   []string `json:"availability"`
	Location       Location `json:"location"`
	IsActive       bool     `json:"is_active"`
}
