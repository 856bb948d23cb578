package gateway

import (
	"math"
	"strings"

	"servicehub/models"

	"github.com/spf13/cast"
)

// Wire types mirror the API payloads loosely: numerics and ids are decoded as
// interface{} so a missing or malformed value degrades to its zero value instead
// of failing the batch. normalize() is the only place defaults are applied.

type storesEnvelope struct {
	Stores []wireStore `json:"stores"`
}

type productsEnvelope struct {
	Products []wireProduct `json:"products"`
}

type cabServicesEnvelope struct {
	Services []wireCabService `json:"services"`
}

type handymanServicesEnvelope struct {
	Services []wireHandymanService `json:"services"`
}

type wireStore struct {
	ID           interface{} `json:"id"`
	Name         interface{} `json:"name"`
	Description  interface{} `json:"description"`
	Category     interface{} `json:"category"`
	VendorID     interface{} `json:"vendor_id"`
	Location     interface{} `json:"location"`
	Rating       interface{} `json:"rating"`
	DeliveryTime interface{} `json:"delivery_time"`
	IsActive     interface{} `json:"is_active"`
}

type wireProduct struct {
	ID          interface{} `json:"id"`
	Name        interface{} `json:"name"`
	Description interface{} `json:"description"`
	Category    interface{} `json:"category"`
	StoreID     interface{} `json:"store_id"`
	Price       interface{} `json:"price"`
	Stock       interface{} `json:"stock"`
	Images      interface{} `json:"images"`
	IsAvailable interface{} `json:"is_available"`
}

type wireCabService struct {
	ID             interface{} `json:"id"`
	ServiceType    interface{} `json:"service_type"`
	BaseFare       interface{} `json:"base_fare"`
	PricePerKm     interface{} `json:"price_per_km"`
	AvailableSlots interface{} `json:"available_slots"`
	Location       interface{} `json:"location"`
	IsActive       interface{} `json:"is_active"`
}

type wireHandymanService struct {
	ID             interface{} `json:"id"`
	Name           interface{} `json:"name"`
	Category       interface{} `json:"category"`
	Description    interface{} `json:"description"`
	ProfessionalID interface{} `json:"professional_id"`
	Rating         interface{} `json:"rating"`
	PriceRange     interface{} `json:"price_range"`
	Availability   interface{} `json:"availability"`
	Location       interface{} `json:"location"`
	IsActive       interface{} `json:"is_active"`
}

type wireDashboard struct {
	TotalUsers    interface{} `json:"total_users"`
	TotalOrders   interface{} `json:"total_orders"`
	TotalStores   interface{} `json:"total_stores"`
	TotalBookings interface{} `json:"total_bookings"`
	Revenue       interface{} `json:"revenue"`
	GrowthRate    interface{} `json:"growth_rate"`
}

func (e storesEnvelope) normalize() []models.Store {
	out := make([]models.Store, 0, len(e.Stores))
	for _, s := range e.Stores {
		out = append(out, models.Store{
			ID:           toString(s.ID),
			Name:         toString(s.Name),
			Description:  toString(s.Description),
			Category:     toString(s.Category),
			VendorID:     toString(s.VendorID),
			Location:     toLocation(s.Location),
			Rating:       toFloat(s.Rating),
			DeliveryTime: toString(s.DeliveryTime),
			IsActive:     toBool(s.IsActive, true),
		})
	}
	return out
}

func (e productsEnvelope) normalize() []models.Product {
	out := make([]models.Product, 0, len(e.Products))
	for _, p := range e.Products {
		images := toStrings(p.Images)
		if len(images) == 0 {
			images = []string{models.PlaceholderImage}
		}
		out = append(out, models.Product{
			ID:          toString(p.ID),
			Name:        toString(p.Name),
			Description: toString(p.Description),
			Category:    toString(p.Category),
			StoreID:     toString(p.StoreID),
			Price:       toFloat(p.Price),
			Stock:       cast.ToInt(p.Stock),
			Images:      images,
			IsAvailable: toBool(p.IsAvailable, true),
		})
	}
	return out
}

func (e cabServicesEnvelope) normalize() []models.CabService {
	out := make([]models.CabService, 0, len(e.Services))
	for _, c := range e.Services {
		out = append(out, models.CabService{
			ID:             toString(c.ID),
			ServiceType:    toString(c.ServiceType),
			BaseFare:       toFloat(c.BaseFare),
			PricePerKm:     toFloat(c.PricePerKm),
			AvailableSlots: cast.ToInt(c.AvailableSlots),
			Location:       toLocation(c.Location),
			IsActive:       toBool(c.IsActive, true),
		})
	}
	return out
}

func (e handymanServicesEnvelope) normalize() []models.HandymanService {
	out := make([]models.HandymanService, 0, len(e.Services))
	for _, h := range e.Services {
		out = append(out, models.HandymanService{
			ID:             toString(h.ID),
			Name:           toString(h.Name),
			Category:       toString(h.Category),
			Description:    toString(h.Description),
			ProfessionalID: toString(h.ProfessionalID),
			Rating:         toFloat(h.Rating),
			PriceRange:     toPriceRange(h.PriceRange),
			Availability:   toStrings(h.Availability),
			Location:       toLocation(h.Location),
			IsActive:       toBool(h.IsActive, true),
		})
	}
	return out
}

func (d wireDashboard) normalize() models.DashboardMetrics {
	return models.DashboardMetrics{
		TotalUsers:    cast.ToInt64(d.TotalUsers),
		TotalOrders:   cast.ToInt64(d.TotalOrders),
		TotalStores:   cast.ToInt64(d.TotalStores),
		TotalBookings: cast.ToInt64(d.TotalBookings),
		Revenue:       toFloat(d.Revenue),
		GrowthRate:    toFloat(d.GrowthRate),
	}
}

// toFloat treats NaN and the infinities like any other malformed number.
func toFloat(v interface{}) float64 {
	f := cast.ToFloat64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// toString renders ids given as numbers ("id": 1) the same as string ids.
func toString(v interface{}) string {
	if v == nil {
		return ""
	}
	return cast.ToString(v)
}

func toBool(v interface{}, def bool) bool {
	if v == nil {
		return def
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return def
	}
	return b
}

func toStrings(v interface{}) []string {
	raw, ok := v.([]interface{})
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s := strings.TrimSpace(toString(item)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func toLocation(v interface{}) models.Location {
	m, err := cast.ToStringMapE(v)
	if err != nil {
		return models.Location{}
	}
	return models.Location{
		City:    toString(m["city"]),
		State:   toString(m["state"]),
		Pincode: toString(m["pincode"]),
	}
}

// toPriceRange accepts either free text ("₹300-₹800") or {"min":300,"max":800}.
func toPriceRange(v interface{}) string {
	if m, err := cast.ToStringMapE(v); err == nil {
		lo, hi := toFloat(m["min"]), toFloat(m["max"])
		if hi == 0 {
			return "₹" + cast.ToString(lo) + "+"
		}
		return "₹" + cast.ToString(lo) + "-₹" + cast.ToString(hi)
	}
	return toString(v)
}
