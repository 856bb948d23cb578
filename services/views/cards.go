// Package views maps fetched marketplace data and session UI state to view
// models. Every function here is pure: no I/O, no mutation of its inputs.
package views

import (
	"strconv"
	"strings"

	"servicehub/models"
)

const (
	currencySymbol = "₹"
	lowStockLabel  = "Low Stock"
)

type StoreCard struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	Rating       float64 `json:"rating"`
	RatingLabel  string  `json:"rating_label"`
	DeliveryTime string  `json:"delivery_time"`
	Active       bool    `json:"active"`
}

type ProductCard struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	PriceLabel string  `json:"price_label"`
	Stock      int     `json:"stock"`
	StockLabel string  `json:"stock_label"`
	Image      string  `json:"image"`
	LowStock   bool    `json:"low_stock"`
}

func storeCard(s models.Store) StoreCard {
	return StoreCard{
		ID:           s.ID,
		Name:         s.Name,
		Category:     s.Category,
		Description:  s.Description,
		City:         s.Location.City,
		State:        s.Location.State,
		Rating:       s.Rating,
		RatingLabel:  formatRating(s.Rating),
		DeliveryTime: s.DeliveryTime,
		Active:       s.IsActive,
	}
}

func productCard(p models.Product) ProductCard {
	card := ProductCard{
		ID:         p.ID,
		Name:       p.Name,
		Price:      p.Price,
		PriceLabel: formatMoney(p.Price),
		Stock:      p.Stock,
		StockLabel: strconv.Itoa(p.Stock) + " in stock",
		Image:      p.CoverImage(),
		LowStock:   p.LowStock(),
	}
	if card.LowStock {
		card.StockLabel = lowStockLabel
	}
	return card
}

// filterStores keeps the stores for which keep returns true, in input order.
func filterStores(stores []models.Store, keep func(models.Store) bool) []StoreCard {
	out := make([]StoreCard, 0, len(stores))
	for _, s := range stores {
		if keep(s) {
			out = append(out, storeCard(s))
		}
	}
	return out
}

func formatMoney(v float64) string {
	return currencySymbol + groupThousands(strconv.FormatFloat(v, 'f', -1, 64))
}

func formatRating(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

func formatCount(v int64) string {
	return groupThousands(strconv.FormatInt(v, 10))
}

// groupThousands inserts commas into the integer part of a decimal string.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	if len(intPart) <= 3 {
		return sign + intPart + frac
	}
	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return sign + b.String() + frac
}
