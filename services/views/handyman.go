package views

import "servicehub/models"

type Facet struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type HandymanCard struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	Rating       float64  `json:"rating"`
	RatingLabel  string   `json:"rating_label"`
	PriceRange   string   `json:"price_range"`
	Availability []string `json:"availability"`
}

type HandymanView struct {
	Categories []Facet         `json:"categories"`
	Services   []HandymanCard `json:"services"`
}

// CategoryFacets returns each distinct category once, in order of first appearance.
func CategoryFacets(services []models.HandymanService) []string {
	seen := make(map[string]struct{}, len(services))
	out := make([]string, 0, len(services))
	for _, s := range services {
		if _, ok := seen[s.Category]; ok {
			continue
		}
		seen[s.Category] = struct{}{}
		out = append(out, s.Category)
	}
	return out
}

// Handyman renders every service; selected only marks the active facet.
func Handyman(services []models.HandymanService, selected string) HandymanView {
	names := CategoryFacets(services)
	facets := make([]Facet, 0, len(names))
	for _, n := range names {
		facets = append(facets, Facet{Name: n, Active: n == selected})
	}

	cards := make([]HandymanCard, 0, len(services))
	for _, s := range services {
		cards = append(cards, HandymanCard{
			ID:           s.ID,
			Name:         s.Name,
			Category:     s.Category,
			Description:  s.Description,
			Rating:       s.Rating,
			RatingLabel:  formatRating(s.Rating),
			PriceRange:   s.PriceRange,
			Availability: append([]string(nil), s.Availability...),
		})
	}
	return HandymanView{Categories: facets, Services: cards}
}
