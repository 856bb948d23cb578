package views

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"servicehub/models"
)

// estimateKm is the trip length the indicative fare on each card is quoted for.
const estimateKm = 5

type CabServiceCard struct {
	ID             string  `json:"id"`
	ServiceType    string  `json:"service_type"`
	Title          string  `json:"title"`
	BaseFare       float64 `json:"base_fare"`
	PricePerKm     float64 `json:"price_per_km"`
	FareLabel      string  `json:"fare_label"`
	Estimate       float64 `json:"estimate"`
	EstimateLabel  string  `json:"estimate_label"`
	AvailableSlots int     `json:"available_slots"`
	Selected       bool    `json:"selected"`
}

type CabView struct {
	Form     models.CabForm   `json:"form"`
	Services []CabServiceCard `json:"services"`
	// Ready is true once both addresses are filled in. Booking stays inert.
	Ready bool `json:"ready"`
}

// Cab lists every cab service and echoes the captured form.
func Cab(services []models.CabService, form models.CabForm) CabView {
	cards := make([]CabServiceCard, 0, len(services))
	for _, c := range services {
		cards = append(cards, CabServiceCard{
			ID:             c.ID,
			ServiceType:    c.ServiceType,
			Title:          titleCase(c.ServiceType),
			BaseFare:       c.BaseFare,
			PricePerKm:     c.PricePerKm,
			FareLabel:      formatMoney(c.BaseFare) + " + " + formatMoney(c.PricePerKm) + "/km",
			Estimate:       c.EstimateFare(estimateKm),
			EstimateLabel:  "about " + formatMoney(c.EstimateFare(estimateKm)) + " for " + strconv.Itoa(estimateKm) + " km",
			AvailableSlots: c.AvailableSlots,
			Selected:       form.ServiceType != "" && form.ServiceType == c.ServiceType,
		})
	}
	return CabView{
		Form:     form,
		Services: cards,
		Ready:    form.Pickup != "" && form.Destination != "",
	}
}

func titleCase(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
