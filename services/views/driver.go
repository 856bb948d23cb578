package views

type StatTile struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type TripRow struct {
	Route string `json:"route"`
	Fare  string `json:"fare"`
	When  string `json:"when"`
}

type DriverView struct {
	Stats       []StatTile `json:"stats"`
	RecentTrips []TripRow  `json:"recent_trips"`
}

// Driver renders placeholder figures; no driver data source exists yet.
func Driver() DriverView {
	return DriverView{
		Stats: []StatTile{
			{Label: "Today's Earnings", Value: formatMoney(1250)},
			{Label: "Trips Completed", Value: "8"},
			{Label: "Rating", Value: formatRating(4.8)},
			{Label: "Online Hours", Value: "6.5h"},
		},
		RecentTrips: []TripRow{
			{Route: "RTC Bus Stand → Kadapa Railway Station", Fare: formatMoney(120), When: "10:15 AM"},
			{Route: "YSR Circle → Collectorate", Fare: formatMoney(85), When: "11:40 AM"},
		},
	}
}
