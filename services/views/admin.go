package views

import "servicehub/models"

type AdminView struct {
	Metrics models.DashboardMetrics `json:"metrics"`
	Tiles   []StatTile              `json:"tiles"`
}

// Admin renders the dashboard counters. Absent fields were already zeroed at
// the gateway, so a missing revenue shows as ₹0.
func Admin(m models.DashboardMetrics) AdminView {
	return AdminView{
		Metrics: m,
		Tiles: []StatTile{
			{Label: "Total Users", Value: formatCount(m.TotalUsers)},
			{Label: "Total Orders", Value: formatCount(m.TotalOrders)},
			{Label: "Active Stores", Value: formatCount(m.TotalStores)},
			{Label: "Bookings", Value: formatCount(m.TotalBookings)},
			{Label: "Revenue", Value: formatMoney(m.Revenue)},
			{Label: "Growth", Value: formatPercent(m.GrowthRate)},
		},
	}
}
