package models

// DashboardMetrics is the aggregate snapshot shown to admins.
type DashboardMetrics struct {
	TotalUsers    int64   `json:"total_users"`
	TotalOrders   int64   `json:"total_orders"`
	TotalStores   int64   `json:"total_stores"`
	TotalBookings int64   `json:"total_bookings"`
	Revenue       float64 `json:"revenue"`
	GrowthRate    float64 `json:"growth_rate"`
}
