package models

import "time"

// Snapshot is the result of one successful batch fetch. It is never mutated
// after assembly; a new batch replaces it wholesale.
type Snapshot struct {
	Stores           []Store           `json:"stores"`
	Products         []Product         `json:"products"`
	CabServices      []CabService      `json:"cab_services"`
	HandymanServices []HandymanService `json:"handyman_services"`
	Dashboard        DashboardMetrics  `json:"dashboard"`
	FetchedAt        time.Time         `json:"fetched_at"`
}

// IsEmpty reports whether no batch has ever been applied.
func (s Snapshot) IsEmpty() bool {
	return s.FetchedAt.IsZero()
}
