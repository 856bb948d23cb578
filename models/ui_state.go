package models

import (
	"errors"
	"fmt"
)

var ErrInvalidTab = errors.New("invalid service tab")

// ServiceTab is the customer-facing vertical currently shown.
type ServiceTab string

const (
	TabGrocery   ServiceTab = "grocery"
	TabEcommerce ServiceTab = "ecommerce"
	TabCab       ServiceTab = "cab"
	TabHandyman  ServiceTab = "handyman"
)

var ServiceTabs = []ServiceTab{TabGrocery, TabEcommerce, TabCab, TabHandyman}

func ParseServiceTab(s string) (ServiceTab, error) {
	for _, t := range ServiceTabs {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTab, s)
}

// CabForm holds the booking form fields. They are captured, never submitted.
type CabForm struct {
	Pickup      string `json:"pickup"`
	Destination string `json:"destination"`
	ServiceType string `json:"service_type"`
}

// UIState is the session's view-local state. Each field has a single owning view.
type UIState struct {
	MenuOpen         bool       `json:"menu_open"`
	ServiceTab       ServiceTab `json:"service_tab"`
	Cab              CabForm    `json:"cab"`
	HandymanCategory string     `json:"handyman_category"`
}

func DefaultUIState() UIState {
	return UIState{ServiceTab: TabGrocery}
}
