package views

import "servicehub/models"

type RoleTab struct {
	Role   models.Role `json:"role"`
	Label  string      `json:"label"`
	Active bool        `json:"active"`
}

type ServiceTabLink struct {
	Tab    models.ServiceTab `json:"tab"`
	Label  string            `json:"label"`
	Active bool              `json:"active"`
}

// Page is the full shell. Exactly one of the subtree pointers is set once
// loading has finished; none are set while loading.
type Page struct {
	Context     models.RoleContext `json:"context"`
	RoleTabs    []RoleTab          `json:"role_tabs"`
	MenuOpen    bool               `json:"menu_open"`
	Loading     bool               `json:"loading"`
	ServiceTabs []ServiceTabLink   `json:"service_tabs,omitempty"`

	Grocery   *GroceryView   `json:"grocery,omitempty"`
	Ecommerce *EcommerceView `json:"ecommerce,omitempty"`
	Cab       *CabView       `json:"cab,omitempty"`
	Handyman  *HandymanView  `json:"handyman,omitempty"`
	Driver    *DriverView    `json:"driver,omitempty"`
	Admin     *AdminView     `json:"admin,omitempty"`
}

var roleLabels = map[models.Role]string{
	models.RoleCustomer: "Customer",
	models.RoleDriver:   "Driver",
	models.RoleAdmin:    "Admin",
}

var tabLabels = map[models.ServiceTab]string{
	models.TabGrocery:   "Grocery",
	models.TabEcommerce: "E-commerce",
	models.TabCab:       "Cab Booking",
	models.TabHandyman:  "Handyman",
}

// Shell picks the active subtree from the role and, for customers, the service tab.
func Shell(rc models.RoleContext, ui models.UIState, snap models.Snapshot, loading bool) Page {
	page := Page{
		Context:  rc,
		MenuOpen: ui.MenuOpen,
		Loading:  loading,
	}
	for _, r := range models.Roles {
		page.RoleTabs = append(page.RoleTabs, RoleTab{Role: r, Label: roleLabels[r], Active: r == rc.Role})
	}
	if loading {
		return page
	}

	switch rc.Role {
	case models.RoleDriver:
		v := Driver()
		page.Driver = &v
	case models.RoleAdmin:
		v := Admin(snap.Dashboard)
		page.Admin = &v
	default:
		tab := ui.ServiceTab
		if tab == "" {
			tab = models.TabGrocery
		}
		for _, t := range models.ServiceTabs {
			page.ServiceTabs = append(page.ServiceTabs, ServiceTabLink{Tab: t, Label: tabLabels[t], Active: t == tab})
		}
		switch tab {
		case models.TabEcommerce:
			v := Ecommerce(snap)
			page.Ecommerce = &v
		case models.TabCab:
			v := Cab(snap.CabServices, ui.Cab)
			page.Cab = &v
		case models.TabHandyman:
			v := Handyman(snap.HandymanServices, ui.HandymanCategory)
			page.Handyman = &v
		default:
			v := Grocery(snap)
			page.Grocery = &v
		}
	}
	return page
}
