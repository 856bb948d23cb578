package views

import "servicehub/models"

type EcommerceView struct {
	Stores []StoreCard `json:"stores"`
}

// Ecommerce is the complement of the grocery store selection.
func Ecommerce(snap models.Snapshot) EcommerceView {
	return EcommerceView{
		Stores: filterStores(snap.Stores, func(s models.Store) bool { return !s.IsGrocery() }),
	}
}
