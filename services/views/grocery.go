package views

import "servicehub/models"

type GroceryView struct {
	Stores   []StoreCard   `json:"stores"`
	Products []ProductCard `json:"products"`
}

// Grocery shows stores whose category is exactly "grocery" and every product.
func Grocery(snap models.Snapshot) GroceryView {
	products := make([]ProductCard, 0, len(snap.Products))
	for _, p := range snap.Products {
		products = append(products, productCard(p))
	}
	return GroceryView{
		Stores:   filterStores(snap.Stores, models.Store.IsGrocery),
		Products: products,
	}
}
