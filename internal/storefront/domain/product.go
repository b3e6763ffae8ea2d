package domain

import "time"

// ProductStatus tracks where a configured product is in its lifecycle
type ProductStatus string

// Product statuses
const (
	ProductDraft   ProductStatus = "draft"
	ProductInCart  ProductStatus = "cart"
	ProductOrdered ProductStatus = "ordered"
)

// Product is a configured, purchasable variant of a Design. Reconfiguring a
// design creates a new Product rather than editing an existing one.
type Product struct {
	ID        string        `json:"id"`
	DesignID  string        `json:"designId"`
	Material  string        `json:"material"`
	Size      string        `json:"size"`
	Karat     int           `json:"karat,omitempty"`
	Color     string        `json:"color"`
	Hallmark  string        `json:"hallmark"`
	Purity    string        `json:"purity"`
	Weight    string        `json:"weight"`
	Quantity  int           `json:"quantity"`
	Status    ProductStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}
