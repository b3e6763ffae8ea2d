package domain

import "context"

// Snapshot is the persisted layout of the store: one JSON document with
// three top-level arrays.
type Snapshot struct {
	Designs  []Design    `json:"designs"`
	Products []Product   `json:"products"`
	Cart     []CartEntry `json:"cart"`
}

// Stats reports collection sizes
type Stats struct {
	Designs   int `json:"designs"`
	Products  int `json:"products"`
	CartLines int `json:"cart_lines"`
	CartUnits int `json:"cart_units"`
}

// Store is the single in-process authority for designs, products and cart
// entries. No operation fails; lookups report absence with a boolean.
type Store interface {
	SaveDesign(ctx context.Context, design Design)
	Designs(ctx context.Context) []Design
	DesignByID(ctx context.Context, id string) (Design, bool)
	DeleteDesign(ctx context.Context, id string)

	SaveProduct(ctx context.Context, product Product)
	Products(ctx context.Context) []Product
	ProductByID(ctx context.Context, id string) (Product, bool)
	DeleteProduct(ctx context.Context, id string)

	AddToCart(ctx context.Context, productID string, quantity int)
	RemoveFromCart(ctx context.Context, productID string)
	UpdateCartItemQuantity(ctx context.Context, productID string, quantity int) bool
	DeductFromCart(ctx context.Context, productID string, quantity int)
	Cart(ctx context.Context) []CartEntry
	ClearCart(ctx context.Context)

	Stats(ctx context.Context) Stats
}

// SnapshotBackend loads and saves whole-store snapshots
type SnapshotBackend interface {
	Name() string
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snapshot *Snapshot) error
}
