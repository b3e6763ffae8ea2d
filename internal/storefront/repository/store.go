package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/tair/jewelkraft/internal/storefront/domain"
	"github.com/tair/jewelkraft/pkg/logger"
)

// MemoryStore keeps designs, products and cart entries in memory and hands a
// full snapshot to its backend after every mutation. Backend failures are
// logged; the in-memory write always stands.
type MemoryStore struct {
	mu       sync.RWMutex
	designs  []domain.Design
	products []domain.Product
	cart     []domain.CartEntry
	backend  domain.SnapshotBackend
	closed   bool
}

var _ domain.Store = (*MemoryStore)(nil)

// NewMemoryStore creates a store seeded from the backend's current snapshot
func NewMemoryStore(ctx context.Context, backend domain.SnapshotBackend) (*MemoryStore, error) {
	snapshot, err := backend.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s snapshot: %w", backend.Name(), err)
	}

	s := &MemoryStore{backend: backend}
	if snapshot != nil {
		s.designs = snapshot.Designs
		s.products = snapshot.Products
		s.cart = snapshot.Cart
	}

	logger.Info(ctx).
		Str("backend", backend.Name()).
		Int("designs", len(s.designs)).
		Int("products", len(s.products)).
		Int("cart_lines", len(s.cart)).
		Msg("Store initialized")

	return s, nil
}

// SaveDesign replaces the design with the same id or appends it
func (s *MemoryStore) SaveDesign(ctx context.Context, design domain.Design) {
	s.mu.Lock()
	defer s.mu.Unlock()

	design = design.Clone()
	if i := slices.IndexFunc(s.designs, func(d domain.Design) bool { return d.ID == design.ID }); i >= 0 {
		s.designs[i] = design
	} else {
		s.designs = append(s.designs, design)
	}
	s.persist(ctx)
}

// Designs returns every design in insertion order
func (s *MemoryStore) Designs(ctx context.Context) []domain.Design {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Design, len(s.designs))
	for i, d := range s.designs {
		out[i] = d.Clone()
	}
	return out
}

// DesignByID returns the first design with the given id
func (s *MemoryStore) DesignByID(ctx context.Context, id string) (domain.Design, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.designs {
		if d.ID == id {
			return d.Clone(), true
		}
	}
	return domain.Design{}, false
}

// DeleteDesign removes every design with the given id
func (s *MemoryStore) DeleteDesign(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.designs = slices.DeleteFunc(s.designs, func(d domain.Design) bool { return d.ID == id })
	s.persist(ctx)
}

// SaveProduct replaces the product with the same id or appends it
func (s *MemoryStore) SaveProduct(ctx context.Context, product domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := slices.IndexFunc(s.products, func(p domain.Product) bool { return p.ID == product.ID }); i >= 0 {
		s.products[i] = product
	} else {
		s.products = append(s.products, product)
	}
	s.persist(ctx)
}

// Products returns every product in insertion order
func (s *MemoryStore) Products(ctx context.Context) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.products)
}

// ProductByID returns the first product with the given id
func (s *MemoryStore) ProductByID(ctx context.Context, id string) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// DeleteProduct removes every product with the given id. Cart entries that
// point at it are left in place.
func (s *MemoryStore) DeleteProduct(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = slices.DeleteFunc(s.products, func(p domain.Product) bool { return p.ID == id })
	s.persist(ctx)
}

// AddToCart adds quantity to the product's entry, creating it if needed.
// The quantity is taken as given.
func (s *MemoryStore) AddToCart(ctx context.Context, productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.cartIndex(productID); i >= 0 {
		s.cart[i].Quantity += quantity
	} else {
		s.cart = append(s.cart, domain.CartEntry{ProductID: productID, Quantity: quantity})
	}
	s.persist(ctx)
}

// RemoveFromCart drops the product's entry if there is one
func (s *MemoryStore) RemoveFromCart(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = slices.DeleteFunc(s.cart, func(e domain.CartEntry) bool { return e.ProductID == productID })
	s.persist(ctx)
}

// UpdateCartItemQuantity sets the quantity of an existing entry. It reports
// false and changes nothing when the product is not in the cart.
func (s *MemoryStore) UpdateCartItemQuantity(ctx context.Context, productID string, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.cartIndex(productID)
	if i < 0 {
		return false
	}
	s.cart[i].Quantity = quantity
	s.persist(ctx)
	return true
}

// DeductFromCart lowers the product's quantity by quantity and drops the
// entry once nothing is left. Units added after the caller read the cart stay.
func (s *MemoryStore) DeductFromCart(ctx context.Context, productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.cartIndex(productID)
	if i < 0 {
		return
	}
	if s.cart[i].Quantity <= quantity {
		s.cart = slices.Delete(s.cart, i, i+1)
	} else {
		s.cart[i].Quantity -= quantity
	}
	s.persist(ctx)
}

// Cart returns the cart entries in insertion order
func (s *MemoryStore) Cart(ctx context.Context) []domain.CartEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.cart)
}

// ClearCart empties the cart
func (s *MemoryStore) ClearCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = nil
	s.persist(ctx)
}

// Stats returns the current collection sizes
func (s *MemoryStore) Stats(ctx context.Context) domain.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := domain.Stats{
		Designs:   len(s.designs),
		Products:  len(s.products),
		CartLines: len(s.cart),
	}
	for _, e := range s.cart {
		stats.CartUnits += e.Quantity
	}
	return stats
}

// Close flushes a final snapshot and discards the collections
func (s *MemoryStore) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	err := s.backend.Save(ctx, s.snapshot())
	s.designs, s.products, s.cart = nil, nil, nil
	if err != nil {
		return fmt.Errorf("failed to flush %s snapshot: %w", s.backend.Name(), err)
	}
	return nil
}

func (s *MemoryStore) cartIndex(productID string) int {
	return slices.IndexFunc(s.cart, func(e domain.CartEntry) bool { return e.ProductID == productID })
}

// snapshot copies the collections; callers hold the lock
func (s *MemoryStore) snapshot() *domain.Snapshot {
	designs := make([]domain.Design, len(s.designs))
	for i, d := range s.designs {
		designs[i] = d.Clone()
	}
	return &domain.Snapshot{
		Designs:  designs,
		Products: append([]domain.Product{}, s.products...),
		Cart:     append([]domain.CartEntry{}, s.cart...),
	}
}

// persist hands the snapshot to the backend; callers hold the write lock.
// The write is detached from ctx cancellation so a caller that goes away
// mid-request does not abort it.
func (s *MemoryStore) persist(ctx context.Context) {
	if s.closed {
		return
	}
	if err := s.backend.Save(context.WithoutCancel(ctx), s.snapshot()); err != nil {
		logger.Warn(ctx).
			Err(err).
			Str("backend", s.backend.Name()).
			Msg("Snapshot not persisted, keeping in-memory state")
	}
}
