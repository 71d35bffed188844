// internal/domain/cart/store.go
package cart

import (
	"context"
	"errors"

	"github.com/goldenbarrel/storefront-backend/internal/domain/catalog"
	"github.com/goldenbarrel/storefront-backend/internal/domain/pricing"
	"github.com/sirupsen/logrus"
)

// Store owns the per-session line-item collections and is their single source
// of truth. Every mutation re-serializes the whole cart to the repository;
// reads hydrate from it. A blob that fails to decode degrades to an empty cart
// with a warning, never an error.
type Store struct {
	repo Repository
	log  *logrus.Logger
}

// NewStore creates a cart store on top of a repository
func NewStore(repo Repository, log *logrus.Logger) *Store {
	return &Store{repo: repo, log: log}
}

// Get hydrates the session's cart, returning an empty cart when none exists
// or the persisted blob is unreadable.
func (s *Store) Get(ctx context.Context, sessionID string) []LineItem {
	items, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) && s.log != nil {
			s.log.WithField("session_id", sessionID).WithError(err).
				Warn("Cart hydration failed, starting empty")
		}
		return nil
	}
	return items
}

// Add puts a product in the cart. Adding an id already present accumulates
// quantity and, when opts is non-nil, replaces the stored options; a new id
// is appended so insertion order is preserved. Quantities below 1 count as 1.
func (s *Store) Add(ctx context.Context, sessionID string, product catalog.Product, quantity int, opts *pricing.Options) ([]LineItem, error) {
	if quantity < 1 {
		quantity = 1
	}

	items := s.Get(ctx, sessionID)

	found := false
	for i := range items {
		if items[i].ID == product.ID {
			items[i].Quantity += quantity
			if opts != nil {
				items[i].SelectedOptions = *opts
			}
			found = true
			break
		}
	}

	if !found {
		item := LineItem{Product: product, Quantity: quantity}
		if opts != nil {
			item.SelectedOptions = *opts
		}
		items = append(items, item)
	}

	if err := s.repo.Save(ctx, sessionID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateQuantity sets the quantity of the matching line item. A quantity of
// zero or less removes the item. Unknown ids are a no-op, not an error.
func (s *Store) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) ([]LineItem, error) {
	if quantity <= 0 {
		return s.Remove(ctx, sessionID, productID)
	}

	items := s.Get(ctx, sessionID)

	changed := false
	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity = quantity
			changed = true
			break
		}
	}

	if !changed {
		return items, nil
	}

	if err := s.repo.Save(ctx, sessionID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Remove deletes the matching line item; a no-op when the id is absent
func (s *Store) Remove(ctx context.Context, sessionID, productID string) ([]LineItem, error) {
	items := s.Get(ctx, sessionID)

	idx := -1
	for i := range items {
		if items[i].ID == productID {
			idx = i
			break
		}
	}

	if idx < 0 {
		return items, nil
	}

	items = append(items[:idx], items[idx+1:]...)

	if err := s.repo.Save(ctx, sessionID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Clear empties the session's cart
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	return s.repo.Delete(ctx, sessionID)
}

// TotalItems returns the sum of quantities in the session's cart
func (s *Store) TotalItems(ctx context.Context, sessionID string) int {
	return TotalItems(s.Get(ctx, sessionID))
}

// TotalPriceCents returns the cart total across line items
func (s *Store) TotalPriceCents(ctx context.Context, sessionID string) int64 {
	return TotalPriceCents(s.Get(ctx, sessionID))
}
