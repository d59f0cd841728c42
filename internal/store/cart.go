package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Srinath-230/e-commerce-frontend-app/internal/domain"
)

// CartAPI is the slice of the backend client the cart store depends on.
type CartAPI interface {
	ListCartItems(ctx context.Context) ([]domain.CartItem, error)
	UpsertCartItem(ctx context.Context, productID string, quantity int) (*domain.CartItem, error)
	DeleteCartItem(ctx context.Context, id string) error
}

// ProductLookup resolves product details for cart display joins.
// ProductStore satisfies it.
type ProductLookup interface {
	Product(id string) (domain.Product, bool)
}

// CartStore holds the cart line-item snapshot. Display joins against the
// product catalog go through a ProductLookup so the cart never duplicates
// product data.
type CartStore struct {
	api      CartAPI
	products ProductLookup
	logger   *slog.Logger
	notify   Notifier

	mu       sync.Mutex
	items    []domain.CartItem
	loading  bool
	seq      uint64
	onChange func()
}

// NewCartStore creates a cart store backed by api, resolving products
// through lookup.
func NewCartStore(api CartAPI, lookup ProductLookup, logger *slog.Logger, notify Notifier) *CartStore {
	return &CartStore{api: api, products: lookup, logger: logger, notify: notify}
}

// OnChange registers a hook invoked after every snapshot replacement.
func (s *CartStore) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Snapshot returns a copy of the current cart items.
func (s *CartStore) Snapshot() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.CartItem(nil), s.items...)
}

// Loading reports whether a refresh is in flight.
func (s *CartStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Refresh replaces the snapshot with the backend's current cart. Same
// contract as the product store: failures keep the previous snapshot, and a
// completion that lost the race to a newer refresh is a pure no-op — it
// neither touches the loading flag nor notifies.
func (s *CartStore) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.loading = true
	s.mu.Unlock()

	items, err := s.api.ListCartItems(ctx)

	s.mu.Lock()
	if seq != s.seq {
		s.mu.Unlock()
		s.logger.DebugContext(ctx, "discarding stale cart refresh", slog.Uint64("seq", seq))
		return nil
	}
	s.loading = false
	if err != nil {
		s.mu.Unlock()
		s.logger.ErrorContext(ctx, "cart refresh failed", slog.String("error", err.Error()))
		s.notify("Error fetching your cart from the server.")
		return err
	}
	s.items = items
	changed := s.onChange
	s.mu.Unlock()

	if changed != nil {
		changed()
	}
	return nil
}

// AddToCart adds one unit of a product. The new quantity is computed from
// the local snapshot (existing quantity plus one, or one) and sent to the
// backend as an absolute upsert, not an increment: if the snapshot is stale
// the arithmetic is too. Then the cart is refreshed.
func (s *CartStore) AddToCart(ctx context.Context, productID string) error {
	s.mu.Lock()
	quantity := 1
	for _, item := range s.items {
		if item.ProductID == productID {
			quantity = item.Quantity + 1
			break
		}
	}
	s.mu.Unlock()

	err := mutateThenReload(ctx, func(ctx context.Context) error {
		_, err := s.api.UpsertCartItem(ctx, productID, quantity)
		return err
	}, s.Refresh)
	if err != nil {
		s.logger.ErrorContext(ctx, "add to cart failed",
			slog.String("product_id", productID),
			slog.String("error", err.Error()),
		)
		s.notify("Error adding item to your cart.")
		return err
	}

	s.logger.InfoContext(ctx, "item added to cart",
		slog.String("product_id", productID),
		slog.Int("quantity", quantity),
	)
	return nil
}

// RemoveItem deletes a cart line by its own ID, then refreshes.
func (s *CartStore) RemoveItem(ctx context.Context, itemID string) error {
	err := mutateThenReload(ctx, func(ctx context.Context) error {
		return s.api.DeleteCartItem(ctx, itemID)
	}, s.Refresh)
	if err != nil {
		s.logger.ErrorContext(ctx, "remove cart item failed",
			slog.String("item_id", itemID),
			slog.String("error", err.Error()),
		)
		s.notify("Error removing item from your cart.")
		return err
	}

	s.logger.InfoContext(ctx, "cart item removed", slog.String("item_id", itemID))
	return nil
}

// Lines joins the cart snapshot with the product catalog. Lines whose
// product cannot be resolved (deleted upstream) are omitted rather than
// rendered with missing data.
func (s *CartStore) Lines() []domain.LineItem {
	items := s.Snapshot()

	lines := make([]domain.LineItem, 0, len(items))
	for _, item := range items {
		product, ok := s.products.Product(item.ProductID)
		if !ok {
			continue
		}
		lines = append(lines, domain.LineItem{Item: item, Product: product})
	}
	return lines
}

// LineTotal returns the display total for a single cart item. The second
// return value is false when the referenced product no longer exists; such
// lines are absent from display and have no total.
func (s *CartStore) LineTotal(item domain.CartItem) (float64, bool) {
	product, ok := s.products.Product(item.ProductID)
	if !ok {
		return 0, false
	}
	return domain.LineItem{Item: item, Product: product}.Total(), true
}

// Total sums the totals of every displayable line.
func (s *CartStore) Total() float64 {
	var total float64
	for _, line := range s.Lines() {
		total += line.Total()
	}
	return total
}
