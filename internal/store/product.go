package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Srinath-230/e-commerce-frontend-app/internal/domain"
)

// ProductAPI is the slice of the backend client the product store depends on.
type ProductAPI interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, draft domain.Draft) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, draft domain.Draft) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// ProductStore holds the current product catalog snapshot.
type ProductStore struct {
	api    ProductAPI
	logger *slog.Logger
	notify Notifier

	mu       sync.Mutex
	products []domain.Product
	loading  bool
	seq      uint64
	onChange func()
}

// NewProductStore creates a product store. notify must not be nil; use
// NopNotifier to discard notices.
func NewProductStore(api ProductAPI, logger *slog.Logger, notify Notifier) *ProductStore {
	return &ProductStore{api: api, logger: logger, notify: notify}
}

// OnChange registers a hook invoked after every snapshot replacement. The
// view layer uses it to re-render.
func (s *ProductStore) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Snapshot returns a copy of the current catalog.
func (s *ProductStore) Snapshot() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Product(nil), s.products...)
}

// Loading reports whether a refresh is in flight.
func (s *ProductStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Product looks up a product by ID in the current snapshot.
func (s *ProductStore) Product(id string) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Refresh replaces the snapshot with the backend's current catalog. On
// failure the previous snapshot stays in place and the user is notified.
// Each refresh is tagged with a sequence number; a completion that arrives
// after a newer refresh was issued is discarded entirely — it neither
// installs its result, clears the loading flag, nor notifies — so the last
// user intent wins.
func (s *ProductStore) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.loading = true
	s.mu.Unlock()

	products, err := s.api.ListProducts(ctx)

	s.mu.Lock()
	if seq != s.seq {
		s.mu.Unlock()
		s.logger.DebugContext(ctx, "discarding stale product refresh", slog.Uint64("seq", seq))
		return nil
	}
	s.loading = false
	if err != nil {
		s.mu.Unlock()
		s.logger.ErrorContext(ctx, "product refresh failed", slog.String("error", err.Error()))
		s.notify("Error fetching products from the server. Check your network connection.")
		return err
	}
	s.products = products
	changed := s.onChange
	s.mu.Unlock()

	if changed != nil {
		changed()
	}
	return nil
}

// Create sends a validated draft to the backend, then refreshes. The
// response body is ignored; the refresh is the source of truth.
func (s *ProductStore) Create(ctx context.Context, draft domain.Draft) error {
	err := mutateThenReload(ctx, func(ctx context.Context) error {
		_, err := s.api.CreateProduct(ctx, draft)
		return err
	}, s.Refresh)
	if err != nil {
		s.logger.ErrorContext(ctx, "create product failed", slog.String("error", err.Error()))
		s.notify("Error saving product to the server.")
		return err
	}

	s.logger.InfoContext(ctx, "product created", slog.String("name", draft.Name))
	return nil
}

// Update replaces an existing product with the draft's fields, then refreshes.
func (s *ProductStore) Update(ctx context.Context, id string, draft domain.Draft) error {
	err := mutateThenReload(ctx, func(ctx context.Context) error {
		_, err := s.api.UpdateProduct(ctx, id, draft)
		return err
	}, s.Refresh)
	if err != nil {
		s.logger.ErrorContext(ctx, "update product failed",
			slog.String("product_id", id),
			slog.String("error", err.Error()),
		)
		s.notify("Error saving product to the server.")
		return err
	}

	s.logger.InfoContext(ctx, "product updated", slog.String("product_id", id))
	return nil
}

// Delete removes a product, then refreshes. User confirmation happens before
// this is called; declining never reaches the store.
func (s *ProductStore) Delete(ctx context.Context, id string) error {
	err := mutateThenReload(ctx, func(ctx context.Context) error {
		return s.api.DeleteProduct(ctx, id)
	}, s.Refresh)
	if err != nil {
		s.logger.ErrorContext(ctx, "delete product failed",
			slog.String("product_id", id),
			slog.String("error", err.Error()),
		)
		s.notify("Error deleting product from the server.")
		return err
	}

	s.logger.InfoContext(ctx, "product deleted", slog.String("product_id", id))
	return nil
}
