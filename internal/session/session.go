// Package session owns the two small finite-state values the storefront UI
// hangs off: the active view and the create/edit modal. Both live on a
// single session-scoped object handed to every component that needs them;
// there are no hidden globals.
package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Srinath-230/e-commerce-frontend-app/internal/domain"
	"github.com/Srinath-230/e-commerce-frontend-app/internal/form"
	"github.com/Srinath-230/e-commerce-frontend-app/internal/store"
	apperrors "github.com/Srinath-230/e-commerce-frontend-app/pkg/errors"
)

// View identifies the active page. There is no back-stack: the session only
// remembers where it is now.
type View string

// The four storefront views.
const (
	ViewHome     View = "home"
	ViewProducts View = "products"
	ViewCart     View = "cart"
	ViewContact  View = "contact"
)

// ModalState tracks the create/edit dialog lifecycle.
type ModalState int

const (
	// ModalClosed means no dialog is showing.
	ModalClosed ModalState = iota
	// ModalCreating means the dialog is open for a new product.
	ModalCreating
	// ModalEditing means the dialog is open for an existing product.
	ModalEditing
)

// Confirmer asks the user a blocking yes/no question before a destructive
// action proceeds. The CLI prompts on stdin; tests stub it.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(prompt string) bool

// Confirm calls f.
func (f ConfirmerFunc) Confirm(prompt string) bool { return f(prompt) }

// ContactAPI is the slice of the backend client the contact form uses.
type ContactAPI interface {
	SubmitContactMessage(ctx context.Context, msg domain.ContactMessage) error
}

// Session coordinates the storefront's view state, modal lifecycle, and the
// store refreshes they trigger.
type Session struct {
	products *store.ProductStore
	cart     *store.CartStore
	form     *form.Form
	contact  ContactAPI
	confirm  Confirmer
	notify   store.Notifier
	logger   *slog.Logger

	mu        sync.Mutex
	view      View
	modal     ModalState
	editingID string
}

// New creates a session starting on the home view with the modal closed.
func New(
	products *store.ProductStore,
	cart *store.CartStore,
	productForm *form.Form,
	contact ContactAPI,
	confirm Confirmer,
	notify store.Notifier,
	logger *slog.Logger,
) *Session {
	return &Session{
		products: products,
		cart:     cart,
		form:     productForm,
		contact:  contact,
		confirm:  confirm,
		notify:   notify,
		logger:   logger,
		view:     ViewHome,
		modal:    ModalClosed,
	}
}

// View returns the active view.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Modal returns the dialog state and, when editing, the product ID.
func (s *Session) Modal() (ModalState, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modal, s.editingID
}

// Form returns the product form bound to this session.
func (s *Session) Form() *form.Form {
	return s.form
}

// Navigate switches the active view and refreshes the store backing it.
// Products and cart are data-bearing views; home and contact load nothing.
// Re-entering the current view refreshes again: there is no caching across
// visits.
func (s *Session) Navigate(ctx context.Context, v View) error {
	s.mu.Lock()
	s.view = v
	s.mu.Unlock()

	s.logger.DebugContext(ctx, "navigated", slog.String("view", string(v)))

	switch v {
	case ViewProducts:
		return s.products.Refresh(ctx)
	case ViewCart:
		return s.cart.Refresh(ctx)
	default:
		return nil
	}
}

// OpenCreate opens the dialog for a new product with a cleared draft.
func (s *Session) OpenCreate() {
	s.mu.Lock()
	s.modal = ModalCreating
	s.editingID = ""
	s.mu.Unlock()

	s.form.Reset()
}

// OpenEdit opens the dialog seeded from an existing product.
func (s *Session) OpenEdit(productID string) error {
	product, ok := s.products.Product(productID)
	if !ok {
		s.notify("That product no longer exists.")
		return apperrors.Request("openEdit", 0, apperrors.ErrNotFound)
	}

	s.mu.Lock()
	s.modal = ModalEditing
	s.editingID = productID
	s.mu.Unlock()

	s.form.LoadFrom(product)
	return nil
}

// Close dismisses the dialog. The draft is always cleared, whether the
// close came from cancel, a successful submit, or a backdrop dismissal.
func (s *Session) Close() {
	s.mu.Lock()
	s.modal = ModalClosed
	s.editingID = ""
	s.mu.Unlock()

	s.form.Reset()
}

// SubmitForm submits the dialog's draft. A successful submit closes the
// dialog and clears the draft; a failed one leaves the dialog open with its
// field errors visible.
func (s *Session) SubmitForm(ctx context.Context) error {
	if err := s.form.Submit(ctx); err != nil {
		return err
	}
	s.Close()
	return nil
}

// DeleteProduct deletes a product after an explicit user confirmation.
// Declining leaves every piece of state untouched.
func (s *Session) DeleteProduct(ctx context.Context, productID string) error {
	if !s.confirm.Confirm("Are you sure you want to delete this product?") {
		s.logger.DebugContext(ctx, "delete declined", slog.String("product_id", productID))
		return nil
	}
	return s.products.Delete(ctx, productID)
}

// SubmitContact sends a contact message. The fields are submitted as-is:
// unlike the product form, the contact form imposes no client-side
// validation.
func (s *Session) SubmitContact(ctx context.Context, name, email, message string) error {
	msg := domain.ContactMessage{Name: name, Email: email, Message: message}
	if err := s.contact.SubmitContactMessage(ctx, msg); err != nil {
		s.notify("Failed to send message.")
		return err
	}

	s.notify("Message sent successfully!")
	return nil
}
