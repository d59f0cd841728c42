// Package apitest provides an in-memory fake of the storefront backend for
// tests. It implements the same REST surface the real backend exposes:
// product CRUD, cart line upsert/delete, and the contact endpoint.
package apitest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/Srinath-230/e-commerce-frontend-app/internal/domain"
)

// Server is a fake storefront backend backed by in-memory state.
type Server struct {
	mu         sync.Mutex
	products   []domain.Product
	cart       []domain.CartItem
	contact    []domain.ContactMessage
	nextProd   int
	nextCart   int
	failStatus int
	failBody   string

	httpServer *httptest.Server
}

// New starts a fake backend. Callers must Close it when done.
func New() *Server {
	s := &Server{nextProd: 1, nextCart: 1}

	r := chi.NewRouter()
	r.Use(s.failureInjector)

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", s.listProducts)
		r.Post("/", s.createProduct)
		r.Put("/{id}", s.updateProduct)
		r.Delete("/{id}", s.deleteProduct)
	})
	r.Route("/api/cart", func(r chi.Router) {
		r.Get("/", s.listCart)
		r.Post("/", s.upsertCartItem)
		r.Delete("/{id}", s.deleteCartItem)
	})
	r.Post("/contact", s.submitContact)

	s.httpServer = httptest.NewServer(r)
	return s
}

// URL returns the backend's base URL.
func (s *Server) URL() string { return s.httpServer.URL }

// Close shuts down the backend.
func (s *Server) Close() { s.httpServer.Close() }

// Seed replaces the product catalog.
func (s *Server) Seed(products ...domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append([]domain.Product(nil), products...)
	s.nextProd = len(products) + 1
}

// SeedCart replaces the cart contents.
func (s *Server) SeedCart(items ...domain.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = append([]domain.CartItem(nil), items...)
	s.nextCart = len(items) + 1
}

// FailNext makes the next request fail with the given status and body.
func (s *Server) FailNext(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failStatus = status
	s.failBody = body
}

// Products returns a copy of the current catalog.
func (s *Server) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Product(nil), s.products...)
}

// Cart returns a copy of the current cart.
func (s *Server) Cart() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.CartItem(nil), s.cart...)
}

// ContactMessages returns every message received on /contact.
func (s *Server) ContactMessages() []domain.ContactMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.ContactMessage(nil), s.contact...)
}

func (s *Server) failureInjector(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		status, body := s.failStatus, s.failBody
		s.failStatus, s.failBody = 0, ""
		s.mu.Unlock()

		if status != 0 {
			http.Error(w, body, status)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.products)
}

func (s *Server) createProduct(w http.ResponseWriter, r *http.Request) {
	var draft domain.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	product := domain.Product{
		ID:          fmt.Sprintf("%d", s.nextProd),
		Name:        draft.Name,
		Description: draft.Description,
		Price:       draft.Price,
		ImageURL:    draft.ImageURL,
	}
	s.nextProd++
	s.products = append(s.products, product)
	writeJSON(w, http.StatusCreated, product)
}

func (s *Server) updateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var draft domain.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Name = draft.Name
			s.products[i].Description = draft.Description
			s.products[i].Price = draft.Price
			s.products[i].ImageURL = draft.ImageURL
			writeJSON(w, http.StatusOK, s.products[i])
			return
		}
	}
	http.Error(w, "product not found", http.StatusNotFound)
}

func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	http.Error(w, "product not found", http.StatusNotFound)
}

func (s *Server) listCart(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.cart)
}

func (s *Server) upsertCartItem(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].ProductID == payload.ProductID {
			s.cart[i].Quantity = payload.Quantity
			writeJSON(w, http.StatusOK, s.cart[i])
			return
		}
	}
	item := domain.CartItem{
		ID:        fmt.Sprintf("c%d", s.nextCart),
		ProductID: payload.ProductID,
		Quantity:  payload.Quantity,
	}
	s.nextCart++
	s.cart = append(s.cart, item)
	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) deleteCartItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].ID == id {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	http.Error(w, "cart item not found", http.StatusNotFound)
}

func (s *Server) submitContact(w http.ResponseWriter, r *http.Request) {
	var msg domain.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.contact = append(s.contact, msg)
	w.WriteHeader(http.StatusOK)
}
