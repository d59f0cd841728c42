package domain

import (
	"fmt"
	"net/url"
)

// placeholderBase is the image service used when a product has no image of
// its own. The product name is rendered into the placeholder.
const placeholderBase = "https://placehold.co/600x400/312e81/ffffff"

// Product represents a product in the catalog. Products are owned by the
// backend; the client never assigns IDs.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

// ImageOrPlaceholder returns the product's image URL, falling back to a
// placeholder derived from the product name when none is set.
func (p Product) ImageOrPlaceholder() string {
	if p.ImageURL != "" {
		return p.ImageURL
	}
	return fmt.Sprintf("%s?text=%s", placeholderBase, url.QueryEscape(p.Name))
}

// Draft is the transient, unsaved field set behind the create/edit dialog.
// Price is carried as the already-parsed number; parsing a raw input string
// is the form's job.
type Draft struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

// ContactMessage is a message submitted through the contact form.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
