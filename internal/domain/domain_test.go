package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageOrPlaceholder_UsesOwnImage(t *testing.T) {
	p := Product{Name: "Mug", ImageURL: "https://cdn.example.com/mug.png"}
	assert.Equal(t, "https://cdn.example.com/mug.png", p.ImageOrPlaceholder())
}

func TestImageOrPlaceholder_DerivesFromName(t *testing.T) {
	p := Product{Name: "Coffee Mug"}
	assert.Equal(t,
		"https://placehold.co/600x400/312e81/ffffff?text=Coffee+Mug",
		p.ImageOrPlaceholder(),
	)
}

func TestLineItem_Total(t *testing.T) {
	line := LineItem{
		Item:    CartItem{ID: "c1", ProductID: "1", Quantity: 3},
		Product: Product{ID: "1", Name: "Mug", Price: 9.99},
	}
	assert.InDelta(t, 29.97, line.Total(), 0.0001)
}
