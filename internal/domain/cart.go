package domain

// CartItem represents a single line in the shopping cart. ProductID is a
// reference, not an ownership relation: the product may have been deleted
// upstream, in which case the line cannot be displayed.
type CartItem struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// LineItem is a CartItem joined with its referenced Product for display and
// total purposes.
type LineItem struct {
	Item    CartItem
	Product Product
}

// Total returns the price of the line: product price times quantity.
func (l LineItem) Total() float64 {
	return l.Product.Price * float64(l.Item.Quantity)
}
