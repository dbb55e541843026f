package shop

import (
	"encoding/json"
)

// CartItem is one storefront line: a product in a given size. Name, image
// and price are denormalized so the cart renders without a catalog lookup;
// MaxStock is the quantity ceiling known at add time.
type CartItem struct {
	ProductID uint    `json:"product_id"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	MaxStock  int     `json:"max_stock"`
}

// Cart is the client-side shopping state: a list of lines with totals
// derived on every mutation. It is never synced to the server before
// checkout; it round-trips through a single JSON blob and a lost blob is
// simply an empty cart.
type Cart struct {
	Items    []CartItem `json:"items"`
	Subtotal float64    `json:"subtotal"`
	Count    int        `json:"count"`
}

func NewCart() *Cart {
	return &Cart{Items: []CartItem{}}
}

// LoadCart restores a cart from its persisted blob. Corrupt or missing
// data silently yields an empty cart - there is no recovery mechanism.
func LoadCart(data []byte) *Cart {
	c := NewCart()
	if len(data) == 0 {
		return c
	}
	if err := json.Unmarshal(data, c); err != nil {
		return NewCart()
	}
	if c.Items == nil {
		c.Items = []CartItem{}
	}
	c.recompute()
	return c
}

// Bytes serializes the cart for the persisted store.
func (c *Cart) Bytes() []byte {
	data, err := json.Marshal(c)
	if err != nil {
		return []byte("{}")
	}
	return data
}

// Add merges the item into an existing line sharing product+size, summing
// quantities, clamped to the stock ceiling.
func (c *Cart) Add(item CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID && c.Items[i].Size == item.Size {
			c.Items[i].Quantity = clampQuantity(c.Items[i].Quantity+item.Quantity, c.Items[i].MaxStock)
			c.recompute()
			return
		}
	}
	item.Quantity = clampQuantity(item.Quantity, item.MaxStock)
	c.Items = append(c.Items, item)
	c.recompute()
}

// Remove drops the line for product+size, if present.
func (c *Cart) Remove(productID uint, size string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID && c.Items[i].Size == size {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			break
		}
	}
	c.recompute()
}

// SetQuantity replaces a line's quantity. Zero or negative behaves as
// Remove; a zero-quantity row is never persisted.
func (c *Cart) SetQuantity(productID uint, size string, qty int) {
	if qty <= 0 {
		c.Remove(productID, size)
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID && c.Items[i].Size == size {
			c.Items[i].Quantity = clampQuantity(qty, c.Items[i].MaxStock)
			break
		}
	}
	c.recompute()
}

func (c *Cart) recompute() {
	c.Subtotal = 0
	c.Count = 0
	for _, item := range c.Items {
		c.Subtotal += item.UnitPrice * float64(item.Quantity)
		c.Count += item.Quantity
	}
}

func clampQuantity(qty, maxStock int) int {
	if qty < 1 {
		qty = 1
	}
	if maxStock > 0 && qty > maxStock {
		qty = maxStock
	}
	return qty
}
