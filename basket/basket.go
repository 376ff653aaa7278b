// Package basket holds the buyer's transient cart and the mock balance it is
// checked out against. Nothing here touches the network or survives a restart.
package basket

import (
	"errors"

	"farm-market/models"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidQuantity     = errors.New("quantity must be at least 1")
)

// Line pairs a product snapshot with the quantity the buyer selected.
// Quantity is always >= 1; a line never exists at zero.
type Line struct {
	Product  models.Product
	Quantity int
}

func (l Line) Subtotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}

type Basket struct {
	lines   []Line
	balance float64
}

func New(balance float64) *Basket {
	return &Basket{balance: balance}
}

// Add puts quantity units of the product in the basket. Repeated adds of the
// same product id accumulate on the existing line; new products append,
// preserving insertion order.
func (b *Basket) Add(product models.Product, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	for i := range b.lines {
		if b.lines[i].Product.ID == product.ID {
			b.lines[i].Quantity += quantity
			return nil
		}
	}
	b.lines = append(b.lines, Line{Product: product, Quantity: quantity})
	return nil
}

// Clear empties the basket. Idempotent.
func (b *Basket) Clear() {
	b.lines = nil
}

// Total recomputes the sum of price x quantity over current lines every call.
func (b *Basket) Total() float64 {
	var total float64
	for _, line := range b.lines {
		total += line.Subtotal()
	}
	return total
}

// Checkout debits the balance by the basket total and empties the basket.
// When the total exceeds the balance it fails with ErrInsufficientBalance and
// changes nothing.
func (b *Basket) Checkout() error {
	total := b.Total()
	if total > b.balance {
		return ErrInsufficientBalance
	}
	b.balance -= total
	b.Clear()
	return nil
}

func (b *Basket) Balance() float64 {
	return b.balance
}

func (b *Basket) Empty() bool {
	return len(b.lines) == 0
}

// Lines returns a copy in insertion order.
func (b *Basket) Lines() []Line {
	out := make([]Line, len(b.lines))
	copy(out, b.lines)
	return out
}
