// Package cart implements the session cart operations: adding, removing and
// re-quantifying lines, and the derived total. All functions mutate the
// passed CartSession in place and keep its Total equal to the sum of
// quantity times effective price over all lines.
package cart

import "storefront/internal/models"

// Direction selects how Adjust changes a line's quantity.
type Direction int

const (
	Increase Direction = iota
	Decrease
)

// Add appends a line for the product unless the cart already holds a line
// with the same product id. Duplicates are ignored entirely; quantities are
// not merged.
func Add(sess *models.CartSession, product *models.Product, quantity int) {
	for _, l := range sess.Lines {
		if l.ProductID == product.ID {
			recompute(sess)
			return
		}
	}
	sess.Lines = append(sess.Lines, models.CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		SalePrice: product.SalePrice,
		Image:     product.Image,
		Quantity:  quantity,
	})
	recompute(sess)
}

// Remove drops every line matching the product id. Removing an absent id
// leaves the cart unchanged.
func Remove(sess *models.CartSession, productID int64) {
	kept := sess.Lines[:0]
	for _, l := range sess.Lines {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	sess.Lines = kept
	recompute(sess)
}

// Adjust increments or decrements the quantity of the line matching the
// product id. Decrementing never takes a quantity below 1; an absent id is
// a no-op.
func Adjust(sess *models.CartSession, productID int64, dir Direction) {
	for i := range sess.Lines {
		if sess.Lines[i].ProductID != productID {
			continue
		}
		switch dir {
		case Increase:
			sess.Lines[i].Quantity++
		case Decrease:
			if sess.Lines[i].Quantity > 1 {
				sess.Lines[i].Quantity--
			}
		}
	}
	recompute(sess)
}

// Total sums quantity times effective price over the lines. An empty cart
// totals zero.
func Total(lines []models.CartLine) int64 {
	var total int64
	for i := range lines {
		total += int64(lines[i].Quantity) * lines[i].EffectivePrice()
	}
	return total
}

func recompute(sess *models.CartSession) {
	sess.Total = Total(sess.Lines)
}
