// Package entity contains the core business objects of the checkout flow,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"

	domainerrors "reunion/internal/domain/errors"
)

// MerchandiseKind classifies a cart line for invariant purposes.
// Name-tag lines are derived from t-shirt lines: the cart never holds more
// name-tag lines than the total t-shirt quantity.
type MerchandiseKind string

const (
	KindTShirt  MerchandiseKind = "tshirt"
	KindNameTag MerchandiseKind = "nametag"
	KindOther   MerchandiseKind = "other"
)

// NameTagInfo is the free-text customization printed on a name tag.
type NameTagInfo struct {
	DisplayName  string `json:"displayName"`
	DisplayClass string `json:"displayClass"`
}

// CartLine is one ordered entry in the cart. A line carrying a name-tag
// customization is immutable except for full removal.
type CartLine struct {
	MerchandiseID int64           `json:"merchandiseId"`
	Kind          MerchandiseKind `json:"kind"`
	Name          string          `json:"name"`
	Quantity      int             `json:"quantity"`
	UnitPrice     int64           `json:"unitPrice"` // VND
	Gender        string          `json:"gender,omitempty"`
	Size          string          `json:"size,omitempty"`
	NameTag       *NameTagInfo    `json:"nameTag,omitempty"`
}

// Cart is an ordered sequence of lines. Order is insertion order; it is not
// significant to correctness but is preserved for UI stability.
type Cart []CartLine

// TShirtQuantity is the total quantity across all t-shirt lines.
func (c Cart) TShirtQuantity() int {
	total := 0
	for _, line := range c {
		if line.Kind == KindTShirt {
			total += line.Quantity
		}
	}

	return total
}

// NameTagCount is the number of name-tag lines currently in the cart.
func (c Cart) NameTagCount() int {
	count := 0
	for _, line := range c {
		if line.Kind == KindNameTag {
			count++
		}
	}

	return count
}

// Total is the client-side total price, computed on demand so it always
// reflects the current cart state.
func (c Cart) Total() int64 {
	var total int64
	for _, line := range c {
		total += line.UnitPrice * int64(line.Quantity)
	}

	return total
}

// AddItem merges the quantity into an existing line matching merchandise ID,
// gender and size, or appends a new line. Name-tag lines are never merged
// into; they are created only through ConfirmNameTag.
func (c Cart) AddItem(line CartLine) (Cart, error) {
	if line.Kind == KindNameTag || line.NameTag != nil {
		return nil, domainerrors.ErrNameTagDirectAdd
	}
	if line.Quantity <= 0 {
		return nil, domainerrors.ErrQuantityNotPositive
	}

	next := c.clone()
	for i := range next {
		if next[i].NameTag != nil {
			continue
		}
		if next[i].MerchandiseID == line.MerchandiseID && next[i].Gender == line.Gender && next[i].Size == line.Size {
			next[i].Quantity += line.Quantity

			return repair(next), nil
		}
	}

	return repair(append(next, line)), nil
}

// IncrementAt raises the quantity of the line at position i by one.
func (c Cart) IncrementAt(i int) (Cart, error) {
	if i < 0 || i >= len(c) {
		return nil, domainerrors.ErrCartLineNotFound
	}
	if c[i].NameTag != nil {
		return nil, domainerrors.ErrNameTagLineImmutable
	}

	next := c.clone()
	next[i].Quantity++

	return repair(next), nil
}

// DecrementAt lowers the quantity of the line at position i by one; reaching
// zero removes the line. Lowering a t-shirt line may trigger compensating
// removal of excess name-tag lines.
func (c Cart) DecrementAt(i int) (Cart, error) {
	if i < 0 || i >= len(c) {
		return nil, domainerrors.ErrCartLineNotFound
	}
	if c[i].NameTag != nil {
		return nil, domainerrors.ErrNameTagLineImmutable
	}

	next := c.clone()
	next[i].Quantity--
	if next[i].Quantity <= 0 {
		next = append(next[:i], next[i+1:]...)
	}

	return repair(next), nil
}

// RemoveAt removes the line at position i entirely.
func (c Cart) RemoveAt(i int) (Cart, error) {
	if i < 0 || i >= len(c) {
		return nil, domainerrors.ErrCartLineNotFound
	}

	next := c.clone()
	next = append(next[:i], next[i+1:]...)

	return repair(next), nil
}

// ConfirmNameTag turns the transient slot input into a cart line. Slots are
// indexed 0..TShirtQuantity-1 and map to cart positions by filter-and-index
// over the name-tag lines; a slot already in the cart must be removed before
// it can be confirmed again.
func (c Cart) ConfirmNameTag(slot int, line CartLine) (Cart, error) {
	if line.NameTag == nil ||
		strings.TrimSpace(line.NameTag.DisplayName) == "" ||
		strings.TrimSpace(line.NameTag.DisplayClass) == "" {
		return nil, domainerrors.ErrNameTagIncomplete
	}
	if slot < 0 || slot >= c.TShirtQuantity() {
		return nil, domainerrors.ErrNameTagSlotUnavailable
	}
	if slot < c.NameTagCount() {
		return nil, domainerrors.ErrNameTagSlotTaken
	}

	line.Kind = KindNameTag
	line.Quantity = 1

	return repair(append(c.clone(), line)), nil
}

// RemoveNameTag removes the name-tag line addressed by slot.
func (c Cart) RemoveNameTag(slot int) (Cart, error) {
	seen := 0
	for i, line := range c {
		if line.Kind != KindNameTag {
			continue
		}
		if seen == slot {
			return c.RemoveAt(i)
		}
		seen++
	}

	return nil, domainerrors.ErrCartLineNotFound
}

// Replace swaps the whole cart for a new sequence, still subject to repair.
func (c Cart) Replace(lines []CartLine) Cart {
	return repair(Cart(lines).clone())
}

func (c Cart) clone() Cart {
	next := make(Cart, len(c))
	copy(next, c)

	return next
}

// repair enforces the soft invariant count(name-tag lines) <= total t-shirt
// quantity. Excess name-tag lines are removed most-recently-added first;
// t-shirt lines are authoritative and never removed here.
func repair(c Cart) Cart {
	allowed := c.TShirtQuantity()
	if c.NameTagCount() <= allowed {
		return c
	}

	for i := len(c) - 1; i >= 0 && c.NameTagCount() > allowed; i-- {
		if i < len(c) && c[i].Kind == KindNameTag {
			c = append(c[:i], c[i+1:]...)
		}
	}

	return c
}
