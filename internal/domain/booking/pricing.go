package booking

import "errors"

var (
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrUnknownExtra     = errors.New("unknown extra")
	ErrExtraQuantityMax = errors.New("extra quantity exceeds configured maximum")
)

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// ExtraSelection is a requested extra line item.
type ExtraSelection struct {
	ExtraID  string
	Quantity int32
}

// ExtraSpec is the catalog configuration the selection is validated against.
type ExtraSpec struct {
	PriceCents  int64
	MaxQuantity int32
}

// ComputeTotal is the creation-time price: base x quantity + sum of
// extra price x extra quantity. It is never recomputed afterwards.
func ComputeTotal(basePriceCents int64, quantity int32, selections []ExtraSelection, catalog map[string]ExtraSpec) (Money, error) {
	if quantity < 1 {
		return Money{}, ErrInvalidQuantity
	}
	if basePriceCents < 0 {
		return Money{}, ErrNegativePrice
	}

	total := basePriceCents * int64(quantity)
	for _, sel := range selections {
		spec, ok := catalog[sel.ExtraID]
		if !ok {
			return Money{}, ErrUnknownExtra
		}
		if sel.Quantity < 1 {
			return Money{}, ErrInvalidQuantity
		}
		if sel.Quantity > spec.MaxQuantity {
			return Money{}, ErrExtraQuantityMax
		}
		total += spec.PriceCents * int64(sel.Quantity)
	}

	return NewMoney(total)
}
