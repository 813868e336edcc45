package storefront

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Item is one cart line. Price is the effective unit price captured when the
// item was added.
type Item struct {
	TemplateID string          `json:"templateId"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Thumbnail  string          `json:"thumbnail,omitempty"`
	Type       string          `json:"type"`
}

// AppliedCoupon holds a server-validated code and its description. The
// discount amount lives alongside it in the store; neither survives a
// session (see SaveState).
type AppliedCoupon struct {
	Code        string
	Description string
}

// CartStore keeps the items a user intends to purchase and derives totals.
// All operations are synchronous state transitions, safe for concurrent use.
type CartStore struct {
	mu       sync.Mutex
	items    []Item
	coupon   *AppliedCoupon
	discount decimal.Decimal
}

func NewCartStore() *CartStore {
	return &CartStore{}
}

// AddItem inserts the item unless one with the same TemplateID is already
// present. Returns false on the duplicate no-op.
func (s *CartStore) AddItem(item Item) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range s.items {
		if it.TemplateID == item.TemplateID {
			return false
		}
	}
	s.items = append(s.items, item)
	return true
}

// RemoveItem drops the matching entry. Any applied coupon is cleared along
// with it: the discount was validated against the old subtotal and no longer
// holds.
func (s *CartStore) RemoveItem(templateID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, it := range s.items {
		if it.TemplateID == templateID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.coupon = nil
			s.discount = decimal.Zero
			return true
		}
	}
	return false
}

// Clear empties the cart and drops coupon state.
func (s *CartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.coupon = nil
	s.discount = decimal.Zero
}

// Items returns a copy of the current lines in insertion order.
func (s *CartStore) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *CartStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Subtotal is the sum of item prices.
func (s *CartStore) Subtotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotalLocked()
}

func (s *CartStore) subtotalLocked() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range s.items {
		sum = sum.Add(it.Price)
	}
	return sum
}

// Total is the subtotal minus the applied discount, floored at zero.
func (s *CartStore) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := s.subtotalLocked().Sub(s.discount)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

// ApplyCoupon stores a coupon and its server-computed discount. The amount
// is never derived locally from the coupon's rule.
func (s *CartStore) ApplyCoupon(coupon AppliedCoupon, discount decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := coupon
	s.coupon = &c
	s.discount = discount
}

func (s *CartStore) RemoveCoupon() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.coupon = nil
	s.discount = decimal.Zero
}

// Coupon reports the applied coupon, if any, and its discount.
func (s *CartStore) Coupon() (*AppliedCoupon, decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.coupon == nil {
		return nil, decimal.Zero
	}
	c := *s.coupon
	return &c, s.discount
}
