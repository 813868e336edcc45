package storefront

import (
	"context"
	"errors"
)

// ErrEmptyCart rejects checkout before any server call is made.
var ErrEmptyCart = errors.New("السلة فارغة")

// CheckoutResult reports how far the flow got. OrderID is set as soon as
// creation succeeds, even when the later payment step fails.
type CheckoutResult struct {
	OrderID string
	Paid    bool
}

// ApplyCouponCode previews a code against the cart's current subtotal and
// applies the server's verdict. A business rejection comes back as a
// *CouponRejection carrying the server's message; nothing is applied in that
// case.
func ApplyCouponCode(ctx context.Context, api API, cart *CartStore, code string) error {
	result, err := api.ValidateCoupon(ctx, code, cart.Subtotal())
	if err != nil {
		return err
	}
	if !result.Valid {
		return &CouponRejection{Message: result.Message}
	}

	cart.ApplyCoupon(AppliedCoupon{Code: result.Code}, result.Discount)
	return nil
}

// Checkout creates an order from the cart, confirms payment, then clears the
// cart. If creation fails the cart is left untouched for retry. If payment
// fails after creation there is no compensation: the order id is returned
// with the error and retrying the payment is the recovery path.
func Checkout(ctx context.Context, api API, cart *CartStore) (CheckoutResult, error) {
	items := cart.Items()
	if len(items) == 0 {
		return CheckoutResult{}, ErrEmptyCart
	}

	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.TemplateID)
	}

	couponCode := ""
	if coupon, _ := cart.Coupon(); coupon != nil {
		couponCode = coupon.Code
	}

	orderID, err := api.CreateOrder(ctx, ids, couponCode)
	if err != nil {
		return CheckoutResult{}, err
	}

	if err := api.PayOrder(ctx, orderID); err != nil {
		return CheckoutResult{OrderID: orderID}, err
	}

	cart.Clear()
	return CheckoutResult{OrderID: orderID, Paid: true}, nil
}
