package storefront_test

import (
	"context"
	"testing"

	"qaleb-store/pkg/storefront"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestApplyCouponCode(t *testing.T) {
	ctx := context.Background()

	t.Run("success_applies_server_discount", func(t *testing.T) {
		cart := storefront.NewCartStore()
		cart.AddItem(item("a", 100))
		cart.AddItem(item("b", 50))

		api := &fakeAPI{
			validateFunc: func(_ context.Context, code string, total decimal.Decimal) (storefront.CouponResult, error) {
				assert.Equal(t, "SALE30", code)
				assert.True(t, total.Equal(decimal.NewFromInt(150)))
				return storefront.CouponResult{
					Valid:    true,
					Code:     "SALE30",
					Discount: decimal.NewFromInt(30),
				}, nil
			},
		}

		err := storefront.ApplyCouponCode(ctx, api, cart, "SALE30")

		assert.NoError(t, err)
		assert.True(t, cart.Total().Equal(decimal.NewFromInt(120)))
	})

	t.Run("rejection_surfaces_message_and_applies_nothing", func(t *testing.T) {
		cart := storefront.NewCartStore()
		cart.AddItem(item("a", 100))

		api := &fakeAPI{
			validateFunc: func(_ context.Context, _ string, _ decimal.Decimal) (storefront.CouponResult, error) {
				return storefront.CouponResult{Valid: false, Message: "كود الخصم غير صالح"}, nil
			},
		}

		err := storefront.ApplyCouponCode(ctx, api, cart, "NOPE")

		var rejection *storefront.CouponRejection
		assert.ErrorAs(t, err, &rejection)
		assert.Equal(t, "كود الخصم غير صالح", rejection.Message)

		coupon, _ := cart.Coupon()
		assert.Nil(t, coupon)
		assert.True(t, cart.Total().Equal(decimal.NewFromInt(100)))
	})

	t.Run("transport_failure_applies_nothing", func(t *testing.T) {
		cart := storefront.NewCartStore()
		cart.AddItem(item("a", 100))

		api := &fakeAPI{
			validateFunc: func(_ context.Context, _ string, _ decimal.Decimal) (storefront.CouponResult, error) {
				return storefront.CouponResult{}, storefront.ErrRequestFailed
			},
		}

		err := storefront.ApplyCouponCode(ctx, api, cart, "SALE30")

		assert.ErrorIs(t, err, storefront.ErrRequestFailed)
		coupon, _ := cart.Coupon()
		assert.Nil(t, coupon)
	})
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("success_creates_pays_and_clears", func(t *testing.T) {
		cart := storefront.NewCartStore()
		cart.AddItem(item("a", 100))
		cart.AddItem(item("b", 50))
		cart.ApplyCoupon(storefront.AppliedCoupon{Code: "SALE30"}, decimal.NewFromInt(30))

		paid := false
		api := &fakeAPI{
			createFunc: func(_ context.Context, ids []string, couponCode string) (string, error) {
				assert.Equal(t, []string{"a", "b"}, ids)
				assert.Equal(t, "SALE30", couponCode)
				return "order-1", nil
			},
			payFunc: func(_ context.Context, orderID string) error {
				assert.Equal(t, "order-1", orderID)
				paid = true
				return nil
			},
		}

		res, err := storefront.Checkout(ctx, api, cart)

		assert.NoError(t, err)
		assert.True(t, paid)
		assert.Equal(t, "order-1", res.OrderID)
		assert.True(t, res.Paid)
		assert.Equal(t, 0, cart.Len())
	})

	t.Run("empty_cart_rejected_before_any_call", func(t *testing.T) {
		cart := storefront.NewCartStore()

		api := &fakeAPI{
			createFunc: func(_ context.Context, _ []string, _ string) (string, error) {
				t.Fatal("create should not be called")
				return "", nil
			},
		}

		_, err := storefront.Checkout(ctx, api, cart)

		assert.ErrorIs(t, err, storefront.ErrEmptyCart)
	})

	t.Run("create_failure_leaves_cart_untouched", func(t *testing.T) {
		cart := storefront.NewCartStore()
		cart.AddItem(item("a", 100))

		api := &fakeAPI{
			createFunc: func(_ context.Context, _ []string, _ string) (string, error) {
				return "", storefront.ErrRequestFailed
			},
		}

		_, err := storefront.Checkout(ctx, api, cart)

		assert.ErrorIs(t, err, storefront.ErrRequestFailed)
		assert.Equal(t, 1, cart.Len())
	})

	t.Run("pay_failure_returns_order_id_without_clearing", func(t *testing.T) {
		cart := storefront.NewCartStore()
		cart.AddItem(item("a", 100))

		api := &fakeAPI{
			createFunc: func(_ context.Context, _ []string, _ string) (string, error) {
				return "order-1", nil
			},
			payFunc: func(_ context.Context, _ string) error {
				return storefront.ErrRequestFailed
			},
		}

		res, err := storefront.Checkout(ctx, api, cart)

		// No compensation: the order exists unpaid, retrying the payment
		// is the recovery path.
		assert.ErrorIs(t, err, storefront.ErrRequestFailed)
		assert.Equal(t, "order-1", res.OrderID)
		assert.False(t, res.Paid)
		assert.Equal(t, 1, cart.Len())
	})
}
