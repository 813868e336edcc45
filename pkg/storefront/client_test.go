package storefront_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"qaleb-store/pkg/storefront"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(w http.ResponseWriter, status int, body map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestClient_ValidateCoupon(t *testing.T) {
	ctx := context.Background()

	t.Run("success_normalizes_code_and_sends_cookie", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v1/coupons/validate", r.URL.Path)

			cookie, err := r.Cookie("access_token")
			require.NoError(t, err)
			assert.Equal(t, "tok-123", cookie.Value)

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "SALE30", body["code"])
			assert.Equal(t, 150.0, body["order_total"])

			respond(w, http.StatusOK, map[string]interface{}{
				"success": true,
				"data": map[string]interface{}{
					"valid":               true,
					"coupon":              map[string]string{"code": "SALE30", "description": "خصم 30"},
					"calculated_discount": 30.0,
				},
			})
		}))
		defer srv.Close()

		client := storefront.NewClient(srv.URL, "tok-123")
		res, err := client.ValidateCoupon(ctx, "  sale30 ", decimal.NewFromInt(150))

		assert.NoError(t, err)
		assert.True(t, res.Valid)
		assert.Equal(t, "SALE30", res.Code)
		assert.True(t, res.Discount.Equal(decimal.NewFromInt(30)))
	})

	t.Run("invalid_code_is_valid_false_not_error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			respond(w, http.StatusOK, map[string]interface{}{
				"success": true,
				"data": map[string]interface{}{
					"valid":   false,
					"message": "كود الخصم غير صالح",
				},
			})
		}))
		defer srv.Close()

		client := storefront.NewClient(srv.URL, "tok-123")
		res, err := client.ValidateCoupon(ctx, "NOPE", decimal.NewFromInt(100))

		assert.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Equal(t, "كود الخصم غير صالح", res.Message)
	})

	t.Run("second_validation_refused_while_first_in_flight", func(t *testing.T) {
		entered := make(chan struct{})
		release := make(chan struct{})

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			close(entered)
			<-release
			respond(w, http.StatusOK, map[string]interface{}{
				"success": true,
				"data":    map[string]interface{}{"valid": true, "calculated_discount": 0.0},
			})
		}))
		defer srv.Close()

		client := storefront.NewClient(srv.URL, "tok-123")

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.ValidateCoupon(ctx, "A", decimal.NewFromInt(10))
			assert.NoError(t, err)
		}()

		<-entered
		_, err := client.ValidateCoupon(ctx, "B", decimal.NewFromInt(10))
		assert.ErrorIs(t, err, storefront.ErrValidationInFlight)

		close(release)
		wg.Wait()

		// Flag resets once the first call resolves.
		srv2 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			respond(w, http.StatusOK, map[string]interface{}{
				"success": true,
				"data":    map[string]interface{}{"valid": true, "calculated_discount": 0.0},
			})
		}))
		defer srv2.Close()

		client2 := storefront.NewClient(srv2.URL, "tok-123")
		_, err = client2.ValidateCoupon(ctx, "C", decimal.NewFromInt(10))
		assert.NoError(t, err)
	})
}

func TestClient_Authentication(t *testing.T) {
	ctx := context.Background()

	t.Run("unauthorized_maps_to_login_error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		client := storefront.NewClient(srv.URL, "")
		_, err := client.FetchWishlistIDs(ctx)

		assert.ErrorIs(t, err, storefront.ErrNotAuthenticated)
	})

	t.Run("server_error_message_surfaces", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			respond(w, http.StatusNotFound, map[string]interface{}{
				"success": false,
				"error": map[string]string{
					"code":    "TEMPLATE_NOT_FOUND",
					"message": "القالب غير موجود",
				},
			})
		}))
		defer srv.Close()

		client := storefront.NewClient(srv.URL, "tok-123")
		_, err := client.ToggleWishlist(ctx, "tmpl-1")

		assert.EqualError(t, err, "القالب غير موجود")
	})
}

func TestClient_Orders(t *testing.T) {
	ctx := context.Background()

	t.Run("create_sends_ids_and_optional_coupon", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/orders", r.URL.Path)

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, []interface{}{"a", "b"}, body["template_ids"])
			assert.Equal(t, "SALE30", body["coupon_code"])

			respond(w, http.StatusCreated, map[string]interface{}{
				"success": true,
				"data":    map[string]string{"id": "order-1"},
			})
		}))
		defer srv.Close()

		client := storefront.NewClient(srv.URL, "tok-123")
		orderID, err := client.CreateOrder(ctx, []string{"a", "b"}, "SALE30")

		assert.NoError(t, err)
		assert.Equal(t, "order-1", orderID)
	})

	t.Run("create_omits_empty_coupon", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			_, present := body["coupon_code"]
			assert.False(t, present)

			respond(w, http.StatusCreated, map[string]interface{}{
				"success": true,
				"data":    map[string]string{"id": "order-2"},
			})
		}))
		defer srv.Close()

		client := storefront.NewClient(srv.URL, "tok-123")
		orderID, err := client.CreateOrder(ctx, []string{"a"}, "")

		assert.NoError(t, err)
		assert.Equal(t, "order-2", orderID)
	})

	t.Run("pay_posts_to_order_path", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/orders/order-1/pay", r.URL.Path)
			respond(w, http.StatusOK, map[string]interface{}{
				"success": true,
				"data":    map[string]string{"payment_status": "PAID"},
			})
		}))
		defer srv.Close()

		client := storefront.NewClient(srv.URL, "tok-123")
		assert.NoError(t, client.PayOrder(ctx, "order-1"))
	})
}

func TestClient_Wishlist(t *testing.T) {
	ctx := context.Background()

	t.Run("toggle_decodes_action", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/wishlist/toggle/tmpl-1", r.URL.Path)
			respond(w, http.StatusOK, map[string]interface{}{
				"success": true,
				"data":    map[string]interface{}{"action": "added", "is_wishlisted": true},
			})
		}))
		defer srv.Close()

		client := storefront.NewClient(srv.URL, "tok-123")
		res, err := client.ToggleWishlist(ctx, "tmpl-1")

		assert.NoError(t, err)
		assert.Equal(t, "added", res.Action)
		assert.True(t, res.IsWishlisted)
	})

	t.Run("fetch_ids_decodes_list", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/wishlist/ids", r.URL.Path)
			respond(w, http.StatusOK, map[string]interface{}{
				"success": true,
				"data":    map[string]interface{}{"ids": []string{"a", "b"}},
			})
		}))
		defer srv.Close()

		client := storefront.NewClient(srv.URL, "tok-123")
		ids, err := client.FetchWishlistIDs(ctx)

		assert.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, ids)
	})
}
