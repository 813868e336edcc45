// Package storefront is the client-side core of the store: cart and wishlist
// state, coupon preview, and checkout sequencing, talking to the API the way
// the web frontend does.
package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotAuthenticated is returned on 401 so the embedding UI can
	// redirect to login instead of showing an inline error.
	ErrNotAuthenticated = errors.New("يجب تسجيل الدخول أولاً")

	// ErrRequestFailed is the generic retry-suggesting message shown for
	// transport failures.
	ErrRequestFailed = errors.New("حدث خطأ، حاول مرة أخرى")

	// ErrValidationInFlight is returned when a coupon validation starts
	// while a previous one has not resolved yet.
	ErrValidationInFlight = errors.New("coupon validation already in progress")
)

// CouponRejection carries the server's business-rule message (invalid code,
// expired, minimum not met) for inline display.
type CouponRejection struct {
	Message string
}

func (e *CouponRejection) Error() string {
	return e.Message
}

type CouponResult struct {
	Valid    bool
	Code     string
	Message  string
	Discount decimal.Decimal
}

type ToggleResult struct {
	Action       string
	IsWishlisted bool
}

// API is the server boundary the stores depend on. Tests swap it for a fake.
type API interface {
	ValidateCoupon(ctx context.Context, code string, orderTotal decimal.Decimal) (CouponResult, error)
	ToggleWishlist(ctx context.Context, templateID string) (ToggleResult, error)
	FetchWishlistIDs(ctx context.Context) ([]string, error)
	CreateOrder(ctx context.Context, templateIDs []string, couponCode string) (string, error)
	PayOrder(ctx context.Context, orderID string) error
}

// Client implements API over HTTP against the store's REST surface.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client

	// couponBusy mirrors the disabled-while-pending coupon input: no
	// queuing, a second validation simply refuses to start.
	couponBusy atomic.Bool
}

func NewClient(baseURL, accessToken string) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api/v1"+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.accessToken != "" {
		req.AddCookie(&http.Cookie{Name: "access_token", Value: c.accessToken})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ErrRequestFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrNotAuthenticated
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return ErrRequestFailed
	}

	if !env.Success {
		if env.Error != nil && env.Error.Message != "" {
			return fmt.Errorf("%s", env.Error.Message)
		}
		return ErrRequestFailed
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return ErrRequestFailed
		}
	}
	return nil
}

// ValidateCoupon previews a code against a live order total. The code is
// upper-cased before submission; the discount always comes back from the
// server, never computed locally.
func (c *Client) ValidateCoupon(ctx context.Context, code string, orderTotal decimal.Decimal) (CouponResult, error) {
	if !c.couponBusy.CompareAndSwap(false, true) {
		return CouponResult{}, ErrValidationInFlight
	}
	defer c.couponBusy.Store(false)

	req := map[string]interface{}{
		"code":        strings.ToUpper(strings.TrimSpace(code)),
		"order_total": orderTotal.InexactFloat64(),
	}

	var data struct {
		Valid  bool `json:"valid"`
		Coupon *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"coupon"`
		CalculatedDiscount float64 `json:"calculated_discount"`
		Message            string  `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/coupons/validate", req, &data); err != nil {
		return CouponResult{}, err
	}

	res := CouponResult{
		Valid:    data.Valid,
		Message:  data.Message,
		Discount: decimal.NewFromFloat(data.CalculatedDiscount),
	}
	if data.Coupon != nil {
		res.Code = data.Coupon.Code
	}
	return res, nil
}

func (c *Client) ToggleWishlist(ctx context.Context, templateID string) (ToggleResult, error) {
	var data struct {
		Action       string `json:"action"`
		IsWishlisted bool   `json:"is_wishlisted"`
	}
	if err := c.do(ctx, http.MethodPost, "/wishlist/toggle/"+templateID, nil, &data); err != nil {
		return ToggleResult{}, err
	}
	return ToggleResult{Action: data.Action, IsWishlisted: data.IsWishlisted}, nil
}

func (c *Client) FetchWishlistIDs(ctx context.Context) ([]string, error) {
	var data struct {
		IDs []string `json:"ids"`
	}
	if err := c.do(ctx, http.MethodGet, "/wishlist/ids", nil, &data); err != nil {
		return nil, err
	}
	return data.IDs, nil
}

func (c *Client) CreateOrder(ctx context.Context, templateIDs []string, couponCode string) (string, error) {
	req := map[string]interface{}{
		"template_ids": templateIDs,
	}
	if couponCode != "" {
		req["coupon_code"] = couponCode
	}

	var data struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/orders", req, &data); err != nil {
		return "", err
	}
	return data.ID, nil
}

func (c *Client) PayOrder(ctx context.Context, orderID string) error {
	return c.do(ctx, http.MethodPost, "/orders/"+orderID+"/pay", nil, nil)
}
