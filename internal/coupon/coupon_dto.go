package coupon

import "time"

const (
	DiscountPercent = "percent"
	DiscountFixed   = "fixed"
)

// ==================== REQUEST STRUCTS ====================

type ValidateCouponRequest struct {
	Code       string  `json:"code" binding:"required"`
	OrderTotal float64 `json:"order_total" binding:"min=0"`
}

type CreateCouponRequest struct {
	Code          string     `json:"code" binding:"required" validate:"required,min=2,max=32"`
	Description   string     `json:"description" validate:"max=255"`
	DiscountType  string     `json:"discountType" binding:"required" validate:"required"`
	DiscountValue float64    `json:"discountValue" binding:"required,gt=0" validate:"required,gt=0"`
	MinOrderTotal float64    `json:"minOrderTotal" binding:"min=0" validate:"min=0"`
	ExpiresAt     *time.Time `json:"expiresAt"`
}

// ==================== RESPONSE STRUCTS ====================

type CouponSummary struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// ValidateCouponResponse is the wire contract the storefront previews
// against. Business rejections are Valid=false with a message, not HTTP
// errors.
type ValidateCouponResponse struct {
	Valid              bool           `json:"valid"`
	Coupon             *CouponSummary `json:"coupon,omitempty"`
	CalculatedDiscount float64        `json:"calculated_discount"`
	Message            string         `json:"message"`
}

type CouponResponse struct {
	ID            string     `json:"id"`
	Code          string     `json:"code"`
	Description   string     `json:"description"`
	DiscountType  string     `json:"discountType"`
	DiscountValue float64    `json:"discountValue"`
	MinOrderTotal float64    `json:"minOrderTotal"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
	IsActive      bool       `json:"isActive"`
	CreatedAt     time.Time  `json:"createdAt"`
}
