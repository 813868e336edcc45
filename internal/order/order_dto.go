package order

import "time"

const (
	StatusPlaced    = "PLACED"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"

	PaymentUnpaid    = "UNPAID"
	PaymentPaid      = "PAID"
	PaymentCancelled = "CANCELLED"
	PaymentRefunded  = "REFUNDED"
)

const (
	EventOrderCreated = "ORDER_CREATED"
	EventOrderPaid    = "ORDER_PAID"

	AggregateOrder = "order"
)

// ==================== REQUEST STRUCTS ====================

// CreateOrderRequest carries template ids only. Prices and the discount are
// recomputed server-side from live data; client totals are never trusted.
type CreateOrderRequest struct {
	TemplateIDs []string `json:"template_ids" binding:"required,min=1,dive,uuid" validate:"omitempty,dive,uuid"`
	CouponCode  string   `json:"coupon_code" validate:"omitempty,max=32"`
}

type ListOrdersRequest struct {
	Page     int `form:"page,default=1" binding:"min=1"`
	PageSize int `form:"pageSize,default=10" binding:"min=1,max=50"`
}

// ==================== RESPONSE STRUCTS ====================

type OrderItemResponse struct {
	TemplateID string  `json:"templateId"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	UnitPrice  float64 `json:"unitPrice"`
}

type OrderResponse struct {
	ID            string              `json:"id"`
	OrderNumber   string              `json:"orderNumber"`
	Status        string              `json:"status"`
	PaymentStatus string              `json:"paymentStatus"`
	CouponCode    *string             `json:"couponCode,omitempty"`
	Subtotal      float64             `json:"subtotal"`
	Discount      float64             `json:"discount"`
	Total         float64             `json:"total"`
	Items         []OrderItemResponse `json:"items,omitempty"`
	PaidAt        *time.Time          `json:"paidAt,omitempty"`
	PlacedAt      time.Time           `json:"placedAt"`
}

// ==================== EVENT PAYLOADS ====================

type OrderEventPayload struct {
	OrderID     string  `json:"order_id"`
	OrderNumber string  `json:"order_number"`
	UserID      string  `json:"user_id"`
	Total       float64 `json:"total"`
	ItemCount   int     `json:"item_count"`
}
