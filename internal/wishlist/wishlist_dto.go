package wishlist

import "time"

const (
	ActionAdded   = "added"
	ActionRemoved = "removed"
)

// ==================== RESPONSE STRUCTS ====================

// ToggleResponse reports which way the toggle resolved so the storefront can
// reconcile its optimistic state against the server's decision.
type ToggleResponse struct {
	Action       string `json:"action"`
	IsWishlisted bool   `json:"is_wishlisted"`
}

type IDsResponse struct {
	IDs []string `json:"ids"`
}

type ItemResponse struct {
	TemplateID string    `json:"templateId"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	Type       string    `json:"type"`
	Price      float64   `json:"price"`
	Thumbnail  *string   `json:"thumbnail,omitempty"`
	AddedAt    time.Time `json:"addedAt"`
}
