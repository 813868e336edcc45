package template

import "time"

// Template types mirror the two catalog families: ready-made documents and
// interactive ones the buyer fills in.
const (
	TypeReady       = "ready"
	TypeInteractive = "interactive"
)

// ==================== REQUEST STRUCTS ====================

type CreateTemplateRequest struct {
	Name  string  `form:"name" binding:"required"`
	Slug  string  `form:"slug" binding:"required"`
	Type  string  `form:"type" binding:"required"`
	Price float64 `form:"price" binding:"min=0"`
}

type UpdateTemplateRequest struct {
	Name  string  `form:"name" binding:"required"`
	Slug  string  `form:"slug" binding:"required"`
	Type  string  `form:"type" binding:"required"`
	Price float64 `form:"price" binding:"min=0"`
}

type ListTemplatesRequest struct {
	Page  int    `form:"page"`
	Limit int    `form:"limit"`
	Type  string `form:"type"`
}

// ==================== RESPONSE STRUCTS ====================

type TemplateResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Type      string    `json:"type"`
	Price     float64   `json:"price"`
	Thumbnail string    `json:"thumbnail,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
