package wishlist_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"qaleb-store/internal/wishlist"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// ==================== FAKE SERVICE ====================

type fakeWishlistService struct {
	toggleFunc    func(ctx context.Context, userID, templateID string) (wishlist.ToggleResponse, error)
	listIDsFunc   func(ctx context.Context, userID string) (wishlist.IDsResponse, error)
	listItemsFunc func(ctx context.Context, userID string) ([]wishlist.ItemResponse, error)
}

func (f *fakeWishlistService) Toggle(ctx context.Context, userID, templateID string) (wishlist.ToggleResponse, error) {
	if f.toggleFunc != nil {
		return f.toggleFunc(ctx, userID, templateID)
	}
	return wishlist.ToggleResponse{}, nil
}

func (f *fakeWishlistService) ListIDs(ctx context.Context, userID string) (wishlist.IDsResponse, error) {
	if f.listIDsFunc != nil {
		return f.listIDsFunc(ctx, userID)
	}
	return wishlist.IDsResponse{}, nil
}

func (f *fakeWishlistService) ListItems(ctx context.Context, userID string) ([]wishlist.ItemResponse, error) {
	if f.listItemsFunc != nil {
		return f.listItemsFunc(ctx, userID)
	}
	return nil, nil
}

// ==================== TOGGLE TESTS ====================

func TestWishlistHandler_Toggle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success_added", func(t *testing.T) {
		userID := uuid.New().String()
		templateID := uuid.New().String()

		svc := &fakeWishlistService{
			toggleFunc: func(ctx context.Context, uid, tid string) (wishlist.ToggleResponse, error) {
				assert.Equal(t, userID, uid)
				assert.Equal(t, templateID, tid)

				return wishlist.ToggleResponse{
					Action:       wishlist.ActionAdded,
					IsWishlisted: true,
				}, nil
			},
		}

		handler := wishlist.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/wishlist/toggle/"+templateID, nil)
		c.Request = req
		c.Params = gin.Params{{Key: "templateId", Value: templateID}}
		c.Set("user_id_validated", userID)

		handler.Toggle(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"action":"added"`)
		assert.Contains(t, w.Body.String(), `"is_wishlisted":true`)
	})

	t.Run("error_template_not_found", func(t *testing.T) {
		userID := uuid.New().String()
		templateID := uuid.New().String()

		svc := &fakeWishlistService{
			toggleFunc: func(ctx context.Context, uid, tid string) (wishlist.ToggleResponse, error) {
				return wishlist.ToggleResponse{}, wishlist.ErrTemplateNotFound
			},
		}

		handler := wishlist.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/wishlist/toggle/"+templateID, nil)
		c.Request = req
		c.Params = gin.Params{{Key: "templateId", Value: templateID}}
		c.Set("user_id_validated", userID)

		handler.Toggle(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), `"success":false`)
	})
}

// ==================== LIST IDS TESTS ====================

func TestWishlistHandler_ListIDs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success_returns_ids", func(t *testing.T) {
		userID := uuid.New().String()
		id := uuid.New().String()

		svc := &fakeWishlistService{
			listIDsFunc: func(ctx context.Context, uid string) (wishlist.IDsResponse, error) {
				assert.Equal(t, userID, uid)
				return wishlist.IDsResponse{IDs: []string{id}}, nil
			},
		}

		handler := wishlist.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodGet, "/wishlist/ids", nil)
		c.Request = req
		c.Set("user_id_validated", userID)

		handler.ListIDs(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), id)
	})

	t.Run("success_empty_list", func(t *testing.T) {
		userID := uuid.New().String()

		svc := &fakeWishlistService{
			listIDsFunc: func(ctx context.Context, uid string) (wishlist.IDsResponse, error) {
				return wishlist.IDsResponse{IDs: []string{}}, nil
			},
		}

		handler := wishlist.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodGet, "/wishlist/ids", nil)
		c.Request = req
		c.Set("user_id_validated", userID)

		handler.ListIDs(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"ids":[]`)
	})
}
