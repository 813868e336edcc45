package order_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"qaleb-store/internal/order"
	"qaleb-store/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// ==================== FAKE SERVICE ====================

type fakeOrderService struct {
	createFunc      func(ctx context.Context, userID string, req order.CreateOrderRequest) (order.OrderResponse, error)
	payFunc         func(ctx context.Context, userID, orderID string) (order.OrderResponse, error)
	listFunc        func(ctx context.Context, userID string, req order.ListOrdersRequest) ([]order.OrderResponse, *response.Pagination, error)
	detailFunc      func(ctx context.Context, userID, orderID string) (order.OrderResponse, error)
	sendReceiptFunc func(ctx context.Context, orderID string) error
}

func (f *fakeOrderService) Create(ctx context.Context, userID string, req order.CreateOrderRequest) (order.OrderResponse, error) {
	if f.createFunc != nil {
		return f.createFunc(ctx, userID, req)
	}
	return order.OrderResponse{}, nil
}

func (f *fakeOrderService) Pay(ctx context.Context, userID, orderID string) (order.OrderResponse, error) {
	if f.payFunc != nil {
		return f.payFunc(ctx, userID, orderID)
	}
	return order.OrderResponse{}, nil
}

func (f *fakeOrderService) List(ctx context.Context, userID string, req order.ListOrdersRequest) ([]order.OrderResponse, *response.Pagination, error) {
	if f.listFunc != nil {
		return f.listFunc(ctx, userID, req)
	}
	return nil, nil, nil
}

func (f *fakeOrderService) Detail(ctx context.Context, userID, orderID string) (order.OrderResponse, error) {
	if f.detailFunc != nil {
		return f.detailFunc(ctx, userID, orderID)
	}
	return order.OrderResponse{}, nil
}

func (f *fakeOrderService) SendReceipt(ctx context.Context, orderID string) error {
	if f.sendReceiptFunc != nil {
		return f.sendReceiptFunc(ctx, orderID)
	}
	return nil
}

// ==================== CREATE TESTS ====================

func TestOrderHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		userID := uuid.New().String()
		templateID := uuid.New().String()

		svc := &fakeOrderService{
			createFunc: func(ctx context.Context, uid string, req order.CreateOrderRequest) (order.OrderResponse, error) {
				assert.Equal(t, userID, uid)
				assert.Equal(t, []string{templateID}, req.TemplateIDs)
				assert.Equal(t, "SALE30", req.CouponCode)

				return order.OrderResponse{
					ID:            uuid.New().String(),
					OrderNumber:   "QLB-1756600000-AB12",
					Status:        order.StatusPlaced,
					PaymentStatus: order.PaymentUnpaid,
					Subtotal:      150,
					Discount:      30,
					Total:         120,
				}, nil
			},
		}

		handler := order.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"template_ids":["` + templateID + `"],"coupon_code":"SALE30"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("user_id_validated", userID)

		handler.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"paymentStatus":"UNPAID"`)
		assert.Contains(t, w.Body.String(), `"total":120`)
	})

	t.Run("error_empty_template_ids", func(t *testing.T) {
		handler := order.NewHandler(&fakeOrderService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"template_ids":[]}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("user_id_validated", uuid.New().String())

		handler.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"success":false`)
	})

	t.Run("error_coupon_rejected", func(t *testing.T) {
		svc := &fakeOrderService{
			createFunc: func(ctx context.Context, uid string, req order.CreateOrderRequest) (order.OrderResponse, error) {
				return order.OrderResponse{}, order.ErrCouponRejected
			},
		}

		handler := order.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"template_ids":["` + uuid.New().String() + `"],"coupon_code":"NOPE"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("user_id_validated", uuid.New().String())

		handler.Create(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), `"success":false`)
	})
}

// ==================== PAY TESTS ====================

func TestOrderHandler_Pay(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		userID := uuid.New().String()
		orderID := uuid.New().String()

		svc := &fakeOrderService{
			payFunc: func(ctx context.Context, uid, oid string) (order.OrderResponse, error) {
				assert.Equal(t, userID, uid)
				assert.Equal(t, orderID, oid)

				return order.OrderResponse{
					ID:            orderID,
					Status:        order.StatusCompleted,
					PaymentStatus: order.PaymentPaid,
				}, nil
			},
		}

		handler := order.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/orders/"+orderID+"/pay", nil)
		c.Params = gin.Params{{Key: "id", Value: orderID}}
		c.Set("user_id_validated", userID)

		handler.Pay(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"paymentStatus":"PAID"`)
		assert.Contains(t, w.Body.String(), `"status":"COMPLETED"`)
	})

	t.Run("error_not_owner", func(t *testing.T) {
		svc := &fakeOrderService{
			payFunc: func(ctx context.Context, uid, oid string) (order.OrderResponse, error) {
				return order.OrderResponse{}, order.ErrNotOrderOwner
			},
		}

		handler := order.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		orderID := uuid.New().String()
		c.Request = httptest.NewRequest(http.MethodPost, "/orders/"+orderID+"/pay", nil)
		c.Params = gin.Params{{Key: "id", Value: orderID}}
		c.Set("user_id_validated", uuid.New().String())

		handler.Pay(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("error_invalid_transition", func(t *testing.T) {
		svc := &fakeOrderService{
			payFunc: func(ctx context.Context, uid, oid string) (order.OrderResponse, error) {
				return order.OrderResponse{}, order.ErrInvalidTransition
			},
		}

		handler := order.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		orderID := uuid.New().String()
		c.Request = httptest.NewRequest(http.MethodPost, "/orders/"+orderID+"/pay", nil)
		c.Params = gin.Params{{Key: "id", Value: orderID}}
		c.Set("user_id_validated", uuid.New().String())

		handler.Pay(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

// ==================== LIST TESTS ====================

func TestOrderHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success_with_pagination", func(t *testing.T) {
		userID := uuid.New().String()

		svc := &fakeOrderService{
			listFunc: func(ctx context.Context, uid string, req order.ListOrdersRequest) ([]order.OrderResponse, *response.Pagination, error) {
				assert.Equal(t, userID, uid)
				assert.Equal(t, 2, req.Page)
				assert.Equal(t, 5, req.PageSize)

				pag := response.NewPagination(2, 5, 12)
				return []order.OrderResponse{{OrderNumber: "QLB-1-AAAA"}}, &pag, nil
			},
		}

		handler := order.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/orders?page=2&pageSize=5", nil)
		c.Set("user_id_validated", userID)

		handler.List(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"QLB-1-AAAA"`)
		assert.Contains(t, w.Body.String(), `"pagination"`)
	})
}
