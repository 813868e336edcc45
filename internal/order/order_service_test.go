package order_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"qaleb-store/internal/coupon"
	"qaleb-store/internal/email"
	authMock "qaleb-store/internal/mock/auth"
	couponMock "qaleb-store/internal/mock/coupon"
	orderMock "qaleb-store/internal/mock/order"
	outboxMock "qaleb-store/internal/mock/outbox"
	templateMock "qaleb-store/internal/mock/template"
	"qaleb-store/internal/order"
	"qaleb-store/internal/shared/database/dbgen"

	"database/sql"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type orderTestEnv struct {
	db       *sql.DB
	sqlMock  sqlmock.Sqlmock
	repo     *orderMock.MockRepository
	tmplRepo *templateMock.MockRepository
	coupons  *couponMock.MockService
	outbox   *outboxMock.MockRepository
	users    *authMock.MockRepository
	svc      order.Service
}

func newOrderTestEnv(t *testing.T, ctrl *gomock.Controller) *orderTestEnv {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() { db.Close() })

	env := &orderTestEnv{
		db:       db,
		sqlMock:  mock,
		repo:     orderMock.NewMockRepository(ctrl),
		tmplRepo: templateMock.NewMockRepository(ctrl),
		coupons:  couponMock.NewMockService(ctrl),
		outbox:   outboxMock.NewMockRepository(ctrl),
		users:    authMock.NewMockRepository(ctrl),
	}
	env.svc = order.NewService(
		db,
		env.repo,
		env.tmplRepo,
		env.coupons,
		env.outbox,
		env.users,
		email.NewNoopService(zap.NewNop()),
		zap.NewNop(),
	)
	return env
}

func testTemplate(id uuid.UUID, name, price string) dbgen.Template {
	return dbgen.Template{
		ID:       id,
		Name:     name,
		Slug:     strings.ToLower(name),
		Type:     "ready",
		Price:    price,
		IsActive: true,
	}
}

func TestOrderService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("success_with_coupon_recomputes_prices", func(t *testing.T) {
		env := newOrderTestEnv(t, ctrl)
		userID := uuid.New()
		tmplA := uuid.New()
		tmplB := uuid.New()
		orderID := uuid.New()

		env.tmplRepo.EXPECT().
			GetByIDs(gomock.Any(), []uuid.UUID{tmplA, tmplB}).
			Return([]dbgen.Template{
				testTemplate(tmplA, "شهادة شكر", "100.00"),
				testTemplate(tmplB, "خطة أسبوعية", "50.00"),
			}, nil)

		env.coupons.EXPECT().
			Validate(gomock.Any(), "SALE30", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, total decimal.Decimal) (coupon.ValidationResult, error) {
				assert.True(t, total.Equal(decimal.NewFromInt(150)), "subtotal %s", total)
				return coupon.ValidationResult{
					Valid:    true,
					Coupon:   coupon.CouponSummary{Code: "SALE30"},
					Discount: decimal.NewFromInt(30),
				}, nil
			})

		env.sqlMock.ExpectBegin()
		env.sqlMock.ExpectCommit()

		env.repo.EXPECT().WithTx(gomock.Any()).Return(env.repo)
		env.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg dbgen.CreateOrderParams) (dbgen.Order, error) {
				assert.True(t, strings.HasPrefix(arg.OrderNumber, "QLB-"))
				assert.Equal(t, order.StatusPlaced, arg.Status)
				assert.Equal(t, order.PaymentUnpaid, arg.PaymentStatus)
				assert.Equal(t, "150.00", arg.SubtotalPrice)
				assert.Equal(t, "30.00", arg.DiscountPrice)
				assert.Equal(t, "120.00", arg.TotalPrice)
				assert.Equal(t, "SALE30", arg.CouponCode.String)

				return dbgen.Order{
					ID:            orderID,
					OrderNumber:   arg.OrderNumber,
					UserID:        userID,
					Status:        arg.Status,
					PaymentStatus: arg.PaymentStatus,
					CouponCode:    arg.CouponCode,
					SubtotalPrice: arg.SubtotalPrice,
					DiscountPrice: arg.DiscountPrice,
					TotalPrice:    arg.TotalPrice,
					PlacedAt:      time.Now(),
				}, nil
			})
		env.repo.EXPECT().CreateItem(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		env.outbox.EXPECT().WithTx(gomock.Any()).Return(env.outbox)
		env.outbox.EXPECT().
			CreateEvent(gomock.Any(), order.AggregateOrder, orderID, order.EventOrderCreated, gomock.Any()).
			Return(nil)

		// Duplicate ids in the request collapse to one line.
		res, err := env.svc.Create(ctx, userID.String(), order.CreateOrderRequest{
			TemplateIDs: []string{tmplA.String(), tmplB.String(), tmplA.String()},
			CouponCode:  "SALE30",
		})

		assert.NoError(t, err)
		assert.Equal(t, float64(120), res.Total)
		assert.Len(t, res.Items, 2)
		assert.NoError(t, env.sqlMock.ExpectationsWereMet())
	})

	t.Run("error_empty_items", func(t *testing.T) {
		env := newOrderTestEnv(t, ctrl)
		userID := uuid.New()

		_, err := env.svc.Create(ctx, userID.String(), order.CreateOrderRequest{TemplateIDs: []string{}})

		assert.ErrorIs(t, err, order.ErrEmptyOrder)
	})

	t.Run("error_inactive_template_rejects_order", func(t *testing.T) {
		env := newOrderTestEnv(t, ctrl)
		userID := uuid.New()
		tmplA := uuid.New()
		inactive := testTemplate(tmplA, "قالب قديم", "100.00")
		inactive.IsActive = false

		env.tmplRepo.EXPECT().
			GetByIDs(gomock.Any(), []uuid.UUID{tmplA}).
			Return([]dbgen.Template{inactive}, nil)

		_, err := env.svc.Create(ctx, userID.String(), order.CreateOrderRequest{
			TemplateIDs: []string{tmplA.String()},
		})

		assert.ErrorIs(t, err, order.ErrTemplateNotFound)
	})

	t.Run("error_coupon_rejected", func(t *testing.T) {
		env := newOrderTestEnv(t, ctrl)
		userID := uuid.New()
		tmplA := uuid.New()

		env.tmplRepo.EXPECT().
			GetByIDs(gomock.Any(), []uuid.UUID{tmplA}).
			Return([]dbgen.Template{testTemplate(tmplA, "شهادة", "100.00")}, nil)

		env.coupons.EXPECT().
			Validate(gomock.Any(), "BAD", gomock.Any()).
			Return(coupon.ValidationResult{Valid: false, Message: coupon.MsgInvalidCode}, nil)

		_, err := env.svc.Create(ctx, userID.String(), order.CreateOrderRequest{
			TemplateIDs: []string{tmplA.String()},
			CouponCode:  "BAD",
		})

		assert.ErrorIs(t, err, order.ErrCouponRejected)
	})
}

func TestOrderService_Pay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("success_unpaid_to_paid", func(t *testing.T) {
		env := newOrderTestEnv(t, ctrl)
		userID := uuid.New()
		orderID := uuid.New()

		env.sqlMock.ExpectBegin()
		env.sqlMock.ExpectCommit()

		env.repo.EXPECT().WithTx(gomock.Any()).Return(env.repo)
		env.repo.EXPECT().
			GetForUpdate(gomock.Any(), orderID).
			Return(dbgen.Order{
				ID:            orderID,
				OrderNumber:   "QLB-1-TEST",
				UserID:        userID,
				Status:        order.StatusPlaced,
				PaymentStatus: order.PaymentUnpaid,
				TotalPrice:    "120.00",
			}, nil)

		env.repo.EXPECT().
			UpdatePaymentStatus(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg dbgen.UpdateOrderPaymentStatusParams) (dbgen.Order, error) {
				assert.Equal(t, order.PaymentPaid, arg.PaymentStatus)
				assert.Equal(t, order.StatusCompleted, arg.Status)
				assert.True(t, arg.PaidAt.Valid)

				return dbgen.Order{
					ID:            orderID,
					OrderNumber:   "QLB-1-TEST",
					UserID:        userID,
					Status:        arg.Status,
					PaymentStatus: arg.PaymentStatus,
					TotalPrice:    "120.00",
					PaidAt:        arg.PaidAt,
				}, nil
			})

		env.outbox.EXPECT().WithTx(gomock.Any()).Return(env.outbox)
		env.outbox.EXPECT().
			CreateEvent(gomock.Any(), order.AggregateOrder, orderID, order.EventOrderPaid, gomock.Any()).
			Return(nil)

		res, err := env.svc.Pay(ctx, userID.String(), orderID.String())

		assert.NoError(t, err)
		assert.Equal(t, order.PaymentPaid, res.PaymentStatus)
		assert.NotNil(t, res.PaidAt)
		assert.NoError(t, env.sqlMock.ExpectationsWereMet())
	})

	t.Run("success_already_paid_is_noop", func(t *testing.T) {
		env := newOrderTestEnv(t, ctrl)
		userID := uuid.New()
		orderID := uuid.New()

		env.sqlMock.ExpectBegin()
		env.sqlMock.ExpectRollback()

		env.repo.EXPECT().WithTx(gomock.Any()).Return(env.repo)
		env.repo.EXPECT().
			GetForUpdate(gomock.Any(), orderID).
			Return(dbgen.Order{
				ID:            orderID,
				UserID:        userID,
				Status:        order.StatusCompleted,
				PaymentStatus: order.PaymentPaid,
				TotalPrice:    "120.00",
			}, nil)

		res, err := env.svc.Pay(ctx, userID.String(), orderID.String())

		assert.NoError(t, err)
		assert.Equal(t, order.PaymentPaid, res.PaymentStatus)
		assert.NoError(t, env.sqlMock.ExpectationsWereMet())
	})

	t.Run("error_not_owner", func(t *testing.T) {
		env := newOrderTestEnv(t, ctrl)
		orderID := uuid.New()

		env.sqlMock.ExpectBegin()
		env.sqlMock.ExpectRollback()

		env.repo.EXPECT().WithTx(gomock.Any()).Return(env.repo)
		env.repo.EXPECT().
			GetForUpdate(gomock.Any(), orderID).
			Return(dbgen.Order{
				ID:            orderID,
				UserID:        uuid.New(),
				PaymentStatus: order.PaymentUnpaid,
			}, nil)

		_, err := env.svc.Pay(ctx, uuid.New().String(), orderID.String())

		assert.ErrorIs(t, err, order.ErrNotOrderOwner)
	})

	t.Run("error_cancelled_cannot_be_paid", func(t *testing.T) {
		env := newOrderTestEnv(t, ctrl)
		userID := uuid.New()
		orderID := uuid.New()

		env.sqlMock.ExpectBegin()
		env.sqlMock.ExpectRollback()

		env.repo.EXPECT().WithTx(gomock.Any()).Return(env.repo)
		env.repo.EXPECT().
			GetForUpdate(gomock.Any(), orderID).
			Return(dbgen.Order{
				ID:            orderID,
				UserID:        userID,
				Status:        order.StatusCancelled,
				PaymentStatus: order.PaymentCancelled,
			}, nil)

		_, err := env.svc.Pay(ctx, userID.String(), orderID.String())

		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestOrderService_SendReceipt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("skips_unpaid_order", func(t *testing.T) {
		env := newOrderTestEnv(t, ctrl)
		orderID := uuid.New()

		env.repo.EXPECT().
			GetByID(gomock.Any(), orderID).
			Return(dbgen.Order{
				ID:            orderID,
				PaymentStatus: order.PaymentUnpaid,
			}, nil)

		err := env.svc.SendReceipt(ctx, orderID.String())

		assert.NoError(t, err)
	})

	t.Run("sends_for_paid_order", func(t *testing.T) {
		env := newOrderTestEnv(t, ctrl)
		orderID := uuid.New()
		userID := uuid.New()

		env.repo.EXPECT().
			GetByID(gomock.Any(), orderID).
			Return(dbgen.Order{
				ID:            orderID,
				OrderNumber:   "QLB-1-TEST",
				UserID:        userID,
				PaymentStatus: order.PaymentPaid,
				SubtotalPrice: "150.00",
				DiscountPrice: "30.00",
				TotalPrice:    "120.00",
				PaidAt:        sql.NullTime{Time: time.Now(), Valid: true},
			}, nil)

		env.users.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(dbgen.User{ID: userID, Name: "سارة", Email: "sara@example.com"}, nil)

		env.repo.EXPECT().
			GetItems(gomock.Any(), orderID).
			Return([]dbgen.OrderItem{
				{TemplateID: uuid.New(), NameSnapshot: "شهادة شكر", UnitPrice: "100.00"},
			}, nil)

		err := env.svc.SendReceipt(ctx, orderID.String())

		assert.NoError(t, err)
	})
}
