package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"qaleb-store/internal/auth"
	"qaleb-store/internal/coupon"
	"qaleb-store/internal/email"
	"qaleb-store/internal/outbox"
	"qaleb-store/internal/pkg/apperror"
	"qaleb-store/internal/pkg/response"
	"qaleb-store/internal/shared/database/dbgen"
	"qaleb-store/internal/shared/database/helper"
	"qaleb-store/internal/template"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// paymentStatusTransitions is the full transition table. A payment status
// missing from the map is terminal.
var paymentStatusTransitions = map[string][]string{
	PaymentUnpaid: {PaymentPaid, PaymentCancelled},
	PaymentPaid:   {PaymentRefunded},
}

type Service interface {
	// Create places an order from template ids. Every price is re-read from
	// the catalog and the coupon is re-validated against the recomputed
	// subtotal, then the order, its items and the created event are written
	// in one transaction.
	Create(ctx context.Context, userID string, req CreateOrderRequest) (OrderResponse, error)

	// Pay marks an unpaid order as paid. Paying an already paid order is a
	// no-op success so clients can retry safely.
	Pay(ctx context.Context, userID, orderID string) (OrderResponse, error)

	List(ctx context.Context, userID string, req ListOrdersRequest) ([]OrderResponse, *response.Pagination, error)
	Detail(ctx context.Context, userID, orderID string) (OrderResponse, error)

	// SendReceipt is invoked by the event consumer after an ORDER_PAID
	// event lands.
	SendReceipt(ctx context.Context, orderID string) error
}

type service struct {
	db           *sql.DB
	repo         Repository
	templateRepo template.Repository
	couponSvc    coupon.Service
	outboxRepo   outbox.Repository
	userRepo     auth.Repository
	emailSvc     email.Service
	validate     *validator.Validate
	logger       *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	templateRepo template.Repository,
	couponSvc coupon.Service,
	outboxRepo outbox.Repository,
	userRepo auth.Repository,
	emailSvc email.Service,
	logger *zap.Logger,
) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		db:           db,
		repo:         repo,
		templateRepo: templateRepo,
		couponSvc:    couponSvc,
		outboxRepo:   outboxRepo,
		userRepo:     userRepo,
		emailSvc:     emailSvc,
		validate:     validator.New(),
		logger:       logger,
	}
}

func (s *service) Create(ctx context.Context, userID string, req CreateOrderRequest) (OrderResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return OrderResponse{}, apperror.MapValidationError(err)
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return OrderResponse{}, ErrOrderFailed
	}

	ids, err := dedupeTemplateIDs(req.TemplateIDs)
	if err != nil {
		return OrderResponse{}, err
	}
	if len(ids) == 0 {
		return OrderResponse{}, ErrEmptyOrder
	}

	templates, err := s.templateRepo.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("order template lookup failed", zap.Error(err))
		return OrderResponse{}, ErrOrderFailed
	}

	// Every requested id must resolve to a live template; a stale cart
	// entry rejects the whole order.
	byID := make(map[uuid.UUID]dbgen.Template, len(templates))
	for _, t := range templates {
		if t.IsActive {
			byID[t.ID] = t
		}
	}
	subtotal := decimal.Zero
	for _, id := range ids {
		t, ok := byID[id]
		if !ok {
			return OrderResponse{}, ErrTemplateNotFound
		}
		subtotal = subtotal.Add(helper.DecimalFromNumeric(t.Price))
	}

	discount := decimal.Zero
	couponCode := sql.NullString{}
	if code := strings.TrimSpace(req.CouponCode); code != "" {
		result, err := s.couponSvc.Validate(ctx, code, subtotal)
		if err != nil {
			return OrderResponse{}, err
		}
		if !result.Valid {
			return OrderResponse{}, ErrCouponRejected
		}
		discount = result.Discount
		couponCode = sql.NullString{String: result.Coupon.Code, Valid: true}
	}

	total := subtotal.Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return OrderResponse{}, ErrOrderFailed
	}
	defer tx.Rollback()

	txRepo := s.repo.WithTx(tx)

	o, err := txRepo.Create(ctx, dbgen.CreateOrderParams{
		OrderNumber:   generateOrderNumber(),
		UserID:        uid,
		Status:        StatusPlaced,
		PaymentStatus: PaymentUnpaid,
		CouponCode:    couponCode,
		SubtotalPrice: subtotal.StringFixed(2),
		DiscountPrice: discount.StringFixed(2),
		TotalPrice:    total.StringFixed(2),
	})
	if err != nil {
		s.logger.Error("order insert failed", zap.Error(err))
		return OrderResponse{}, ErrOrderFailed
	}

	items := make([]OrderItemResponse, 0, len(ids))
	for _, id := range ids {
		t := byID[id]
		price := helper.DecimalFromNumeric(t.Price)
		if err := txRepo.CreateItem(ctx, dbgen.CreateOrderItemParams{
			OrderID:      o.ID,
			TemplateID:   t.ID,
			NameSnapshot: t.Name,
			TypeSnapshot: t.Type,
			UnitPrice:    price.StringFixed(2),
		}); err != nil {
			s.logger.Error("order item insert failed", zap.Error(err))
			return OrderResponse{}, ErrOrderFailed
		}
		items = append(items, OrderItemResponse{
			TemplateID: t.ID.String(),
			Name:       t.Name,
			Type:       t.Type,
			UnitPrice:  helper.DecimalToFloat(price),
		})
	}

	if err := s.writeOrderEvent(ctx, tx, o, EventOrderCreated, len(ids)); err != nil {
		return OrderResponse{}, ErrOrderFailed
	}

	if err := tx.Commit(); err != nil {
		return OrderResponse{}, ErrOrderFailed
	}

	res := mapOrderToResponse(o)
	res.Items = items
	return res, nil
}

func (s *service) Pay(ctx context.Context, userID, orderID string) (OrderResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return OrderResponse{}, ErrOrderFailed
	}
	oid, err := uuid.Parse(orderID)
	if err != nil {
		return OrderResponse{}, ErrInvalidOrderID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return OrderResponse{}, ErrOrderFailed
	}
	defer tx.Rollback()

	txRepo := s.repo.WithTx(tx)

	o, err := txRepo.GetForUpdate(ctx, oid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, ErrOrderNotFound
		}
		return OrderResponse{}, ErrOrderFailed
	}

	if o.UserID != uid {
		return OrderResponse{}, ErrNotOrderOwner
	}

	// Retry of a settled payment returns the order unchanged.
	if o.PaymentStatus == PaymentPaid {
		return mapOrderToResponse(o), nil
	}

	if !canTransition(o.PaymentStatus, PaymentPaid) {
		return OrderResponse{}, ErrInvalidTransition
	}

	updated, err := txRepo.UpdatePaymentStatus(ctx, dbgen.UpdateOrderPaymentStatusParams{
		ID:            o.ID,
		PaymentStatus: PaymentPaid,
		Status:        StatusCompleted,
		PaidAt:        sql.NullTime{Time: time.Now(), Valid: true},
		CancelledAt:   o.CancelledAt,
	})
	if err != nil {
		s.logger.Error("payment status update failed", zap.String("order_id", orderID), zap.Error(err))
		return OrderResponse{}, ErrOrderFailed
	}

	if err := s.writeOrderEvent(ctx, tx, updated, EventOrderPaid, 0); err != nil {
		return OrderResponse{}, ErrOrderFailed
	}

	if err := tx.Commit(); err != nil {
		return OrderResponse{}, ErrOrderFailed
	}

	return mapOrderToResponse(updated), nil
}

func (s *service) List(ctx context.Context, userID string, req ListOrdersRequest) ([]OrderResponse, *response.Pagination, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, nil, ErrOrderFailed
	}

	rows, err := s.repo.ListByUser(ctx, dbgen.ListOrdersByUserParams{
		UserID: uid,
		Limit:  int32(req.PageSize),
		Offset: int32((req.Page - 1) * req.PageSize),
	})
	if err != nil {
		s.logger.Error("list orders failed", zap.String("user_id", userID), zap.Error(err))
		return nil, nil, ErrOrderFailed
	}

	var totalCount int64
	orders := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		totalCount = row.TotalCount
		orders = append(orders, mapOrderToResponse(dbgen.Order{
			ID:            row.ID,
			OrderNumber:   row.OrderNumber,
			UserID:        row.UserID,
			Status:        row.Status,
			PaymentStatus: row.PaymentStatus,
			CouponCode:    row.CouponCode,
			SubtotalPrice: row.SubtotalPrice,
			DiscountPrice: row.DiscountPrice,
			TotalPrice:    row.TotalPrice,
			PaidAt:        row.PaidAt,
			CancelledAt:   row.CancelledAt,
			PlacedAt:      row.PlacedAt,
		}))
	}

	pag := response.NewPagination(req.Page, req.PageSize, totalCount)
	return orders, &pag, nil
}

func (s *service) Detail(ctx context.Context, userID, orderID string) (OrderResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return OrderResponse{}, ErrOrderFailed
	}
	oid, err := uuid.Parse(orderID)
	if err != nil {
		return OrderResponse{}, ErrInvalidOrderID
	}

	o, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, ErrOrderNotFound
		}
		return OrderResponse{}, ErrOrderFailed
	}
	if o.UserID != uid {
		return OrderResponse{}, ErrNotOrderOwner
	}

	items, err := s.repo.GetItems(ctx, o.ID)
	if err != nil {
		return OrderResponse{}, ErrOrderFailed
	}

	res := mapOrderToResponse(o)
	res.Items = make([]OrderItemResponse, 0, len(items))
	for _, it := range items {
		res.Items = append(res.Items, OrderItemResponse{
			TemplateID: it.TemplateID.String(),
			Name:       it.NameSnapshot,
			Type:       it.TypeSnapshot,
			UnitPrice:  helper.DecimalToFloat(helper.DecimalFromNumeric(it.UnitPrice)),
		})
	}
	return res, nil
}

func (s *service) SendReceipt(ctx context.Context, orderID string) error {
	oid, err := uuid.Parse(orderID)
	if err != nil {
		return ErrInvalidOrderID
	}

	o, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		return err
	}
	if o.PaymentStatus != PaymentPaid {
		s.logger.Warn("receipt requested for unpaid order, skipping",
			zap.String("order_id", orderID),
			zap.String("payment_status", o.PaymentStatus))
		return nil
	}

	user, err := s.userRepo.GetByID(ctx, o.UserID)
	if err != nil {
		return err
	}

	items, err := s.repo.GetItems(ctx, o.ID)
	if err != nil {
		return err
	}

	receipt := email.Receipt{
		OrderNumber: o.OrderNumber,
		Subtotal:    helper.DecimalToFloat(helper.DecimalFromNumeric(o.SubtotalPrice)),
		Discount:    helper.DecimalToFloat(helper.DecimalFromNumeric(o.DiscountPrice)),
		Total:       helper.DecimalToFloat(helper.DecimalFromNumeric(o.TotalPrice)),
	}
	if o.PaidAt.Valid {
		receipt.PaidAt = o.PaidAt.Time
	}
	for _, it := range items {
		receipt.Items = append(receipt.Items, email.ReceiptItem{
			Name:      it.NameSnapshot,
			UnitPrice: helper.DecimalToFloat(helper.DecimalFromNumeric(it.UnitPrice)),
		})
	}

	return s.emailSvc.SendPurchaseReceipt(ctx, user.Email, user.Name, receipt)
}

func (s *service) writeOrderEvent(ctx context.Context, tx *sql.Tx, o dbgen.Order, eventType string, itemCount int) error {
	payload, err := json.Marshal(OrderEventPayload{
		OrderID:     o.ID.String(),
		OrderNumber: o.OrderNumber,
		UserID:      o.UserID.String(),
		Total:       helper.DecimalToFloat(helper.DecimalFromNumeric(o.TotalPrice)),
		ItemCount:   itemCount,
	})
	if err != nil {
		return err
	}

	if err := s.outboxRepo.WithTx(tx).CreateEvent(ctx, AggregateOrder, o.ID, eventType, payload); err != nil {
		s.logger.Error("outbox event insert failed",
			zap.String("order_id", o.ID.String()),
			zap.String("event_type", eventType),
			zap.Error(err))
		return err
	}
	return nil
}

func canTransition(from, to string) bool {
	for _, allowed := range paymentStatusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func dedupeTemplateIDs(raw []string) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]struct{}, len(raw))
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, ErrTemplateNotFound
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}

// generateOrderNumber yields a human readable reference like
// QLB-1718000000-A3F9.
func generateOrderNumber() string {
	suffix := strings.ToUpper(uuid.NewString()[:4])
	return fmt.Sprintf("QLB-%d-%s", time.Now().Unix(), suffix)
}

func mapOrderToResponse(o dbgen.Order) OrderResponse {
	res := OrderResponse{
		ID:            o.ID.String(),
		OrderNumber:   o.OrderNumber,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		Subtotal:      helper.DecimalToFloat(helper.DecimalFromNumeric(o.SubtotalPrice)),
		Discount:      helper.DecimalToFloat(helper.DecimalFromNumeric(o.DiscountPrice)),
		Total:         helper.DecimalToFloat(helper.DecimalFromNumeric(o.TotalPrice)),
		PlacedAt:      o.PlacedAt,
	}
	if o.CouponCode.Valid {
		res.CouponCode = helper.StringPtr(o.CouponCode.String)
	}
	if o.PaidAt.Valid {
		t := o.PaidAt.Time
		res.PaidAt = &t
	}
	return res
}
