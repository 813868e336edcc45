package coupon

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"qaleb-store/internal/pkg/apperror"
	"qaleb-store/internal/shared/database/dbgen"
	"qaleb-store/internal/shared/database/helper"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=coupon_service.go -destination=../mock/coupon/coupon_service_mock.go -package=mock
type Service interface {
	// Validate checks a code against a live order total and computes the
	// discount server-side. A business rejection is a Valid=false result,
	// not an error; errors are reserved for infrastructure failures.
	Validate(ctx context.Context, code string, orderTotal decimal.Decimal) (ValidationResult, error)

	Create(ctx context.Context, req CreateCouponRequest) (CouponResponse, error)
	List(ctx context.Context) ([]CouponResponse, error)
	Deactivate(ctx context.Context, couponID string) error
}

type ValidationResult struct {
	Valid    bool
	Coupon   CouponSummary
	Discount decimal.Decimal
	Message  string
}

type service struct {
	repo     Repository
	validate *validator.Validate
	logger   *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		repo:     repo,
		validate: validator.New(),
		logger:   logger,
	}
}

func (s *service) Validate(ctx context.Context, code string, orderTotal decimal.Decimal) (ValidationResult, error) {
	// Codes are stored upper-case; normalize before lookup so user input
	// casing never matters.
	code = strings.ToUpper(strings.TrimSpace(code))

	rejected := func(msg string) ValidationResult {
		return ValidationResult{Valid: false, Message: msg}
	}

	if code == "" {
		return rejected(MsgInvalidCode), nil
	}

	c, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return rejected(MsgInvalidCode), nil
		}
		s.logger.Error("coupon lookup failed", zap.String("code", code), zap.Error(err))
		return ValidationResult{}, ErrCouponFailed
	}

	if !c.IsActive {
		return rejected(MsgInvalidCode), nil
	}

	if c.ExpiresAt.Valid && c.ExpiresAt.Time.Before(time.Now()) {
		return rejected(MsgExpired), nil
	}

	minTotal := helper.DecimalFromNumeric(c.MinOrderTotal)
	if orderTotal.LessThan(minTotal) {
		return rejected(MsgMinOrderUnmet), nil
	}

	discount := computeDiscount(c, orderTotal)

	return ValidationResult{
		Valid: true,
		Coupon: CouponSummary{
			Code:        c.Code,
			Description: c.Description,
		},
		Discount: discount,
		Message:  MsgApplied,
	}, nil
}

// computeDiscount derives the concrete amount from the coupon rule. The
// result is capped at the order total so a discount can never push a total
// below zero.
func computeDiscount(c dbgen.Coupon, orderTotal decimal.Decimal) decimal.Decimal {
	value := helper.DecimalFromNumeric(c.DiscountValue)

	var discount decimal.Decimal
	switch c.DiscountType {
	case DiscountPercent:
		discount = orderTotal.Mul(value).Div(decimal.NewFromInt(100)).Round(2)
	case DiscountFixed:
		discount = value
	default:
		return decimal.Zero
	}

	if discount.GreaterThan(orderTotal) {
		return orderTotal
	}
	return discount
}

func (s *service) Create(ctx context.Context, req CreateCouponRequest) (CouponResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return CouponResponse{}, apperror.MapValidationError(err)
	}

	if req.DiscountType != DiscountPercent && req.DiscountType != DiscountFixed {
		return CouponResponse{}, ErrInvalidDiscountType
	}

	var expiresAt sql.NullTime
	if req.ExpiresAt != nil {
		expiresAt = sql.NullTime{Time: *req.ExpiresAt, Valid: true}
	}

	c, err := s.repo.Create(ctx, dbgen.CreateCouponParams{
		Code:          strings.ToUpper(strings.TrimSpace(req.Code)),
		Description:   strings.TrimSpace(req.Description),
		DiscountType:  req.DiscountType,
		DiscountValue: helper.Float64ToDecimalExact(req.DiscountValue).StringFixed(2),
		MinOrderTotal: helper.Float64ToDecimalExact(req.MinOrderTotal).StringFixed(2),
		ExpiresAt:     expiresAt,
	})
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return CouponResponse{}, ErrCouponCodeTaken
		}
		return CouponResponse{}, err
	}

	return mapCouponToResponse(c), nil
}

func (s *service) List(ctx context.Context) ([]CouponResponse, error) {
	coupons, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]CouponResponse, 0, len(coupons))
	for _, c := range coupons {
		res = append(res, mapCouponToResponse(c))
	}
	return res, nil
}

func (s *service) Deactivate(ctx context.Context, couponID string) error {
	id, err := uuid.Parse(couponID)
	if err != nil {
		return ErrInvalidCouponID
	}

	return s.repo.SetActive(ctx, id, false)
}

func mapCouponToResponse(c dbgen.Coupon) CouponResponse {
	res := CouponResponse{
		ID:            c.ID.String(),
		Code:          c.Code,
		Description:   c.Description,
		DiscountType:  c.DiscountType,
		DiscountValue: helper.DecimalToFloat(helper.DecimalFromNumeric(c.DiscountValue)),
		MinOrderTotal: helper.DecimalToFloat(helper.DecimalFromNumeric(c.MinOrderTotal)),
		IsActive:      c.IsActive,
		CreatedAt:     c.CreatedAt,
	}

	if c.ExpiresAt.Valid {
		t := c.ExpiresAt.Time
		res.ExpiresAt = &t
	}

	return res
}
