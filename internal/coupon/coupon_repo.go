package coupon

import (
	"context"
	"database/sql"

	"qaleb-store/internal/shared/database/dbgen"

	"github.com/google/uuid"
)

//go:generate mockgen -source=coupon_repo.go -destination=../mock/coupon/coupon_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx dbgen.DBTX) Repository

	Create(ctx context.Context, arg dbgen.CreateCouponParams) (dbgen.Coupon, error)
	GetByCode(ctx context.Context, code string) (dbgen.Coupon, error)
	List(ctx context.Context) ([]dbgen.Coupon, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

type repository struct {
	queries *dbgen.Queries
}

func NewRepository(q *dbgen.Queries) Repository {
	return &repository{queries: q}
}

func (r *repository) WithTx(tx dbgen.DBTX) Repository {
	if sqlTx, ok := tx.(*sql.Tx); ok {
		return &repository{
			queries: r.queries.WithTx(sqlTx),
		}
	}
	return r
}

func (r *repository) Create(ctx context.Context, arg dbgen.CreateCouponParams) (dbgen.Coupon, error) {
	return r.queries.CreateCoupon(ctx, arg)
}

func (r *repository) GetByCode(ctx context.Context, code string) (dbgen.Coupon, error) {
	return r.queries.GetCouponByCode(ctx, code)
}

func (r *repository) List(ctx context.Context) ([]dbgen.Coupon, error) {
	return r.queries.ListCoupons(ctx)
}

func (r *repository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return r.queries.SetCouponActive(ctx, dbgen.SetCouponActiveParams{
		ID:       id,
		IsActive: active,
	})
}
