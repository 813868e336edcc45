package template

import (
	"context"
	"database/sql"

	"qaleb-store/internal/shared/database/dbgen"

	"github.com/google/uuid"
)

//go:generate mockgen -source=template_repo.go -destination=../mock/template/template_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx dbgen.DBTX) Repository

	Create(ctx context.Context, arg dbgen.CreateTemplateParams) (dbgen.Template, error)
	GetByID(ctx context.Context, id uuid.UUID) (dbgen.Template, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]dbgen.Template, error)
	ListActive(ctx context.Context, arg dbgen.ListActiveTemplatesParams) ([]dbgen.ListActiveTemplatesRow, error)
	Update(ctx context.Context, arg dbgen.UpdateTemplateParams) (dbgen.Template, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
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

func (r *repository) Create(ctx context.Context, arg dbgen.CreateTemplateParams) (dbgen.Template, error) {
	return r.queries.CreateTemplate(ctx, arg)
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (dbgen.Template, error) {
	return r.queries.GetTemplateByID(ctx, id)
}

func (r *repository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]dbgen.Template, error) {
	return r.queries.GetTemplatesByIDs(ctx, ids)
}

func (r *repository) ListActive(ctx context.Context, arg dbgen.ListActiveTemplatesParams) ([]dbgen.ListActiveTemplatesRow, error) {
	return r.queries.ListActiveTemplates(ctx, arg)
}

func (r *repository) Update(ctx context.Context, arg dbgen.UpdateTemplateParams) (dbgen.Template, error) {
	return r.queries.UpdateTemplate(ctx, arg)
}

func (r *repository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return r.queries.SetTemplateActive(ctx, dbgen.SetTemplateActiveParams{
		ID:       id,
		IsActive: active,
	})
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.queries.DeleteTemplate(ctx, id)
}
