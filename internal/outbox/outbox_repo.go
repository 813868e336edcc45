package outbox

import (
	"context"
	"database/sql"
	"encoding/json"

	"qaleb-store/internal/shared/database/dbgen"

	"github.com/google/uuid"
)

const (
	StatusPending = "PENDING"
	StatusSent    = "SENT"
	StatusFailed  = "FAILED"
)

//go:generate mockgen -source=outbox_repo.go -destination=../mock/outbox/outbox_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx dbgen.DBTX) Repository

	// CreateEvent records an event in the same transaction as the state
	// change it describes. The relay picks it up asynchronously.
	CreateEvent(ctx context.Context, aggregateType string, aggregateID uuid.UUID, eventType string, payload json.RawMessage) error

	ListPending(ctx context.Context, limit int32) ([]dbgen.OutboxEvent, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID) error
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

func (r *repository) CreateEvent(ctx context.Context, aggregateType string, aggregateID uuid.UUID, eventType string, payload json.RawMessage) error {
	return r.queries.CreateOutboxEvent(ctx, dbgen.CreateOutboxEventParams{
		ID:            uuid.New(),
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		EventType:     eventType,
		Payload:       payload,
	})
}

func (r *repository) ListPending(ctx context.Context, limit int32) ([]dbgen.OutboxEvent, error) {
	return r.queries.ListPendingOutbox(ctx, limit)
}

func (r *repository) MarkSent(ctx context.Context, id uuid.UUID) error {
	return r.queries.MarkOutboxSent(ctx, id)
}

func (r *repository) MarkFailed(ctx context.Context, id uuid.UUID) error {
	return r.queries.MarkOutboxFailed(ctx, id)
}
