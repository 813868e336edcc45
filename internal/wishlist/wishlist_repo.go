package wishlist

import (
	"context"
	"database/sql"

	"qaleb-store/internal/shared/database/dbgen"

	"github.com/google/uuid"
)

//go:generate mockgen -source=wishlist_repo.go -destination=../mock/wishlist/wishlist_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx dbgen.DBTX) Repository

	GetOrCreate(ctx context.Context, userID uuid.UUID) (dbgen.Wishlist, error)
	ItemExists(ctx context.Context, wishlistID, templateID uuid.UUID) (bool, error)
	AddItem(ctx context.Context, wishlistID, templateID uuid.UUID) error
	RemoveItem(ctx context.Context, wishlistID, templateID uuid.UUID) error
	ListTemplateIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	GetItems(ctx context.Context, wishlistID uuid.UUID) ([]dbgen.GetWishlistItemsRow, error)
	TemplateExists(ctx context.Context, templateID uuid.UUID) (bool, error)
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

func (r *repository) GetOrCreate(ctx context.Context, userID uuid.UUID) (dbgen.Wishlist, error) {
	return r.queries.GetOrCreateWishlist(ctx, userID)
}

func (r *repository) ItemExists(ctx context.Context, wishlistID, templateID uuid.UUID) (bool, error) {
	return r.queries.CheckWishlistItemExists(ctx, dbgen.CheckWishlistItemExistsParams{
		WishlistID: wishlistID,
		TemplateID: templateID,
	})
}

func (r *repository) AddItem(ctx context.Context, wishlistID, templateID uuid.UUID) error {
	return r.queries.AddWishlistItem(ctx, dbgen.AddWishlistItemParams{
		WishlistID: wishlistID,
		TemplateID: templateID,
	})
}

func (r *repository) RemoveItem(ctx context.Context, wishlistID, templateID uuid.UUID) error {
	return r.queries.DeleteWishlistItem(ctx, dbgen.DeleteWishlistItemParams{
		WishlistID: wishlistID,
		TemplateID: templateID,
	})
}

func (r *repository) ListTemplateIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return r.queries.ListWishlistTemplateIDs(ctx, userID)
}

func (r *repository) GetItems(ctx context.Context, wishlistID uuid.UUID) ([]dbgen.GetWishlistItemsRow, error) {
	return r.queries.GetWishlistItems(ctx, wishlistID)
}

func (r *repository) TemplateExists(ctx context.Context, templateID uuid.UUID) (bool, error) {
	return r.queries.TemplateExists(ctx, templateID)
}
