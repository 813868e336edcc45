package wishlist

import (
	"context"
	"database/sql"
	"errors"

	"qaleb-store/internal/shared/database/helper"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	// Toggle flips a template's membership for the user's wishlist. The
	// check-then-write pair runs inside one transaction so two racing
	// toggles cannot both observe the same prior state.
	Toggle(ctx context.Context, userID, templateID string) (ToggleResponse, error)

	ListIDs(ctx context.Context, userID string) (IDsResponse, error)
	ListItems(ctx context.Context, userID string) ([]ItemResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		db:     db,
		repo:   repo,
		logger: logger,
	}
}

func (s *service) Toggle(ctx context.Context, userID, templateID string) (ToggleResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return ToggleResponse{}, ErrWishlistFailed
	}
	tid, err := uuid.Parse(templateID)
	if err != nil {
		return ToggleResponse{}, ErrInvalidTemplateID
	}

	exists, err := s.repo.TemplateExists(ctx, tid)
	if err != nil {
		s.logger.Error("template existence check failed", zap.String("template_id", templateID), zap.Error(err))
		return ToggleResponse{}, ErrWishlistFailed
	}
	if !exists {
		return ToggleResponse{}, ErrTemplateNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ToggleResponse{}, ErrWishlistFailed
	}
	defer tx.Rollback()

	txRepo := s.repo.WithTx(tx)

	wl, err := txRepo.GetOrCreate(ctx, uid)
	if err != nil {
		s.logger.Error("get or create wishlist failed", zap.String("user_id", userID), zap.Error(err))
		return ToggleResponse{}, ErrWishlistFailed
	}

	present, err := txRepo.ItemExists(ctx, wl.ID, tid)
	if err != nil {
		return ToggleResponse{}, ErrWishlistFailed
	}

	res := ToggleResponse{}
	if present {
		if err := txRepo.RemoveItem(ctx, wl.ID, tid); err != nil {
			return ToggleResponse{}, ErrWishlistFailed
		}
		res.Action = ActionRemoved
		res.IsWishlisted = false
	} else {
		if err := txRepo.AddItem(ctx, wl.ID, tid); err != nil {
			return ToggleResponse{}, ErrWishlistFailed
		}
		res.Action = ActionAdded
		res.IsWishlisted = true
	}

	if err := tx.Commit(); err != nil {
		return ToggleResponse{}, ErrWishlistFailed
	}

	return res, nil
}

func (s *service) ListIDs(ctx context.Context, userID string) (IDsResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return IDsResponse{}, ErrWishlistFailed
	}

	ids, err := s.repo.ListTemplateIDs(ctx, uid)
	if err != nil {
		s.logger.Error("list wishlist ids failed", zap.String("user_id", userID), zap.Error(err))
		return IDsResponse{}, ErrWishlistFailed
	}

	// Always a concrete slice so the wire shape stays an array, never null.
	res := IDsResponse{IDs: make([]string, 0, len(ids))}
	for _, id := range ids {
		res.IDs = append(res.IDs, id.String())
	}
	return res, nil
}

func (s *service) ListItems(ctx context.Context, userID string) ([]ItemResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrWishlistFailed
	}

	wl, err := s.repo.GetOrCreate(ctx, uid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []ItemResponse{}, nil
		}
		return nil, ErrWishlistFailed
	}

	rows, err := s.repo.GetItems(ctx, wl.ID)
	if err != nil {
		s.logger.Error("list wishlist items failed", zap.String("user_id", userID), zap.Error(err))
		return nil, ErrWishlistFailed
	}

	items := make([]ItemResponse, 0, len(rows))
	for _, row := range rows {
		var thumb *string
		if row.Thumbnail.Valid {
			thumb = helper.StringPtr(row.Thumbnail.String)
		}
		items = append(items, ItemResponse{
			TemplateID: row.TemplateID.String(),
			Name:       row.Name,
			Slug:       row.Slug,
			Type:       row.Type,
			Price:      helper.DecimalToFloat(helper.DecimalFromNumeric(row.Price)),
			Thumbnail:  thumb,
			AddedAt:    row.CreatedAt,
		})
	}
	return items, nil
}
