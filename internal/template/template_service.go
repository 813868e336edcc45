package template

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"qaleb-store/internal/cloudinary"
	"qaleb-store/internal/shared/database/dbgen"
	"qaleb-store/internal/shared/database/helper"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const listCacheTTL = 60 * time.Second

type Service interface {
	List(ctx context.Context, req ListTemplatesRequest) ([]TemplateResponse, int64, error)
	Detail(ctx context.Context, id string) (TemplateResponse, error)

	Create(ctx context.Context, req CreateTemplateRequest, thumbnail multipart.File, filename string) (TemplateResponse, error)
	Update(ctx context.Context, id string, req UpdateTemplateRequest, thumbnail multipart.File, filename string) (TemplateResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo      Repository
	cache     *redis.Client
	uploadSvc cloudinary.Service
	logger    *zap.Logger
}

func NewService(repo Repository, cache *redis.Client, uploadSvc cloudinary.Service, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		repo:      repo,
		cache:     cache,
		uploadSvc: uploadSvc,
		logger:    logger,
	}
}

type cachedList struct {
	Items []TemplateResponse `json:"items"`
	Total int64              `json:"total"`
}

func (s *service) List(ctx context.Context, req ListTemplatesRequest) ([]TemplateResponse, int64, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 20
	}
	if req.Type != "" && req.Type != TypeReady && req.Type != TypeInteractive {
		return nil, 0, ErrInvalidTemplateType
	}

	cacheKey, err := s.listCacheKey(ctx, req)
	if err == nil && cacheKey != "" {
		if raw, cacheErr := s.cache.Get(ctx, cacheKey).Bytes(); cacheErr == nil {
			var cached cachedList
			if json.Unmarshal(raw, &cached) == nil {
				return cached.Items, cached.Total, nil
			}
		}
	}

	rows, err := s.repo.ListActive(ctx, dbgen.ListActiveTemplatesParams{
		Limit:  int32(req.Limit),
		Offset: int32((req.Page - 1) * req.Limit),
		Type:   req.Type,
	})
	if err != nil {
		return nil, 0, err
	}

	items := make([]TemplateResponse, 0, len(rows))
	var total int64
	for _, r := range rows {
		total = r.TotalCount
		items = append(items, TemplateResponse{
			ID:        r.ID.String(),
			Name:      r.Name,
			Slug:      r.Slug,
			Type:      r.Type,
			Price:     helper.DecimalToFloat(helper.DecimalFromNumeric(r.Price)),
			Thumbnail: r.Thumbnail.String,
			CreatedAt: r.CreatedAt,
		})
	}

	if cacheKey != "" {
		if raw, marshalErr := json.Marshal(cachedList{Items: items, Total: total}); marshalErr == nil {
			if cacheErr := s.cache.Set(ctx, cacheKey, raw, listCacheTTL).Err(); cacheErr != nil {
				s.logger.Warn("template list cache write failed", zap.Error(cacheErr))
			}
		}
	}

	return items, total, nil
}

func (s *service) Detail(ctx context.Context, id string) (TemplateResponse, error) {
	tid, err := uuid.Parse(id)
	if err != nil {
		return TemplateResponse{}, ErrInvalidTemplateID
	}

	t, err := s.repo.GetByID(ctx, tid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TemplateResponse{}, ErrTemplateNotFound
		}
		return TemplateResponse{}, err
	}

	if !t.IsActive {
		return TemplateResponse{}, ErrTemplateNotFound
	}

	return mapTemplateToResponse(t), nil
}

func (s *service) Create(ctx context.Context, req CreateTemplateRequest, thumbnail multipart.File, filename string) (TemplateResponse, error) {
	if req.Type != TypeReady && req.Type != TypeInteractive {
		return TemplateResponse{}, ErrInvalidTemplateType
	}

	price := helper.Float64ToDecimalExact(req.Price)
	if price.IsNegative() {
		return TemplateResponse{}, ErrInvalidPrice
	}

	var thumbURL sql.NullString
	if thumbnail != nil {
		url, err := s.uploadSvc.UploadImage(ctx, thumbnail, filename)
		if err != nil {
			s.logger.Error("thumbnail upload failed", zap.String("slug", req.Slug), zap.Error(err))
			return TemplateResponse{}, ErrTemplateFailed
		}
		thumbURL = sql.NullString{String: url, Valid: true}
	}

	t, err := s.repo.Create(ctx, dbgen.CreateTemplateParams{
		Name:      req.Name,
		Slug:      req.Slug,
		Type:      req.Type,
		Price:     price.StringFixed(2),
		Thumbnail: thumbURL,
		IsActive:  true,
	})
	if err != nil {
		return TemplateResponse{}, err
	}

	s.bumpListVersion(ctx)
	return mapTemplateToResponse(t), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateTemplateRequest, thumbnail multipart.File, filename string) (TemplateResponse, error) {
	tid, err := uuid.Parse(id)
	if err != nil {
		return TemplateResponse{}, ErrInvalidTemplateID
	}

	if req.Type != TypeReady && req.Type != TypeInteractive {
		return TemplateResponse{}, ErrInvalidTemplateType
	}

	current, err := s.repo.GetByID(ctx, tid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TemplateResponse{}, ErrTemplateNotFound
		}
		return TemplateResponse{}, err
	}

	thumbURL := current.Thumbnail
	if thumbnail != nil {
		url, uploadErr := s.uploadSvc.UploadImage(ctx, thumbnail, filename)
		if uploadErr != nil {
			s.logger.Error("thumbnail upload failed", zap.String("template_id", id), zap.Error(uploadErr))
			return TemplateResponse{}, ErrTemplateFailed
		}
		thumbURL = sql.NullString{String: url, Valid: true}
	}

	t, err := s.repo.Update(ctx, dbgen.UpdateTemplateParams{
		ID:        tid,
		Name:      req.Name,
		Slug:      req.Slug,
		Type:      req.Type,
		Price:     helper.Float64ToDecimalExact(req.Price).StringFixed(2),
		Thumbnail: thumbURL,
	})
	if err != nil {
		return TemplateResponse{}, err
	}

	s.bumpListVersion(ctx)
	return mapTemplateToResponse(t), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tid, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidTemplateID
	}

	// Soft-delete: sold templates keep their order item snapshots either way,
	// but hiding beats breaking old thumbnails.
	if err := s.repo.SetActive(ctx, tid, false); err != nil {
		return err
	}

	s.bumpListVersion(ctx)
	return nil
}

// listCacheKey embeds a version counter so mutations invalidate every page
// with a single INCR instead of a key scan.
func (s *service) listCacheKey(ctx context.Context, req ListTemplatesRequest) (string, error) {
	if s.cache == nil {
		return "", nil
	}

	version, err := s.cache.Get(ctx, "templates:version").Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", err
	}

	return fmt.Sprintf("templates:v%d:p%d:l%d:t%s", version, req.Page, req.Limit, req.Type), nil
}

func (s *service) bumpListVersion(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Incr(ctx, "templates:version").Err(); err != nil {
		s.logger.Warn("template cache invalidation failed", zap.Error(err))
	}
}

func mapTemplateToResponse(t dbgen.Template) TemplateResponse {
	price, _ := decimal.NewFromString(t.Price)

	return TemplateResponse{
		ID:        t.ID.String(),
		Name:      t.Name,
		Slug:      t.Slug,
		Type:      t.Type,
		Price:     helper.DecimalToFloat(price),
		Thumbnail: t.Thumbnail.String,
		CreatedAt: t.CreatedAt,
	}
}
