package template_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	cloudinaryMock "qaleb-store/internal/mock/cloudinary"
	templateMock "qaleb-store/internal/mock/template"
	"qaleb-store/internal/shared/database/dbgen"
	"qaleb-store/internal/template"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func storedTemplate(name, price string) dbgen.Template {
	return dbgen.Template{
		ID:        uuid.New(),
		Name:      name,
		Slug:      "slug-" + name,
		Type:      template.TypeReady,
		Price:     price,
		Thumbnail: sql.NullString{String: "https://cdn.example/t.png", Valid: true},
		IsActive:  true,
		CreatedAt: time.Now(),
	}
}

func TestTemplateService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("success_maps_rows_and_total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := templateMock.NewMockRepository(ctrl)

		repo.EXPECT().
			ListActive(ctx, dbgen.ListActiveTemplatesParams{Limit: 20, Offset: 20, Type: ""}).
			Return([]dbgen.ListActiveTemplatesRow{
				{ID: uuid.New(), Name: "عقد إيجار", Type: template.TypeReady, Price: "49.00", TotalCount: 35},
				{ID: uuid.New(), Name: "سيرة ذاتية", Type: template.TypeInteractive, Price: "99.50", TotalCount: 35},
			}, nil)

		svc := template.NewService(repo, nil, nil, zap.NewNop())

		items, total, err := svc.List(ctx, template.ListTemplatesRequest{Page: 2})

		assert.NoError(t, err)
		assert.Equal(t, int64(35), total)
		assert.Len(t, items, 2)
		assert.Equal(t, "عقد إيجار", items[0].Name)
		assert.Equal(t, 49.0, items[0].Price)
		assert.Equal(t, 99.5, items[1].Price)
	})

	t.Run("error_unknown_type_filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := templateMock.NewMockRepository(ctrl)

		svc := template.NewService(repo, nil, nil, zap.NewNop())

		_, _, err := svc.List(ctx, template.ListTemplatesRequest{Type: "bundle"})

		assert.ErrorIs(t, err, template.ErrInvalidTemplateType)
	})
}

func TestTemplateService_Detail(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := templateMock.NewMockRepository(ctrl)

		stored := storedTemplate("tmplA", "49.00")
		repo.EXPECT().GetByID(ctx, stored.ID).Return(stored, nil)

		svc := template.NewService(repo, nil, nil, zap.NewNop())

		res, err := svc.Detail(ctx, stored.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, stored.ID.String(), res.ID)
		assert.Equal(t, 49.0, res.Price)
	})

	t.Run("error_inactive_hidden_as_not_found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := templateMock.NewMockRepository(ctrl)

		stored := storedTemplate("tmplA", "49.00")
		stored.IsActive = false
		repo.EXPECT().GetByID(ctx, stored.ID).Return(stored, nil)

		svc := template.NewService(repo, nil, nil, zap.NewNop())

		_, err := svc.Detail(ctx, stored.ID.String())

		assert.ErrorIs(t, err, template.ErrTemplateNotFound)
	})

	t.Run("error_missing_row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := templateMock.NewMockRepository(ctrl)

		id := uuid.New()
		repo.EXPECT().GetByID(ctx, id).Return(dbgen.Template{}, sql.ErrNoRows)

		svc := template.NewService(repo, nil, nil, zap.NewNop())

		_, err := svc.Detail(ctx, id.String())

		assert.ErrorIs(t, err, template.ErrTemplateNotFound)
	})

	t.Run("error_bad_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := templateMock.NewMockRepository(ctrl)

		svc := template.NewService(repo, nil, nil, zap.NewNop())

		_, err := svc.Detail(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, template.ErrInvalidTemplateID)
	})
}

func TestTemplateService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success_without_thumbnail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := templateMock.NewMockRepository(ctrl)

		repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, arg dbgen.CreateTemplateParams) (dbgen.Template, error) {
				assert.Equal(t, "عقد عمل", arg.Name)
				assert.Equal(t, "49.90", arg.Price)
				assert.True(t, arg.IsActive)
				assert.False(t, arg.Thumbnail.Valid)

				return storedTemplate(arg.Name, arg.Price), nil
			})

		svc := template.NewService(repo, nil, nil, zap.NewNop())

		res, err := svc.Create(ctx, template.CreateTemplateRequest{
			Name:  "عقد عمل",
			Slug:  "work-contract",
			Type:  template.TypeReady,
			Price: 49.90,
		}, nil, "")

		assert.NoError(t, err)
		assert.Equal(t, 49.9, res.Price)
	})

	t.Run("error_upload_failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := templateMock.NewMockRepository(ctrl)
		uploads := cloudinaryMock.NewMockService(ctrl)

		uploads.EXPECT().
			UploadImage(ctx, gomock.Any(), "thumb.png").
			Return("", assert.AnError)

		svc := template.NewService(repo, nil, uploads, zap.NewNop())

		_, err := svc.Create(ctx, template.CreateTemplateRequest{
			Name:  "عقد عمل",
			Slug:  "work-contract",
			Type:  template.TypeReady,
			Price: 49.90,
		}, fakeUpload{}, "thumb.png")

		assert.ErrorIs(t, err, template.ErrTemplateFailed)
	})

	t.Run("error_unknown_type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := templateMock.NewMockRepository(ctrl)

		svc := template.NewService(repo, nil, nil, zap.NewNop())

		_, err := svc.Create(ctx, template.CreateTemplateRequest{
			Name: "x", Slug: "x", Type: "bundle", Price: 10,
		}, nil, "")

		assert.ErrorIs(t, err, template.ErrInvalidTemplateType)
	})
}

// fakeUpload satisfies multipart.File without touching the filesystem.
type fakeUpload struct{}

func (fakeUpload) Read(p []byte) (int, error)                   { return 0, nil }
func (fakeUpload) ReadAt(p []byte, off int64) (int, error)      { return 0, nil }
func (fakeUpload) Seek(offset int64, whence int) (int64, error) { return 0, nil }
func (fakeUpload) Close() error                                 { return nil }
