package cloudinary

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Template thumbnails are document previews, so crop to portrait A4
// proportions rather than square.
const thumbTransform = "c_fill,w_600,h_800,q_auto"

//go:generate mockgen -source=cloudinary_service.go -destination=../mock/cloudinary/cloudinary_service_mock.go -package=mock
type Service interface {
	UploadImage(ctx context.Context, file multipart.File, filename string) (string, error)
	DeleteImage(ctx context.Context, publicID string) error
}

type service struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewService(cloudName, apiKey, apiSecret, folder string) (Service, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}

	return &service{
		cld:    cld,
		folder: folder,
	}, nil
}

// UploadImage stores a thumbnail under the configured folder and returns
// the secure URL. The public id is the filename without its extension, so
// re-uploading for the same template replaces the previous thumbnail.
func (s *service) UploadImage(ctx context.Context, file multipart.File, filename string) (string, error) {
	publicID := strings.TrimSuffix(filename, path.Ext(filename))

	res, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         s.folder,
		PublicID:       publicID,
		ResourceType:   "image",
		Transformation: thumbTransform,
	})
	if err != nil {
		return "", fmt.Errorf("thumbnail upload: %w", err)
	}

	return res.SecureURL, nil
}

func (s *service) DeleteImage(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("thumbnail delete: %w", err)
	}
	return nil
}
