package ports

import (
	"context"

	"go.trai.ch/pantry/internal/core/domain"
)

// ImageUploader moves a locally compressed image to durable storage and
// yields its stable public URL.
//
//go:generate go run go.uber.org/mock/mockgen -source=uploader.go -destination=mocks/mock_uploader.go -package=mocks
type ImageUploader interface {
	Upload(ctx context.Context, img domain.ImageFile) (string, error)
}
