// Package upload implements the two-phase, fail-fast image upload flow:
// authorize against the recipe service, then write the bytes directly to
// blob storage.
package upload

import (
	"context"
	"errors"
	"net/http"

	"go.trai.ch/pantry/internal/adapters/transport"
	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/pantry/internal/core/ports"
	"go.trai.ch/zerr"
)

// Sequencer implements ports.ImageUploader. No local state survives a
// call; a failure at either phase aborts the surrounding save.
type Sequencer struct {
	service ports.RecipeService
	client  *transport.Client
	logger  ports.Logger
}

// New creates a Sequencer.
func New(service ports.RecipeService, client *transport.Client, logger ports.Logger) *Sequencer {
	return &Sequencer{service: service, client: client, logger: logger}
}

// Upload authorizes and transfers img, returning its stable public URL.
func (s *Sequencer) Upload(ctx context.Context, img domain.ImageFile) (string, error) {
	tok, err := s.service.CreateUploadToken(ctx, domain.UploadTokenRequest{
		FileName:    img.Name,
		ContentType: img.ContentType(),
		FileSize:    img.Size(),
	})
	if err != nil {
		return "", errors.Join(domain.ErrUploadToken, err)
	}

	header := http.Header{}
	header.Set("Content-Type", img.ContentType())
	// Azure block blob uploads require the blob type on the write itself.
	header.Set("x-ms-blob-type", "BlockBlob")

	resp, err := s.client.Request(ctx, tok.UploadURL, transport.RequestOptions{
		Method: http.MethodPut,
		Header: header,
		Body:   img.Data,
	})
	if err != nil {
		return "", errors.Join(domain.ErrUploadTransfer, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		return "", zerr.With(zerr.With(
			errors.Join(domain.ErrUploadTransfer, zerr.New("unexpected transfer status")),
			"status", resp.StatusCode,
		), "file", img.Name)
	}

	if s.logger != nil {
		s.logger.Debug("image uploaded", "file", img.Name, "url", tok.PublicURL)
	}
	return tok.PublicURL, nil
}

var _ ports.ImageUploader = (*Sequencer)(nil)
