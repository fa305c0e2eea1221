package domain

import (
	"path/filepath"
	"strings"
)

// ImageFile is a locally compressed image ready for upload.
type ImageFile struct {
	Name string
	Data []byte
}

// ContentType infers the MIME type from the file extension, defaulting to
// JPEG for unknown extensions.
func (f ImageFile) ContentType() string {
	switch strings.ToLower(filepath.Ext(f.Name)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return "image/jpeg"
	}
}

// Size returns the byte length of the image payload.
func (f ImageFile) Size() int64 { return int64(len(f.Data)) }

// UploadTokenRequest is the payload sent to the upload token endpoint.
type UploadTokenRequest struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	FileSize    int64  `json:"fileSize"`
}

// UploadToken authorizes one direct write to blob storage. UploadURL embeds
// a short-lived write credential; PublicURL is the stable reference a saved
// recipe may carry.
type UploadToken struct {
	UploadURL string `json:"uploadUrl"`
	PublicURL string `json:"publicUrl"`
}
