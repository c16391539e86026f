package media

import (
	"context"
	"io"
)

// UploadAuth es la autorización firmada y de vida corta para subir desde el browser.
type UploadAuth struct {
	Token     string `json:"token"`
	Expire    int64  `json:"expire"`
	Signature string `json:"signature"`
	PublicKey string `json:"publicKey"`
}

type File struct {
	Name    string
	Content io.Reader
}

type UploadOptions struct {
	Folder            string
	FileName          string
	Tags              []string
	UseUniqueFileName *bool
}

// Uploaded: URL es la URL pública y durable.
type Uploaded struct {
	FileID string
	URL    string
}

type Uploader interface {
	AuthParams(ctx context.Context) (UploadAuth, error)
	Upload(ctx context.Context, f File, opts UploadOptions) (Uploaded, error)
}
