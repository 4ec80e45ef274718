package storage

import (
	"context"
	"io"

	"github.com/SameedIlyas/Cloud-Project/internal/model"
)

// API defines the storage service surface used by the dashboard Service.
type API interface {
	GetStatus(ctx context.Context, token string) (model.StorageStatus, error)
	ListFiles(ctx context.Context, token string) ([]model.VideoEntry, error)
	Upload(ctx context.Context, token, filename string, r io.Reader) (UploadResult, error)
	Download(ctx context.Context, token, filename string, w io.Writer, onProgress func(percent int)) error
	Delete(ctx context.Context, token, filename string) error
	Stream(ctx context.Context, token, filename string) (io.ReadCloser, error)
}

// TokenSource supplies the current bearer token for storage requests.
type TokenSource interface {
	Token() string
}
