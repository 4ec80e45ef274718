package compress

import (
	"context"

	"github.com/SameedIlyas/Cloud-Project/internal/model"
)

// Compressor defines the interface for the compression service.
type Compressor interface {
	SetUpdateCallback(func(*model.TransferTask))
	Compress(ctx context.Context, inputPath string) (string, error)
	GetTask(taskID string) (*model.TransferTask, bool)
}
