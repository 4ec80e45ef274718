package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/SameedIlyas/Cloud-Project/internal/api"
	"github.com/SameedIlyas/Cloud-Project/internal/model"
	"github.com/SameedIlyas/Cloud-Project/internal/platform"
)

// Usage bookkeeping tolerance for float accumulation
const usageEpsilon = 1e-6

// Service owns the video entry list and aggregate storage usage for one
// dashboard visit. All mutations go through the service mutex so that the
// aggregate and the list always move in lock-step.
type Service struct {
	client      API
	tokens      TokenSource
	downloadDir string
	cacheDir    string

	mu     sync.RWMutex
	status model.StorageStatus
	loaded bool

	transfers      map[string]*model.TransferTask
	transfersMutex sync.RWMutex

	onStatus   func(model.StorageStatus) // status and list updates
	onTransfer func(*model.TransferTask) // download progress updates
}

// NewService creates a dashboard service
func NewService(client API, tokens TokenSource, downloadDir, cacheDir string) *Service {
	return &Service{
		client:      client,
		tokens:      tokens,
		downloadDir: downloadDir,
		cacheDir:    cacheDir,
		transfers:   make(map[string]*model.TransferTask),
	}
}

// SetStatusCallback sets the callback invoked after every status change
func (s *Service) SetStatusCallback(callback func(model.StorageStatus)) {
	s.mu.Lock()
	s.onStatus = callback
	s.mu.Unlock()
}

// SetTransferCallback sets the callback invoked on download progress updates
func (s *Service) SetTransferCallback(callback func(*model.TransferTask)) {
	s.transfersMutex.Lock()
	s.onTransfer = callback
	s.transfersMutex.Unlock()
}

// Status returns a copy of the current storage status
func (s *Service) Status() model.StorageStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Loaded reports whether a status fetch has succeeded for this visit
func (s *Service) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Entries returns a copy of the current video entry list
func (s *Service) Entries() []model.VideoEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]model.VideoEntry, len(s.status.Files))
	copy(entries, s.status.Files)
	return entries
}

// EntryByID resolves a video entry by its identity key
func (s *Service) EntryByID(id string) (model.VideoEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.status.Files {
		if s.status.Files[i].ID == id {
			return s.status.Files[i], true
		}
	}
	return model.VideoEntry{}, false
}

// Refresh replaces the status wholesale from the service. A failure leaves
// any previously loaded state intact.
func (s *Service) Refresh(ctx context.Context) error {
	status, err := s.client.GetStatus(ctx, s.tokens.Token())
	if err != nil {
		log.Printf("Storage status fetch failed: %v", err)
		return fmt.Errorf("fetch storage status: %w", err)
	}

	s.mu.Lock()
	s.status = status
	s.loaded = true
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	log.Printf("Storage status loaded: %d files, %.2f/%.2f MB used",
		len(snapshot.Files), snapshot.CurrentUsageMb, snapshot.StorageLimitMb)
	s.notifyStatus(snapshot)
	return nil
}

// Upload sends the file at path to the storage service. The returned bool is
// the quota alert: true means the limit was reached, nothing was stored, and
// no local state changed. On success the new entry and the usage aggregate
// are updated together.
func (s *Service) Upload(ctx context.Context, path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("open upload source: %w", err)
	}
	defer f.Close()

	result, err := s.client.Upload(ctx, s.tokens.Token(), filepath.Base(path), f)
	if err != nil {
		log.Printf("Upload of %s failed: %v", path, err)
		return false, err
	}

	if result.ShouldAlert {
		log.Printf("Upload of %s hit the storage limit", path)
		return true, nil
	}

	s.mu.Lock()
	s.status.Files = append(s.status.Files, result.Metadata)
	s.status.CurrentUsageMb += result.Metadata.SizeMb
	s.status.RecalcDerived()
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	log.Printf("Uploaded %s (%.2f MB), usage now %.2f MB",
		result.Metadata.Filename, result.Metadata.SizeMb, snapshot.CurrentUsageMb)
	s.notifyStatus(snapshot)
	return false, nil
}

// Delete removes the entry with the given id. An unknown id fails before any
// API call and leaves the list untouched. On confirmed success the entry and
// the usage aggregate are updated together.
func (s *Service) Delete(ctx context.Context, id string) error {
	entry, ok := s.EntryByID(id)
	if !ok {
		return api.NewError(api.KindNotFound, "no video entry with id "+id, 0)
	}

	if err := s.client.Delete(ctx, s.tokens.Token(), entry.Filename); err != nil {
		log.Printf("Delete of %s failed: %v", entry.Filename, err)
		return err
	}

	s.mu.Lock()
	for i := range s.status.Files {
		if s.status.Files[i].ID == id {
			s.status.Files = append(s.status.Files[:i], s.status.Files[i+1:]...)
			s.status.CurrentUsageMb -= entry.SizeMb
			s.status.RecalcDerived()
			break
		}
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	log.Printf("Deleted %s (%.2f MB), usage now %.2f MB", entry.Filename, entry.SizeMb, snapshot.CurrentUsageMb)
	s.notifyStatus(snapshot)
	return nil
}

// Download starts a transfer of the entry into the download directory and
// returns its task. The transfer runs in the background to completion or
// failure; progress is published through the transfer callback.
func (s *Service) Download(ctx context.Context, id string) (*model.TransferTask, error) {
	entry, ok := s.EntryByID(id)
	if !ok {
		return nil, api.NewError(api.KindNotFound, "no video entry with id "+id, 0)
	}

	if err := platform.CreateDirectoryIfNotExists(s.downloadDir); err != nil {
		return nil, fmt.Errorf("ensure download directory: %w", err)
	}

	task := &model.TransferTask{
		ID:        uuid.NewString(),
		Filename:  entry.Filename,
		Status:    model.TransferStatusPending,
		Percent:   -1,
		StartedAt: time.Now(),
	}

	s.transfersMutex.Lock()
	s.transfers[task.ID] = task
	s.transfersMutex.Unlock()

	go s.runDownload(ctx, task, entry)
	return task, nil
}

// GetTransfer returns a transfer task by ID
func (s *Service) GetTransfer(id string) (*model.TransferTask, bool) {
	s.transfersMutex.RLock()
	defer s.transfersMutex.RUnlock()
	task, exists := s.transfers[id]
	return task, exists
}

// runDownload performs one transfer to completion or failure
func (s *Service) runDownload(ctx context.Context, task *model.TransferTask, entry model.VideoEntry) {
	dest := platform.UniqueDestinationPath(s.downloadDir, entry.Filename)

	out, err := os.Create(dest)
	if err != nil {
		s.finishTransfer(task, "", fmt.Errorf("create destination: %w", err))
		return
	}

	s.updateTransfer(task, func() {
		task.Status = model.TransferStatusRunning
	})

	err = s.client.Download(ctx, s.tokens.Token(), entry.Filename, out, func(percent int) {
		s.updateTransfer(task, func() {
			task.Percent = percent
			if percent >= 0 {
				task.Progress = float64(percent) / 100.0
			}
		})
	})
	if closeErr := out.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("flush destination: %w", closeErr)
	}

	if err != nil {
		os.Remove(dest)
		s.finishTransfer(task, "", err)
		return
	}
	s.finishTransfer(task, dest, nil)
}

// finishTransfer moves a task into its terminal state
func (s *Service) finishTransfer(task *model.TransferTask, dest string, err error) {
	s.updateTransfer(task, func() {
		task.FinishedAt = time.Now()
		if err != nil {
			task.Status = model.TransferStatusError
			if api.IsKind(err, api.KindNotFound) {
				task.LastError = MsgFileNotFound
			} else {
				task.LastError = MsgDownloadError
			}
			log.Printf("Download of %s failed: %v", task.Filename, err)
			return
		}
		task.Status = model.TransferStatusCompleted
		task.Progress = 1.0
		task.Percent = 100
		task.OutputPath = dest
		log.Printf("Download of %s completed: %s", task.Filename, dest)
	})
}

// updateTransfer mutates a task under the transfers lock and notifies
func (s *Service) updateTransfer(task *model.TransferTask, mutate func()) {
	s.transfersMutex.Lock()
	mutate()
	callback := s.onTransfer
	s.transfersMutex.Unlock()

	if callback != nil {
		callback(task)
	}
}

// OpenStream lazily fetches the playable bytes for the entry into the cache
// directory and returns the local path. A cached fetch is reused.
func (s *Service) OpenStream(ctx context.Context, id string) (string, error) {
	entry, ok := s.EntryByID(id)
	if !ok {
		return "", api.NewError(api.KindNotFound, "no video entry with id "+id, 0)
	}

	if err := platform.CreateDirectoryIfNotExists(s.cacheDir); err != nil {
		return "", fmt.Errorf("ensure cache directory: %w", err)
	}

	cachePath := filepath.Join(s.cacheDir, entry.Filename)
	if _, err := os.Stat(cachePath); err == nil {
		return cachePath, nil
	}

	body, err := s.client.Stream(ctx, s.tokens.Token(), entry.Filename)
	if err != nil {
		log.Printf("Stream of %s failed: %v", entry.Filename, err)
		return "", err
	}
	defer body.Close()

	out, err := os.Create(cachePath)
	if err != nil {
		return "", fmt.Errorf("create stream cache: %w", err)
	}

	if _, err := io.Copy(out, body); err != nil {
		out.Close()
		os.Remove(cachePath)
		return "", api.NewError(api.KindUnreachable, "transfer interrupted: "+err.Error(), 0)
	}
	if err := out.Close(); err != nil {
		os.Remove(cachePath)
		return "", fmt.Errorf("flush stream cache: %w", err)
	}

	log.Printf("Stream of %s cached: %s", entry.Filename, cachePath)
	return cachePath, nil
}

// UsageConsistent reports whether the usage aggregate equals the sum of the
// entry sizes. A divergence indicates a synchronization bug.
func (s *Service) UsageConsistent() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return math.Abs(s.status.CurrentUsageMb-s.status.FilesSizeMb()) < usageEpsilon
}

// snapshotLocked copies the status including its file list; callers hold s.mu
func (s *Service) snapshotLocked() model.StorageStatus {
	snapshot := s.status
	snapshot.Files = make([]model.VideoEntry, len(s.status.Files))
	copy(snapshot.Files, s.status.Files)
	return snapshot
}

// notifyStatus calls the status callback if set
func (s *Service) notifyStatus(snapshot model.StorageStatus) {
	s.mu.RLock()
	callback := s.onStatus
	s.mu.RUnlock()

	if callback != nil {
		callback(snapshot)
	}
}
