package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/SameedIlyas/Cloud-Project/internal/api"
	"github.com/SameedIlyas/Cloud-Project/internal/model"
)

type staticToken string

func (t staticToken) Token() string { return string(t) }

// fakeStorageAPI scripts responses per operation
type fakeStorageAPI struct {
	status    model.StorageStatus
	statusErr error

	uploadResult UploadResult
	uploadErr    error

	deleteErr    error
	deletedNames []string

	downloadData []byte
	downloadErr  error

	streamData string
	streamErr  error
}

func (f *fakeStorageAPI) GetStatus(ctx context.Context, token string) (model.StorageStatus, error) {
	return f.status, f.statusErr
}

func (f *fakeStorageAPI) ListFiles(ctx context.Context, token string) ([]model.VideoEntry, error) {
	return f.status.Files, f.statusErr
}

func (f *fakeStorageAPI) Upload(ctx context.Context, token, filename string, r io.Reader) (UploadResult, error) {
	io.Copy(io.Discard, r)
	return f.uploadResult, f.uploadErr
}

func (f *fakeStorageAPI) Download(ctx context.Context, token, filename string, w io.Writer, onProgress func(int)) error {
	if f.downloadErr != nil {
		return f.downloadErr
	}
	w.Write(f.downloadData)
	if onProgress != nil {
		onProgress(50)
		onProgress(100)
	}
	return nil
}

func (f *fakeStorageAPI) Delete(ctx context.Context, token, filename string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedNames = append(f.deletedNames, filename)
	return nil
}

func (f *fakeStorageAPI) Stream(ctx context.Context, token, filename string) (io.ReadCloser, error) {
	if f.streamErr != nil {
		return nil, f.streamErr
	}
	return io.NopCloser(strings.NewReader(f.streamData)), nil
}

func loadedStatus() model.StorageStatus {
	status := model.StorageStatus{
		StorageLimitMb: 500,
		CurrentUsageMb: 100,
		Files: []model.VideoEntry{
			{ID: "a1", Filename: "cat.mp4", SizeMb: 60},
			{ID: "a2", Filename: "dog.mp4", SizeMb: 40},
		},
	}
	status.RecalcDerived()
	return status
}

func newTestService(t *testing.T, fake *fakeStorageAPI) *Service {
	t.Helper()
	return NewService(fake, staticToken("t1"), t.TempDir(), t.TempDir())
}

func TestServiceRefresh(t *testing.T) {
	fake := &fakeStorageAPI{status: loadedStatus()}
	svc := newTestService(t, fake)

	var notified model.StorageStatus
	svc.SetStatusCallback(func(s model.StorageStatus) { notified = s })

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
	if !svc.Loaded() {
		t.Error("Expected loaded after refresh")
	}
	if len(svc.Entries()) != 2 {
		t.Errorf("Expected 2 entries, got %d", len(svc.Entries()))
	}
	if len(notified.Files) != 2 {
		t.Errorf("Expected callback with 2 files, got %+v", notified)
	}
	if !svc.UsageConsistent() {
		t.Errorf("Expected usage to match file sizes, got %.2f", svc.Status().CurrentUsageMb)
	}
}

func TestServiceRefreshFailureKeepsState(t *testing.T) {
	fake := &fakeStorageAPI{status: loadedStatus()}
	svc := newTestService(t, fake)
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("Expected success, got %v", err)
	}

	fake.statusErr = api.NewError(api.KindUnreachable, "no response received", 0)
	if err := svc.Refresh(context.Background()); err == nil {
		t.Fatal("Expected failure")
	}
	if len(svc.Entries()) != 2 || !svc.Loaded() {
		t.Error("Expected prior state to survive a failed refresh")
	}
}

func TestServiceUpload(t *testing.T) {
	fake := &fakeStorageAPI{
		status: loadedStatus(),
		uploadResult: UploadResult{
			Message:  "File uploaded successfully",
			Metadata: model.VideoEntry{ID: "v9", Filename: "clip.mp4", SizeMb: 12.5},
		},
	}
	svc := newTestService(t, fake)
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	src := filepath.Join(t.TempDir(), "clip.mp4")
	if err := os.WriteFile(src, []byte("video bytes"), 0644); err != nil {
		t.Fatal(err)
	}

	alert, err := svc.Upload(context.Background(), src)
	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
	if alert {
		t.Error("Expected no quota alert")
	}

	status := svc.Status()
	if status.CurrentUsageMb != 112.5 {
		t.Errorf("Expected usage 112.5, got %v", status.CurrentUsageMb)
	}
	if len(status.Files) != 3 || status.Files[2].ID != "v9" {
		t.Errorf("Expected new entry v9 appended, got %+v", status.Files)
	}
	if !svc.UsageConsistent() {
		t.Error("Expected usage to match file sizes after upload")
	}
}

func TestServiceUploadQuotaAlert(t *testing.T) {
	fake := &fakeStorageAPI{
		status:       loadedStatus(),
		uploadResult: UploadResult{Message: "Storage limit reached", ShouldAlert: true},
	}
	svc := newTestService(t, fake)
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	src := filepath.Join(t.TempDir(), "big.mp4")
	if err := os.WriteFile(src, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	alert, err := svc.Upload(context.Background(), src)
	if err != nil {
		t.Fatalf("Expected alert without error, got %v", err)
	}
	if !alert {
		t.Fatal("Expected quota alert")
	}

	status := svc.Status()
	if status.CurrentUsageMb != 100 || len(status.Files) != 2 {
		t.Errorf("Expected no state change on alert, got %.2f MB / %d files",
			status.CurrentUsageMb, len(status.Files))
	}
}

func TestServiceDelete(t *testing.T) {
	fake := &fakeStorageAPI{status: loadedStatus()}
	svc := newTestService(t, fake)
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(context.Background(), "a1"); err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
	if len(fake.deletedNames) != 1 || fake.deletedNames[0] != "cat.mp4" {
		t.Errorf("Expected delete by filename cat.mp4, got %v", fake.deletedNames)
	}

	status := svc.Status()
	if status.CurrentUsageMb != 40 {
		t.Errorf("Expected usage 40 after delete, got %v", status.CurrentUsageMb)
	}
	if len(status.Files) != 1 || status.Files[0].ID != "a2" {
		t.Errorf("Expected only a2 to remain, got %+v", status.Files)
	}
	if !svc.UsageConsistent() {
		t.Error("Expected usage to match file sizes after delete")
	}
}

func TestServiceDeleteUnknownID(t *testing.T) {
	fake := &fakeStorageAPI{status: loadedStatus()}
	svc := newTestService(t, fake)
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	err := svc.Delete(context.Background(), "ghost")
	if !api.IsKind(err, api.KindNotFound) {
		t.Errorf("Expected not_found, got %v", err)
	}
	if len(fake.deletedNames) != 0 {
		t.Error("Expected no API call for an unknown id")
	}
	if len(svc.Entries()) != 2 {
		t.Error("Expected list untouched")
	}
}

func TestServiceDeleteFailureKeepsEntry(t *testing.T) {
	fake := &fakeStorageAPI{status: loadedStatus()}
	svc := newTestService(t, fake)
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	fake.deleteErr = api.NewError(api.KindServerRejected, `unexpected delete confirmation: "Deleted"`, 200)
	err := svc.Delete(context.Background(), "a1")
	if !api.IsKind(err, api.KindServerRejected) {
		t.Errorf("Expected server_rejected, got %v", err)
	}
	status := svc.Status()
	if len(status.Files) != 2 || status.CurrentUsageMb != 100 {
		t.Error("Expected no state change on a rejected delete")
	}
}

func waitForTransfer(t *testing.T, svc *Service, id string) *model.TransferTask {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		task, ok := svc.GetTransfer(id)
		if ok && task.Status.IsFinished() {
			return task
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("Transfer did not finish in time")
	return nil
}

func TestServiceDownload(t *testing.T) {
	fake := &fakeStorageAPI{status: loadedStatus(), downloadData: []byte("video bytes")}
	svc := newTestService(t, fake)
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	task, err := svc.Download(context.Background(), "a1")
	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}

	task = waitForTransfer(t, svc, task.ID)
	if task.Status != model.TransferStatusCompleted {
		t.Fatalf("Expected completed, got %s (%s)", task.Status, task.LastError)
	}
	if task.Percent != 100 {
		t.Errorf("Expected 100 percent, got %d", task.Percent)
	}
	data, err := os.ReadFile(task.OutputPath)
	if err != nil {
		t.Fatalf("Expected output file: %v", err)
	}
	if string(data) != "video bytes" {
		t.Errorf("Unexpected output payload: %q", data)
	}
}

func TestServiceDownloadFailureRemovesPartial(t *testing.T) {
	fake := &fakeStorageAPI{
		status:      loadedStatus(),
		downloadErr: api.NewError(api.KindNotFound, "File not found", 404),
	}
	svc := newTestService(t, fake)
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	task, err := svc.Download(context.Background(), "a1")
	if err != nil {
		t.Fatalf("Expected task start, got %v", err)
	}

	task = waitForTransfer(t, svc, task.ID)
	if task.Status != model.TransferStatusError {
		t.Fatalf("Expected error status, got %s", task.Status)
	}
	if task.LastError != MsgFileNotFound {
		t.Errorf("Expected %q, got %q", MsgFileNotFound, task.LastError)
	}
	entries, err := os.ReadDir(svc.downloadDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected partial file removed, found %d entries", len(entries))
	}
}

func TestServiceDownloadUnknownID(t *testing.T) {
	fake := &fakeStorageAPI{status: loadedStatus()}
	svc := newTestService(t, fake)
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	_, err := svc.Download(context.Background(), "ghost")
	if !api.IsKind(err, api.KindNotFound) {
		t.Errorf("Expected not_found, got %v", err)
	}
}

func TestServiceOpenStream(t *testing.T) {
	fake := &fakeStorageAPI{status: loadedStatus(), streamData: "stream bytes"}
	svc := newTestService(t, fake)
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	path, err := svc.OpenStream(context.Background(), "a1")
	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected cache file: %v", err)
	}
	if string(data) != "stream bytes" {
		t.Errorf("Unexpected cache payload: %q", data)
	}

	// second open reuses the cache even if the service is gone
	fake.streamErr = errors.New("should not be called")
	again, err := svc.OpenStream(context.Background(), "a1")
	if err != nil {
		t.Fatalf("Expected cached reuse, got %v", err)
	}
	if again != path {
		t.Errorf("Expected same cache path, got %s and %s", path, again)
	}
}

func TestServiceOpenStreamNotFound(t *testing.T) {
	fake := &fakeStorageAPI{
		status:    loadedStatus(),
		streamErr: api.NewError(api.KindNotFound, "File not found", 404),
	}
	svc := newTestService(t, fake)
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	_, err := svc.OpenStream(context.Background(), "a1")
	if !api.IsKind(err, api.KindNotFound) {
		t.Errorf("Expected not_found, got %v", err)
	}
}

func TestServiceUsageInvariantAcrossSequence(t *testing.T) {
	fake := &fakeStorageAPI{status: loadedStatus()}
	svc := newTestService(t, fake)
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	src := filepath.Join(t.TempDir(), "clip.mp4")
	if err := os.WriteFile(src, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	fake.uploadResult = UploadResult{Metadata: model.VideoEntry{ID: "v1", Filename: "one.mp4", SizeMb: 7.25}}
	if _, err := svc.Upload(context.Background(), src); err != nil {
		t.Fatal(err)
	}
	fake.uploadResult = UploadResult{Metadata: model.VideoEntry{ID: "v2", Filename: "two.mp4", SizeMb: 3.5}}
	if _, err := svc.Upload(context.Background(), src); err != nil {
		t.Fatal(err)
	}
	if err := svc.Delete(context.Background(), "a2"); err != nil {
		t.Fatal(err)
	}
	if err := svc.Delete(context.Background(), "v1"); err != nil {
		t.Fatal(err)
	}

	if !svc.UsageConsistent() {
		status := svc.Status()
		t.Errorf("Expected usage %.2f to equal file total %.2f",
			status.CurrentUsageMb, status.FilesSizeMb())
	}
}
