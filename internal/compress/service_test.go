package compress

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/SameedIlyas/Cloud-Project/internal/model"
)

func TestNewService(t *testing.T) {
	service := NewService()

	if len(service.tasks) != 0 {
		t.Errorf("Expected empty tasks map, got %d items", len(service.tasks))
	}
}

func TestGenerateOutputPath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/path/to/video.mp4", "/path/to/video-compressed.mp4"},
		{"/path/to/video.mkv", "/path/to/video-compressed.mp4"},
		{"video.avi", "video-compressed.mp4"},
		{"/no/ext/file", "/no/ext/file-compressed.mp4"},
	}

	for _, test := range tests {
		result := generateOutputPath(test.input)
		if result != test.expected {
			t.Errorf("generateOutputPath(%s) = %s, expected %s", test.input, result, test.expected)
		}
	}
}

func TestBuildFFmpegArgs(t *testing.T) {
	service := NewService()
	args := service.buildFFmpegArgs("/input.mp4", "/output.mp4")

	expectedArgs := []string{
		"-y",
		"-i", "/input.mp4",
		"-c:v", VideoCodec,
		"-preset", VideoPreset,
		"-crf", VideoCRF,
		"-c:a", AudioCodec,
		"-b:a", AudioBitrate,
		"-movflags", FastStartFlag,
		"-progress", "pipe:2",
		"-nostats",
		"/output.mp4",
	}

	if len(args) != len(expectedArgs) {
		t.Fatalf("Expected %d args, got %d", len(expectedArgs), len(args))
	}

	for i, expected := range expectedArgs {
		if args[i] != expected {
			t.Errorf("Arg %d: expected %s, got %s", i, expected, args[i])
		}
	}
}

func TestCompress_NonExistentFile(t *testing.T) {
	service := NewService()

	_, err := service.Compress(context.Background(), "/path/to/nonexistent/file.mp4")
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}

	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("Expected 'does not exist' error, got: %v", err)
	}
}

func TestUpdateCallback(t *testing.T) {
	service := NewService()

	updateCalled := false
	var updatedTask *model.TransferTask

	service.SetUpdateCallback(func(task *model.TransferTask) {
		updateCalled = true
		updatedTask = task
	})

	task := &model.TransferTask{
		ID:       "test-id",
		Filename: "/test/input.mp4",
		Status:   model.TransferStatusRunning,
	}

	service.notifyUpdate(task)

	if !updateCalled {
		t.Error("Expected update callback to be called")
	}

	if updatedTask != task {
		t.Error("Expected updated task to be the same as input task")
	}
}

func TestGenerateTaskID(t *testing.T) {
	id1 := generateTaskID()
	time.Sleep(1 * time.Millisecond) // Ensure different timestamp
	id2 := generateTaskID()

	if id1 == id2 {
		t.Error("Expected different task IDs")
	}

	if !strings.HasPrefix(id1, "compress-") {
		t.Errorf("Expected ID to start with 'compress-', got: %s", id1)
	}

	if !strings.HasPrefix(id2, "compress-") {
		t.Errorf("Expected ID to start with 'compress-', got: %s", id2)
	}
}
