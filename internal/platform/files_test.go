package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	// Create directory
	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	// Directory should now exist
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}

	if downloadsDir == "" {
		t.Fatal("Downloads directory is empty")
	}

	// Should end with "Downloads"
	if filepath.Base(downloadsDir) != "Downloads" {
		t.Errorf("Expected directory to end with 'Downloads', got: %s", downloadsDir)
	}
}

func TestUniqueDestinationPath(t *testing.T) {
	tempDir := t.TempDir()

	// No collision: path is used as-is
	dest := UniqueDestinationPath(tempDir, "cat.mp4")
	if dest != filepath.Join(tempDir, "cat.mp4") {
		t.Errorf("Expected plain destination, got %s", dest)
	}

	// Collision: a numbered variant is produced
	if err := os.WriteFile(filepath.Join(tempDir, "cat.mp4"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create collision file: %v", err)
	}
	dest = UniqueDestinationPath(tempDir, "cat.mp4")
	if dest != filepath.Join(tempDir, "cat (1).mp4") {
		t.Errorf("Expected numbered destination, got %s", dest)
	}

	// Second collision increments again
	if err := os.WriteFile(dest, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create collision file: %v", err)
	}
	dest = UniqueDestinationPath(tempDir, "cat.mp4")
	if dest != filepath.Join(tempDir, "cat (2).mp4") {
		t.Errorf("Expected second numbered destination, got %s", dest)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	tempDir := t.TempDir()
	nonExistentFile := filepath.Join(tempDir, "nonexistent.mp4")

	err := OpenFileInManager(nonExistentFile)
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}

	// Check that error contains the expected message
	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestOpenFileWithDefaultApp_NonExistentFile(t *testing.T) {
	tempDir := t.TempDir()
	nonExistentFile := filepath.Join(tempDir, "nonexistent.mp4")

	err := OpenFileWithDefaultApp(nonExistentFile)
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}

	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}
