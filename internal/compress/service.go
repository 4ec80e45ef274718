package compress

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/SameedIlyas/Cloud-Project/internal/model"
)

// FFmpeg constants for transcode settings
const (
	// Video codec settings
	VideoCodec  = "libx264"
	VideoPreset = "medium"
	VideoCRF    = "28"

	// Audio codec settings
	AudioCodec   = "aac"
	AudioBitrate = "128k"

	// Container flags
	FastStartFlag = "+faststart"

	// Output suffix
	CompressedSuffix = "-compressed"

	// Executable and I/O constants
	FFmpegCommand       = "ffmpeg"
	FFprobeCommand      = "ffprobe"
	FFprobeLogLevel     = "error"
	FFprobeShowEntries  = "format=duration"
	FFprobeOutputFormat = "csv=p=0"
	ProgressPipeTarget  = "pipe:2"
	ProgressTimePrefix  = "out_time_us="
	TaskIDPrefix        = "compress-"
	OutputExtensionMP4  = ".mp4"
)

// Service shrinks videos before upload to save storage quota
type Service struct {
	tasks      map[string]*model.TransferTask
	tasksMutex sync.RWMutex
	onUpdate   func(*model.TransferTask) // callback for UI updates
}

// NewService creates a new compression service
func NewService() *Service {
	return &Service{
		tasks: make(map[string]*model.TransferTask),
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.TransferTask)) {
	s.tasksMutex.Lock()
	s.onUpdate = callback
	s.tasksMutex.Unlock()
}

// Compress transcodes the input into a smaller MP4 next to it and returns
// the output path. Blocks until the transcode finishes; cancel through ctx.
// The partial output file is removed on any failure.
func (s *Service) Compress(ctx context.Context, inputPath string) (string, error) {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return "", fmt.Errorf("input file does not exist: %s", inputPath)
	}

	s.tasksMutex.Lock()
	for _, task := range s.tasks {
		if task.Filename == inputPath && !task.Status.IsFinished() {
			s.tasksMutex.Unlock()
			return "", fmt.Errorf("compression already in progress for file: %s", inputPath)
		}
	}

	outputPath := generateOutputPath(inputPath)
	task := &model.TransferTask{
		ID:        generateTaskID(),
		Filename:  inputPath,
		Status:    model.TransferStatusPending,
		StartedAt: time.Now(),
	}
	s.tasks[task.ID] = task
	s.tasksMutex.Unlock()

	if err := s.run(ctx, task, inputPath, outputPath); err != nil {
		os.Remove(outputPath)
		s.setTaskError(task, err)
		return "", err
	}

	s.tasksMutex.Lock()
	task.Status = model.TransferStatusCompleted
	task.Progress = 1.0
	task.Percent = 100
	task.OutputPath = outputPath
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	log.Printf("Compressed %s into %s", inputPath, outputPath)
	return outputPath, nil
}

// GetTask returns a compression task by ID
func (s *Service) GetTask(taskID string) (*model.TransferTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[taskID]
	return task, exists
}

// run executes ffmpeg and tracks its progress into the task
func (s *Service) run(ctx context.Context, task *model.TransferTask, inputPath, outputPath string) error {
	// Duration of the input drives progress calculation
	duration, err := s.getVideoDuration(inputPath)
	if err != nil {
		log.Printf("Failed to get video duration for %s: %v", inputPath, err)
		return err
	}

	args := s.buildFFmpegArgs(inputPath, outputPath)
	cmd := exec.CommandContext(ctx, FFmpegCommand, args...)

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start ffmpeg: %w", err)
	}

	s.tasksMutex.Lock()
	task.Status = model.TransferStatusRunning
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	go s.monitorProgress(stderr, task, duration)

	if err := cmd.Wait(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("ffmpeg failed: %w", err)
	}
	return nil
}

// buildFFmpegArgs builds the ffmpeg command arguments
func (s *Service) buildFFmpegArgs(inputPath, outputPath string) []string {
	return []string{
		"-y",            // Overwrite output file
		"-i", inputPath, // Input file
		"-c:v", VideoCodec, // Video codec
		"-preset", VideoPreset, // Encoding preset
		"-crf", VideoCRF, // Constant rate factor
		"-c:a", AudioCodec, // Audio codec
		"-b:a", AudioBitrate, // Audio bitrate
		"-movflags", FastStartFlag, // MP4 optimization
		"-progress", ProgressPipeTarget, // Progress to stderr
		"-nostats", // No stats output
		outputPath, // Output file
	}
}

// getVideoDuration gets the duration of a video file using ffprobe
func (s *Service) getVideoDuration(filePath string) (float64, error) {
	cmd := exec.Command(FFprobeCommand, "-v", FFprobeLogLevel, "-show_entries", FFprobeShowEntries, "-of", FFprobeOutputFormat, filePath)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("failed to run ffprobe: %w", err)
	}

	durationStr := strings.TrimSpace(string(output))
	duration, err := strconv.ParseFloat(durationStr, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration: %w", err)
	}

	return duration, nil
}

// monitorProgress monitors ffmpeg progress output
func (s *Service) monitorProgress(stderr io.ReadCloser, task *model.TransferTask, totalDuration float64) {
	defer stderr.Close()
	scanner := bufio.NewScanner(stderr)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Parse progress line: out_time_us=123456
		if strings.HasPrefix(line, ProgressTimePrefix) {
			timeStr := strings.TrimPrefix(line, ProgressTimePrefix)
			timeMicroseconds, err := strconv.ParseInt(timeStr, 10, 64)
			if err != nil {
				continue
			}

			// Convert to seconds
			timeSeconds := float64(timeMicroseconds) / 1000000.0

			if totalDuration > 0 {
				progress := timeSeconds / totalDuration
				if progress > 1.0 {
					progress = 1.0
				}

				s.tasksMutex.Lock()
				task.Progress = progress
				task.Percent = int(progress * 100)
				s.tasksMutex.Unlock()

				s.notifyUpdate(task)
			}
		}
	}
}

// setTaskError sets an error state for a task
func (s *Service) setTaskError(task *model.TransferTask, err error) {
	s.tasksMutex.Lock()
	task.Status = model.TransferStatusError
	task.LastError = err.Error()
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.TransferTask) {
	s.tasksMutex.RLock()
	callback := s.onUpdate
	s.tasksMutex.RUnlock()

	if callback != nil {
		callback(task)
	}
}

// generateOutputPath generates the output path for compressed file
func generateOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	baseName := strings.TrimSuffix(inputPath, ext)
	return baseName + CompressedSuffix + OutputExtensionMP4
}

// generateTaskID generates a unique task ID using UUID v7 for better uniqueness and time ordering
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
