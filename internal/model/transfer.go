package model

import (
	"fmt"
	"time"
)

// TransferStatus represents the status of a download transfer
type TransferStatus string

const (
	// TransferStatusPending means the transfer is created but not started
	TransferStatusPending TransferStatus = "Pending"

	// TransferStatusRunning means bytes are being received
	TransferStatusRunning TransferStatus = "Running"

	// TransferStatusCompleted means the transfer finished successfully
	TransferStatusCompleted TransferStatus = "Completed"

	// TransferStatusError means the transfer failed
	TransferStatusError TransferStatus = "Error"
)

// String returns the string representation of TransferStatus
func (ts TransferStatus) String() string {
	return string(ts)
}

// IsFinished returns true if the transfer is in a terminal state
func (ts TransferStatus) IsFinished() bool {
	return ts == TransferStatusCompleted || ts == TransferStatusError
}

// TransferTask tracks one download's observable progress. Transfers run to
// completion or failure; cancellation is not supported.
type TransferTask struct {
	ID         string
	Filename   string
	Status     TransferStatus
	Progress   float64 // 0.0 to 1.0
	Percent    int     // 0 to 100
	OutputPath string  // destination file once known
	LastError  string  // last error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}

// GetProgressString returns the percent formatted for display, "—" when the
// total size is unknown and no bytes have arrived yet.
func (tt *TransferTask) GetProgressString() string {
	if tt.Status == TransferStatusCompleted {
		return "100%"
	}
	if tt.Percent < 0 {
		return "—"
	}
	return fmt.Sprintf("%d%%", tt.Percent)
}
