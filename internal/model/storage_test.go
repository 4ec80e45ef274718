package model

import (
	"math"
	"testing"
)

func TestFormatSizeMb(t *testing.T) {
	tests := []struct {
		sizeMb   float64
		expected string
	}{
		{12.5, "12.50 MB"},
		{1.01, "1.01 MB"},
		{0.5, "512.00 KB"},
		{0.25, "256.00 KB"},
	}

	for _, test := range tests {
		result := FormatSizeMb(test.sizeMb)
		if result != test.expected {
			t.Errorf("FormatSizeMb(%v) = %s, expected %s", test.sizeMb, result, test.expected)
		}
	}
}

func TestStorageStatus_RecalcDerived(t *testing.T) {
	st := StorageStatus{
		CurrentUsageMb: 250,
		StorageLimitMb: 1000,
	}
	st.RecalcDerived()

	if st.AvailableSpaceMb != 750 {
		t.Errorf("Expected available space 750, got %v", st.AvailableSpaceMb)
	}
	if st.UsagePercentage != 25 {
		t.Errorf("Expected usage percentage 25, got %v", st.UsagePercentage)
	}
}

func TestStorageStatus_Fractions(t *testing.T) {
	tests := []struct {
		name      string
		status    StorageStatus
		used      float64
		available float64
	}{
		{"quarter used", StorageStatus{CurrentUsageMb: 250, StorageLimitMb: 1000, AvailableSpaceMb: 750}, 0.25, 0.75},
		{"over limit", StorageStatus{CurrentUsageMb: 1200, StorageLimitMb: 1000, AvailableSpaceMb: -200}, 1, 0},
		{"zero limit", StorageStatus{CurrentUsageMb: 10, StorageLimitMb: 0}, 0, 0},
	}

	for _, test := range tests {
		if got := test.status.UsedFraction(); math.Abs(got-test.used) > 1e-9 {
			t.Errorf("%s: UsedFraction() = %v, expected %v", test.name, got, test.used)
		}
		if got := test.status.AvailableFraction(); math.Abs(got-test.available) > 1e-9 {
			t.Errorf("%s: AvailableFraction() = %v, expected %v", test.name, got, test.available)
		}
	}
}

func TestStorageStatus_FilesSizeMb(t *testing.T) {
	st := StorageStatus{
		Files: []VideoEntry{
			{ID: "v1", SizeMb: 10},
			{ID: "v2", SizeMb: 2.5},
		},
	}

	if total := st.FilesSizeMb(); total != 12.5 {
		t.Errorf("Expected files size 12.5, got %v", total)
	}

	empty := StorageStatus{}
	if total := empty.FilesSizeMb(); total != 0 {
		t.Errorf("Expected files size 0 for empty status, got %v", total)
	}
}

func TestTransferTask_GetProgressString(t *testing.T) {
	tests := []struct {
		status   TransferStatus
		percent  int
		expected string
	}{
		{TransferStatusRunning, 42, "42%"},
		{TransferStatusRunning, -1, "—"},
		{TransferStatusCompleted, 0, "100%"},
		{TransferStatusPending, 0, "0%"},
	}

	for _, test := range tests {
		task := &TransferTask{Status: test.status, Percent: test.percent}
		if result := task.GetProgressString(); result != test.expected {
			t.Errorf("GetProgressString() with status=%s percent=%d = %s, expected %s",
				test.status, test.percent, result, test.expected)
		}
	}
}
