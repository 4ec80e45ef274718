package storage

// User-facing dashboard texts. Fixed product strings, not localized.
const (
	MsgStatusUnavailable = "Failed to fetch storage status."
	MsgQuotaReached      = "Storage limit reached! Please delete some files."
	MsgUploadError       = "Error uploading file."
	MsgDeleteError       = "Error deleting file."
	MsgFileNotFound      = "File not found."
	MsgDownloadError     = "Error downloading file."
	MsgStreamError       = "Error streaming video."
)
