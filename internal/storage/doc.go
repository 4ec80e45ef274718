package storage

// Package storage implements the client for the storage service and the
// dashboard service that owns the video entry list and aggregate usage for
// the signed-in user. The service keeps the aggregate and the list moving in
// lock-step: an upload or delete either mutates both or neither.
