package api

// Package api holds the error taxonomy shared by the auth and storage clients
// and the HTTP plumbing common to both: JSON requests, bearer headers, and
// translation of service error bodies into typed errors. Every call is a
// single best-effort attempt; nothing here retries.
