package model

// Package model defines domain data structures used across the app: sessions,
// video entries, storage status, and transfer tasks. Structures mirror the
// wire shapes of the auth and storage services and are designed for direct
// binding in the UI.
