package platform

// Package platform contains OS integration helpers: download directory
// resolution, destination naming, and handing files to the system file
// manager or default media player.
