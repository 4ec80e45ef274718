package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconFolder   = "📁"
	IconDownload = "⬇"
	IconDelete   = "🗑"
	IconLanguage = "🌐"
	IconBrand    = "🎬"
)

// Text fragments
const (
	DashPlaceholder = "—"
)

// Layout sizing
const (
	SidebarWidth  float32 = 220
	SidebarHeight float32 = 640
	CardMinWidth  float32 = 240
	CardMinHeight float32 = 150
	ListRowMinH   float32 = 56
	FormMaxWidth  float32 = 360
	FormHeight    float32 = 260
)

// Banner behavior
const (
	BannerAutoHide = 5 * time.Second
)
