package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/SameedIlyas/Cloud-Project/internal/auth"
	"github.com/SameedIlyas/Cloud-Project/internal/compress"
	"github.com/SameedIlyas/Cloud-Project/internal/config"
	"github.com/SameedIlyas/Cloud-Project/internal/platform"
	"github.com/SameedIlyas/Cloud-Project/internal/storage"
	"github.com/SameedIlyas/Cloud-Project/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.sameedilyas.kotkit"
	AppName = "KotKit"

	WindowWidth  = 1000
	WindowHeight = 640
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		fmt.Printf("failed to ensure downloads dir: %v\n", err)
	}
	cacheDir := filepath.Join(os.TempDir(), "kotkit-stream-cache")

	authClient := auth.NewClient(settings.GetAuthBaseURL(), nil)
	authMgr := auth.NewManager(authClient, settings)

	storageClient := storage.NewClient(settings.GetStorageBaseURL(), nil)
	storageSvc := storage.NewService(storageClient, authMgr, downloadsDir, cacheDir)
	compressSvc := compress.NewService()

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, authMgr, storageSvc, compressSvc)

	// Verify any persisted session in the background
	go authMgr.StartupVerify(context.Background())

	// Show and run
	myWindow.ShowAndRun()
}
