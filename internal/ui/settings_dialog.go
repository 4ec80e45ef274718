package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/SameedIlyas/Cloud-Project/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// UI components
	downloadDirEntry *widget.Entry
	authURLEntry     *widget.Entry
	storageURLEntry  *widget.Entry
	compressCheck    *widget.Check
	languageSelect   *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Download directory selection
	sd.downloadDirEntry = widget.NewEntry()
	sd.downloadDirEntry.SetPlaceHolder("Download directory path")

	browseDirBtn := widget.NewButton(IconFolder+" "+sd.localization.GetText(KeyBrowse), sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	// Service endpoints
	sd.authURLEntry = widget.NewEntry()
	sd.authURLEntry.SetPlaceHolder(config.DefaultAuthBaseURL)
	sd.storageURLEntry = widget.NewEntry()
	sd.storageURLEntry.SetPlaceHolder(config.DefaultStorageBaseURL)

	// Pre-upload transcode toggle
	sd.compressCheck = widget.NewCheck(sd.localization.GetText(KeyCompressUploads), nil)

	// Language selection
	languageOptions := []string{}
	languageLabels := sd.settings.GetLanguageOptions()
	for code := range languageLabels {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	// Create form
	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyDownloadDirectory)+":"),
		downloadDirRow,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyAuthServerURL)+":"),
		sd.authURLEntry,

		widget.NewLabel(sd.localization.GetText(KeyStorageServerURL)+":"),
		sd.storageURLEntry,

		widget.NewSeparator(),

		sd.compressCheck,

		widget.NewSeparator(),

		widget.NewLabel(IconLanguage+" "+sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(500, 400))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.authURLEntry.SetText(sd.settings.GetAuthBaseURL())
	sd.storageURLEntry.SetText(sd.settings.GetStorageBaseURL())
	sd.compressCheck.SetChecked(sd.settings.GetCompressBeforeUpload())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if dir := strings.TrimSpace(sd.downloadDirEntry.Text); dir != "" {
		sd.settings.SetDownloadDirectory(dir)
	}

	// Endpoint changes take effect on next start
	if u := strings.TrimSpace(sd.authURLEntry.Text); u != "" {
		sd.settings.SetAuthBaseURL(u)
	}
	if u := strings.TrimSpace(sd.storageURLEntry.Text); u != "" {
		sd.settings.SetStorageBaseURL(u)
	}

	sd.settings.SetCompressBeforeUpload(sd.compressCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	// Show confirmation
	dialog.ShowInformation(sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved), sd.window)
}
