package config

import (
	"encoding/json"

	"fyne.io/fyne/v2"

	"github.com/SameedIlyas/Cloud-Project/internal/model"
	"github.com/SameedIlyas/Cloud-Project/internal/platform"
)

// View types for the dashboard video list
type ViewType string

const (
	ViewGrid ViewType = "grid"
	ViewList ViewType = "list"
)

// Settings keys for Fyne preferences
const (
	KeySession        = "user"
	KeyAuthBaseURL    = "auth_base_url"
	KeyStorageBaseURL = "storage_base_url"
	KeyViewType       = "view_type"
	KeyDownloadDir    = "download_directory"
	KeyLanguage       = "app_language"
	KeyCompressUpload = "compress_before_upload"
)

// Default values
const (
	DefaultAuthBaseURL    = "https://login-service-v2-935294039360.us-central1.run.app"
	DefaultStorageBaseURL = "https://storage-service-v2-935294039360.us-central1.run.app"
	DefaultViewType       = ViewGrid
	DefaultLanguage       = "system"
)

// Settings manages application configuration and the persisted session slot
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// SaveSession overwrites the persisted session slot. Contents are not
// validated; trust is delegated to the verify-token flow.
func (s *Settings) SaveSession(session model.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	s.app.Preferences().SetString(KeySession, string(raw))
	return nil
}

// LoadSession returns the stored session, or false when the slot is absent
// or unreadable.
func (s *Settings) LoadSession() (model.Session, bool) {
	raw := s.app.Preferences().String(KeySession)
	if raw == "" {
		return model.Session{}, false
	}

	var session model.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return model.Session{}, false
	}
	if session.IsZero() {
		return model.Session{}, false
	}
	return session, true
}

// ClearSession removes the persisted session slot
func (s *Settings) ClearSession() {
	s.app.Preferences().RemoveValue(KeySession)
}

// GetAuthBaseURL returns the authentication service base URL
func (s *Settings) GetAuthBaseURL() string {
	url := s.app.Preferences().String(KeyAuthBaseURL)
	if url == "" {
		s.SetAuthBaseURL(DefaultAuthBaseURL)
		return DefaultAuthBaseURL
	}
	return url
}

// SetAuthBaseURL sets the authentication service base URL
func (s *Settings) SetAuthBaseURL(url string) {
	s.app.Preferences().SetString(KeyAuthBaseURL, url)
}

// GetStorageBaseURL returns the storage service base URL
func (s *Settings) GetStorageBaseURL() string {
	url := s.app.Preferences().String(KeyStorageBaseURL)
	if url == "" {
		s.SetStorageBaseURL(DefaultStorageBaseURL)
		return DefaultStorageBaseURL
	}
	return url
}

// SetStorageBaseURL sets the storage service base URL
func (s *Settings) SetStorageBaseURL(url string) {
	s.app.Preferences().SetString(KeyStorageBaseURL, url)
}

// GetViewType returns the dashboard view type
func (s *Settings) GetViewType() ViewType {
	vt := s.app.Preferences().String(KeyViewType)
	if vt != string(ViewGrid) && vt != string(ViewList) {
		s.SetViewType(DefaultViewType)
		return DefaultViewType
	}
	return ViewType(vt)
}

// SetViewType sets the dashboard view type
func (s *Settings) SetViewType(vt ViewType) {
	s.app.Preferences().SetString(KeyViewType, string(vt))
}

// GetDownloadDirectory returns the directory downloads are saved into
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/downloads"
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetCompressBeforeUpload reports whether uploads are transcoded first
func (s *Settings) GetCompressBeforeUpload() bool {
	return s.app.Preferences().Bool(KeyCompressUpload)
}

// SetCompressBeforeUpload toggles pre-upload transcoding
func (s *Settings) SetCompressBeforeUpload(enabled bool) {
	s.app.Preferences().SetBool(KeyCompressUpload, enabled)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
