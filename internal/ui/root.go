package ui

import (
	"context"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/SameedIlyas/Cloud-Project/internal/auth"
	"github.com/SameedIlyas/Cloud-Project/internal/compress"
	"github.com/SameedIlyas/Cloud-Project/internal/config"
	"github.com/SameedIlyas/Cloud-Project/internal/model"
	"github.com/SameedIlyas/Cloud-Project/internal/storage"
)

// RootUI routes between the login, signup and dashboard views. The session
// state decides which view is visible; the auth manager drives transitions
// through its state callback.
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization

	authMgr    *auth.Manager
	storageSvc *storage.Service

	loginForm      *LoginForm
	signupForm     *SignupForm
	dashboard      *Dashboard
	sidebar        *Sidebar
	settingsDialog *SettingsDialog

	showingSignup bool
	lastState     model.SessionState
}

// NewRootUI creates and wires the main UI
func NewRootUI(window fyne.Window, app fyne.App, authMgr *auth.Manager, storageSvc *storage.Service, compressSvc compress.Compressor) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		authMgr:      authMgr,
		storageSvc:   storageSvc,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.loginForm = NewLoginForm(localization)
	ui.loginForm.SetCallbacks(ui.onLogin, ui.showSignup)

	ui.signupForm = NewSignupForm(localization)
	ui.signupForm.SetCallbacks(ui.onSignup, ui.showLogin)

	ui.dashboard = NewDashboard(window, storageSvc, compressSvc, settings, localization)

	ui.sidebar = NewSidebar(localization)
	ui.sidebar.SetCallbacks(ui.onSignOut, ui.onShowSettings)

	ui.settingsDialog = NewSettingsDialog(settings, localization, window)

	authMgr.SetStateCallback(func(state model.SessionState, session model.Session) {
		fyne.Do(func() { ui.renderState(state, session) })
	})
	storageSvc.SetStatusCallback(func(status model.StorageStatus) {
		fyne.Do(func() {
			ui.dashboard.SetStatus(status)
			ui.sidebar.SetStatus(status)
		})
	})
	storageSvc.SetTransferCallback(func(task *model.TransferTask) {
		fyne.Do(func() { ui.dashboard.SetTransfer(task) })
	})

	ui.renderState(authMgr.State(), authMgr.Session())
	return ui
}

// renderState swaps the window content for the given session state
func (ui *RootUI) renderState(state model.SessionState, session model.Session) {
	log.Printf("Session state: %s", state)

	switch state {
	case model.StateVerifying:
		spinner := widget.NewProgressBarInfinite()
		label := widget.NewLabel(ui.localization.GetText(KeyVerifyingSession))
		label.Alignment = fyne.TextAlignCenter
		ui.window.SetContent(container.NewCenter(container.NewVBox(label, spinner)))

	case model.StateAuthenticated:
		ui.sidebar.SetUsername(session.DisplayName())

		sidebarBox := container.NewGridWrap(
			fyne.NewSize(SidebarWidth, SidebarHeight), ui.sidebar.Container())
		content := container.NewBorder(nil, nil, sidebarBox, nil, ui.dashboard.Container())
		ui.window.SetContent(content)

		go func() {
			if err := ui.storageSvc.Refresh(context.Background()); err != nil {
				fyne.Do(func() { ui.dashboard.showMessage(storage.MsgStatusUnavailable) })
			}
		}()

	default:
		ui.loginForm.Reset()
		ui.signupForm.Reset()
		if ui.lastState == model.StateVerifying {
			// A persisted session failed verification
			ui.loginForm.ShowError(auth.MsgTokenInvalid)
			ui.showingSignup = false
		}
		if ui.showingSignup {
			ui.window.SetContent(ui.signupForm.Container())
		} else {
			ui.window.SetContent(ui.loginForm.Container())
		}
	}

	ui.lastState = state
}

// showSignup switches the unauthenticated view to the signup form
func (ui *RootUI) showSignup() {
	ui.showingSignup = true
	ui.signupForm.Reset()
	ui.window.SetContent(ui.signupForm.Container())
}

// showLogin switches the unauthenticated view back to the login form
func (ui *RootUI) showLogin() {
	ui.showingSignup = false
	ui.loginForm.Reset()
	ui.window.SetContent(ui.loginForm.Container())
}

// onLogin submits credentials to the auth manager
func (ui *RootUI) onLogin(username, password string) {
	ui.loginForm.ClearError()
	ui.loginForm.SetBusy(true)

	go func() {
		err := ui.authMgr.Login(context.Background(), username, password)
		if err == nil {
			return
		}
		fyne.Do(func() {
			ui.loginForm.SetBusy(false)
			ui.loginForm.ShowError(auth.LoginErrorText(err))
		})
	}()
}

// onSignup submits a registration to the auth manager
func (ui *RootUI) onSignup(username, password string) {
	ui.signupForm.ClearError()
	ui.signupForm.SetBusy(true)

	go func() {
		err := ui.authMgr.Register(context.Background(), username, password)
		if err == nil {
			return
		}
		fyne.Do(func() {
			ui.signupForm.SetBusy(false)
			ui.signupForm.ShowError(auth.SignupErrorText(err))
		})
	}()
}

// onSignOut drops the session and returns to the login view
func (ui *RootUI) onSignOut() {
	ui.showingSignup = false
	ui.authMgr.Logout()
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	ui.settingsDialog.Show()
}
