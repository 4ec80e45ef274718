package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// LoginForm is the credentials view shown while no session exists.
// Submission is delegated to the onSubmit callback; the form itself only
// does presence validation and renders the error text it is given.
type LoginForm struct {
	localization *Localization

	usernameEntry *widget.Entry
	passwordEntry *widget.Entry
	errorLabel    *widget.Label
	submitBtn     *widget.Button
	switchLink    *widget.Hyperlink

	container *fyne.Container

	onSubmit func(username, password string)
	onSwitch func()
}

// NewLoginForm creates the login view
func NewLoginForm(localization *Localization) *LoginForm {
	lf := &LoginForm{localization: localization}
	lf.createUI()
	return lf
}

// SetCallbacks sets the submit and view-switch callbacks
func (lf *LoginForm) SetCallbacks(onSubmit func(username, password string), onSwitch func()) {
	lf.onSubmit = onSubmit
	lf.onSwitch = onSwitch
}

// Container returns the root container of the form
func (lf *LoginForm) Container() *fyne.Container {
	return lf.container
}

// ShowError renders an error text under the form
func (lf *LoginForm) ShowError(text string) {
	lf.errorLabel.SetText(text)
	lf.errorLabel.Show()
}

// ClearError hides the error text
func (lf *LoginForm) ClearError() {
	lf.errorLabel.SetText("")
	lf.errorLabel.Hide()
}

// SetBusy disables the form while a request is in flight
func (lf *LoginForm) SetBusy(busy bool) {
	if busy {
		lf.submitBtn.Disable()
		lf.usernameEntry.Disable()
		lf.passwordEntry.Disable()
		return
	}
	lf.submitBtn.Enable()
	lf.usernameEntry.Enable()
	lf.passwordEntry.Enable()
}

// Reset clears entries and errors, for re-showing after a logout
func (lf *LoginForm) Reset() {
	lf.usernameEntry.SetText("")
	lf.passwordEntry.SetText("")
	lf.ClearError()
	lf.SetBusy(false)
}

func (lf *LoginForm) createUI() {
	title := widget.NewLabel(lf.localization.GetText(KeyLoginTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	lf.usernameEntry = widget.NewEntry()
	lf.usernameEntry.SetPlaceHolder(lf.localization.GetText(KeyUsername))

	lf.passwordEntry = widget.NewPasswordEntry()
	lf.passwordEntry.SetPlaceHolder(lf.localization.GetText(KeyPassword))
	lf.passwordEntry.OnSubmitted = func(string) { lf.submit() }

	lf.errorLabel = widget.NewLabel("")
	lf.errorLabel.Wrapping = fyne.TextWrapWord
	lf.errorLabel.Importance = widget.DangerImportance
	lf.errorLabel.Hide()

	lf.submitBtn = widget.NewButton(lf.localization.GetText(KeyLoginButton), lf.submit)
	lf.submitBtn.Importance = widget.HighImportance

	lf.switchLink = widget.NewHyperlink(lf.localization.GetText(KeyNoAccount), nil)
	lf.switchLink.OnTapped = func() {
		if lf.onSwitch != nil {
			lf.onSwitch()
		}
	}

	form := container.NewVBox(
		title,
		widget.NewSeparator(),
		lf.usernameEntry,
		lf.passwordEntry,
		lf.errorLabel,
		lf.submitBtn,
		container.NewCenter(lf.switchLink),
	)

	lf.container = container.NewCenter(container.NewGridWrap(
		fyne.NewSize(FormMaxWidth, FormHeight), form))
}

func (lf *LoginForm) submit() {
	username := strings.TrimSpace(lf.usernameEntry.Text)
	password := lf.passwordEntry.Text
	if username == "" || password == "" {
		lf.ShowError(lf.localization.GetText(KeyFillBothFields))
		return
	}
	if lf.onSubmit != nil {
		lf.onSubmit(username, password)
	}
}
