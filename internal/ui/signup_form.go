package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// SignupForm is the account creation view. Same contract as LoginForm:
// presence validation here, everything else through callbacks.
type SignupForm struct {
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

// NewSignupForm creates the signup view
func NewSignupForm(localization *Localization) *SignupForm {
	sf := &SignupForm{localization: localization}
	sf.createUI()
	return sf
}

// SetCallbacks sets the submit and view-switch callbacks
func (sf *SignupForm) SetCallbacks(onSubmit func(username, password string), onSwitch func()) {
	sf.onSubmit = onSubmit
	sf.onSwitch = onSwitch
}

// Container returns the root container of the form
func (sf *SignupForm) Container() *fyne.Container {
	return sf.container
}

// ShowError renders an error text under the form
func (sf *SignupForm) ShowError(text string) {
	sf.errorLabel.SetText(text)
	sf.errorLabel.Show()
}

// ClearError hides the error text
func (sf *SignupForm) ClearError() {
	sf.errorLabel.SetText("")
	sf.errorLabel.Hide()
}

// SetBusy disables the form while a request is in flight
func (sf *SignupForm) SetBusy(busy bool) {
	if busy {
		sf.submitBtn.Disable()
		sf.usernameEntry.Disable()
		sf.passwordEntry.Disable()
		return
	}
	sf.submitBtn.Enable()
	sf.usernameEntry.Enable()
	sf.passwordEntry.Enable()
}

// Reset clears entries and errors
func (sf *SignupForm) Reset() {
	sf.usernameEntry.SetText("")
	sf.passwordEntry.SetText("")
	sf.ClearError()
	sf.SetBusy(false)
}

func (sf *SignupForm) createUI() {
	title := widget.NewLabel(sf.localization.GetText(KeySignupTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	sf.usernameEntry = widget.NewEntry()
	sf.usernameEntry.SetPlaceHolder(sf.localization.GetText(KeyUsername))

	sf.passwordEntry = widget.NewPasswordEntry()
	sf.passwordEntry.SetPlaceHolder(sf.localization.GetText(KeyPassword))
	sf.passwordEntry.OnSubmitted = func(string) { sf.submit() }

	sf.errorLabel = widget.NewLabel("")
	sf.errorLabel.Wrapping = fyne.TextWrapWord
	sf.errorLabel.Importance = widget.DangerImportance
	sf.errorLabel.Hide()

	sf.submitBtn = widget.NewButton(sf.localization.GetText(KeySignupButton), sf.submit)
	sf.submitBtn.Importance = widget.HighImportance

	sf.switchLink = widget.NewHyperlink(sf.localization.GetText(KeyHaveAccount), nil)
	sf.switchLink.OnTapped = func() {
		if sf.onSwitch != nil {
			sf.onSwitch()
		}
	}

	form := container.NewVBox(
		title,
		widget.NewSeparator(),
		sf.usernameEntry,
		sf.passwordEntry,
		sf.errorLabel,
		sf.submitBtn,
		container.NewCenter(sf.switchLink),
	)

	sf.container = container.NewCenter(container.NewGridWrap(
		fyne.NewSize(FormMaxWidth, FormHeight), form))
}

func (sf *SignupForm) submit() {
	username := strings.TrimSpace(sf.usernameEntry.Text)
	password := sf.passwordEntry.Text
	if username == "" || password == "" {
		sf.ShowError(sf.localization.GetText(KeyFillBothFields))
		return
	}
	if sf.onSubmit != nil {
		sf.onSubmit(username, password)
	}
}
