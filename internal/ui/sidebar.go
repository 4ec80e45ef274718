package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/SameedIlyas/Cloud-Project/internal/model"
)

// Sidebar shows the brand, the signed-in user and the storage gauges
type Sidebar struct {
	localization *Localization

	usernameLabel  *widget.Label
	usedGauge      *widget.ProgressBar
	availableGauge *widget.ProgressBar
	usageLabel     *widget.Label
	signOutBtn     *widget.Button
	settingsBtn    *widget.Button

	container *fyne.Container

	onSignOut  func()
	onSettings func()
}

// NewSidebar creates the dashboard sidebar
func NewSidebar(localization *Localization) *Sidebar {
	sb := &Sidebar{localization: localization}
	sb.createUI()
	return sb
}

// SetCallbacks sets the sign-out and settings callbacks
func (sb *Sidebar) SetCallbacks(onSignOut, onSettings func()) {
	sb.onSignOut = onSignOut
	sb.onSettings = onSettings
}

// Container returns the root container of the sidebar
func (sb *Sidebar) Container() *fyne.Container {
	return sb.container
}

// SetUsername sets the displayed account name
func (sb *Sidebar) SetUsername(name string) {
	sb.usernameLabel.SetText(name)
}

// SetStatus updates both gauges and the usage text
func (sb *Sidebar) SetStatus(status model.StorageStatus) {
	sb.usedGauge.SetValue(status.UsedFraction())
	sb.availableGauge.SetValue(status.AvailableFraction())
	sb.usageLabel.SetText(fmt.Sprintf("%s / %s",
		model.FormatSizeMb(status.CurrentUsageMb),
		model.FormatSizeMb(status.StorageLimitMb)))
}

func (sb *Sidebar) createUI() {
	brand := widget.NewLabel(IconBrand + " " + sb.localization.GetText(KeyAppTitle))
	brand.TextStyle = fyne.TextStyle{Bold: true}
	brand.Alignment = fyne.TextAlignCenter

	sb.usernameLabel = widget.NewLabel("")
	sb.usernameLabel.Alignment = fyne.TextAlignCenter
	sb.usernameLabel.Truncation = fyne.TextTruncateEllipsis

	usedTitle := widget.NewLabel(sb.localization.GetText(KeyStorageUsed))
	sb.usedGauge = widget.NewProgressBar()

	availableTitle := widget.NewLabel(sb.localization.GetText(KeyStorageAvailable))
	sb.availableGauge = widget.NewProgressBar()

	sb.usageLabel = widget.NewLabel(DashPlaceholder)
	sb.usageLabel.Alignment = fyne.TextAlignCenter
	sb.usageLabel.TextStyle = fyne.TextStyle{Monospace: true}

	sb.settingsBtn = widget.NewButton(IconSettings+" "+sb.localization.GetText(KeySettings), func() {
		if sb.onSettings != nil {
			sb.onSettings()
		}
	})

	sb.signOutBtn = widget.NewButton(sb.localization.GetText(KeySignOut), func() {
		if sb.onSignOut != nil {
			sb.onSignOut()
		}
	})
	sb.signOutBtn.Importance = widget.DangerImportance

	top := container.NewVBox(
		brand,
		sb.usernameLabel,
		widget.NewSeparator(),
		usedTitle,
		sb.usedGauge,
		availableTitle,
		sb.availableGauge,
		sb.usageLabel,
	)

	bottom := container.NewVBox(
		widget.NewSeparator(),
		sb.settingsBtn,
		sb.signOutBtn,
	)

	sb.container = container.NewBorder(top, bottom, nil, nil, widget.NewLabel(""))
}
