package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/SameedIlyas/Cloud-Project/internal/model"
)

// VideoCard represents one stored video with its actions
type VideoCard struct {
	widget.BaseWidget

	entry        model.VideoEntry
	compact      bool
	localization *Localization

	// UI components
	titleLabel    *widget.Label
	sizeLabel     *widget.Label
	progressLabel *widget.Label

	// Action buttons
	playBtn     *widget.Button
	downloadBtn *widget.Button
	deleteBtn   *widget.Button

	// Callbacks
	onPlay     func(entryID string)
	onDownload func(entryID string)
	onDelete   func(entryID string)
}

// NewVideoCard creates a card for one video entry. Compact cards lay out as
// a single list row, non-compact as a grid tile.
func NewVideoCard(entry model.VideoEntry, compact bool, localization *Localization) *VideoCard {
	vc := &VideoCard{
		entry:        entry,
		compact:      compact,
		localization: localization,
	}
	vc.ExtendBaseWidget(vc)
	vc.createUI()
	vc.updateFromEntry()
	return vc
}

// SetCallbacks sets the action callbacks
func (vc *VideoCard) SetCallbacks(
	onPlay func(entryID string),
	onDownload func(entryID string),
	onDelete func(entryID string),
) {
	vc.onPlay = onPlay
	vc.onDownload = onDownload
	vc.onDelete = onDelete
}

// UpdateEntry updates the card with new entry data
func (vc *VideoCard) UpdateEntry(entry model.VideoEntry) {
	vc.entry = entry
	vc.updateFromEntry()
	vc.Refresh()
}

// SetTransfer reflects the state of a download transfer of this entry
func (vc *VideoCard) SetTransfer(task *model.TransferTask) {
	if task == nil || task.Filename != vc.entry.Filename {
		return
	}

	switch task.Status {
	case model.TransferStatusPending, model.TransferStatusRunning:
		vc.downloadBtn.Disable()
		vc.progressLabel.SetText(task.GetProgressString())
		vc.progressLabel.Show()
	case model.TransferStatusCompleted:
		vc.downloadBtn.Enable()
		vc.progressLabel.Hide()
	case model.TransferStatusError:
		vc.downloadBtn.Enable()
		vc.progressLabel.SetText(task.LastError)
		vc.progressLabel.Show()
	}
	vc.Refresh()
}

// EntryID returns the identity key of the rendered entry
func (vc *VideoCard) EntryID() string {
	return vc.entry.ID
}

// createUI creates the UI components
func (vc *VideoCard) createUI() {
	vc.titleLabel = widget.NewLabel("")
	vc.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	vc.titleLabel.Truncation = fyne.TextTruncateEllipsis
	vc.titleLabel.Alignment = fyne.TextAlignLeading

	vc.sizeLabel = widget.NewLabel("")
	vc.sizeLabel.TextStyle = fyne.TextStyle{Monospace: true}

	vc.progressLabel = widget.NewLabel("")
	vc.progressLabel.Alignment = fyne.TextAlignTrailing
	vc.progressLabel.Hide()

	// Compact rows only have space for the glyphs, grid tiles carry labels
	playText, downloadText, deleteText := IconPlay, IconDownload, IconDelete
	if !vc.compact {
		playText += " " + vc.localization.GetText(KeyPlay)
		downloadText += " " + vc.localization.GetText(KeyDownload)
		deleteText += " " + vc.localization.GetText(KeyDelete)
	}

	vc.playBtn = widget.NewButton(playText, func() {
		log.Printf("Play clicked for video %s", vc.entry.ID)
		if vc.onPlay != nil {
			vc.onPlay(vc.entry.ID)
		}
	})
	vc.playBtn.Importance = widget.HighImportance

	vc.downloadBtn = widget.NewButton(downloadText, func() {
		log.Printf("Download clicked for video %s", vc.entry.ID)
		if vc.onDownload != nil {
			vc.onDownload(vc.entry.ID)
		}
	})
	vc.downloadBtn.Importance = widget.MediumImportance

	vc.deleteBtn = widget.NewButton(deleteText, func() {
		log.Printf("Delete clicked for video %s", vc.entry.ID)
		if vc.onDelete != nil {
			vc.onDelete(vc.entry.ID)
		}
	})
	vc.deleteBtn.Importance = widget.DangerImportance
}

// updateFromEntry refreshes texts from the entry data
func (vc *VideoCard) updateFromEntry() {
	vc.titleLabel.SetText(vc.entry.GetDisplayTitle())
	vc.sizeLabel.SetText(vc.entry.GetSizeString())
}

// CreateRenderer creates the widget renderer
func (vc *VideoCard) CreateRenderer() fyne.WidgetRenderer {
	return &videoCardRenderer{card: vc}
}

// videoCardRenderer renders the video card widget
type videoCardRenderer struct {
	card   *VideoCard
	layout *fyne.Container
}

// Layout arranges the components
func (r *videoCardRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *videoCardRenderer) MinSize() fyne.Size {
	if r.card.compact {
		return fyne.NewSize(CardMinWidth, ListRowMinH)
	}
	return fyne.NewSize(CardMinWidth, CardMinHeight)
}

// Refresh refreshes the renderer
func (r *videoCardRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *videoCardRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *videoCardRenderer) Destroy() {}

// createLayout creates the main layout
func (r *videoCardRenderer) createLayout() {
	vc := r.card

	actionRow := container.NewHBox(vc.playBtn, vc.downloadBtn, vc.deleteBtn)

	if vc.compact {
		// Single row: title expands, size and actions pinned right
		rightCluster := container.NewHBox(vc.sizeLabel, vc.progressLabel, actionRow)
		r.layout = container.NewVBox(
			container.NewBorder(nil, nil, nil, rightCluster, vc.titleLabel),
			widget.NewSeparator(),
		)
		return
	}

	// Grid tile: framed box with title on top, actions at the bottom
	frame := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
	frame.StrokeColor = color.RGBA{R: 128, G: 128, B: 128, A: 96}
	frame.StrokeWidth = 1
	frame.CornerRadius = 6

	infoRow := container.NewBorder(nil, nil, vc.sizeLabel, vc.progressLabel)
	body := container.NewBorder(
		vc.titleLabel,
		container.NewVBox(infoRow, container.NewCenter(actionRow)),
		nil, nil,
		container.NewCenter(widget.NewLabel(IconBrand)),
	)

	r.layout = container.NewStack(frame, container.NewPadded(body))
}
