package ui

import (
	"context"
	"log"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/SameedIlyas/Cloud-Project/internal/api"
	"github.com/SameedIlyas/Cloud-Project/internal/compress"
	"github.com/SameedIlyas/Cloud-Project/internal/config"
	"github.com/SameedIlyas/Cloud-Project/internal/model"
	"github.com/SameedIlyas/Cloud-Project/internal/platform"
	"github.com/SameedIlyas/Cloud-Project/internal/storage"
)

// Dashboard is the authenticated view: the video collection with upload,
// play, download and delete actions. It renders whatever the storage
// service publishes through its callbacks.
type Dashboard struct {
	window       fyne.Window
	storageSvc   *storage.Service
	compressSvc  compress.Compressor
	settings     *config.Settings
	localization *Localization

	viewSelect *widget.Select
	uploadBtn  *widget.Button

	alertLabel   *widget.Label
	messageLabel *widget.Label
	bannerTimer  *time.Timer

	emptyLabel  *widget.Label
	cardArea    *container.Scroll
	cards       []*VideoCard
	currentView config.ViewType

	container *fyne.Container
}

// NewDashboard creates the dashboard view
func NewDashboard(window fyne.Window, storageSvc *storage.Service, compressSvc compress.Compressor, settings *config.Settings, localization *Localization) *Dashboard {
	d := &Dashboard{
		window:       window,
		storageSvc:   storageSvc,
		compressSvc:  compressSvc,
		settings:     settings,
		localization: localization,
		currentView:  settings.GetViewType(),
	}
	d.createUI()
	return d
}

// Container returns the root container of the dashboard
func (d *Dashboard) Container() *fyne.Container {
	return d.container
}

// SetStatus rebuilds the collection from a status snapshot. Must run on the
// UI thread.
func (d *Dashboard) SetStatus(status model.StorageStatus) {
	if status.ShouldAlert {
		d.alertLabel.SetText(storage.MsgQuotaReached)
		d.alertLabel.Show()
	} else {
		d.alertLabel.Hide()
	}
	d.rebuildCards(status.Files)
}

// SetTransfer forwards download progress to the matching card. Must run on
// the UI thread.
func (d *Dashboard) SetTransfer(task *model.TransferTask) {
	for _, card := range d.cards {
		card.SetTransfer(task)
	}
	if task.Status == model.TransferStatusCompleted {
		d.showMessage(d.localization.GetText(KeyDownloadSaved) + " " + task.OutputPath)
	}
}

func (d *Dashboard) createUI() {
	heading := widget.NewLabel(d.localization.GetText(KeyMyVideos))
	heading.TextStyle = fyne.TextStyle{Bold: true}

	d.viewSelect = widget.NewSelect([]string{
		d.localization.GetText(KeyViewGrid),
		d.localization.GetText(KeyViewList),
	}, d.onViewChanged)
	if d.currentView == config.ViewList {
		d.viewSelect.SetSelected(d.localization.GetText(KeyViewList))
	} else {
		d.viewSelect.SetSelected(d.localization.GetText(KeyViewGrid))
	}

	d.uploadBtn = widget.NewButton(d.localization.GetText(KeyUpload), d.onUploadClick)
	d.uploadBtn.Importance = widget.HighImportance

	topPanel := container.NewBorder(nil, nil, heading, container.NewHBox(d.viewSelect, d.uploadBtn))

	d.alertLabel = widget.NewLabel("")
	d.alertLabel.Wrapping = fyne.TextWrapWord
	d.alertLabel.Importance = widget.WarningImportance
	d.alertLabel.Hide()

	d.messageLabel = widget.NewLabel("")
	d.messageLabel.Wrapping = fyne.TextWrapWord
	d.messageLabel.Hide()

	d.emptyLabel = widget.NewLabel(d.localization.GetText(KeyNoVideosYet))
	d.emptyLabel.Alignment = fyne.TextAlignCenter

	d.cardArea = container.NewScroll(container.NewVBox(d.emptyLabel))

	top := container.NewVBox(topPanel, d.alertLabel, d.messageLabel)
	d.container = container.NewBorder(top, nil, nil, nil, d.cardArea)
}

// rebuildCards recreates the card widgets for the current entry list
func (d *Dashboard) rebuildCards(entries []model.VideoEntry) {
	compact := d.currentView == config.ViewList

	d.cards = d.cards[:0]
	if len(entries) == 0 {
		d.cardArea.Content = container.NewCenter(d.emptyLabel)
		d.cardArea.Refresh()
		return
	}

	objects := make([]fyne.CanvasObject, 0, len(entries))
	for _, entry := range entries {
		card := NewVideoCard(entry, compact, d.localization)
		card.SetCallbacks(d.onPlay, d.onDownload, d.onDeleteRequest)
		d.cards = append(d.cards, card)
		objects = append(objects, card)
	}

	if compact {
		d.cardArea.Content = container.NewVBox(objects...)
	} else {
		d.cardArea.Content = container.NewGridWrap(
			fyne.NewSize(CardMinWidth, CardMinHeight), objects...)
	}
	d.cardArea.Refresh()
}

// onViewChanged switches between the grid and list presentation
func (d *Dashboard) onViewChanged(selected string) {
	view := config.ViewGrid
	if selected == d.localization.GetText(KeyViewList) {
		view = config.ViewList
	}
	if view == d.currentView {
		return
	}
	d.currentView = view
	d.settings.SetViewType(view)
	d.rebuildCards(d.storageSvc.Entries())
}

// onUploadClick opens the file picker and uploads the chosen file
func (d *Dashboard) onUploadClick() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		log.Printf("Uploading %s", path)
		d.uploadBtn.Disable()
		go func() {
			uploadPath := path
			if d.compressSvc != nil && d.settings.GetCompressBeforeUpload() {
				fyne.Do(func() { d.showMessage(d.localization.GetText(KeyCompressing)) })
				compressed, compressErr := d.compressSvc.Compress(context.Background(), path)
				if compressErr != nil {
					// Fall back to the original file when the transcode fails
					log.Printf("Compression failed for %s: %v", path, compressErr)
				} else {
					uploadPath = compressed
					defer os.Remove(compressed)
				}
			}

			alert, uploadErr := d.storageSvc.Upload(context.Background(), uploadPath)
			fyne.Do(func() {
				d.uploadBtn.Enable()
				switch {
				case uploadErr != nil:
					d.showMessage(storage.MsgUploadError)
				case alert:
					d.alertLabel.SetText(storage.MsgQuotaReached)
					d.alertLabel.Show()
				}
			})
		}()
	}, d.window)
}

// onDeleteRequest asks for confirmation before deleting
func (d *Dashboard) onDeleteRequest(entryID string) {
	confirm := dialog.NewConfirm(
		d.localization.GetText(KeyDeleteTitle),
		d.localization.GetText(KeyDeleteQuestion),
		func(confirmed bool) {
			if !confirmed {
				return
			}
			go func() {
				err := d.storageSvc.Delete(context.Background(), entryID)
				if err == nil {
					return
				}
				fyne.Do(func() {
					if api.IsKind(err, api.KindNotFound) {
						d.showMessage(storage.MsgFileNotFound)
					} else {
						d.showMessage(storage.MsgDeleteError)
					}
				})
			}()
		},
		d.window,
	)
	confirm.SetConfirmText(d.localization.GetText(KeyDelete))
	confirm.SetDismissText(d.localization.GetText(KeyCancel))
	confirm.Show()
}

// onDownload starts a background transfer into the download directory
func (d *Dashboard) onDownload(entryID string) {
	if _, err := d.storageSvc.Download(context.Background(), entryID); err != nil {
		log.Printf("Download start failed for %s: %v", entryID, err)
		d.showMessage(storage.MsgDownloadError)
	}
}

// onPlay fetches the stream into the local cache and opens the player
func (d *Dashboard) onPlay(entryID string) {
	go func() {
		path, err := d.storageSvc.OpenStream(context.Background(), entryID)
		if err != nil {
			fyne.Do(func() {
				if api.IsKind(err, api.KindNotFound) {
					d.showMessage(storage.MsgFileNotFound)
				} else {
					d.showMessage(storage.MsgStreamError)
				}
			})
			return
		}
		if err := platform.OpenFileWithDefaultApp(path); err != nil {
			log.Printf("Player launch failed for %s: %v", path, err)
			fyne.Do(func() { d.showMessage(storage.MsgStreamError) })
		}
	}()
}

// showMessage shows a transient banner text under the top panel
func (d *Dashboard) showMessage(text string) {
	d.messageLabel.SetText(text)
	d.messageLabel.Show()

	if d.bannerTimer != nil {
		d.bannerTimer.Stop()
	}
	d.bannerTimer = time.AfterFunc(BannerAutoHide, func() {
		fyne.Do(func() { d.messageLabel.Hide() })
	})
}
