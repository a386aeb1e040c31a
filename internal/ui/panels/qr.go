package panels

import (
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"toolbox/internal/apperrors"
	"toolbox/internal/core/qr"
	"toolbox/internal/logger"
)

// QRCode renders text as a QR code and saves it as PNG.
type QRCode struct {
	artifact *qr.Artifact

	win   fyne.Window
	input *widget.Entry
	image *canvas.Image
	save  *widget.Button
}

func NewQRCode() *QRCode {
	return &QRCode{}
}

func (panel *QRCode) Title() string       { return "QR Generator" }
func (panel *QRCode) Icon() fyne.Resource { return theme.MediaPhotoIcon() }

func (panel *QRCode) Content(win fyne.Window) fyne.CanvasObject {
	panel.win = win
	panel.input = widget.NewEntry()
	panel.input.SetPlaceHolder("https://example.com")
	panel.input.OnSubmitted = func(string) { panel.generate() }

	panel.image = canvas.NewImageFromImage(nil)
	panel.image.FillMode = canvas.ImageFillContain
	panel.image.ScaleMode = canvas.ImageScalePixels
	panel.image.SetMinSize(fyne.NewSize(qr.DefaultSize, qr.DefaultSize))

	panel.save = widget.NewButtonWithIcon("Save QR Code", theme.DocumentSaveIcon(), panel.saveDialog)
	panel.save.Disable()

	return container.NewVBox(
		widget.NewLabel("Enter text or URL for QR Code:"),
		panel.input,
		container.NewCenter(widget.NewButton("Generate QR Code", panel.generate)),
		container.NewCenter(panel.image),
		container.NewCenter(panel.save),
	)
}

func (panel *QRCode) generate() {
	artifact, err := qr.Generate(panel.input.Text, qr.DefaultSize)
	if err != nil {
		showError(panel.win, "qr", err)
		return
	}
	panel.artifact = artifact
	panel.image.Image = artifact.Image
	panel.image.Refresh()
	panel.save.Enable()
	logger.Debug("qr code generated", "bytes", len(artifact.PNG))
}

func (panel *QRCode) saveDialog() {
	if panel.artifact == nil {
		showError(panel.win, "qr", qr.ErrNoArtifact)
		return
	}
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			showError(panel.win, "qr", apperrors.IO("Error saving QR Code.", err))
			return
		}
		if writer == nil {
			return
		}
		panel.saveTo(writer, writer.URI().Path())
	}, panel.win)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{qr.DefaultExt}))
	fd.SetFileName("qrcode" + qr.DefaultExt)
	fd.Show()
}

// saveTo writes the PNG through the writer the save dialog opened.
func (panel *QRCode) saveTo(w io.WriteCloser, name string) bool {
	err := writeAndClose(w, func(out io.Writer) error {
		return qr.Write(panel.artifact, out)
	})
	if err != nil {
		if _, ok := apperrors.KindOf(err); !ok {
			err = apperrors.IO("Error saving QR Code.", err)
		}
		showError(panel.win, "qr", err)
		return false
	}
	logger.Info("qr code saved", "path", name)
	dialog.ShowInformation("Saved", "QR Code saved successfully!", panel.win)
	return true
}
