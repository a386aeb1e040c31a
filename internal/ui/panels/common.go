// Package panels holds one Fyne panel per tool. Panels only bind widgets
// to the core packages; all state lives in the cores.
package panels

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"toolbox/internal/apperrors"
	"toolbox/internal/logger"
)

// showError shows the user-facing message of err and logs the cause.
func showError(win fyne.Window, scope string, err error) {
	kind, _ := apperrors.KindOf(err)
	logger.With(scope).Warn("operation failed", "kind", string(kind), "error", err)
	dialog.ShowError(errors.New(apperrors.PublicMessage(err)), win)
}

// writeAndClose runs write against w and closes it, keeping the first error.
func writeAndClose(w io.WriteCloser, write func(io.Writer) error) error {
	err := write(w)
	if closeErr := w.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("close: %w", closeErr)
	}
	return err
}

func heading(text string) *widget.Label {
	return widget.NewLabelWithStyle(text, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
}

func clockText(text string, size float32) *canvas.Text {
	display := canvas.NewText(text, foreground())
	display.TextSize = size
	display.TextStyle = fyne.TextStyle{Monospace: true}
	display.Alignment = fyne.TextAlignCenter
	return display
}

func foreground() color.Color {
	return theme.Color(theme.ColorNameForeground)
}

// narrowEntry keeps numeric entries from stretching across the row.
func narrowEntry(entry *widget.Entry, width float32) fyne.CanvasObject {
	return container.NewGridWrap(fyne.NewSize(width, entry.MinSize().Height), entry)
}
