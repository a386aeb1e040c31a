package panels

import (
	"fmt"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"toolbox/internal/apperrors"
	"toolbox/internal/core/model"
	"toolbox/internal/core/notepad"
	"toolbox/internal/logger"
)

// fontSizeTheme overrides the text size inside the notepad only.
type fontSizeTheme struct {
	fyne.Theme
	text float32
}

func (t fontSizeTheme) Size(n fyne.ThemeSizeName) float32 {
	switch n {
	case theme.SizeNameText:
		return t.text
	case theme.SizeNameSubHeadingText:
		return t.text * 1.3
	}
	return t.Theme.Size(n)
}

// Notepad edits one text document with bold and italic ranges.
type Notepad struct {
	doc *notepad.Document

	win      fyne.Window
	editor   *widget.Entry
	preview  *widget.RichText
	stats    *widget.Label
	sizeText *widget.Label
	slider   *widget.Slider
	override *container.ThemeOverride
}

func NewNotepad(doc *notepad.Document) *Notepad {
	return &Notepad{doc: doc}
}

func (panel *Notepad) Title() string       { return "Notepad" }
func (panel *Notepad) Icon() fyne.Resource { return theme.DocumentCreateIcon() }

func (panel *Notepad) Content(win fyne.Window) fyne.CanvasObject {
	panel.win = win
	panel.editor = widget.NewMultiLineEntry()
	panel.editor.Wrapping = fyne.TextWrapWord
	panel.editor.SetPlaceHolder("Start typing…")
	panel.editor.OnChanged = func(text string) {
		panel.doc.Edit(text)
		panel.refresh()
	}

	panel.preview = widget.NewRichText()
	panel.preview.Wrapping = fyne.TextWrapWord
	panel.stats = widget.NewLabel(notepad.Count("").String())
	panel.sizeText = widget.NewLabel("")

	panel.slider = widget.NewSlider(notepad.MinFontSize, notepad.MaxFontSize)
	panel.slider.Step = 1
	panel.slider.SetValue(float64(panel.doc.FontSize()))
	panel.slider.OnChanged = func(value float64) { panel.setFontSize(int(value)) }

	fileBar := container.NewHBox(
		widget.NewButtonWithIcon("Open", theme.FolderOpenIcon(), panel.open),
		widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), panel.save),
		widget.NewButtonWithIcon("Clear", theme.ContentClearIcon(), panel.clear),
	)
	styleBar := container.NewBorder(nil, nil,
		container.NewHBox(
			widget.NewButton("Bold", func() { panel.toggle(notepad.Bold) }),
			widget.NewButton("Italic", func() { panel.toggle(notepad.Italic) }),
			widget.NewLabel("Font Size:"),
		),
		panel.sizeText,
		panel.slider,
	)

	split := container.NewVSplit(panel.editor, container.NewVScroll(panel.preview))
	split.Offset = 0.65
	panel.override = container.NewThemeOverride(split, fontSizeTheme{Theme: theme.DefaultTheme(), text: float32(panel.doc.FontSize())})
	panel.setFontSize(panel.doc.FontSize())

	return container.NewBorder(container.NewVBox(fileBar, styleBar), panel.stats, nil, nil, panel.override)
}

// SetConfig applies a new default font size.
func (panel *Notepad) SetConfig(cfg model.NotepadConfig) {
	if panel.slider == nil {
		panel.doc.SetFontSize(cfg.FontSize)
		return
	}
	size := notepad.ClampFontSize(cfg.FontSize)
	panel.slider.SetValue(float64(size))
	panel.setFontSize(size)
}

func (panel *Notepad) clear() {
	panel.doc.Clear()
	panel.editor.SetText("")
	panel.refresh()
}

func (panel *Notepad) setFontSize(size int) {
	size = panel.doc.SetFontSize(size)
	panel.sizeText.SetText(fmt.Sprintf("%d pt", size))
	panel.override.Theme = fontSizeTheme{Theme: theme.DefaultTheme(), text: float32(size)}
	panel.override.Refresh()
}

func (panel *Notepad) toggle(style notepad.Style) {
	start, end, ok := notepad.SelectionRange(panel.editor.Text, panel.editor.CursorRow, panel.editor.CursorColumn, panel.editor.SelectedText())
	if !ok {
		dialog.ShowInformation("Info", fmt.Sprintf("Please select text to apply %s formatting.", style), panel.win)
		return
	}
	if _, err := panel.doc.ToggleStyle(style, start, end); err != nil {
		dialog.ShowInformation("Info", fmt.Sprintf("Please select text to apply %s formatting.", style), panel.win)
		return
	}
	panel.refresh()
}

func (panel *Notepad) refresh() {
	segments := panel.doc.Segments()
	rich := make([]widget.RichTextSegment, 0, len(segments))
	for _, seg := range segments {
		rich = append(rich, &widget.TextSegment{
			Text: seg.Text,
			Style: widget.RichTextStyle{
				Inline:    true,
				SizeName:  theme.SizeNameText,
				TextStyle: fyne.TextStyle{Bold: seg.Bold, Italic: seg.Italic},
			},
		})
	}
	panel.preview.Segments = rich
	panel.preview.Refresh()
	panel.stats.SetText(notepad.Count(panel.doc.Text()).String())
}

func (panel *Notepad) open() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		if err := panel.doc.Open(path); err != nil {
			showError(panel.win, "notepad", apperrors.IO("Could not open file.", err))
			return
		}
		logger.Info("note opened", "path", path)
		panel.editor.SetText(panel.doc.Text())
		panel.refresh()
	}, panel.win)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".txt", ".md", ".log"}))
	fd.Show()
}

func (panel *Notepad) save() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			showError(panel.win, "notepad", apperrors.IO("Could not save file.", err))
			return
		}
		if writer == nil {
			return
		}
		panel.saveTo(writer, writer.URI().Path())
	}, panel.win)
	fd.SetFileName("untitled" + notepad.DefaultExt)
	fd.Show()
}

// saveTo writes the buffer through the writer the save dialog opened.
func (panel *Notepad) saveTo(w io.WriteCloser, name string) bool {
	err := writeAndClose(w, func(out io.Writer) error {
		_, err := panel.doc.WriteTo(out)
		return err
	})
	if err != nil {
		showError(panel.win, "notepad", apperrors.IO("Could not save file.", err))
		return false
	}
	logger.Info("note saved", "path", name)
	dialog.ShowInformation("Success", "File saved successfully!", panel.win)
	return true
}
