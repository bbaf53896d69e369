package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// InputWarning raises the modal warning for empty search input. It
// implements search.Notifier.
type InputWarning struct {
	window fyne.Window
}

func NewInputWarning(window fyne.Window) *InputWarning {
	return &InputWarning{window: window}
}

func (w *InputWarning) WarnEmptyInput() {
	dialog.ShowInformation("Input Error", "Please enter a word to search.", w.window)
}
