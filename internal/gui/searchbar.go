package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// SearchBar is the input row: prompt label, single-line entry submitting on
// Enter, and the search button.
type SearchBar struct {
	container *fyne.Container
	entry     *widget.Entry
	button    *widget.Button

	onSearch func(string)
}

func NewSearchBar(onSearch func(string)) *SearchBar {
	bar := &SearchBar{onSearch: onSearch}
	bar.setupControls()
	return bar
}

func (sb *SearchBar) setupControls() {
	sb.entry = widget.NewEntry()
	sb.entry.SetPlaceHolder("serendipity")
	sb.entry.OnSubmitted = func(string) {
		sb.submit()
	}

	sb.button = widget.NewButton("Search", sb.submit)
	sb.button.Importance = widget.HighImportance

	sb.container = container.NewBorder(
		nil, nil,
		widget.NewLabel("Enter a word:"),
		sb.button,
		sb.entry,
	)
}

func (sb *SearchBar) submit() {
	sb.onSearch(sb.entry.Text)
}

func (sb *SearchBar) GetContainer() *fyne.Container {
	return sb.container
}
