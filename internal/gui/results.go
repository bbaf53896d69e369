package gui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ResultsView is the scrollable read-only region both definition sources are
// rendered into. It implements search.Surface.
type ResultsView struct {
	richText *widget.RichText
	scroll   *container.Scroll
}

func NewResultsView() *ResultsView {
	richText := widget.NewRichText()
	richText.Wrapping = fyne.TextWrapWord

	return &ResultsView{
		richText: richText,
		scroll:   container.NewVScroll(richText),
	}
}

// SetText replaces the rendered content. Must be called on the interactive
// thread; the orchestrator guarantees that.
func (rv *ResultsView) SetText(text string) {
	rv.richText.Segments = segmentsFor(text)
	rv.richText.Refresh()
}

func (rv *ResultsView) GetContainer() fyne.CanvasObject {
	return rv.scroll
}

// segmentsFor renders section header lines with the sub-heading style and
// everything else as plain paragraphs.
func segmentsFor(text string) []widget.RichTextSegment {
	var segments []widget.RichTextSegment
	var block []string

	flush := func() {
		if len(block) == 0 {
			return
		}
		segments = append(segments, &widget.TextSegment{
			Text:  strings.Join(block, "\n"),
			Style: widget.RichTextStyleParagraph,
		})
		block = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if isHeaderLine(line) {
			flush()
			segments = append(segments, &widget.TextSegment{
				Text:  line,
				Style: widget.RichTextStyleSubHeading,
			})
			continue
		}
		block = append(block, line)
	}
	flush()
	return segments
}

func isHeaderLine(line string) bool {
	return strings.HasPrefix(line, "--- ") && strings.HasSuffix(line, " ---")
}
