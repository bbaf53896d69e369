// Package search coordinates one dictionary lookup and one LLM request per
// search and writes both into the display surface.
package search

import (
	"context"
	"strings"

	"multidict/internal/dictionary"
	"multidict/internal/llm"
	"multidict/internal/logger"
)

const (
	DictionaryHeader = "Free Dictionary (dictionaryapi.dev)"
	LLMHeader        = "LLM Definition (Gemini)"

	// Placeholder is the literal line shown while the LLM request runs and
	// the marker located again when its result arrives.
	Placeholder = "Fetching definition from LLM... Please wait."
)

type DictionaryClient interface {
	Lookup(ctx context.Context, word string) dictionary.Result
}

type LLMClient interface {
	Define(ctx context.Context, word string) llm.Result
}

// Surface is the text region the orchestrator renders into. SetText must be
// called on the interactive thread only.
type Surface interface {
	SetText(text string)
}

// Notifier raises the blocking warning for empty input.
type Notifier interface {
	WarnEmptyInput()
}

// Orchestrator issues both lookups for a search. The dictionary call runs
// synchronously on the interactive thread; the LLM call runs on a fresh
// goroutine and hands its result back through dispatch, which must schedule
// the closure onto the interactive thread (fyne.Do in production).
type Orchestrator struct {
	dict     DictionaryClient
	llm      LLMClient
	surface  Surface
	notifier Notifier
	dispatch func(func())
	log      logger.Logger

	session Session
}

func NewOrchestrator(
	dict DictionaryClient,
	llmClient LLMClient,
	surface Surface,
	notifier Notifier,
	dispatch func(func()),
	log logger.Logger) *Orchestrator {

	return &Orchestrator{
		dict:     dict,
		llm:      llmClient,
		surface:  surface,
		notifier: notifier,
		dispatch: dispatch,
		log:      log,
	}
}

// OnSearch handles one search action. Must be called on the interactive
// thread. Empty input raises the warning and performs no network activity.
func (o *Orchestrator) OnSearch(raw string) {
	word := strings.TrimSpace(raw)
	if word == "" {
		o.notifier.WarnEmptyInput()
		return
	}
	o.log.Info("search", "search started", map[string]interface{}{
		"word": word,
	})

	o.session.Clear()

	o.session.AppendHeader(DictionaryHeader)
	o.session.AppendBlock(o.dict.Lookup(context.Background(), word).Render())
	o.surface.SetText(o.session.Text())

	o.session.AppendHeader(LLMHeader)
	o.session.AppendLine(Placeholder)
	o.surface.SetText(o.session.Text())

	// One fresh background worker per search; no pooling, no cancellation.
	// An outstanding call from an older search still completes and its
	// result is still written.
	go func() {
		result := o.llm.Define(context.Background(), word)
		o.dispatch(func() {
			o.session.ReplaceOrAppend(Placeholder, result.Render())
			o.surface.SetText(o.session.Text())
			o.log.Debug("search", "llm result written", map[string]interface{}{
				"word": word,
			})
		})
	}()
}
