// Package dictionary wraps the free dictionary web service
// (dictionaryapi.dev) behind a synchronous lookup call.
package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"resty.dev/v3"

	"multidict/internal/logger"
)

// Terminal statuses rendered in place of definitions.
const (
	StatusNotFound      = "Word not found in this dictionary."
	StatusUnparsable    = "Could not parse the response from the server."
	StatusNoDefinitions = "No definition found for this word."
)

// Definition is one flattened sense: part-of-speech tag, definition text and
// an optional usage example.
type Definition struct {
	PartOfSpeech string
	Text         string
	Example      string
}

// Result holds either the flattened definitions or a terminal status string,
// never both.
type Result struct {
	Definitions []Definition
	Status      string
}

// Render produces the display text for the result.
func (r Result) Render() string {
	if r.Status != "" {
		return r.Status
	}
	lines := make([]string, 0, len(r.Definitions))
	for _, d := range r.Definitions {
		line := fmt.Sprintf("(%s) %s", d.PartOfSpeech, d.Text)
		if d.Example != "" {
			line += fmt.Sprintf("\n  - Example: %q", d.Example)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// Wire shape of a dictionaryapi.dev response: a sequence of entries, each
// with meanings, each with definitions.
type entry struct {
	Meanings []meaning `json:"meanings"`
}

type meaning struct {
	PartOfSpeech string           `json:"partOfSpeech"`
	Definitions  []definitionInfo `json:"definitions"`
}

type definitionInfo struct {
	Definition string `json:"definition"`
	Example    string `json:"example"`
}

type Client struct {
	http *resty.Client
	log  logger.Logger
}

func NewClient(baseURL string, log logger.Logger) *Client {
	httpClient := resty.New()
	httpClient.SetBaseURL(baseURL)

	return &Client{
		http: httpClient,
		log:  log,
	}
}

func (c *Client) Close() error {
	return c.http.Close()
}

// Lookup fetches and flattens the definitions for a word. It never returns
// an error; every failure mode collapses into a terminal Result status that
// is rendered in place of the definitions.
func (c *Client) Lookup(ctx context.Context, word string) Result {
	response, err := c.http.R().
		SetContext(ctx).
		Get("/" + url.PathEscape(word))
	if err != nil {
		c.log.Debug("dictionary", "lookup transport failure", map[string]interface{}{
			"word":  word,
			"error": err.Error(),
		})
		return Result{Status: fmt.Sprintf("An error occurred: %v", err)}
	}
	if response.StatusCode() == http.StatusNotFound {
		return Result{Status: StatusNotFound}
	}
	if response.IsError() {
		return Result{Status: fmt.Sprintf("HTTP error occurred: %d %s", response.StatusCode(), http.StatusText(response.StatusCode()))}
	}

	var entries []entry
	if err := json.Unmarshal([]byte(response.String()), &entries); err != nil {
		return Result{Status: StatusUnparsable}
	}

	definitions := flatten(entries)
	if len(definitions) == 0 {
		return Result{Status: StatusNoDefinitions}
	}
	c.log.Debug("dictionary", "lookup completed", map[string]interface{}{
		"word":        word,
		"definitions": len(definitions),
	})
	return Result{Definitions: definitions}
}

// flatten walks all entries and meanings in source order and produces one
// ordered sequence of definitions. Ordering follows the service's own
// ordering; nothing is re-sorted.
func flatten(entries []entry) []Definition {
	var definitions []Definition
	for _, e := range entries {
		for _, m := range e.Meanings {
			partOfSpeech := m.PartOfSpeech
			if partOfSpeech == "" {
				partOfSpeech = "N/A"
			}
			for _, d := range m.Definitions {
				text := d.Definition
				if text == "" {
					text = "No definition found."
				}
				definitions = append(definitions, Definition{
					PartOfSpeech: partOfSpeech,
					Text:         text,
					Example:      d.Example,
				})
			}
		}
	}
	return definitions
}
