// Package llm wraps the Gemini generateContent endpoint behind a synchronous
// define call. Callers decide where it runs; the client itself never spawns
// goroutines and never lets a failure escape as a panic.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"resty.dev/v3"

	"multidict/internal/logger"
)

const promptTemplate = "Provide a clear and concise definition for the word '%s', followed by an example sentence showing its usage. Don't use markdown syntax."

// Result holds either the generated text or a terminal error description,
// never both.
type Result struct {
	Text string
	Err  string
}

// Render produces the display text for the result.
func (r Result) Render() string {
	if r.Err != "" {
		return r.Err
	}
	return r.Text
}

// Request and response wire shapes of the generateContent API.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}

// firstText navigates candidates[0].content.parts[0].text; ok is false when
// any link of that chain is absent or empty.
func (r generateResponse) firstText() (string, bool) {
	if len(r.Candidates) == 0 {
		return "", false
	}
	parts := r.Candidates[0].Content.Parts
	if len(parts) == 0 || parts[0].Text == "" {
		return "", false
	}
	return parts[0].Text, true
}

type Client struct {
	http   *resty.Client
	model  string
	apiKey string
	log    logger.Logger
}

// NewClient builds a client for the given endpoint and model. An empty API
// key is valid: the key query parameter is still sent, and the execution
// environment is expected to authorize the call implicitly.
func NewClient(baseURL, model, apiKey string, log logger.Logger) *Client {
	httpClient := resty.New()
	httpClient.SetBaseURL(baseURL)
	httpClient.SetHeader("Content-Type", "application/json")

	return &Client{
		http:   httpClient,
		model:  model,
		apiKey: apiKey,
		log:    log,
	}
}

func (c *Client) Close() error {
	return c.http.Close()
}

// Define asks the model for a concise definition plus example sentence. It
// always returns a Result: every transport, status, parse and shape failure
// is folded into Result.Err, and a deferred recover guarantees that nothing
// escapes the call.
func (c *Client) Define(ctx context.Context, word string) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = Result{Err: fmt.Sprintf("An unexpected error occurred: %v", r)}
		}
	}()

	payload := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: fmt.Sprintf(promptTemplate, word)}}},
		},
	}

	response, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(payload).
		Post("/models/" + c.model + ":generateContent")
	if err != nil {
		c.log.Debug("llm", "define transport failure", map[string]interface{}{
			"word":  word,
			"error": err.Error(),
		})
		return Result{Err: fmt.Sprintf("A network error occurred while contacting the LLM: %v", err)}
	}

	body := response.String()
	if response.IsError() {
		// The body often carries the provider's explanation, so keep it.
		return Result{Err: fmt.Sprintf("An HTTP error occurred: %d %s\nResponse: %s",
			response.StatusCode(), http.StatusText(response.StatusCode()), body)}
	}

	var decoded generateResponse
	if err := json.Unmarshal([]byte(body), &decoded); err != nil {
		return Result{Err: fmt.Sprintf("Error parsing the LLM response: %v", err)}
	}

	text, ok := decoded.firstText()
	if !ok {
		return Result{Err: fmt.Sprintf("Error: Unexpected API response format.\n\nRaw response:\n%s", prettyJSON(body))}
	}
	c.log.Debug("llm", "define completed", map[string]interface{}{
		"word":  word,
		"chars": len(text),
	})
	return Result{Text: text}
}

// prettyJSON re-indents a JSON document for diagnostics, falling back to the
// raw text when it cannot be decoded.
func prettyJSON(raw string) string {
	var value interface{}
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return raw
	}
	pretty, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return raw
	}
	return string(pretty)
}
