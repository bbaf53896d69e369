package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multidict/internal/logger"
)

func TestClient_Define_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("key"))
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

		var request generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		require.Len(t, request.Contents, 1)
		require.Len(t, request.Contents[0].Parts, 1)
		prompt := request.Contents[0].Parts[0].Text
		assert.Contains(t, prompt, "'serendipity'")
		assert.Contains(t, prompt, "Don't use markdown syntax.")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Serendipity means a happy accident. Example: Finding that book was pure serendipity."}]}}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-model", "secret", logger.NoOp{})
	defer func() {
		_ = client.Close()
	}()

	result := client.Define(context.Background(), "serendipity")

	assert.Empty(t, result.Err)
	assert.Equal(t, "Serendipity means a happy accident. Example: Finding that book was pure serendipity.", result.Text)
	assert.Equal(t, result.Text, result.Render())
}

func TestClient_Define_SendsEmptyKeyParameter(t *testing.T) {
	var query map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-model", "", logger.NoOp{})
	defer func() {
		_ = client.Close()
	}()

	client.Define(context.Background(), "word")

	// Empty key still rides along; ambient authorization fills it in.
	values, ok := query["key"]
	require.True(t, ok)
	assert.Equal(t, []string{""}, values)
}

func TestClient_Define_MalformedShapes(t *testing.T) {
	// Well-formed JSON with any gap in candidates[0].content.parts[0].text
	// must come back as an error Result carrying the pretty-printed body.
	tests := []struct {
		name string
		body string
	}{
		{name: "Empty object", body: `{}`},
		{name: "Empty candidates list", body: `{"candidates":[]}`},
		{name: "Candidate without content", body: `{"candidates":[{}]}`},
		{name: "Content without parts", body: `{"candidates":[{"content":{}}]}`},
		{name: "Empty parts list", body: `{"candidates":[{"content":{"parts":[]}}]}`},
		{name: "Part without text", body: `{"candidates":[{"content":{"parts":[{}]}}]}`},
		{name: "Empty text", body: `{"candidates":[{"content":{"parts":[{"text":""}]}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, "test-model", "", logger.NoOp{})
			defer func() {
				_ = client.Close()
			}()

			result := client.Define(context.Background(), "word")

			assert.Empty(t, result.Text)
			assert.Contains(t, result.Err, "Error: Unexpected API response format.")
			assert.Contains(t, result.Err, "Raw response:")
			assert.Equal(t, result.Err, result.Render())
		})
	}
}

func TestClient_Define_UndecodableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-model", "", logger.NoOp{})
	defer func() {
		_ = client.Close()
	}()

	result := client.Define(context.Background(), "word")

	assert.Empty(t, result.Text)
	assert.Contains(t, result.Err, "Error parsing the LLM response:")
}

func TestClient_Define_HTTPErrorKeepsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"API key not valid"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-model", "bad-key", logger.NoOp{})
	defer func() {
		_ = client.Close()
	}()

	result := client.Define(context.Background(), "word")

	assert.Empty(t, result.Text)
	assert.Contains(t, result.Err, "An HTTP error occurred: 400 Bad Request")
	assert.Contains(t, result.Err, "API key not valid")
}

func TestClient_Define_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, "test-model", "", logger.NoOp{})
	defer func() {
		_ = client.Close()
	}()

	result := client.Define(context.Background(), "word")

	assert.Empty(t, result.Text)
	assert.Contains(t, result.Err, "A network error occurred while contacting the LLM:")
}

func TestPrettyJSON(t *testing.T) {
	assert.Equal(t, "{\n  \"a\": 1\n}", prettyJSON(`{"a":1}`))
	assert.Equal(t, "not json", prettyJSON("not json"))
}
