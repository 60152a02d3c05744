package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUnconfigured(t *testing.T) {
	c := NewClient("", "gemini-pro", time.Second)
	assert.False(t, c.Configured())

	text, err := c.Generate(context.Background(), "hello", "en", "casual")
	require.NoError(t, err)
	assert.Contains(t, text, "hello")
}

func TestGenerate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-pro:generateContent", r.URL.Path)
		assert.Equal(t, "key1", r.URL.Query().Get("key"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Contains(t, req.Contents[0].Parts[0].Text, "my prompt")

		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"result text"}]}}]}`))
	}))
	defer ts.Close()

	c := NewClient("key1", "gemini-pro", time.Second)
	c.baseURL = ts.URL

	text, err := c.Generate(context.Background(), "my prompt", "en", "formal")
	require.NoError(t, err)
	assert.Equal(t, "result text", text)
}

func TestGenerateAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"invalid key"}}`))
	}))
	defer ts.Close()

	c := NewClient("bad", "gemini-pro", time.Second)
	c.baseURL = ts.URL

	_, err := c.Generate(context.Background(), "p", "en", "formal")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid key")
}

func TestGenerateEmptyCandidates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer ts.Close()

	c := NewClient("k", "gemini-pro", time.Second)
	c.baseURL = ts.URL

	_, err := c.Generate(context.Background(), "p", "en", "formal")
	require.Error(t, err)
}
