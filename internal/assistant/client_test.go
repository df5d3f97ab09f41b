package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app_errors "safik-ai/site/internal/errors"
)

// TestClient_Ask exercises the HTTP client against a mock backend.
//
// TECHNIQUE: `httptest.NewServer` stands in for the question-answering
// service, so each case controls exactly what status and body come back.
func TestClient_Ask(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - answer with sources", func(t *testing.T) {
		var captured Request
		var capturedMethod, capturedContentType string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			capturedMethod = r.Method
			capturedContentType = r.Header.Get("Content-Type")
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			w.Header().Set("Content-Type", "application/json")
			_, err := w.Write([]byte(`{"answer":"We offer RAG systems...","sources":["services.md"]}`))
			assert.NoError(t, err)
		}))
		defer server.Close()

		// ACT
		answer, err := NewClient(server.URL + "/api/chat").Ask(ctx, "What AI services do you offer?")

		// ASSERT
		require.NoError(t, err)
		assert.Equal(t, "We offer RAG systems...", answer.Text)
		assert.Equal(t, []string{"services.md"}, answer.Sources)
		assert.Equal(t, http.MethodPost, capturedMethod)
		assert.Equal(t, "application/json", capturedContentType)
		assert.Equal(t, "What AI services do you offer?", captured.Question)
	})

	t.Run("Success - empty sources normalised to nil", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"answer":"hi","sources":[]}`))
		}))
		defer server.Close()

		answer, err := NewClient(server.URL).Ask(ctx, "hello")
		require.NoError(t, err)
		assert.Equal(t, "hi", answer.Text)
		assert.Nil(t, answer.Sources)
	})

	failures := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "Failure - server error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "Failure - malformed JSON",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"answer":`))
			},
		},
		{
			name: "Failure - missing answer field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"sources":["a"]}`))
			},
		},
		{
			name: "Failure - bad request from validation",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"detail":"Question too long (max 500 characters)"}`))
			},
		},
	}
	for _, tc := range failures {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			answer, err := NewClient(server.URL).Ask(ctx, "hello")
			require.Error(t, err)
			assert.Nil(t, answer)
			assert.ErrorIs(t, err, app_errors.ErrUnavailable)
		})
	}

	t.Run("Failure - transport error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		_, err := NewClient(url).Ask(ctx, "hello")
		assert.ErrorIs(t, err, app_errors.ErrUnavailable)
	})

	t.Run("Failure - transport timeout", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer server.Close()
		defer close(release)

		_, err := NewClient(server.URL, WithTimeout(50*time.Millisecond)).Ask(ctx, "hello")
		assert.ErrorIs(t, err, app_errors.ErrUnavailable)
	})
}

func TestClient_Health(t *testing.T) {
	var capturedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		_, _ = w.Write([]byte(`{"status":"online"}`))
	}))
	defer server.Close()

	err := NewClient(server.URL + "/api/chat").Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/", capturedPath)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abc", 2))
	assert.Equal(t, "héé", truncate("hééllo", 3))
}
