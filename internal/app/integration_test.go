package app_test

import (
	"bufio"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safik-ai/site/internal/app"
	"safik-ai/site/internal/chat"
	"safik-ai/site/internal/config"
	"safik-ai/site/internal/service"
)

// fakeAssistant mimics the question-answering backend. Questions containing
// "fail" get a 500.
func fakeAssistant(t *testing.T) (*httptest.Server, *atomic.Int32) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			w.WriteHeader(http.StatusOK)
			return
		}
		calls.Add(1)
		var req struct {
			Question string `json:"question"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		if strings.Contains(req.Question, "fail") {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"answer":  "You asked: " + req.Question,
			"sources": []string{"services.md"},
		})
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func startSite(t *testing.T) (string, *atomic.Int32) {
	backend, calls := fakeAssistant(t)

	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<h1>Safik AI</h1>"), 0o644))

	a, err := app.NewApp(&config.Config{
		AssistantURL:     backend.URL + "/api/chat",
		AssistantTimeout: 2 * time.Second,
		StaticDir:        staticDir,
		Suggestions:      config.DefaultSuggestions,
	})
	require.NoError(t, err)

	site := httptest.NewServer(a.Server.Handler)
	t.Cleanup(site.Close)
	return site.URL + "/api", calls
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestFullChatWorkflow(t *testing.T) {
	baseAPIURL, calls := startSite(t)
	var sessionID string

	t.Run("CreateSession", func(t *testing.T) {
		resp, err := http.Post(baseAPIURL+"/v1/sessions", "application/json", nil)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		view := decode[service.SessionView](t, resp)
		require.NotEmpty(t, view.ID)
		require.Len(t, view.Messages, 1)
		assert.Equal(t, chat.DefaultGreeting, view.Messages[0].Text)
		sessionID = view.ID
	})

	t.Run("StreamReceivesSnapshot", func(t *testing.T) {
		require.NotEmpty(t, sessionID)
		resp, err := http.Get(baseAPIURL + "/v1/sessions/" + sessionID + "/events")
		require.NoError(t, err)
		defer resp.Body.Close()

		scanner := bufio.NewScanner(resp.Body)
		require.True(t, scanner.Scan())
		line := scanner.Text()
		require.True(t, strings.HasPrefix(line, "data: "), line)

		var state chat.State
		require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &state))
		assert.Len(t, state.Messages, 1)
	})

	t.Run("AskAndWait", func(t *testing.T) {
		body := `{"text":"  What AI services do you offer?  ","wait":true}`
		resp, err := http.Post(baseAPIURL+"/v1/sessions/"+sessionID+"/messages", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		result := decode[service.SubmitResult](t, resp)
		require.NotNil(t, result.Reply)
		assert.Equal(t, "You asked: What AI services do you offer?", result.Reply.Text)
		assert.Equal(t, []string{"services.md"}, result.Reply.Sources)
		assert.Len(t, result.Session.Messages, 3)
		assert.False(t, result.Session.Pending)
	})

	t.Run("BackendFailureShowsFallback", func(t *testing.T) {
		resp, err := http.Post(baseAPIURL+"/v1/sessions/"+sessionID+"/messages", "application/json",
			strings.NewReader(`{"text":"please fail","wait":true}`))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		result := decode[service.SubmitResult](t, resp)
		require.NotNil(t, result.Reply)
		assert.Equal(t, chat.DefaultFallback, result.Reply.Text)
		assert.Empty(t, result.Reply.Sources)
	})

	t.Run("BlankQuestionIsIgnored", func(t *testing.T) {
		before := calls.Load()
		resp, err := http.Post(baseAPIURL+"/v1/sessions/"+sessionID+"/messages", "application/json",
			strings.NewReader(`{"text":"   "}`))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		result := decode[service.SubmitResult](t, resp)
		assert.False(t, result.Accepted)
		assert.Len(t, result.Session.Messages, 5)
		assert.Equal(t, before, calls.Load())
	})

	t.Run("TooLongQuestionIsRejected", func(t *testing.T) {
		body, err := json.Marshal(map[string]string{"text": strings.Repeat("x", 501)})
		require.NoError(t, err)
		resp, err := http.Post(baseAPIURL+"/v1/sessions/"+sessionID+"/messages", "application/json", strings.NewReader(string(body)))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("ClearResetsToGreeting", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodDelete, baseAPIURL+"/v1/sessions/"+sessionID+"/messages", nil)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		view := decode[service.SessionView](t, resp)
		require.Len(t, view.Messages, 1)
		assert.Equal(t, chat.GreetingID, view.Messages[0].ID)
	})

	t.Run("DeleteSessionEndsStream", func(t *testing.T) {
		streamClient := &http.Client{Timeout: 3 * time.Second}
		stream, err := streamClient.Get(baseAPIURL + "/v1/sessions/" + sessionID + "/events")
		require.NoError(t, err)
		defer stream.Body.Close()
		scanner := bufio.NewScanner(stream.Body)
		require.True(t, scanner.Scan(), "expected the initial snapshot")

		req, _ := http.NewRequest(http.MethodDelete, baseAPIURL+"/v1/sessions/"+sessionID, nil)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		for scanner.Scan() {
		}
		assert.NoError(t, scanner.Err(), "stream should end with EOF, not a client timeout")
	})

	t.Run("VerifyDeletion", func(t *testing.T) {
		resp, err := http.Get(baseAPIURL + "/v1/sessions/" + sessionID)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestSiteSurface(t *testing.T) {
	baseAPIURL, _ := startSite(t)
	root := strings.TrimSuffix(baseAPIURL, "/api")

	t.Run("Suggestions", func(t *testing.T) {
		resp, err := http.Get(baseAPIURL + "/v1/suggestions")
		require.NoError(t, err)
		body := decode[map[string][]string](t, resp)
		assert.Equal(t, config.DefaultSuggestions, body["suggestions"])
	})

	t.Run("StaticSite", func(t *testing.T) {
		resp, err := http.Get(root + "/")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Healthz", func(t *testing.T) {
		resp, err := http.Get(root + "/healthz")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("CORSPreflight", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodOptions, baseAPIURL+"/v1/sessions", nil)
		req.Header.Set("Origin", "https://safik.ai")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
		assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), http.MethodPost)
		assert.Equal(t, "300", resp.Header.Get("Access-Control-Max-Age"))
	})

	t.Run("PlainOptionsIsNotAPreflight", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodOptions, baseAPIURL+"/v1/sessions", nil)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Empty(t, resp.Header.Get("Access-Control-Max-Age"))
	})

	t.Run("CORSOnActualRequest", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, baseAPIURL+"/v1/suggestions", nil)
		req.Header.Set("Origin", "https://safik.ai")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	})
}
