package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	app_errors "safik-ai/site/internal/errors"
	"safik-ai/site/internal/interfaces"
	"safik-ai/site/internal/service"
)

// ChatHandler serves the chat widget's session API.
type ChatHandler struct {
	service interfaces.SessionService
}

func NewChatHandler(svc interfaces.SessionService) *ChatHandler {
	return &ChatHandler{service: svc}
}

// GetSuggestions godoc
// @Summary      List suggested questions
// @Description  Returns the questions offered as one-click prompts under the chat.
// @Tags         Chat
// @Produce      json
// @Success      200  {object}  SuggestionsResponse
// @Router       /v1/suggestions [get]
func (h *ChatHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, SuggestionsResponse{Suggestions: h.service.Suggestions(r.Context())})
}

// CreateSession godoc
// @Summary      Mount a chat session
// @Description  Creates a session seeded with the assistant's greeting.
// @Tags         Sessions
// @Produce      json
// @Success      201  {object}  service.SessionView
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/sessions [post]
func (h *ChatHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Create(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, view)
}

// GetSession godoc
// @Summary      Get a chat session
// @Description  Returns the transcript, pending flag and draft of a session.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  service.SessionView
// @Failure      404        {object}  ErrorResponse
// @Router       /v1/sessions/{sessionID} [get]
func (h *ChatHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Get(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, view)
}

// DeleteSession godoc
// @Summary      Unmount a chat session
// @Description  Discards a session and its transcript.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  StatusResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /v1/sessions/{sessionID} [delete]
func (h *ChatHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// SubmitMessage godoc
// @Summary      Ask a question
// @Description  Appends the user's question and forwards it to the assistant. Omitting
// @Description  text submits the current draft. Blank text is ignored (accepted=false).
// @Description  With wait=true the response is sent once the reply has been appended.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string                 true  "Session ID"
// @Param        request    body      service.SubmitRequest  true  "Question"
// @Success      200        {object}  service.SubmitResult   "Settled (wait=true) or ignored"
// @Success      202        {object}  service.SubmitResult   "Accepted, reply pending"
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Failure      409        {object}  ErrorResponse "A question is already pending"
// @Router       /v1/sessions/{sessionID}/messages [post]
func (h *ChatHandler) SubmitMessage(w http.ResponseWriter, r *http.Request) {
	var req service.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request payload", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	result, err := h.service.Submit(r.Context(), chi.URLParam(r, "sessionID"), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}

	status := http.StatusOK
	if result.Accepted && result.Reply == nil {
		status = http.StatusAccepted
	}
	respondWithJSON(w, status, result)
}

// ClearMessages godoc
// @Summary      Clear the transcript
// @Description  Resets the transcript to the greeting. A pending question is not cancelled.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  service.SessionView
// @Failure      404        {object}  ErrorResponse
// @Router       /v1/sessions/{sessionID}/messages [delete]
func (h *ChatHandler) ClearMessages(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Clear(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, view)
}

// UpdateDraft godoc
// @Summary      Update the draft
// @Description  Records the text currently typed in the input box.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string                true  "Session ID"
// @Param        request    body      service.DraftRequest  true  "Draft"
// @Success      200        {object}  service.SessionView
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /v1/sessions/{sessionID}/draft [put]
func (h *ChatHandler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	var req service.DraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request payload", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	view, err := h.service.UpdateDraft(r.Context(), chi.URLParam(r, "sessionID"), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, view)
}

// HandleSessionEvents godoc
// @Summary      Stream session state
// @Description  Server-Sent Events stream of session snapshots, one per change.
// @Tags         Sessions
// @Produce      text/event-stream
// @Param        sessionID  path      string      true  "Session ID"
// @Success      200        {object}  chat.State  "Stream of session snapshots"
// @Failure      404        {object}  ErrorResponse "Sent as a stream error event"
// @Router       /v1/sessions/{sessionID}/events [get]
func (h *ChatHandler) HandleSessionEvents(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	sessionID := chi.URLParam(r, "sessionID")
	updates, cancel, err := h.service.Subscribe(r.Context(), sessionID)
	if err != nil {
		slog.Warn("Could not subscribe to session", "session_id", sessionID, "error", err)
		sendStreamError(w, "Chat session not found")
		return
	}
	defer cancel()

	for {
		select {
		case <-r.Context().Done():
			slog.Debug("Client disconnected from session stream.", "session_id", sessionID)
			return
		case state, ok := <-updates:
			if !ok {
				return
			}
			if err := writeStreamEvent(w, state); err != nil {
				slog.Warn("Could not write to session stream, client likely disconnected.", "error", err)
				return
			}
		}
	}
}
