package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"safik-ai/site/internal/assistant"
	"safik-ai/site/internal/chat"
	app_errors "safik-ai/site/internal/errors"
)

// SubmitRequest is the payload for asking a question in a session.
// A nil Text submits the session's current draft.
type SubmitRequest struct {
	Text *string `json:"text,omitempty" validate:"omitempty,max=500" example:"What AI services do you offer?"`
	Wait bool    `json:"wait" example:"false"`
}

// DraftRequest is the payload for updating the text being typed.
type DraftRequest struct {
	Text string `json:"text" validate:"max=500" example:"Tell me about"`
}

// SessionView is a session snapshot together with its identifier.
type SessionView struct {
	ID string `json:"id"`
	chat.State
}

// SubmitResult reports the outcome of a submission. Accepted is false when the
// text was blank. Reply is set only when the caller waited for settlement.
type SubmitResult struct {
	Accepted bool          `json:"accepted"`
	Session  SessionView   `json:"session"`
	Reply    *chat.Message `json:"reply,omitempty"`
}

// SessionOptions configures every session the service creates.
type SessionOptions struct {
	Greeting    string
	Fallback    string
	Suggestions []string
	// Now is the clock used for idle tracking; time.Now when nil.
	Now func() time.Time
}

// SessionService keeps the live chat sessions of the web widget in memory.
// Sessions exist from mount to unmount (or until pruned); nothing is persisted.
type SessionService struct {
	asker      assistant.Asker
	opts       SessionOptions
	logger     *slog.Logger
	now        func() time.Time
	newSession func() *chat.Session
	mu         sync.RWMutex
	sessions   map[string]*chat.Session
}

// NewSessionService creates a registry whose sessions ask questions via asker.
func NewSessionService(asker assistant.Asker, opts SessionOptions) *SessionService {
	s := &SessionService{
		asker:    asker,
		opts:     opts,
		logger:   slog.Default(),
		now:      time.Now,
		sessions: make(map[string]*chat.Session),
	}
	if opts.Now != nil {
		s.now = opts.Now
	}
	s.newSession = func() *chat.Session {
		return chat.New(s.asker,
			chat.WithGreeting(s.opts.Greeting),
			chat.WithFallback(s.opts.Fallback),
			chat.WithLogger(s.logger),
			chat.WithClock(s.now),
		)
	}
	return s
}

// Create mounts a new session seeded with the greeting.
func (s *SessionService) Create(ctx context.Context) (*SessionView, error) {
	id := uuid.NewString()
	session := s.newSession()

	s.mu.Lock()
	s.sessions[id] = session
	total := len(s.sessions)
	s.mu.Unlock()

	slog.DebugContext(ctx, "Created chat session", "session_id", id, "live_sessions", total)
	return &SessionView{ID: id, State: session.State()}, nil
}

// Get returns the current state of a session.
func (s *SessionService) Get(ctx context.Context, sessionID string) (*SessionView, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	return &SessionView{ID: sessionID, State: session.State()}, nil
}

// Delete unmounts a session and ends its event streams. A pending question
// still settles, into a session nobody can reach any more.
func (s *SessionService) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: session %s", app_errors.ErrNotFound, sessionID)
	}
	session.Close()
	slog.DebugContext(ctx, "Deleted chat session", "session_id", sessionID)
	return nil
}

// Submit asks a question in a session. Blank text is accepted as a no-op
// (Accepted=false); a submission while another question is pending returns
// ErrConflict. With req.Wait the call blocks until the reply is appended or
// ctx ends.
func (s *SessionService) Submit(ctx context.Context, sessionID string, req *SubmitRequest) (*SubmitResult, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	var text string
	if req.Text != nil {
		text = *req.Text
	} else {
		text = session.State().Draft
	}
	if strings.TrimSpace(text) == "" {
		return &SubmitResult{Accepted: false, Session: SessionView{ID: sessionID, State: session.State()}}, nil
	}

	// The backend call must outlive the HTTP request that triggered it.
	done, ok := session.Submit(context.WithoutCancel(ctx), text)
	if !ok {
		return nil, fmt.Errorf("%w: a question is already pending in session %s", app_errors.ErrConflict, sessionID)
	}
	slog.InfoContext(ctx, "Question submitted", "session_id", sessionID, "length", len(text))

	result := &SubmitResult{Accepted: true}
	if req.Wait {
		select {
		case reply := <-done:
			result.Reply = &reply
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for reply in session %s: %w", sessionID, ctx.Err())
		}
	}
	result.Session = SessionView{ID: sessionID, State: session.State()}
	return result, nil
}

// Clear resets a session's transcript to the greeting.
func (s *SessionService) Clear(ctx context.Context, sessionID string) (*SessionView, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	session.Clear()
	return &SessionView{ID: sessionID, State: session.State()}, nil
}

// UpdateDraft records the text being typed in a session.
func (s *SessionService) UpdateDraft(ctx context.Context, sessionID string, req *DraftRequest) (*SessionView, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	session.UpdateDraft(req.Text)
	return &SessionView{ID: sessionID, State: session.State()}, nil
}

// Subscribe streams state snapshots of a session until cancel is called.
func (s *SessionService) Subscribe(ctx context.Context, sessionID string) (<-chan chat.State, func(), error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, nil, err
	}
	updates, cancel := session.Subscribe()
	return updates, cancel, nil
}

// Suggestions returns the suggested questions shown under the transcript.
func (s *SessionService) Suggestions(ctx context.Context) []string {
	return slices.Clone(s.opts.Suggestions)
}

// Prune discards sessions idle for longer than maxIdle, e.g. browser tabs
// that were closed without unmounting. Sessions with a pending question are
// kept. It returns the number of sessions removed.
func (s *SessionService) Prune(ctx context.Context, maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if session.Pending() || session.LastActivity().After(cutoff) {
			continue
		}
		delete(s.sessions, id)
		session.Close()
		removed++
	}
	if removed > 0 {
		slog.InfoContext(ctx, "Pruned idle chat sessions", "removed", removed, "live_sessions", len(s.sessions))
	}
	return removed
}

// Count returns the number of live sessions.
func (s *SessionService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *SessionService) lookup(sessionID string) (*chat.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: session %s", app_errors.ErrNotFound, sessionID)
	}
	return session, nil
}
