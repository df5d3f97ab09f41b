package chat

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"safik-ai/site/internal/assistant"
)

// Session is the controller behind one chat view. It is safe for concurrent
// use; mutations are serialised so a settling reply never interleaves with a
// second Submit.
type Session struct {
	asker    assistant.Asker
	greeting string
	fallback string
	newID    func() string
	now      func() time.Time
	logger   *slog.Logger

	mu           sync.Mutex
	messages     []Message
	pending      bool
	draft        string
	lastActivity time.Time
	subscribers  map[int]chan State
	nextSub      int
	closed       bool
}

// Option configures a Session.
type Option func(*Session)

// WithGreeting overrides the seeded bot greeting.
func WithGreeting(text string) Option {
	return func(s *Session) {
		if strings.TrimSpace(text) != "" {
			s.greeting = text
		}
	}
}

// WithFallback overrides the text shown when the backend call fails.
func WithFallback(text string) Option {
	return func(s *Session) {
		if strings.TrimSpace(text) != "" {
			s.fallback = text
		}
	}
}

// WithIDGenerator replaces the message ID source (uuid by default).
func WithIDGenerator(fn func() string) Option {
	return func(s *Session) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithClock sets the time source used for activity tracking.
func WithClock(fn func() time.Time) Option {
	return func(s *Session) {
		if fn != nil {
			s.now = fn
		}
	}
}

// WithLogger sets the logger used for failed backend calls.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a session seeded with the greeting message.
func New(asker assistant.Asker, opts ...Option) *Session {
	s := &Session{
		asker:       asker,
		greeting:    DefaultGreeting,
		fallback:    DefaultFallback,
		newID:       uuid.NewString,
		now:         time.Now,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		subscribers: make(map[int]chan State),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.messages = s.seed()
	s.lastActivity = s.now()
	return s
}

func (s *Session) seed() []Message {
	return []Message{{ID: GreetingID, Text: s.greeting, Sender: SenderBot}}
}

// Submit sends text as a question. It is a no-op, returning (nil, false), when
// the trimmed text is empty or another question is still pending. Otherwise it
// appends the user message, clears the draft and asks the backend in the
// background. The returned channel yields the bot message appended on
// settlement and is then closed.
//
// ctx governs only the backend call. Callers whose context ends with the
// request (HTTP handlers) should detach it with context.WithoutCancel.
func (s *Session) Submit(ctx context.Context, text string) (<-chan Message, bool) {
	question := strings.TrimSpace(text)
	if question == "" {
		return nil, false
	}

	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		s.logger.Debug("Submit rejected, a question is already pending")
		return nil, false
	}
	s.messages = append(s.messages, Message{ID: s.newID(), Text: question, Sender: SenderUser})
	s.pending = true
	s.draft = ""
	s.touch()
	s.publish()
	s.mu.Unlock()

	done := make(chan Message, 1)
	go s.settle(ctx, question, done)
	return done, true
}

// SubmitDraft submits the current draft.
func (s *Session) SubmitDraft(ctx context.Context) (<-chan Message, bool) {
	s.mu.Lock()
	draft := s.draft
	s.mu.Unlock()
	return s.Submit(ctx, draft)
}

func (s *Session) settle(ctx context.Context, question string, done chan<- Message) {
	defer close(done)

	reply := Message{Sender: SenderBot, Text: s.fallback}
	answer, err := s.asker.Ask(ctx, question)
	switch {
	case err != nil:
		s.logger.Warn("Assistant request failed, showing fallback", "error", err)
	case answer == nil:
		s.logger.Warn("Assistant returned no answer, showing fallback")
	default:
		reply.Text = answer.Text
		if len(answer.Sources) > 0 {
			reply.Sources = append([]string(nil), answer.Sources...)
		}
	}

	s.mu.Lock()
	reply.ID = s.newID()
	s.messages = append(s.messages, reply)
	s.pending = false
	s.touch()
	s.publish()
	s.mu.Unlock()

	done <- reply.clone()
}

// Clear resets the transcript to the seeded greeting. A pending question is
// not cancelled; its reply is appended to the cleared transcript.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = s.seed()
	s.touch()
	s.publish()
}

// UpdateDraft records the text currently being typed.
func (s *Session) UpdateDraft(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = text
	s.touch()
	s.publish()
}

// Pending reports whether a question is in flight.
func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// State returns a deep copy of the current session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// LastActivity returns the time of the most recent mutation.
func (s *Session) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

// Subscribe returns a feed of snapshots, starting with the current state.
// Slow readers only ever see the latest snapshot. The cancel func must be
// called to release the subscription; it closes the channel. The feed of a
// closed session is closed immediately.
func (s *Session) Subscribe() (<-chan State, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan State, 1)
	if s.closed {
		close(ch)
		return ch, func() {}
	}

	id := s.nextSub
	s.nextSub++
	ch <- s.snapshot()
	s.subscribers[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.unsubscribe(id)
	}
	return ch, cancel
}

// Close ends every subscription. It is called when the session is discarded;
// a pending question still settles but is no longer published.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for id := range s.subscribers {
		s.unsubscribe(id)
	}
}

// unsubscribe must be called with s.mu held.
func (s *Session) unsubscribe(id int) {
	if ch, ok := s.subscribers[id]; ok {
		delete(s.subscribers, id)
		close(ch)
	}
}

// snapshot must be called with s.mu held.
func (s *Session) snapshot() State {
	msgs := make([]Message, len(s.messages))
	for i, m := range s.messages {
		msgs[i] = m.clone()
	}
	return State{Messages: msgs, Pending: s.pending, Draft: s.draft}
}

// publish must be called with s.mu held. Only publish sends on subscriber
// channels, so replacing a stale snapshot never blocks.
func (s *Session) publish() {
	if len(s.subscribers) == 0 {
		return
	}
	state := s.snapshot()
	for _, ch := range s.subscribers {
		select {
		case <-ch:
		default:
		}
		ch <- state
	}
}

// touch must be called with s.mu held.
func (s *Session) touch() {
	s.lastActivity = s.now()
}
