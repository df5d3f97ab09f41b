// Package chat holds the client-side conversation state of one chat widget:
// the ordered transcript, the draft being typed and the single in-flight
// question. Every front end (the web API and the terminal client) drives the
// same Session and renders from its State snapshots.
package chat

import "slices"

// Sender identifies who authored a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// GreetingID is the fixed ID of the seeded greeting message.
const GreetingID = "init"

const (
	// DefaultGreeting is the bot message every session starts with.
	DefaultGreeting = "Hello! I'm the Safik AI assistant. I can help you learn about our AI services, pricing, case studies, and answer questions about our company. What would you like to know?"

	// DefaultFallback replaces the answer whenever the backend call fails.
	DefaultFallback = "I apologize, but I'm currently unable to process your request. Please try again in a moment."
)

// Message is a single entry of the transcript.
type Message struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Sender  Sender   `json:"sender"`
	Sources []string `json:"sources,omitempty"`
}

// HasSources reports whether the message carries source tags.
func (m Message) HasSources() bool {
	return len(m.Sources) > 0
}

func (m Message) clone() Message {
	m.Sources = slices.Clone(m.Sources)
	return m
}

// State is an immutable snapshot of a Session.
type State struct {
	Messages []Message `json:"messages"`
	Pending  bool      `json:"pending"`
	Draft    string    `json:"draft"`
}

// Last returns the most recent message. A State always has at least one.
func (s State) Last() Message {
	return s.Messages[len(s.Messages)-1]
}
