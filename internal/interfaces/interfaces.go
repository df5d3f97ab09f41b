package interfaces

import (
	"context"
	"time"

	"safik-ai/site/internal/chat"
	"safik-ai/site/internal/service"
)

// This file defines the interfaces for our core services.
// The API layer depends on these instead of concrete implementations so
// handlers can be tested against mocks.

// SessionService defines the contract for managing chat widget sessions.
type SessionService interface {
	Create(ctx context.Context) (*service.SessionView, error)
	Get(ctx context.Context, sessionID string) (*service.SessionView, error)
	Delete(ctx context.Context, sessionID string) error
	Submit(ctx context.Context, sessionID string, req *service.SubmitRequest) (*service.SubmitResult, error)
	Clear(ctx context.Context, sessionID string) (*service.SessionView, error)
	UpdateDraft(ctx context.Context, sessionID string, req *service.DraftRequest) (*service.SessionView, error)
	Subscribe(ctx context.Context, sessionID string) (<-chan chat.State, func(), error)
	Suggestions(ctx context.Context) []string
}

// SessionPruner discards abandoned sessions.
type SessionPruner interface {
	Prune(ctx context.Context, maxIdle time.Duration) int
}

var (
	_ SessionService = (*service.SessionService)(nil)
	_ SessionPruner  = (*service.SessionService)(nil)
)
