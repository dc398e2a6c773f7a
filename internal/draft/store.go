// Package draft persists the request the user is currently editing so it
// survives restarts. Only one draft is kept.
package draft

import (
	"context"
	"errors"
	"time"

	"github.com/artpar/auweb/internal/core"
)

// Common errors.
var (
	ErrStoreClosed = errors.New("draft store is closed")
	ErrNotFound    = errors.New("no saved draft")
)

// Draft is the editable request state.
type Draft struct {
	URL       string
	Method    core.Method
	Headers   string
	Body      string
	Highlight string
	SavedAt   time.Time
}

// Store defines draft persistence.
type Store interface {
	// Load returns the saved draft or ErrNotFound.
	Load(ctx context.Context) (*Draft, error)

	// Save replaces the saved draft.
	Save(ctx context.Context, d *Draft) error

	// Clear removes the saved draft.
	Clear(ctx context.Context) error

	// Close closes the store.
	Close() error
}
