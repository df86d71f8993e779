package activity

import (
	"context"
	"errors"
)

var (
	ErrNotConfigured = errors.New("activity store not configured")
	ErrInvalidKind   = errors.New("invalid activity kind")
)

// CreateActivityInput carries everything the store needs to persist one
// record. The store assigns the id and the timestamp already sits in the
// input (set by the composer at submit time).
type CreateActivityInput struct {
	ChildID   string
	Kind      Kind
	Notes     string
	MediaURLs []string // nil when no upload succeeded
	Detail    Detail
}

// Filter narrows ListActivities. Zero values mean "any". Search matches
// case-insensitively against the envelope notes and the detail caption.
type Filter struct {
	ChildID string
	Kind    Kind
	Search  string
}

// Gateway is the store boundary for activity records. Implementations fail
// closed: every error means "operation not performed", never a partial
// write, and nothing panics across this boundary.
type Gateway interface {
	CreateActivity(ctx context.Context, staffID string, in CreateActivityInput) (*Record, error)
	ListActivities(ctx context.Context, f Filter) ([]Record, error)
}

// Unconfigured is the gateway used when no backend is configured. Every
// operation reports ErrNotConfigured so callers can render the advisory
// state instead of mistaking absence for an empty result.
type Unconfigured struct{}

func (Unconfigured) CreateActivity(context.Context, string, CreateActivityInput) (*Record, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) ListActivities(context.Context, Filter) ([]Record, error) {
	return nil, ErrNotConfigured
}
