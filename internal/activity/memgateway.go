package activity

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// MemGateway keeps records in memory with the same filter semantics as the
// Postgres store. It backs handler tests and makes local development work
// without a database.
type MemGateway struct {
	mu   sync.Mutex
	recs []Record
}

var _ Gateway = (*MemGateway)(nil)

func (m *MemGateway) CreateActivity(_ context.Context, staffID string, in CreateActivityInput) (*Record, error) {
	if !in.Kind.Valid() {
		return nil, ErrInvalidKind
	}
	detail := in.Detail
	if detail == nil {
		d, err := EmptyDetail(in.Kind)
		if err != nil {
			return nil, err
		}
		detail = d
	}
	raw, err := EncodeDetail(detail)
	if err != nil {
		return nil, err
	}

	rec := Record{
		ID:        uuid.NewString(),
		ChildID:   in.ChildID,
		Type:      in.Kind,
		Notes:     in.Notes,
		StaffID:   staffID,
		Details:   raw,
		Timestamp: time.Now().UTC(),
	}
	if len(in.MediaURLs) > 0 {
		rec.MediaURLs = pq.StringArray(in.MediaURLs)
	}

	m.mu.Lock()
	m.recs = append(m.recs, rec)
	m.mu.Unlock()
	return &rec, nil
}

func (m *MemGateway) ListActivities(_ context.Context, f Filter) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Record, 0, len(m.recs))
	for _, r := range m.recs {
		if f.ChildID != "" && r.ChildID != f.ChildID {
			continue
		}
		if f.Kind != "" && r.Type != f.Kind {
			continue
		}
		if f.Search != "" {
			needle := strings.ToLower(f.Search)
			notes := strings.ToLower(r.Notes)
			caption := strings.ToLower(Caption(r.Details))
			if !strings.Contains(notes, needle) && !strings.Contains(caption, needle) {
				continue
			}
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}
