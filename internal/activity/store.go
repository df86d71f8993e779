package activity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Store is the Postgres-backed Gateway.
type Store struct {
	DB *gorm.DB
}

var _ Gateway = (*Store)(nil)

func (s *Store) CreateActivity(ctx context.Context, staffID string, in CreateActivityInput) (*Record, error) {
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

	if err := s.DB.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Store) ListActivities(ctx context.Context, f Filter) ([]Record, error) {
	q := s.DB.WithContext(ctx).Model(&Record{})

	if f.ChildID != "" {
		q = q.Where("child_id = ?", f.ChildID)
	}
	if f.Kind != "" {
		q = q.Where("type = ?", f.Kind)
	}
	if f.Search != "" {
		pat := "%" + f.Search + "%"
		q = q.Where("notes ILIKE ? OR details->>'caption' ILIKE ?", pat, pat)
	}

	var rows []Record
	if err := q.Order("timestamp desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
