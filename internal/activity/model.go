package activity

import (
	"encoding/json"
	"time"

	"github.com/lib/pq"
)

// Record is the persisted envelope around one logged activity. Records are
// written once at submission and never updated or deleted.
type Record struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	ChildID string `gorm:"type:uuid;index;not null" json:"child_id"`
	Type    Kind   `gorm:"type:text;not null" json:"type"`
	Notes   string `gorm:"type:text;not null;default:''" json:"notes"`
	StaffID string `gorm:"type:uuid;not null" json:"staff_id"`

	// MediaURLs stays NULL when no upload succeeded. Readers rely on the
	// distinction between "no media" and an empty list.
	MediaURLs pq.StringArray `gorm:"type:text[]" json:"media_urls,omitempty"`

	Details   json.RawMessage `gorm:"type:jsonb;not null;default:'{}'::jsonb" json:"details"`
	Timestamp time.Time       `gorm:"index;not null" json:"timestamp"`
}

func (Record) TableName() string { return "activities" }

// Detail decodes the stored details column into the variant for this
// record's kind.
func (r Record) Detail() (Detail, error) {
	return DecodeDetail(r.Type, r.Details)
}
