package attendance

import "time"

// Record is one check-in, closed later by a check-out. CheckOut stays NULL
// while the child is in the building.
type Record struct {
	ID           string     `gorm:"type:uuid;primaryKey" json:"id"`
	ChildID      string     `gorm:"type:uuid;index;not null" json:"child_id"`
	CheckIn      time.Time  `gorm:"index;not null" json:"check_in"`
	CheckOut     *time.Time `json:"check_out"`
	CheckedInBy  string     `gorm:"type:uuid;not null" json:"checked_in_by"`
	CheckedOutBy *string    `gorm:"type:uuid" json:"checked_out_by"`
}

func (Record) TableName() string { return "attendance_records" }

// Stats summarizes one day for a classroom (or the whole center).
type Stats struct {
	Total      int `json:"total"`
	Present    int `json:"present"`
	CheckedOut int `json:"checked_out"`
	Absent     int `json:"absent"`
}
