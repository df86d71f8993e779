package child

import (
	"time"

	"github.com/lib/pq"
)

type Child struct {
	ID          string         `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName   string         `gorm:"type:text;not null" json:"first_name"`
	LastName    string         `gorm:"type:text;not null" json:"last_name"`
	DateOfBirth time.Time      `gorm:"not null" json:"date_of_birth"`
	Classroom   string         `gorm:"type:text;index;not null;default:''" json:"classroom"`
	Allergies   pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"allergies"`
	PhotoURL    string         `gorm:"type:text;not null;default:''" json:"photo_url"`
	CreatedAt   time.Time      `gorm:"not null" json:"created_at"`

	Guardians   []Guardian   `gorm:"foreignKey:ChildID" json:"guardians,omitempty"`
	Medications []Medication `gorm:"foreignKey:ChildID" json:"medications,omitempty"`
}

func (Child) TableName() string { return "children" }

type Guardian struct {
	ID                 string `gorm:"type:uuid;primaryKey" json:"id"`
	ChildID            string `gorm:"type:uuid;index;not null" json:"child_id"`
	FirstName          string `gorm:"type:text;not null" json:"first_name"`
	LastName           string `gorm:"type:text;not null" json:"last_name"`
	Relationship       string `gorm:"type:text;not null;default:''" json:"relationship"`
	Phone              string `gorm:"type:text;not null;default:''" json:"phone"`
	Email              string `gorm:"type:text;not null;default:''" json:"email"`
	IsEmergencyContact bool   `gorm:"not null;default:false" json:"is_emergency_contact"`
}

// Medication is a standing prescription on a child's profile, distinct from
// the activity log entry written each time a dose is given.
type Medication struct {
	ID               string     `gorm:"type:uuid;primaryKey" json:"id"`
	ChildID          string     `gorm:"type:uuid;index;not null" json:"child_id"`
	Name             string     `gorm:"type:text;not null" json:"name"`
	Dosage           string     `gorm:"type:text;not null;default:''" json:"dosage"`
	Frequency        string     `gorm:"type:text;not null;default:''" json:"frequency"`
	StartDate        *time.Time `json:"start_date"`
	EndDate          *time.Time `json:"end_date"`
	Instructions     string     `gorm:"type:text;not null;default:''" json:"instructions"`
	LastAdministered *time.Time `json:"last_administered"`
	LastNotified     *time.Time `json:"last_notified"`
}
