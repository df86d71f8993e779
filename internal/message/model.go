package message

import "time"

type Role string

const (
	RoleStaff  Role = "staff"
	RoleParent Role = "parent"
)

// Message is one inbox entry. Sender is a display name rather than a
// foreign key: parents do not have accounts in this system.
type Message struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Sender    string    `gorm:"type:text;not null" json:"sender"`
	Role      Role      `gorm:"type:text;not null;default:'staff'" json:"role"`
	Subject   string    `gorm:"type:text;not null" json:"subject"`
	Body      string    `gorm:"type:text;not null;default:''" json:"body"`
	Read      bool      `gorm:"not null;default:false" json:"read"`
	CreatedAt time.Time `gorm:"index;not null" json:"created_at"`
}

func (Message) TableName() string { return "messages" }
