package notification

import "time"

// Notification is an in-app message created as a side effect of submission
// and status-transition events. Only IsRead ever changes after creation.
type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Message   string    `json:"message" gorm:"size:512;not null"`
	Link      string    `json:"link" gorm:"size:255"`
	IsRead    bool      `json:"isRead" gorm:"default:false;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}

type MarkReadInput struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}
