package model

import "time"

// Comment domain object defining a user comment on an event. Comments are
// append-only and deletable only by their author.
// swagger:model
type Comment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	EventID   uint      `gorm:"index;not null" json:"eventId"`
	Event     *Event    `json:"-"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	User      *User     `json:"user,omitempty"`
	Content   string    `gorm:"not null" json:"content"`
}
