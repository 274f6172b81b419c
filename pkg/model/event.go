package model

import "time"

// Event domain object defining a published event
// swagger:model
type Event struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	Title       string     `gorm:"not null" json:"title"`
	Slug        string     `gorm:"index" json:"slug"`
	Description string     `gorm:"not null" json:"description"`
	Location    string     `gorm:"not null" json:"location"`
	StartTime   time.Time  `gorm:"not null;index" json:"startTime"`
	EndTime     time.Time  `gorm:"not null" json:"endTime"`
	Capacity    *int       `json:"capacity,omitempty"`
	ImageKey    string     `json:"-"`
	ImageURL    string     `gorm:"-" json:"imageUrl,omitempty"`
	CompanyID   uint       `gorm:"index;not null" json:"companyId"`
	Company     *Company   `json:"company,omitempty"`
	Categories  []Category `gorm:"many2many:event_categories;constraint:OnDelete:CASCADE" json:"categories,omitempty"`
}
