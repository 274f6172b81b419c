package model

import "time"

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// Company domain object defining an event-publishing company. Events can only
// be published once an administrator has verified the company.
// swagger:model
type Company struct {
	ID                 uint               `gorm:"primarykey" json:"id"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
	UserID             uint               `gorm:"index;unique" json:"userId"`
	User               *User              `json:"-"`
	Name               string             `gorm:"not null" json:"name"`
	Description        string             `json:"description"`
	ContactEmail       string             `json:"contactEmail"`
	ContactPhone       string             `json:"contactPhone"`
	LogoKey            string             `json:"-"`
	LogoURL            string             `gorm:"-" json:"logoUrl,omitempty"`
	VerificationStatus VerificationStatus `gorm:"default:'pending'" json:"verificationStatus"`
}

func (c *Company) IsVerified() bool {
	return c.VerificationStatus == VerificationVerified
}
