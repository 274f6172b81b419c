package model

// Category domain object defining a topic from the fixed taxonomy. Events are
// tagged with zero or more categories via the event_categories join table.
// swagger:model
type Category struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"index;unique;not null" json:"name"`
}
