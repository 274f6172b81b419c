package model

import (
	"context"
	"time"
)

type Role string

const (
	RoleUser          Role = "user"
	RoleCompany       Role = "company"
	RoleAdministrator Role = "admin"
)

// roleGrants is the precomputed reachability table of the role hierarchy
// admin ⊇ company ⊇ user. A role satisfies a requirement iff the requirement
// appears in its grant set.
var roleGrants = map[Role][]Role{
	RoleUser:          {RoleUser},
	RoleCompany:       {RoleCompany, RoleUser},
	RoleAdministrator: {RoleAdministrator, RoleCompany, RoleUser},
}

// RoleSatisfies reports whether actual grants the permissions of required.
// Unknown roles satisfy nothing.
func RoleSatisfies(actual, required Role) bool {
	for _, granted := range roleGrants[actual] {
		if granted == required {
			return true
		}
	}
	return false
}

// User domain object defining a user
// swagger:model
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `gorm:"index;unique" json:"email"`
	Password  string    `json:"-"`
	Role      Role      `gorm:"default:'user'" json:"role"`
}

func (u *User) IsAdministrator() bool {
	return u.Role == RoleAdministrator
}

func (u *User) Name() string {
	return u.FirstName + " " + u.LastName
}

type userContextKey int

var userKey userContextKey

// NewContextWithUser returns a new context carrying the authenticated user.
func NewContextWithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext returns the user stored in ctx, if any. It had to have
// been set by the authentication middleware before.
func GetUserFromContext(ctx context.Context) (*User, bool) {
	user, ok := ctx.Value(userKey).(*User)
	return user, ok
}
