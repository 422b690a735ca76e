package entity

import (
	"fmt"
	"time"
)

type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// Capability is an action a role may be allowed to perform.
type Capability int

const (
	CapViewLectures Capability = iota
	CapManageLectures
)

var roleCapabilities = map[Role][]Capability{
	RoleMember: {CapViewLectures},
	RoleAdmin:  {CapViewLectures, CapManageLectures},
}

func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return role, nil
}

func (r Role) Valid() bool {
	_, ok := roleCapabilities[r]
	return ok
}

// Can reports whether the role grants capability c.
func (r Role) Can(c Capability) bool {
	for _, granted := range roleCapabilities[r] {
		if granted == c {
			return true
		}
	}
	return false
}

type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Password    string    `json:"-"`
	DisplayName string    `json:"displayName"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Can is nil-safe: an anonymous caller holds no capabilities.
func (u *User) Can(c Capability) bool {
	return u != nil && u.Role.Can(c)
}
