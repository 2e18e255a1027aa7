// Package models defines the wire-level data types exchanged with the
// TravelLog backend.
package models

// Role enumerates the access levels a user account can hold.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is the canonical account shape. Email identifies the account and is
// never editable from the client; Role defaults to RoleUser when absent.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
	Bio    string `json:"bio,omitempty"`
	Role   Role   `json:"role,omitempty"`
}

// EffectiveRole resolves an unset role to RoleUser.
func (u User) EffectiveRole() Role {
	if u.Role == "" {
		return RoleUser
	}
	return u.Role
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.EffectiveRole() == RoleAdmin
}

// UserPatch is a partial profile update. Nil fields are left untouched.
// Email is deliberately absent: it cannot change client-side.
type UserPatch struct {
	Name   *string `json:"name,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
	Bio    *string `json:"bio,omitempty"`
}

// Merge applies the patch to a copy of u and returns the result.
func (u User) Merge(p UserPatch) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	return u
}
