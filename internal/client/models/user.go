// Package models defines the entities the blogview client core operates on:
// users, sessions, posts, form input, and the tagged result returned across
// the UI boundary.
package models

// User is the identity held by the session store. It is synthesized
// client-side on login/registration and never server-verified.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// UserPatch carries a partial user update. Nil fields are left untouched.
type UserPatch struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Username *string `json:"username,omitempty"`
}

// Apply merges the patch into u.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Username != nil {
		u.Username = *p.Username
	}
}
