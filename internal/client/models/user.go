// Package models holds the client-side projections of the records exchanged
// with the play-center API. The server owns the canonical schema; these
// structs carry exactly the fields the views display and the forms submit.
// Record fields are strings on the wire (the backend is CSV-backed).
package models

// Roles recognized by the client.
const (
	RoleAdmin        = "admin"
	RoleStoreManager = "store_manager"
)

// User is a staff account. Password is write-only: it is sent on create or
// change and never redisplayed.
type User struct {
	ID        string `json:"id,omitempty"`
	Username  string `json:"username"`
	Password  string `json:"password,omitempty"`
	FullName  string `json:"fullName,omitempty"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt,omitempty"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// RoleLabel returns the display name for the account's role.
func (u User) RoleLabel() string {
	if u.IsAdmin() {
		return "Administrator"
	}
	return "Store Manager"
}
