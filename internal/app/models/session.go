package models

// Identity is the user record attached to an authenticated session.
type Identity struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}

// Session answers "is an admin currently considered logged in".
// Identity is non-nil exactly when Authenticated is true.
type Session struct {
	Authenticated bool      `json:"authenticated"`
	Identity      *Identity `json:"identity,omitempty"`
}

// RoleAdmin is the only role the site knows about.
const RoleAdmin = "admin"

// PlaceholderIdentity is handed out by every successful demo login.
var PlaceholderIdentity = Identity{
	ID:          "1",
	DisplayName: "Admin User",
	Email:       "admin@youcan-kampfsport.de",
	Role:        RoleAdmin,
}
