package models

import "encoding/gob"

// Principal is the authenticated identity carried in the session: either a
// storefront user or an admin, resolved by the login dispatcher.
type Principal struct {
	ID       uint   `json:"id"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	FullName string `json:"full_name,omitempty"`
	IsAdmin  bool   `json:"isAdmin"`
}

func init() {
	// Principals are gob-encoded into the cookie-backed session store.
	gob.Register(Principal{})
}
