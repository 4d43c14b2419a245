// Package models defines the client-side data shapes: the locally cached
// Session and the request/response schemas of the auth and profile API.
package models

// Session is the locally cached identity of the signed-in user.
//
// A Session is either complete (authenticated) or absent. Saving a Session
// replaces every stored field, empty values included.
type Session struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// DisplayName is "First Last", falling back to the email.
func (s Session) DisplayName() string {
	switch {
	case s.FirstName != "" && s.LastName != "":
		return s.FirstName + " " + s.LastName
	case s.FirstName != "":
		return s.FirstName
	case s.LastName != "":
		return s.LastName
	default:
		return s.Email
	}
}
