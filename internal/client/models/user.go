// Package models holds the client-side domain DTOs and the in-memory form
// state the dashboard workflow operates on.
package models

// User is the profile record round-tripping through the backend. Code is the
// shareable lookup key; ID is server-assigned and zero means "not yet
// persisted". Field names mirror the wire contract.
type User struct {
	ID              int64   `json:"id"`
	Code            string  `json:"code"`
	MyName          string  `json:"myName"`
	NameLover       string  `json:"nameLover"`
	Plus            string  `json:"plus"`
	Spotify         string  `json:"spotify"`
	Instagram       string  `json:"instagram"`
	Whatssap        string  `json:"whatssap"`
	ProfileImage    string  `json:"profileImage,omitempty"`
	BackgroundImage string  `json:"backgroundImage,omitempty"`
	Lovers          []Lover `json:"lovers"`
}

// Lover is one gallery entry attached to a User. The server assigns IDs on
// insert; images are attached afterwards keyed by that ID.
type Lover struct {
	ID        int64  `json:"id"`
	TextLover string `json:"textLover"`
	Music     string `json:"music"`
	Image     string `json:"image,omitempty"`
}

// IsPersisted reports whether the record carries a server-assigned
// identifier.
func (u *User) IsPersisted() bool {
	return u != nil && u.ID != 0
}
