// Package models holds the server-side domain records persisted by the
// repositories and served over HTTP.
package models

import "time"

// User is a couple profile. Code is the shareable lookup key handed back to
// clients; image fields hold media URLs once attachments are stored.
type User struct {
	ID              int64     `json:"id"`
	Code            string    `json:"code"`
	MyName          string    `json:"myName"`
	NameLover       string    `json:"nameLover"`
	Plus            string    `json:"plus"`
	Spotify         string    `json:"spotify"`
	Instagram       string    `json:"instagram"`
	Whatssap        string    `json:"whatssap"`
	ProfileImage    string    `json:"profileImage,omitempty"`
	BackgroundImage string    `json:"backgroundImage,omitempty"`
	Lovers          []Lover   `json:"lovers"`
	CreatedAt       time.Time `json:"-"`
}

// Lover is one gallery entry belonging to a User. Position preserves the
// order the entries were submitted in.
type Lover struct {
	ID        int64  `json:"id"`
	TextLover string `json:"textLover"`
	Music     string `json:"music"`
	Image     string `json:"image,omitempty"`
	Position  int    `json:"-"`
}
