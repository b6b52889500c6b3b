package models

import "strings"

// LoverSlotCount is the fixed number of gallery slots the form offers.
const LoverSlotCount = 5

// LoverSlot is one editable gallery entry. A slot takes part in submission
// only when it is populated.
type LoverSlot struct {
	Text      string
	MusicLink string
	ImageRef  string
}

// Populated reports whether the slot carries both an image and non-blank
// text. Whitespace-only text does not count.
func (s LoverSlot) Populated() bool {
	return s.ImageRef != "" && strings.TrimSpace(s.Text) != ""
}

// FormState is the mutable form backing one screen visit. It is exclusively
// owned by the dashboard view-model and never persisted.
type FormState struct {
	Code               string
	Name               string
	PartnerName        string
	Tagline            string
	SpotifyLink        string
	InstagramHandle    string
	Phone              string
	ProfileImageRef    string
	BackgroundImageRef string
	Lovers             [LoverSlotCount]LoverSlot
}

// NewFormState returns an empty form with all lover slots pre-allocated.
func NewFormState() *FormState {
	return &FormState{}
}

// PopulatedSlots returns the indices of populated lover slots in their
// original order.
func (f *FormState) PopulatedSlots() []int {
	var idx []int
	for i, slot := range f.Lovers {
		if slot.Populated() {
			idx = append(idx, i)
		}
	}
	return idx
}

// ToUser builds the domain record submitted to the backend. Only populated
// slots are included, mapped in original slot order.
func (f *FormState) ToUser() User {
	user := User{
		MyName:    f.Name,
		NameLover: f.PartnerName,
		Plus:      f.Tagline,
		Spotify:   f.SpotifyLink,
		Instagram: f.InstagramHandle,
		Whatssap:  f.Phone,
	}
	for _, i := range f.PopulatedSlots() {
		slot := f.Lovers[i]
		user.Lovers = append(user.Lovers, Lover{TextLover: slot.Text, Music: slot.MusicLink})
	}
	return user
}
