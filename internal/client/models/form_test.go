package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoverSlot_Populated(t *testing.T) {
	tests := []struct {
		name string
		slot LoverSlot
		want bool
	}{
		{"image and text", LoverSlot{Text: "us", ImageRef: "/tmp/a.png"}, true},
		{"image only", LoverSlot{ImageRef: "/tmp/a.png"}, false},
		{"text only", LoverSlot{Text: "us"}, false},
		{"whitespace text", LoverSlot{Text: "   \t", ImageRef: "/tmp/a.png"}, false},
		{"empty", LoverSlot{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.slot.Populated())
		})
	}
}

func TestFormState_ToUser_FiltersAndKeepsOrder(t *testing.T) {
	f := NewFormState()
	f.Name = "Maria"
	f.PartnerName = "João"
	f.Tagline = "5 years"
	f.SpotifyLink = "https://spotify/x"
	f.InstagramHandle = "@maria"
	f.Phone = "+5511999999999"

	// [populated, empty, populated, image-only, empty]
	f.Lovers[0] = LoverSlot{Text: "first date", MusicLink: "m0", ImageRef: "/img/0.png"}
	f.Lovers[2] = LoverSlot{Text: "the trip", MusicLink: "m2", ImageRef: "/img/2.png"}
	f.Lovers[3] = LoverSlot{ImageRef: "/img/3.png"}

	u := f.ToUser()

	assert.Equal(t, "Maria", u.MyName)
	assert.Equal(t, "João", u.NameLover)
	assert.Equal(t, "5 years", u.Plus)
	assert.Equal(t, "+5511999999999", u.Whatssap)

	assert.Len(t, u.Lovers, 2)
	assert.Equal(t, "first date", u.Lovers[0].TextLover)
	assert.Equal(t, "m0", u.Lovers[0].Music)
	assert.Equal(t, "the trip", u.Lovers[1].TextLover)
	assert.Equal(t, []int{0, 2}, f.PopulatedSlots())
}

func TestUser_IsPersisted(t *testing.T) {
	assert.False(t, (*User)(nil).IsPersisted())
	assert.False(t, (&User{}).IsPersisted())
	assert.True(t, (&User{ID: 42}).IsPersisted())
}
