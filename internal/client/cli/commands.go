package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/wolfdeveloper/wolfdevlovers/internal/client/dashboard"
	"github.com/wolfdeveloper/wolfdevlovers/internal/client/models"
)

// Run starts the interactive loop. It returns when the user leaves or
// stdin is closed.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the lovers CLI (type 'help' for commands)")
	runREPL(ctx, a, func() string { return string(a.vm.State()) }, bufio.NewScanner(os.Stdin))
}

// drainEvents prints pending one-shot messages and reports whether a
// navigation event asked for the detail page.
func (a *App) drainEvents() bool {
	navigate := false
	for {
		select {
		case e := <-a.vm.Events():
			switch e.Kind {
			case dashboard.EventMessage:
				fmt.Fprintln(a.out, e.Text)
			case dashboard.EventNavigate:
				navigate = true
			}
		default:
			return navigate
		}
	}
}

func (a *App) New(ctx context.Context) error {
	a.vm.GoToContent()
	fmt.Fprintln(a.out, "Creation form opened; use 'fill', 'profile', 'background' and 'lover' to complete it.")
	return nil
}

// Fill prompts for the text fields. Empty input keeps the current value.
func (a *App) Fill(ctx context.Context) error {
	form := a.vm.Form()

	fields := []struct {
		prompt string
		target *string
	}{
		{"Your name", &form.Name},
		{"Your partner's name", &form.PartnerName},
		{"Tagline (e.g. \"5 years together\")", &form.Tagline},
		{"Spotify link", &form.SpotifyLink},
		{"Instagram handle", &form.InstagramHandle},
		{"Phone (WhatsApp)", &form.Phone},
	}

	for _, f := range fields {
		current := *f.target
		prompt := f.prompt
		if current != "" {
			prompt = fmt.Sprintf("%s [%s]", prompt, current)
		}
		value, err := GetSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return err
		}
		if value != "" {
			*f.target = value
		}
	}
	return nil
}

func (a *App) Profile(ctx context.Context) error {
	path, err := GetSimpleText(a.reader, "Path to profile image", a.out)
	if err != nil {
		return err
	}
	a.vm.Form().ProfileImageRef = path
	return nil
}

func (a *App) Background(ctx context.Context) error {
	path, err := GetSimpleText(a.reader, "Path to background image", a.out)
	if err != nil {
		return err
	}
	a.vm.Form().BackgroundImageRef = path
	return nil
}

// Lover fills one gallery slot.
func (a *App) Lover(ctx context.Context) error {
	raw, err := GetSimpleText(a.reader, fmt.Sprintf("Slot number (1-%d)", models.LoverSlotCount), a.out)
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > models.LoverSlotCount {
		fmt.Fprintf(a.out, "Slot must be a number between 1 and %d\n", models.LoverSlotCount)
		return nil
	}
	slot := &a.vm.Form().Lovers[n-1]

	if slot.Text, err = GetMultiline(a.reader, "Text for this memory", a.out); err != nil {
		return err
	}
	if slot.MusicLink, err = GetSimpleText(a.reader, "Music link (optional)", a.out); err != nil {
		return err
	}
	if slot.ImageRef, err = GetSimpleText(a.reader, "Path to image", a.out); err != nil {
		return err
	}
	return nil
}

func (a *App) Show(ctx context.Context) error {
	form := a.vm.Form()
	fmt.Fprintf(a.out, "Code:       %s\n", form.Code)
	fmt.Fprintf(a.out, "Name:       %s\n", form.Name)
	fmt.Fprintf(a.out, "Partner:    %s\n", form.PartnerName)
	fmt.Fprintf(a.out, "Tagline:    %s\n", form.Tagline)
	fmt.Fprintf(a.out, "Spotify:    %s\n", form.SpotifyLink)
	fmt.Fprintf(a.out, "Instagram:  %s\n", form.InstagramHandle)
	fmt.Fprintf(a.out, "Phone:      %s\n", form.Phone)
	fmt.Fprintf(a.out, "Profile:    %s\n", form.ProfileImageRef)
	fmt.Fprintf(a.out, "Background: %s\n", form.BackgroundImageRef)
	for i, slot := range form.Lovers {
		mark := " "
		if slot.Populated() {
			mark = "*"
		}
		fmt.Fprintf(a.out, "Lover %d %s:  %q image=%s music=%s\n", i+1, mark, slot.Text, slot.ImageRef, slot.MusicLink)
	}
	return nil
}

func (a *App) Submit(ctx context.Context) error {
	a.vm.Insert(ctx)
	a.drainEvents()

	if a.vm.State() == dashboard.StateSuccess {
		fmt.Fprintf(a.out, "Profile created! Share code: %s\n", a.vm.Form().Code)
	}
	return nil
}

func (a *App) Access(ctx context.Context) error {
	code, err := GetSimpleText(a.reader, "Share code", a.out)
	if err != nil {
		return err
	}
	a.vm.Form().Code = code
	if !a.vm.Access() {
		fmt.Fprintln(a.out, "Enter a non-empty code first.")
		return nil
	}
	if a.drainEvents() {
		return a.View(ctx)
	}
	return nil
}

func (a *App) View(ctx context.Context) error {
	user, err := a.vm.Detail(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Could not load profile: %v\n", err)
		return err
	}
	if user == nil {
		fmt.Fprintln(a.out, "No profile found for this code.")
		return nil
	}
	a.renderUser(user)
	return nil
}

func (a *App) Back(ctx context.Context) error {
	a.vm.BackToDashboard()
	return nil
}

func (a *App) renderUser(user *models.User) {
	fmt.Fprintf(a.out, "%s ♥ %s\n", user.MyName, user.NameLover)
	if user.Plus != "" {
		fmt.Fprintln(a.out, user.Plus)
	}
	if user.Spotify != "" {
		fmt.Fprintf(a.out, "Spotify:   %s\n", user.Spotify)
	}
	if user.Instagram != "" {
		fmt.Fprintf(a.out, "Instagram: %s\n", user.Instagram)
	}
	if user.Whatssap != "" {
		fmt.Fprintf(a.out, "WhatsApp:  %s\n", user.Whatssap)
	}
	for i, lover := range user.Lovers {
		fmt.Fprintf(a.out, "  %d. %s", i+1, lover.TextLover)
		if lover.Music != "" {
			fmt.Fprintf(a.out, " (music: %s)", lover.Music)
		}
		fmt.Fprintln(a.out)
	}
}
