package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	New(ctx context.Context) error
	Fill(ctx context.Context) error
	Profile(ctx context.Context) error
	Background(ctx context.Context) error
	Lover(ctx context.Context) error
	Show(ctx context.Context) error
	Submit(ctx context.Context) error
	Access(ctx context.Context) error
	View(ctx context.Context) error
	Back(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the lovers CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current screen state (from statusFn) and accepts:
//
//	help           — show available commands
//	new            — open the creation form
//	fill           — enter names, tagline and links
//	profile        — pick the profile image
//	background     — pick the background image
//	lover          — fill one gallery slot (text, music, image)
//	show           — print the current form
//	submit         — submit the form and receive a share code
//	access         — store a code for lookup and open the profile
//	view           — show the profile for the stored code
//	back           — return to the dashboard
//	exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("lovers> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn("Available commands: new, fill, profile, background, lover, show, submit, access, view, back, exit")

		case "new":
			_ = a.New(ctx)

		case "fill":
			_ = a.Fill(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "background":
			_ = a.Background(ctx)

		case "lover":
			_ = a.Lover(ctx)

		case "show":
			_ = a.Show(ctx)

		case "submit":
			_ = a.Submit(ctx)

		case "access":
			_ = a.Access(ctx)

		case "view":
			_ = a.View(ctx)

		case "back":
			_ = a.Back(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command: " + cmd)
		}
	}
}
