package dashboard

// Navigation identifies a destination for one-shot navigation events.
type Navigation string

const (
	// NavigationMenu pops back to the menu that hosts the detail page.
	NavigationMenu Navigation = "menu"
)

// EventKind discriminates the Event variants.
type EventKind int

const (
	// EventNavigate asks the UI to move to Event.Navigation.
	EventNavigate EventKind = iota

	// EventMessage asks the UI to show Event.Text to the user once.
	EventMessage
)

// Event is a one-shot UI event. Events are delivered over a single-consumer
// channel; each is observed exactly once.
type Event struct {
	Kind       EventKind
	Navigation Navigation
	Text       string
}

func navigateTo(n Navigation) Event {
	return Event{Kind: EventNavigate, Navigation: n}
}

func message(text string) Event {
	return Event{Kind: EventMessage, Text: text}
}
