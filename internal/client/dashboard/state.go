package dashboard

// ScreenState is the closed set of states driving what the UI renders.
type ScreenState string

const (
	// StateDashboard is the entry choice: look up an existing profile or
	// create a new one.
	StateDashboard ScreenState = "dashboard"

	// StateLoading means a network call is in flight.
	StateLoading ScreenState = "loading"

	// StateContent is the editable form, shown on entry to creation and
	// again after a failed submission.
	StateContent ScreenState = "content"

	// StateSuccess means a code was issued and can be shared.
	StateSuccess ScreenState = "success"

	// StateError is declared but currently unreached; no transition leads
	// here.
	StateError ScreenState = "error"
)
