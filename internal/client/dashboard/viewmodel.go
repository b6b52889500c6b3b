// Package dashboard owns the submission workflow: the mutable form state,
// the screen state machine, and the one-shot events consumed by the UI
// layer. One ViewModel instance serves one screen visit; nothing here is
// shared across visits except the injected session cache.
package dashboard

import (
	"context"
	"fmt"
	"sync"

	"github.com/wolfdeveloper/wolfdevlovers/internal/client/models"
	"github.com/wolfdeveloper/wolfdevlovers/internal/client/session"
	"github.com/wolfdeveloper/wolfdevlovers/internal/logging"
	"github.com/wolfdeveloper/wolfdevlovers/internal/shared"
)

// User-facing validation messages, surfaced in field order; the first
// failing check aborts submission before any network call.
const (
	MsgNameRequired       = "enter your name"
	MsgPartnerRequired    = "enter your partner's name"
	MsgProfileRequired    = "choose a profile image"
	MsgBackgroundRequired = "choose a background image"
	MsgLoverRequired      = "fill at least one gallery entry with an image and a text"
)

type inserter interface {
	Execute(ctx context.Context, user models.User) shared.Result[*models.User]
}

type imageUploader interface {
	Execute(ctx context.Context, imageRef, code string) shared.Result[*models.User]
}

type loverUploader interface {
	Execute(ctx context.Context, imageRef string, loverID int64) shared.Result[*models.User]
}

type lookupUseCase interface {
	Execute(ctx context.Context, code string, onLoad func()) shared.Result[*models.User]
}

// UploadFailurePolicy decides what happens when an image upload fails after
// the record itself was created. The default policy logs and moves on; the
// code is already issued, so the workflow never rolls back.
type UploadFailurePolicy func(ctx context.Context, field string, err error)

// ViewModel drives the multi-step submission from validated form state to a
// shareable code.
type ViewModel struct {
	insert     inserter
	profile    imageUploader
	background imageUploader
	loverImage loverUploader
	lookup     lookupUseCase
	session    *session.Store
	logger     logging.Logger

	form   *models.FormState
	events chan Event

	mu    sync.Mutex
	state ScreenState

	onUploadFailure UploadFailurePolicy
}

// New wires a ViewModel with a fresh, empty form. The initial state is
// Dashboard.
func New(
	insert inserter,
	profile imageUploader,
	background imageUploader,
	loverImage loverUploader,
	lookup lookupUseCase,
	sess *session.Store,
	logger logging.Logger,
) *ViewModel {
	vm := &ViewModel{
		insert:     insert,
		profile:    profile,
		background: background,
		loverImage: loverImage,
		lookup:     lookup,
		session:    sess,
		logger:     logger.With("module", "dashboard"),
		form:       models.NewFormState(),
		events:     make(chan Event, 16),
		state:      StateDashboard,
	}
	vm.onUploadFailure = func(ctx context.Context, field string, err error) {
		vm.logger.Warn(ctx, "image upload failed", "field", field, "error", err.Error())
	}
	return vm
}

// SetUploadFailurePolicy replaces the default log-and-continue policy.
func (vm *ViewModel) SetUploadFailurePolicy(p UploadFailurePolicy) {
	if p != nil {
		vm.onUploadFailure = p
	}
}

// Form exposes the mutable form state. The caller and the workflow never
// touch it concurrently; one screen visit is one logical workflow.
func (vm *ViewModel) Form() *models.FormState {
	return vm.form
}

// State returns the current screen state.
func (vm *ViewModel) State() ScreenState {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.state
}

func (vm *ViewModel) setState(s ScreenState) {
	vm.mu.Lock()
	vm.state = s
	vm.mu.Unlock()
}

// Events is the single-consumer channel of one-shot UI events.
func (vm *ViewModel) Events() <-chan Event {
	return vm.events
}

func (vm *ViewModel) send(e Event) {
	select {
	case vm.events <- e:
	default:
		vm.logger.Warn(context.Background(), "event dropped, consumer not keeping up", "kind", e.Kind)
	}
}

func (vm *ViewModel) message(text string) {
	vm.send(message(text))
}

// Setup restores the last-known share code into the form on screen entry.
func (vm *ViewModel) Setup() {
	if code := vm.session.GetCode(); code != "" {
		vm.form.Code = code
	}
}

// Insert runs the submission workflow: validate, create the record, upload
// images, transition state. Validation failures surface a message and abort
// before any network call. An insert failure returns to Content with the
// form untouched so the user may retry.
func (vm *ViewModel) Insert(ctx context.Context) {
	f := vm.form

	if f.Name == "" {
		vm.message(MsgNameRequired)
		return
	}
	if f.PartnerName == "" {
		vm.message(MsgPartnerRequired)
		return
	}
	if f.ProfileImageRef == "" {
		vm.message(MsgProfileRequired)
		return
	}
	if f.BackgroundImageRef == "" {
		vm.message(MsgBackgroundRequired)
		return
	}
	slots := f.PopulatedSlots()
	if len(slots) == 0 {
		vm.message(MsgLoverRequired)
		return
	}

	vm.setState(StateLoading)

	result := vm.insert.Execute(ctx, f.ToUser())
	if !result.IsSuccess() {
		vm.setState(StateContent)
		vm.message(result.Err().Error())
		return
	}

	created := result.Value()
	f.Code = created.Code

	if !created.IsPersisted() {
		// The backend answered without an identity; the lovers carry no ids
		// either, so uploads have nothing to key on. Surface the code and
		// let the user resubmit.
		vm.setState(StateContent)
		vm.message(created.Code)
		return
	}

	// The uploads have no ordering dependency on each other; none of their
	// results gate a later step.
	var wg sync.WaitGroup

	if f.ProfileImageRef != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			vm.reportUpload(ctx, "profile", vm.profile.Execute(ctx, f.ProfileImageRef, f.Code))
		}()
	}

	if f.BackgroundImageRef != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			vm.reportUpload(ctx, "background", vm.background.Execute(ctx, f.BackgroundImageRef, f.Code))
		}()
	}

	for i, slotIdx := range slots {
		if i >= len(created.Lovers) {
			vm.logger.Warn(ctx, "no server id for gallery slot, skipping image upload", "slot", slotIdx)
			continue
		}
		imageRef := f.Lovers[slotIdx].ImageRef
		loverID := created.Lovers[i].ID
		field := fmt.Sprintf("lover[%d]", slotIdx)

		wg.Add(1)
		go func() {
			defer wg.Done()
			vm.reportUpload(ctx, field, vm.loverImage.Execute(ctx, imageRef, loverID))
		}()
	}

	wg.Wait()
	vm.setState(StateSuccess)
}

func (vm *ViewModel) reportUpload(ctx context.Context, field string, r shared.Result[*models.User]) {
	if !r.IsSuccess() {
		vm.onUploadFailure(ctx, field, r.Err())
	}
}

// Detail fetches the profile for the session's share code. Absent is
// returned as (nil, nil), distinct from an error. The loading state is
// visible while the fetch is in flight.
func (vm *ViewModel) Detail(ctx context.Context) (*models.User, error) {
	result := vm.lookup.Execute(ctx, vm.session.GetCode(), func() {
		vm.setState(StateLoading)
	})
	vm.setState(StateDashboard)

	if !result.IsSuccess() {
		return nil, result.Err()
	}
	return result.Value(), nil
}

// Access stores the form's code for lookup, clears the cached user so the
// next fetch hits the network, and emits a navigation event. With an empty
// code it does nothing and reports false.
func (vm *ViewModel) Access() bool {
	if vm.form.Code == "" {
		return false
	}
	vm.session.SetCode(vm.form.Code)
	vm.session.SetUser(nil)
	vm.send(navigateTo(NavigationMenu))
	return true
}

// GoToContent enters the creation form.
func (vm *ViewModel) GoToContent() {
	vm.setState(StateContent)
}

// BackToDashboard returns to the entry screen; a no-op when already there.
func (vm *ViewModel) BackToDashboard() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.state != StateDashboard {
		vm.state = StateDashboard
	}
}
