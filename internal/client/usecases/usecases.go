// Package usecases defines one named side-effecting operation per submission
// step. Each use case wraps exactly one repository call in the SafeRun error
// boundary, so callers always receive a Result instead of an error.
package usecases

import (
	"context"

	"github.com/wolfdeveloper/wolfdevlovers/internal/client/models"
	"github.com/wolfdeveloper/wolfdevlovers/internal/client/repositories/users"
	"github.com/wolfdeveloper/wolfdevlovers/internal/shared"
)

// Insert creates the profile record on the backend.
type Insert struct {
	repo users.Repository
}

func NewInsert(repo users.Repository) *Insert {
	return &Insert{repo: repo}
}

func (u *Insert) Execute(ctx context.Context, user models.User) shared.Result[*models.User] {
	return shared.SafeRun(ctx, func(ctx context.Context) (*models.User, error) {
		return u.repo.Insert(ctx, user)
	})
}

// Profile uploads the profile image keyed by a share code.
type Profile struct {
	repo users.Repository
}

func NewProfile(repo users.Repository) *Profile {
	return &Profile{repo: repo}
}

func (u *Profile) Execute(ctx context.Context, imageRef, code string) shared.Result[*models.User] {
	return shared.SafeRun(ctx, func(ctx context.Context) (*models.User, error) {
		return u.repo.Profile(ctx, imageRef, models.User{Code: code})
	})
}

// Background uploads the background image keyed by a share code.
type Background struct {
	repo users.Repository
}

func NewBackground(repo users.Repository) *Background {
	return &Background{repo: repo}
}

func (u *Background) Execute(ctx context.Context, imageRef, code string) shared.Result[*models.User] {
	return shared.SafeRun(ctx, func(ctx context.Context) (*models.User, error) {
		return u.repo.Background(ctx, imageRef, models.User{Code: code})
	})
}

// LoverImage uploads one gallery image keyed by a server-assigned lover id.
type LoverImage struct {
	repo users.Repository
}

func NewLoverImage(repo users.Repository) *LoverImage {
	return &LoverImage{repo: repo}
}

func (u *LoverImage) Execute(ctx context.Context, imageRef string, loverID int64) shared.Result[*models.User] {
	return shared.SafeRun(ctx, func(ctx context.Context) (*models.User, error) {
		return u.repo.LoverImage(ctx, imageRef, loverID)
	})
}

// Lookup fetches a profile by share code. A nil user inside a successful
// Result means "no such code", which is distinct from a Failure.
type Lookup struct {
	repo users.Repository
}

func NewLookup(repo users.Repository) *Lookup {
	return &Lookup{repo: repo}
}

func (u *Lookup) Execute(ctx context.Context, code string, onLoad func()) shared.Result[*models.User] {
	return shared.SafeRun(ctx, func(ctx context.Context) (*models.User, error) {
		return u.repo.Get(ctx, code, onLoad)
	})
}
