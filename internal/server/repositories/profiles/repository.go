// Package profiles persists couple profiles and their gallery entries.
package profiles

import (
	"context"

	"github.com/wolfdeveloper/wolfdevlovers/internal/server/models"
)

// Repository is the persistence surface for couple profiles.
type Repository interface {
	// Create inserts the profile and its gallery entries atomically and
	// fills in the server-assigned identifiers.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByCode loads a profile with its gallery entries in submission
	// order. Returns common.ErrorNotFound when no profile has the code.
	GetByCode(ctx context.Context, code string) (*models.User, error)

	SetProfileImage(ctx context.Context, code string, url string) error
	SetBackgroundImage(ctx context.Context, code string, url string) error
	SetLoverImage(ctx context.Context, loverID int64, url string) error

	// CodeForLover resolves the owning profile's code for a gallery entry.
	CodeForLover(ctx context.Context, loverID int64) (string, error)
}
