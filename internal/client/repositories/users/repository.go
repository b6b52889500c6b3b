// Package users is the client-side repository for profile records: domain
// calls in, REST calls out, with the session cache consulted on reads and
// images re-encoded to PNG before upload.
package users

import (
	"context"

	"github.com/wolfdeveloper/wolfdevlovers/internal/client/models"
)

// Repository translates domain operations into backend calls.
//
// Contract:
//   - Get: session-cache first; a cache miss invokes onLoad (a side-effecting
//     "loading" callback), fetches from the network, maps a record without a
//     server-assigned id to absent (nil, nil), and caches found records.
//   - Insert: one-shot create, returns the server-assigned identity.
//   - Profile / Background: re-encode the referenced image as PNG and upload
//     it keyed by the user's code.
//   - LoverImage: same, keyed by a server-assigned lover id.
//
// None of the operations are idempotent except Get. Errors propagate
// unhandled; they are converted to values only at the use-case boundary.
type Repository interface {
	Get(ctx context.Context, code string, onLoad func()) (*models.User, error)
	Insert(ctx context.Context, user models.User) (*models.User, error)
	Profile(ctx context.Context, imageRef string, user models.User) (*models.User, error)
	Background(ctx context.Context, imageRef string, user models.User) (*models.User, error)
	LoverImage(ctx context.Context, imageRef string, loverID int64) (*models.User, error)
}
