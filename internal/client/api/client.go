// Package api implements the REST client for the lovers backend. It mirrors
// the backend wire contract one method per endpoint; higher layers never see
// HTTP details.
package api

import (
	"context"

	"github.com/wolfdeveloper/wolfdevlovers/internal/client/models"
)

// Client is the backend surface the repository layer talks to.
//
// Contract:
//   - GetUser: fetch a record by share code. A missing code comes back as a
//     record with a zero identifier, not as an error.
//   - InsertUser: one-shot create; returns the server-assigned identity.
//   - UploadProfile / UploadBackground: attach a PNG payload to the record
//     identified by code.
//   - UploadLoverImage: attach a PNG payload to one gallery entry by its
//     server-assigned id.
//
// All methods honor context cancellation and return transport or decode
// failures unhandled; the Result boundary above the use cases is the only
// place they are converted to values.
type Client interface {
	GetUser(ctx context.Context, code string) (*models.User, error)
	InsertUser(ctx context.Context, user models.User) (*models.User, error)
	UploadProfile(ctx context.Context, code, filename string, png []byte) (*models.User, error)
	UploadBackground(ctx context.Context, code, filename string, png []byte) (*models.User, error)
	UploadLoverImage(ctx context.Context, loverID int64, filename string, png []byte) (*models.User, error)
}
