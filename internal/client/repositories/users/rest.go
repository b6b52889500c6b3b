package users

import (
	"context"

	"github.com/wolfdeveloper/wolfdevlovers/internal/client/api"
	"github.com/wolfdeveloper/wolfdevlovers/internal/client/models"
	"github.com/wolfdeveloper/wolfdevlovers/internal/client/session"
	"github.com/wolfdeveloper/wolfdevlovers/internal/imagex"
)

// restRepository is the Repository implementation over the REST client.
type restRepository struct {
	api     api.Client
	session *session.Store

	// test seam for the image codec
	encodePNG func(path string) ([]byte, string, error)
}

// NewRESTRepository builds a Repository over the given API client and
// session cache.
func NewRESTRepository(apiClient api.Client, sess *session.Store) Repository {
	return &restRepository{api: apiClient, session: sess, encodePNG: imagex.EncodePNG}
}

func (r *restRepository) Get(ctx context.Context, code string, onLoad func()) (*models.User, error) {
	if user := r.session.GetUser(); user != nil {
		return user, nil
	}

	if onLoad != nil {
		onLoad()
	}

	user, err := r.api.GetUser(ctx, code)
	if err != nil {
		return nil, err
	}
	if !user.IsPersisted() {
		// a zero identifier is the backend's "no such code"
		return nil, nil
	}

	r.session.SetUser(user)
	return user, nil
}

func (r *restRepository) Insert(ctx context.Context, user models.User) (*models.User, error) {
	return r.api.InsertUser(ctx, user)
}

func (r *restRepository) Profile(ctx context.Context, imageRef string, user models.User) (*models.User, error) {
	png, name, err := r.encodePNG(imageRef)
	if err != nil {
		return nil, err
	}
	return r.api.UploadProfile(ctx, user.Code, name, png)
}

func (r *restRepository) Background(ctx context.Context, imageRef string, user models.User) (*models.User, error) {
	png, name, err := r.encodePNG(imageRef)
	if err != nil {
		return nil, err
	}
	return r.api.UploadBackground(ctx, user.Code, name, png)
}

func (r *restRepository) LoverImage(ctx context.Context, imageRef string, loverID int64) (*models.User, error) {
	png, name, err := r.encodePNG(imageRef)
	if err != nil {
		return nil, err
	}
	return r.api.UploadLoverImage(ctx, loverID, name, png)
}
