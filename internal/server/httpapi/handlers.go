// Package httpapi exposes the profile workflow over REST.
package httpapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/wolfdeveloper/wolfdevlovers/internal/common"
	"github.com/wolfdeveloper/wolfdevlovers/internal/httputil"
	"github.com/wolfdeveloper/wolfdevlovers/internal/logging"
	"github.com/wolfdeveloper/wolfdevlovers/internal/server/models"
)

// MaxUploadBytes caps the multipart body on every image endpoint.
const MaxUploadBytes = 10 << 20

// profileService is the service surface the handlers need.
type profileService interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByCode(ctx context.Context, code string) (*models.User, error)
	AttachProfileImage(ctx context.Context, code string, contentType string, data []byte) (*models.User, error)
	AttachBackgroundImage(ctx context.Context, code string, contentType string, data []byte) (*models.User, error)
	AttachLoverImage(ctx context.Context, loverID int64, contentType string, data []byte) (*models.User, error)
	Media(ctx context.Context, key string) ([]byte, string, error)
}

type Handlers struct {
	profiles profileService
	logger   logging.Logger
}

func NewHandlers(profiles profileService, logger logging.Logger) *Handlers {
	return &Handlers{profiles: profiles, logger: logger.With("module", "httpapi")}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	httputil.OK(w, map[string]string{"status": "ok"})
}

// GetUser serves a profile by share code. Unknown codes answer 200 with a
// zero-identifier record, mirroring what clients expect from lookup.
func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	user, err := h.profiles.GetByCode(r.Context(), code)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			httputil.OK(w, &models.User{Code: code, Lovers: []models.Lover{}})
			return
		}
		httputil.InternalError(w, err)
		return
	}

	httputil.OK(w, user)
}

func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if !httputil.Decode(w, r, &user) {
		return
	}

	created, err := h.profiles.Create(r.Context(), &user)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidRequest) {
			httputil.BadRequest(w, "myName and nameLover are required")
			return
		}
		httputil.InternalError(w, err)
		return
	}

	h.logger.Info(r.Context(), "profile created", "code", created.Code)
	httputil.OK(w, created)
}

// readDocument extracts the uploaded image from the multipart form.
func readDocument(w http.ResponseWriter, r *http.Request) ([]byte, string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes)

	file, header, err := r.FormFile(common.DocumentFieldName)
	if err != nil {
		httputil.BadRequest(w, "multipart field '"+common.DocumentFieldName+"' is required")
		return nil, "", false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		httputil.BadRequest(w, "could not read upload")
		return nil, "", false
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return data, contentType, true
}

func (h *Handlers) UploadProfileImage(w http.ResponseWriter, r *http.Request) {
	h.uploadUserImage(w, r, h.profiles.AttachProfileImage)
}

func (h *Handlers) UploadBackgroundImage(w http.ResponseWriter, r *http.Request) {
	h.uploadUserImage(w, r, h.profiles.AttachBackgroundImage)
}

func (h *Handlers) uploadUserImage(w http.ResponseWriter, r *http.Request,
	attach func(ctx context.Context, code string, contentType string, data []byte) (*models.User, error)) {

	code := chi.URLParam(r, "code")

	data, contentType, ok := readDocument(w, r)
	if !ok {
		return
	}

	user, err := attach(r.Context(), code, contentType, data)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			httputil.NotFound(w, "no profile with this code")
			return
		}
		httputil.InternalError(w, err)
		return
	}

	httputil.OK(w, user)
}

func (h *Handlers) UploadLoverImage(w http.ResponseWriter, r *http.Request) {
	loverID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.BadRequest(w, "lover id must be an integer")
		return
	}

	data, contentType, ok := readDocument(w, r)
	if !ok {
		return
	}

	user, err := h.profiles.AttachLoverImage(r.Context(), loverID, contentType, data)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			httputil.NotFound(w, "no gallery entry with this id")
			return
		}
		httputil.InternalError(w, err)
		return
	}

	httputil.OK(w, user)
}

// Media streams a stored blob.
func (h *Handlers) Media(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "*")

	data, contentType, err := h.profiles.Media(r.Context(), key)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			httputil.NotFound(w, "no such media")
			return
		}
		httputil.InternalError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
