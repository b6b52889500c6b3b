package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/wolfdeveloper/wolfdevlovers/internal/common"
	sc "github.com/wolfdeveloper/wolfdevlovers/internal/server/config"
	"github.com/wolfdeveloper/wolfdevlovers/internal/server/models"
	"github.com/wolfdeveloper/wolfdevlovers/internal/server/repositories/repomanager"
	"github.com/wolfdeveloper/wolfdevlovers/internal/server/storage"
	"github.com/wolfdeveloper/wolfdevlovers/internal/shared"
)

// ShareCodeBytes is the number of random bytes behind a share code. The
// resulting code is twice as long in hex characters.
const ShareCodeBytes = 4

// MediaURLPrefix is where stored media is served from.
const MediaURLPrefix = "/media/"

// mediaKey builds a unique storage key. Re-uploads get a fresh key so
// clients never see stale cached bytes.
func mediaKey(code string, kind string) string {
	return fmt.Sprintf("profiles/%s/%s-%v.png", code, kind, uuid.New())
}

// ProfileService implements the couple profile workflow: creation with a
// fresh share code, lookup by code, and media attachment.
type ProfileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       storage.ObjectStore
	config      *sc.Config
}

func NewProfileService(db *sql.DB, repomanager repomanager.RepositoryManager, store storage.ObjectStore, config *sc.Config) *ProfileService {
	return &ProfileService{
		db:          db,
		repomanager: repomanager,
		store:       store,
		config:      config,
	}
}

// Create validates the submission, assigns a share code and persists the
// profile with its gallery entries.
func (s *ProfileService) Create(ctx context.Context, user *models.User) (*models.User, error) {

	if strings.TrimSpace(user.MyName) == "" || strings.TrimSpace(user.NameLover) == "" {
		return nil, common.ErrorInvalidRequest
	}

	code, err := shared.MakeRandHexString(ShareCodeBytes)
	if err != nil {
		return nil, fmt.Errorf("share code: %w", err)
	}
	user.Code = code

	repo := s.repomanager.Profiles(s.db)
	return repo.Create(ctx, user)
}

// GetByCode loads a profile. Returns common.ErrorNotFound when the code is
// unknown.
func (s *ProfileService) GetByCode(ctx context.Context, code string) (*models.User, error) {
	repo := s.repomanager.Profiles(s.db)
	return repo.GetByCode(ctx, code)
}

// AttachProfileImage stores the image bytes and records the media URL on the
// profile. The refreshed profile is returned.
func (s *ProfileService) AttachProfileImage(ctx context.Context, code string, contentType string, data []byte) (*models.User, error) {
	repo := s.repomanager.Profiles(s.db)

	// Fail fast on unknown codes before touching the object store.
	if _, err := repo.GetByCode(ctx, code); err != nil {
		return nil, err
	}

	key := mediaKey(code, "profile")

	if err := s.store.Put(ctx, key, contentType, data); err != nil {
		return nil, fmt.Errorf("store media: %w", err)
	}

	if err := repo.SetProfileImage(ctx, code, MediaURLPrefix+key); err != nil {
		return nil, err
	}

	return repo.GetByCode(ctx, code)
}

// AttachBackgroundImage stores the image bytes and records the media URL on
// the profile. The refreshed profile is returned.
func (s *ProfileService) AttachBackgroundImage(ctx context.Context, code string, contentType string, data []byte) (*models.User, error) {
	repo := s.repomanager.Profiles(s.db)

	if _, err := repo.GetByCode(ctx, code); err != nil {
		return nil, err
	}

	key := mediaKey(code, "background")

	if err := s.store.Put(ctx, key, contentType, data); err != nil {
		return nil, fmt.Errorf("store media: %w", err)
	}

	if err := repo.SetBackgroundImage(ctx, code, MediaURLPrefix+key); err != nil {
		return nil, err
	}

	return repo.GetByCode(ctx, code)
}

// AttachLoverImage stores the image bytes for one gallery entry and returns
// the refreshed owning profile.
func (s *ProfileService) AttachLoverImage(ctx context.Context, loverID int64, contentType string, data []byte) (*models.User, error) {
	repo := s.repomanager.Profiles(s.db)

	code, err := repo.CodeForLover(ctx, loverID)
	if err != nil {
		return nil, err
	}

	key := mediaKey(code, fmt.Sprintf("lovers/%d", loverID))

	if err := s.store.Put(ctx, key, contentType, data); err != nil {
		return nil, fmt.Errorf("store media: %w", err)
	}

	if err := repo.SetLoverImage(ctx, loverID, MediaURLPrefix+key); err != nil {
		return nil, err
	}

	return repo.GetByCode(ctx, code)
}

// Media serves a stored blob by key.
func (s *ProfileService) Media(ctx context.Context, key string) ([]byte, string, error) {
	return s.store.Get(ctx, key)
}
