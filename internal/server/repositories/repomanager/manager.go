package repomanager

import (
	"context"
	"database/sql"

	"github.com/wolfdeveloper/wolfdevlovers/internal/server/repositories/profiles"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Profiles(db *sql.DB) profiles.Repository
}
