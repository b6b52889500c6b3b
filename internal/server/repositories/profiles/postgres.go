package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wolfdeveloper/wolfdevlovers/internal/common"
	"github.com/wolfdeveloper/wolfdevlovers/internal/dbx"
	"github.com/wolfdeveloper/wolfdevlovers/internal/server/models"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the user row and its lovers in one transaction. Lover rows
// keep their position so GetByCode returns them in submission order.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {

		query :=
			`INSERT INTO users (code, my_name, name_lover, plus, spotify, instagram, whatssap)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 RETURNING id
			 `

		err := tx.QueryRowContext(ctx, query,
			user.Code, user.MyName, user.NameLover, user.Plus,
			user.Spotify, user.Instagram, user.Whatssap).Scan(&user.ID)
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}

		loverQuery :=
			`INSERT INTO lovers (user_id, position, text_lover, music)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id
			 `

		for i := range user.Lovers {
			lover := &user.Lovers[i]
			lover.Position = i
			err := tx.QueryRowContext(ctx, loverQuery,
				user.ID, lover.Position, lover.TextLover, lover.Music).Scan(&lover.ID)
			if err != nil {
				return fmt.Errorf("db error: %w", err)
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *PostgresRepository) GetByCode(ctx context.Context, code string) (*models.User, error) {
	query :=
		`SELECT id, code, my_name, name_lover, plus, spotify, instagram, whatssap, profile_image, background_image
		 FROM users
		 WHERE code = $1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, code).Scan(
		&user.ID, &user.Code, &user.MyName, &user.NameLover, &user.Plus,
		&user.Spotify, &user.Instagram, &user.Whatssap,
		&user.ProfileImage, &user.BackgroundImage)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	loverQuery :=
		`SELECT id, position, text_lover, music, image FROM lovers
		 WHERE user_id = $1
		 ORDER BY position
		 `

	rows, err := r.db.QueryContext(ctx, loverQuery, user.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var lover models.Lover
		if err := rows.Scan(&lover.ID, &lover.Position, &lover.TextLover, &lover.Music, &lover.Image); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		user.Lovers = append(user.Lovers, lover)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) SetProfileImage(ctx context.Context, code string, url string) error {
	return r.updateUserImage(ctx, "profile_image", code, url)
}

func (r *PostgresRepository) SetBackgroundImage(ctx context.Context, code string, url string) error {
	return r.updateUserImage(ctx, "background_image", code, url)
}

func (r *PostgresRepository) updateUserImage(ctx context.Context, column string, code string, url string) error {
	query := fmt.Sprintf(
		`UPDATE users SET %s = $1
		 WHERE code = $2
		 `, column)

	res, err := r.db.ExecContext(ctx, query, url, code)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) SetLoverImage(ctx context.Context, loverID int64, url string) error {
	query :=
		`UPDATE lovers SET image = $1
		 WHERE id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, url, loverID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) CodeForLover(ctx context.Context, loverID int64) (string, error) {
	query :=
		`SELECT u.code FROM users u
		 JOIN lovers l ON l.user_id = u.id
		 WHERE l.id = $1
		 `

	var code string
	err := r.db.QueryRowContext(ctx, query, loverID).Scan(&code)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}

	return code, nil
}
