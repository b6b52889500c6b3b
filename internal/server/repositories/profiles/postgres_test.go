package profiles

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/wolfdeveloper/wolfdevlovers/internal/common"
	"github.com/wolfdeveloper/wolfdevlovers/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const (
	insertUserQ  = `(?s)^INSERT\s+INTO\s+users\s*\(code,\s*my_name,\s*name_lover,\s*plus,\s*spotify,\s*instagram,\s*whatssap\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6,\s*\$7\)\s*RETURNING\s+id\s*$`
	insertLoverQ = `(?s)^INSERT\s+INTO\s+lovers\s*\(user_id,\s*position,\s*text_lover,\s*music\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*RETURNING\s+id\s*$`
	selectUserQ  = `(?s)^SELECT\s+id,\s*code,\s*my_name,\s*name_lover,\s*plus,\s*spotify,\s*instagram,\s*whatssap,\s*profile_image,\s*background_image\s+FROM\s+users\s+WHERE\s+code\s*=\s*\$1\s*$`
	selectLoverQ = `(?s)^SELECT\s+id,\s*position,\s*text_lover,\s*music,\s*image\s+FROM\s+lovers\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+position\s*$`
)

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(insertUserQ).
		WithArgs("abc123", "Alice", "Bob", "5 years", "spotify", "insta", "555").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectQuery(insertLoverQ).
		WithArgs(int64(7), 0, "first date", "track1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(101)))
	mock.ExpectQuery(insertLoverQ).
		WithArgs(int64(7), 1, "the trip", "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(102)))
	mock.ExpectCommit()

	u := &models.User{
		Code: "abc123", MyName: "Alice", NameLover: "Bob",
		Plus: "5 years", Spotify: "spotify", Instagram: "insta", Whatssap: "555",
		Lovers: []models.Lover{
			{TextLover: "first date", Music: "track1"},
			{TextLover: "the trip"},
		},
	}
	got, err := repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 7 || got.Lovers[0].ID != 101 || got.Lovers[1].ID != 102 {
		t.Fatalf("unexpected user: %+v", got)
	}
	if got.Lovers[1].Position != 1 {
		t.Fatalf("unexpected lover position: %+v", got.Lovers[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_LoverInsertFailsRollsBack(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(insertUserQ).
		WithArgs("abc123", "Alice", "Bob", "", "", "", "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectQuery(insertLoverQ).
		WithArgs(int64(7), 0, "first date", "").
		WillReturnError(errors.New("db down"))
	mock.ExpectRollback()

	u := &models.User{
		Code: "abc123", MyName: "Alice", NameLover: "Bob",
		Lovers: []models.Lover{{TextLover: "first date"}},
	}
	_, err := repo.Create(context.Background(), u)
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetByCode_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	userRows := sqlmock.NewRows([]string{
		"id", "code", "my_name", "name_lover", "plus",
		"spotify", "instagram", "whatssap", "profile_image", "background_image",
	}).AddRow(int64(7), "abc123", "Alice", "Bob", "5 years", "", "", "", "p.png", "b.png")
	mock.ExpectQuery(selectUserQ).WithArgs("abc123").WillReturnRows(userRows)

	loverRows := sqlmock.NewRows([]string{"id", "position", "text_lover", "music", "image"}).
		AddRow(int64(101), 0, "first date", "track1", "l1.png").
		AddRow(int64(102), 1, "the trip", "", "")
	mock.ExpectQuery(selectLoverQ).WithArgs(int64(7)).WillReturnRows(loverRows)

	got, err := repo.GetByCode(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("GetByCode error: %v", err)
	}
	if got.ID != 7 || got.MyName != "Alice" || got.ProfileImage != "p.png" {
		t.Fatalf("unexpected user: %+v", got)
	}
	if len(got.Lovers) != 2 || got.Lovers[0].ID != 101 || got.Lovers[1].TextLover != "the trip" {
		t.Fatalf("unexpected lovers: %+v", got.Lovers)
	}
}

func TestGetByCode_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectUserQ).WithArgs("missing").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByCode(context.Background(), "missing")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestSetProfileImage(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+users\s+SET\s+profile_image\s*=\s*\$1\s+WHERE\s+code\s*=\s*\$2\s*$`
	mock.ExpectExec(q).
		WithArgs("http://media/p.png", "abc123").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetProfileImage(context.Background(), "abc123", "http://media/p.png"); err != nil {
		t.Fatalf("SetProfileImage error: %v", err)
	}
}

func TestSetBackgroundImage_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+users\s+SET\s+background_image\s*=\s*\$1\s+WHERE\s+code\s*=\s*\$2\s*$`
	mock.ExpectExec(q).
		WithArgs("http://media/b.png", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetBackgroundImage(context.Background(), "missing", "http://media/b.png")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestSetLoverImage(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+lovers\s+SET\s+image\s*=\s*\$1\s+WHERE\s+id\s*=\s*\$2\s*$`
	mock.ExpectExec(q).
		WithArgs("http://media/l.png", int64(101)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetLoverImage(context.Background(), 101, "http://media/l.png"); err != nil {
		t.Fatalf("SetLoverImage error: %v", err)
	}
}

func TestCodeForLover(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+u\.code\s+FROM\s+users\s+u\s+JOIN\s+lovers\s+l\s+ON\s+l\.user_id\s*=\s*u\.id\s+WHERE\s+l\.id\s*=\s*\$1\s*$`
	mock.ExpectQuery(q).
		WithArgs(int64(101)).
		WillReturnRows(sqlmock.NewRows([]string{"code"}).AddRow("abc123"))

	code, err := repo.CodeForLover(context.Background(), 101)
	if err != nil {
		t.Fatalf("CodeForLover error: %v", err)
	}
	if code != "abc123" {
		t.Fatalf("unexpected code: %q", code)
	}
}

func TestCodeForLover_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+u\.code\s+FROM\s+users\s+u\s+JOIN\s+lovers\s+l\s+ON\s+l\.user_id\s*=\s*u\.id\s+WHERE\s+l\.id\s*=\s*\$1\s*$`
	mock.ExpectQuery(q).
		WithArgs(int64(999)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.CodeForLover(context.Background(), 999)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}
