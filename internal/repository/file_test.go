package repository

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dropkit/dropkit/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestFileRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFileRepository(db)

	now := time.Now()
	file := &model.File{
		ID:         "f1",
		Filename:   "123-a.txt",
		UploaderID: "user-1",
		MimeType:   "text/plain",
		Size:       9,
		CreatedAt:  now,
	}

	mock.ExpectExec("INSERT INTO files").
		WithArgs("f1", "123-a.txt", "user-1", "text/plain", int64(9), now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Create(file))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFileRepository_ByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFileRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "filename", "uploader_id", "mime_type", "size", "created_at"}).
		AddRow("f1", "123-a.txt", "user-1", "text/plain", 9, now)

	mock.ExpectQuery(`SELECT \* FROM files WHERE id = \$1`).
		WithArgs("f1").
		WillReturnRows(rows)

	file, err := repo.ByID("f1")
	require.NoError(t, err)
	assert.Equal(t, "123-a.txt", file.Filename)
	assert.Equal(t, "user-1", file.UploaderID)
}

func TestFileRepository_ByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFileRepository(db)

	mock.ExpectQuery(`SELECT \* FROM files WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.ByID("missing")
	require.ErrorIs(t, err, ErrFileNotFound)
}

func TestFileRepository_AppendAccessIsSingleInsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFileRepository(db)

	mock.ExpectExec("INSERT INTO file_access_logs").
		WithArgs("f1", "user-1", model.AccessStatusSuccessful, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.AppendAccess("f1", "user-1", model.AccessStatusSuccessful))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFileRepository_AccessLogOrderedBySeq(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFileRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"seq", "file_id", "user_id", "status", "created_at"}).
		AddRow(1, "f1", "user-1", "successful", now).
		AddRow(2, "f1", "user-2", "successful", now)

	mock.ExpectQuery(`SELECT \* FROM file_access_logs WHERE file_id = \$1 ORDER BY seq`).
		WithArgs("f1").
		WillReturnRows(rows)

	entries, err := repo.AccessLog("f1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(1), entries[0].Seq)
	assert.Equal(t, "user-1", entries[0].UserID)
	assert.Equal(t, int64(2), entries[1].Seq)
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("UNIQUE constraint failed: users.clerk_user_id"))

	err := repo.Create(&model.User{ID: "1", ClerkUserID: "u1", Email: "a@b.com", CreatedAt: time.Now()})
	require.ErrorIs(t, err, ErrDuplicateUser)
}

func TestUserRepository_CreateDuplicatePostgres(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New(`duplicate key value violates unique constraint "users_clerk_user_id_key"`))

	err := repo.Create(&model.User{ID: "1", ClerkUserID: "u1", Email: "a@b.com", CreatedAt: time.Now()})
	require.ErrorIs(t, err, ErrDuplicateUser)
}

func TestUserRepository_ByClerkIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM users WHERE clerk_user_id = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.ByClerkID("missing")
	require.ErrorIs(t, err, ErrUserNotFound)
}
