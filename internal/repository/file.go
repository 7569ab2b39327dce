package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/dropkit/dropkit/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrFileNotFound = errors.New("file not found")
)

type FileRepository interface {
	Create(file *model.File) error
	ByID(id string) (*model.File, error)
	ByUploader(uploaderID string) ([]*model.File, error)
	AppendAccess(fileID, userID, status string) error
	AccessLog(fileID string) ([]model.AccessEntry, error)
}

type fileRepository struct {
	db *sqlx.DB
}

func NewFileRepository(db *sqlx.DB) FileRepository {
	return &fileRepository{db: db}
}

func (r *fileRepository) Create(file *model.File) error {
	query := `INSERT INTO files (id, filename, uploader_id, mime_type, size, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query,
		file.ID,
		file.Filename,
		file.UploaderID,
		file.MimeType,
		file.Size,
		file.CreatedAt,
	)

	return err
}

func (r *fileRepository) ByID(id string) (*model.File, error) {
	file := &model.File{}
	query := `SELECT * FROM files WHERE id = $1`

	err := r.db.Get(file, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrFileNotFound
	}

	return file, err
}

func (r *fileRepository) ByUploader(uploaderID string) ([]*model.File, error) {
	var files []*model.File
	query := `SELECT * FROM files WHERE uploader_id = $1 ORDER BY created_at DESC`

	err := r.db.Select(&files, query, uploaderID)
	if err != nil {
		return nil, err
	}

	return files, nil
}

// AppendAccess records one access as a single INSERT. Ordering comes from the
// seq autoincrement, so concurrent appends against the same file cannot
// overwrite each other.
func (r *fileRepository) AppendAccess(fileID, userID, status string) error {
	query := `INSERT INTO file_access_logs (file_id, user_id, status, created_at)
	          VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(query, fileID, userID, status, time.Now())
	return err
}

func (r *fileRepository) AccessLog(fileID string) ([]model.AccessEntry, error) {
	var entries []model.AccessEntry
	query := `SELECT * FROM file_access_logs WHERE file_id = $1 ORDER BY seq`

	err := r.db.Select(&entries, query, fileID)
	if err != nil {
		return nil, err
	}

	return entries, nil
}
