package service

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"time"

	"github.com/dropkit/dropkit/internal/model"
	"github.com/dropkit/dropkit/internal/repository"
	"github.com/dropkit/dropkit/internal/storage"
	"github.com/dropkit/dropkit/internal/validation"
	"github.com/google/uuid"
)

var (
	ErrBlobUnavailable = errors.New("stored file unavailable")
)

type FileService struct {
	files           repository.FileRepository
	storage         storage.Storage
	presignDownload bool
	presignExpiry   time.Duration
}

func NewFileService(files repository.FileRepository, storage storage.Storage, presignDownload bool, presignExpiry time.Duration) *FileService {
	return &FileService{
		files:           files,
		storage:         storage,
		presignDownload: presignDownload,
		presignExpiry:   presignExpiry,
	}
}

// Upload saves the payload to blob storage under a timestamp-prefixed name and
// creates the file record with an empty access log.
// The timestamp prefix keeps names unique in practice, not by guarantee, and
// the blob write is not transactional with the record write: a crash in
// between leaves an orphan blob.
func (s *FileService) Upload(userID string, file multipart.File, header *multipart.FileHeader) (*model.File, error) {
	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), validation.SanitizeFilename(header.Filename))

	err := s.storage.Save(filename, file)
	if err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	fileModel := &model.File{
		ID:         uuid.New().String(),
		Filename:   filename,
		UploaderID: userID,
		MimeType:   header.Header.Get("Content-Type"),
		Size:       header.Size,
		CreatedAt:  time.Now(),
	}

	err = s.files.Create(fileModel)
	if err != nil {
		// If DB insert fails, try to cleanup the uploaded blob
		delErr := s.storage.Delete(filename)
		if delErr != nil {
			slog.Error("failed to delete blob during cleanup", "error", delErr, "filename", filename)
		}
		return nil, fmt.Errorf("failed to create file record: %w", err)
	}

	return fileModel, nil
}

// Access appends one successful entry to the file's access log and returns the
// file with its full log. Every access is recorded even if the caller never
// downloads the blob.
func (s *FileService) Access(fileID, userID string) (*model.File, []model.AccessEntry, error) {
	file, err := s.files.ByID(fileID)
	if err != nil {
		if errors.Is(err, repository.ErrFileNotFound) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("failed to get file: %w", err)
	}

	err = s.files.AppendAccess(fileID, userID, model.AccessStatusSuccessful)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to append access entry: %w", err)
	}

	entries, err := s.files.AccessLog(fileID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read access log: %w", err)
	}

	return file, entries, nil
}

// FileByID looks up a file record without touching the access log.
func (s *FileService) FileByID(fileID string) (*model.File, error) {
	return s.files.ByID(fileID)
}

// FilesByUploader returns all files uploaded by a user, newest first.
func (s *FileService) FilesByUploader(userID string) ([]*model.File, error) {
	return s.files.ByUploader(userID)
}

// OpenBlob returns a reader for the file's stored bytes. A record whose blob
// is gone (deleted out-of-band, path mismatch) maps to ErrBlobUnavailable.
func (s *FileService) OpenBlob(file *model.File) (io.ReadCloser, error) {
	rc, err := s.storage.Open(file.Filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBlobUnavailable, err)
	}
	return rc, nil
}

// RedirectURL returns a presigned download URL when the blob lives in S3 and
// presigned downloads are enabled. Otherwise the caller streams the blob.
func (s *FileService) RedirectURL(file *model.File) (string, bool) {
	if !s.presignDownload {
		return "", false
	}

	s3Storage, ok := s.storage.(*storage.S3Storage)
	if !ok {
		return "", false
	}

	url, err := s3Storage.PresignedURL(file.Filename, s.presignExpiry)
	if err != nil {
		slog.Warn("failed to presign download URL, falling back to streaming", "error", err, "file_id", file.ID)
		return "", false
	}

	return url, true
}
