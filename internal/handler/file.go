package handler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/dropkit/dropkit/internal/ctxkeys"
	"github.com/dropkit/dropkit/internal/model"
	"github.com/dropkit/dropkit/internal/repository"
	"github.com/dropkit/dropkit/internal/validation"
)

// FileService is the surface of service.FileService the handlers use.
type FileService interface {
	Upload(userID string, file multipart.File, header *multipart.FileHeader) (*model.File, error)
	Access(fileID, userID string) (*model.File, []model.AccessEntry, error)
	FileByID(fileID string) (*model.File, error)
	FilesByUploader(userID string) ([]*model.File, error)
	OpenBlob(file *model.File) (io.ReadCloser, error)
	RedirectURL(file *model.File) (string, bool)
}

type FileHandler struct {
	files         FileService
	maxUploadSize int64
}

func NewFileHandler(files FileService, maxUploadSize int64) *FileHandler {
	return &FileHandler{
		files:         files,
		maxUploadSize: maxUploadSize,
	}
}

// Upload accepts one multipart file part and creates the file record.
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.CallerID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	err := r.ParseMultipartForm(h.maxUploadSize)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"message": "Failed to parse form"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"message": "No file uploaded"})
		return
	}
	defer func() {
		closeErr := file.Close()
		if closeErr != nil {
			slog.Error("failed to close uploaded file", "error", closeErr)
		}
	}()

	err = validation.ValidateUpload(header, h.maxUploadSize)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}

	_, err = h.files.Upload(userID, file, header)
	if err != nil {
		slog.Error("failed to upload file", "error", err, "user_id", userID)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"message": "Error uploading file"})
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"message": "File uploaded successfully"})
}

// Access returns file metadata and the full access log, appending one entry.
// This is the only handler that writes to the log.
func (h *FileHandler) Access(w http.ResponseWriter, r *http.Request) {
	fileID := r.PathValue("id")
	userID := ctxkeys.CallerID(r.Context())

	file, entries, err := h.files.Access(fileID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrFileNotFound) {
			respondJSON(w, http.StatusNotFound, map[string]string{"message": "File not found"})
			return
		}
		slog.Error("failed to access file", "error", err, "file_id", fileID)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"message": "Error accessing file"})
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message":   "File accessed",
		"file":      file.Filename,
		"accessLog": entries,
	})
}

// Download streams the stored blob. It never touches the access log.
func (h *FileHandler) Download(w http.ResponseWriter, r *http.Request) {
	fileID := r.PathValue("id")

	file, err := h.files.FileByID(fileID)
	if err != nil {
		if errors.Is(err, repository.ErrFileNotFound) {
			respondJSON(w, http.StatusNotFound, map[string]string{"message": "File not found"})
			return
		}
		slog.Error("failed to get file for download", "error", err, "file_id", fileID)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"message": "Error accessing file"})
		return
	}

	if url, ok := h.files.RedirectURL(file); ok {
		http.Redirect(w, r, url, http.StatusSeeOther)
		return
	}

	blob, err := h.files.OpenBlob(file)
	if err != nil {
		slog.Error("failed to open blob", "error", err, "file_id", fileID)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"message": "Error downloading file"})
		return
	}
	defer func() {
		closeErr := blob.Close()
		if closeErr != nil {
			slog.Error("failed to close blob", "error", closeErr)
		}
	}()

	if file.MimeType != "" {
		w.Header().Set("Content-Type", file.MimeType)
	} else {
		w.Header().Set("Content-Type", "application/octet-stream")
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))

	_, err = io.Copy(w, blob)
	if err != nil {
		slog.Error("failed to stream blob", "error", err, "file_id", fileID)
	}
}

// List returns all files uploaded by the caller, newest first.
func (h *FileHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.CallerID(r.Context())

	files, err := h.files.FilesByUploader(userID)
	if err != nil {
		slog.Error("failed to list files", "error", err, "user_id", userID)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"message": "Error listing files"})
		return
	}
	if files == nil {
		files = []*model.File{}
	}

	respondJSON(w, http.StatusOK, map[string]any{"files": files})
}
