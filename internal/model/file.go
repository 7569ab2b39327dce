package model

import (
	"time"
)

const (
	// AccessStatusSuccessful is the only status the service records today.
	// The column stays open for failure statuses.
	AccessStatusSuccessful = "successful"
)

type File struct {
	ID         string    `db:"id" json:"id"`
	Filename   string    `db:"filename" json:"filename"` // Stored blob name, timestamp-prefixed
	UploaderID string    `db:"uploader_id" json:"uploaderId"`
	MimeType   string    `db:"mime_type" json:"mimeType"`
	Size       int64     `db:"size" json:"size"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}

// AccessEntry is one row of a file's append-only access log. Entries are
// owned by their file and never mutated after insert.
type AccessEntry struct {
	Seq       int64     `db:"seq" json:"-"`
	FileID    string    `db:"file_id" json:"-"`
	UserID    string    `db:"user_id" json:"userId"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
