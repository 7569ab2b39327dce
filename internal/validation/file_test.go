package validation

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "report.pdf", "report.pdf"},
		{"unix path", "../../etc/passwd", "passwd"},
		{"windows path", `C:\Users\evil\trojan.exe`, "trojan.exe"},
		{"empty", "", "upload"},
		{"dot", ".", "upload"},
		{"slash only", "/", "upload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.in))
		})
	}
}

func TestValidateUpload(t *testing.T) {
	header := &multipart.FileHeader{Filename: "a.bin", Size: 10 << 20}

	require.NoError(t, ValidateUpload(header, 32<<20))
	require.Error(t, ValidateUpload(header, 1<<20))
	require.NoError(t, ValidateUpload(header, 0), "zero max means unlimited")
}
