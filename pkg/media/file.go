// Package media manages the image attachments of a question or community
// post being composed: validation, preview handles and their release.
package media

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	clierrors "github.com/neighborbank/cli/pkg/errors"
)

const (
	// MaxAttachments is the most files one post can carry.
	MaxAttachments = 5
	// MaxFileSize is the exclusive upper bound on an attachment's size.
	MaxFileSize int64 = 2_097_152
)

// File is a candidate attachment. Either Path or Content holds the bytes.
type File struct {
	Name     string
	MimeType string
	Size     int64
	Path     string
	Content  []byte
}

// OpenFile describes a file on disk. The MIME type is sniffed from the
// file's content; the extension is not trusted.
func OpenFile(path string) (File, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return File{}, clierrors.FileNotFoundError(path)
		}
		return File{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return File{}, clierrors.ValidationError("file", fmt.Sprintf("%s is a directory", path))
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to detect type of %s: %w", path, err)
	}

	return File{
		Name:     filepath.Base(path),
		MimeType: mtype.String(),
		Size:     info.Size(),
		Path:     path,
	}, nil
}

// FromBytes describes an in-memory file, sniffing its MIME type.
func FromBytes(name string, data []byte) File {
	return File{
		Name:     name,
		MimeType: mimetype.Detect(data).String(),
		Size:     int64(len(data)),
		Content:  data,
	}
}

// Validate reports why f cannot be attached, or nil if it can.
func Validate(f File) error {
	if !strings.HasPrefix(f.MimeType, "image/") {
		return clierrors.AttachmentWrongTypeError(f.Name, f.MimeType)
	}
	if f.Size >= MaxFileSize {
		return clierrors.AttachmentTooLargeError(f.Name, f.Size, MaxFileSize)
	}
	return nil
}

// FileName implements api.Attachment
func (f File) FileName() string { return f.Name }

// ContentType implements api.Attachment
func (f File) ContentType() string { return f.MimeType }

// Open implements api.Attachment
func (f File) Open() (io.ReadCloser, error) {
	if f.Content != nil || f.Path == "" {
		return io.NopCloser(bytes.NewReader(f.Content)), nil
	}
	return os.Open(f.Path)
}
