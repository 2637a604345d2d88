// Package upload validates user-supplied image files before they are sent
// to object storage.
package upload

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const MaxImageBytes = 5 << 20

var (
	ErrEmptyFile  = errors.New("file is empty")
	ErrTooLarge   = fmt.Errorf("file exceeds %d MB", MaxImageBytes>>20)
	ErrNotAnImage = errors.New("file must be a JPEG, PNG, GIF or WebP image")
)

var allowed = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Image is a sniffed, size-checked upload held in memory.
type Image struct {
	Data        []byte
	ContentType string
	Ext         string
}

func (i *Image) Reader() io.Reader { return bytes.NewReader(i.Data) }

// ReadImage reads at most MaxImageBytes from r and detects the type from
// the content, ignoring any client-declared content type.
func ReadImage(r io.Reader) (*Image, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	if len(data) > MaxImageBytes {
		return nil, ErrTooLarge
	}

	mt := mimetype.Detect(data)
	ct := strings.SplitN(mt.String(), ";", 2)[0]
	ext, ok := allowed[ct]
	if !ok {
		return nil, ErrNotAnImage
	}
	return &Image{Data: data, ContentType: ct, Ext: ext}, nil
}

// ObjectPath builds "<prefix>/<owner>/<random><ext>".
func ObjectPath(prefix string, owner uuid.UUID, ext string) string {
	return path.Join(prefix, owner.String(), uuid.NewString()+ext)
}
