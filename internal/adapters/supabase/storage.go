package supabase

import (
	"context"
	"fmt"
	"io"
	"strings"

	storage_go "github.com/supabase-community/storage-go"

	postports "github.com/philly/inkwell/internal/posts/ports"
	profileports "github.com/philly/inkwell/internal/profiles/ports"
)

// Storage puts objects in a public bucket.
type Storage struct {
	client *Client
}

func NewStorage(client *Client) *Storage {
	return &Storage{client: client}
}

func (s *Storage) Upload(ctx context.Context, path, contentType string, body io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("Storage.Upload: %w", err)
	}
	upsert := false
	_, err := s.client.storage.UploadFile(s.client.bucket, path, body, storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("Storage.Upload: %w", err)
	}
	return s.PublicURL(path), nil
}

// Delete removes the object behind a URL previously returned by Upload.
// URLs outside the bucket are ignored.
func (s *Storage) Delete(ctx context.Context, publicURL string) error {
	path, ok := s.objectPath(publicURL)
	if !ok {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("Storage.Delete: %w", err)
	}
	if _, err := s.client.storage.RemoveFile(s.client.bucket, []string{path}); err != nil {
		return fmt.Errorf("Storage.Delete: %w", err)
	}
	return nil
}

func (s *Storage) PublicURL(path string) string {
	return s.publicPrefix() + strings.TrimLeft(path, "/")
}

func (s *Storage) publicPrefix() string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/", s.client.baseURL, s.client.bucket)
}

func (s *Storage) objectPath(publicURL string) (string, bool) {
	path, ok := strings.CutPrefix(publicURL, s.publicPrefix())
	if !ok || path == "" {
		return "", false
	}
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	return path, path != ""
}

var (
	_ postports.ImageStore    = (*Storage)(nil)
	_ profileports.ImageStore = (*Storage)(nil)
)
