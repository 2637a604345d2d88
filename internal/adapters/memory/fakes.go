package memory

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"
)

// ImageStore keeps uploaded objects in memory and serves them under a fake
// public base URL.
type ImageStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	deleted []string
	// UploadErr and DeleteErr, when set, are returned by every call.
	UploadErr error
	DeleteErr error
}

const publicBase = "https://storage.test/public/"

func NewImageStore() *ImageStore {
	return &ImageStore{objects: map[string][]byte{}}
}

func (s *ImageStore) Upload(ctx context.Context, path, contentType string, body io.Reader) (string, error) {
	if s.UploadErr != nil {
		return "", s.UploadErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	url := publicBase + path
	s.objects[url] = data
	return url, nil
}

func (s *ImageStore) Delete(ctx context.Context, publicURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, publicURL)
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	delete(s.objects, publicURL)
	return nil
}

// Put registers an object as if it had been uploaded.
func (s *ImageStore) Put(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[url] = nil
}

func (s *ImageStore) Has(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[url]
	return ok
}

func (s *ImageStore) Deleted() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.deleted...)
}

// AuthAdmin records provider admin calls.
type AuthAdmin struct {
	mu        sync.Mutex
	emails    map[uuid.UUID]string
	passwords map[uuid.UUID]string
	// Err, when set, is returned by every call.
	Err error
}

func NewAuthAdmin() *AuthAdmin {
	return &AuthAdmin{emails: map[uuid.UUID]string{}, passwords: map[uuid.UUID]string{}}
}

func (a *AuthAdmin) UpdateEmail(ctx context.Context, id uuid.UUID, email string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Err != nil {
		return a.Err
	}
	a.emails[id] = email
	return nil
}

func (a *AuthAdmin) UpdatePassword(ctx context.Context, id uuid.UUID, password string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Err != nil {
		return a.Err
	}
	a.passwords[id] = password
	return nil
}

func (a *AuthAdmin) Email(id uuid.UUID) (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	e, ok := a.emails[id]
	return e, ok
}

func (a *AuthAdmin) Password(id uuid.UUID) (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	p, ok := a.passwords[id]
	return p, ok
}

// Invalidator records InvalidateUser calls.
type Invalidator struct {
	mu  sync.Mutex
	ids []uuid.UUID
}

func (i *Invalidator) InvalidateUser(id uuid.UUID) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.ids = append(i.ids, id)
}

func (i *Invalidator) Invalidated() []uuid.UUID {
	i.mu.Lock()
	defer i.mu.Unlock()
	return append([]uuid.UUID(nil), i.ids...)
}
