package application_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philly/inkwell/internal/adapters/memory"
	authzapp "github.com/philly/inkwell/internal/authz/application"
	authz "github.com/philly/inkwell/internal/authz/domain"
	"github.com/philly/inkwell/internal/platform/apperror"
	"github.com/philly/inkwell/internal/platform/logger"
	"github.com/philly/inkwell/internal/platform/pagination"
	"github.com/philly/inkwell/internal/profiles/application"
	"github.com/philly/inkwell/internal/profiles/domain"
	"github.com/philly/inkwell/internal/profiles/ports"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")

func testLogger() logger.Logger {
	return logger.NewSlogAdapterWithWriter(io.Discard, "test", "error")
}

func principal(role authz.Role) *authz.Principal {
	return &authz.Principal{
		Identity: authz.Identity{ID: uuid.New(), Email: "someone@example.com"},
		Role:     role,
	}
}

type profileFixture struct {
	store  *memory.Store
	images *memory.ImageStore
	svc    *application.ProfileService
}

func newProfileFixture() *profileFixture {
	store := memory.NewStore()
	images := memory.NewImageStore()
	return &profileFixture{
		store:  store,
		images: images,
		svc:    application.NewProfileService(store.Profiles(), images, testLogger()),
	}
}

func TestProfileGet(t *testing.T) {
	t.Run("requires identity", func(t *testing.T) {
		f := newProfileFixture()
		_, err := f.svc.Get(context.Background(), nil)
		assert.ErrorIs(t, err, authzapp.ErrAuthenticationRequired)
	})

	t.Run("default view when no row exists", func(t *testing.T) {
		f := newProfileFixture()
		actor := principal(authz.RoleAdmin)

		p, err := f.svc.Get(context.Background(), actor)
		require.NoError(t, err)
		assert.Equal(t, actor.ID, p.ID)
		assert.Equal(t, actor.Email, p.Email)
		assert.Equal(t, authz.RoleAdmin, p.Role)
		assert.Empty(t, p.Username)
	})
}

func TestProfileUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the row on first write", func(t *testing.T) {
		f := newProfileFixture()
		actor := principal(authz.RoleUser)

		p, err := f.svc.Update(ctx, actor, application.UpdateProfileParams{Username: " ada.l ", Name: "Ada"})
		require.NoError(t, err)
		assert.Equal(t, "ada.l", p.Username)

		stored, err := f.store.Profiles().FindByID(ctx, actor.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ada", stored.Name)
		assert.Equal(t, authz.RoleUser, stored.Role)
	})

	t.Run("rejects usernames outside the pattern", func(t *testing.T) {
		f := newProfileFixture()
		for _, name := range []string{"ab", "has space", "way-too-long-username-here", "emoji🙂"} {
			_, err := f.svc.Update(ctx, principal(authz.RoleUser), application.UpdateProfileParams{Username: name})
			assert.ErrorIs(t, err, application.ErrInvalidUsername, name)
		}
	})

	t.Run("username differing only in case conflicts", func(t *testing.T) {
		f := newProfileFixture()
		f.store.PutProfile(domain.Profile{ID: uuid.New(), Username: "Alice"})

		_, err := f.svc.Update(ctx, principal(authz.RoleUser), application.UpdateProfileParams{Username: "alice"})
		require.ErrorIs(t, err, application.ErrUsernameTaken)

		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusConflict, appErr.HTTPStatus)
	})

	t.Run("keeping your own username is not a conflict", func(t *testing.T) {
		f := newProfileFixture()
		actor := principal(authz.RoleUser)
		f.store.PutProfile(domain.Profile{ID: actor.ID, Username: "Alice"})

		_, err := f.svc.Update(ctx, actor, application.UpdateProfileParams{Username: "ALICE"})
		assert.NoError(t, err)
	})

	t.Run("role is never written", func(t *testing.T) {
		f := newProfileFixture()
		actor := principal(authz.RoleUser)
		f.store.PutProfile(domain.Profile{ID: actor.ID, Username: "bob", Role: authz.RoleUser})
		actor.Role = authz.RoleSuperadmin

		_, err := f.svc.Update(ctx, actor, application.UpdateProfileParams{Username: "bob"})
		require.NoError(t, err)

		stored, err := f.store.Profiles().FindByID(ctx, actor.ID)
		require.NoError(t, err)
		assert.Equal(t, authz.RoleUser, stored.Role)
	})

	t.Run("replaced avatar is deleted after the save", func(t *testing.T) {
		f := newProfileFixture()
		actor := principal(authz.RoleUser)
		old := "https://storage.test/public/avatars/old.png"
		f.images.Put(old)
		f.store.PutProfile(domain.Profile{ID: actor.ID, Username: "carol", ProfilePic: &old})

		next := "https://storage.test/public/avatars/new.png"
		p, err := f.svc.Update(ctx, actor, application.UpdateProfileParams{Username: "carol", ProfilePic: &next})
		require.NoError(t, err)
		assert.Equal(t, next, p.AvatarURL())
		assert.False(t, f.images.Has(old))
	})

	t.Run("failed save keeps the old avatar", func(t *testing.T) {
		f := newProfileFixture()
		actor := principal(authz.RoleUser)
		old := "https://storage.test/public/avatars/old.png"
		f.images.Put(old)
		f.store.PutProfile(domain.Profile{ID: actor.ID, Username: "carol", ProfilePic: &old})
		f.store.FailOn("profiles.Save", memory.ErrInjected)

		next := "https://storage.test/public/avatars/new.png"
		_, err := f.svc.Update(ctx, actor, application.UpdateProfileParams{Username: "carol", ProfilePic: &next})
		require.Error(t, err)
		assert.True(t, f.images.Has(old))
		assert.Empty(t, f.images.Deleted())
	})
}

func TestUploadAvatar(t *testing.T) {
	ctx := context.Background()
	f := newProfileFixture()
	actor := principal(authz.RoleUser)

	url, err := f.svc.UploadAvatar(ctx, actor, bytes.NewReader(pngHeader))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://storage.test/public/avatars/"+actor.ID.String()+"/"))
	assert.True(t, strings.HasSuffix(url, ".png"))
	assert.True(t, f.images.Has(url))

	_, err = f.svc.UploadAvatar(ctx, actor, strings.NewReader("plain text, not an image"))
	assert.ErrorIs(t, err, application.ErrInvalidImage)
}

type adminFixture struct {
	store       *memory.Store
	auth        *memory.AuthAdmin
	invalidator *memory.Invalidator
	svc         *application.AdminService
}

func newAdminFixture() *adminFixture {
	store := memory.NewStore()
	auth := memory.NewAuthAdmin()
	inv := &memory.Invalidator{}
	return &adminFixture{
		store:       store,
		auth:        auth,
		invalidator: inv,
		svc:         application.NewAdminService(store.Profiles(), auth, inv, memory.NewImageStore(), testLogger()),
	}
}

func strPtr(s string) *string { return &s }

func TestAdminRequiresSuperadmin(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()

	for _, actor := range []*authz.Principal{principal(authz.RoleUser), principal(authz.RoleAdmin)} {
		_, err := f.svc.UpdateUser(ctx, actor, application.AdminUpdateParams{UserID: uuid.New(), Name: strPtr("x")})
		assert.ErrorIs(t, err, authzapp.ErrPermissionDenied)

		err = f.svc.ResetPassword(ctx, actor, uuid.New(), "long-enough")
		assert.ErrorIs(t, err, authzapp.ErrPermissionDenied)

		_, err = f.svc.ListUsers(ctx, actor, ports.ListFilter{})
		assert.ErrorIs(t, err, authzapp.ErrPermissionDenied)
	}

	_, err := f.svc.ListUsers(ctx, nil, ports.ListFilter{})
	assert.ErrorIs(t, err, authzapp.ErrAuthenticationRequired)
}

func TestAdminUpdateUser(t *testing.T) {
	ctx := context.Background()
	super := principal(authz.RoleSuperadmin)

	t.Run("email change goes through the provider first", func(t *testing.T) {
		f := newAdminFixture()
		target := uuid.New()
		f.store.PutProfile(domain.Profile{ID: target, Email: "old@example.com", Username: "target"})

		p, err := f.svc.UpdateUser(ctx, super, application.AdminUpdateParams{
			UserID: target,
			Email:  strPtr("new@example.com"),
			Role:   strPtr("admin"),
		})
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", p.Email)
		assert.Equal(t, authz.RoleAdmin, p.Role)

		email, called := f.auth.Email(target)
		assert.True(t, called)
		assert.Equal(t, "new@example.com", email)
	})

	t.Run("unchanged email skips the provider", func(t *testing.T) {
		f := newAdminFixture()
		target := uuid.New()
		f.store.PutProfile(domain.Profile{ID: target, Email: "same@example.com"})

		_, err := f.svc.UpdateUser(ctx, super, application.AdminUpdateParams{UserID: target, Email: strPtr("SAME@example.com")})
		require.NoError(t, err)
		_, called := f.auth.Email(target)
		assert.False(t, called)
	})

	t.Run("provider rejection passes its message through as 400", func(t *testing.T) {
		f := newAdminFixture()
		f.auth.Err = &ports.ProviderError{Status: http.StatusUnprocessableEntity, Message: "email address already registered"}

		_, err := f.svc.UpdateUser(ctx, super, application.AdminUpdateParams{UserID: uuid.New(), Email: strPtr("dup@example.com")})
		require.ErrorIs(t, err, application.ErrProviderRejected)
		appErr, _ := apperror.As(err)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
		assert.Equal(t, "email address already registered", appErr.Message)
	})

	t.Run("provider outage is a 500", func(t *testing.T) {
		f := newAdminFixture()
		f.auth.Err = &ports.ProviderError{Status: http.StatusBadGateway, Message: "upstream"}

		_, err := f.svc.UpdateUser(ctx, super, application.AdminUpdateParams{UserID: uuid.New(), Email: strPtr("x@example.com")})
		assert.ErrorIs(t, err, application.ErrProviderUnavailable)
	})

	t.Run("invalid email and role", func(t *testing.T) {
		f := newAdminFixture()
		_, err := f.svc.UpdateUser(ctx, super, application.AdminUpdateParams{UserID: uuid.New(), Email: strPtr("not-an-email")})
		assert.ErrorIs(t, err, application.ErrInvalidEmail)

		_, err = f.svc.UpdateUser(ctx, super, application.AdminUpdateParams{UserID: uuid.New(), Role: strPtr("owner")})
		assert.ErrorIs(t, err, application.ErrInvalidRole)
	})

	t.Run("username uniqueness excludes the user's own row", func(t *testing.T) {
		f := newAdminFixture()
		target := uuid.New()
		f.store.PutProfile(domain.Profile{ID: target, Username: "Mallory"})
		f.store.PutProfile(domain.Profile{ID: uuid.New(), Username: "trent"})

		_, err := f.svc.UpdateUser(ctx, super, application.AdminUpdateParams{UserID: target, Username: strPtr("mallory")})
		assert.NoError(t, err)

		_, err = f.svc.UpdateUser(ctx, super, application.AdminUpdateParams{UserID: target, Username: strPtr("TRENT")})
		assert.ErrorIs(t, err, application.ErrUsernameTaken)
	})

	t.Run("cannot demote yourself", func(t *testing.T) {
		f := newAdminFixture()
		_, err := f.svc.UpdateUser(ctx, super, application.AdminUpdateParams{UserID: super.ID, Role: strPtr("user")})
		assert.ErrorIs(t, err, application.ErrCannotDemoteSelf)
	})
}

func TestAdminResetPassword(t *testing.T) {
	ctx := context.Background()
	super := principal(authz.RoleSuperadmin)

	t.Run("short password", func(t *testing.T) {
		f := newAdminFixture()
		err := f.svc.ResetPassword(ctx, super, uuid.New(), "1234567")
		require.ErrorIs(t, err, application.ErrPasswordTooShort)
		appErr, _ := apperror.As(err)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	})

	t.Run("sets password and revokes sessions", func(t *testing.T) {
		f := newAdminFixture()
		target := uuid.New()

		require.NoError(t, f.svc.ResetPassword(ctx, super, target, "12345678"))

		pw, ok := f.auth.Password(target)
		assert.True(t, ok)
		assert.Equal(t, "12345678", pw)

		stored, err := f.store.Profiles().FindByID(ctx, target)
		require.NoError(t, err)
		assert.NotNil(t, stored.SessionsRevokedAt)
		assert.Equal(t, []uuid.UUID{target}, f.invalidator.Invalidated())
	})

	t.Run("provider failure revokes nothing", func(t *testing.T) {
		f := newAdminFixture()
		f.auth.Err = &ports.ProviderError{Status: http.StatusBadRequest, Message: "weak password"}
		target := uuid.New()

		err := f.svc.ResetPassword(ctx, super, target, "12345678")
		assert.ErrorIs(t, err, application.ErrProviderRejected)
		assert.Empty(t, f.invalidator.Invalidated())
	})
}

func TestAdminListUsers(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()
	for _, name := range []string{"alpha", "alphonse", "beta"} {
		f.store.PutProfile(domain.Profile{ID: uuid.New(), Username: name, Email: name + "@example.com"})
	}

	page, err := f.svc.ListUsers(ctx, principal(authz.RoleSuperadmin), ports.ListFilter{Query: " ALPH ", Page: pagination.New(1, 20, pagination.UserLimits)})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	assert.Len(t, page.Items, 2)
}
