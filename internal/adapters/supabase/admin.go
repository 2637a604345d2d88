package supabase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/supabase-community/gotrue-go/types"

	profileports "github.com/philly/inkwell/internal/profiles/ports"
)

// AuthAdmin calls GoTrue's admin user endpoint.
type AuthAdmin struct {
	client *Client
}

func NewAuthAdmin(client *Client) *AuthAdmin {
	return &AuthAdmin{client: client}
}

// UpdateEmail changes the login email without a confirmation round trip.
func (a *AuthAdmin) UpdateEmail(ctx context.Context, id uuid.UUID, email string) error {
	return a.updateUser(ctx, types.AdminUpdateUserRequest{UserID: id, Email: email, EmailConfirm: true})
}

func (a *AuthAdmin) UpdatePassword(ctx context.Context, id uuid.UUID, password string) error {
	return a.updateUser(ctx, types.AdminUpdateUserRequest{UserID: id, Password: password})
}

// The auth client takes no context, so a cancelled request is only
// noticed before the call goes out.
func (a *AuthAdmin) updateUser(ctx context.Context, req types.AdminUpdateUserRequest) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("AuthAdmin.updateUser: %w", err)
	}
	if _, err := a.client.auth.AdminUpdateUser(req); err != nil {
		return fmt.Errorf("AuthAdmin.updateUser: %w", providerError(err))
	}
	return nil
}

var _ profileports.AuthAdmin = (*AuthAdmin)(nil)
