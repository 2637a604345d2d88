package authz_adapter

import (
	"context"

	authzApp "github.com/philly/inkwell/internal/authz/application"
	authz "github.com/philly/inkwell/internal/authz/domain"
	"github.com/philly/inkwell/internal/platform/ownership"
	postsPorts "github.com/philly/inkwell/internal/posts/ports"
)

// AuthzAdapter bridges the authz service to the Authorizer ports of the
// other contexts.
type AuthzAdapter struct {
	authzService *authzApp.AuthzService
}

func NewAuthzAdapter(authzService *authzApp.AuthzService) *AuthzAdapter {
	return &AuthzAdapter{authzService: authzService}
}

// Can asks the authz service whether actor may perform action on the
// resource. The principal was resolved once per request upstream.
func (a *AuthzAdapter) Can(ctx context.Context, actor *authz.Principal, resource ownership.Resource, action string, resourceID *int64) (bool, error) {
	return a.authzService.Can(ctx, actor, resource, action, resourceID)
}

var _ postsPorts.Authorizer = (*AuthzAdapter)(nil)
