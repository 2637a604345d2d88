package rest

import (
	"github.com/philly/inkwell/internal/adapters/api"
)

// Server combines all handlers to implement api.ServerInterface
type Server struct {
	*HealthHandler
	*PostsHandler
	*CategoriesHandler
	*CommentsHandler
	*LikesHandler
	*ProfileHandler
	*NotificationsHandler
	*AdminHandler
}

// NewServer creates a new server that implements api.ServerInterface
func NewServer(
	healthHandler *HealthHandler,
	postsHandler *PostsHandler,
	categoriesHandler *CategoriesHandler,
	commentsHandler *CommentsHandler,
	likesHandler *LikesHandler,
	profileHandler *ProfileHandler,
	notificationsHandler *NotificationsHandler,
	adminHandler *AdminHandler,
) api.ServerInterface {
	return &Server{
		HealthHandler:        healthHandler,
		PostsHandler:         postsHandler,
		CategoriesHandler:    categoriesHandler,
		CommentsHandler:      commentsHandler,
		LikesHandler:         likesHandler,
		ProfileHandler:       profileHandler,
		NotificationsHandler: notificationsHandler,
		AdminHandler:         adminHandler,
	}
}

// Ensure Server implements api.ServerInterface
var _ api.ServerInterface = (*Server)(nil)
