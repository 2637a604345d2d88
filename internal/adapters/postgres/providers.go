package postgres

import (
	"github.com/google/wire"

	authzports "github.com/philly/inkwell/internal/authz/ports"
	catports "github.com/philly/inkwell/internal/categories/ports"
	cmtports "github.com/philly/inkwell/internal/comments/ports"
	likeports "github.com/philly/inkwell/internal/likes/ports"
	notifports "github.com/philly/inkwell/internal/notifications/ports"
	postports "github.com/philly/inkwell/internal/posts/ports"
	profileports "github.com/philly/inkwell/internal/profiles/ports"
)

// ProviderSet binds every PostgreSQL repository to the port it serves.
var ProviderSet = wire.NewSet(
	NewProfileRepository,
	wire.Bind(new(profileports.ProfileRepository), new(*ProfileRepository)),
	NewAccessRepository,
	wire.Bind(new(authzports.AccessRepository), new(*AccessRepository)),

	NewCategoryRepository,
	wire.Bind(new(catports.CategoryRepository), new(*CategoryRepository)),
	NewCategoryLookup,
	wire.Bind(new(postports.CategoryLookup), new(*CategoryLookup)),

	NewPostRepository,
	wire.Bind(new(postports.PostRepository), new(*PostRepository)),
	NewCommentPostLookup,
	wire.Bind(new(cmtports.PostLookup), new(*CommentPostLookup)),
	NewLikePostLookup,
	wire.Bind(new(likeports.PostLookup), new(*LikePostLookup)),

	NewCommentRepository,
	wire.Bind(new(cmtports.CommentRepository), new(*CommentRepository)),
	NewLikeRepository,
	wire.Bind(new(likeports.LikeRepository), new(*LikeRepository)),

	NewNotificationRepository,
	wire.Bind(new(notifports.NotificationRepository), new(*NotificationRepository)),
	NewActivityRepository,
	wire.Bind(new(notifports.ActivityRepository), new(*ActivityRepository)),
	NewDirectory,
	wire.Bind(new(notifports.Directory), new(*Directory)),
)
