package application

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/philly/inkwell/internal/platform/logger"
	"github.com/philly/inkwell/internal/platform/ownership"
	"github.com/philly/inkwell/internal/posts/ports"
)

// PostsOwnershipChecker answers ownership of posts by their author_id.
type PostsOwnershipChecker struct {
	repo   ports.PostRepository
	logger logger.Logger
}

func NewPostsOwnershipChecker(repo ports.PostRepository, logger logger.Logger) *PostsOwnershipChecker {
	return &PostsOwnershipChecker{repo: repo, logger: logger}
}

func (p *PostsOwnershipChecker) Owns(ctx context.Context, userID uuid.UUID, postID int64) (bool, error) {
	authorID, err := p.repo.GetPostAuthor(ctx, postID)
	if err != nil {
		if errors.Is(err, ports.ErrPostNotFound) {
			return false, nil
		}
		p.logger.Error(ctx, "failed to get post author", "error", err, "post_id", postID)
		return false, err
	}
	return authorID == userID, nil
}

// RegisterPostsOwnership registers the checker for ownership.ResourcePosts.
func RegisterPostsOwnership(registry ownership.Registry, repo ports.PostRepository, logger logger.Logger) {
	registry.Register(ownership.ResourcePosts, NewPostsOwnershipChecker(repo, logger))
}
