package rest

import (
	"github.com/philly/inkwell/internal/adapters/api"
	catdomain "github.com/philly/inkwell/internal/categories/domain"
	cmtdomain "github.com/philly/inkwell/internal/comments/domain"
	likedomain "github.com/philly/inkwell/internal/likes/domain"
	postdomain "github.com/philly/inkwell/internal/posts/domain"
	profdomain "github.com/philly/inkwell/internal/profiles/domain"
)

// Domain to wire conversions. Request bodies and parameters are the
// generated api types.

func domainPostToAPI(p *postdomain.Post) api.Post {
	return api.Post{
		Id:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Content:      p.Content,
		Image:        p.Image,
		CategoryId:   p.CategoryID,
		CategoryName: p.CategoryName,
		AuthorId:     p.AuthorID,
		AuthorName:   p.AuthorName,
		Published:    p.Published,
		StatusId:     int(p.StatusID),
		LikesCount:   p.LikesCount,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func domainCategoryToAPI(c *catdomain.Category) api.Category {
	return api.Category{Id: c.ID, Name: c.Name, PostCount: c.PostCount, IsGeneral: c.IsGeneral()}
}

func domainCommentToAPI(c *cmtdomain.Comment) api.Comment {
	return api.Comment{
		Id:        c.ID,
		PostId:    c.PostID,
		UserId:    c.UserID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		Author: api.CommentAuthor{
			Username: c.Author.Username,
			Name:     c.Author.Name,
			Avatar:   c.Author.Avatar,
		},
	}
}

func domainLikeStateToAPI(s likedomain.State) api.LikeState {
	return api.LikeState{Liked: s.Liked, Count: s.Count}
}

func domainLikedPostToAPI(l *likedomain.LikedPost) api.LikedPost {
	return api.LikedPost{
		LikeId:      l.LikeID,
		PostId:      l.PostID,
		Title:       l.Title,
		Description: l.Description,
		Image:       l.Image,
		LikesCount:  l.LikesCount,
		LikedAt:     l.LikedAt,
	}
}

func domainProfileToAPI(p *profdomain.Profile) api.Profile {
	out := api.Profile{
		Id:         p.ID,
		Username:   p.Username,
		Name:       p.Name,
		ProfilePic: p.ProfilePic,
		Role:       p.Role.String(),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
	if p.Email != "" {
		email := p.Email
		out.Email = &email
	}
	return out
}
