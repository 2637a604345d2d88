package rest

import (
	"strings"

	"github.com/philly/inkwell/internal/adapters/api"
	cmtdomain "github.com/philly/inkwell/internal/comments/domain"
	cmtports "github.com/philly/inkwell/internal/comments/ports"
	"github.com/philly/inkwell/internal/platform/pagination"
	postports "github.com/philly/inkwell/internal/posts/ports"
	profileports "github.com/philly/inkwell/internal/profiles/ports"
)

// Generated parameters are turned into typed filters here and nowhere else.

func value[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func pageRequest(page, limit *string, limits pagination.Limits) pagination.Request {
	return pagination.Parse(value(page), value(limit), limits)
}

// positiveID rejects ids the binder accepted but no row can carry.
func positiveID(name string, id int64) error {
	if id <= 0 {
		return ErrInvalidID.WithMessage(name + " must be a positive integer")
	}
	return nil
}

// postFilter also reports whether the caller asked for drafts.
func postFilter(params api.ListPostsParams) (postports.ListFilter, bool) {
	text, _ := pagination.NormalizeQuery(value(params.Q))
	return postports.ListFilter{
		Query:      text,
		CategoryID: pagination.ParseCategoryFilter(value(params.CategoryId)),
		Page:       pageRequest(params.Page, params.Limit, pagination.PostLimits),
	}, strings.EqualFold(value(params.Published), "all")
}

func commentFilter(params api.ListCommentsParams) (cmtports.ListFilter, error) {
	filter := cmtports.ListFilter{
		Order:  cmtdomain.ParseOrder(string(value(params.Order))),
		Page:   pageRequest(params.Page, params.Limit, pagination.CommentLimits),
		PostID: params.PostId,
	}
	if params.PostId != nil {
		if err := positiveID("postId", *params.PostId); err != nil {
			return filter, err
		}
	}
	return filter, nil
}

func userFilter(params api.ListUsersParams) profileports.ListFilter {
	text, _ := pagination.NormalizeQuery(value(params.Q))
	return profileports.ListFilter{
		Query: text,
		Page:  pageRequest(params.Page, params.Limit, pagination.UserLimits),
	}
}
