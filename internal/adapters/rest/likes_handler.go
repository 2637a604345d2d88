package rest

import (
	"net/http"

	"github.com/philly/inkwell/internal/adapters/api"
	"github.com/philly/inkwell/internal/likes/application"
	"github.com/philly/inkwell/internal/platform/pagination"
)

type LikesHandler struct {
	*BaseHandler
	service *application.LikesService
}

func NewLikesHandler(base *BaseHandler, service *application.LikesService) *LikesHandler {
	return &LikesHandler{
		BaseHandler: base,
		service:     service,
	}
}

// GetLikes serves two shapes: ?postId returns the like state of one post,
// ?owner=me pages the posts the caller liked.
func (h *LikesHandler) GetLikes(w http.ResponseWriter, r *http.Request, params api.GetLikesParams) {
	if value(params.Owner) == api.Me {
		h.listMine(w, r, params)
		return
	}

	if params.PostId == nil {
		h.HandleError(w, r, ErrInvalidID.WithMessage("postId is required"))
		return
	}
	if err := positiveID("postId", *params.PostId); err != nil {
		h.HandleError(w, r, err)
		return
	}

	state, err := h.service.Status(r.Context(), h.Principal(r), *params.PostId)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, domainLikeStateToAPI(state), http.StatusOK)
}

func (h *LikesHandler) listMine(w http.ResponseWriter, r *http.Request, params api.GetLikesParams) {
	page, err := h.service.ListMine(r.Context(), h.Principal(r), pageRequest(params.Page, params.Limit, pagination.LikeLimits))
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, pagination.Map(page, domainLikedPostToAPI), http.StatusOK)
}

func (h *LikesHandler) LikePost(w http.ResponseWriter, r *http.Request) {
	var req api.LikePostJSONRequestBody
	if err := h.DecodeJSON(w, r, &req); err != nil {
		h.HandleError(w, r, err)
		return
	}

	state, err := h.service.Like(r.Context(), h.Principal(r), req.PostId)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, domainLikeStateToAPI(state), http.StatusOK)
}

func (h *LikesHandler) UnlikePost(w http.ResponseWriter, r *http.Request, params api.UnlikePostParams) {
	if err := positiveID("postId", params.PostId); err != nil {
		h.HandleError(w, r, err)
		return
	}

	state, err := h.service.Unlike(r.Context(), h.Principal(r), params.PostId)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, domainLikeStateToAPI(state), http.StatusOK)
}
