package rest

import (
	"net/http"

	"github.com/philly/inkwell/internal/adapters/api"
	"github.com/philly/inkwell/internal/comments/application"
	"github.com/philly/inkwell/internal/platform/pagination"
)

type CommentsHandler struct {
	*BaseHandler
	service *application.CommentsService
}

func NewCommentsHandler(base *BaseHandler, service *application.CommentsService) *CommentsHandler {
	return &CommentsHandler{
		BaseHandler: base,
		service:     service,
	}
}

// ListComments pages the comments of a post, or with order=mine the
// caller's own comments across posts.
func (h *CommentsHandler) ListComments(w http.ResponseWriter, r *http.Request, params api.ListCommentsParams) {
	filter, err := commentFilter(params)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	page, err := h.service.List(r.Context(), h.Principal(r), filter)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, pagination.Map(page, domainCommentToAPI), http.StatusOK)
}

func (h *CommentsHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	var req api.CreateCommentJSONRequestBody
	if err := h.DecodeJSON(w, r, &req); err != nil {
		h.HandleError(w, r, err)
		return
	}

	comment, err := h.service.Create(r.Context(), h.Principal(r), req.PostId, req.Content)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, domainCommentToAPI(comment), http.StatusCreated)
}

// DeleteComment only ever deletes the caller's own comment. Deleting someone
// else's comment succeeds with deleted=0.
func (h *CommentsHandler) DeleteComment(w http.ResponseWriter, r *http.Request, params api.DeleteCommentParams) {
	if err := positiveID("id", params.Id); err != nil {
		h.HandleError(w, r, err)
		return
	}

	n, err := h.service.Delete(r.Context(), h.Principal(r), params.Id)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, api.DeleteCommentResult{Ok: true, Deleted: n}, http.StatusOK)
}
