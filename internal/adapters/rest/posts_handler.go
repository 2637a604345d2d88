package rest

import (
	"net/http"

	"github.com/philly/inkwell/internal/adapters/api"
	"github.com/philly/inkwell/internal/platform/pagination"
	"github.com/philly/inkwell/internal/posts/application"
)

// PostsHandler handles HTTP requests for posts
type PostsHandler struct {
	*BaseHandler
	service *application.PostsService
}

// NewPostsHandler creates a new posts handler
func NewPostsHandler(base *BaseHandler, service *application.PostsService) *PostsHandler {
	return &PostsHandler{
		BaseHandler: base,
		service:     service,
	}
}

// ListPosts pages posts. Anonymous callers and non-admins only ever see
// published posts, whatever the published parameter says.
func (h *PostsHandler) ListPosts(w http.ResponseWriter, r *http.Request, params api.ListPostsParams) {
	filter, includeDrafts := postFilter(params)

	page, err := h.service.List(r.Context(), h.Principal(r), filter, includeDrafts)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, pagination.Map(page, domainPostToAPI), http.StatusOK)
}

// GetPost retrieves a single post by ID
func (h *PostsHandler) GetPost(w http.ResponseWriter, r *http.Request, id int64) {
	if err := positiveID("id", id); err != nil {
		h.HandleError(w, r, err)
		return
	}

	post, err := h.service.Get(r.Context(), h.Principal(r), id)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, domainPostToAPI(post), http.StatusOK)
}

// CreatePost creates a new blog post
func (h *PostsHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req api.CreatePostJSONRequestBody
	if err := h.DecodeJSON(w, r, &req); err != nil {
		h.HandleError(w, r, err)
		return
	}

	post, err := h.service.Create(r.Context(), h.Principal(r), application.CreatePostParams{
		Title:       req.Title,
		Description: value(req.Description),
		Content:     req.Content,
		CategoryID:  req.CategoryId,
		Published:   value(req.Published),
		Image:       req.Image,
	})
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, domainPostToAPI(post), http.StatusCreated)
}

// UpdatePost updates the post named by the id in the body
func (h *PostsHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	var req api.UpdatePostJSONRequestBody
	if err := h.DecodeJSON(w, r, &req); err != nil {
		h.HandleError(w, r, err)
		return
	}

	post, err := h.service.Update(r.Context(), h.Principal(r), req.Id, application.UpdatePostParams{
		Title:       req.Title,
		Description: value(req.Description),
		Content:     req.Content,
		CategoryID:  req.CategoryId,
		Published:   value(req.Published),
		Image:       req.Image,
		RemoveImage: value(req.RemoveImage),
	})
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, domainPostToAPI(post), http.StatusOK)
}

// DeletePost deletes a post; its comments and likes go with it
func (h *PostsHandler) DeletePost(w http.ResponseWriter, r *http.Request, params api.DeletePostParams) {
	if err := positiveID("id", params.Id); err != nil {
		h.HandleError(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), h.Principal(r), params.Id); err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, api.OkResponse{Ok: true}, http.StatusOK)
}

// UploadPostImage stores a post image and returns its public URL
func (h *PostsHandler) UploadPostImage(w http.ResponseWriter, r *http.Request) {
	file, err := h.ReadUpload(w, r)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}
	defer file.Close()

	url, err := h.service.UploadImage(r.Context(), h.Principal(r), file)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, api.UploadResult{Url: url}, http.StatusCreated)
}
