package rest

import (
	"net/http"

	"github.com/philly/inkwell/internal/adapters/api"
	"github.com/philly/inkwell/internal/categories/application"
)

type CategoriesHandler struct {
	*BaseHandler
	service *application.CategoriesService
}

func NewCategoriesHandler(base *BaseHandler, service *application.CategoriesService) *CategoriesHandler {
	return &CategoriesHandler{
		BaseHandler: base,
		service:     service,
	}
}

// ListCategories returns every category with General first.
func (h *CategoriesHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.List(r.Context())
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	out := make([]api.Category, 0, len(categories))
	for _, c := range categories {
		out = append(out, domainCategoryToAPI(c))
	}
	h.WriteJSONResponse(w, r, out, http.StatusOK)
}

func (h *CategoriesHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req api.CreateCategoryJSONRequestBody
	if err := h.DecodeJSON(w, r, &req); err != nil {
		h.HandleError(w, r, err)
		return
	}

	category, err := h.service.Create(r.Context(), h.Principal(r), req.Name)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, domainCategoryToAPI(category), http.StatusCreated)
}

func (h *CategoriesHandler) RenameCategory(w http.ResponseWriter, r *http.Request) {
	var req api.RenameCategoryJSONRequestBody
	if err := h.DecodeJSON(w, r, &req); err != nil {
		h.HandleError(w, r, err)
		return
	}
	if err := positiveID("id", req.Id); err != nil {
		h.HandleError(w, r, err)
		return
	}

	category, err := h.service.Rename(r.Context(), h.Principal(r), req.Id, req.Name)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, domainCategoryToAPI(category), http.StatusOK)
}

// DeleteCategory moves the category's posts to reassignToId, or to General
// when it is absent, and then removes the category.
func (h *CategoriesHandler) DeleteCategory(w http.ResponseWriter, r *http.Request, params api.DeleteCategoryParams) {
	if err := positiveID("id", params.Id); err != nil {
		h.HandleError(w, r, err)
		return
	}
	if params.ReassignToId != nil {
		if err := positiveID("reassignToId", *params.ReassignToId); err != nil {
			h.HandleError(w, r, err)
			return
		}
	}

	result, err := h.service.Delete(r.Context(), h.Principal(r), params.Id, params.ReassignToId)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, api.DeleteCategoryResult{
		Ok:           true,
		DeletedId:    result.DeletedID,
		ReassignedTo: result.ReassignedTo,
		MovedPosts:   result.MovedPosts,
	}, http.StatusOK)
}
