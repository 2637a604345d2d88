package rest

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/philly/inkwell/internal/adapters/api"
	"github.com/philly/inkwell/internal/platform/pagination"
	"github.com/philly/inkwell/internal/profiles/application"
)

// AdminHandler serves superadmin user management
type AdminHandler struct {
	*BaseHandler
	service *application.AdminService
}

func NewAdminHandler(base *BaseHandler, service *application.AdminService) *AdminHandler {
	return &AdminHandler{
		BaseHandler: base,
		service:     service,
	}
}

// ListUsers pages profiles, optionally filtered by ?q over username and email.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request, params api.ListUsersParams) {
	page, err := h.service.ListUsers(r.Context(), h.Principal(r), userFilter(params))
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, pagination.Map(page, domainProfileToAPI), http.StatusOK)
}

func (h *AdminHandler) AdminUpdateUser(w http.ResponseWriter, r *http.Request) {
	var req api.AdminUpdateUserJSONRequestBody
	if err := h.DecodeJSON(w, r, &req); err != nil {
		h.HandleError(w, r, err)
		return
	}

	profile, err := h.service.UpdateUser(r.Context(), h.Principal(r), application.AdminUpdateParams{
		UserID:     uuid.UUID(req.UserId),
		Username:   req.Username,
		Name:       req.Name,
		Email:      req.Email,
		ProfilePic: req.ProfilePic,
		Role:       req.Role,
	})
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, domainProfileToAPI(profile), http.StatusOK)
}

func (h *AdminHandler) ResetUserPassword(w http.ResponseWriter, r *http.Request) {
	var req api.ResetUserPasswordJSONRequestBody
	if err := h.DecodeJSON(w, r, &req); err != nil {
		h.HandleError(w, r, err)
		return
	}

	if err := h.service.ResetPassword(r.Context(), h.Principal(r), uuid.UUID(req.UserId), req.NewPassword); err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, api.OkResponse{Ok: true}, http.StatusOK)
}
