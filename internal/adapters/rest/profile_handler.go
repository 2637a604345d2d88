package rest

import (
	"net/http"

	"github.com/philly/inkwell/internal/adapters/api"
	"github.com/philly/inkwell/internal/profiles/application"
)

type ProfileHandler struct {
	*BaseHandler
	service *application.ProfileService
}

func NewProfileHandler(base *BaseHandler, service *application.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler: base,
		service:     service,
	}
}

// GetProfile returns the caller's profile, or defaults when none is stored yet.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.Get(r.Context(), h.Principal(r))
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, domainProfileToAPI(profile), http.StatusOK)
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req api.UpdateProfileJSONRequestBody
	if err := h.DecodeJSON(w, r, &req); err != nil {
		h.HandleError(w, r, err)
		return
	}

	profile, err := h.service.Update(r.Context(), h.Principal(r), application.UpdateProfileParams{
		Username:   req.Username,
		Name:       value(req.Name),
		ProfilePic: req.ProfilePic,
	})
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, domainProfileToAPI(profile), http.StatusOK)
}

// UploadAvatar stores the image only; the client saves the returned URL
// through UpdateProfile.
func (h *ProfileHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	file, err := h.ReadUpload(w, r)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}
	defer file.Close()

	url, err := h.service.UploadAvatar(r.Context(), h.Principal(r), file)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, api.UploadResult{Url: url}, http.StatusCreated)
}
