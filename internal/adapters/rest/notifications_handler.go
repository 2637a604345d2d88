package rest

import (
	"net/http"

	"github.com/philly/inkwell/internal/adapters/api"
	"github.com/philly/inkwell/internal/notifications/application"
	"github.com/philly/inkwell/internal/notifications/domain"
	"github.com/philly/inkwell/internal/platform/pagination"
)

type NotificationsHandler struct {
	*BaseHandler
	service *application.NotificationsService
}

func NewNotificationsHandler(base *BaseHandler, service *application.NotificationsService) *NotificationsHandler {
	return &NotificationsHandler{
		BaseHandler: base,
		service:     service,
	}
}

// ListNotifications pages stored notifications. scope=bell (the default)
// returns unread ones with the bell's smaller page size.
func (h *NotificationsHandler) ListNotifications(w http.ResponseWriter, r *http.Request, params api.ListNotificationsParams) {
	scope := domain.ParseScope(string(value(params.Scope)))
	limits := pagination.NotificationLimits
	if scope == domain.ScopeBell {
		limits = pagination.BellLimits
	}

	page, err := h.service.List(r.Context(), h.Principal(r), scope, pageRequest(params.Page, params.Limit, limits))
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, page, http.StatusOK)
}

// GetNotificationFeed merges comments and likes on the caller's posts,
// newest first.
func (h *NotificationsHandler) GetNotificationFeed(w http.ResponseWriter, r *http.Request, params api.GetNotificationFeedParams) {
	page, err := h.service.OwnerFeed(r.Context(), h.Principal(r), pageRequest(params.Page, params.Limit, pagination.NotificationLimits))
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, page, http.StatusOK)
}

func (h *NotificationsHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request, id int64) {
	if err := positiveID("id", id); err != nil {
		h.HandleError(w, r, err)
		return
	}

	if err := h.service.MarkRead(r.Context(), h.Principal(r), id); err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, api.OkResponse{Ok: true}, http.StatusOK)
}

func (h *NotificationsHandler) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	n, err := h.service.MarkAllRead(r.Context(), h.Principal(r))
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, api.MarkAllReadResult{Ok: true, Updated: n}, http.StatusOK)
}
