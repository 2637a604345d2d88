package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/philly/inkwell/internal/adapters/authz_adapter"
	"github.com/philly/inkwell/internal/adapters/memory"
	"github.com/philly/inkwell/internal/adapters/rest"
	"github.com/philly/inkwell/internal/adapters/rest/middleware"
	authzapp "github.com/philly/inkwell/internal/authz/application"
	authz "github.com/philly/inkwell/internal/authz/domain"
	catapp "github.com/philly/inkwell/internal/categories/application"
	cmtapp "github.com/philly/inkwell/internal/comments/application"
	likeapp "github.com/philly/inkwell/internal/likes/application"
	notifapp "github.com/philly/inkwell/internal/notifications/application"
	"github.com/philly/inkwell/internal/platform/eventbus"
	"github.com/philly/inkwell/internal/platform/logger"
	"github.com/philly/inkwell/internal/platform/ownership"
	postapp "github.com/philly/inkwell/internal/posts/application"
	postdomain "github.com/philly/inkwell/internal/posts/domain"
	profapp "github.com/philly/inkwell/internal/profiles/application"
	profdomain "github.com/philly/inkwell/internal/profiles/domain"
)

// tokenResolver accepts "Bearer <name>" for every registered name.
type tokenResolver map[string]*authz.Identity

func (t tokenResolver) Resolve(ctx context.Context, header string) *authz.Identity {
	return t[header]
}

type testAPI struct {
	t       *testing.T
	store   *memory.Store
	bus     *eventbus.Bus
	images  *memory.ImageStore
	tokens  tokenResolver
	handler http.Handler
	general int64
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	log := logger.NewSlogAdapterWithWriter(io.Discard, "test", "error")
	store := memory.NewStore()
	bus := eventbus.NewBus(log)
	images := memory.NewImageStore()

	registry := ownership.NewRegistry()
	authzSvc := authzapp.NewAuthzService(store.Access(), registry, log)
	postapp.RegisterPostsOwnership(registry, store.Posts(), log)

	postsSvc := postapp.NewPostsService(store.Posts(), store.CategoryLookup(), authz_adapter.NewAuthzAdapter(authzSvc), images, bus, log)
	categoriesSvc := catapp.NewCategoriesService(store.Categories(), memory.NewCategoryCache(), store.TxManager(), bus, log)
	commentsSvc := cmtapp.NewCommentsService(store.Comments(), store.CommentPostLookup(), bus, log)
	likesSvc := likeapp.NewLikesService(store.Likes(), store.LikePostLookup(), store.TxManager(), bus, log)
	notificationsSvc := notifapp.NewNotificationsService(store.Notifications(), store.Activity(), store.Directory(), log)
	catapp.RegisterSubscribers(bus, categoriesSvc)
	notifapp.RegisterSubscribers(bus, notificationsSvc)

	base := rest.NewBaseHandler(log)
	server := rest.NewServer(
		rest.NewHealthHandler(base, "test", nil),
		rest.NewPostsHandler(base, postsSvc),
		rest.NewCategoriesHandler(base, categoriesSvc),
		rest.NewCommentsHandler(base, commentsSvc),
		rest.NewLikesHandler(base, likesSvc),
		rest.NewProfileHandler(base, profapp.NewProfileService(store.Profiles(), images, log)),
		rest.NewNotificationsHandler(base, notificationsSvc),
		rest.NewAdminHandler(base, profapp.NewAdminService(
			store.Profiles(), memory.NewAuthAdmin(), &memory.Invalidator{}, images, log,
		)),
	)

	tokens := tokenResolver{}
	limiter, err := middleware.NewRateLimiter(middleware.RateLimitConfig{}, log)
	require.NoError(t, err)
	router := rest.NewRouter(
		server,
		middleware.NewAuthenticator(tokens),
		middleware.NewGate(authzSvc, log),
		limiter,
		log,
	)

	return &testAPI{
		t:       t,
		store:   store,
		bus:     bus,
		images:  images,
		tokens:  tokens,
		handler: router,
		general: store.AddCategory("General"),
	}
}

// user registers a profile with role and returns its token name.
func (a *testAPI) user(name string, role authz.Role) (string, uuid.UUID) {
	id := uuid.New()
	a.store.PutProfile(profdomain.Profile{ID: id, Email: name + "@example.com", Username: name, Name: name, Role: role})
	a.tokens["Bearer "+name] = &authz.Identity{
		ID:        id,
		Email:     name + "@example.com",
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	return name, id
}

func (a *testAPI) post(author uuid.UUID, category int64, title string, published bool) int64 {
	return a.store.AddPost(postdomain.Post{
		Title:      title,
		Content:    "<p>" + title + "</p>",
		CategoryID: category,
		AuthorID:   author,
		Published:  published,
	})
}

func (a *testAPI) do(method, path, token string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			data, err := json.Marshal(b)
			require.NoError(a.t, err)
			reader = bytes.NewReader(data)
		}
	}
	req := httptest.NewRequest(method, rest.BasePath+path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.handler.ServeHTTP(w, req)
	return w
}

func (a *testAPI) upload(path, token string, content []byte) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "image.png")
	require.NoError(a.t, err)
	_, err = part.Write(content)
	require.NoError(a.t, err)
	require.NoError(a.t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, rest.BasePath+path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	a.handler.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Items       []json.RawMessage `json:"items"`
	CurrentPage int               `json:"currentPage"`
	TotalPages  int               `json:"totalPages"`
	Total       int               `json:"total"`
	HasMore     bool              `json:"hasMore"`
}

type errorBody struct {
	Error        string `json:"error"`
	Message      string `json:"message"`
	BusinessCode string `json:"business_code"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
