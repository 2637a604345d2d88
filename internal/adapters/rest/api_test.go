package rest_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	openapi "github.com/philly/inkwell/internal/adapters/api"
	"github.com/philly/inkwell/internal/adapters/rest"
	"github.com/philly/inkwell/internal/adapters/rest/middleware"
	authz "github.com/philly/inkwell/internal/authz/domain"
	"github.com/philly/inkwell/internal/platform/apperror"
	"github.com/philly/inkwell/internal/platform/logger"
)

func TestListPostsPaginates(t *testing.T) {
	api := newTestAPI(t)
	_, adminID := api.user("editor", authz.RoleAdmin)
	for i := 0; i < 10; i++ {
		api.post(adminID, api.general, fmt.Sprintf("Post %d", i), true)
	}
	api.post(adminID, api.general, "Draft 1", false)
	api.post(adminID, api.general, "Draft 2", false)

	w := api.do(http.MethodGet, "/posts?page=1&limit=4", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	first := decode[envelope](t, w)
	assert.Len(t, first.Items, 4)
	assert.Equal(t, 1, first.CurrentPage)
	assert.Equal(t, 3, first.TotalPages)
	assert.Equal(t, 10, first.Total)
	assert.True(t, first.HasMore)

	w = api.do(http.MethodGet, "/posts?page=3&limit=4", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	last := decode[envelope](t, w)
	assert.Len(t, last.Items, 2)
	assert.False(t, last.HasMore)
}

func TestListPostsHugePageIsEmpty(t *testing.T) {
	api := newTestAPI(t)
	_, adminID := api.user("editor", authz.RoleAdmin)
	api.post(adminID, api.general, "Only", true)

	for _, page := range []string{"9223372036854775807", "99999999999999999999"} {
		w := api.do(http.MethodGet, "/posts?page="+page+"&limit=50", "", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		body := decode[envelope](t, w)
		assert.Empty(t, body.Items)
		assert.False(t, body.HasMore)
		assert.Equal(t, 1, body.Total)
	}
}

func TestListPostsDraftsOnlyForAdmins(t *testing.T) {
	api := newTestAPI(t)
	editor, adminID := api.user("editor", authz.RoleAdmin)
	reader, _ := api.user("reader", authz.RoleUser)
	api.post(adminID, api.general, "Live", true)
	api.post(adminID, api.general, "Draft", false)

	tests := []struct {
		name  string
		token string
		want  int
	}{
		{name: "anonymous sees published only", token: "", want: 1},
		{name: "plain user cannot ask for drafts", token: reader, want: 1},
		{name: "admin sees drafts", token: editor, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := api.do(http.MethodGet, "/posts?published=all", tt.token, nil)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, decode[envelope](t, w).Total)
		})
	}
}

func TestGetDraftPostIsHiddenFromStrangers(t *testing.T) {
	api := newTestAPI(t)
	editor, adminID := api.user("editor", authz.RoleAdmin)
	draft := api.post(adminID, api.general, "Draft", false)
	path := fmt.Sprintf("/posts/%d", draft)

	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, path, "", nil).Code)
	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, path, editor, nil).Code)
	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodGet, "/posts/abc", "", nil).Code)
}

func TestPostMutationsRequireAdmin(t *testing.T) {
	api := newTestAPI(t)
	editor, _ := api.user("editor", authz.RoleAdmin)
	reader, _ := api.user("reader", authz.RoleUser)
	body := map[string]any{"title": "Hello", "content": "<p>hi</p><script>alert(1)</script>", "published": true}

	w := api.do(http.MethodPost, "/posts", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "UNAUTHORIZED", decode[errorBody](t, w).Error)

	w = api.do(http.MethodPost, "/posts", reader, body)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", decode[errorBody](t, w).Error)

	w = api.do(http.MethodPost, "/posts", editor, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[map[string]any](t, w)
	assert.Equal(t, "Hello", created["title"])
	assert.Equal(t, float64(api.general), created["categoryId"])
	assert.NotContains(t, created["content"], "<script>")
	assert.Equal(t, float64(2), created["statusId"])

	id := int64(created["id"].(float64))
	w = api.do(http.MethodPut, "/posts", editor, map[string]any{"id": id, "title": "Hello again", "content": "x", "published": false})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[map[string]any](t, w)
	assert.Equal(t, "Hello again", updated["title"])
	assert.Equal(t, false, updated["published"])
	assert.Equal(t, float64(1), updated["statusId"])

	w = api.do(http.MethodDelete, fmt.Sprintf("/posts?id=%d", id), editor, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, fmt.Sprintf("/posts/%d", id), editor, nil).Code)
}

func TestUploadPostImage(t *testing.T) {
	api := newTestAPI(t)
	editor, _ := api.user("editor", authz.RoleAdmin)
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

	w := api.upload("/posts/images", editor, png)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	url := decode[map[string]string](t, w)["url"]
	assert.True(t, strings.HasSuffix(url, ".png"))
	assert.True(t, api.images.Has(url))

	w = api.upload("/posts/images", editor, []byte("plain text, not an image"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCommentValidation(t *testing.T) {
	api := newTestAPI(t)
	_, adminID := api.user("editor", authz.RoleAdmin)
	reader, _ := api.user("reader", authz.RoleUser)
	postID := api.post(adminID, api.general, "Hello", true)

	tests := []struct {
		name       string
		token      string
		content    string
		wantStatus int
		wantCode   string
	}{
		{name: "anonymous", token: "", content: "hi", wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "empty content", token: reader, content: "", wantStatus: http.StatusBadRequest, wantCode: "VALIDATION_FAILED"},
		{name: "501 characters", token: reader, content: strings.Repeat("a", 501), wantStatus: http.StatusBadRequest, wantCode: "VALIDATION_FAILED"},
		{name: "exactly 500 characters", token: reader, content: strings.Repeat("a", 500), wantStatus: http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := api.do(http.MethodPost, "/comments", tt.token, map[string]any{"postId": postID, "content": tt.content})
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decode[errorBody](t, w).Error)
			}
		})
	}
}

func TestCreateCommentRejectsMissingPostID(t *testing.T) {
	api := newTestAPI(t)
	reader, _ := api.user("reader", authz.RoleUser)

	w := api.do(http.MethodPost, "/comments", reader, map[string]any{"content": "hi"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, "VALIDATION_FAILED", body["error"])
	assert.Equal(t, []any{map[string]any{"field": "postId", "message": "postId is required"}}, body["context"])
}

func TestDeleteCommentOnlyDeletesOwn(t *testing.T) {
	api := newTestAPI(t)
	_, adminID := api.user("editor", authz.RoleAdmin)
	alice, _ := api.user("alice", authz.RoleUser)
	bob, _ := api.user("bob", authz.RoleUser)
	postID := api.post(adminID, api.general, "Hello", true)

	w := api.do(http.MethodPost, "/comments", alice, map[string]any{"postId": postID, "content": "first"})
	require.Equal(t, http.StatusCreated, w.Code)
	commentID := int64(decode[map[string]any](t, w)["id"].(float64))

	w = api.do(http.MethodDelete, fmt.Sprintf("/comments?id=%d", commentID), bob, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"deleted":0}`, w.Body.String())
	assert.Equal(t, 1, api.store.CommentCount())

	w = api.do(http.MethodDelete, fmt.Sprintf("/comments?id=%d", commentID), alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"deleted":1}`, w.Body.String())
	assert.Equal(t, 0, api.store.CommentCount())
}

func TestListComments(t *testing.T) {
	api := newTestAPI(t)
	_, adminID := api.user("editor", authz.RoleAdmin)
	alice, _ := api.user("alice", authz.RoleUser)
	postID := api.post(adminID, api.general, "Hello", true)
	for _, c := range []string{"one", "two", "three"} {
		require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/comments", alice, map[string]any{"postId": postID, "content": c}).Code)
	}

	w := api.do(http.MethodGet, fmt.Sprintf("/comments?postId=%d&order=old&limit=2", postID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[envelope](t, w)
	assert.Equal(t, 3, page.Total)
	assert.True(t, page.HasMore)
	var first map[string]any
	require.NoError(t, json.Unmarshal(page.Items[0], &first))
	assert.Equal(t, "one", first["content"])
	assert.Equal(t, "alice", first["author"].(map[string]any)["username"])

	w = api.do(http.MethodGet, "/comments?order=mine", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(http.MethodGet, "/comments?order=mine", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, decode[envelope](t, w).Total)
}

func TestDeleteCategoryReassignsPosts(t *testing.T) {
	api := newTestAPI(t)
	editor, adminID := api.user("editor", authz.RoleAdmin)
	doomed := api.store.AddCategory("Travel")
	for i := 0; i < 7; i++ {
		api.post(adminID, doomed, fmt.Sprintf("Trip %d", i), true)
	}
	api.post(adminID, api.general, "Already general", true)

	before := decode[envelope](t, api.do(http.MethodGet, fmt.Sprintf("/posts?categoryId=%d", api.general), "", nil)).Total

	w := api.do(http.MethodDelete, fmt.Sprintf("/categories?id=%d&reassignToId=%d", doomed, api.general), editor, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	result := decode[map[string]any](t, w)
	assert.Equal(t, float64(7), result["movedPosts"])
	assert.Equal(t, float64(api.general), result["reassignedTo"])

	after := decode[envelope](t, api.do(http.MethodGet, fmt.Sprintf("/posts?categoryId=%d", api.general), "", nil)).Total
	assert.Equal(t, before+7, after)
	assert.Equal(t, 0, decode[envelope](t, api.do(http.MethodGet, fmt.Sprintf("/posts?categoryId=%d", doomed), "", nil)).Total)

	w = api.do(http.MethodGet, "/categories", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	categories := decode[[]map[string]any](t, w)
	require.Len(t, categories, 1)
	assert.Equal(t, "General", categories[0]["name"])
	assert.Equal(t, float64(8), categories[0]["postCount"])
}

func TestCategoryRules(t *testing.T) {
	api := newTestAPI(t)
	editor, _ := api.user("editor", authz.RoleAdmin)

	w := api.do(http.MethodDelete, fmt.Sprintf("/categories?id=%d", api.general), editor, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodPost, "/categories", editor, map[string]any{"name": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodPost, "/categories", editor, map[string]any{"name": "Design"})
	require.Equal(t, http.StatusCreated, w.Code)
	id := int64(decode[map[string]any](t, w)["id"].(float64))

	w = api.do(http.MethodPost, "/categories", editor, map[string]any{"name": "design"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = api.do(http.MethodPut, "/categories", editor, map[string]any{"id": id, "name": "UX"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "UX", decode[map[string]any](t, w)["name"])

	w = api.do(http.MethodPut, "/categories", editor, map[string]any{"name": "UX"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLikeLifecycle(t *testing.T) {
	api := newTestAPI(t)
	_, adminID := api.user("editor", authz.RoleAdmin)
	x, _ := api.user("x", authz.RoleUser)
	y, _ := api.user("y", authz.RoleUser)
	postID := api.post(adminID, api.general, "Popular", true)

	w := api.do(http.MethodPost, "/likes", x, map[string]any{"postId": postID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"liked":true,"count":1}`, w.Body.String())

	w = api.do(http.MethodPost, "/likes", y, map[string]any{"postId": postID})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"liked":true,"count":2}`, w.Body.String())

	w = api.do(http.MethodPost, "/likes", y, map[string]any{"postId": postID})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"liked":true,"count":2}`, w.Body.String())

	w = api.do(http.MethodDelete, fmt.Sprintf("/likes?postId=%d", postID), x, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"liked":false,"count":1}`, w.Body.String())

	w = api.do(http.MethodGet, fmt.Sprintf("/likes?postId=%d", postID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"liked":false,"count":1}`, w.Body.String())

	w = api.do(http.MethodGet, fmt.Sprintf("/likes?postId=%d", postID), y, nil)
	assert.JSONEq(t, `{"liked":true,"count":1}`, w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, "/likes?owner=me", "", nil).Code)
	w = api.do(http.MethodGet, "/likes?owner=me", y, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[envelope](t, w).Total)

	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodPost, "/likes", "", map[string]any{"postId": postID}).Code)
}

func TestNotificationsFlow(t *testing.T) {
	api := newTestAPI(t)
	editor, adminID := api.user("editor", authz.RoleAdmin)
	alice, _ := api.user("alice", authz.RoleUser)
	postID := api.post(adminID, api.general, "Hello", true)

	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/comments", alice, map[string]any{"postId": postID, "content": "nice post"}).Code)
	require.Equal(t, http.StatusOK, api.do(http.MethodPost, "/likes", alice, map[string]any{"postId": postID}).Code)
	api.bus.Wait()

	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, "/notifications", "", nil).Code)

	w := api.do(http.MethodGet, "/notifications", editor, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var bell struct {
		Items  []map[string]any `json:"items"`
		Total  int              `json:"total"`
		Unread int              `json:"unread"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bell))
	require.Len(t, bell.Items, 2)
	assert.Equal(t, 2, bell.Unread)
	assert.Equal(t, "Hello", bell.Items[0]["post"].(map[string]any)["title"])

	id := int64(bell.Items[0]["id"].(float64))
	assert.Equal(t, http.StatusOK, api.do(http.MethodPost, fmt.Sprintf("/notifications/%d/read", id), alice, nil).Code)
	w = api.do(http.MethodGet, "/notifications", editor, nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bell))
	assert.Equal(t, 2, bell.Unread, "a stranger cannot mark someone else's notification read")

	require.Equal(t, http.StatusOK, api.do(http.MethodPost, fmt.Sprintf("/notifications/%d/read", id), editor, nil).Code)
	w = api.do(http.MethodGet, "/notifications", editor, nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bell))
	assert.Equal(t, 1, bell.Unread)

	w = api.do(http.MethodPost, "/notifications/read-all", editor, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"updated":1}`, w.Body.String())

	w = api.do(http.MethodGet, "/notifications?scope=all", editor, nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bell))
	assert.Equal(t, 2, bell.Total)
	assert.Equal(t, 0, bell.Unread)

	w = api.do(http.MethodGet, "/notifications/feed", editor, nil)
	require.Equal(t, http.StatusOK, w.Code)
	feed := decode[envelope](t, w)
	assert.Equal(t, 2, feed.Total)
}

func TestProfileRoutes(t *testing.T) {
	api := newTestAPI(t)
	alice, aliceID := api.user("alice", authz.RoleUser)
	api.user("bob", authz.RoleUser)

	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, "/profile", "", nil).Code)

	w := api.do(http.MethodGet, "/profile", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	profile := decode[map[string]any](t, w)
	assert.Equal(t, aliceID.String(), profile["id"])
	assert.Equal(t, "user", profile["role"])

	w = api.do(http.MethodPut, "/profile", alice, map[string]any{"username": "BOB", "name": "Alice"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = api.do(http.MethodPut, "/profile", alice, map[string]any{"username": "a!", "name": "Alice"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodPut, "/profile", alice, map[string]any{"username": "alice.w", "name": "Alice W", "role": "superadmin"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[map[string]any](t, w)
	assert.Equal(t, "alice.w", updated["username"])
	assert.Equal(t, "user", updated["role"])
}

func TestAdminRoutes(t *testing.T) {
	api := newTestAPI(t)
	editor, _ := api.user("editor", authz.RoleAdmin)
	root, _ := api.user("root", authz.RoleSuperadmin)
	_, aliceID := api.user("alice", authz.RoleUser)

	assert.Equal(t, http.StatusForbidden, api.do(http.MethodGet, "/admin/users", editor, nil).Code)

	w := api.do(http.MethodGet, "/admin/users?q=ALI", root, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[envelope](t, w).Total)

	w = api.do(http.MethodPut, "/admin/users", root, map[string]any{"userId": aliceID, "role": "admin"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "admin", decode[map[string]any](t, w)["role"])

	w = api.do(http.MethodPost, "/admin/reset-password", root, map[string]any{"userId": aliceID, "newPassword": "short"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodPost, "/admin/reset-password", root, map[string]any{"userId": aliceID, "newPassword": "long enough"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestErrorResponses(t *testing.T) {
	api := newTestAPI(t)
	reader, _ := api.user("reader", authz.RoleUser)

	t.Run("malformed json", func(t *testing.T) {
		w := api.do(http.MethodPost, "/comments", reader, `{"postId":`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "BAD_REQUEST", decode[errorBody](t, w).Error)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	})

	t.Run("unknown route", func(t *testing.T) {
		w := api.do(http.MethodGet, "/nope", "", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "NOT_FOUND", decode[errorBody](t, w).Error)
	})

	t.Run("missing id", func(t *testing.T) {
		w := api.do(http.MethodDelete, "/comments", reader, nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "id is required", decode[errorBody](t, w).Message)
	})

	t.Run("bad ids", func(t *testing.T) {
		tests := []struct {
			method  string
			path    string
			message string
		}{
			{http.MethodGet, "/posts/abc", "id must be a positive integer"},
			{http.MethodGet, "/posts/0", "id must be a positive integer"},
			{http.MethodPost, "/notifications/x/read", "id must be a positive integer"},
			{http.MethodDelete, "/comments?id=-4", "id must be a positive integer"},
			{http.MethodGet, "/comments?postId=two", "postId must be a positive integer"},
			{http.MethodGet, "/likes", "postId is required"},
		}
		for _, tt := range tests {
			w := api.do(tt.method, tt.path, reader, nil)
			require.Equal(t, http.StatusBadRequest, w.Code, tt.path)
			assert.Equal(t, tt.message, decode[errorBody](t, w).Message, tt.path)
		}
	})
}

type panickingServer struct {
	openapi.Unimplemented
}

func (panickingServer) GetLiveness(w http.ResponseWriter, r *http.Request) {
	var m map[string]int
	m["boom"]++
}

func TestRouterRecoversPanicsAsJSON(t *testing.T) {
	log := logger.NewSlogAdapterWithWriter(io.Discard, "test", "error")
	limiter, err := middleware.NewRateLimiter(middleware.RateLimitConfig{}, log)
	require.NoError(t, err)
	router := rest.NewRouter(
		panickingServer{},
		middleware.NewAuthenticator(tokenResolver{}),
		middleware.NewGate(nil, log),
		limiter,
		log,
	)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, rest.BasePath+"/health/live", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, string(apperror.CodeInternalError), decode[errorBody](t, w).Error)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, rest.BasePath+"/health/ready", nil))
	assert.Equal(t, http.StatusNotImplemented, w.Code)
}

func TestCORSPreflightThroughRouter(t *testing.T) {
	api := newTestAPI(t)
	req, err := http.NewRequest(http.MethodOptions, "/api/v1/likes", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://blog.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)

	w := httptest.NewRecorder()
	api.handler.ServeHTTP(w, req)

	assert.Less(t, w.Code, 300)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, "https://blog.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestHealthLiveness(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/health/live", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "test", body["version"])
}
