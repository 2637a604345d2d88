package application_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philly/inkwell/internal/adapters/memory"
	authzapp "github.com/philly/inkwell/internal/authz/application"
	authz "github.com/philly/inkwell/internal/authz/domain"
	"github.com/philly/inkwell/internal/comments/application"
	"github.com/philly/inkwell/internal/comments/domain"
	"github.com/philly/inkwell/internal/comments/ports"
	"github.com/philly/inkwell/internal/platform/apperror"
	"github.com/philly/inkwell/internal/platform/eventbus"
	"github.com/philly/inkwell/internal/platform/events"
	"github.com/philly/inkwell/internal/platform/logger"
	"github.com/philly/inkwell/internal/platform/pagination"
	postdomain "github.com/philly/inkwell/internal/posts/domain"
)

type fixture struct {
	store  *memory.Store
	bus    *eventbus.Bus
	svc    *application.CommentsService
	author *authz.Principal
	post   int64
	draft  int64
}

func newFixture() *fixture {
	log := logger.NewSlogAdapterWithWriter(io.Discard, "test", "error")
	store := memory.NewStore()
	bus := eventbus.NewBus(log)
	general := store.AddCategory("General")
	author := user(authz.RoleAdmin)
	return &fixture{
		store:  store,
		bus:    bus,
		svc:    application.NewCommentsService(store.Comments(), store.CommentPostLookup(), bus, log),
		author: author,
		post:   store.AddPost(postdomain.Post{Title: "open", CategoryID: general, AuthorID: author.ID, Published: true}),
		draft:  store.AddPost(postdomain.Post{Title: "draft", CategoryID: general, AuthorID: author.ID}),
	}
}

func user(role authz.Role) *authz.Principal {
	return &authz.Principal{Identity: authz.Identity{ID: uuid.New()}, Role: role}
}

func onPost(id int64, order domain.Order, n, size int) ports.ListFilter {
	return ports.ListFilter{PostID: &id, Order: order, Page: pagination.New(n, size, pagination.CommentLimits)}
}

func TestCreateContentBounds(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	commenter := user(authz.RoleUser)

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "empty", content: "", wantErr: application.ErrContentEmpty},
		{name: "whitespace only", content: "  \n\t ", wantErr: application.ErrContentEmpty},
		{name: "501 characters", content: strings.Repeat("a", 501), wantErr: application.ErrContentTooLong},
		{name: "exactly 500 characters", content: strings.Repeat("a", 500)},
		{name: "500 multibyte characters", content: strings.Repeat("é", 500)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := f.svc.Create(ctx, commenter, f.post, tt.content)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				appErr, _ := apperror.As(err)
				assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, c.ID)
			assert.Equal(t, commenter.ID, c.UserID)
		})
	}
}

func TestCreateRequiresVisiblePost(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.svc.Create(ctx, nil, f.post, "hi")
	assert.ErrorIs(t, err, authzapp.ErrAuthenticationRequired)

	_, err = f.svc.Create(ctx, user(authz.RoleUser), 12345, "hi")
	assert.ErrorIs(t, err, application.ErrPostNotFound)

	_, err = f.svc.Create(ctx, user(authz.RoleUser), f.draft, "hi")
	assert.ErrorIs(t, err, application.ErrPostNotFound)

	_, err = f.svc.Create(ctx, f.author, f.draft, "note to self")
	assert.NoError(t, err)
}

func TestDeleteOnlyTouchesOwnComments(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice, bob := user(authz.RoleUser), user(authz.RoleAdmin)

	c, err := f.svc.Create(ctx, alice, f.post, "mine")
	require.NoError(t, err)

	n, err := f.svc.Delete(ctx, bob, c.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, 1, f.store.CommentCount())

	n, err = f.svc.Delete(ctx, alice, 999)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = f.svc.Delete(ctx, alice, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Zero(t, f.store.CommentCount())

	_, err = f.svc.Delete(ctx, nil, c.ID)
	assert.ErrorIs(t, err, authzapp.ErrAuthenticationRequired)
}

func TestListOrders(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice, bob := user(authz.RoleUser), user(authz.RoleUser)
	for i, who := range []*authz.Principal{alice, bob, alice, bob, alice} {
		_, err := f.svc.Create(ctx, who, f.post, strings.Repeat("x", i+1))
		require.NoError(t, err)
	}

	newest, err := f.svc.List(ctx, nil, onPost(f.post, domain.OrderNew, 1, 10))
	require.NoError(t, err)
	require.Len(t, newest.Items, 5)
	assert.Equal(t, "xxxxx", newest.Items[0].Content)

	oldest, err := f.svc.List(ctx, nil, onPost(f.post, domain.OrderOld, 1, 10))
	require.NoError(t, err)
	assert.Equal(t, "x", oldest.Items[0].Content)

	_, err = f.svc.List(ctx, nil, onPost(f.post, domain.OrderMine, 1, 10))
	assert.ErrorIs(t, err, authzapp.ErrAuthenticationRequired)

	mine, err := f.svc.List(ctx, alice, onPost(f.post, domain.OrderMine, 1, 10))
	require.NoError(t, err)
	assert.Equal(t, 3, mine.Total)
	for _, c := range mine.Items {
		assert.Equal(t, alice.ID, c.UserID)
	}

	paged, err := f.svc.List(ctx, nil, onPost(f.post, domain.OrderNew, 2, 2))
	require.NoError(t, err)
	assert.Len(t, paged.Items, 2)
	assert.Equal(t, 3, paged.TotalPages)
	assert.True(t, paged.HasMore)
}

func TestListNeedsPostUnlessMine(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	me := user(authz.RoleUser)
	_, err := f.svc.Create(ctx, me, f.post, "hello")
	require.NoError(t, err)

	_, err = f.svc.List(ctx, nil, ports.ListFilter{Order: domain.OrderNew, Page: pagination.New(1, 10, pagination.CommentLimits)})
	assert.ErrorIs(t, err, application.ErrPostRequired)

	mine, err := f.svc.List(ctx, me, ports.ListFilter{Order: domain.OrderMine, Page: pagination.New(1, 10, pagination.CommentLimits)})
	require.NoError(t, err)
	assert.Equal(t, 1, mine.Total)

	_, err = f.svc.List(ctx, nil, onPost(f.draft, domain.OrderNew, 1, 10))
	assert.ErrorIs(t, err, application.ErrPostNotFound)
}

func TestCreateNotifiesPostAuthor(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	var (
		mu  sync.Mutex
		got []events.CommentCreatedEvent
	)
	f.bus.Subscribe(events.CommentCreatedTopic, func(ctx context.Context, e eventbus.Event) error {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e.Payload.(events.CommentCreatedEvent))
		return nil
	})

	commenter := user(authz.RoleUser)
	c, err := f.svc.Create(ctx, commenter, f.post, "nice post")
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, f.author, f.post, "thanks")
	require.NoError(t, err)
	f.bus.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 1, "authors are not notified about their own comments")
	assert.Equal(t, c.ID, got[0].CommentID)
	assert.Equal(t, f.author.ID, got[0].PostAuthor)
	assert.Equal(t, commenter.ID, got[0].ActorID)
}
