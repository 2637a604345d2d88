package application_test

import (
	"context"
	"io"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philly/inkwell/internal/adapters/memory"
	authzapp "github.com/philly/inkwell/internal/authz/application"
	authz "github.com/philly/inkwell/internal/authz/domain"
	"github.com/philly/inkwell/internal/likes/application"
	"github.com/philly/inkwell/internal/platform/eventbus"
	"github.com/philly/inkwell/internal/platform/events"
	"github.com/philly/inkwell/internal/platform/logger"
	"github.com/philly/inkwell/internal/platform/pagination"
	postdomain "github.com/philly/inkwell/internal/posts/domain"
)

type fixture struct {
	store  *memory.Store
	bus    *eventbus.Bus
	svc    *application.LikesService
	author uuid.UUID
	post   int64
	draft  int64
}

func newFixture() *fixture {
	log := logger.NewSlogAdapterWithWriter(io.Discard, "test", "error")
	store := memory.NewStore()
	bus := eventbus.NewBus(log)
	general := store.AddCategory("General")
	author := uuid.New()
	return &fixture{
		store:  store,
		bus:    bus,
		svc:    application.NewLikesService(store.Likes(), store.LikePostLookup(), store.TxManager(), bus, log),
		author: author,
		post:   store.AddPost(postdomain.Post{Title: "liked", CategoryID: general, AuthorID: author, Published: true}),
		draft:  store.AddPost(postdomain.Post{Title: "draft", CategoryID: general, AuthorID: author}),
	}
}

func user() *authz.Principal {
	return &authz.Principal{Identity: authz.Identity{ID: uuid.New()}, Role: authz.RoleUser}
}

func TestLikeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	me := user()

	before, err := f.svc.Status(ctx, me, f.post)
	require.NoError(t, err)

	first, err := f.svc.Like(ctx, me, f.post)
	require.NoError(t, err)
	second, err := f.svc.Like(ctx, me, f.post)
	require.NoError(t, err)

	assert.True(t, second.Liked)
	assert.Equal(t, before.Count+1, first.Count)
	assert.Equal(t, first.Count, second.Count)

	post, err := f.store.Posts().FindByID(ctx, f.post)
	require.NoError(t, err)
	assert.Equal(t, 1, post.LikesCount)
}

func TestUnlikeWithoutLikeIsANoop(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	_, err := f.svc.Like(ctx, user(), f.post)
	require.NoError(t, err)

	state, err := f.svc.Unlike(ctx, user(), f.post)
	require.NoError(t, err)
	assert.False(t, state.Liked)
	assert.Equal(t, 1, state.Count)
}

func TestLikeUnlikeSequence(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	me := user()

	_, err := f.svc.Like(ctx, me, f.post)
	require.NoError(t, err)
	_, err = f.svc.Like(ctx, me, f.post)
	require.NoError(t, err)
	state, err := f.svc.Unlike(ctx, me, f.post)
	require.NoError(t, err)
	assert.Equal(t, 0, state.Count)

	state, err = f.svc.Unlike(ctx, me, f.post)
	require.NoError(t, err)
	assert.False(t, state.Liked)
	assert.Equal(t, 0, state.Count)
}

func TestLikeRejections(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.svc.Like(ctx, nil, f.post)
	assert.ErrorIs(t, err, authzapp.ErrAuthenticationRequired)
	_, err = f.svc.Unlike(ctx, nil, f.post)
	assert.ErrorIs(t, err, authzapp.ErrAuthenticationRequired)

	_, err = f.svc.Like(ctx, user(), 999)
	assert.ErrorIs(t, err, application.ErrPostNotFound)
	_, err = f.svc.Like(ctx, user(), f.draft)
	assert.ErrorIs(t, err, application.ErrPostNotFound)
	_, err = f.svc.Unlike(ctx, user(), 999)
	assert.ErrorIs(t, err, application.ErrPostNotFound)
}

func TestCountSyncFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	me := user()
	f.store.FailOn("likes.SyncCount", memory.ErrInjected)

	_, err := f.svc.Like(ctx, me, f.post)
	require.Error(t, err)

	state, err := f.svc.Status(ctx, me, f.post)
	require.NoError(t, err)
	assert.False(t, state.Liked)
	assert.Zero(t, state.Count)
}

func TestStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	me := user()
	_, err := f.svc.Like(ctx, me, f.post)
	require.NoError(t, err)

	anon, err := f.svc.Status(ctx, nil, f.post)
	require.NoError(t, err)
	assert.False(t, anon.Liked)
	assert.Equal(t, 1, anon.Count)

	mine, err := f.svc.Status(ctx, me, f.post)
	require.NoError(t, err)
	assert.True(t, mine.Liked)
}

func TestListMine(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	me := user()
	general, err := f.store.Categories().FindGeneral(ctx)
	require.NoError(t, err)
	other := f.store.AddPost(postdomain.Post{Title: "second", CategoryID: general.ID, AuthorID: f.author, Published: true})

	_, err = f.svc.Like(ctx, me, f.post)
	require.NoError(t, err)
	_, err = f.svc.Like(ctx, me, other)
	require.NoError(t, err)

	_, err = f.svc.ListMine(ctx, nil, pagination.New(1, 12, pagination.LikeLimits))
	assert.ErrorIs(t, err, authzapp.ErrAuthenticationRequired)

	env, err := f.svc.ListMine(ctx, me, pagination.New(1, 12, pagination.LikeLimits))
	require.NoError(t, err)
	require.Len(t, env.Items, 2)
	assert.Equal(t, "second", env.Items[0].Title)
	assert.Equal(t, 2, env.Total)
}

func TestOnlyNewLikesOnOthersPostsArePublished(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	var (
		mu    sync.Mutex
		count int
	)
	f.bus.Subscribe(events.LikeCreatedTopic, func(ctx context.Context, e eventbus.Event) error {
		mu.Lock()
		defer mu.Unlock()
		count++
		return nil
	})

	me := user()
	_, err := f.svc.Like(ctx, me, f.post)
	require.NoError(t, err)
	_, err = f.svc.Like(ctx, me, f.post)
	require.NoError(t, err)
	author := &authz.Principal{Identity: authz.Identity{ID: f.author}, Role: authz.RoleAdmin}
	_, err = f.svc.Like(ctx, author, f.post)
	require.NoError(t, err)
	f.bus.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, count)
}
