package application_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philly/inkwell/internal/adapters/memory"
	authzapp "github.com/philly/inkwell/internal/authz/application"
	authz "github.com/philly/inkwell/internal/authz/domain"
	cmtdomain "github.com/philly/inkwell/internal/comments/domain"
	"github.com/philly/inkwell/internal/notifications/application"
	"github.com/philly/inkwell/internal/notifications/domain"
	"github.com/philly/inkwell/internal/platform/eventbus"
	"github.com/philly/inkwell/internal/platform/events"
	"github.com/philly/inkwell/internal/platform/logger"
	"github.com/philly/inkwell/internal/platform/pagination"
	postdomain "github.com/philly/inkwell/internal/posts/domain"
	profdomain "github.com/philly/inkwell/internal/profiles/domain"
)

type fixture struct {
	store   *memory.Store
	bus     *eventbus.Bus
	svc     *application.NotificationsService
	general int64
	owner   *authz.Principal
}

func newFixture() *fixture {
	log := logger.NewSlogAdapterWithWriter(io.Discard, "test", "error")
	store := memory.NewStore()
	bus := eventbus.NewBus(log)
	svc := application.NewNotificationsService(store.Notifications(), store.Activity(), store.Directory(), log)
	application.RegisterSubscribers(bus, svc)
	return &fixture{
		store:   store,
		bus:     bus,
		svc:     svc,
		general: store.AddCategory("General"),
		owner:   &authz.Principal{Identity: authz.Identity{ID: uuid.New()}, Role: authz.RoleAdmin},
	}
}

func (f *fixture) post(title string) int64 {
	return f.store.AddPost(postdomain.Post{Title: title, CategoryID: f.general, AuthorID: f.owner.ID, Published: true})
}

func (f *fixture) actor(name string) uuid.UUID {
	id := uuid.New()
	f.store.PutProfile(profdomain.Profile{ID: id, Username: name, Name: name})
	return id
}

func (f *fixture) record(t *testing.T, typ domain.Type, actor uuid.UUID, postID int64) {
	t.Helper()
	require.NoError(t, f.svc.Record(context.Background(), &domain.Notification{
		OwnerID: f.owner.ID,
		ActorID: actor,
		Type:    typ,
		PostID:  postID,
	}))
}

func bell() pagination.Request { return pagination.New(1, 10, pagination.BellLimits) }

func TestSubscribersStoreNotifications(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	postID := f.post("Hello")
	ada := f.actor("ada")

	f.bus.Publish(ctx, eventbus.Event{Topic: events.CommentCreatedTopic, Payload: events.CommentCreatedEvent{
		CommentID: 7, PostID: postID, PostAuthor: f.owner.ID, ActorID: ada, OccurredAt: time.Now(),
	}})
	f.bus.Publish(ctx, eventbus.Event{Topic: events.LikeCreatedTopic, Payload: events.LikeCreatedEvent{
		PostID: postID, PostAuthor: f.owner.ID, ActorID: ada, OccurredAt: time.Now(),
	}})
	f.bus.Publish(ctx, eventbus.Event{Topic: events.LikeCreatedTopic, Payload: events.LikeCreatedEvent{
		PostID: postID, PostAuthor: f.owner.ID, ActorID: f.owner.ID, OccurredAt: time.Now(),
	}})
	f.bus.Wait()

	stored := f.store.NotificationsFor(f.owner.ID)
	require.Len(t, stored, 2, "self-activity is not recorded")
	types := []domain.Type{stored[0].Type, stored[1].Type}
	assert.ElementsMatch(t, []domain.Type{domain.TypeComment, domain.TypeLike}, types)
}

func TestListScopes(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	postID := f.post("Hello")
	ada := f.actor("ada")
	for i := 0; i < 3; i++ {
		f.record(t, domain.TypeLike, ada, postID)
	}
	first := f.store.NotificationsFor(f.owner.ID)[2]
	require.NoError(t, f.svc.MarkRead(ctx, f.owner, first.ID))

	unread, err := f.svc.List(ctx, f.owner, domain.ScopeBell, bell())
	require.NoError(t, err)
	assert.Equal(t, 2, unread.Total)
	assert.Equal(t, 2, unread.Unread)
	for _, it := range unread.Items {
		assert.Nil(t, it.ReadAt)
		assert.Equal(t, "ada", it.Actor.Name)
		assert.Equal(t, "Hello", it.Post.Title)
	}

	all, err := f.svc.List(ctx, f.owner, domain.ScopeAll, bell())
	require.NoError(t, err)
	assert.Equal(t, 3, all.Total)
	assert.Equal(t, 2, all.Unread)

	_, err = f.svc.List(ctx, nil, domain.ScopeAll, bell())
	assert.ErrorIs(t, err, authzapp.ErrAuthenticationRequired)
}

func TestMarkReadIsOwnerScopedAndIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.record(t, domain.TypeLike, f.actor("ada"), f.post("Hello"))
	n := f.store.NotificationsFor(f.owner.ID)[0]

	stranger := &authz.Principal{Identity: authz.Identity{ID: uuid.New()}, Role: authz.RoleUser}
	require.NoError(t, f.svc.MarkRead(ctx, stranger, n.ID))
	assert.Nil(t, f.store.NotificationsFor(f.owner.ID)[0].ReadAt)

	require.NoError(t, f.svc.MarkRead(ctx, f.owner, n.ID))
	readAt := f.store.NotificationsFor(f.owner.ID)[0].ReadAt
	require.NotNil(t, readAt)

	require.NoError(t, f.svc.MarkRead(ctx, f.owner, n.ID))
	assert.Equal(t, *readAt, *f.store.NotificationsFor(f.owner.ID)[0].ReadAt, "read_at never moves")

	assert.ErrorIs(t, f.svc.MarkRead(ctx, nil, n.ID), authzapp.ErrAuthenticationRequired)
}

func TestMarkAllRead(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	ada := f.actor("ada")
	postID := f.post("Hello")
	for i := 0; i < 4; i++ {
		f.record(t, domain.TypeComment, ada, postID)
	}

	n, err := f.svc.MarkAllRead(ctx, f.owner)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	page, err := f.svc.List(ctx, f.owner, domain.ScopeBell, bell())
	require.NoError(t, err)
	assert.Zero(t, page.Total)
	assert.Zero(t, page.Unread)
}

func TestDeletedPostAndUnknownActorPlaceholders(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	postID := f.post("Soon gone")
	f.record(t, domain.TypeLike, uuid.New(), postID)
	require.NoError(t, f.store.Posts().Delete(ctx, postID))

	page, err := f.svc.List(ctx, f.owner, domain.ScopeAll, bell())
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, domain.DeletedPostTitle, page.Items[0].Post.Title)
	assert.Equal(t, postID, page.Items[0].Post.ID)
	assert.Equal(t, domain.UnknownActorName, page.Items[0].Actor.Name)
}

func createComment(ctx context.Context, repo *memory.CommentRepository, who uuid.UUID, postID int64, text string) error {
	return repo.Create(ctx, &cmtdomain.Comment{PostID: postID, UserID: who, Content: text})
}

func TestOwnerFeedMergesCommentsAndLikes(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	first := f.post("First")
	second := f.post("Second")
	ada, bob := f.actor("ada"), f.actor("bob")

	comments := f.store.Comments()
	likes := f.store.Likes()
	require.NoError(t, createComment(ctx, comments, ada, first, "one"))
	_, err := likes.Insert(ctx, first, bob)
	require.NoError(t, err)
	require.NoError(t, createComment(ctx, comments, bob, second, "two"))
	_, err = likes.Insert(ctx, second, ada)
	require.NoError(t, err)
	require.NoError(t, createComment(ctx, comments, ada, second, "three"))

	feed, err := f.svc.OwnerFeed(ctx, f.owner, pagination.New(1, 10, pagination.NotificationLimits))
	require.NoError(t, err)
	require.Len(t, feed.Items, 5)
	assert.Equal(t, 5, feed.Total)
	assert.False(t, feed.HasMore)

	for i := 1; i < len(feed.Items); i++ {
		assert.False(t, feed.Items[i].CreatedAt.After(feed.Items[i-1].CreatedAt), "newest first")
	}
	assert.Equal(t, domain.TypeComment, feed.Items[0].Type)
	assert.Equal(t, "three", feed.Items[0].Excerpt)
	assert.Equal(t, "ada", feed.Items[0].Actor.Name)
	assert.Equal(t, "Second", feed.Items[0].Post.Title)

	small, err := f.svc.OwnerFeed(ctx, f.owner, pagination.New(1, 2, pagination.NotificationLimits))
	require.NoError(t, err)
	assert.Len(t, small.Items, 4, "two from each source")
	assert.True(t, small.HasMore)
	assert.Equal(t, 2, small.TotalPages)

	stranger := &authz.Principal{Identity: authz.Identity{ID: uuid.New()}, Role: authz.RoleUser}
	empty, err := f.svc.OwnerFeed(ctx, stranger, pagination.New(1, 10, pagination.NotificationLimits))
	require.NoError(t, err)
	assert.Empty(t, empty.Items)
	assert.NotNil(t, empty.Items)
	assert.Equal(t, 1, empty.TotalPages)
}
