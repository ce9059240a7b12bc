package postgres_test

import (
	"context"
	"testing"
	"time"

	"opencircle/internal/clock"
	"opencircle/internal/domain/entity"
	domainerrors "opencircle/internal/domain/errors"
	"opencircle/internal/domain/repository"
	"opencircle/internal/infra/persistence/model"
	"opencircle/internal/infra/persistence/postgres"
	"opencircle/internal/infra/persistence/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventAutoAccept(t *testing.T) {
	db := storetest.New(t, nil)
	fx := storetest.NewFixture(t, db)
	events := postgres.NewEventRepository(db)
	ctx := context.Background()

	_, org := fx.Organization("org@example.com", "Readers")
	manual := fx.Event(org.ID, "Manual", false)
	auto := fx.Event(org.ID, "Auto", true)

	got, err := events.FindEventByID(ctx, manual.ID)
	require.NoError(t, err)
	assert.False(t, got.IsAutoAccept)

	got, err = events.FindEventByID(ctx, auto.ID)
	require.NoError(t, err)
	assert.True(t, got.IsAutoAccept)

	list, err := events.FindEventsByOrganization(ctx, org.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestMembershipPairIsUnique(t *testing.T) {
	db := storetest.New(t, nil)
	fx := storetest.NewFixture(t, db)
	memberships := postgres.NewMembershipRepository(db)
	ctx := context.Background()

	_, org := fx.Organization("org@example.com", "Readers")
	_, ana := fx.User("ana@example.com", "Ana", "Cruz")
	_, ben := fx.User("ben@example.com", "Ben", "Reyes")

	require.NoError(t, memberships.CreateMembership(ctx, &entity.Membership{OrganizationID: org.ID, UserID: ana.ID}))
	err := memberships.CreateMembership(ctx, &entity.Membership{OrganizationID: org.ID, UserID: ana.ID})
	assert.ErrorIs(t, err, domainerrors.ErrUniqueConstraintViolation)

	require.NoError(t, memberships.CreateMembership(ctx,
		&entity.Membership{OrganizationID: org.ID, UserID: ben.ID, Status: entity.MembershipApproved}))

	pending, err := memberships.FindMembershipsByOrganization(ctx, org.ID, entity.MembershipPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, ana.ID, pending[0].UserID)

	all, err := memberships.FindMembershipsByUser(ctx, ben.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	ids, err := memberships.FindApprovedMemberAccountIDs(ctx, org.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{ben.AccountID}, ids)

	// Leaving deletes the row, so rejoining is allowed.
	require.NoError(t, memberships.DeleteMembership(ctx, org.ID, ana.ID))
	assert.ErrorIs(t, memberships.DeleteMembership(ctx, org.ID, ana.ID), repository.ErrMembershipNotFound)
	require.NoError(t, memberships.CreateMembership(ctx, &entity.Membership{OrganizationID: org.ID, UserID: ana.ID}))
}

func TestStatusCheckConstraints(t *testing.T) {
	db := storetest.New(t, nil)
	fx := storetest.NewFixture(t, db)
	ctx := context.Background()

	_, org := fx.Organization("org@example.com", "Readers")
	userAccount, user := fx.User("ana@example.com", "Ana", "Cruz")
	event := fx.Event(org.ID, "Book fair", false)

	memberships := postgres.NewMembershipRepository(db)
	require.NoError(t, memberships.CreateMembership(ctx, &entity.Membership{OrganizationID: org.ID, UserID: user.ID}))
	_, err := memberships.UpdateMembershipStatus(ctx, org.ID, user.ID, "banned")
	assert.ErrorIs(t, err, domainerrors.ErrCheckConstraintViolation)

	rsvps := postgres.NewRSVPRepository(db)
	err = rsvps.CreateRSVP(ctx, &entity.RSVP{EventID: event.ID, Attendee: userAccount.ID, Status: "maybe"})
	assert.ErrorIs(t, err, domainerrors.ErrCheckConstraintViolation)

	err = postgres.NewShareRepository(db).CreateShare(ctx, &entity.Share{
		AccountUUID: userAccount.UUID,
		Content:     entity.ContentRef{Type: entity.ContentType(3), ID: 1},
	})
	assert.ErrorIs(t, err, domainerrors.ErrCheckConstraintViolation)

	err = postgres.NewNotificationRepository(db).CreateNotification(ctx, &entity.Notification{
		RecipientID: userAccount.ID,
		Type:        "birthday",
		Title:       "t",
		Message:     "m",
	})
	assert.ErrorIs(t, err, domainerrors.ErrCheckConstraintViolation)
}

func TestRSVPs(t *testing.T) {
	db := storetest.New(t, nil)
	fx := storetest.NewFixture(t, db)
	rsvps := postgres.NewRSVPRepository(db)
	ctx := context.Background()

	_, org := fx.Organization("org@example.com", "Readers")
	event := fx.Event(org.ID, "Book fair", false)
	anaAccount, _ := fx.User("ana@example.com", "Ana", "Cruz")
	benAccount, _ := fx.User("ben@example.com", "Ben", "Reyes")

	rsvp := &entity.RSVP{EventID: event.ID, Attendee: anaAccount.ID}
	require.NoError(t, rsvps.CreateRSVP(ctx, rsvp))
	assert.Equal(t, entity.RSVPPending, rsvp.Status)

	err := rsvps.CreateRSVP(ctx, &entity.RSVP{EventID: event.ID, Attendee: anaAccount.ID, Status: entity.RSVPJoined})
	assert.ErrorIs(t, err, domainerrors.ErrUniqueConstraintViolation)

	require.NoError(t, rsvps.CreateRSVP(ctx, &entity.RSVP{EventID: event.ID, Attendee: benAccount.ID, Status: entity.RSVPJoined}))

	joined, err := rsvps.UpdateRSVPStatus(ctx, rsvp.ID, entity.RSVPJoined)
	require.NoError(t, err)
	assert.Equal(t, entity.RSVPJoined, joined.Status)

	list, err := rsvps.FindRSVPsByEvent(ctx, event.ID, entity.RSVPJoined)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	found, err := rsvps.FindRSVP(ctx, event.ID, benAccount.ID)
	require.NoError(t, err)
	require.NoError(t, rsvps.DeleteRSVP(ctx, found.ID))

	_, err = rsvps.FindRSVPByID(ctx, found.ID)
	assert.ErrorIs(t, err, repository.ErrRSVPNotFound)
	_, err = rsvps.UpdateRSVPStatus(ctx, found.ID, entity.RSVPRejected)
	assert.ErrorIs(t, err, repository.ErrRSVPNotFound)
}

func TestComments(t *testing.T) {
	clk := clock.NewFakeClock(storetest.Epoch)
	db := storetest.New(t, clk)
	fx := storetest.NewFixture(t, db)
	comments := postgres.NewCommentRepository(db)
	ctx := context.Background()

	orgAccount, org := fx.Organization("org@example.com", "Readers")
	event := fx.Event(org.ID, "Book fair", true)
	post := fx.Post(orgAccount.ID, "welcome")
	anaAccount, _ := fx.User("ana@example.com", "Ana", "Cruz")

	err := comments.CreateComment(ctx, &entity.Comment{Author: anaAccount.ID, Message: "lost"})
	assert.ErrorIs(t, err, entity.ErrInvalidCommentTarget)

	onEvent := &entity.Comment{Target: entity.EventTarget(event.ID), Author: anaAccount.ID, Message: "going"}
	require.NoError(t, comments.CreateComment(ctx, onEvent))
	clk.Advance(time.Minute)
	onPost := &entity.Comment{Target: entity.PostTarget(post.ID), Author: anaAccount.ID, Message: "nice"}
	require.NoError(t, comments.CreateComment(ctx, onPost))

	err = comments.CreateComment(ctx, &entity.Comment{Target: entity.PostTarget(9999), Author: anaAccount.ID, Message: "?"})
	assert.ErrorIs(t, err, domainerrors.ErrForeignKeyViolation)

	list, err := comments.FindCommentsByTarget(ctx, entity.EventTarget(event.ID))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.CommentOnEvent, list[0].Target.Kind())
	assert.Equal(t, event.ID, list[0].Target.ID())

	_, err = comments.UpdateCommentMessage(ctx, onPost.ID, orgAccount.ID, "hijacked")
	assert.ErrorIs(t, err, repository.ErrCommentNotFound)

	clk.Advance(time.Minute)
	edited, err := comments.UpdateCommentMessage(ctx, onPost.ID, anaAccount.ID, "very nice")
	require.NoError(t, err)
	assert.Equal(t, "very nice", edited.Message)
	assert.True(t, edited.LastModifiedDate.Equal(storetest.Epoch.Add(2*time.Minute)))

	assert.ErrorIs(t, comments.DeleteComment(ctx, onEvent.ID, orgAccount.ID), repository.ErrCommentNotFound)
	require.NoError(t, comments.DeleteComment(ctx, onEvent.ID, anaAccount.ID))

	// Deleting the post takes its comments along.
	require.NoError(t, postgres.NewPostRepository(db).DeletePost(ctx, post.ID, post.Author))
	_, err = comments.FindCommentByID(ctx, onPost.ID)
	assert.ErrorIs(t, err, repository.ErrCommentNotFound)
}

func TestCommentRowWithBothTargetsIsRejectedOnRead(t *testing.T) {
	db := storetest.New(t, nil)
	fx := storetest.NewFixture(t, db)

	orgAccount, org := fx.Organization("org@example.com", "Readers")
	event := fx.Event(org.ID, "Book fair", true)
	post := fx.Post(orgAccount.ID, "welcome")

	bad := &model.CommentModel{EventID: &event.ID, PostID: &post.ID, Author: orgAccount.ID, Message: "both"}
	require.NoError(t, db.Create(bad).Error)

	_, err := postgres.NewCommentRepository(db).FindCommentByID(context.Background(), bad.ID)
	assert.ErrorIs(t, err, entity.ErrInvalidCommentTarget)
}

func TestSessions(t *testing.T) {
	clk := clock.NewFakeClock(storetest.Epoch)
	db := storetest.New(t, clk)
	fx := storetest.NewFixture(t, db)
	sessions := postgres.NewSessionRepository(db)
	ctx := context.Background()

	account := fx.Account("ana@example.com", entity.RoleUser)
	ip := "203.0.113.7"

	short := &entity.Session{AccountUUID: account.UUID, SessionToken: "short", ExpiresAt: storetest.Epoch.Add(10 * time.Minute), IPAddress: &ip}
	long := &entity.Session{AccountUUID: account.UUID, SessionToken: "long", ExpiresAt: storetest.Epoch.Add(2 * time.Hour)}
	require.NoError(t, sessions.CreateSession(ctx, short))
	require.NoError(t, sessions.CreateSession(ctx, long))
	assert.True(t, short.CreatedAt.Equal(storetest.Epoch))
	assert.True(t, short.LastActivity.Equal(storetest.Epoch))

	err := sessions.CreateSession(ctx, &entity.Session{AccountUUID: account.UUID, SessionToken: "short", ExpiresAt: storetest.Epoch})
	assert.ErrorIs(t, err, domainerrors.ErrUniqueConstraintViolation)

	err = sessions.CreateSession(ctx, &entity.Session{AccountUUID: entity.NewAccountUUID(), SessionToken: "orphan", ExpiresAt: storetest.Epoch})
	assert.ErrorIs(t, err, domainerrors.ErrForeignKeyViolation)

	clk.Advance(5 * time.Minute)
	touched, err := sessions.TouchSession(ctx, "long")
	require.NoError(t, err)
	assert.True(t, touched.Equal(storetest.Epoch.Add(5*time.Minute)))

	got, err := sessions.FindSessionByToken(ctx, "short")
	require.NoError(t, err)
	require.NotNil(t, got.IPAddress)
	assert.Equal(t, ip, *got.IPAddress)

	list, err := sessions.FindSessionsByAccountUUID(ctx, account.UUID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "long", list[0].SessionToken)

	clk.Advance(5 * time.Minute)
	removed, err := sessions.DeleteExpiredSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, err = sessions.FindSessionByToken(ctx, "short")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
	_, err = sessions.TouchSession(ctx, "short")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	require.NoError(t, sessions.DeleteSessionByToken(ctx, "long"))
	assert.ErrorIs(t, sessions.DeleteSessionByToken(ctx, "long"), repository.ErrSessionNotFound)
}

func TestShares(t *testing.T) {
	db := storetest.New(t, nil)
	fx := storetest.NewFixture(t, db)
	shares := postgres.NewShareRepository(db)
	ctx := context.Background()

	orgAccount, org := fx.Organization("org@example.com", "Readers")
	post := fx.Post(orgAccount.ID, "welcome")
	event := fx.Event(org.ID, "Book fair", true)
	ana := fx.Account("ana@example.com", entity.RoleUser)
	ben := fx.Account("ben@example.com", entity.RoleUser)

	note := "worth reading"
	require.NoError(t, shares.CreateShare(ctx, &entity.Share{AccountUUID: ana.UUID, Content: entity.PostRef(post.ID), Comment: &note}))
	require.NoError(t, shares.CreateShare(ctx, &entity.Share{AccountUUID: ben.UUID, Content: entity.PostRef(post.ID)}))
	benEvent := &entity.Share{AccountUUID: ben.UUID, Content: entity.EventRef(event.ID)}
	require.NoError(t, shares.CreateShare(ctx, benEvent))

	// The content pointer is not checked by the store.
	require.NoError(t, shares.CreateShare(ctx, &entity.Share{AccountUUID: ana.UUID, Content: entity.EventRef(9999)}))

	exists, err := shares.ExistsShare(ctx, ana.UUID, entity.PostRef(post.ID))
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = shares.ExistsShare(ctx, ana.UUID, entity.EventRef(event.ID))
	require.NoError(t, err)
	assert.False(t, exists)

	n, err := shares.CountSharesOf(ctx, entity.PostRef(post.ID))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	list, err := shares.FindSharesByAccountUUID(ctx, ben.UUID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, entity.ContentTypeEvent, list[0].Content.Type)

	assert.ErrorIs(t, shares.DeleteShare(ctx, benEvent.ID, ana.UUID), repository.ErrShareNotFound)
	require.NoError(t, shares.DeleteShare(ctx, benEvent.ID, ben.UUID))
	_, err = shares.FindShareByID(ctx, benEvent.ID)
	assert.ErrorIs(t, err, repository.ErrShareNotFound)
}

func TestNotifications(t *testing.T) {
	clk := clock.NewFakeClock(storetest.Epoch)
	db := storetest.New(t, clk)
	fx := storetest.NewFixture(t, db)
	notifications := postgres.NewNotificationRepository(db)
	ctx := context.Background()

	ana := fx.Account("ana@example.com", entity.RoleUser)
	ben := fx.Account("ben@example.com", entity.RoleUser)

	first := &entity.Notification{
		RecipientID: ana.ID,
		Type:        entity.NotificationMembershipAccepted,
		Title:       "Membership Approved!",
		Message:     "welcome",
		Related:     &entity.EntityRef{Type: entity.RelatedOrganization, ID: 7},
	}
	require.NoError(t, notifications.CreateNotification(ctx, first))

	clk.Advance(time.Minute)
	batch := []*entity.Notification{
		{RecipientID: ana.ID, Type: entity.NotificationNewPost, Title: "a", Message: "a"},
		{RecipientID: ana.ID, Type: entity.NotificationNewPost, Title: "b", Message: "b"},
		{RecipientID: ben.ID, Type: entity.NotificationNewPost, Title: "c", Message: "c"},
	}
	require.NoError(t, notifications.BatchCreateNotifications(ctx, batch))
	for _, n := range batch {
		assert.NotZero(t, n.ID)
	}
	require.NoError(t, notifications.BatchCreateNotifications(ctx, nil))

	list, err := notifications.FindNotificationsByRecipient(ctx, ana.ID, false, 0)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "b", list[0].Title)
	assert.Equal(t, "a", list[1].Title)
	assert.Equal(t, first.ID, list[2].ID)
	require.NotNil(t, list[2].Related)
	assert.Equal(t, entity.RelatedOrganization, list[2].Related.Type)
	assert.Nil(t, list[0].Related)

	limited, err := notifications.FindNotificationsByRecipient(ctx, ana.ID, false, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	assert.ErrorIs(t, notifications.MarkNotificationRead(ctx, first.ID, ben.ID), repository.ErrNotificationNotFound)

	clk.Advance(time.Minute)
	require.NoError(t, notifications.MarkNotificationRead(ctx, first.ID, ana.ID))
	clk.Advance(time.Minute)
	require.NoError(t, notifications.MarkNotificationRead(ctx, first.ID, ana.ID))

	read, err := notifications.FindNotificationByID(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, read.IsRead)
	require.NotNil(t, read.ReadDate)
	assert.True(t, read.ReadDate.Equal(storetest.Epoch.Add(2*time.Minute)))

	unread, err := notifications.CountUnread(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)

	unreadList, err := notifications.FindNotificationsByRecipient(ctx, ana.ID, true, 0)
	require.NoError(t, err)
	assert.Len(t, unreadList, 2)

	marked, err := notifications.MarkAllNotificationsRead(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), marked)

	unread, err = notifications.CountUnread(ctx, ben.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	assert.ErrorIs(t, notifications.DeleteNotification(ctx, batch[2].ID, ana.ID), repository.ErrNotificationNotFound)
	require.NoError(t, notifications.DeleteNotification(ctx, batch[2].ID, ben.ID))
}

func TestPostsByAuthorNewestFirst(t *testing.T) {
	clk := clock.NewFakeClock(storetest.Epoch)
	db := storetest.New(t, clk)
	fx := storetest.NewFixture(t, db)

	account := fx.Account("ana@example.com", entity.RoleUser)
	older := fx.Post(account.ID, "older")
	clk.Advance(time.Hour)
	newer := fx.Post(account.ID, "newer")

	posts, err := postgres.NewPostRepository(db).FindPostsByAuthor(context.Background(), account.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, newer.ID, posts[0].ID)
	assert.Equal(t, older.ID, posts[1].ID)

	err = postgres.NewPostRepository(db).CreatePost(context.Background(), &entity.Post{Author: 4242})
	assert.ErrorIs(t, err, domainerrors.ErrForeignKeyViolation)
}

func TestPostWritesOnlyMatchTheAuthor(t *testing.T) {
	db := storetest.New(t, nil)
	fx := storetest.NewFixture(t, db)
	posts := postgres.NewPostRepository(db)
	ctx := context.Background()

	ana := fx.Account("ana@example.com", entity.RoleUser)
	ben := fx.Account("ben@example.com", entity.RoleUser)
	post := fx.Post(ana.ID, "mine")

	hijacked := "hijacked"
	err := posts.UpdatePost(ctx, &entity.Post{ID: post.ID, Author: ben.ID, Description: &hijacked})
	assert.ErrorIs(t, err, repository.ErrPostNotFound)
	assert.ErrorIs(t, posts.DeletePost(ctx, post.ID, ben.ID), repository.ErrPostNotFound)

	got, err := posts.FindPostByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, ana.ID, got.Author)
	require.NotNil(t, got.Description)
	assert.Equal(t, "mine", *got.Description)

	require.NoError(t, posts.DeletePost(ctx, post.ID, ana.ID))
	_, err = posts.FindPostByID(ctx, post.ID)
	assert.ErrorIs(t, err, repository.ErrPostNotFound)
}
