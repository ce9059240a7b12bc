package postgres_test

import (
	"context"
	"testing"
	"time"

	"opencircle/internal/clock"
	"opencircle/internal/domain/entity"
	domainerrors "opencircle/internal/domain/errors"
	"opencircle/internal/domain/repository"
	"opencircle/internal/errors"
	"opencircle/internal/infra/persistence/model"
	"opencircle/internal/infra/persistence/postgres"
	"opencircle/internal/infra/persistence/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func count(t *testing.T, db *gorm.DB, m any, query string, args ...any) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(m).Where(query, args...).Count(&n).Error)

	return n
}

func TestRoleSeedingIsIdempotent(t *testing.T) {
	db := storetest.New(t, nil)
	roles := postgres.NewRoleRepository(db)
	ctx := context.Background()

	again, err := roles.EnsureRole(ctx, entity.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, int64(1), again.ID)

	list, err := roles.ListRoles(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, entity.RoleUser, list[0].Name)
	assert.Equal(t, entity.RoleOrganization, list[1].Name)

	_, err = roles.FindRoleByName(ctx, "admin")
	assert.ErrorIs(t, err, repository.ErrRoleNotFound)
}

func TestStoreOwnsTimestamps(t *testing.T) {
	clk := clock.NewFakeClock(storetest.Epoch)
	db := storetest.New(t, clk)
	ctx := context.Background()

	// A caller-supplied created_date is overwritten on insert.
	stale := time.Date(1999, time.January, 1, 0, 0, 0, 0, time.UTC)
	resourceM := &model.ResourceModel{Directory: "img", Filename: "a.png", CreatedDate: stale, LastModifiedDate: stale}
	require.NoError(t, db.Create(resourceM).Error)

	resources := postgres.NewResourceRepository(db)
	resource, err := resources.FindResourceByID(ctx, resourceM.ID)
	require.NoError(t, err)
	assert.True(t, resource.CreatedDate.Equal(storetest.Epoch))
	assert.True(t, resource.LastModifiedDate.Equal(storetest.Epoch))

	clk.Advance(time.Hour)
	resource.Filename = "b.png"
	resource.CreatedDate = stale
	require.NoError(t, resources.UpdateResource(ctx, resource))

	updated, err := resources.FindResourceByID(ctx, resource.ID)
	require.NoError(t, err)
	assert.Equal(t, "b.png", updated.Filename)
	assert.True(t, updated.CreatedDate.Equal(storetest.Epoch))
	assert.True(t, updated.LastModifiedDate.Equal(storetest.Epoch.Add(time.Hour)))
}

func TestMapUpdateRefreshesLastModified(t *testing.T) {
	clk := clock.NewFakeClock(storetest.Epoch)
	db := storetest.New(t, clk)
	fx := storetest.NewFixture(t, db)
	ctx := context.Background()

	_, org := fx.Organization("org@example.com", "Readers")
	_, user := fx.User("ana@example.com", "Ana", "Cruz")

	memberships := postgres.NewMembershipRepository(db)
	membership := &entity.Membership{OrganizationID: org.ID, UserID: user.ID}
	require.NoError(t, memberships.CreateMembership(ctx, membership))
	assert.Equal(t, entity.MembershipPending, membership.Status)

	clk.Advance(30 * time.Minute)
	approved, err := memberships.UpdateMembershipStatus(ctx, org.ID, user.ID, entity.MembershipApproved)
	require.NoError(t, err)
	assert.Equal(t, entity.MembershipApproved, approved.Status)
	assert.True(t, approved.CreatedDate.Equal(storetest.Epoch))
	assert.True(t, approved.LastModifiedDate.Equal(storetest.Epoch.Add(30*time.Minute)))
}

func TestAccountUniqueness(t *testing.T) {
	db := storetest.New(t, nil)
	fx := storetest.NewFixture(t, db)
	accounts := postgres.NewAccountRepository(db)
	ctx := context.Background()

	first := fx.Account("dup@example.com", entity.RoleUser)

	err := accounts.CreateAccount(ctx, &entity.Account{
		UUID:     entity.NewAccountUUID(),
		Email:    "dup@example.com",
		Password: "x",
		RoleID:   first.RoleID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrUniqueConstraintViolation)

	err = accounts.CreateAccount(ctx, &entity.Account{
		UUID:     first.UUID,
		Email:    "other@example.com",
		Password: "x",
		RoleID:   first.RoleID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrUniqueConstraintViolation)

	name := "taken"
	first.Username = &name
	require.NoError(t, accounts.UpdateAccount(ctx, first))

	err = accounts.CreateAccount(ctx, &entity.Account{
		UUID:     entity.NewAccountUUID(),
		Email:    "third@example.com",
		Username: &name,
		Password: "x",
		RoleID:   first.RoleID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrUniqueConstraintViolation)

	// Accounts without a username do not collide.
	fx.Account("fourth@example.com", entity.RoleUser)
	fx.Account("fifth@example.com", entity.RoleUser)
}

func TestAccountRequiresExistingRole(t *testing.T) {
	db := storetest.New(t, nil)

	err := postgres.NewAccountRepository(db).CreateAccount(context.Background(), &entity.Account{
		UUID:     entity.NewAccountUUID(),
		Email:    "ghost@example.com",
		Password: "x",
		RoleID:   99,
	})
	assert.ErrorIs(t, err, domainerrors.ErrForeignKeyViolation)
}

func TestOmittedRequiredColumnsAreRejected(t *testing.T) {
	db := storetest.New(t, nil)
	fx := storetest.NewFixture(t, db)
	ctx := context.Background()

	role, err := postgres.NewRoleRepository(db).FindRoleByName(ctx, entity.RoleUser)
	require.NoError(t, err)

	err = postgres.NewAccountRepository(db).CreateAccount(ctx, &entity.Account{
		UUID:   entity.NewAccountUUID(),
		RoleID: role.ID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotNullViolation)
	assert.Contains(t, err.Error(), "account_")
	assert.Zero(t, count(t, db, &model.AccountModel{}, "1 = 1"))

	owner := fx.Account("owner@example.com", entity.RoleOrganization)
	err = postgres.NewOrganizationRepository(db).CreateOrganization(ctx, &entity.Organization{AccountID: owner.ID})
	assert.ErrorIs(t, err, domainerrors.ErrNotNullViolation)
	assert.Contains(t, err.Error(), "organization_")

	err = postgres.NewOrganizationRepository(db).CreateOrganization(ctx, &entity.Organization{AccountID: owner.ID, Name: "Named"})
	assert.ErrorIs(t, err, domainerrors.ErrNotNullViolation)
	assert.Contains(t, err.Error(), "organization_category_required")

	member := fx.Account("member@example.com", entity.RoleUser)
	err = postgres.NewUserRepository(db).CreateUser(ctx, &entity.User{AccountID: member.ID, FirstName: "Ana"})
	assert.ErrorIs(t, err, domainerrors.ErrNotNullViolation)
	assert.Contains(t, err.Error(), "user_last_name_required")
}

func TestAccountLookups(t *testing.T) {
	db := storetest.New(t, nil)
	fx := storetest.NewFixture(t, db)
	accounts := postgres.NewAccountRepository(db)
	ctx := context.Background()

	account := fx.Account("look@example.com", entity.RoleOrganization)
	assert.Len(t, account.UUID, entity.AccountUUIDLength)

	byUUID, err := accounts.FindAccountByUUID(ctx, account.UUID)
	require.NoError(t, err)
	assert.Equal(t, account.ID, byUUID.ID)

	byEmail, err := accounts.FindAccountByEmail(ctx, "look@example.com")
	require.NoError(t, err)
	assert.Equal(t, account.UUID, byEmail.UUID)
	assert.False(t, byEmail.Is2FAEnabled)
	assert.False(t, byEmail.IsEmailVerified)

	_, err = accounts.FindAccountByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)

	assert.ErrorIs(t, accounts.DeleteAccount(ctx, 12345), repository.ErrAccountNotFound)
}

func TestDeletingUserAccountRemovesEverythingItOwns(t *testing.T) {
	db := storetest.New(t, nil)
	fx := storetest.NewFixture(t, db)
	ctx := context.Background()

	orgAccount, org := fx.Organization("org@example.com", "Readers")
	event := fx.Event(org.ID, "Book fair", true)
	orgPost := fx.Post(orgAccount.ID, "welcome")

	userAccount, user := fx.User("ana@example.com", "Ana", "Cruz")
	userPost := fx.Post(userAccount.ID, "hello")

	require.NoError(t, postgres.NewMembershipRepository(db).CreateMembership(ctx,
		&entity.Membership{OrganizationID: org.ID, UserID: user.ID}))
	require.NoError(t, postgres.NewRSVPRepository(db).CreateRSVP(ctx,
		&entity.RSVP{EventID: event.ID, Attendee: userAccount.ID, Status: entity.RSVPJoined}))
	require.NoError(t, postgres.NewCommentRepository(db).CreateComment(ctx,
		&entity.Comment{Target: entity.PostTarget(orgPost.ID), Author: userAccount.ID, Message: "nice"}))
	require.NoError(t, postgres.NewSessionRepository(db).CreateSession(ctx,
		&entity.Session{AccountUUID: userAccount.UUID, SessionToken: "tok", ExpiresAt: storetest.Epoch.Add(time.Hour)}))
	require.NoError(t, postgres.NewShareRepository(db).CreateShare(ctx,
		&entity.Share{AccountUUID: userAccount.UUID, Content: entity.PostRef(orgPost.ID)}))
	require.NoError(t, postgres.NewNotificationRepository(db).CreateNotification(ctx,
		&entity.Notification{RecipientID: userAccount.ID, Type: entity.NotificationNewPost, Title: "t", Message: "m"}))

	require.NoError(t, postgres.NewAccountRepository(db).DeleteAccount(ctx, userAccount.ID))

	assert.Zero(t, count(t, db, &model.UserModel{}, "id = ?", user.ID))
	assert.Zero(t, count(t, db, &model.PostModel{}, "id = ?", userPost.ID))
	assert.Zero(t, count(t, db, &model.MembershipModel{}, "user_id = ?", user.ID))
	assert.Zero(t, count(t, db, &model.RSVPModel{}, "attendee = ?", userAccount.ID))
	assert.Zero(t, count(t, db, &model.CommentModel{}, "author = ?", userAccount.ID))
	assert.Zero(t, count(t, db, &model.SessionModel{}, "account_uuid = ?", userAccount.UUID))
	assert.Zero(t, count(t, db, &model.ShareModel{}, "account_uuid = ?", userAccount.UUID))
	assert.Zero(t, count(t, db, &model.NotificationModel{}, "recipient_id = ?", userAccount.ID))

	// The organization side is untouched.
	assert.Equal(t, int64(1), count(t, db, &model.EventModel{}, "id = ?", event.ID))
	assert.Equal(t, int64(1), count(t, db, &model.PostModel{}, "id = ?", orgPost.ID))
}

func TestDeletingOrganizationAccountRemovesEvents(t *testing.T) {
	db := storetest.New(t, nil)
	fx := storetest.NewFixture(t, db)
	ctx := context.Background()

	orgAccount, org := fx.Organization("org@example.com", "Readers")
	event := fx.Event(org.ID, "Book fair", false)
	userAccount, _ := fx.User("ana@example.com", "Ana", "Cruz")

	require.NoError(t, postgres.NewRSVPRepository(db).CreateRSVP(ctx,
		&entity.RSVP{EventID: event.ID, Attendee: userAccount.ID, Status: entity.RSVPPending}))
	require.NoError(t, postgres.NewCommentRepository(db).CreateComment(ctx,
		&entity.Comment{Target: entity.EventTarget(event.ID), Author: userAccount.ID, Message: "going"}))

	require.NoError(t, postgres.NewAccountRepository(db).DeleteAccount(ctx, orgAccount.ID))

	assert.Zero(t, count(t, db, &model.OrganizationModel{}, "id = ?", org.ID))
	assert.Zero(t, count(t, db, &model.EventModel{}, "id = ?", event.ID))
	assert.Zero(t, count(t, db, &model.RSVPModel{}, "event_id = ?", event.ID))
	assert.Zero(t, count(t, db, &model.CommentModel{}, "event_id = ?", event.ID))
	assert.Equal(t, int64(1), count(t, db, &model.AccountModel{}, "id = ?", userAccount.ID))
}

func TestDeletingResource(t *testing.T) {
	db := storetest.New(t, nil)
	fx := storetest.NewFixture(t, db)
	resources := postgres.NewResourceRepository(db)
	ctx := context.Background()

	orgAccount, org := fx.Organization("org@example.com", "Readers")
	userAccount, user := fx.User("ana@example.com", "Ana", "Cruz")
	event := fx.Event(org.ID, "Book fair", true)
	post := fx.Post(userAccount.ID, "hello")

	picture := fx.Resource("avatars", "ana.png")
	image := fx.Resource("images", "fair.png")
	logo := fx.Resource("logos", "readers.png")

	user.ProfilePicture = &picture.ID
	require.NoError(t, postgres.NewUserRepository(db).UpdateUser(ctx, user))
	event.Image = &image.ID
	require.NoError(t, postgres.NewEventRepository(db).UpdateEvent(ctx, event))
	post.Image = &image.ID
	require.NoError(t, postgres.NewPostRepository(db).UpdatePost(ctx, post))

	require.NoError(t, resources.DeleteResource(ctx, picture.ID))
	gotUser, err := postgres.NewUserRepository(db).FindUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, gotUser.ProfilePicture)

	require.NoError(t, resources.DeleteResource(ctx, image.ID))
	gotEvent, err := postgres.NewEventRepository(db).FindEventByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Nil(t, gotEvent.Image)
	gotPost, err := postgres.NewPostRepository(db).FindPostByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Nil(t, gotPost.Image)

	// Losing its logo takes the organization with it, but not the account.
	org.Logo = &logo.ID
	require.NoError(t, postgres.NewOrganizationRepository(db).UpdateOrganization(ctx, org))
	require.NoError(t, resources.DeleteResource(ctx, logo.ID))

	_, err = postgres.NewOrganizationRepository(db).FindOrganizationByID(ctx, org.ID)
	assert.ErrorIs(t, err, repository.ErrOrganizationNotFound)
	assert.Zero(t, count(t, db, &model.EventModel{}, "id = ?", event.ID))
	assert.Equal(t, int64(1), count(t, db, &model.AccountModel{}, "id = ?", orgAccount.ID))
}

func TestAddressInUseCannotBeDeleted(t *testing.T) {
	db := storetest.New(t, nil)
	fx := storetest.NewFixture(t, db)
	addresses := postgres.NewAddressRepository(db)
	ctx := context.Background()

	_, org := fx.Organization("org@example.com", "Readers")
	used := fx.Address("Makati")
	unused := fx.Address("Pasig")

	event := fx.Event(org.ID, "Book fair", true)
	event.AddressID = &used.ID
	require.NoError(t, postgres.NewEventRepository(db).UpdateEvent(ctx, event))

	err := addresses.DeleteAddress(ctx, used.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForeignKeyViolation)

	got, err := postgres.NewEventRepository(db).FindEventByID(ctx, event.ID)
	require.NoError(t, err)
	require.NotNil(t, got.AddressID)
	assert.Equal(t, used.ID, *got.AddressID)

	require.NoError(t, addresses.DeleteAddress(ctx, unused.ID))
	assert.ErrorIs(t, addresses.DeleteAddress(ctx, unused.ID), repository.ErrAddressNotFound)
}

func TestTransactionRollsBack(t *testing.T) {
	db := storetest.New(t, nil)
	tm := postgres.NewTransactionManager(db)
	ctx := context.Background()
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		role, err := f.NewRoleRepository().FindRoleByName(ctx, entity.RoleUser)
		if err != nil {
			return err
		}
		if err := f.NewAccountRepository().CreateAccount(ctx, &entity.Account{
			UUID:     entity.NewAccountUUID(),
			Email:    "rolled@example.com",
			Password: "x",
			RoleID:   role.ID,
		}); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = postgres.NewAccountRepository(db).FindAccountByEmail(ctx, "rolled@example.com")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestTransactionCommits(t *testing.T) {
	db := storetest.New(t, nil)
	tm := postgres.NewTransactionManager(db)
	ctx := context.Background()

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.NewAddressRepository().CreateAddress(ctx, &entity.Address{Country: "Philippines", City: "Taguig"})
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count(t, db, &model.AddressModel{}, "city = ?", "Taguig"))
}
