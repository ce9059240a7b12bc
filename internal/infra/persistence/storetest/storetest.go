// Package storetest opens throwaway in-memory stores for tests.
package storetest

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"opencircle/internal/clock"
	"opencircle/internal/domain/entity"
	"opencircle/internal/infra/persistence/model"
	"opencircle/internal/infra/persistence/postgres"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Epoch is the time FakeClocks handed out by New start at.
var Epoch = time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

var dbSeq atomic.Int64

// New returns a migrated, role-seeded store whose timestamps come from clk.
// A nil clk gets a FakeClock at Epoch.
func New(t *testing.T, clk clock.Clock) *gorm.DB {
	t.Helper()

	if clk == nil {
		clk = clock.NewFakeClock(Epoch)
	}

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", name, dbSeq.Add(1))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, postgres.RegisterStoreClock(db, clk))
	require.NoError(t, db.AutoMigrate(model.All()...))

	roles := postgres.NewRoleRepository(db)
	for _, name := range entity.SeedRoleNames() {
		_, err := roles.EnsureRole(context.Background(), name)
		require.NoError(t, err)
	}

	return db
}

// Fixture creates rows for tests that need a populated store.
type Fixture struct {
	t  *testing.T
	db *gorm.DB
}

func NewFixture(t *testing.T, db *gorm.DB) *Fixture {
	return &Fixture{t: t, db: db}
}

func (f *Fixture) role(name string) int64 {
	f.t.Helper()

	role, err := postgres.NewRoleRepository(f.db).FindRoleByName(context.Background(), name)
	require.NoError(f.t, err)

	return role.ID
}

// Account inserts an account with the given email and role name.
func (f *Fixture) Account(email, role string) *entity.Account {
	f.t.Helper()

	account := &entity.Account{
		UUID:     entity.NewAccountUUID(),
		Email:    email,
		Password: "hash:" + email,
		RoleID:   f.role(role),
	}
	require.NoError(f.t, postgres.NewAccountRepository(f.db).CreateAccount(context.Background(), account))

	return account
}

// Organization inserts an organization account and its profile.
func (f *Fixture) Organization(email, name string) (*entity.Account, *entity.Organization) {
	f.t.Helper()

	account := f.Account(email, entity.RoleOrganization)
	org := &entity.Organization{
		AccountID: account.ID,
		Name:      name,
		Category:  "community",
	}
	require.NoError(f.t, postgres.NewOrganizationRepository(f.db).CreateOrganization(context.Background(), org))

	return account, org
}

// User inserts a user account and its profile.
func (f *Fixture) User(email, firstName, lastName string) (*entity.Account, *entity.User) {
	f.t.Helper()

	account := f.Account(email, entity.RoleUser)
	user := &entity.User{
		AccountID: account.ID,
		FirstName: firstName,
		LastName:  lastName,
	}
	require.NoError(f.t, postgres.NewUserRepository(f.db).CreateUser(context.Background(), user))

	return account, user
}

// Event inserts an event for the organization.
func (f *Fixture) Event(orgID int64, title string, autoAccept bool) *entity.Event {
	f.t.Helper()

	event := &entity.Event{
		OrganizationID: orgID,
		Title:          title,
		EventDate:      Epoch.Add(7 * 24 * time.Hour),
		IsAutoAccept:   autoAccept,
	}
	require.NoError(f.t, postgres.NewEventRepository(f.db).CreateEvent(context.Background(), event))

	return event
}

// Post inserts a post by the author account.
func (f *Fixture) Post(authorID int64, description string) *entity.Post {
	f.t.Helper()

	post := &entity.Post{
		Author:      authorID,
		Description: &description,
	}
	require.NoError(f.t, postgres.NewPostRepository(f.db).CreatePost(context.Background(), post))

	return post
}

// Resource inserts a resource row.
func (f *Fixture) Resource(directory, filename string) *entity.Resource {
	f.t.Helper()

	resource := &entity.Resource{Directory: directory, Filename: filename}
	require.NoError(f.t, postgres.NewResourceRepository(f.db).CreateResource(context.Background(), resource))

	return resource
}

// Address inserts an address row.
func (f *Fixture) Address(city string) *entity.Address {
	f.t.Helper()

	address := &entity.Address{
		Country:             "Philippines",
		CountryCode:         "PH",
		Province:            "Metro Manila",
		ProvinceCode:        "1339",
		City:                city,
		CityCode:            "133900",
		Barangay:            "Poblacion",
		BarangayCode:        "133900001",
		HouseBuildingNumber: "12",
	}
	require.NoError(f.t, postgres.NewAddressRepository(f.db).CreateAddress(context.Background(), address))

	return address
}
