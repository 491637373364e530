package usecases

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridecrew/ridecrew/internal/application/common"
	"github.com/ridecrew/ridecrew/internal/application/testutil"
	"github.com/ridecrew/ridecrew/internal/domain/club"
	"github.com/ridecrew/ridecrew/internal/domain/hike"
	"github.com/ridecrew/ridecrew/internal/domain/shared"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type hikeFixture struct {
	users   *testutil.MockUserRepository
	clubs   *testutil.MockClubRepository
	hikes   *testutil.MockHikeRepository
	trips   *testutil.MockTripRepository
	hypes   *testutil.MockHypeRepository
	images  *testutil.MockHikeImageRepository
	storage *testutil.MockObjectStorage
	log     logger.Interface

	club    *club.Club
	admin   *user.User
	member  *user.User
	visitor *user.User
}

func newHikeFixture(t *testing.T) *hikeFixture {
	t.Helper()
	f := &hikeFixture{
		users:   testutil.NewMockUserRepository(),
		clubs:   testutil.NewMockClubRepository(),
		hikes:   testutil.NewMockHikeRepository(),
		trips:   testutil.NewMockTripRepository(),
		hypes:   testutil.NewMockHypeRepository(),
		images:  testutil.NewMockHikeImageRepository(),
		storage: testutil.NewMockObjectStorage(),
		log:     logger.NewNopLogger(),
	}
	f.club = f.clubs.Seed("Les Rouleurs", "Paris")
	f.admin = f.users.Seed("admin@example.com", "Alice", "Admin")
	require.NoError(t, f.admin.FoundClub(f.club.ID()))
	f.member = f.users.Seed("member@example.com", "Max", "Member")
	require.NoError(t, f.member.JoinClub(f.club.ID()))
	f.visitor = f.users.Seed("visitor@example.com", "Vic", "Visitor")
	return f
}

func (f *hikeFixture) create(t *testing.T, creator uint, asClub bool, in HikeDetailsInput) uint {
	t.Helper()
	uc := NewCreateHikeUseCase(f.hikes, f.users, f.clubs, f.hypes, f.storage, f.log)
	resp, err := uc.Execute(context.Background(), CreateHikeCommand{CreatorID: creator, AsClub: asClub, HikeDetailsInput: in})
	require.NoError(t, err)
	return resp.ID
}

func details(title string, in time.Duration, dept string) HikeDetailsInput {
	return HikeDetailsInput{
		Title:      title,
		StartsAt:   time.Now().Add(in),
		Department: dept,
		DistanceKm: 80,
		ElevationM: 1200,
		Difficulty: "medium",
	}
}

func TestCreateHikeUseCase(t *testing.T) {
	ctx := context.Background()
	f := newHikeFixture(t)
	uc := NewCreateHikeUseCase(f.hikes, f.users, f.clubs, f.hypes, f.storage, f.log)

	resp, err := uc.Execute(ctx, CreateHikeCommand{CreatorID: f.admin.ID(), AsClub: true, HikeDetailsInput: details("Club ride", time.Hour, "75")})
	require.NoError(t, err)
	require.NotNil(t, resp.Club)
	assert.Equal(t, f.club.ID(), resp.Club.ID)
	assert.Equal(t, "planned", resp.Status)

	_, err = uc.Execute(ctx, CreateHikeCommand{CreatorID: f.member.ID(), AsClub: true, HikeDetailsInput: details("Nope", time.Hour, "")})
	assert.True(t, errors.IsForbiddenError(err))

	_, err = uc.Execute(ctx, CreateHikeCommand{CreatorID: f.member.ID(), HikeDetailsInput: details("Past", -time.Hour, "")})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(ctx, CreateHikeCommand{CreatorID: f.member.ID(), HikeDetailsInput: details("Dept", time.Hour, "00")})
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateAndCancelHike(t *testing.T) {
	ctx := context.Background()
	f := newHikeFixture(t)
	clubHike := f.create(t, f.member.ID(), false, details("Morning loop", time.Hour, ""))
	organized := f.create(t, f.admin.ID(), true, details("Club day", 2*time.Hour, ""))

	update := NewUpdateHikeUseCase(f.hikes, f.users, f.clubs, f.hypes, f.storage, f.log)
	_, err := update.Execute(ctx, UpdateHikeCommand{HikeID: clubHike, ActorID: f.visitor.ID(), HikeDetailsInput: details("Mine now", time.Hour, "")})
	assert.True(t, errors.IsForbiddenError(err))

	updated, err := update.Execute(ctx, UpdateHikeCommand{HikeID: clubHike, ActorID: f.member.ID(), HikeDetailsInput: details("Evening loop", time.Hour, "")})
	require.NoError(t, err)
	assert.Equal(t, "Evening loop", updated.Title)

	cancel := NewCancelHikeUseCase(f.hikes, f.users, f.log)
	require.NoError(t, cancel.Execute(ctx, CancelHikeCommand{HikeID: clubHike, ActorID: f.member.ID()}))
	err = cancel.Execute(ctx, CancelHikeCommand{HikeID: clubHike, ActorID: f.member.ID()})
	assert.True(t, errors.IsConflictError(err))

	_, err = update.Execute(ctx, UpdateHikeCommand{HikeID: clubHike, ActorID: f.member.ID(), HikeDetailsInput: details("Again", time.Hour, "")})
	assert.True(t, errors.IsConflictError(err))

	// The admin manages hikes organized for their club.
	require.NoError(t, cancel.Execute(ctx, CancelHikeCommand{HikeID: organized, ActorID: f.admin.ID()}))
}

func TestTripsAndHypes(t *testing.T) {
	ctx := context.Background()
	f := newHikeFixture(t)
	id := f.create(t, f.member.ID(), false, details("Two stages", time.Hour, ""))

	add := NewAddTripUseCase(f.hikes, f.trips, f.log)
	first, err := add.Execute(ctx, AddTripCommand{
		HikeID: id, ActorID: f.member.ID(), Label: "Stage 1", DistanceKm: 40,
		Path: []hike.Point{{2.35, 48.85}, {2.29, 48.86}},
	})
	require.NoError(t, err)
	second, err := add.Execute(ctx, AddTripCommand{HikeID: id, ActorID: f.member.ID(), Label: "Stage 2"})
	require.NoError(t, err)
	assert.Less(t, first.Position, second.Position)

	_, err = add.Execute(ctx, AddTripCommand{HikeID: id, ActorID: f.visitor.ID(), Label: "Intruder"})
	assert.True(t, errors.IsForbiddenError(err))
	_, err = add.Execute(ctx, AddTripCommand{HikeID: id, ActorID: f.member.ID(), Label: "Bad", Path: []hike.Point{{200, 0}}})
	assert.True(t, errors.IsValidationError(err))

	hype := NewToggleHypeUseCase(f.hikes, f.hypes, f.log)
	on, err := hype.Execute(ctx, ToggleHypeCommand{HikeID: id, UserID: f.visitor.ID()})
	require.NoError(t, err)
	assert.Equal(t, shared.ActionHype, on.Action)

	get := NewGetHikeUseCase(f.hikes, f.trips, f.hypes, f.images, f.users, f.clubs, f.storage, f.log)
	full, err := get.Execute(ctx, GetHikeQuery{HikeID: id, ViewerID: f.visitor.ID()})
	require.NoError(t, err)
	assert.Equal(t, int64(1), full.HypeCount)
	assert.True(t, full.HypedByMe)
	require.Len(t, full.Trips, 2)
	assert.Equal(t, "Stage 1", full.Trips[0].Label)
	assert.Equal(t, "Max Member", full.Creator.FullName)

	remove := NewRemoveTripUseCase(f.hikes, f.trips, f.log)
	require.NoError(t, remove.Execute(ctx, RemoveTripCommand{HikeID: id, TripID: first.ID, ActorID: f.member.ID()}))
	err = remove.Execute(ctx, RemoveTripCommand{HikeID: id, TripID: first.ID, ActorID: f.member.ID()})
	assert.True(t, errors.IsNotFoundError(err))

	off, err := hype.Execute(ctx, ToggleHypeCommand{HikeID: id, UserID: f.visitor.ID()})
	require.NoError(t, err)
	assert.Equal(t, shared.ActionUnhype, off.Action)
}

func TestSearchHikesUseCase(t *testing.T) {
	ctx := context.Background()
	f := newHikeFixture(t)
	f.create(t, f.member.ID(), false, details("Later", 72*time.Hour, "75"))
	f.create(t, f.member.ID(), false, details("Sooner", 24*time.Hour, "75"))
	f.create(t, f.member.ID(), false, details("Elsewhere", 48*time.Hour, "13"))
	cancelled := f.create(t, f.member.ID(), false, details("Cancelled", 36*time.Hour, "75"))
	require.NoError(t, NewCancelHikeUseCase(f.hikes, f.users, f.log).Execute(ctx, CancelHikeCommand{HikeID: cancelled, ActorID: f.member.ID()}))

	uc := NewSearchHikesUseCase(f.hikes, f.hypes, f.users, f.clubs, f.storage, f.log)
	result, err := uc.Execute(ctx, SearchHikesQuery{Department: "75", Page: 1, PageSize: 20})
	require.NoError(t, err)
	require.Len(t, result.Hikes, 2)
	assert.Equal(t, "Sooner", result.Hikes[0].Title)
	assert.Equal(t, "Later", result.Hikes[1].Title)

	to := time.Now().Add(50 * time.Hour)
	windowed, err := uc.Execute(ctx, SearchHikesQuery{To: &to, Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(2), windowed.Total)

	_, err = uc.Execute(ctx, SearchHikesQuery{Department: "ZZ"})
	assert.True(t, errors.IsValidationError(err))
}

func TestAddHikeImageUseCase(t *testing.T) {
	ctx := context.Background()
	f := newHikeFixture(t)
	id := f.create(t, f.member.ID(), false, details("Photo ride", time.Hour, ""))
	uc := NewAddHikeImageUseCase(f.hikes, f.images, f.storage, f.log)

	url, err := uc.Execute(ctx, AddHikeImageCommand{HikeID: id, ActorID: f.member.ID(), Image: common.ImageUpload{
		Body: bytes.NewReader([]byte("jpg")), Size: 3, ContentType: "image/jpeg",
	}})
	require.NoError(t, err)
	assert.Contains(t, url, "https://cdn.test/hikes/")

	paths, err := f.images.ListByHike(ctx, id)
	require.NoError(t, err)
	assert.Len(t, paths, 1)

	_, err = uc.Execute(ctx, AddHikeImageCommand{HikeID: id, ActorID: f.visitor.ID(), Image: common.ImageUpload{
		Body: bytes.NewReader([]byte("jpg")), Size: 3, ContentType: "image/jpeg",
	}})
	assert.True(t, errors.IsForbiddenError(err))
}
