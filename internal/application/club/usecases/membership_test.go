package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridecrew/ridecrew/internal/application/testutil"
	"github.com/ridecrew/ridecrew/internal/domain/club"
	"github.com/ridecrew/ridecrew/internal/domain/feed"
	"github.com/ridecrew/ridecrew/internal/domain/hike"
	"github.com/ridecrew/ridecrew/internal/domain/shared"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type fixture struct {
	clubs        *testutil.MockClubRepository
	users        *testutil.MockUserRepository
	joinRequests *testutil.MockJoinRequestRepository
	clubFollows  *testutil.MockClubFollowRepository
	posts        *testutil.MockPostRepository
	hikes        *testutil.MockHikeRepository
	hikeImages   *testutil.MockHikeImageRepository
	tx           *testutil.MockTransactor
	notifier     *testutil.MockNotifier
	storage      *testutil.MockObjectStorage
	log          logger.Interface

	club  *club.Club
	admin *user.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		clubs:        testutil.NewMockClubRepository(),
		users:        testutil.NewMockUserRepository(),
		joinRequests: testutil.NewMockJoinRequestRepository(),
		clubFollows:  testutil.NewMockClubFollowRepository(),
		posts:        testutil.NewMockPostRepository(),
		hikes:        testutil.NewMockHikeRepository(),
		hikeImages:   testutil.NewMockHikeImageRepository(),
		tx:           &testutil.MockTransactor{},
		notifier:     &testutil.MockNotifier{},
		storage:      testutil.NewMockObjectStorage(),
		log:          logger.NewNopLogger(),
	}
	f.hikes.Images = f.hikeImages
	f.club = f.clubs.Seed("Les Rouleurs", "Paris")
	f.admin = f.users.Seed("admin@example.com", "Alice", "Admin")
	require.NoError(t, f.admin.FoundClub(f.club.ID()))
	return f
}

func (f *fixture) member(t *testing.T, email string) *user.User {
	t.Helper()
	u := f.users.Seed(email, "Member", email)
	require.NoError(t, u.JoinClub(f.club.ID()))
	return u
}

func (f *fixture) accept() *AcceptRequestUseCase {
	return NewAcceptRequestUseCase(f.clubs, f.users, f.joinRequests, f.tx, f.notifier, f.storage, f.log)
}

func TestCreateClubUseCase(t *testing.T) {
	f := newFixture(t)
	founder := f.users.Seed("founder@example.com", "Fred", "Founder")
	require.NoError(t, f.joinRequests.Create(context.Background(), &club.JoinRequest{UserID: founder.ID(), ClubID: f.club.ID()}))

	uc := NewCreateClubUseCase(f.clubs, f.users, f.joinRequests, f.tx, f.storage, f.log)
	resp, err := uc.Execute(context.Background(), CreateClubCommand{
		CreatorID: founder.ID(),
		ClubDetailsInput: ClubDetailsInput{
			Name: "Gravel Gang", OrganizationType: "informal", City: "Lyon", Department: "69",
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.IsAdmin)
	assert.True(t, founder.IsAdminOf(resp.ID))
	assert.Empty(t, f.joinRequests.All(), "founder's pending requests are cleared")

	_, err = uc.Execute(context.Background(), CreateClubCommand{
		CreatorID:        f.admin.ID(),
		ClubDetailsInput: ClubDetailsInput{Name: "Second", OrganizationType: "informal", City: "Lyon"},
	})
	assert.True(t, errors.IsConflictError(err))

	_, err = uc.Execute(context.Background(), CreateClubCommand{
		CreatorID:        founder.ID(),
		ClubDetailsInput: ClubDetailsInput{Name: "X", OrganizationType: "informal", City: "Lyon", Department: "999"},
	})
	assert.True(t, errors.IsValidationError(err))
}

func TestRequestToJoinUseCase(t *testing.T) {
	f := newFixture(t)
	rider := f.users.Seed("rider@example.com", "Rita", "Rider")
	uc := NewRequestToJoinUseCase(f.clubs, f.users, f.joinRequests, f.notifier, f.log)
	ctx := context.Background()

	require.NoError(t, uc.Execute(ctx, RequestToJoinCommand{ClubID: f.club.ID(), UserID: rider.ID()}))
	assert.Equal(t, []string{"admin@example.com:Rita Rider:Les Rouleurs"}, f.notifier.Requested)

	err := uc.Execute(ctx, RequestToJoinCommand{ClubID: f.club.ID(), UserID: rider.ID()})
	assert.True(t, errors.IsConflictError(err), "duplicate request")

	err = uc.Execute(ctx, RequestToJoinCommand{ClubID: f.club.ID(), UserID: f.admin.ID()})
	assert.True(t, errors.IsConflictError(err), "already a member")

	err = uc.Execute(ctx, RequestToJoinCommand{ClubID: 404, UserID: rider.ID()})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestRequestToJoinUseCase_NotificationFailureIsNotFatal(t *testing.T) {
	f := newFixture(t)
	f.notifier.Err = assert.AnError
	rider := f.users.Seed("rider@example.com", "Rita", "Rider")

	uc := NewRequestToJoinUseCase(f.clubs, f.users, f.joinRequests, f.notifier, f.log)
	require.NoError(t, uc.Execute(context.Background(), RequestToJoinCommand{ClubID: f.club.ID(), UserID: rider.ID()}))
	assert.Len(t, f.joinRequests.All(), 1)
}

func TestAcceptRequestUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("admits the user and clears all their requests", func(t *testing.T) {
		f := newFixture(t)
		other := f.clubs.Seed("Other Club", "Nantes")
		rider := f.users.Seed("rider@example.com", "Rita", "Rider")
		waiting := f.users.Seed("wait@example.com", "Will", "Wait")
		require.NoError(t, f.joinRequests.Create(ctx, &club.JoinRequest{UserID: rider.ID(), ClubID: f.club.ID()}))
		require.NoError(t, f.joinRequests.Create(ctx, &club.JoinRequest{UserID: rider.ID(), ClubID: other.ID()}))
		require.NoError(t, f.joinRequests.Create(ctx, &club.JoinRequest{UserID: waiting.ID(), ClubID: f.club.ID()}))

		pending, err := f.accept().Execute(ctx, AcceptRequestCommand{ClubID: f.club.ID(), ActorID: f.admin.ID(), UserID: rider.ID()})
		require.NoError(t, err)

		assert.True(t, rider.IsMemberOf(f.club.ID()))
		assert.False(t, rider.IsClubAdmin())
		require.Len(t, pending, 1)
		assert.Equal(t, waiting.ID(), pending[0].User.ID)
		require.Len(t, f.joinRequests.All(), 1, "request to the other club is gone too")
		assert.Equal(t, []string{"rider@example.com:Les Rouleurs"}, f.notifier.Accepted)
		assert.Equal(t, 1, f.tx.Calls)
	})

	t.Run("user already affiliated", func(t *testing.T) {
		f := newFixture(t)
		other := f.clubs.Seed("Other Club", "Nantes")
		rider := f.users.Seed("rider@example.com", "Rita", "Rider")
		require.NoError(t, f.joinRequests.Create(ctx, &club.JoinRequest{UserID: rider.ID(), ClubID: f.club.ID()}))
		require.NoError(t, rider.JoinClub(other.ID()))

		_, err := f.accept().Execute(ctx, AcceptRequestCommand{ClubID: f.club.ID(), ActorID: f.admin.ID(), UserID: rider.ID()})
		assert.True(t, errors.IsConflictError(err))
		assert.True(t, rider.IsMemberOf(other.ID()))
		assert.Empty(t, f.joinRequests.All(), "stale request is dropped")
		assert.Empty(t, f.notifier.Accepted)
	})

	t.Run("missing request", func(t *testing.T) {
		f := newFixture(t)
		rider := f.users.Seed("rider@example.com", "Rita", "Rider")

		_, err := f.accept().Execute(ctx, AcceptRequestCommand{ClubID: f.club.ID(), ActorID: f.admin.ID(), UserID: rider.ID()})
		assert.True(t, errors.IsNotFoundError(err))
		assert.False(t, rider.IsAffiliated())
	})

	t.Run("non admin", func(t *testing.T) {
		f := newFixture(t)
		m := f.member(t, "m@example.com")

		_, err := f.accept().Execute(ctx, AcceptRequestCommand{ClubID: f.club.ID(), ActorID: m.ID(), UserID: 99})
		assert.True(t, errors.IsForbiddenError(err))
	})
}

func TestDenyAndShowJoinRequests(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	rider := f.users.Seed("rider@example.com", "Rita", "Rider")
	require.NoError(t, f.joinRequests.Create(ctx, &club.JoinRequest{UserID: rider.ID(), ClubID: f.club.ID()}))

	show := NewShowJoinRequestsUseCase(f.clubs, f.users, f.joinRequests, f.storage, f.log)
	pending, err := show.Execute(ctx, ShowJoinRequestsQuery{ClubID: f.club.ID(), ActorID: f.admin.ID()})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Rita Rider", pending[0].User.FullName)

	deny := NewDenyRequestUseCase(f.clubs, f.users, f.joinRequests, f.log)
	require.NoError(t, deny.Execute(ctx, DenyRequestCommand{ClubID: f.club.ID(), ActorID: f.admin.ID(), UserID: rider.ID()}))
	assert.Empty(t, f.joinRequests.All())
	assert.False(t, rider.IsAffiliated())

	err = deny.Execute(ctx, DenyRequestCommand{ClubID: f.club.ID(), ActorID: f.admin.ID(), UserID: rider.ID()})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestExpelMemberUseCase(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	m := f.member(t, "m@example.com")
	outsider := f.users.Seed("out@example.com", "Otto", "Out")
	uc := NewExpelMemberUseCase(f.clubs, f.users, f.tx, f.log)

	require.NoError(t, uc.Execute(ctx, ExpelMemberCommand{ClubID: f.club.ID(), ActorID: f.admin.ID(), UserID: m.ID()}))
	assert.False(t, m.IsAffiliated())

	assert.NoError(t, uc.Execute(ctx, ExpelMemberCommand{ClubID: f.club.ID(), ActorID: f.admin.ID(), UserID: outsider.ID()}))

	err := uc.Execute(ctx, ExpelMemberCommand{ClubID: f.club.ID(), ActorID: f.admin.ID(), UserID: f.admin.ID()})
	assert.True(t, errors.IsValidationError(err))
	assert.True(t, f.admin.IsAdminOf(f.club.ID()))
}

func TestChangeAdminUseCase(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	m := f.member(t, "m@example.com")
	outsider := f.users.Seed("out@example.com", "Otto", "Out")
	uc := NewChangeAdminUseCase(f.clubs, f.users, f.tx, f.log)

	err := uc.Execute(ctx, ChangeAdminCommand{ClubID: f.club.ID(), ActorID: f.admin.ID(), UserID: outsider.ID()})
	assert.True(t, errors.IsValidationError(err))
	assert.True(t, f.admin.IsAdminOf(f.club.ID()), "no flags change for a non-member")
	assert.False(t, outsider.IsClubAdmin())
	assert.Zero(t, f.tx.Calls)

	require.NoError(t, uc.Execute(ctx, ChangeAdminCommand{ClubID: f.club.ID(), ActorID: f.admin.ID(), UserID: m.ID()}))
	assert.True(t, m.IsAdminOf(f.club.ID()))
	assert.False(t, f.admin.IsClubAdmin())
	assert.True(t, f.admin.IsMemberOf(f.club.ID()))

	err = uc.Execute(ctx, ChangeAdminCommand{ClubID: f.club.ID(), ActorID: f.admin.ID(), UserID: m.ID()})
	assert.True(t, errors.IsForbiddenError(err), "former admin lost their rights")
}

func TestLeaveClubUseCase_ClearsAdminFlag(t *testing.T) {
	f := newFixture(t)
	uc := NewLeaveClubUseCase(f.users, f.log)

	require.NoError(t, uc.Execute(context.Background(), LeaveClubCommand{UserID: f.admin.ID()}))
	assert.False(t, f.admin.IsAffiliated())
	assert.False(t, f.admin.IsClubAdmin())

	require.NoError(t, uc.Execute(context.Background(), LeaveClubCommand{UserID: f.admin.ID()}))
}

func TestDeleteClubUseCase(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	m := f.member(t, "m@example.com")
	f.club.ReplaceAvatar("avatars/clubs/logo.png")
	require.NoError(t, f.clubFollows.Create(ctx, m.ID(), f.club.ID()))
	require.NoError(t, f.joinRequests.Create(ctx, &club.JoinRequest{UserID: 77, ClubID: f.club.ID()}))

	p, err := feed.NewClubPost(f.admin.ID(), f.club.ID(), "Sunday ride", "<p>Sunday ride</p>")
	require.NoError(t, err)
	p.AttachImage("posts/ride.jpg")
	require.NoError(t, f.posts.Create(ctx, p))

	clubID := f.club.ID()
	h, err := hike.NewHike(f.admin.ID(), &clubID, hike.Details{
		Title: "Col du Galibier", StartsAt: time.Now().Add(48 * time.Hour), Difficulty: hike.DifficultyHard,
	})
	require.NoError(t, err)
	require.NoError(t, f.hikes.Create(ctx, h))
	require.NoError(t, f.hikeImages.Create(ctx, h.ID(), "hikes/col.jpg"))

	uc := NewDeleteClubUseCase(f.clubs, f.users, f.clubFollows, f.joinRequests, f.posts, f.hikes, f.tx, f.storage, f.log)

	err = uc.Execute(ctx, DeleteClubCommand{ClubID: clubID, ActorID: m.ID()})
	require.True(t, errors.IsForbiddenError(err))

	require.NoError(t, uc.Execute(ctx, DeleteClubCommand{ClubID: clubID, ActorID: f.admin.ID()}))

	_, err = f.clubs.GetByID(ctx, clubID)
	assert.ErrorIs(t, err, club.ErrClubNotFound)
	assert.False(t, f.admin.IsAffiliated())
	assert.False(t, f.admin.IsClubAdmin())
	assert.False(t, m.IsAffiliated())
	n, _ := f.clubFollows.CountByClub(ctx, clubID)
	assert.Zero(t, n)
	assert.Empty(t, f.joinRequests.All())
	assert.Zero(t, f.posts.Count())
	assert.Zero(t, f.hikes.Count())
	assert.ElementsMatch(t, []string{"avatars/clubs/logo.png", "posts/ride.jpg", "hikes/col.jpg"}, f.storage.Deleted())
}

func TestDeleteClubUseCase_RollbackKeepsAssets(t *testing.T) {
	f := newFixture(t)
	f.tx.FailWith = assert.AnError
	uc := NewDeleteClubUseCase(f.clubs, f.users, f.clubFollows, f.joinRequests, f.posts, f.hikes, f.tx, f.storage, f.log)

	err := uc.Execute(context.Background(), DeleteClubCommand{ClubID: f.club.ID(), Moderation: true})
	require.Error(t, err)
	assert.Empty(t, f.storage.Deleted())
}

func TestToggleFollowClubUseCase(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	rider := f.users.Seed("rider@example.com", "Rita", "Rider")
	uc := NewToggleFollowClubUseCase(f.clubs, f.clubFollows, f.log)

	on, err := uc.Execute(ctx, ToggleFollowClubCommand{ClubID: f.club.ID(), UserID: rider.ID()})
	require.NoError(t, err)
	assert.Equal(t, shared.ActionFollow, on.Action)

	off, err := uc.Execute(ctx, ToggleFollowClubCommand{ClubID: f.club.ID(), UserID: rider.ID()})
	require.NoError(t, err)
	assert.Equal(t, shared.ActionUnfollow, off.Action)
	assert.False(t, rider.IsAffiliated(), "following never implies membership")

	get := NewGetClubUseCase(f.clubs, f.users, f.clubFollows, f.joinRequests, f.storage, f.log)
	resp, err := get.Execute(ctx, GetClubQuery{ClubID: f.club.ID(), ViewerID: f.admin.ID()})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.MemberCount)
	assert.Zero(t, resp.FollowerCount)
	assert.True(t, resp.IsAdmin)
}
