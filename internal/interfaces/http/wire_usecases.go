package http

import (
	bicycleUsecases "github.com/ridecrew/ridecrew/internal/application/bicycle/usecases"
	clubUsecases "github.com/ridecrew/ridecrew/internal/application/club/usecases"
	feedUsecases "github.com/ridecrew/ridecrew/internal/application/feed/usecases"
	geoUsecases "github.com/ridecrew/ridecrew/internal/application/geo/usecases"
	hikeUsecases "github.com/ridecrew/ridecrew/internal/application/hike/usecases"
	subscriptionUsecases "github.com/ridecrew/ridecrew/internal/application/subscription/usecases"
	"github.com/ridecrew/ridecrew/internal/application/user/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// User / Auth
	registerUC       *usecases.RegisterUseCase
	loginUC          *usecases.LoginUseCase
	logoutUC         *usecases.LogoutUseCase
	getCurrentUserUC *usecases.GetCurrentUserUseCase
	getUserUC        *usecases.GetUserUseCase
	updateProfileUC  *usecases.UpdateProfileUseCase
	updateAvatarUC   *usecases.UpdateAvatarUseCase
	deleteAccountUC  *usecases.DeleteAccountUseCase
	toggleFollowUC   *usecases.ToggleFollowUserUseCase
	listFollowsUC    *usecases.ListFollowsUseCase
	listUsersUC      *usecases.ListUsersUseCase
	purgeSessionsUC  *usecases.PurgeSessionsUseCase

	// Club
	createClubUC       *clubUsecases.CreateClubUseCase
	updateClubUC       *clubUsecases.UpdateClubUseCase
	updateClubAvatarUC *clubUsecases.UpdateClubAvatarUseCase
	getClubUC          *clubUsecases.GetClubUseCase
	listClubsUC        *clubUsecases.ListClubsUseCase
	listMembersUC      *clubUsecases.ListMembersUseCase
	deleteClubUC       *clubUsecases.DeleteClubUseCase
	requestToJoinUC    *clubUsecases.RequestToJoinUseCase
	acceptRequestUC    *clubUsecases.AcceptRequestUseCase
	denyRequestUC      *clubUsecases.DenyRequestUseCase
	showJoinRequestsUC *clubUsecases.ShowJoinRequestsUseCase
	expelMemberUC      *clubUsecases.ExpelMemberUseCase
	changeAdminUC      *clubUsecases.ChangeAdminUseCase
	leaveClubUC        *clubUsecases.LeaveClubUseCase
	toggleFollowClubUC *clubUsecases.ToggleFollowClubUseCase

	// Feed
	createPostUC    *feedUsecases.CreatePostUseCase
	deletePostUC    *feedUsecases.DeletePostUseCase
	getPostUC       *feedUsecases.GetPostUseCase
	timelineUC      *feedUsecases.GetTimelineUseCase
	listClubPostsUC *feedUsecases.ListClubPostsUseCase
	listUserPostsUC *feedUsecases.ListUserPostsUseCase
	addCommentUC    *feedUsecases.AddCommentUseCase
	deleteCommentUC *feedUsecases.DeleteCommentUseCase
	toggleLikeUC    *feedUsecases.ToggleLikeUseCase

	// Hike
	createHikeUC   *hikeUsecases.CreateHikeUseCase
	updateHikeUC   *hikeUsecases.UpdateHikeUseCase
	cancelHikeUC   *hikeUsecases.CancelHikeUseCase
	getHikeUC      *hikeUsecases.GetHikeUseCase
	searchHikesUC  *hikeUsecases.SearchHikesUseCase
	addTripUC      *hikeUsecases.AddTripUseCase
	removeTripUC   *hikeUsecases.RemoveTripUseCase
	toggleHypeUC   *hikeUsecases.ToggleHypeUseCase
	addHikeImageUC *hikeUsecases.AddHikeImageUseCase

	// Bicycle
	createBicycleUC      *bicycleUsecases.CreateBicycleUseCase
	updateBicycleUC      *bicycleUsecases.UpdateBicycleUseCase
	deleteBicycleUC      *bicycleUsecases.DeleteBicycleUseCase
	listBicyclesUC       *bicycleUsecases.ListBicyclesUseCase
	updateBicyclePhotoUC *bicycleUsecases.UpdateBicyclePhotoUseCase

	// Geo
	searchAddressUC   *geoUsecases.SearchAddressUseCase
	reverseGeocodeUC  *geoUsecases.ReverseGeocodeUseCase
	listDepartmentsUC *geoUsecases.ListDepartmentsUseCase

	// Billing
	getEntitlementUC     *subscriptionUsecases.GetEntitlementUseCase
	startCheckoutUC      *subscriptionUsecases.StartCheckoutUseCase
	confirmPurchaseUC    *subscriptionUsecases.ConfirmPurchaseUseCase
	cancelSubscriptionUC *subscriptionUsecases.CancelSubscriptionUseCase
	resumeSubscriptionUC *subscriptionUsecases.ResumeSubscriptionUseCase
	listSubsUC           *subscriptionUsecases.ListSubsUseCase
	syncSubsUC           *subscriptionUsecases.SyncSubsUseCase
}

// initUseCases builds every use case from the repositories and adapters.
func (c *Container) initUseCases() {
	r := c.repos
	log := c.log
	store := c.storage

	c.ucs = &allUseCases{
		registerUC:       usecases.NewRegisterUseCase(r.userRepo, c.hasher, store, log),
		loginUC:          usecases.NewLoginUseCase(r.userRepo, r.sessionRepo, c.hasher, c.jwtSvc, c.resolver, store, c.cfg.Auth.Session, log),
		logoutUC:         usecases.NewLogoutUseCase(r.sessionRepo, log),
		getCurrentUserUC: usecases.NewGetCurrentUserUseCase(r.userRepo, c.resolver, store, log),
		getUserUC:        usecases.NewGetUserUseCase(r.userRepo, r.userFollowRepo, store, log),
		updateProfileUC:  usecases.NewUpdateProfileUseCase(r.userRepo, c.resolver, store, log),
		updateAvatarUC:   usecases.NewUpdateAvatarUseCase(r.userRepo, store, log),
		deleteAccountUC: usecases.NewDeleteAccountUseCase(
			r.userRepo, r.userFollowRepo, r.sessionRepo, r.joinRequestRepo, r.clubFollowRepo,
			r.postRepo, r.hikeRepo, c.txManager, store, log,
		),
		toggleFollowUC:  usecases.NewToggleFollowUserUseCase(r.userRepo, r.userFollowRepo, log),
		listFollowsUC:   usecases.NewListFollowsUseCase(r.userRepo, r.userFollowRepo, store, log),
		listUsersUC:     usecases.NewListUsersUseCase(r.userRepo, log),
		purgeSessionsUC: usecases.NewPurgeSessionsUseCase(r.sessionRepo, log),

		createClubUC:       clubUsecases.NewCreateClubUseCase(r.clubRepo, r.userRepo, r.joinRequestRepo, c.txManager, store, log),
		updateClubUC:       clubUsecases.NewUpdateClubUseCase(r.clubRepo, r.userRepo, store, log),
		updateClubAvatarUC: clubUsecases.NewUpdateClubAvatarUseCase(r.clubRepo, r.userRepo, store, log),
		getClubUC:          clubUsecases.NewGetClubUseCase(r.clubRepo, r.userRepo, r.clubFollowRepo, r.joinRequestRepo, store, log),
		listClubsUC:        clubUsecases.NewListClubsUseCase(r.clubRepo, store, log),
		listMembersUC:      clubUsecases.NewListMembersUseCase(r.clubRepo, r.userRepo, store, log),
		deleteClubUC: clubUsecases.NewDeleteClubUseCase(
			r.clubRepo, r.userRepo, r.clubFollowRepo, r.joinRequestRepo,
			r.postRepo, r.hikeRepo, c.txManager, store, log,
		),
		requestToJoinUC:    clubUsecases.NewRequestToJoinUseCase(r.clubRepo, r.userRepo, r.joinRequestRepo, c.notifier, log),
		acceptRequestUC:    clubUsecases.NewAcceptRequestUseCase(r.clubRepo, r.userRepo, r.joinRequestRepo, c.txManager, c.notifier, store, log),
		denyRequestUC:      clubUsecases.NewDenyRequestUseCase(r.clubRepo, r.userRepo, r.joinRequestRepo, log),
		showJoinRequestsUC: clubUsecases.NewShowJoinRequestsUseCase(r.clubRepo, r.userRepo, r.joinRequestRepo, store, log),
		expelMemberUC:      clubUsecases.NewExpelMemberUseCase(r.clubRepo, r.userRepo, c.txManager, log),
		changeAdminUC:      clubUsecases.NewChangeAdminUseCase(r.clubRepo, r.userRepo, c.txManager, log),
		leaveClubUC:        clubUsecases.NewLeaveClubUseCase(r.userRepo, log),
		toggleFollowClubUC: clubUsecases.NewToggleFollowClubUseCase(r.clubRepo, r.clubFollowRepo, log),

		createPostUC: feedUsecases.NewCreatePostUseCase(r.postRepo, r.userRepo, r.clubRepo, r.commentRepo, r.likeRepo, c.renderer, store, log),
		deletePostUC: feedUsecases.NewDeletePostUseCase(r.postRepo, r.userRepo, store, log),
		getPostUC:    feedUsecases.NewGetPostUseCase(r.postRepo, r.userRepo, r.clubRepo, r.commentRepo, r.likeRepo, store, log),
		timelineUC: feedUsecases.NewGetTimelineUseCase(
			r.postRepo, r.userRepo, r.userFollowRepo, r.clubRepo, r.clubFollowRepo,
			r.commentRepo, r.likeRepo, store, log,
		),
		listClubPostsUC: feedUsecases.NewListClubPostsUseCase(r.postRepo, r.userRepo, r.clubRepo, r.commentRepo, r.likeRepo, store, log),
		listUserPostsUC: feedUsecases.NewListUserPostsUseCase(r.postRepo, r.userRepo, r.clubRepo, r.commentRepo, r.likeRepo, store, log),
		addCommentUC:    feedUsecases.NewAddCommentUseCase(r.postRepo, r.commentRepo, r.userRepo, c.renderer, store, log),
		deleteCommentUC: feedUsecases.NewDeleteCommentUseCase(r.postRepo, r.commentRepo, log),
		toggleLikeUC:    feedUsecases.NewToggleLikeUseCase(r.postRepo, r.likeRepo, log),

		createHikeUC:   hikeUsecases.NewCreateHikeUseCase(r.hikeRepo, r.userRepo, r.clubRepo, r.hypeRepo, store, log),
		updateHikeUC:   hikeUsecases.NewUpdateHikeUseCase(r.hikeRepo, r.userRepo, r.clubRepo, r.hypeRepo, store, log),
		cancelHikeUC:   hikeUsecases.NewCancelHikeUseCase(r.hikeRepo, r.userRepo, log),
		getHikeUC:      hikeUsecases.NewGetHikeUseCase(r.hikeRepo, r.tripRepo, r.hypeRepo, r.hikeImageRepo, r.userRepo, r.clubRepo, store, log),
		searchHikesUC:  hikeUsecases.NewSearchHikesUseCase(r.hikeRepo, r.hypeRepo, r.userRepo, r.clubRepo, store, log),
		addTripUC:      hikeUsecases.NewAddTripUseCase(r.hikeRepo, r.tripRepo, log),
		removeTripUC:   hikeUsecases.NewRemoveTripUseCase(r.hikeRepo, r.tripRepo, log),
		toggleHypeUC:   hikeUsecases.NewToggleHypeUseCase(r.hikeRepo, r.hypeRepo, log),
		addHikeImageUC: hikeUsecases.NewAddHikeImageUseCase(r.hikeRepo, r.hikeImageRepo, store, log),

		createBicycleUC:      bicycleUsecases.NewCreateBicycleUseCase(r.bicycleRepo, store, log),
		updateBicycleUC:      bicycleUsecases.NewUpdateBicycleUseCase(r.bicycleRepo, store, log),
		deleteBicycleUC:      bicycleUsecases.NewDeleteBicycleUseCase(r.bicycleRepo, store, log),
		listBicyclesUC:       bicycleUsecases.NewListBicyclesUseCase(r.bicycleRepo, store, log),
		updateBicyclePhotoUC: bicycleUsecases.NewUpdateBicyclePhotoUseCase(r.bicycleRepo, store, log),

		searchAddressUC:   geoUsecases.NewSearchAddressUseCase(c.geocoder, log),
		reverseGeocodeUC:  geoUsecases.NewReverseGeocodeUseCase(c.geocoder, log),
		listDepartmentsUC: geoUsecases.NewListDepartmentsUseCase(log),

		getEntitlementUC: subscriptionUsecases.NewGetEntitlementUseCase(r.userRepo, c.resolver, log),
		startCheckoutUC: subscriptionUsecases.NewStartCheckoutUseCase(r.userRepo, c.gateway, subscriptionUsecases.CheckoutSettings{
			PriceIDs:   c.cfg.Billing.PriceIDs,
			SuccessURL: c.cfg.Billing.SuccessURL,
			CancelURL:  c.cfg.Billing.CancelURL,
		}, log),
		confirmPurchaseUC:    subscriptionUsecases.NewConfirmPurchaseUseCase(r.userRepo, r.subsRepo, c.gateway, c.resolver, log),
		cancelSubscriptionUC: subscriptionUsecases.NewCancelSubscriptionUseCase(r.subsRepo, c.gateway, c.resolver, log),
		resumeSubscriptionUC: subscriptionUsecases.NewResumeSubscriptionUseCase(r.subsRepo, c.gateway, c.resolver, log),
		listSubsUC:           subscriptionUsecases.NewListSubsUseCase(r.subsRepo, log),
		syncSubsUC:           subscriptionUsecases.NewSyncSubsUseCase(r.subsRepo, c.gateway, c.resolver, log),
	}
}
