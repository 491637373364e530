package http

import (
	"github.com/ridecrew/ridecrew/internal/interfaces/http/handlers"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	authHandler    *handlers.AuthHandler
	userHandler    *handlers.UserHandler
	clubHandler    *handlers.ClubHandler
	postHandler    *handlers.PostHandler
	hikeHandler    *handlers.HikeHandler
	bicycleHandler *handlers.BicycleHandler
	geoHandler     *handlers.GeoHandler
	billingHandler *handlers.BillingHandler
}

func (c *Container) initHandlers() {
	u := c.ucs
	log := c.log

	c.hdlrs = &allHandlers{
		authHandler: handlers.NewAuthHandler(u.registerUC, u.loginUC, u.logoutUC, u.getCurrentUserUC, c.cfg.Server.Mode == "release", log),
		userHandler: handlers.NewUserHandler(
			u.getUserUC, u.updateProfileUC, u.updateAvatarUC, u.deleteAccountUC,
			u.leaveClubUC, u.toggleFollowUC, u.listFollowsUC, u.listUsersUC, log,
		),
		clubHandler: handlers.NewClubHandler(handlers.ClubUseCases{
			Create:        u.createClubUC,
			Update:        u.updateClubUC,
			UpdateAvatar:  u.updateClubAvatarUC,
			Get:           u.getClubUC,
			List:          u.listClubsUC,
			ListMembers:   u.listMembersUC,
			Delete:        u.deleteClubUC,
			RequestToJoin: u.requestToJoinUC,
			Accept:        u.acceptRequestUC,
			Deny:          u.denyRequestUC,
			ShowRequests:  u.showJoinRequestsUC,
			Expel:         u.expelMemberUC,
			ChangeAdmin:   u.changeAdminUC,
			ToggleFollow:  u.toggleFollowClubUC,
		}, log),
		postHandler: handlers.NewPostHandler(handlers.PostUseCases{
			Create:        u.createPostUC,
			Delete:        u.deletePostUC,
			Get:           u.getPostUC,
			Timeline:      u.timelineUC,
			ListClubPosts: u.listClubPostsUC,
			ListUserPosts: u.listUserPostsUC,
			AddComment:    u.addCommentUC,
			DeleteComment: u.deleteCommentUC,
			ToggleLike:    u.toggleLikeUC,
		}, log),
		hikeHandler: handlers.NewHikeHandler(handlers.HikeUseCases{
			Create:     u.createHikeUC,
			Update:     u.updateHikeUC,
			Cancel:     u.cancelHikeUC,
			Get:        u.getHikeUC,
			Search:     u.searchHikesUC,
			AddTrip:    u.addTripUC,
			RemoveTrip: u.removeTripUC,
			ToggleHype: u.toggleHypeUC,
			AddImage:   u.addHikeImageUC,
		}, log),
		bicycleHandler: handlers.NewBicycleHandler(
			u.createBicycleUC, u.updateBicycleUC, u.deleteBicycleUC, u.listBicyclesUC, u.updateBicyclePhotoUC, log,
		),
		geoHandler: handlers.NewGeoHandler(u.searchAddressUC, u.reverseGeocodeUC, u.listDepartmentsUC, log),
		billingHandler: handlers.NewBillingHandler(
			u.getEntitlementUC, u.startCheckoutUC, u.confirmPurchaseUC,
			u.cancelSubscriptionUC, u.resumeSubscriptionUC, u.listSubsUC, log,
		),
	}
}
