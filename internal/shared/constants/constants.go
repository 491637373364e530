package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeySessionID = "session_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Cookie carrying the access token for browser clients
	AccessTokenCookie = "access_token"

	// Upload limits
	MaxPostImages = 4

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
)

// Table names
const (
	TableUsers            = "users"
	TableSessions         = "sessions"
	TableUserFollows      = "user_follows"
	TableClubs            = "clubs"
	TableClubFollows      = "club_follows"
	TableClubJoinRequests = "club_join_requests"
	TablePosts            = "posts"
	TablePostImages       = "post_images"
	TablePostComments     = "post_comments"
	TablePostLikes        = "post_likes"
	TableHikes            = "hikes"
	TableTrips            = "trips"
	TableHikeHypes        = "hike_hypes"
	TableHikeImages       = "hike_images"
	TableBicycles         = "bicycles"
	TableSubs             = "subs"
)
