package http

import (
	"gorm.io/gorm"

	"github.com/ridecrew/ridecrew/internal/domain/bicycle"
	"github.com/ridecrew/ridecrew/internal/domain/club"
	"github.com/ridecrew/ridecrew/internal/domain/feed"
	"github.com/ridecrew/ridecrew/internal/domain/hike"
	"github.com/ridecrew/ridecrew/internal/domain/subscription"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/infrastructure/repository"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo        user.Repository
	userFollowRepo  user.FollowRepository
	sessionRepo     user.SessionRepository
	clubRepo        club.Repository
	joinRequestRepo club.JoinRequestRepository
	clubFollowRepo  club.FollowRepository
	postRepo        feed.PostRepository
	commentRepo     feed.CommentRepository
	likeRepo        feed.LikeRepository
	hikeRepo        hike.Repository
	tripRepo        hike.TripRepository
	hypeRepo        hike.HypeRepository
	hikeImageRepo   hike.ImageRepository
	bicycleRepo     bicycle.Repository
	subsRepo        subscription.SubsRepository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		userRepo:        repository.NewUserRepository(db, log),
		userFollowRepo:  repository.NewUserFollowRepository(db),
		sessionRepo:     repository.NewSessionRepository(db),
		clubRepo:        repository.NewClubRepository(db, log),
		joinRequestRepo: repository.NewJoinRequestRepository(db),
		clubFollowRepo:  repository.NewClubFollowRepository(db),
		postRepo:        repository.NewPostRepository(db),
		commentRepo:     repository.NewCommentRepository(db),
		likeRepo:        repository.NewLikeRepository(db),
		hikeRepo:        repository.NewHikeRepository(db),
		tripRepo:        repository.NewTripRepository(db),
		hypeRepo:        repository.NewHypeRepository(db),
		hikeImageRepo:   repository.NewHikeImageRepository(db),
		bicycleRepo:     repository.NewBicycleRepository(db),
		subsRepo:        repository.NewSubsRepository(db, log),
	}
}
