package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/ridecrew/ridecrew/internal/application/feed/dto"
	"github.com/ridecrew/ridecrew/internal/domain/club"
	"github.com/ridecrew/ridecrew/internal/domain/feed"
	"github.com/ridecrew/ridecrew/internal/domain/shared/services"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type ListPostsResult struct {
	Posts []*dto.PostResponse
	Total int64
}

type TimelineQuery struct {
	UserID   uint
	Page     int
	PageSize int
}

type GetTimelineUseCase struct {
	postRepo       feed.PostRepository
	userRepo       user.Repository
	userFollowRepo user.FollowRepository
	clubFollowRepo club.FollowRepository
	assembler      *postAssembler
	logger         logger.Interface
}

func NewGetTimelineUseCase(
	postRepo feed.PostRepository,
	userRepo user.Repository,
	userFollowRepo user.FollowRepository,
	clubRepo club.Repository,
	clubFollowRepo club.FollowRepository,
	commentRepo feed.CommentRepository,
	likeRepo feed.LikeRepository,
	storage services.ObjectStorage,
	logger logger.Interface,
) *GetTimelineUseCase {
	return &GetTimelineUseCase{
		postRepo:       postRepo,
		userRepo:       userRepo,
		userFollowRepo: userFollowRepo,
		clubFollowRepo: clubFollowRepo,
		assembler:      newPostAssembler(userRepo, clubRepo, commentRepo, likeRepo, storage),
		logger:         logger,
	}
}

// Execute merges the user's own posts with those of followed users, followed
// clubs and the user's club, newest first.
func (uc *GetTimelineUseCase) Execute(ctx context.Context, query TimelineQuery) (*ListPostsResult, error) {
	viewer, err := loadUser(ctx, uc.userRepo, query.UserID)
	if err != nil {
		return nil, err
	}

	followed, _, err := uc.userFollowRepo.ListFollowingIDs(ctx, viewer.ID(), 1, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list followed users: %w", err)
	}
	clubIDs, err := uc.clubFollowRepo.ListClubIDsByUser(ctx, viewer.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to list followed clubs: %w", err)
	}
	if own := viewer.ClubID(); own != nil {
		clubIDs = append(clubIDs, *own)
	}

	posts, total, err := uc.postRepo.Timeline(ctx, feed.TimelineQuery{
		UserID:          viewer.ID(),
		FollowedUserIDs: followed,
		ClubIDs:         clubIDs,
		Page:            query.Page,
		PageSize:        query.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to load timeline", "error", err, "user_id", query.UserID)
		return nil, fmt.Errorf("failed to load timeline: %w", err)
	}

	items, err := uc.assembler.assemble(ctx, posts, viewer.ID())
	if err != nil {
		return nil, err
	}
	return &ListPostsResult{Posts: items, Total: total}, nil
}

type ListClubPostsQuery struct {
	ClubID   uint
	ViewerID uint
	Page     int
	PageSize int
}

type ListClubPostsUseCase struct {
	postRepo  feed.PostRepository
	clubRepo  club.Repository
	assembler *postAssembler
	logger    logger.Interface
}

func NewListClubPostsUseCase(
	postRepo feed.PostRepository,
	userRepo user.Repository,
	clubRepo club.Repository,
	commentRepo feed.CommentRepository,
	likeRepo feed.LikeRepository,
	storage services.ObjectStorage,
	logger logger.Interface,
) *ListClubPostsUseCase {
	return &ListClubPostsUseCase{
		postRepo:  postRepo,
		clubRepo:  clubRepo,
		assembler: newPostAssembler(userRepo, clubRepo, commentRepo, likeRepo, storage),
		logger:    logger,
	}
}

func (uc *ListClubPostsUseCase) Execute(ctx context.Context, query ListClubPostsQuery) (*ListPostsResult, error) {
	if _, err := uc.clubRepo.GetByID(ctx, query.ClubID); err != nil {
		if stderrors.Is(err, club.ErrClubNotFound) {
			return nil, errors.NewNotFoundError("club not found")
		}
		return nil, fmt.Errorf("failed to get club: %w", err)
	}

	posts, total, err := uc.postRepo.ListByClub(ctx, query.ClubID, query.Page, query.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list club posts", "error", err, "club_id", query.ClubID)
		return nil, fmt.Errorf("failed to list club posts: %w", err)
	}
	items, err := uc.assembler.assemble(ctx, posts, query.ViewerID)
	if err != nil {
		return nil, err
	}
	return &ListPostsResult{Posts: items, Total: total}, nil
}

type ListUserPostsQuery struct {
	UserID   uint
	ViewerID uint
	Page     int
	PageSize int
}

type ListUserPostsUseCase struct {
	postRepo  feed.PostRepository
	userRepo  user.Repository
	assembler *postAssembler
	logger    logger.Interface
}

func NewListUserPostsUseCase(
	postRepo feed.PostRepository,
	userRepo user.Repository,
	clubRepo club.Repository,
	commentRepo feed.CommentRepository,
	likeRepo feed.LikeRepository,
	storage services.ObjectStorage,
	logger logger.Interface,
) *ListUserPostsUseCase {
	return &ListUserPostsUseCase{
		postRepo:  postRepo,
		userRepo:  userRepo,
		assembler: newPostAssembler(userRepo, clubRepo, commentRepo, likeRepo, storage),
		logger:    logger,
	}
}

func (uc *ListUserPostsUseCase) Execute(ctx context.Context, query ListUserPostsQuery) (*ListPostsResult, error) {
	if _, err := loadUser(ctx, uc.userRepo, query.UserID); err != nil {
		return nil, err
	}

	posts, total, err := uc.postRepo.ListByUser(ctx, query.UserID, query.Page, query.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list user posts", "error", err, "user_id", query.UserID)
		return nil, fmt.Errorf("failed to list user posts: %w", err)
	}
	items, err := uc.assembler.assemble(ctx, posts, query.ViewerID)
	if err != nil {
		return nil, err
	}
	return &ListPostsResult{Posts: items, Total: total}, nil
}

type GetPostQuery struct {
	PostID   uint
	ViewerID uint
}

type GetPostUseCase struct {
	postRepo    feed.PostRepository
	userRepo    user.Repository
	commentRepo feed.CommentRepository
	storage     services.ObjectStorage
	assembler   *postAssembler
	logger      logger.Interface
}

func NewGetPostUseCase(
	postRepo feed.PostRepository,
	userRepo user.Repository,
	clubRepo club.Repository,
	commentRepo feed.CommentRepository,
	likeRepo feed.LikeRepository,
	storage services.ObjectStorage,
	logger logger.Interface,
) *GetPostUseCase {
	return &GetPostUseCase{
		postRepo:    postRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
		storage:     storage,
		assembler:   newPostAssembler(userRepo, clubRepo, commentRepo, likeRepo, storage),
		logger:      logger,
	}
}

// Execute returns the post with its comments in chronological order.
func (uc *GetPostUseCase) Execute(ctx context.Context, query GetPostQuery) (*dto.PostResponse, error) {
	post, err := loadPost(ctx, uc.postRepo, query.PostID)
	if err != nil {
		return nil, err
	}
	resp, err := uc.assembler.assembleOne(ctx, post, query.ViewerID)
	if err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.ListByPost(ctx, post.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	authorIDs := make([]uint, 0, len(comments))
	for _, c := range comments {
		authorIDs = append(authorIDs, c.UserID)
	}
	authors, err := uc.userRepo.GetByIDs(ctx, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load comment authors: %w", err)
	}
	resp.Comments = make([]*dto.CommentResponse, 0, len(comments))
	for _, c := range comments {
		resp.Comments = append(resp.Comments, dto.ToCommentResponse(c, authors[c.UserID], uc.storage.URL))
	}
	return resp, nil
}
