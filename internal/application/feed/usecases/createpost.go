package usecases

import (
	"context"
	"fmt"

	"github.com/ridecrew/ridecrew/internal/application/common"
	"github.com/ridecrew/ridecrew/internal/application/feed/dto"
	"github.com/ridecrew/ridecrew/internal/domain/club"
	"github.com/ridecrew/ridecrew/internal/domain/feed"
	"github.com/ridecrew/ridecrew/internal/domain/shared/services"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/constants"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
	"github.com/ridecrew/ridecrew/internal/shared/services/markdown"
)

type CreatePostCommand struct {
	AuthorID uint
	// ClubID publishes the post as that club; the author must administer it.
	ClubID  *uint
	Content string
	Images  []common.ImageUpload
}

type CreatePostUseCase struct {
	postRepo  feed.PostRepository
	userRepo  user.Repository
	renderer  markdown.Renderer
	storage   services.ObjectStorage
	assembler *postAssembler
	logger    logger.Interface
}

func NewCreatePostUseCase(
	postRepo feed.PostRepository,
	userRepo user.Repository,
	clubRepo club.Repository,
	commentRepo feed.CommentRepository,
	likeRepo feed.LikeRepository,
	renderer markdown.Renderer,
	storage services.ObjectStorage,
	logger logger.Interface,
) *CreatePostUseCase {
	return &CreatePostUseCase{
		postRepo:  postRepo,
		userRepo:  userRepo,
		renderer:  renderer,
		storage:   storage,
		assembler: newPostAssembler(userRepo, clubRepo, commentRepo, likeRepo, storage),
		logger:    logger,
	}
}

func (uc *CreatePostUseCase) Execute(ctx context.Context, cmd CreatePostCommand) (*dto.PostResponse, error) {
	if len(cmd.Images) > constants.MaxPostImages {
		return nil, errors.NewValidationError(fmt.Sprintf("a post can carry at most %d images", constants.MaxPostImages))
	}

	author, err := loadUser(ctx, uc.userRepo, cmd.AuthorID)
	if err != nil {
		return nil, err
	}
	if cmd.ClubID != nil && !author.IsAdminOf(*cmd.ClubID) {
		return nil, errors.NewForbiddenError("only the club admin can publish as the club")
	}

	html, err := uc.renderer.Render(cmd.Content)
	if err != nil {
		uc.logger.Errorw("failed to render post", "error", err, "author_id", cmd.AuthorID)
		return nil, fmt.Errorf("failed to render post: %w", err)
	}

	var post *feed.Post
	if cmd.ClubID != nil {
		post, err = feed.NewClubPost(author.ID(), *cmd.ClubID, cmd.Content, html)
	} else {
		post, err = feed.NewUserPost(author.ID(), cmd.Content, html)
	}
	if err != nil {
		return nil, mapContentError(err)
	}

	stored := make([]string, 0, len(cmd.Images))
	for _, img := range cmd.Images {
		key, err := common.StoreImage(ctx, uc.storage, common.KindPostImage, img)
		if err != nil {
			common.DeleteAssets(ctx, uc.storage, uc.logger, stored...)
			return nil, err
		}
		stored = append(stored, key)
		post.AttachImage(key)
	}

	if err := uc.postRepo.Create(ctx, post); err != nil {
		uc.logger.Errorw("failed to create post", "error", err, "author_id", cmd.AuthorID)
		common.DeleteAssets(ctx, uc.storage, uc.logger, stored...)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	uc.logger.Infow("post created", "post_id", post.ID(), "author_id", cmd.AuthorID, "club_post", post.IsClubPost(), "images", len(stored))

	return uc.assembler.assembleOne(ctx, post, cmd.AuthorID)
}
