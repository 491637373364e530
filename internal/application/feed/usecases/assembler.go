package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	commondto "github.com/ridecrew/ridecrew/internal/application/common/dto"
	"github.com/ridecrew/ridecrew/internal/application/feed/dto"
	"github.com/ridecrew/ridecrew/internal/domain/club"
	"github.com/ridecrew/ridecrew/internal/domain/feed"
	"github.com/ridecrew/ridecrew/internal/domain/shared/services"
	"github.com/ridecrew/ridecrew/internal/domain/user"
)

// postAssembler turns posts into responses carrying authors, clubs, counters
// and the viewer's like flag, with one batched query per concern.
type postAssembler struct {
	userRepo    user.Repository
	clubRepo    club.Repository
	commentRepo feed.CommentRepository
	likeRepo    feed.LikeRepository
	storage     services.ObjectStorage
}

func newPostAssembler(
	userRepo user.Repository,
	clubRepo club.Repository,
	commentRepo feed.CommentRepository,
	likeRepo feed.LikeRepository,
	storage services.ObjectStorage,
) *postAssembler {
	return &postAssembler{
		userRepo:    userRepo,
		clubRepo:    clubRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		storage:     storage,
	}
}

func (a *postAssembler) assemble(ctx context.Context, posts []*feed.Post, viewerID uint) ([]*dto.PostResponse, error) {
	if len(posts) == 0 {
		return []*dto.PostResponse{}, nil
	}

	postIDs := make([]uint, 0, len(posts))
	authorIDs := make([]uint, 0, len(posts))
	clubIDs := make(map[uint]struct{})
	for _, p := range posts {
		postIDs = append(postIDs, p.ID())
		authorIDs = append(authorIDs, p.AuthorUserID())
		if p.IsClubPost() {
			clubIDs[*p.ClubID()] = struct{}{}
		}
	}

	authors, err := a.userRepo.GetByIDs(ctx, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load authors: %w", err)
	}
	clubs := make(map[uint]*club.Club, len(clubIDs))
	for id := range clubIDs {
		c, err := a.clubRepo.GetByID(ctx, id)
		if err != nil {
			if stderrors.Is(err, club.ErrClubNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to load club: %w", err)
		}
		clubs[id] = c
	}
	likes, err := a.likeRepo.CountByPosts(ctx, postIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}
	comments, err := a.commentRepo.CountByPosts(ctx, postIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}
	liked := map[uint]bool{}
	if viewerID != 0 {
		if liked, err = a.likeRepo.LikedBy(ctx, viewerID, postIDs); err != nil {
			return nil, fmt.Errorf("failed to load likes: %w", err)
		}
	}

	result := make([]*dto.PostResponse, 0, len(posts))
	for _, p := range posts {
		resp := &dto.PostResponse{
			ID:           p.ID(),
			Author:       commondto.ToUserSummary(authors[p.AuthorUserID()], a.storage.URL),
			Content:      p.Content(),
			ContentHTML:  p.ContentHTML(),
			ImageURLs:    make([]string, 0, len(p.Images())),
			LikeCount:    likes[p.ID()],
			CommentCount: comments[p.ID()],
			LikedByMe:    liked[p.ID()],
			CreatedAt:    p.CreatedAt(),
		}
		for _, img := range p.Images() {
			resp.ImageURLs = append(resp.ImageURLs, a.storage.URL(img))
		}
		if p.IsClubPost() {
			if c, ok := clubs[*p.ClubID()]; ok {
				resp.Club = &commondto.ClubSummary{ID: c.ID(), Name: c.Name(), AvatarURL: a.storage.URL(c.AvatarPath())}
			}
		}
		result = append(result, resp)
	}
	return result, nil
}

func (a *postAssembler) assembleOne(ctx context.Context, p *feed.Post, viewerID uint) (*dto.PostResponse, error) {
	result, err := a.assemble(ctx, []*feed.Post{p}, viewerID)
	if err != nil {
		return nil, err
	}
	return result[0], nil
}
