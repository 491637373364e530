package usecases

import (
	"context"
	"fmt"

	"github.com/ridecrew/ridecrew/internal/application/club/dto"
	commondto "github.com/ridecrew/ridecrew/internal/application/common/dto"
	"github.com/ridecrew/ridecrew/internal/domain/club"
	"github.com/ridecrew/ridecrew/internal/domain/shared/services"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type GetClubQuery struct {
	ClubID   uint
	ViewerID uint
}

type GetClubUseCase struct {
	clubRepo        club.Repository
	userRepo        user.Repository
	followRepo      club.FollowRepository
	joinRequestRepo club.JoinRequestRepository
	storage         services.ObjectStorage
	logger          logger.Interface
}

func NewGetClubUseCase(
	clubRepo club.Repository,
	userRepo user.Repository,
	followRepo club.FollowRepository,
	joinRequestRepo club.JoinRequestRepository,
	storage services.ObjectStorage,
	logger logger.Interface,
) *GetClubUseCase {
	return &GetClubUseCase{
		clubRepo:        clubRepo,
		userRepo:        userRepo,
		followRepo:      followRepo,
		joinRequestRepo: joinRequestRepo,
		storage:         storage,
		logger:          logger,
	}
}

func (uc *GetClubUseCase) Execute(ctx context.Context, query GetClubQuery) (*dto.ClubResponse, error) {
	c, err := loadClub(ctx, uc.clubRepo, query.ClubID)
	if err != nil {
		return nil, err
	}

	resp := dto.ToClubResponse(c, uc.storage.URL)
	if resp.MemberCount, err = uc.userRepo.CountByClub(ctx, c.ID()); err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}
	if resp.FollowerCount, err = uc.followRepo.CountByClub(ctx, c.ID()); err != nil {
		return nil, fmt.Errorf("failed to count followers: %w", err)
	}

	if query.ViewerID == 0 {
		return resp, nil
	}
	viewer, err := loadUser(ctx, uc.userRepo, query.ViewerID)
	if err != nil {
		return nil, err
	}
	resp.IsMember = viewer.IsMemberOf(c.ID())
	resp.IsAdmin = viewer.IsAdminOf(c.ID())
	if resp.FollowedByMe, err = uc.followRepo.Exists(ctx, viewer.ID(), c.ID()); err != nil {
		return nil, fmt.Errorf("failed to check club follow: %w", err)
	}
	if resp.RequestPending, err = uc.joinRequestRepo.Exists(ctx, viewer.ID(), c.ID()); err != nil {
		return nil, fmt.Errorf("failed to check join request: %w", err)
	}
	return resp, nil
}

type ListClubsQuery struct {
	Page       int
	PageSize   int
	Search     string
	Department string
}

type ListClubsResult struct {
	Clubs []commondto.ClubSummary
	Total int64
}

type ListClubsUseCase struct {
	clubRepo club.Repository
	storage  services.ObjectStorage
	logger   logger.Interface
}

func NewListClubsUseCase(clubRepo club.Repository, storage services.ObjectStorage, logger logger.Interface) *ListClubsUseCase {
	return &ListClubsUseCase{
		clubRepo: clubRepo,
		storage:  storage,
		logger:   logger,
	}
}

func (uc *ListClubsUseCase) Execute(ctx context.Context, query ListClubsQuery) (*ListClubsResult, error) {
	clubs, total, err := uc.clubRepo.List(ctx, club.ListFilter{
		Page:       query.Page,
		PageSize:   query.PageSize,
		Search:     query.Search,
		Department: query.Department,
	})
	if err != nil {
		uc.logger.Errorw("failed to list clubs", "error", err)
		return nil, fmt.Errorf("failed to list clubs: %w", err)
	}

	result := &ListClubsResult{Clubs: make([]commondto.ClubSummary, 0, len(clubs)), Total: total}
	for _, c := range clubs {
		result.Clubs = append(result.Clubs, dto.ToClubSummary(c, uc.storage.URL))
	}
	return result, nil
}

type ListMembersQuery struct {
	ClubID   uint
	Page     int
	PageSize int
}

type ListMembersResult struct {
	Members []*dto.MemberResponse
	Total   int64
}

type ListMembersUseCase struct {
	clubRepo club.Repository
	userRepo user.Repository
	storage  services.ObjectStorage
	logger   logger.Interface
}

func NewListMembersUseCase(
	clubRepo club.Repository,
	userRepo user.Repository,
	storage services.ObjectStorage,
	logger logger.Interface,
) *ListMembersUseCase {
	return &ListMembersUseCase{
		clubRepo: clubRepo,
		userRepo: userRepo,
		storage:  storage,
		logger:   logger,
	}
}

func (uc *ListMembersUseCase) Execute(ctx context.Context, query ListMembersQuery) (*ListMembersResult, error) {
	if _, err := loadClub(ctx, uc.clubRepo, query.ClubID); err != nil {
		return nil, err
	}

	members, total, err := uc.userRepo.ListByClub(ctx, query.ClubID, query.Page, query.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list members", "error", err, "club_id", query.ClubID)
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	result := &ListMembersResult{Members: make([]*dto.MemberResponse, 0, len(members)), Total: total}
	for _, m := range members {
		result.Members = append(result.Members, dto.ToMemberResponse(m, uc.storage.URL))
	}
	return result, nil
}
