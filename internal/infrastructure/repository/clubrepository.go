package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ridecrew/ridecrew/internal/domain/club"
	"github.com/ridecrew/ridecrew/internal/infrastructure/persistence/mappers"
	"github.com/ridecrew/ridecrew/internal/infrastructure/persistence/models"
	"github.com/ridecrew/ridecrew/internal/shared/biztime"
	"github.com/ridecrew/ridecrew/internal/shared/db"
	apperrors "github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
	"github.com/ridecrew/ridecrew/internal/shared/textnorm"
)

// ClubRepository implements club.Repository on gorm
type ClubRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewClubRepository(database *gorm.DB, log logger.Interface) *ClubRepository {
	return &ClubRepository{db: database, logger: log}
}

func (r *ClubRepository) Create(ctx context.Context, c *club.Club) error {
	model := mappers.ClubToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create club", "name", c.Name(), "error", err)
		return fmt.Errorf("failed to create club: %w", err)
	}
	return c.SetID(model.ID)
}

func (r *ClubRepository) GetByID(ctx context.Context, id uint) (*club.Club, error) {
	var model models.ClubModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, club.ErrClubNotFound
		}
		return nil, fmt.Errorf("failed to get club: %w", err)
	}
	return mappers.ClubToEntity(&model)
}

func (r *ClubRepository) Update(ctx context.Context, c *club.Club) error {
	model := mappers.ClubToModel(c)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.ClubModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":              model.Name,
			"organization_type": model.OrganizationType,
			"description":       model.Description,
			"street":            model.Street,
			"postal_code":       model.PostalCode,
			"city":              model.City,
			"department":        model.Department,
			"avatar_path":       model.AvatarPath,
			"search_key":        model.SearchKey,
			"updated_at":        biztime.NowUTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update club: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return club.ErrClubNotFound
	}
	return nil
}

func (r *ClubRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.ClubModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete club: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return club.ErrClubNotFound
	}
	return nil
}

func (r *ClubRepository) List(ctx context.Context, filter club.ListFilter) ([]*club.Club, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.ClubModel{})
	if key := textnorm.SearchKey(filter.Search); key != "" {
		query = query.Where("search_key LIKE ?", "%"+key+"%")
	}
	if filter.Department != "" {
		query = query.Where("department = ?", filter.Department)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count clubs: %w", err)
	}

	var clubModels []*models.ClubModel
	if err := query.Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Order("name ASC").Order("id ASC").
		Find(&clubModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list clubs: %w", err)
	}

	clubs := make([]*club.Club, 0, len(clubModels))
	for _, m := range clubModels {
		c, err := mappers.ClubToEntity(m)
		if err != nil {
			return nil, 0, err
		}
		clubs = append(clubs, c)
	}
	return clubs, total, nil
}

// JoinRequestRepository implements club.JoinRequestRepository
type JoinRequestRepository struct {
	db *gorm.DB
}

func NewJoinRequestRepository(database *gorm.DB) *JoinRequestRepository {
	return &JoinRequestRepository{db: database}
}

func (r *JoinRequestRepository) Exists(ctx context.Context, userID, clubID uint) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.ClubJoinRequestModel{}).
		Where("user_id = ? AND club_id = ?", userID, clubID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check join request: %w", err)
	}
	return count > 0, nil
}

func (r *JoinRequestRepository) Create(ctx context.Context, req *club.JoinRequest) error {
	model := &models.ClubJoinRequestModel{UserID: req.UserID, ClubID: req.ClubID, CreatedAt: req.CreatedAt}
	if model.CreatedAt.IsZero() {
		model.CreatedAt = biztime.NowUTC()
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return club.ErrDuplicateJoinRequest
		}
		return fmt.Errorf("failed to create join request: %w", err)
	}
	req.CreatedAt = model.CreatedAt
	return nil
}

func (r *JoinRequestRepository) Delete(ctx context.Context, userID, clubID uint) (bool, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ? AND club_id = ?", userID, clubID).
		Delete(&models.ClubJoinRequestModel{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete join request: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *JoinRequestRepository) DeleteAllForUser(ctx context.Context, userID uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Where("user_id = ?", userID).
		Delete(&models.ClubJoinRequestModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete join requests of user: %w", err)
	}
	return nil
}

func (r *JoinRequestRepository) DeleteAllForClub(ctx context.Context, clubID uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Where("club_id = ?", clubID).
		Delete(&models.ClubJoinRequestModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete join requests of club: %w", err)
	}
	return nil
}

func (r *JoinRequestRepository) ListByClub(ctx context.Context, clubID uint) ([]*club.JoinRequest, error) {
	var rows []models.ClubJoinRequestModel
	if err := db.GetTxFromContext(ctx, r.db).Where("club_id = ?", clubID).
		Order("created_at ASC").Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list join requests: %w", err)
	}
	reqs := make([]*club.JoinRequest, len(rows))
	for i, row := range rows {
		reqs[i] = &club.JoinRequest{UserID: row.UserID, ClubID: row.ClubID, CreatedAt: row.CreatedAt}
	}
	return reqs, nil
}

// ClubFollowRepository implements club.FollowRepository
type ClubFollowRepository struct {
	db *gorm.DB
}

func NewClubFollowRepository(database *gorm.DB) *ClubFollowRepository {
	return &ClubFollowRepository{db: database}
}

func (r *ClubFollowRepository) Exists(ctx context.Context, userID, clubID uint) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.ClubFollowModel{}).
		Where("user_id = ? AND club_id = ?", userID, clubID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check club follow: %w", err)
	}
	return count > 0, nil
}

func (r *ClubFollowRepository) Create(ctx context.Context, userID, clubID uint) error {
	model := &models.ClubFollowModel{UserID: userID, ClubID: clubID, CreatedAt: biztime.NowUTC()}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil
		}
		return fmt.Errorf("failed to create club follow: %w", err)
	}
	return nil
}

func (r *ClubFollowRepository) Delete(ctx context.Context, userID, clubID uint) (bool, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ? AND club_id = ?", userID, clubID).
		Delete(&models.ClubFollowModel{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete club follow: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *ClubFollowRepository) DeleteAllForClub(ctx context.Context, clubID uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Where("club_id = ?", clubID).
		Delete(&models.ClubFollowModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete club follows: %w", err)
	}
	return nil
}

func (r *ClubFollowRepository) DeleteAllForUser(ctx context.Context, userID uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Where("user_id = ?", userID).
		Delete(&models.ClubFollowModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete club follows of user: %w", err)
	}
	return nil
}

func (r *ClubFollowRepository) CountByClub(ctx context.Context, clubID uint) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.ClubFollowModel{}).
		Where("club_id = ?", clubID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count club followers: %w", err)
	}
	return count, nil
}

func (r *ClubFollowRepository) ListClubIDsByUser(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.ClubFollowModel{}).
		Where("user_id = ?", userID).Order("id ASC").
		Pluck("club_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list followed clubs: %w", err)
	}
	return ids, nil
}
