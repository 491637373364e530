package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/infrastructure/persistence/mappers"
	"github.com/ridecrew/ridecrew/internal/infrastructure/persistence/models"
	"github.com/ridecrew/ridecrew/internal/shared/biztime"
	"github.com/ridecrew/ridecrew/internal/shared/db"
	apperrors "github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

// UserRepository implements user.Repository on gorm
type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

// NewUserRepository creates a new user repository
func NewUserRepository(database *gorm.DB, log logger.Interface) *UserRepository {
	return &UserRepository{
		db:     database,
		mapper: mappers.NewUserMapper(),
		logger: log,
	}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, entity *user.User) error {
	model := r.mapper.ToModel(entity)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return user.ErrEmailTaken
		}
		r.logger.Errorw("failed to create user in database", "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set user ID: %w", err)
	}

	r.logger.Infow("user created", "id", model.ID)
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		r.logger.Errorw("failed to get user by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetByIDs retrieves multiple users keyed by ID
func (r *UserRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*user.User, error) {
	result := make(map[uint]*user.User, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var userModels []*models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("id IN ?", ids).Find(&userModels).Error; err != nil {
		r.logger.Errorw("failed to get users by IDs", "ids", ids, "error", err)
		return nil, fmt.Errorf("failed to get users by IDs: %w", err)
	}

	for _, model := range userModels {
		entity, err := r.mapper.ToEntity(model)
		if err != nil {
			r.logger.Warnw("failed to map user model to entity, skipping", "id", model.ID, "error", err)
			continue
		}
		result[entity.ID()] = entity
	}
	return result, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// ExistsByEmail checks if a user with the given email exists
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.UserModel{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return count > 0, nil
}

// Update persists every mutable column of the user
func (r *UserRepository) Update(ctx context.Context, entity *user.User) error {
	model := r.mapper.ToModel(entity)

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"first_name":          model.FirstName,
			"last_name":           model.LastName,
			"password_hash":       model.PasswordHash,
			"role":                model.Role,
			"avatar_path":         model.AvatarPath,
			"bio":                 model.Bio,
			"city":                model.City,
			"department":          model.Department,
			"club_id":             model.ClubID,
			"is_club_admin":       model.IsClubAdmin,
			"billing_customer_id": model.BillingCustomerID,
			"updated_at":          biztime.NowUTC(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update user", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// Delete soft deletes a user
func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.UserModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete user", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// List returns a page of users matching the filter
func (r *UserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{})

	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(email) LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", like, like, like)
	}
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	var userModels []*models.UserModel
	if err := query.Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Order("id ASC").
		Find(&userModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	entities, err := r.mapper.ToEntities(userModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

// ListByClub returns the members of a club, admins first
func (r *UserRepository) ListByClub(ctx context.Context, clubID uint, page, pageSize int) ([]*user.User, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{}).Where("club_id = ?", clubID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count club members: %w", err)
	}

	var userModels []*models.UserModel
	if err := query.Scopes(db.Paginate(page, pageSize)).
		Order("is_club_admin DESC").
		Order("last_name ASC").
		Order("id ASC").
		Find(&userModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list club members: %w", err)
	}

	entities, err := r.mapper.ToEntities(userModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

// ListClubAdmins returns the admin-flagged members of a club
func (r *UserRepository) ListClubAdmins(ctx context.Context, clubID uint) ([]*user.User, error) {
	var userModels []*models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("club_id = ? AND is_club_admin = ?", clubID, true).
		Order("id ASC").
		Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list club admins: %w", err)
	}
	return r.mapper.ToEntities(userModels)
}

// CountByClub returns the number of members of a club
func (r *UserRepository) CountByClub(ctx context.Context, clubID uint) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.UserModel{}).Where("club_id = ?", clubID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count club members: %w", err)
	}
	return count, nil
}

// AttachToClubIfUnaffiliated sets club_id with a conditional update so that two
// concurrent accepts for the same user cannot both succeed.
func (r *UserRepository) AttachToClubIfUnaffiliated(ctx context.Context, userID, clubID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.UserModel{}).
		Where("id = ? AND club_id IS NULL", userID).
		Updates(map[string]interface{}{
			"club_id":       clubID,
			"is_club_admin": false,
			"updated_at":    biztime.NowUTC(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to attach user to club", "user_id", userID, "club_id", clubID, "error", result.Error)
		return false, fmt.Errorf("failed to attach user to club: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

// DetachFromClub clears the membership columns when the user belongs to clubID
func (r *UserRepository) DetachFromClub(ctx context.Context, userID, clubID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.UserModel{}).
		Where("id = ? AND club_id = ?", userID, clubID).
		Updates(map[string]interface{}{
			"club_id":       nil,
			"is_club_admin": false,
			"updated_at":    biztime.NowUTC(),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to detach user from club: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

// DetachAllFromClub clears the membership columns of every member
func (r *UserRepository) DetachAllFromClub(ctx context.Context, clubID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.UserModel{}).
		Where("club_id = ?", clubID).
		Updates(map[string]interface{}{
			"club_id":       nil,
			"is_club_admin": false,
			"updated_at":    biztime.NowUTC(),
		}).Error; err != nil {
		return fmt.Errorf("failed to detach club members: %w", err)
	}
	return nil
}

// SetClubAdmin updates the admin flag of a member of clubID
func (r *UserRepository) SetClubAdmin(ctx context.Context, userID, clubID uint, admin bool) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.UserModel{}).
		Where("id = ? AND club_id = ?", userID, clubID).
		Updates(map[string]interface{}{
			"is_club_admin": admin,
			"updated_at":    biztime.NowUTC(),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to set club admin flag: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

// ListWithBillingCustomer returns users that went through checkout at least once
func (r *UserRepository) ListWithBillingCustomer(ctx context.Context) ([]*user.User, error) {
	var userModels []*models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("billing_customer_id <> ? AND billing_customer_id <> ''", user.NoBillingCustomer).
		Order("id ASC").
		Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list billing customers: %w", err)
	}
	return r.mapper.ToEntities(userModels)
}

// UserFollowRepository implements user.FollowRepository
type UserFollowRepository struct {
	db *gorm.DB
}

func NewUserFollowRepository(database *gorm.DB) *UserFollowRepository {
	return &UserFollowRepository{db: database}
}

func (r *UserFollowRepository) Exists(ctx context.Context, followerID, followedID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.UserFollowModel{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}
	return count > 0, nil
}

func (r *UserFollowRepository) Create(ctx context.Context, followerID, followedID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	model := &models.UserFollowModel{FollowerID: followerID, FollowedID: followedID, CreatedAt: biztime.NowUTC()}
	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil
		}
		return fmt.Errorf("failed to create follow: %w", err)
	}
	return nil
}

func (r *UserFollowRepository) Delete(ctx context.Context, followerID, followedID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Where("follower_id = ? AND followed_id = ?", followerID, followedID).Delete(&models.UserFollowModel{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete follow: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *UserFollowRepository) ListFollowerIDs(ctx context.Context, userID uint, page, pageSize int) ([]uint, int64, error) {
	return r.listIDs(ctx, "follower_id", "followed_id = ?", userID, page, pageSize)
}

func (r *UserFollowRepository) ListFollowingIDs(ctx context.Context, userID uint, page, pageSize int) ([]uint, int64, error) {
	return r.listIDs(ctx, "followed_id", "follower_id = ?", userID, page, pageSize)
}

func (r *UserFollowRepository) listIDs(ctx context.Context, column, where string, userID uint, page, pageSize int) ([]uint, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.UserFollowModel{}).Where(where, userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count follows: %w", err)
	}

	var ids []uint
	q := query.Order("id DESC")
	if pageSize > 0 {
		q = q.Scopes(db.Paginate(page, pageSize))
	}
	if err := q.Pluck(column, &ids).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list follows: %w", err)
	}
	return ids, total, nil
}

func (r *UserFollowRepository) DeleteAllForUser(ctx context.Context, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("follower_id = ? OR followed_id = ?", userID, userID).Delete(&models.UserFollowModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete user follows: %w", err)
	}
	return nil
}
