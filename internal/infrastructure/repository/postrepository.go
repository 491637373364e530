package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ridecrew/ridecrew/internal/domain/feed"
	"github.com/ridecrew/ridecrew/internal/infrastructure/persistence/mappers"
	"github.com/ridecrew/ridecrew/internal/infrastructure/persistence/models"
	"github.com/ridecrew/ridecrew/internal/shared/biztime"
	"github.com/ridecrew/ridecrew/internal/shared/db"
	apperrors "github.com/ridecrew/ridecrew/internal/shared/errors"
)

// PostRepository implements feed.PostRepository on gorm
type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(database *gorm.DB) *PostRepository {
	return &PostRepository{db: database}
}

func (r *PostRepository) Create(ctx context.Context, p *feed.Post) error {
	model := mappers.PostToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	p.SetID(model.ID)

	for _, path := range p.Images() {
		if err := r.AddImage(ctx, model.ID, path); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostRepository) AddImage(ctx context.Context, postID uint, path string) error {
	model := &models.PostImageModel{PostID: postID, Path: path, CreatedAt: biztime.NowUTC()}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to add post image: %w", err)
	}
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id uint) (*feed.Post, error) {
	var model models.PostModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, feed.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	images, err := r.imagesByPost(ctx, []uint{id})
	if err != nil {
		return nil, err
	}
	return mappers.PostToEntity(&model, images[id]), nil
}

func (r *PostRepository) imagesByPost(ctx context.Context, postIDs []uint) (map[uint][]string, error) {
	result := make(map[uint][]string, len(postIDs))
	if len(postIDs) == 0 {
		return result, nil
	}
	var rows []models.PostImageModel
	if err := db.GetTxFromContext(ctx, r.db).Where("post_id IN ?", postIDs).
		Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load post images: %w", err)
	}
	for _, row := range rows {
		result[row.PostID] = append(result[row.PostID], row.Path)
	}
	return result, nil
}

func (r *PostRepository) Delete(ctx context.Context, id uint) ([]string, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.PostModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check post: %w", err)
	}
	if count == 0 {
		return nil, feed.ErrPostNotFound
	}
	return r.deleteWhere(ctx, "id = ?", id)
}

func (r *PostRepository) DeleteAllForClub(ctx context.Context, clubID uint) ([]string, error) {
	return r.deleteWhere(ctx, "club_id = ?", clubID)
}

func (r *PostRepository) DeleteAllByAuthor(ctx context.Context, userID uint) ([]string, error) {
	return r.deleteWhere(ctx, "author_user_id = ? AND club_id IS NULL", userID)
}

// deleteWhere removes the selected posts with their comments, likes and image
// rows and returns the image paths.
func (r *PostRepository) deleteWhere(ctx context.Context, where string, args ...interface{}) ([]string, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var ids []uint
	if err := tx.Model(&models.PostModel{}).Where(where, args...).Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to select posts: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	var paths []string
	if err := tx.Model(&models.PostImageModel{}).Where("post_id IN ?", ids).Pluck("path", &paths).Error; err != nil {
		return nil, fmt.Errorf("failed to select post images: %w", err)
	}

	for _, m := range []interface{}{&models.PostImageModel{}, &models.PostCommentModel{}, &models.PostLikeModel{}} {
		if err := tx.Where("post_id IN ?", ids).Delete(m).Error; err != nil {
			return nil, fmt.Errorf("failed to delete post relations: %w", err)
		}
	}
	if err := tx.Where("id IN ?", ids).Delete(&models.PostModel{}).Error; err != nil {
		return nil, fmt.Errorf("failed to delete posts: %w", err)
	}
	return paths, nil
}

func (r *PostRepository) ListByClub(ctx context.Context, clubID uint, page, pageSize int) ([]*feed.Post, int64, error) {
	return r.list(ctx, db.GetTxFromContext(ctx, r.db).Model(&models.PostModel{}).Where("club_id = ?", clubID), page, pageSize)
}

func (r *PostRepository) ListByUser(ctx context.Context, userID uint, page, pageSize int) ([]*feed.Post, int64, error) {
	return r.list(ctx, db.GetTxFromContext(ctx, r.db).Model(&models.PostModel{}).
		Where("author_user_id = ? AND club_id IS NULL", userID), page, pageSize)
}

func (r *PostRepository) Timeline(ctx context.Context, q feed.TimelineQuery) ([]*feed.Post, int64, error) {
	authors := append([]uint{q.UserID}, q.FollowedUserIDs...)
	query := db.GetTxFromContext(ctx, r.db).Model(&models.PostModel{})
	if len(q.ClubIDs) > 0 {
		query = query.Where("(author_user_id IN ? AND club_id IS NULL) OR club_id IN ?", authors, q.ClubIDs)
	} else {
		query = query.Where("author_user_id IN ? AND club_id IS NULL", authors)
	}
	return r.list(ctx, query, q.Page, q.PageSize)
}

func (r *PostRepository) list(ctx context.Context, query *gorm.DB, page, pageSize int) ([]*feed.Post, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	var postModels []*models.PostModel
	if err := query.Scopes(db.Paginate(page, pageSize)).
		Order("created_at DESC").Order("id DESC").
		Find(&postModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}

	ids := make([]uint, len(postModels))
	for i, m := range postModels {
		ids[i] = m.ID
	}
	images, err := r.imagesByPost(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	posts := make([]*feed.Post, len(postModels))
	for i, m := range postModels {
		posts[i] = mappers.PostToEntity(m, images[m.ID])
	}
	return posts, total, nil
}

// CommentRepository implements feed.CommentRepository
type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(database *gorm.DB) *CommentRepository {
	return &CommentRepository{db: database}
}

func (r *CommentRepository) Create(ctx context.Context, c *feed.Comment) error {
	model := mappers.CommentToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	c.ID = model.ID
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id uint) (*feed.Comment, error) {
	var model models.PostCommentModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, feed.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return mappers.CommentToEntity(&model), nil
}

func (r *CommentRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.PostCommentModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return feed.ErrCommentNotFound
	}
	return nil
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID uint) ([]*feed.Comment, error) {
	var rows []*models.PostCommentModel
	if err := db.GetTxFromContext(ctx, r.db).Where("post_id = ?", postID).
		Order("created_at ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	comments := make([]*feed.Comment, len(rows))
	for i, row := range rows {
		comments[i] = mappers.CommentToEntity(row)
	}
	return comments, nil
}

func (r *CommentRepository) CountByPosts(ctx context.Context, postIDs []uint) (map[uint]int64, error) {
	return countGrouped(db.GetTxFromContext(ctx, r.db), &models.PostCommentModel{}, "post_id", postIDs)
}

// LikeRepository implements feed.LikeRepository
type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(database *gorm.DB) *LikeRepository {
	return &LikeRepository{db: database}
}

func (r *LikeRepository) Exists(ctx context.Context, postID, userID uint) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.PostLikeModel{}).
		Where("post_id = ? AND user_id = ?", postID, userID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return count > 0, nil
}

func (r *LikeRepository) Create(ctx context.Context, postID, userID uint) error {
	model := &models.PostLikeModel{PostID: postID, UserID: userID, CreatedAt: biztime.NowUTC()}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil
		}
		return fmt.Errorf("failed to create like: %w", err)
	}
	return nil
}

func (r *LikeRepository) Delete(ctx context.Context, postID, userID uint) (bool, error) {
	result := db.GetTxFromContext(ctx, r.db).Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&models.PostLikeModel{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete like: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *LikeRepository) CountByPosts(ctx context.Context, postIDs []uint) (map[uint]int64, error) {
	return countGrouped(db.GetTxFromContext(ctx, r.db), &models.PostLikeModel{}, "post_id", postIDs)
}

func (r *LikeRepository) LikedBy(ctx context.Context, userID uint, postIDs []uint) (map[uint]bool, error) {
	return markedBy(db.GetTxFromContext(ctx, r.db), &models.PostLikeModel{}, "post_id", userID, postIDs)
}
