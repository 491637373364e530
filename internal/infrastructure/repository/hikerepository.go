package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ridecrew/ridecrew/internal/domain/hike"
	"github.com/ridecrew/ridecrew/internal/infrastructure/persistence/mappers"
	"github.com/ridecrew/ridecrew/internal/infrastructure/persistence/models"
	"github.com/ridecrew/ridecrew/internal/shared/biztime"
	"github.com/ridecrew/ridecrew/internal/shared/db"
	apperrors "github.com/ridecrew/ridecrew/internal/shared/errors"
)

// HikeRepository implements hike.Repository on gorm
type HikeRepository struct {
	db *gorm.DB
}

func NewHikeRepository(database *gorm.DB) *HikeRepository {
	return &HikeRepository{db: database}
}

func (r *HikeRepository) Create(ctx context.Context, h *hike.Hike) error {
	model := mappers.HikeToModel(h)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create hike: %w", err)
	}
	h.SetID(model.ID)
	return nil
}

func (r *HikeRepository) GetByID(ctx context.Context, id uint) (*hike.Hike, error) {
	var model models.HikeModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, hike.ErrHikeNotFound
		}
		return nil, fmt.Errorf("failed to get hike: %w", err)
	}
	return mappers.HikeToEntity(&model), nil
}

func (r *HikeRepository) Update(ctx context.Context, h *hike.Hike) error {
	model := mappers.HikeToModel(h)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.HikeModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":         model.Title,
			"description":   model.Description,
			"starts_at":     model.StartsAt,
			"department":    model.Department,
			"city":          model.City,
			"meeting_point": model.MeetingPoint,
			"distance_km":   model.DistanceKm,
			"elevation_m":   model.ElevationM,
			"difficulty":    model.Difficulty,
			"status":        model.Status,
			"updated_at":    biztime.NowUTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update hike: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return hike.ErrHikeNotFound
	}
	return nil
}

func (r *HikeRepository) Search(ctx context.Context, filter hike.SearchFilter) ([]*hike.Hike, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.HikeModel{}).
		Where("status = ?", string(hike.StatusPlanned)).
		Where("starts_at >= ?", filter.From)
	if filter.To != nil {
		query = query.Where("starts_at <= ?", *filter.To)
	}
	if filter.Department != "" {
		query = query.Where("department = ?", filter.Department)
	}
	if filter.ClubID != nil {
		query = query.Where("club_id = ?", *filter.ClubID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count hikes: %w", err)
	}

	var hikeModels []*models.HikeModel
	if err := query.Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Order("starts_at ASC").Order("id ASC").
		Find(&hikeModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to search hikes: %w", err)
	}

	hikes := make([]*hike.Hike, len(hikeModels))
	for i, m := range hikeModels {
		hikes[i] = mappers.HikeToEntity(m)
	}
	return hikes, total, nil
}

func (r *HikeRepository) DeleteAllForClub(ctx context.Context, clubID uint) ([]string, error) {
	return r.deleteWhere(ctx, "club_id = ?", clubID)
}

func (r *HikeRepository) DeleteAllByCreator(ctx context.Context, userID uint) ([]string, error) {
	return r.deleteWhere(ctx, "creator_id = ?", userID)
}

func (r *HikeRepository) deleteWhere(ctx context.Context, where string, args ...interface{}) ([]string, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var ids []uint
	if err := tx.Model(&models.HikeModel{}).Where(where, args...).Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to select hikes: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	var paths []string
	if err := tx.Model(&models.HikeImageModel{}).Where("hike_id IN ?", ids).Pluck("path", &paths).Error; err != nil {
		return nil, fmt.Errorf("failed to select hike images: %w", err)
	}

	for _, m := range []interface{}{&models.HikeImageModel{}, &models.HikeHypeModel{}, &models.TripModel{}} {
		if err := tx.Where("hike_id IN ?", ids).Delete(m).Error; err != nil {
			return nil, fmt.Errorf("failed to delete hike relations: %w", err)
		}
	}
	if err := tx.Where("id IN ?", ids).Delete(&models.HikeModel{}).Error; err != nil {
		return nil, fmt.Errorf("failed to delete hikes: %w", err)
	}
	return paths, nil
}

// TripRepository implements hike.TripRepository
type TripRepository struct {
	db *gorm.DB
}

func NewTripRepository(database *gorm.DB) *TripRepository {
	return &TripRepository{db: database}
}

func (r *TripRepository) Create(ctx context.Context, t *hike.Trip) error {
	model, err := mappers.TripToModel(t)
	if err != nil {
		return err
	}
	model.CreatedAt = biztime.NowUTC()
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}
	t.ID = model.ID
	return nil
}

func (r *TripRepository) GetByID(ctx context.Context, id uint) (*hike.Trip, error) {
	var model models.TripModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, hike.ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return mappers.TripToEntity(&model)
}

func (r *TripRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.TripModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete trip: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return hike.ErrTripNotFound
	}
	return nil
}

func (r *TripRepository) ListByHike(ctx context.Context, hikeID uint) ([]*hike.Trip, error) {
	var rows []*models.TripModel
	if err := db.GetTxFromContext(ctx, r.db).Where("hike_id = ?", hikeID).
		Order("position ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	trips := make([]*hike.Trip, 0, len(rows))
	for _, row := range rows {
		t, err := mappers.TripToEntity(row)
		if err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	return trips, nil
}

func (r *TripRepository) NextPosition(ctx context.Context, hikeID uint) (int, error) {
	var last sql.NullInt64
	row := db.GetTxFromContext(ctx, r.db).Model(&models.TripModel{}).
		Where("hike_id = ?", hikeID).
		Select("MAX(position)").Row()
	if err := row.Scan(&last); err != nil {
		return 0, fmt.Errorf("failed to compute trip position: %w", err)
	}
	if !last.Valid {
		return 1, nil
	}
	return int(last.Int64) + 1, nil
}

// HypeRepository implements hike.HypeRepository
type HypeRepository struct {
	db *gorm.DB
}

func NewHypeRepository(database *gorm.DB) *HypeRepository {
	return &HypeRepository{db: database}
}

func (r *HypeRepository) Exists(ctx context.Context, hikeID, userID uint) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.HikeHypeModel{}).
		Where("hike_id = ? AND user_id = ?", hikeID, userID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check hype: %w", err)
	}
	return count > 0, nil
}

func (r *HypeRepository) Create(ctx context.Context, hikeID, userID uint) error {
	model := &models.HikeHypeModel{HikeID: hikeID, UserID: userID, CreatedAt: biztime.NowUTC()}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil
		}
		return fmt.Errorf("failed to create hype: %w", err)
	}
	return nil
}

func (r *HypeRepository) Delete(ctx context.Context, hikeID, userID uint) (bool, error) {
	result := db.GetTxFromContext(ctx, r.db).Where("hike_id = ? AND user_id = ?", hikeID, userID).
		Delete(&models.HikeHypeModel{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete hype: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *HypeRepository) CountByHikes(ctx context.Context, hikeIDs []uint) (map[uint]int64, error) {
	return countGrouped(db.GetTxFromContext(ctx, r.db), &models.HikeHypeModel{}, "hike_id", hikeIDs)
}

func (r *HypeRepository) HypedBy(ctx context.Context, userID uint, hikeIDs []uint) (map[uint]bool, error) {
	return markedBy(db.GetTxFromContext(ctx, r.db), &models.HikeHypeModel{}, "hike_id", userID, hikeIDs)
}

// HikeImageRepository implements hike.ImageRepository
type HikeImageRepository struct {
	db *gorm.DB
}

func NewHikeImageRepository(database *gorm.DB) *HikeImageRepository {
	return &HikeImageRepository{db: database}
}

func (r *HikeImageRepository) Create(ctx context.Context, hikeID uint, path string) error {
	model := &models.HikeImageModel{HikeID: hikeID, Path: path, CreatedAt: biztime.NowUTC()}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to add hike image: %w", err)
	}
	return nil
}

func (r *HikeImageRepository) ListByHike(ctx context.Context, hikeID uint) ([]string, error) {
	var paths []string
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.HikeImageModel{}).
		Where("hike_id = ?", hikeID).Order("id ASC").Pluck("path", &paths).Error; err != nil {
		return nil, fmt.Errorf("failed to list hike images: %w", err)
	}
	return paths, nil
}
