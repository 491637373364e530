package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ridecrew/ridecrew/internal/domain/subscription"
	"github.com/ridecrew/ridecrew/internal/infrastructure/persistence/mappers"
	"github.com/ridecrew/ridecrew/internal/infrastructure/persistence/models"
	"github.com/ridecrew/ridecrew/internal/shared/db"
	apperrors "github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

// SubsRepository implements subscription.SubsRepository on gorm
type SubsRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSubsRepository(database *gorm.DB, log logger.Interface) *SubsRepository {
	return &SubsRepository{db: database, logger: log}
}

func (r *SubsRepository) Create(ctx context.Context, s *subscription.Subs) error {
	model, err := mappers.SubsToModel(s)
	if err != nil {
		return err
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("subscription already recorded", s.ExternalSubscriptionID())
		}
		r.logger.Errorw("failed to create subs", "external_id", s.ExternalSubscriptionID(), "error", err)
		return fmt.Errorf("failed to create subs: %w", err)
	}
	s.SetID(model.ID)
	return nil
}

func (r *SubsRepository) Update(ctx context.Context, s *subscription.Subs) error {
	model, err := mappers.SubsToModel(s)
	if err != nil {
		return err
	}
	result := db.GetTxFromContext(ctx, r.db).Model(&models.SubsModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"plan_type":            model.PlanType,
			"customer_id":          model.CustomerID,
			"start_at":             model.StartAt,
			"end_at":               model.EndAt,
			"cancel_at_period_end": model.CancelAtPeriodEnd,
			"status":               model.Status,
			"latest_invoice_id":    model.LatestInvoiceID,
			"snapshot":             model.Snapshot,
			"updated_at":           model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update subs: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return subscription.ErrSubsNotFound
	}
	return nil
}

func (r *SubsRepository) GetByExternalID(ctx context.Context, externalSubscriptionID string) (*subscription.Subs, error) {
	var model models.SubsModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("external_subscription_id = ?", externalSubscriptionID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, subscription.ErrSubsNotFound
		}
		return nil, fmt.Errorf("failed to get subs: %w", err)
	}
	return mappers.SubsToEntity(&model)
}

func (r *SubsRepository) ListByUser(ctx context.Context, userID uint) ([]*subscription.Subs, error) {
	return r.find(db.GetTxFromContext(ctx, r.db).Where("user_id = ?", userID))
}

func (r *SubsRepository) ListActive(ctx context.Context) ([]*subscription.Subs, error) {
	return r.find(db.GetTxFromContext(ctx, r.db).Where("status = ?", subscription.StatusActive))
}

func (r *SubsRepository) find(query *gorm.DB) ([]*subscription.Subs, error) {
	var rows []*models.SubsModel
	if err := query.Order("created_at DESC").Order("id DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list subs: %w", err)
	}
	result := make([]*subscription.Subs, 0, len(rows))
	for _, row := range rows {
		s, err := mappers.SubsToEntity(row)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}
