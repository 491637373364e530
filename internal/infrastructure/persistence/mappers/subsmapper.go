package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/ridecrew/ridecrew/internal/domain/subscription"
	"github.com/ridecrew/ridecrew/internal/infrastructure/persistence/models"
)

func SubsToEntity(model *models.SubsModel) (*subscription.Subs, error) {
	var snapshot map[string]any
	if len(model.Snapshot) > 0 {
		if err := json.Unmarshal(model.Snapshot, &snapshot); err != nil {
			return nil, fmt.Errorf("failed to decode subs %d snapshot: %w", model.ID, err)
		}
	}
	return subscription.ReconstructSubs(
		model.ID,
		model.UserID,
		subscription.PlanName(model.PlanType),
		model.ExternalSubscriptionID,
		model.CustomerID,
		model.StartAt,
		model.EndAt,
		model.CancelAtPeriodEnd,
		model.Status,
		model.LatestInvoiceID,
		snapshot,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func SubsToModel(s *subscription.Subs) (*models.SubsModel, error) {
	raw, err := json.Marshal(s.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("failed to encode subs snapshot: %w", err)
	}
	return &models.SubsModel{
		ID:                     s.ID(),
		UserID:                 s.UserID(),
		PlanType:               string(s.PlanType()),
		ExternalSubscriptionID: s.ExternalSubscriptionID(),
		CustomerID:             s.CustomerID(),
		StartAt:                s.StartAt(),
		EndAt:                  s.EndAt(),
		CancelAtPeriodEnd:      s.CancelAtPeriodEnd(),
		Status:                 s.Status(),
		LatestInvoiceID:        s.LatestInvoiceID(),
		Snapshot:               datatypes.JSON(raw),
		CreatedAt:              s.CreatedAt(),
		UpdatedAt:              s.UpdatedAt(),
	}, nil
}
