package repository

import (
	"fmt"

	"gorm.io/gorm"
)

type groupCount struct {
	GroupKey   uint
	GroupCount int64
}

// countGrouped counts rows of model per value of column, restricted to keys.
// Keys without rows are absent from the result.
func countGrouped(tx *gorm.DB, model interface{}, column string, keys []uint) (map[uint]int64, error) {
	result := make(map[uint]int64, len(keys))
	if len(keys) == 0 {
		return result, nil
	}

	var rows []groupCount
	if err := tx.Model(model).
		Select(column + " AS group_key, COUNT(*) AS group_count").
		Where(column+" IN ?", keys).
		Group(column).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count by %s: %w", column, err)
	}
	for _, row := range rows {
		result[row.GroupKey] = row.GroupCount
	}
	return result, nil
}

// markedBy returns the subset of keys for which userID has a row in model.
func markedBy(tx *gorm.DB, model interface{}, column string, userID uint, keys []uint) (map[uint]bool, error) {
	result := make(map[uint]bool, len(keys))
	if len(keys) == 0 || userID == 0 {
		return result, nil
	}

	var hits []uint
	if err := tx.Model(model).
		Where("user_id = ? AND "+column+" IN ?", userID, keys).
		Pluck(column, &hits).Error; err != nil {
		return nil, fmt.Errorf("failed to load marks by %s: %w", column, err)
	}
	for _, id := range hits {
		result[id] = true
	}
	return result, nil
}
