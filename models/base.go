package models

import (
	"context"
	"errors"

	"github.com/richardfsdias/trabalho-marmoraria-jacone/utils"
	"gorm.io/gorm"
)

// validateUnique checks that no other row of T carries the same value in the
// given column. excludeId > 0 skips the row being updated.
func validateUnique[T any](ctx context.Context, db *gorm.DB, column string, value interface{}, excludeId int, message string) error {
	var count int64
	query := db.WithContext(ctx).Model(new(T)).Where(column+" = ?", value)
	if excludeId > 0 {
		query = query.Where("id != ?", excludeId)
	}
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return utils.Conflict("%s", message)
	}
	return nil
}

func validateResourceId[T any](ctx context.Context, db *gorm.DB, id int, message string) error {
	var count int64
	if err := db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return utils.NotFound("%s", message)
	}
	return nil
}

func findById[T any](ctx context.Context, db *gorm.DB, id int, message string) (*T, error) {
	var record T
	err := db.WithContext(ctx).First(&record, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFound("%s", message)
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}
