package db

import (
	"gorm.io/gorm"
)

// NotDeleted filters out soft-deleted records for Table()/Model().Count() queries
// where gorm does not apply soft delete filtering on its own.
func NotDeleted() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("deleted_at IS NULL")
	}
}

// NotDeletedWithAlias filters out soft-deleted records of the aliased table in a join.
//
//	db.Table("users u").Scopes(db.NotDeletedWithAlias("u")).Find(&results)
func NotDeletedWithAlias(alias string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(alias + ".deleted_at IS NULL")
	}
}

// Paginate applies LIMIT/OFFSET for a 1-based page.
func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}
