package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// updateRow writes every column of m except the primary key and the
// create-only timestamps. m must carry its primary key.
func updateRow(ctx context.Context, db *gorm.DB, m any) *gorm.DB {
	return db.WithContext(ctx).
		Model(m).
		Select("*").
		Omit("id", "created_date", "created_at", clause.Associations).
		Updates(m)
}

// deleteByID removes the row of the model's table with the given id.
func deleteByID(ctx context.Context, db *gorm.DB, m any, id int64) *gorm.DB {
	return db.WithContext(ctx).Where("id = ?", id).Delete(m)
}
