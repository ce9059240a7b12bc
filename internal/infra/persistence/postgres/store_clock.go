package postgres

import (
	"opencircle/internal/clock"
	"opencircle/internal/errors"

	"gorm.io/gorm"
)

const (
	stampCreateCallback = "opencircle:stamp_create"
	stampUpdateCallback = "opencircle:stamp_update"

	lastModifiedColumn = "last_modified_date"
)

// Columns owned by the store on insert. Caller-supplied values are overwritten.
var insertStampColumns = []string{"created_date", "created_at", lastModifiedColumn, "last_activity"}

// RegisterStoreClock makes c the only source of row timestamps: it becomes
// GORM's NowFunc (feeding autoUpdateTime) and two callbacks overwrite the
// timestamp columns on every insert and map-based update.
func RegisterStoreClock(db *gorm.DB, c clock.Clock) error {
	db.Config.NowFunc = c.Now

	if err := db.Callback().Create().Before("gorm:create").Register(stampCreateCallback, stampCreate); err != nil {
		return errors.Wrap(err, "register create timestamp callback")
	}

	if err := db.Callback().Update().Before("gorm:update").Register(stampUpdateCallback, stampUpdate); err != nil {
		return errors.Wrap(err, "register update timestamp callback")
	}

	return nil
}

func stampCreate(db *gorm.DB) {
	stmt := db.Statement
	if db.Error != nil || stmt.Schema == nil {
		return
	}

	now := db.NowFunc()
	for _, column := range insertStampColumns {
		if field := stmt.Schema.LookUpField(column); field != nil {
			stmt.SetColumn(field.DBName, now, true)
		}
	}
}

// stampUpdate covers Updates(map) calls. Struct updates already get
// autoUpdateTime from NowFunc, and created columns are create-only.
func stampUpdate(db *gorm.DB) {
	stmt := db.Statement
	if db.Error != nil || stmt.Schema == nil {
		return
	}

	field := stmt.Schema.LookUpField(lastModifiedColumn)
	if field == nil {
		return
	}

	if values, ok := stmt.Dest.(map[string]any); ok {
		delete(values, field.Name)
		values[field.DBName] = db.NowFunc()
	}
}
