package model

import "gorm.io/gorm"

// Models lists every table owned by the application, in migration order.
func Models() []interface{} {
	return []interface{}{
		&Note{},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
