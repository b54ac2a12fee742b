package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Timestamps are written by the service, so GORM's auto-tracking is off.
type Note struct {
	Id        uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Title     string                      `gorm:"type:text;not null"`
	Content   string                      `gorm:"type:text;not null"`
	Tags      datatypes.JSONSlice[string] `gorm:"not null"`
	CreatedAt time.Time                   `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt time.Time                   `gorm:"not null;autoUpdateTime:false"`
}

func (Note) TableName() string {
	return "notes"
}
