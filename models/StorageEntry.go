package models

import (
	"time"

	"gorm.io/datatypes"
)

// StorageEntry holds one serialized collection per key. Writes replace the
// whole value; there is no row-per-entity schema behind it.
type StorageEntry struct {
	Key       string         `json:"key" gorm:"primaryKey;size:64"`
	Value     datatypes.JSON `json:"value"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
