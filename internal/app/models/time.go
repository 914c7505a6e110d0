package models

import "time"

// TimeModel carries the audit timestamps embedded in every stored document.
// DeletedAt doubles as the soft-delete tombstone for menu items.
type TimeModel struct {
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt" bson:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
}

func NewTimeModel(now time.Time) TimeModel {
	return TimeModel{CreatedAt: now, UpdatedAt: now}
}
