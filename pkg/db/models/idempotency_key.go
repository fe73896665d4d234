package models

import "time"

// IdempotencyKey maps a client-supplied request key to the resource it
// created. The unique index on request_key is the mechanism that resolves
// concurrent duplicate creation: exactly one transaction may insert a given
// key. Records are never updated or deleted.
type IdempotencyKey struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	RequestKey   string    `gorm:"column:request_key;not null;uniqueIndex:idx_idempotency_keys_request_key"`
	ResourceType string    `gorm:"column:resource_type;not null"`
	ResourceID   int64     `gorm:"column:resource_id;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}
