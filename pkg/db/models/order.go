package models

import "time"

// Order is a maintenance service order. The id is assigned by the store on
// creation and created_at is set once, never updated.
type Order struct {
	ID        int64       `gorm:"column:id;primaryKey;autoIncrement"`
	Report    string      `gorm:"column:report;not null"`
	Lines     []OrderLine `gorm:"foreignKey:OrderID"`
	CreatedAt time.Time   `gorm:"column:created_at;autoCreateTime"`
}
