package models

import "time"

// Item is a stockable part referenced by maintenance order lines. The SKU is
// indexed but deliberately not unique.
type Item struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name       string    `gorm:"column:name;not null"`
	SKU        string    `gorm:"column:sku;not null;index:idx_items_sku"`
	Price      float64   `gorm:"column:price;not null;default:0"`
	Stock      int       `gorm:"column:stock;not null;default:0"`
	CategoryID *int64    `gorm:"column:category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
