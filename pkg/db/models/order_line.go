package models

// OrderLine associates an order with an item and a quantity. Lines are
// immutable once committed; the composite key makes an item appear at most
// once per order.
type OrderLine struct {
	OrderID  int64 `gorm:"column:order_id;primaryKey;autoIncrement:false"`
	ItemID   int64 `gorm:"column:item_id;primaryKey;autoIncrement:false"`
	Quantity int   `gorm:"column:quantity;not null;default:1"`
}
