package entities

// LineItem is a billable part or labor charge attached to a service order,
// persisted in the `line_items` table (FK: order_code -> service_orders.code).
//
// Items are appended during order creation or later edits and removed
// individually by id; removal is always explicit, never cascaded.
type LineItem struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	OrderCode   string  `json:"order_code" gorm:"not null;index"`
	Description string  `json:"description" gorm:"type:text;not null"`
	UnitValue   float64 `json:"unit_value" gorm:"default:0"`
}

func (LineItem) TableName() string {
	return "line_items"
}
