package entities

// Customer is a directory record persisted in the `customers` table.
//
// Domain notes:
//   - Customers are created by the directory and mutated in place; they are
//     never deleted, so service orders can always resolve their owner.
//   - RegisteredAt is stamped once at creation and never rewritten.
type Customer struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"type:text;not null"`
	Address      string `json:"address" gorm:"type:text;default:''"`
	Phone        string `json:"phone" gorm:"type:text;default:''"`
	Document     string `json:"document" gorm:"type:text;default:''"`
	RegisteredAt string `json:"registered_at" gorm:"type:text"`
}

func (Customer) TableName() string {
	return "customers"
}
