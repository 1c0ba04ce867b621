package entities

import (
	"strings"
	"time"
)

// OrderStatus represents the lifecycle of a service order.
//
// Domain notes:
//   - Any status may follow any other; there is no transition table. The shop
//     routinely reopens delivered orders when a repair bounces back.
//   - Entregue is the only status that stamps ExitDate; entering any other
//     status blanks it.
//   - The canonical spelling of the waiting-for-part status is the accented
//     "Aguardando Peça". Legacy exports carry the unaccented variant, which
//     NormalizeStatus folds into the canonical value.
type OrderStatus string

const (
	OrderStatusAberto         OrderStatus = "Aberto"
	OrderStatusAguardandoPeca OrderStatus = "Aguardando Peça"
	OrderStatusPronto         OrderStatus = "Pronto"
	OrderStatusEntregue       OrderStatus = "Entregue"
)

// DateLayout is the storage layout for every date column. Dates are kept as
// ISO text so the financial rollups can group by the YYYY-MM prefix.
const DateLayout = "2006-01-02"

// MonthPrefixLen is the length of the YYYY-MM grouping key.
const MonthPrefixLen = 7

var statusAccentFolder = strings.NewReplacer("ç", "c", "é", "e", "ê", "e")

// NormalizeStatus folds case, surrounding/duplicate whitespace and accenting
// into the canonical status value. The second return is false when the input
// names no known status.
func NormalizeStatus(raw string) (OrderStatus, bool) {
	key := strings.ToLower(strings.Join(strings.Fields(raw), " "))
	key = statusAccentFolder.Replace(key)
	switch key {
	case "aberto":
		return OrderStatusAberto, true
	case "aguardando peca":
		return OrderStatusAguardandoPeca, true
	case "pronto":
		return OrderStatusPronto, true
	case "entregue":
		return OrderStatusEntregue, true
	}
	return "", false
}

// ComputeFinalAmount derives the billable total from the item subtotal and
// the manual discount. The result never goes negative: a discount larger than
// the subtotal floors the final amount at zero.
func ComputeFinalAmount(subtotal, discount float64) float64 {
	final := subtotal - discount
	if final < 0 {
		return 0
	}
	return final
}

// ServiceOrder is a repair job (OS) persisted in the `service_orders` table.
//
// Storage model (SQLite):
//   - PK: code, the human-facing RA in the form <year><zero-padded sequence>,
//     e.g. "2026001". Sequences above 999 simply grow extra digits.
//   - FK: customer_id -> customers.id, enforced by the store.
//   - status is plain TEXT with no CHECK constraint so new statuses can be
//     introduced without a schema migration.
//
// Monetary representation:
//   - Subtotal is the sum of the order's line items.
//   - FinalAmount is always derived as max(Subtotal-Discount, 0); Discount is
//     the only independently editable money input.
type ServiceOrder struct {
	Code          string      `json:"code" gorm:"primaryKey;type:text"`
	CustomerID    uint        `json:"customer_id" gorm:"not null;index"`
	Device        string      `json:"device" gorm:"type:text;default:''"`
	Brand         string      `json:"brand" gorm:"type:text;default:''"`
	Model         string      `json:"model" gorm:"type:text;default:''"`
	SerialNumber  string      `json:"serial_number" gorm:"type:text;default:''"`
	ReportedFault string      `json:"reported_fault" gorm:"type:text;default:''"`
	WorkPerformed string      `json:"work_performed" gorm:"type:text;default:''"`
	Notes         string      `json:"notes" gorm:"type:text;default:''"`
	Status        OrderStatus `json:"status" gorm:"type:text;not null;default:'Aberto'"`
	Subtotal      float64     `json:"subtotal" gorm:"default:0"`
	Discount      float64     `json:"discount" gorm:"default:0"`
	FinalAmount   float64     `json:"final_amount" gorm:"default:0"`
	PaymentMethod string      `json:"payment_method" gorm:"type:text;default:''"`
	EntryDate     string      `json:"entry_date" gorm:"type:text;index"`
	ExitDate      string      `json:"exit_date" gorm:"type:text;default:''"`

	Customer *Customer  `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Items    []LineItem `json:"items,omitempty" gorm:"foreignKey:OrderCode;references:Code"`
}

func (ServiceOrder) TableName() string {
	return "service_orders"
}

// EntryMonth returns the YYYY-MM grouping key of the order, or "" when the
// entry date is not a valid ISO date.
func (o ServiceOrder) EntryMonth() string {
	if _, err := time.Parse(DateLayout, o.EntryDate); err != nil {
		return ""
	}
	return o.EntryDate[:MonthPrefixLen]
}
