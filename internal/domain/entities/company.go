package entities

// CompanyInfo is the shop identification block printed on receipts. It is
// loaded once from configuration at startup and passed by value to whoever
// renders a receipt; there is no shared mutable copy.
type CompanyInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	TaxID   string `json:"tax_id"`
}

// Receipt is the fully resolved, read-only view handed to the receipt
// printer: the order joined with its customer and line items plus the shop
// identification. The printer gets no write access to anything here.
type Receipt struct {
	Company CompanyInfo  `json:"company"`
	Order   ServiceOrder `json:"order"`
}

// PaymentMethods lists the labels offered by the intake form. The column is
// free text; these are suggestions, not an enum enforced by the store.
var PaymentMethods = []string{
	"PIX",
	"Dinheiro",
	"Cartao Credito",
	"Cartao Debito",
	"Transferencia",
	"Boleto",
	"Cheque",
}

// SuggestedDiscountPct maps payment methods to the discount percentage the
// shop usually offers for them.
var SuggestedDiscountPct = map[string]float64{
	"PIX":           5.0,
	"Dinheiro":      3.0,
	"Transferencia": 3.0,
}
