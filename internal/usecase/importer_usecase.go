package usecase

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"oficina/internal/domain/entities"
	"oficina/internal/usecase/interfaces"
)

// ImportResult tallies one CSV run. Malformed rows land in Errors and never
// abort the import.
type ImportResult struct {
	Inserted   int `json:"inserted"`
	Duplicates int `json:"duplicates"`
	Errors     int `json:"errors"`
}

// IImportUseCase is the bulk-load contract used by the legacy-data migrator.
//
// Customer rows need at least a name column; the other columns are matched
// through the aliases recognized by the old exports (tel/fone, cpf/cnpj/doc,
// endereco/end and their English spellings). A row is a duplicate when an
// existing customer has the same phone (when the row carries one) or,
// failing that, the same name. Duplicates are skipped, never merged.
//
// Order rows are the legacy servicos export: the RA comes from the file, the
// customer is resolved by name and created on the fly when unknown, and an
// already-present RA counts as an errored row.
type IImportUseCase interface {
	ImportCustomers(ctx context.Context, r io.Reader) (ImportResult, error)
	ImportOrders(ctx context.Context, r io.Reader) (ImportResult, error)
}

type ImportUseCase struct {
	customers interfaces.ICustomerRepository
	orders    interfaces.IOrderRepository
}

var _ IImportUseCase = (*ImportUseCase)(nil)

func NewImportUseCase(customers interfaces.ICustomerRepository, orders interfaces.IOrderRepository) *ImportUseCase {
	return &ImportUseCase{customers: customers, orders: orders}
}

func (u *ImportUseCase) ImportCustomers(ctx context.Context, r io.Reader) (ImportResult, error) {
	table, err := readCSVTable(r)
	if err != nil {
		return ImportResult{}, err
	}

	var res ImportResult
	today := time.Now().Format(entities.DateLayout)

	for _, row := range table.rows {
		name := cleanField(table.get(row, "nome", "name"))
		if name == "" {
			res.Errors++
			continue
		}
		phone := cleanField(table.get(row, "telefone", "tel", "fone", "phone"))
		document := cleanField(table.get(row, "documento", "cpf", "cnpj", "doc", "document"))
		address := cleanField(table.get(row, "endereco", "endereço", "end", "address"))

		var existing entities.Customer
		if phone != "" {
			existing, err = u.customers.FirstByPhone(ctx, phone)
		} else {
			existing, err = u.customers.FirstByName(ctx, name)
		}
		if err != nil {
			res.Errors++
			continue
		}
		if existing.ID != 0 {
			res.Duplicates++
			continue
		}

		_, err = u.customers.Create(ctx, entities.Customer{
			Name:         name,
			Address:      address,
			Phone:        phone,
			Document:     document,
			RegisteredAt: today,
		})
		if err != nil {
			log.WithError(err).WithField("name", name).Warn("customer import row failed")
			res.Errors++
			continue
		}
		res.Inserted++
	}

	return res, nil
}

func (u *ImportUseCase) ImportOrders(ctx context.Context, r io.Reader) (ImportResult, error) {
	table, err := readCSVTable(r)
	if err != nil {
		return ImportResult{}, err
	}

	var res ImportResult
	today := time.Now().Format(entities.DateLayout)

	for _, row := range table.rows {
		code := cleanField(table.get(row, "ra", "code"))
		customerName := cleanField(table.get(row, "cliente_nome", "cliente", "customer_name"))
		if code == "" || customerName == "" {
			res.Errors++
			continue
		}

		status, ok := entities.NormalizeStatus(table.get(row, "status"))
		if !ok {
			status = entities.OrderStatusAberto
		}
		subtotal := parseLegacyAmount(table.get(row, "valor_total", "subtotal"))
		entryDate := strings.TrimSpace(table.get(row, "data_entrada", "entry_date"))
		if entryDate == "" {
			entryDate = today
		}

		customerID, err := u.resolveCustomer(ctx, customerName, today)
		if err != nil {
			res.Errors++
			continue
		}

		existing, err := u.orders.GetByCode(ctx, code)
		if err != nil || existing.Code != "" {
			res.Errors++
			continue
		}

		order := entities.ServiceOrder{
			Code:          code,
			CustomerID:    customerID,
			Device:        cleanField(table.get(row, "aparelho", "device")),
			Brand:         cleanField(table.get(row, "marca", "brand")),
			Model:         cleanField(table.get(row, "modelo", "model")),
			SerialNumber:  cleanField(table.get(row, "numero_serie", "serial_number")),
			ReportedFault: cleanField(table.get(row, "defeito_relatado", "reported_fault")),
			Status:        status,
			Subtotal:      subtotal,
			FinalAmount:   entities.ComputeFinalAmount(subtotal, 0),
			EntryDate:     entryDate,
		}
		if err := u.orders.CreateWithItems(ctx, order, nil); err != nil {
			log.WithError(err).WithField("code", code).Warn("order import row failed")
			res.Errors++
			continue
		}
		res.Inserted++
	}

	return res, nil
}

func (u *ImportUseCase) resolveCustomer(ctx context.Context, name, registeredAt string) (uint, error) {
	existing, err := u.customers.FirstByName(ctx, name)
	if err != nil {
		return 0, err
	}
	if existing.ID != 0 {
		return existing.ID, nil
	}

	created, err := u.customers.Create(ctx, entities.Customer{Name: name, RegisteredAt: registeredAt})
	if err != nil {
		return 0, err
	}
	return created.ID, nil
}

// cleanField collapses internal whitespace and uppercases, the normalization
// the legacy exports were loaded with.
func cleanField(v string) string {
	return strings.ToUpper(strings.Join(strings.Fields(v), " "))
}

// parseLegacyAmount reads a monetary value that may use a decimal comma.
func parseLegacyAmount(v string) float64 {
	v = strings.ReplaceAll(strings.TrimSpace(v), ",", ".")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}

type csvTable struct {
	index map[string]int
	rows  [][]string
}

// get returns the row value of the first header alias present in the file.
func (t csvTable) get(row []string, aliases ...string) string {
	for _, alias := range aliases {
		if col, ok := t.index[alias]; ok && col < len(row) {
			return row[col]
		}
	}
	return ""
}

// readCSVTable loads a whole CSV, sniffing the delimiter (the legacy exports
// mix ';', tab and ',') and normalizing header names to snake_case so alias
// lookup is uniform.
func readCSVTable(r io.Reader) (csvTable, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return csvTable{}, err
	}
	content := strings.TrimPrefix(string(raw), "\uFEFF")

	reader := csv.NewReader(strings.NewReader(content))
	reader.Comma = sniffDelimiter(content)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return csvTable{}, err
	}
	if len(records) == 0 {
		return csvTable{index: map[string]int{}}, nil
	}

	index := make(map[string]int, len(records[0]))
	for i, col := range records[0] {
		key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(col)), " ", "_")
		if key != "" {
			index[key] = i
		}
	}
	return csvTable{index: index, rows: records[1:]}, nil
}

// sniffDelimiter picks the candidate that splits the header line most often.
// The semicolon exports routinely carry decimal commas in the data rows, so
// only the header is a reliable sample.
func sniffDelimiter(content string) rune {
	header := content
	if i := strings.IndexByte(header, '\n'); i >= 0 {
		header = header[:i]
	}

	best, bestCount := ',', strings.Count(header, ",")
	for _, candidate := range []rune{';', '\t'} {
		if n := strings.Count(header, string(candidate)); n > bestCount {
			best, bestCount = candidate, n
		}
	}
	return best
}
