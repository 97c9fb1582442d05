package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/atlascompta/compta_backend/internal/apperrors"
	"github.com/atlascompta/compta_backend/internal/core/domain"
	portsrepo "github.com/atlascompta/compta_backend/internal/core/ports/repositories"
	"github.com/atlascompta/compta_backend/internal/models"
	"github.com/atlascompta/compta_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxVatRateRepository struct {
	BaseRepository
}

// newPgxVatRateRepository creates a new repository for VAT rate data.
func newPgxVatRateRepository(pool *pgxpool.Pool) portsrepo.VatRateRepositoryFacade {
	return &PgxVatRateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.VatRateRepositoryFacade = (*PgxVatRateRepository)(nil)

// SaveVatRate inserts one VAT rate. A duplicate code maps to ErrDuplicate.
func (r *PgxVatRateRepository) SaveVatRate(ctx context.Context, rate domain.VatRate) error {
	m := mapping.ToModelVatRate(rate)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO vat_rates (vat_rate_id, code, label, rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`, m.VatRateID, m.Code, m.Label, m.Rate, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert vat rate "+m.Code, err)
	}
	return nil
}

// ListVatRates returns all rates ordered by rate descending.
func (r *PgxVatRateRepository) ListVatRates(ctx context.Context) ([]domain.VatRate, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT vat_rate_id, code, label, rate, created_at, updated_at
		FROM vat_rates
		ORDER BY rate DESC;
	`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query vat rates", err)
	}
	defer rows.Close()

	rates := []domain.VatRate{}
	for rows.Next() {
		var m models.VatRate
		if err := rows.Scan(&m.VatRateID, &m.Code, &m.Label, &m.Rate, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan vat rate row", err)
		}
		rates = append(rates, mapping.ToDomainVatRate(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating vat rate rows", err)
	}
	return rates, nil
}

// FindVatRatesByIDs returns the rates matching the given IDs, keyed by ID.
// Missing IDs are simply absent from the map.
func (r *PgxVatRateRepository) FindVatRatesByIDs(ctx context.Context, ids []string) (map[string]domain.VatRate, error) {
	if len(ids) == 0 {
		return map[string]domain.VatRate{}, nil
	}
	rows, err := r.Pool.Query(ctx, `
		SELECT vat_rate_id, code, label, rate, created_at, updated_at
		FROM vat_rates
		WHERE vat_rate_id = ANY($1);
	`, ids)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query vat rates by IDs", err)
	}
	defer rows.Close()

	rates := map[string]domain.VatRate{}
	for rows.Next() {
		var m models.VatRate
		if err := rows.Scan(&m.VatRateID, &m.Code, &m.Label, &m.Rate, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan vat rate row", err)
		}
		rates[m.VatRateID] = mapping.ToDomainVatRate(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating vat rate rows", err)
	}
	return rates, nil
}

type PgxCustomerRepository struct {
	BaseRepository
}

// newPgxCustomerRepository creates a new repository for customer data.
func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

// SaveCustomer inserts one customer.
func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO customers (customer_id, name, vat_id, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`, m.CustomerID, m.Name, m.VatID, m.Address, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert customer "+m.Name, err)
	}
	return nil
}

// FindCustomerByID retrieves a customer by its ID.
func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	var m models.Customer
	err := r.Pool.QueryRow(ctx, `
		SELECT customer_id, name, vat_id, address, created_at, updated_at
		FROM customers
		WHERE customer_id = $1;
	`, customerID).Scan(&m.CustomerID, &m.Name, &m.VatID, &m.Address, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find customer by ID "+customerID, err)
	}
	customer := mapping.ToDomainCustomer(m)
	return &customer, nil
}

// ListCustomers returns all customers ordered by name.
func (r *PgxCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT customer_id, name, vat_id, address, created_at, updated_at
		FROM customers
		ORDER BY name;
	`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query customers", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		var m models.Customer
		if err := rows.Scan(&m.CustomerID, &m.Name, &m.VatID, &m.Address, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan customer row", err)
		}
		customers = append(customers, mapping.ToDomainCustomer(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating customer rows", err)
	}
	return customers, nil
}

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoice data.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, number, invoice_date, customer_id, is_quote, prefix, created_at, updated_at`

// SaveInvoice persists an invoice with its items in one transaction. The
// number is drawn from the invoice or quote sequence scope inside the same
// transaction, exactly like entry references.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice, items []domain.InvoiceItem, scope, prefix string) (*domain.Invoice, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	now := time.Now()
	number, err := nextReferenceInTx(ctx, tx, scope, prefix, invoice.InvoiceDate, now)
	if err != nil {
		return nil, err
	}
	invoice.Number = number

	m := mapping.ToModelInvoice(invoice)
	_, err = tx.Exec(ctx, `
		INSERT INTO invoices (invoice_id, number, invoice_date, customer_id, is_quote, prefix, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`, m.InvoiceID, m.Number, m.InvoiceDate, m.CustomerID, m.IsQuote, m.Prefix, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert invoice "+m.Number, err)
	}

	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO invoice_items (item_id, invoice_id, description, quantity, unit_price, vat_rate_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	for i := range items {
		items[i].InvoiceID = invoice.InvoiceID
		mi := mapping.ToModelInvoiceItem(items[i])
		batch.Queue(itemQuery,
			mi.ItemID, mi.InvoiceID, mi.Description, mi.Quantity, mi.UnitPrice, mi.VatRateID, mi.CreatedAt, mi.UpdatedAt,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert items for invoice "+m.Number, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	invoice.Items = items
	return &invoice, nil
}

// FindInvoiceByID retrieves an invoice header by its ID, without items.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	var m models.Invoice
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`
	err := r.Pool.QueryRow(ctx, query, invoiceID).Scan(
		&m.InvoiceID, &m.Number, &m.InvoiceDate, &m.CustomerID, &m.IsQuote, &m.Prefix, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find invoice by ID "+invoiceID, err)
	}
	invoice := mapping.ToDomainInvoice(m)
	return &invoice, nil
}

// FindItemsByInvoiceID retrieves the items of one invoice in insertion order.
func (r *PgxInvoiceRepository) FindItemsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.InvoiceItem, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT item_id, invoice_id, description, quantity, unit_price, vat_rate_id, created_at, updated_at
		FROM invoice_items
		WHERE invoice_id = $1
		ORDER BY created_at, item_id;
	`, invoiceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query items for invoice "+invoiceID, err)
	}
	defer rows.Close()

	items := []domain.InvoiceItem{}
	for rows.Next() {
		var m models.InvoiceItem
		if err := rows.Scan(
			&m.ItemID, &m.InvoiceID, &m.Description, &m.Quantity, &m.UnitPrice, &m.VatRateID, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan item row for invoice "+invoiceID, err)
		}
		items = append(items, mapping.ToDomainInvoiceItem(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating item rows for invoice "+invoiceID, err)
	}
	return items, nil
}

// ListInvoices returns all invoices, most recent first.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices ORDER BY invoice_date DESC, number DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query invoices", err)
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	for rows.Next() {
		var m models.Invoice
		if err := rows.Scan(
			&m.InvoiceID, &m.Number, &m.InvoiceDate, &m.CustomerID, &m.IsQuote, &m.Prefix, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice row", err)
		}
		invoices = append(invoices, mapping.ToDomainInvoice(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating invoice rows", err)
	}
	return invoices, nil
}

// ListItemsByPeriod returns invoice items joined with their invoice and VAT
// rate for invoices dated within [start, end], both ends inclusive. Quotes
// are returned too, flagged, so the declaration layer decides what to
// declare; untaxed items come back with a zero rate.
func (r *PgxInvoiceRepository) ListItemsByPeriod(ctx context.Context, start, end time.Time) ([]domain.PeriodItem, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT i.invoice_date, i.number, it.description, i.is_quote, it.quantity, it.unit_price,
		       COALESCE(v.rate, 0)
		FROM invoice_items it
		JOIN invoices i ON it.invoice_id = i.invoice_id
		LEFT JOIN vat_rates v ON it.vat_rate_id = v.vat_rate_id
		WHERE i.invoice_date >= $1 AND i.invoice_date <= $2
		ORDER BY i.invoice_date, i.number, it.created_at;
	`, start, end)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query invoice items by period", err)
	}
	defer rows.Close()

	items := []domain.PeriodItem{}
	for rows.Next() {
		var item domain.PeriodItem
		if err := rows.Scan(
			&item.InvoiceDate, &item.InvoiceNumber, &item.Description, &item.IsQuote, &item.Quantity, &item.UnitPrice, &item.Rate,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan period item row", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating period item rows", err)
	}
	return items, nil
}
